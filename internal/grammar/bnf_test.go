package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToBNF(t *testing.T) {
	assert := assert.New(t)

	g := MustLoad(`
Update1 ::= 'LOAD' 'SILENT'? iri ( 'INTO' to:iri )? | 'CLEAR' ( 'ALL' | 'GRAPH' iri )
iri ::= IRIREF | PNAME_LN ( '.' PNAME_LN )* | '|'+
Unused ::= 'x'
`)

	expect := "" +
		"UPDATE_ONE -> UPDATE_ONE-ARM | UPDATE_ONE-ARM-B ;\n" +
		"UPDATE_ONE-OPT -> silent | ε ;\n" +
		"IRI -> iriref | IRI-ARM | IRI-REP-B ;\n" +
		"UPDATE_ONE-OPT-B -> UPDATE_ONE-OPT-B-ARM | ε ;\n" +
		"UPDATE_ONE-OPT-B-ARM -> into IRI ;\n" +
		"UPDATE_ONE-ARM -> load UPDATE_ONE-OPT IRI UPDATE_ONE-OPT-B ;\n" +
		"UPDATE_ONE-GROUP -> all | UPDATE_ONE-GROUP-ARM ;\n" +
		"UPDATE_ONE-GROUP-ARM -> graph IRI ;\n" +
		"UPDATE_ONE-ARM-B -> clear UPDATE_ONE-GROUP ;\n" +
		"IRI-GROUP -> dot pname_ln ;\n" +
		"IRI-REP -> IRI-GROUP IRI-REP | ε ;\n" +
		"IRI-ARM -> pname_ln IRI-REP ;\n" +
		"IRI-REP-B -> bar IRI-REP-C ;\n" +
		"IRI-REP-C -> bar IRI-REP-C | ε ;\n"

	bnf, err := ToBNF(g, "Update1")
	if !assert.NoError(err) {
		return
	}
	assert.Equal("UPDATE_ONE", bnf.Start())
	assert.Equal(expect, bnf.String())
	assert.Len(bnf.Rules(), 14)
	assert.True(bnf.IsLL1())

	_, err = ToBNF(g, "Missing")
	assert.Error(err)
}

func Test_letterSuffix(t *testing.T) {
	testCases := []struct {
		n      int
		expect string
	}{
		{n: 2, expect: "B"},
		{n: 26, expect: "Z"},
		{n: 27, expect: "AA"},
		{n: 28, expect: "AB"},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, letterSuffix(tc.n))
		})
	}
}

func Test_Analysis_CheckLL1(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		starts    []string
		expect    []string
		expectErr bool
	}{
		{
			name: "arithmetic",
			src:  arithSource,
		},
		{
			name: "right recursion",
			src:  "S ::= 'a' S | 'b'",
		},
		{
			name: "nullable prefix decided after it",
			src:  "S ::= A? 'c' | 'd'\nA ::= 'a'",
		},
		{
			name:   "nullable prefix hiding an overlap",
			src:    "S ::= A? 'c' | 'a'\nA ::= 'a'",
			expect: []string{"S"},
		},
		{
			name:   "overlapping alternatives",
			src:    "S ::= A | B\nA ::= 'x' 'y'\nB ::= 'x' 'z'",
			expect: []string{"S"},
		},
		{
			name:   "optional followed by its own first",
			src:    "S ::= A 'x'\nA ::= 'x'?",
			expect: []string{"S"},
		},
		{
			name:   "nullable alternative",
			src:    "S ::= A 'x'\nA ::= 'x' | 'y'?",
			expect: []string{"S"},
		},
		{
			name:   "two nullable alternatives",
			src:    "S ::= A 'x'\nA ::= 'y'? | 'z'?",
			expect: []string{"S"},
		},
		{
			name:   "repeated term that can match nothing",
			src:    "S ::= ( 'a'? )* 'b'",
			expect: []string{"S"},
		},
		{
			name:   "only one start rule is affected",
			src:    "Q ::= P 'p'\nU ::= P 'u'\nP ::= 'p'?",
			starts: []string{"Q", "U"},
			expect: []string{"Q"},
		},
		{
			name:      "left recursion",
			src:       "E ::= E '+' 'n' | 'n'",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			a := NewAnalysis(MustLoad(tc.src), tc.starts...)
			actual, err := a.CheckLL1()
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, actual)

			// both ways of finding conflicts must agree
			assert.Equal(len(tc.expect) > 0, len(a.Conflicts()) > 0, "conflicts: %v", a.Conflicts())
		})
	}
}

func Test_Analysis_CheckLL1_SPARQL(t *testing.T) {
	assert := assert.New(t)

	actual, err := NewAnalysis(SPARQL(), SPARQLStartRules...).CheckLL1()

	assert.NoError(err)
	assert.Empty(actual)
}
