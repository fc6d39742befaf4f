package lex

import (
	"testing"

	"github.com/dekarrin/marlin/token"
	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []token.Kind
	}{
		{
			name:   "keywords in any case",
			input:  "SELECT select SeLeCt",
			expect: []token.Kind{token.SELECT, token.SELECT, token.SELECT},
		},
		{
			name:   "a is case-sensitive",
			input:  "a A",
			expect: []token.Kind{token.A, token.ERROR},
		},
		{
			name:   "variables",
			input:  "?x $y ?_1",
			expect: []token.Kind{token.VAR1, token.VAR2, token.VAR1},
		},
		{
			name:   "iris and prefixed names",
			input:  "<http://example.org/> foaf: foaf:name : :x _:b0",
			expect: []token.Kind{token.IRIREF, token.PNAME_NS, token.PNAME_LN, token.PNAME_NS, token.PNAME_LN, token.BLANK_NODE_LABEL},
		},
		{
			name:  "numbers",
			input: "1 1.5 .5 1e3 +2 -2 +2.5 -2.5 -1.5e3 +1E-2",
			expect: []token.Kind{
				token.INTEGER, token.DECIMAL, token.DECIMAL, token.DOUBLE,
				token.INTEGER_POSITIVE, token.INTEGER_NEGATIVE,
				token.DECIMAL_POSITIVE, token.DECIMAL_NEGATIVE,
				token.DOUBLE_NEGATIVE, token.DOUBLE_POSITIVE,
			},
		},
		{
			name:  "strings",
			input: `'a' "b\"c" '''x'y''' """p""q"""`,
			expect: []token.Kind{
				token.STRING_LITERAL1, token.STRING_LITERAL2,
				token.STRING_LITERAL_LONG1, token.STRING_LITERAL_LONG2,
			},
		},
		{
			name:   "language tags and datatypes",
			input:  `"x"@en-US "1"^^<t>`,
			expect: []token.Kind{token.STRING_LITERAL2, token.LANGTAG, token.STRING_LITERAL2, token.DCARET, token.IRIREF},
		},
		{
			name:   "nil and anon",
			input:  "( ) ( 1 ) [ ] [",
			expect: []token.Kind{token.NIL, token.LPAREN, token.INTEGER, token.RPAREN, token.ANON, token.LBRACK},
		},
		{
			name:  "operators",
			input: "<= >= != && || ^^ ^ | ! = < >",
			expect: []token.Kind{
				token.LE, token.GE, token.NEQ, token.LAND, token.LOR, token.DCARET,
				token.CARET, token.PIPE, token.BANG, token.EQ, token.LT, token.GT,
			},
		},
		{
			name:   "comments and whitespace are skipped",
			input:  "# leading\nASK\t{ # inside\r\n}",
			expect: []token.Kind{token.ASK, token.LBRACE, token.RBRACE},
		},
		{
			name:   "unknown word and symbol",
			input:  "SELECTX @ ~",
			expect: []token.Kind{token.ERROR, token.ERROR, token.ERROR},
		},
		{
			name:   "a less-than is not an iri",
			input:  "?a < ?b",
			expect: []token.Kind{token.VAR1, token.LT, token.VAR1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks := Tokenize(tc.input)

			var kinds []token.Kind
			for _, tok := range toks {
				kinds = append(kinds, tok.Kind)
				assert.Equal(t, tc.input[tok.Span.Start:tok.Span.End], tok.Text)
			}
			assert.Equal(t, tc.expect, kinds)
		})
	}
}
