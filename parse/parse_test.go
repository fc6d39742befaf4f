package parse

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/internal/lex"
	"github.com/dekarrin/marlin/syntax"
	"github.com/dekarrin/marlin/token"
	"github.com/stretchr/testify/assert"
)

// sexpr gives a compact form of a tree's shape: nodes in parens with their
// kind, tokens as their text.
func sexpr(t *syntax.Tree) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(t.Kind.String())
	for _, c := range t.Children {
		sb.WriteString(" ")
		if c.Token != nil {
			sb.WriteString(c.Token.Text)
		} else {
			sb.WriteString(sexpr(c.Tree))
		}
	}
	sb.WriteString(")")
	return sb.String()
}

var validQueries = []string{
	"SELECT * WHERE { }",
	"SELECT ?a WHERE { ?a ?b ?c }",
	"ASK { ?s ?p ?o . ?x ?y ?z }",
	"PREFIX foaf: <http://xmlns.com/foaf/0.1/> SELECT ?name WHERE { ?x foaf:name ?name }",
	"BASE <http://example.org/> SELECT ?s FROM <g1> FROM NAMED <g2> WHERE { ?s ?p ?o }",
	"SELECT DISTINCT ?s (COUNT(?o) AS ?n) WHERE { ?s ?p ?o } GROUP BY ?s HAVING (COUNT(?o) > 1) ORDER BY DESC(?n) LIMIT 10 OFFSET 5",
	"CONSTRUCT { ?s a ?t } WHERE { ?s a ?t . FILTER(?t != <urn:x>) }",
	"ASK { ?s ?p \"hello\"@en }",
	"ASK { ?s ?p \"1\"^^<http://www.w3.org/2001/XMLSchema#integer> }",
	"DESCRIBE <http://example.org/>",
	"SELECT * WHERE { OPTIONAL { ?s ?p ?o } MINUS { ?s a ?x } }",
	"SELECT * WHERE { { ?s ?p ?o } UNION { ?o ?p ?s } }",
	"SELECT * WHERE { ?s ?p ?o } VALUES ?s { <a> <b> }",
	"SELECT * WHERE { ?s <p>/<q>* ?o ; <r> -1.5e3 , 2 . BIND(STR(?o) AS ?x) }",
	"SELECT * WHERE { [] <p> ( 1 2 3 ) . _:b <q> [ <r> true ] }",
	"SELECT (SUM(?x) + 2 * ?y AS ?z) WHERE { GRAPH ?g { ?x <p> ?y } }",
	"select * where { ?s ?p ?o filter regex(?o, \"^a\", \"i\") }",
}

var validUpdates = []string{
	"INSERT DATA { <a> <b> <c> }",
	"DELETE DATA { GRAPH <g> { <a> <b> \"c\" } }",
	"DELETE WHERE { ?s ?p ?o }",
	"DELETE { ?s ?p ?o } INSERT { ?s ?p 1 } WHERE { ?s ?p ?o }",
	"INSERT { ?s a <T> } USING <g> WHERE { ?s ?p ?o }",
	"WITH <g> DELETE { ?s ?p ?o } WHERE { ?s ?p ?o }",
	"LOAD SILENT <http://example.org/data> INTO GRAPH <g>",
	"CLEAR DEFAULT ; DROP NAMED ; CREATE GRAPH <g>",
	"ADD <a> TO DEFAULT ; MOVE DEFAULT TO <b> ; COPY <a> TO <b>",
	"PREFIX ex: <http://example.org/> INSERT DATA { ex:a ex:b ex:c }",
	"",
}

func Test_ParseQuery_scenarios(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expect      string
		expectDiags int
	}{
		{
			name:   "select star with empty pattern",
			input:  "SELECT * WHERE { }",
			expect: "(QueryUnit (Query (Prologue) (SelectQuery (SelectClause SELECT *) (WhereClause WHERE (GroupGraphPattern { (GroupGraphPatternSub) })) (SolutionModifier)) (ValuesClause)))",
		},
		{
			name:        "unknown symbol in select clause",
			input:       "SELECT @ WHERE {}",
			expect:      "(QueryUnit (Query (Prologue) (SelectQuery (SelectClause SELECT (ErrorTree @)) (WhereClause WHERE (GroupGraphPattern { (GroupGraphPatternSub) })) (SolutionModifier)) (ValuesClause)))",
			expectDiags: 1,
		},
		{
			name:        "truncated after SELECT",
			input:       "SELECT",
			expect:      "(QueryUnit (Query (Prologue) (SelectQuery (ErrorTree SELECT) (WhereClause (ErrorTree)) (SolutionModifier)) (ValuesClause)))",
			expectDiags: 3,
		},
		{
			name:        "empty input",
			input:       "",
			expect:      "(QueryUnit (ErrorTree (Prologue)))",
			expectDiags: 1,
		},
		{
			name:        "trailing garbage after a complete query",
			input:       "ASK {} }",
			expect:      "(QueryUnit (Query (Prologue) (AskQuery ASK (WhereClause (GroupGraphPattern { (GroupGraphPatternSub) })) (SolutionModifier)) (ValuesClause)) (ErrorTree }))",
			expectDiags: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := ParseQuery(tc.input)

			assert.Equal(tc.expect, sexpr(actual.Tree))
			assert.Len(actual.Diagnostics, tc.expectDiags)
		})
	}
}

func Test_ParseQuery_selectVar(t *testing.T) {
	assert := assert.New(t)

	res := ParseQuery("SELECT ?a WHERE { ?a ?b ?c }")
	if !assert.True(res.OK(), "diagnostics: %v", res.Diagnostics) {
		return
	}

	sel := res.Tree.Find(syntax.SelectClause)
	if !assert.NotNil(sel) {
		return
	}
	vars := sel.Subtrees()
	if !assert.Len(vars, 1) {
		return
	}
	assert.Equal(syntax.Var, vars[0].Kind)
	toks := vars[0].Tokens()
	if assert.Len(toks, 1) {
		assert.Equal(token.VAR1, toks[0].Kind)
		assert.Equal("?a", toks[0].Text)
	}

	ggp := res.Tree.Find(syntax.GroupGraphPattern)
	if !assert.NotNil(ggp) {
		return
	}
	blocks := ggp.FindAll(syntax.TriplesBlock)
	assert.Len(blocks, 1)
	assert.Len(ggp.FindAll(syntax.TriplesSameSubjectPath), 1)
}

func Test_ParseQuery_askNestedTriples(t *testing.T) {
	assert := assert.New(t)

	res := ParseQuery("ASK { ?s ?p ?o . ?x ?y ?z }")
	if !assert.True(res.OK(), "diagnostics: %v", res.Diagnostics) {
		return
	}

	ask := res.Tree.Find(syntax.AskQuery)
	if !assert.NotNil(ask) {
		return
	}

	outer := ask.Find(syntax.TriplesBlock)
	if !assert.NotNil(outer) {
		return
	}
	// second triple is a TriplesBlock inside the first
	var inner *syntax.Tree
	for _, sub := range outer.Subtrees() {
		if sub.Kind == syntax.TriplesBlock {
			inner = sub
		}
	}
	if !assert.NotNil(inner, "no nested TriplesBlock") {
		return
	}
	assert.Len(outer.FindAll(syntax.TriplesSameSubjectPath), 2)
	assert.Len(inner.FindAll(syntax.TriplesSameSubjectPath), 1)
	assert.Equal("?x?y?z", inner.Text())
}

func Test_ParseQuery_validInputs(t *testing.T) {
	for _, input := range validQueries {
		t.Run(input, func(t *testing.T) {
			res := ParseQuery(input)
			assert.True(t, res.OK(), "diagnostics: %v\n%s", res.Diagnostics, res.Tree)
			assert.Equal(t, syntax.QueryUnit, res.Tree.Kind)
		})
	}
}

func Test_ParseUpdate_validInputs(t *testing.T) {
	for _, input := range validUpdates {
		t.Run(input, func(t *testing.T) {
			res := ParseUpdate(input)
			assert.True(t, res.OK(), "diagnostics: %v\n%s", res.Diagnostics, res.Tree)
			assert.Equal(t, syntax.UpdateUnit, res.Tree.Kind)
		})
	}
}

func Test_ParseUpdate_sequence(t *testing.T) {
	assert := assert.New(t)

	res := ParseUpdate("CLEAR DEFAULT ; DROP NAMED ; CREATE GRAPH <g>")
	if !assert.True(res.OK(), "diagnostics: %v", res.Diagnostics) {
		return
	}

	assert.Len(res.Tree.FindAll(syntax.Update), 3)
	assert.Len(res.Tree.FindAll(syntax.Update1), 3)
	assert.NotNil(res.Tree.Find(syntax.Clear))
	assert.NotNil(res.Tree.Find(syntax.Drop))
	assert.NotNil(res.Tree.Find(syntax.Create))
}

func Test_ParseUpdate_errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectDiags []string
	}{
		{
			name:        "INSERT without a body",
			input:       "INSERT",
			expectDiags: []string{"unexpected end of input"},
		},
		{
			name:        "query given as update",
			input:       "SELECT * WHERE {}",
			expectDiags: []string{"expected end of input", "expected end of input", "expected end of input", "expected end of input", "expected end of input"},
		},
		{
			name:        "missing closing brace",
			input:       "INSERT DATA { <a> <b> <c>",
			expectDiags: []string{"expected '}'"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			res := ParseUpdate(tc.input)

			var msgs []string
			for _, d := range res.Diagnostics {
				msgs = append(msgs, d.Message)
			}
			assert.Equal(tc.expectDiags, msgs)
			assert.False(res.OK())
		})
	}
}

func Test_Parse_lossless(t *testing.T) {
	inputs := append([]string{
		"SELECT @ WHERE {}",
		"SELECT ?x # trailing comment\nWHERE {\n\t?x <p> 'it''s' }",
		"}{ ) ( $ ^^ ||| &&& \"unterminated",
		"PREFIX : <x> SELECT ?x WHERE { ?x :p :o } garbage ~~~",
		"éè SELECT \x00 ?",
	}, validQueries...)

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			tree := Parse(input)

			assert.Equal(lex.Tokenize(input), tree.Tokens())

			// everything between tokens is trivia
			prev := 0
			for _, tok := range tree.Tokens() {
				assert.Equal(input[tok.Span.Start:tok.Span.End], tok.Text)
				assertTrivia(t, input[prev:tok.Span.Start])
				prev = tok.Span.End
			}
			assertTrivia(t, input[prev:])
		})
	}
}

func assertTrivia(t *testing.T, gap string) {
	for _, line := range strings.Split(gap, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			assert.Failf(t, "non-trivia text between tokens", "%q", line)
		}
	}
}

func Test_Parse_total(t *testing.T) {
	inputs := []string{
		"",
		"}}}}",
		"((((((((((((((((((((",
		"SELECT ((((((((((",
		"SELECT * WHERE { ?s ?p",
		"WHERE WHERE WHERE",
		"PREFIX PREFIX :",
		"\xff\xfe\x00",
		"; ; ; . . , ,",
		"INSERT DATA DELETE WHERE",
		"SELECT * { ?s ?p ?o FILTER( }",
		"ASK { FILTER(" + strings.Repeat("(", 300),
		"SELECT * { ?s ?p " + strings.Repeat("[ ?p ( ", 150),
		"ASK { " + strings.Repeat("{ ", 200),
	}

	// sequences of random keywords and punctuation
	r := rand.New(rand.NewSource(42))
	var lits []string
	for _, k := range token.Kinds() {
		if lit := k.Literal(); lit != "" {
			lits = append(lits, lit)
		}
	}
	lits = append(lits, "?v", "<iri>", "\"s\"", "12", "p:l", "_:b")
	for i := 0; i < 200; i++ {
		words := make([]string, r.Intn(40))
		for j := range words {
			words[j] = lits[r.Intn(len(lits))]
		}
		inputs = append(inputs, strings.Join(words, " "))
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			q := ParseQuery(input)
			assert.Equal(t, syntax.QueryUnit, q.Tree.Kind)
			u := ParseUpdate(input)
			assert.Equal(t, syntax.UpdateUnit, u.Tree.Kind)
		}, "input: %q", input)
	}
}

// sample text for each token class of the grammar
var classText = map[string]string{
	"ANON":                 "[ ]",
	"BLANK_NODE_LABEL":     "_:b0",
	"DECIMAL":              "1.5",
	"DECIMAL_NEGATIVE":     "-1.5",
	"DECIMAL_POSITIVE":     "+1.5",
	"DOUBLE":               "1e5",
	"DOUBLE_NEGATIVE":      "-1e5",
	"DOUBLE_POSITIVE":      "+1e5",
	"INTEGER":              "12",
	"INTEGER_NEGATIVE":     "-12",
	"INTEGER_POSITIVE":     "+12",
	"IRIREF":               "<http://example.org/x>",
	"LANGTAG":              "@en-us",
	"NIL":                  "( )",
	"PNAME_LN":             "ex:thing",
	"PNAME_NS":             "ex:",
	"STRING_LITERAL1":      "'s'",
	"STRING_LITERAL2":      `"s"`,
	"STRING_LITERAL_LONG1": "'''long'''",
	"STRING_LITERAL_LONG2": `"""long"""`,
	"VAR1":                 "?v",
	"VAR2":                 "$v",
}

// any sentence the grammar derives parses cleanly, and lexes back to the
// terminals it was derived as.
func Test_Parse_sampledSentences(t *testing.T) {
	s := grammar.NewSampler(grammar.SPARQL(), rand.New(rand.NewSource(3)))

	testCases := []struct {
		start string
		parse func(string) Result
	}{
		{start: "QueryUnit", parse: ParseQuery},
		{start: "UpdateUnit", parse: ParseUpdate},
	}

	for _, tc := range testCases {
		t.Run(tc.start, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				sent, err := s.Sentence(tc.start)
				if !assert.NoError(t, err) {
					return
				}

				words := make([]string, len(sent))
				for j, term := range sent {
					if text, ok := classText[term]; ok {
						words[j] = text
					} else {
						words[j] = term[1 : len(term)-1]
					}
				}
				input := strings.Join(words, " ")

				var lexed []string
				for _, tok := range lex.Tokenize(input) {
					lexed = append(lexed, tok.Kind.String())
				}
				if !assert.Equal(t, sent, lexed, "input: %q", input) {
					continue
				}

				res := tc.parse(input)
				assert.Empty(t, res.Diagnostics, "input: %q", input)
				assert.Zero(t, res.Tree.ErrorCount(), "input: %q", input)
			}
		})
	}
}

func Test_Parse_reparseIsIdempotent(t *testing.T) {
	for _, input := range validQueries {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			first := Parse(input)
			second := Parse(first.Print())

			assert.Equal(first.String(), second.String())
		})
	}
}

func Test_ParseAs(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(syntax.QueryUnit, ParseAs(Query, "ASK {}").Tree.Kind)
	assert.Equal(syntax.UpdateUnit, ParseAs(Update, "CLEAR ALL").Tree.Kind)

	m, ok := ParseMode("update")
	assert.True(ok)
	assert.Equal(Update, m)
	_, ok = ParseMode("delete")
	assert.False(ok)
}
