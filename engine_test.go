package marlin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dekarrin/marlin/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEngine(t *testing.T, input string) (string, *Engine) {
	var out bytes.Buffer
	eng, err := New(strings.NewReader(input), &out, true)
	require.NoError(t, err)

	require.NoError(t, eng.RunUntilQuit())
	require.NoError(t, eng.Close())
	return out.String(), eng
}

func Test_Engine_RunUntilQuit(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []string
		notExpect []string
	}{
		{
			name:   "statement ended by double semicolon",
			input:  "SELECT * WHERE { ?s ?p ?o };;\n:quit\n",
			expect: []string{"OK (query)", "Goodbye"},
		},
		{
			name:   "multi-line statement ended by blank line",
			input:  "SELECT ?s\nWHERE {\n?s ?p ?o\n}\n\n:quit\n",
			expect: []string{"OK (query)"},
		},
		{
			name:   "statement pending at end of input is parsed",
			input:  "ASK { }",
			expect: []string{"OK (query)", "Goodbye"},
		},
		{
			name:   "syntax error shows line and column",
			input:  "SELECT *\nWHERE { ?x }\n\n",
			expect: []string{`2:12: expected VerbPath or VerbSimple, found "}"`, "1 syntax error(s) (query)"},
		},
		{
			name:      "update mode",
			input:     ":update\nINSERT DATA { <a> <b> <c> };;\n",
			expect:    []string{"Now parsing statements as SPARQL updates", "OK (update)"},
			notExpect: []string{"error"},
		},
		{
			name:   "update text is an error in query mode",
			input:  "INSERT DATA { <a> <b> <c> };;\n",
			expect: []string{"syntax error(s) (query)"},
		},
		{
			name:   "tree display",
			input:  ":tree\nSELECT * WHERE { };;\n",
			expect: []string{"Tree display is on", "QueryUnit", "GroupGraphPattern"},
		},
		{
			name:   "first set of a rule",
			input:  ":first TriplesBlock\n",
			expect: []string{"TriplesBlock", "FIRST", "FOLLOW"},
		},
		{
			name:   "first of an unknown rule",
			input:  ":first Nope\n",
			expect: []string{`There is no grammar rule named "Nope"`},
		},
		{
			name:   "first without a rule",
			input:  ":first\n",
			expect: []string{"Usage: :first RULE"},
		},
		{
			name:   "unknown command",
			input:  ":fly\n",
			expect: []string{`Unknown command ":fly"`},
		},
		{
			name:   "help",
			input:  ":help\n",
			expect: []string{":first RULE"},
		},
		{
			name:      "commands are plain text inside a statement",
			input:     "SELECT * WHERE {\n:quit\n}\n\n",
			expect:    []string{"syntax error(s) (query)", "Goodbye"},
			notExpect: []string{"OK"},
		},
		{
			name:      "input after quit is not read",
			input:     ":quit\nSELECT * WHERE { };;\n",
			expect:    []string{"Goodbye"},
			notExpect: []string{"OK (query)"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			out, _ := runEngine(t, tc.input)

			assert.True(strings.HasPrefix(out, "Marlin SPARQL parse shell\n(direct input mode)\n"))
			for _, e := range tc.expect {
				assert.Contains(out, e)
			}
			for _, ne := range tc.notExpect {
				assert.NotContains(out, ne)
			}
		})
	}
}

func Test_Engine_modeSwitch(t *testing.T) {
	_, eng := runEngine(t, ":update\n:query\n:update\n")
	assert.Equal(t, parse.Update, eng.Mode())
}

func Test_Engine_Close_whileRunning(t *testing.T) {
	eng, err := New(strings.NewReader(""), &bytes.Buffer{}, true)
	require.NoError(t, err)

	eng.running = true
	assert.Error(t, eng.Close())
}
