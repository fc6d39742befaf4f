package codegen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/stretchr/testify/assert"
)

const arithSource = `
Expr   ::= Term ( ( '+' | '-' ) Term )*
Term   ::= Factor ( ( '*' | '/' ) Factor )*
Factor ::= NUMBER | '(' Expr ')' | '-' Factor
`

func arithConfig() Config {
	cfg := Config{
		StartRules: []string{"Expr"},
		Punctuation: map[string]string{
			"+": "PLUS",
			"-": "DASH",
			"*": "STAR",
			"/": "SLASH",
			"(": "LPAREN",
			")": "RPAREN",
		},
	}
	cfg.FillDefaults()
	return cfg
}

func Test_Generate_rules(t *testing.T) {
	assert := assert.New(t)

	out, err := Generate(grammar.MustLoad(arithSource), arithConfig())
	if !assert.NoError(err) {
		return
	}
	src := string(out.Rules)

	assert.True(strings.HasPrefix(src, "// Code generated by mrlgen from grammar. DO NOT EDIT.\n\npackage parse\n"))

	assert.Contains(src, `// Expr ::= Term ( ( '+' | '-' ) Term )*
func expr(p *Parser) {
	m := p.open()
	term(p)
	for p.atAny(token.DASH, token.PLUS) {
		switch p.nth(0) {
		case token.PLUS:
			p.expect(token.PLUS)
		case token.DASH:
			p.expect(token.DASH)
		case token.EOF:
			p.closeEarly(m)
			return
		default:
			p.advanceWithError("expected '+' or '-'")
		}
		term(p)
	}
	for !p.eof() {
		p.advanceWithError("expected end of input")
	}
	p.close(m, syntax.Expr)
}`)

	assert.Contains(src, `// Factor ::= NUMBER | '(' Expr ')' | '-' Factor
func factor(p *Parser) {
	m := p.open()
	switch p.nth(0) {
	case token.NUMBER:
		p.expect(token.NUMBER)
	case token.LPAREN:
		p.expect(token.LPAREN)
		expr(p)
		p.expect(token.RPAREN)
	case token.DASH:
		p.expect(token.DASH)
		factor(p)
	case token.EOF:
		p.closeEarly(m)
		return
	default:
		p.advanceWithError("expected NUMBER, '(' or '-'")
	}
	p.close(m, syntax.Factor)
}`)

	// only start rules drain the input
	assert.Equal(1, strings.Count(src, "for !p.eof()"))
	assert.Empty(out.Conflicts)
}

func Test_Generate_kinds(t *testing.T) {
	assert := assert.New(t)

	cfg := arithConfig()
	cfg.CaseSensitive = []string{"x"}
	out, err := Generate(grammar.MustLoad(arithSource), cfg)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(string(out.TreeKinds), `const (
	ErrorTree Kind = iota
	Expr
	Term
	Factor
	kindCount
)`)
	assert.Contains(string(out.TokenKinds), `const (
	EOF Kind = iota
	ERROR
	DASH
	LPAREN
	NUMBER
	PLUS
	RPAREN
	SLASH
	STAR
	kindCount
)`)
	assert.Contains(string(out.TokenKinds), `var kindNames = [...]string{
	"EOF",
	"ErrorToken",
	"'-'",
	"'('",
	"NUMBER",
	"'+'",
	"')'",
	"'/'",
	"'*'",
}`)
	assert.Contains(string(out.TokenKinds), `var caseSensitiveKeywords = []string{
	"x",
}`)
}

func Test_Generate_optionalsAndRepetition(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustLoad(`
		List ::= 'list' Item+ ( 'end' | 'stop' )?
		Item ::= NAME | 'v' NAME
	`)
	cfg := Config{StartRules: []string{"List"}}
	cfg.FillDefaults()

	out, err := Generate(g, cfg)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(string(out.Rules), `	p.expect(token.LIST)
	for {
		item(p)
		if !p.atAny(token.NAME, token.V) {
			break
		}
	}
	if p.atAny(token.END, token.STOP) {
		switch p.nth(0) {
		case token.END:
			p.expect(token.END)
		case token.STOP:
			p.expect(token.STOP)`)
}

func Test_Generate_nullableArm(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustLoad(`
		Block ::= '{' ( Query | Body ) '}'
		Query ::= 'select' NAME
		Body  ::= NAME*
	`)
	cfg := Config{StartRules: []string{"Block"}, Punctuation: map[string]string{"{": "LBRACE", "}": "RBRACE"}}
	cfg.FillDefaults()

	out, err := Generate(g, cfg)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(string(out.Rules), `	switch p.nth(0) {
	case token.SELECT:
		query(p)
	case token.EOF:
		p.closeEarly(m)
		return
	default:
		body(p)
	}`)
}

func Test_Generate_errors(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		cfg       Config
		expectErr string
	}{
		{
			name:      "undefined start rule",
			src:       "A ::= 'a'",
			cfg:       Config{StartRules: []string{"B"}},
			expectErr: `start rule "B" is not defined`,
		},
		{
			name:      "left recursion",
			src:       "E ::= E 'x' | 'y'",
			cfg:       Config{StartRules: []string{"E"}},
			expectErr: "grammar is left-recursive in E",
		},
		{
			name:      "unnamed punctuation",
			src:       "A ::= '{' 'a'",
			cfg:       Config{StartRules: []string{"A"}},
			expectErr: "punctuation '{' has no name in the config",
		},
		{
			name:      "keywords differing only in case",
			src:       "A ::= 'select' 'SELECT'",
			cfg:       Config{StartRules: []string{"A"}},
			expectErr: "terminals 'select' and 'SELECT' would both be named SELECT",
		},
		{
			name:      "reserved token name",
			src:       "A ::= EOF",
			cfg:       Config{StartRules: []string{"A"}},
			expectErr: `terminal EOF: "EOF" cannot be used as a token kind name`,
		},
		{
			name:      "reserved tree name",
			src:       "A ::= Tree\nTree ::= 'x'",
			cfg:       Config{StartRules: []string{"A"}},
			expectErr: `rule "Tree": "Tree" cannot be used as a tree kind name`,
		},
		{
			name:      "rules differing in first letter case",
			src:       "A ::= a\na ::= 'x'",
			cfg:       Config{StartRules: []string{"A"}},
			expectErr: `rules "A" and "a" would both be named A`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.FillDefaults()

			_, err := Generate(grammar.MustLoad(tc.src), tc.cfg)

			assert.EqualError(t, err, tc.expectErr)
		})
	}
}

func Test_funcName(t *testing.T) {
	testCases := []struct {
		rule   string
		expect string
	}{
		{rule: "QueryUnit", expect: "queryUnit"},
		{rule: "RDFLiteral", expect: "rdfLiteral"},
		{rule: "IRIOrFunction", expect: "iriOrFunction"},
		{rule: "Var", expect: "varRule"},
		{rule: "String", expect: "stringRule"},
		{rule: "Copy", expect: "copyRule"},
		{rule: "Clear", expect: "clearRule"},
		{rule: "Syntax", expect: "syntaxRule"},
		{rule: "NIL", expect: "nilRule"},
		{rule: "iri", expect: "iri"},
	}

	for _, tc := range testCases {
		t.Run(tc.rule, func(t *testing.T) {
			assert.Equal(t, tc.expect, funcName(tc.rule))
		})
	}
}

func Test_wrapList(t *testing.T) {
	testCases := []struct {
		name   string
		items  []string
		width  int
		expect [][]string
	}{
		{
			name:   "fits",
			items:  []string{"aa", "bb"},
			width:  10,
			expect: [][]string{{"aa", "bb"}},
		},
		{
			name:   "wraps",
			items:  []string{"aaaa", "bbbb", "cccc"},
			width:  11,
			expect: [][]string{{"aaaa", "bbbb"}, {"cccc"}},
		},
		{
			name:   "long item alone",
			items:  []string{"a", "bbbbbbbbbbbbbbbb", "c"},
			width:  5,
			expect: [][]string{{"a"}, {"bbbbbbbbbbbbbbbb"}, {"c"}},
		},
		{
			name:   "empty",
			items:  nil,
			width:  5,
			expect: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, wrapList(tc.items, tc.width))
		})
	}
}

func Test_LoadConfig(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "gen.toml")
	err := os.WriteFile(file, []byte(`
grammar = "g.bnf"
start_rules = ["A"]

[output]
rules = "out/rules_gen.go"
tree_kinds = "/abs/kinds_gen.go"

[punctuation]
"{" = "LBRACE"
`), 0644)
	if !assert.NoError(err) {
		return
	}

	cfg, err := LoadConfig(file)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(filepath.Join(dir, "g.bnf"), cfg.Grammar)
	assert.Equal(filepath.Join(dir, "out", "rules_gen.go"), cfg.Output.Rules)
	assert.Equal("/abs/kinds_gen.go", cfg.Output.TreeKinds)
	assert.Equal("", cfg.Output.TokenKinds)
	assert.Equal([]string{"A"}, cfg.StartRules)
	assert.Equal(map[string]string{"{": "LBRACE"}, cfg.Punctuation)
	assert.Equal("parse", cfg.Packages.Parser)
	assert.Equal("github.com/dekarrin/marlin/syntax", cfg.Packages.Syntax)
}

func Test_LoadConfig_errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name:      "no start rules",
			content:   `grammar = "g.bnf"`,
			expectErr: "start_rules: at least one start rule is required",
		},
		{
			name:      "bad punctuation name",
			content:   "start_rules = [\"A\"]\n[punctuation]\n\"{\" = \"L BRACE\"",
			expectErr: `punctuation: "L BRACE" is not a valid name for "{"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "gen.toml")
			if !assert.NoError(t, os.WriteFile(file, []byte(tc.content), 0644)) {
				return
			}

			_, err := LoadConfig(file)

			assert.EqualError(t, err, tc.expectErr)
		})
	}
}

// The checked-in parser must match what the generator makes from the
// checked-in grammar and configuration.
func Test_Generate_sparqlIsCurrent(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadConfig(filepath.Join("..", "..", "mrlgen.toml"))
	if !assert.NoError(err) {
		return
	}
	g, err := grammar.Load(grammar.SPARQLSource())
	if !assert.NoError(err) {
		return
	}

	out, err := Generate(g, cfg)
	if !assert.NoError(err) {
		return
	}
	assert.Empty(out.Conflicts)

	for _, gen := range []struct {
		file string
		src  []byte
	}{
		{cfg.Output.TreeKinds, out.TreeKinds},
		{cfg.Output.TokenKinds, out.TokenKinds},
	} {
		existing, err := os.ReadFile(gen.file)
		if !assert.NoError(err) {
			continue
		}
		assert.Equal(string(existing), string(gen.src), "%s is out of date; run go generate ./parse", gen.file)
	}

	// rule comments are left out of the comparison since they only restate
	// the grammar.
	existing, err := os.ReadFile(cfg.Output.Rules)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(stripComments(string(existing)), stripComments(string(out.Rules)))
}

func stripComments(src string) string {
	var kept []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
