// Package codegen turns a grammar into the Go source of a recursive-descent
// parser. Every rule becomes one function that opens a node, parses its body
// by looking at the next token, and closes the node with the rule's kind.
// FIRST sets are computed once here and written into the generated code as
// literal lists of token kinds.
package codegen

import (
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/internal/util"
)

// Output is the result of a Generate call.
type Output struct {
	// Rules is the source of the rule routines.
	Rules []byte

	// TreeKinds is the source of the tree Kind enumeration.
	TreeKinds []byte

	// TokenKinds is the source of the token Kind enumeration.
	TokenKinds []byte

	// Conflicts are the LL(1) conflicts of the grammar. The generated parser
	// resolves each in favor of the first-listed alternative, or of entering
	// the optional term.
	Conflicts []grammar.Conflict
}

var goReserved = util.KeySetOf([]string{
	// keywords
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type",
	"var",

	// predeclared
	"any", "append", "bool", "byte", "cap", "clear", "close", "comparable",
	"complex", "complex64", "complex128", "copy", "delete", "error", "false",
	"float32", "float64", "imag", "int", "int8", "int16", "int32", "int64",
	"iota", "len", "make", "max", "min", "new", "nil", "panic", "print",
	"println", "real", "recover", "rune", "string", "true", "uint", "uint8",
	"uint16", "uint32", "uint64", "uintptr",

	// names in scope inside every generated function
	"p", "m", "token", "syntax",
})

var reservedTreeNames = util.KeySetOf([]string{"Kind", "Kinds", "KindOf", "Tree", "Child", "ErrorTree"})

var reservedTokenNames = util.KeySetOf([]string{
	"EOF", "ERROR", "Kind", "Kinds", "Token", "Span", "Fold", "LookupKeyword",
	"LookupPunctuation", "Punctuation",
})

// Generate produces the parser sources for g.
func Generate(g *grammar.Grammar, cfg Config) (Output, error) {
	for _, s := range cfg.StartRules {
		if _, ok := g.Rule(s); !ok {
			return Output{}, fmt.Errorf("start rule %q is not defined", s)
		}
	}

	a := grammar.NewAnalysis(g, cfg.StartRules...)
	if lr := a.LeftRecursive(); len(lr) > 0 {
		return Output{}, fmt.Errorf("grammar is left-recursive in %s", strings.Join(lr, ", "))
	}

	tokNames, err := tokenConstNames(g, cfg)
	if err != nil {
		return Output{}, err
	}
	if err := checkRuleNames(g); err != nil {
		return Output{}, err
	}

	source := "grammar"
	if cfg.Grammar != "" {
		source = filepath.Base(cfg.Grammar)
	}

	em := &emitter{
		a:        a,
		cfg:      cfg,
		source:   source,
		tokNames: tokNames,
		tokPkg:   cfg.tokenQualifier(),
		treePkg:  cfg.syntaxQualifier(),
		starts:   util.KeySetOf(cfg.StartRules),
	}

	var out Output
	out.Conflicts = a.Conflicts()

	if out.Rules, err = gofmt(em.rulesFile(), "rules"); err != nil {
		return Output{}, err
	}
	if out.TreeKinds, err = gofmt(em.treeKindsFile(), "tree kinds"); err != nil {
		return Output{}, err
	}
	if out.TokenKinds, err = gofmt(em.tokenKindsFile(), "token kinds"); err != nil {
		return Output{}, err
	}
	return out, nil
}

func gofmt(src string, what string) ([]byte, error) {
	formatted, err := format.Source([]byte(src))
	if err != nil {
		return nil, fmt.Errorf("generated %s source does not parse: %w", what, err)
	}
	return formatted, nil
}

// tokenConstNames assigns the Go constant name of every terminal.
func tokenConstNames(g *grammar.Grammar, cfg Config) (map[string]string, error) {
	names := map[string]string{}
	owner := map[string]string{}

	for _, t := range g.Terminals() {
		var name string
		switch {
		case !t.IsLiteral():
			name = t.Name
		case isWordLiteral(t.Literal()):
			name = strings.ToUpper(t.Literal())
		default:
			var ok bool
			name, ok = cfg.Punctuation[t.Literal()]
			if !ok {
				return nil, fmt.Errorf("punctuation %s has no name in the config", t.Name)
			}
		}

		if !isIdentifier(name) || reservedTokenNames.Has(name) {
			return nil, fmt.Errorf("terminal %s: %q cannot be used as a token kind name", t.Name, name)
		}
		if other, dup := owner[name]; dup {
			return nil, fmt.Errorf("terminals %s and %s would both be named %s", other, t.Name, name)
		}
		owner[name] = t.Name
		names[t.Name] = name
	}
	return names, nil
}

func checkRuleNames(g *grammar.Grammar) error {
	seen := map[string]string{}
	for _, r := range g.Rules() {
		kind := treeConstName(r.Name)
		if reservedTreeNames.Has(kind) {
			return fmt.Errorf("rule %q: %q cannot be used as a tree kind name", r.Name, kind)
		}
		if other, dup := seen[kind]; dup {
			return fmt.Errorf("rules %q and %q would both be named %s", other, r.Name, kind)
		}
		seen[kind] = r.Name
	}
	return nil
}

// treeConstName is the name of the tree Kind constant for a rule.
func treeConstName(rule string) string {
	r := []rune(rule)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// funcName is the name of the generated function for a rule. A leading run
// of capitals is lowered as a whole, so RDFLiteral becomes rdfLiteral.
func funcName(rule string) string {
	r := []rune(rule)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	if n > 1 && n < len(r) && unicode.IsLower(r[n]) {
		n--
	}
	for i := 0; i < n; i++ {
		r[i] = unicode.ToLower(r[i])
	}
	name := string(r)
	if goReserved.Has(name) {
		name += "Rule"
	}
	return name
}

func isWordLiteral(s string) bool {
	for i, ch := range s {
		if ch == '_' || unicode.IsLetter(ch) || (i > 0 && unicode.IsDigit(ch)) {
			continue
		}
		return false
	}
	return s != ""
}

func isIdentifier(s string) bool {
	return isWordLiteral(s)
}

// sortedConsts returns the constant names of the given terminals, sorted.
func (em *emitter) sortedConsts(terminals []string) []string {
	consts := make([]string, len(terminals))
	for i, t := range terminals {
		consts[i] = em.tokNames[t]
	}
	sort.Strings(consts)
	return consts
}
