// Package grammar holds context-free grammars written in an EBNF-like
// notation and the analysis needed to generate recursive-descent parsers from
// them: nullability, FIRST and FOLLOW sets, LL(1) conflicts and left
// recursion.
package grammar

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/dekarrin/marlin/internal/util"
)

//go:embed sparql.bnf
var sparqlSource string

// SPARQLStartRules are the rules a SPARQL request can be parsed from.
var SPARQLStartRules = []string{"QueryUnit", "UpdateUnit"}

// SPARQLSource returns the text of the built-in SPARQL 1.1 grammar.
func SPARQLSource() string {
	return sparqlSource
}

// SPARQL returns the built-in SPARQL 1.1 grammar.
func SPARQL() *Grammar {
	return MustLoad(sparqlSource)
}

var tokenClassName = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// IsTokenClassName returns whether name is spelled like a token class (all
// capitals, digits and underscores).
func IsTokenClassName(name string) bool {
	return tokenClassName.MatchString(name)
}

// Rule is a named production.
type Rule struct {
	Name string
	Body Term
}

func (r Rule) String() string {
	return r.Name + " ::= " + r.Body.String()
}

// Grammar is an ordered set of rules. It is not modified after creation.
type Grammar struct {
	rules  []Rule
	byName map[string]int
}

// New creates a Grammar from the given rules and validates it.
func New(rules ...Rule) (*Grammar, error) {
	g := &Grammar{
		rules:  make([]Rule, len(rules)),
		byName: map[string]int{},
	}
	copy(g.rules, rules)

	for i, r := range g.rules {
		if _, dup := g.byName[r.Name]; dup {
			return nil, fmt.Errorf("rule %q is defined more than once", r.Name)
		}
		g.byName[r.Name] = i
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that the grammar has at least one rule, that every rule
// has a body and that every NonTerminal refers to a rule of the grammar.
func (g *Grammar) Validate() error {
	if len(g.rules) == 0 {
		return fmt.Errorf("grammar has no rules")
	}

	var errs []string
	for _, r := range g.rules {
		if r.Body == nil {
			errs = append(errs, fmt.Sprintf("rule %q has no body", r.Name))
			continue
		}
		Walk(r.Body, func(t Term) {
			nt, ok := t.(NonTerminal)
			if !ok {
				return
			}
			if _, ok := g.byName[nt.Name]; !ok {
				errs = append(errs, fmt.Sprintf("rule %q refers to undefined rule %q", r.Name, nt.Name))
			}
		})
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid grammar:\n%s", strings.Join(errs, "\n"))
	}
	return nil
}

// Rules returns the rules of the grammar in definition order.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// Rule returns the rule with the given name.
func (g *Grammar) Rule(name string) (Rule, bool) {
	idx, ok := g.byName[name]
	if !ok {
		return Rule{}, false
	}
	return g.rules[idx], true
}

func (g *Grammar) mustRule(name string) Rule {
	r, ok := g.Rule(name)
	if !ok {
		panic(fmt.Sprintf("no rule named %q", name))
	}
	return r
}

// Start returns the name of the first rule.
func (g *Grammar) Start() string {
	return g.rules[0].Name
}

// Terminals returns every distinct terminal used by the grammar in order of
// first use.
func (g *Grammar) Terminals() []Terminal {
	seen := util.NewKeySet[string]()
	var terms []Terminal
	for _, r := range g.rules {
		Walk(r.Body, func(t Term) {
			term, ok := t.(Terminal)
			if !ok || seen.Has(term.Name) {
				return
			}
			seen.Add(term.Name)
			terms = append(terms, term)
		})
	}
	return terms
}

// Unreachable returns the names of the rules that cannot be reached from any
// of the given start rules, in definition order. With no start rules given
// the first rule is used.
func (g *Grammar) Unreachable(starts ...string) []string {
	if len(starts) == 0 {
		starts = []string{g.Start()}
	}

	reached := util.NewKeySet[string]()
	var pending util.Stack[string]
	for _, s := range starts {
		pending.Push(s)
	}

	for !pending.Empty() {
		name := pending.Pop()
		if reached.Has(name) {
			continue
		}
		reached.Add(name)

		r, ok := g.Rule(name)
		if !ok {
			continue
		}
		Walk(r.Body, func(t Term) {
			if nt, ok := t.(NonTerminal); ok && !reached.Has(nt.Name) {
				pending.Push(nt.Name)
			}
		})
	}

	var unreached []string
	for _, r := range g.rules {
		if !reached.Has(r.Name) {
			unreached = append(unreached, r.Name)
		}
	}
	return unreached
}

// String gives the grammar in the notation accepted by Load, one rule per
// line.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, r := range g.rules {
		sb.WriteString(r.String())
		sb.WriteRune('\n')
	}
	return sb.String()
}
