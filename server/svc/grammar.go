package svc

import (
	"github.com/dekarrin/marlin/internal/grammar"
	"github.com/dekarrin/marlin/server/serr"
)

// RuleInfo describes one rule of the SPARQL grammar.
type RuleInfo struct {
	Name       string
	Definition string
	Nullable   bool

	// First and Follow are sorted terminal names. First never holds the
	// empty-string marker; see Nullable instead.
	First  []string
	Follow []string
}

// Rules returns every grammar rule in definition order.
func (svc Service) Rules() []RuleInfo {
	rules := svc.Grammar.Grammar().Rules()
	out := make([]RuleInfo, len(rules))
	for i, r := range rules {
		out[i] = svc.ruleInfo(r)
	}
	return out
}

// Rule returns the grammar rule with the given name. Names are
// case-sensitive.
//
// The returned error matches serr.ErrNotFound if there is no such rule.
func (svc Service) Rule(name string) (RuleInfo, error) {
	r, ok := svc.Grammar.Grammar().Rule(name)
	if !ok {
		return RuleInfo{}, serr.New("no rule named "+name, serr.ErrNotFound)
	}
	return svc.ruleInfo(r), nil
}

func (svc Service) ruleInfo(r grammar.Rule) RuleInfo {
	first := svc.Grammar.FirstOfRule(r.Name)
	first.Remove(grammar.Epsilon)

	return RuleInfo{
		Name:       r.Name,
		Definition: r.String(),
		Nullable:   svc.Grammar.Nullable(grammar.NonTerminal{Name: r.Name}),
		First:      first.Ordered(),
		Follow:     svc.Grammar.Follow(r.Name).Ordered(),
	}
}
