package grammar

import (
	"fmt"
	"math"
	"math/rand"
)

// Sampler produces random sentences of a grammar. Each sentence is the list of
// terminal names along one derivation.
//
// Past MaxDepth nested rules, or once a sentence has MaxLen terminals, every
// choice is made so as to finish the derivation as quickly as possible.
type Sampler struct {
	MaxDepth int
	MaxLen   int

	g      *Grammar
	r      *rand.Rand
	height map[string]int
}

// NewSampler creates a Sampler for g drawing choices from r.
func NewSampler(g *Grammar, r *rand.Rand) *Sampler {
	s := &Sampler{
		MaxDepth: 16,
		MaxLen:   400,
		g:        g,
		r:        r,
	}
	s.height = minHeights(g)
	return s
}

// Sentence derives a random sentence from the named rule.
func (s *Sampler) Sentence(rule string) ([]string, error) {
	if _, ok := s.g.Rule(rule); !ok {
		return nil, fmt.Errorf("no rule named %q", rule)
	}
	if s.height[rule] == math.MaxInt {
		return nil, fmt.Errorf("rule %q derives no finite sentence", rule)
	}

	var out []string
	s.derive(NonTerminal{Name: rule}, 0, &out)
	return out, nil
}

func (s *Sampler) derive(t Term, depth int, out *[]string) {
	short := depth > s.MaxDepth || len(*out) >= s.MaxLen

	switch t := t.(type) {
	case Terminal:
		*out = append(*out, t.Name)
	case NonTerminal:
		s.derive(s.g.mustRule(t.Name).Body, depth+1, out)
	case Labeled:
		s.derive(t.Inner, depth, out)
	case Sequence:
		for _, it := range t.Items {
			s.derive(it, depth, out)
		}
	case Alternation:
		arm := t.Arms[0]
		if short {
			best := math.MaxInt
			for _, a := range t.Arms {
				if h := s.termHeight(a); h < best {
					arm, best = a, h
				}
			}
		} else {
			arm = t.Arms[s.r.Intn(len(t.Arms))]
		}
		s.derive(arm, depth, out)
	case Optional:
		if !short && s.r.Intn(2) == 0 {
			s.derive(t.Inner, depth, out)
		}
	case Rep0:
		if !short {
			for s.r.Intn(2) == 0 {
				s.derive(t.Inner, depth, out)
				if len(*out) >= s.MaxLen {
					break
				}
			}
		}
	case Rep1:
		s.derive(t.Inner, depth, out)
		if !short && s.r.Intn(4) == 0 {
			s.derive(t.Inner, depth, out)
		}
	}
}

func (s *Sampler) termHeight(t Term) int {
	return termHeight(t, s.height)
}

// minHeights gives, for every rule, the least number of nested rules a
// derivation from it needs. Rules with no finite derivation get math.MaxInt.
func minHeights(g *Grammar) map[string]int {
	h := map[string]int{}
	for _, r := range g.rules {
		h[r.Name] = math.MaxInt
	}

	changed := true
	for changed {
		changed = false
		for _, r := range g.rules {
			body := termHeight(r.Body, h)
			if body != math.MaxInt && body+1 < h[r.Name] {
				h[r.Name] = body + 1
				changed = true
			}
		}
	}
	return h
}

func termHeight(t Term, h map[string]int) int {
	switch t := t.(type) {
	case Terminal:
		return 0
	case NonTerminal:
		return h[t.Name]
	case Labeled:
		return termHeight(t.Inner, h)
	case Optional, Rep0:
		return 0
	case Rep1:
		return termHeight(t.Inner, h)
	case Sequence:
		most := 0
		for _, it := range t.Items {
			if ih := termHeight(it, h); ih > most {
				most = ih
			}
		}
		return most
	case Alternation:
		least := math.MaxInt
		for _, arm := range t.Arms {
			if ah := termHeight(arm, h); ah < least {
				least = ah
			}
		}
		return least
	default:
		panic(fmt.Sprintf("unknown term type %T", t))
	}
}
