package grammar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/marlin/internal/util"
)

const (
	// Epsilon is the member of a FIRST set that marks the term as nullable.
	Epsilon = ""

	// EndOfInput is the member of a FOLLOW set that marks a rule as able to
	// end the input.
	EndOfInput = "$"
)

type nullState int

const (
	nullUnknown nullState = iota
	nullInProgress
	nullYes
	nullNo
)

// Analysis answers nullability, FIRST, FOLLOW and conflict questions about one
// Grammar. Results are memoized, so an Analysis must only be used with the
// grammar it was created for, and is not safe for concurrent use until
// Precompute has been called.
type Analysis struct {
	g      *Grammar
	starts []string

	nullable map[string]nullState

	// a rule is present in first as soon as its computation starts; until it
	// finishes the set may be partial.
	first map[string]util.KeySet[string]

	follow map[string]util.KeySet[string]
}

// NewAnalysis creates an Analysis of g. The start rules are the rules a parse
// may begin with, which matters only for FOLLOW sets; with none given the
// first rule of g is used.
func NewAnalysis(g *Grammar, starts ...string) *Analysis {
	if len(starts) == 0 {
		starts = []string{g.Start()}
	}
	return &Analysis{
		g:        g,
		starts:   starts,
		nullable: map[string]nullState{},
		first:    map[string]util.KeySet[string]{},
	}
}

// Grammar returns the grammar being analyzed.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}

// Starts returns the start rules of the analysis.
func (a *Analysis) Starts() []string {
	return a.starts
}

// Precompute fills every cache so that the Analysis can afterwards be read
// from several goroutines at once.
func (a *Analysis) Precompute() {
	for _, r := range a.g.rules {
		a.ruleNullable(r.Name)
		a.ruleFirst(r.Name)
	}
	a.computeFollow()
}

// Nullable returns whether t can derive the empty string.
//
// A rule whose nullability is still being worked out when it is reached again
// is treated as not nullable. Grammars in which a rule is nullable only
// through itself are therefore reported as non-nullable there.
func (a *Analysis) Nullable(t Term) bool {
	switch t := t.(type) {
	case Terminal:
		return false
	case NonTerminal:
		return a.ruleNullable(t.Name)
	case Optional, Rep0:
		return true
	case Rep1:
		return a.Nullable(t.Inner)
	case Labeled:
		return a.Nullable(t.Inner)
	case Sequence:
		for _, it := range t.Items {
			if !a.Nullable(it) {
				return false
			}
		}
		return true
	case Alternation:
		for _, arm := range t.Arms {
			if a.Nullable(arm) {
				return true
			}
		}
		return false
	default:
		panic(fmt.Sprintf("unknown term type %T", t))
	}
}

func (a *Analysis) ruleNullable(name string) bool {
	switch a.nullable[name] {
	case nullYes:
		return true
	case nullNo, nullInProgress:
		return false
	}

	a.nullable[name] = nullInProgress
	n := a.Nullable(a.g.mustRule(name).Body)
	if n {
		a.nullable[name] = nullYes
	} else {
		a.nullable[name] = nullNo
	}
	return n
}

// FirstOfRule returns FIRST of the named rule. The returned set is a copy.
func (a *Analysis) FirstOfRule(name string) util.KeySet[string] {
	return a.ruleFirst(name).Copy()
}

// ruleFirst returns the cached set itself. Re-entering a rule whose set is
// still being computed gives back the partial set instead of recursing; only
// left-recursive grammars can observe this.
func (a *Analysis) ruleFirst(name string) util.KeySet[string] {
	if set, ok := a.first[name]; ok {
		return set
	}

	set := util.NewKeySet[string]()
	a.first[name] = set
	set.AddAll(a.First(a.g.mustRule(name).Body))
	return set
}

// First returns the set of terminal names that can begin a derivation of t.
// The set contains Epsilon exactly when t is nullable.
func (a *Analysis) First(t Term) util.KeySet[string] {
	switch t := t.(type) {
	case Terminal:
		return util.KeySetOf([]string{t.Name})
	case NonTerminal:
		return a.ruleFirst(t.Name).Copy()
	case Labeled:
		return a.First(t.Inner)
	case Optional:
		set := a.First(t.Inner)
		set.Add(Epsilon)
		return set
	case Rep0:
		set := a.First(t.Inner)
		set.Add(Epsilon)
		return set
	case Rep1:
		return a.First(t.Inner)
	case Alternation:
		set := util.NewKeySet[string]()
		for _, arm := range t.Arms {
			set.AddAll(a.First(arm))
		}
		return set
	case Sequence:
		set := util.NewKeySet[string]()
		for _, it := range t.Items {
			itFirst := a.First(it)
			nullable := itFirst.Has(Epsilon)
			itFirst.Remove(Epsilon)
			set.AddAll(itFirst)
			if !nullable {
				return set
			}
		}
		set.Add(Epsilon)
		return set
	default:
		panic(fmt.Sprintf("unknown term type %T", t))
	}
}

// FirstTerminals returns FIRST of t without Epsilon, sorted by name.
func (a *Analysis) FirstTerminals(t Term) []string {
	set := a.First(t)
	set.Remove(Epsilon)
	out := set.Elements()
	sort.Strings(out)
	return out
}

// Follow returns the set of terminal names that can come right after the
// named rule in some derivation from a start rule. It contains EndOfInput if
// the rule can end the input.
func (a *Analysis) Follow(name string) util.KeySet[string] {
	if a.follow == nil {
		a.computeFollow()
	}
	return a.follow[name].Copy()
}

func (a *Analysis) computeFollow() {
	follow := map[string]util.KeySet[string]{}
	for _, r := range a.g.rules {
		follow[r.Name] = util.NewKeySet[string]()
	}
	for _, s := range a.starts {
		follow[s].Add(EndOfInput)
	}

	changed := true
	for changed {
		changed = false
		for _, r := range a.g.rules {
			trailer := follow[r.Name].Copy()
			a.walkTrailers(r.Body, trailer, func(t Term, trailer util.KeySet[string]) {
				if nt, ok := t.(NonTerminal); ok {
					if follow[nt.Name].AddAll(trailer) {
						changed = true
					}
				}
			})
		}
	}

	a.follow = follow
}

// walkTrailers calls visit on t and every term nested in it along with the set
// of terminals that can follow that term, given that trailer can follow t.
func (a *Analysis) walkTrailers(t Term, trailer util.KeySet[string], visit func(Term, util.KeySet[string])) {
	visit(t, trailer)

	switch t := t.(type) {
	case Labeled:
		a.walkTrailers(t.Inner, trailer, visit)
	case Optional:
		a.walkTrailers(t.Inner, trailer, visit)
	case Rep0:
		a.walkTrailers(t.Inner, a.repeatTrailer(t.Inner, trailer), visit)
	case Rep1:
		a.walkTrailers(t.Inner, a.repeatTrailer(t.Inner, trailer), visit)
	case Alternation:
		for _, arm := range t.Arms {
			a.walkTrailers(arm, trailer, visit)
		}
	case Sequence:
		cur := trailer
		for i := len(t.Items) - 1; i >= 0; i-- {
			a.walkTrailers(t.Items[i], cur, visit)

			itFirst := a.First(t.Items[i])
			if itFirst.Has(Epsilon) {
				itFirst.Remove(Epsilon)
				cur = itFirst.Union(cur)
			} else {
				cur = itFirst
			}
		}
	}
}

// a repeated term can be followed by another repetition or by what follows
// the whole loop.
func (a *Analysis) repeatTrailer(inner Term, trailer util.KeySet[string]) util.KeySet[string] {
	again := a.First(inner)
	again.Remove(Epsilon)
	return again.Union(trailer)
}

// ConflictType is the kind of LL(1) decision a Conflict affects.
type ConflictType int

const (
	// ConflictAlternatives is two arms of an alternation that can begin with
	// the same terminal. The first-listed arm is always taken.
	ConflictAlternatives ConflictType = iota

	// ConflictOptional is an optional or repeated term that can begin with a
	// terminal that can also follow it, or whose inner term can itself match
	// nothing. The term is always entered.
	ConflictOptional

	// ConflictNullableArm is a nullable alternation arm whose alternation can
	// be followed by a terminal that also begins one of its arms, or one of
	// several arms that can all match nothing.
	ConflictNullableArm
)

func (ct ConflictType) String() string {
	switch ct {
	case ConflictAlternatives:
		return "alternatives overlap"
	case ConflictOptional:
		return "optional overlaps follow"
	case ConflictNullableArm:
		return "nullable alternative overlaps follow"
	default:
		return fmt.Sprintf("ConflictType(%d)", int(ct))
	}
}

// Conflict is a place where one token of lookahead is not enough to decide
// between two ways of continuing a parse.
type Conflict struct {
	Rule      string
	Type      ConflictType
	Term      Term
	Terminals []string
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s: %s on %s in %s", c.Rule, c.Type, strings.Join(c.Terminals, ", "), c.Term)
}

// Conflicts returns every LL(1) conflict in the grammar, ordered by rule.
func (a *Analysis) Conflicts() []Conflict {
	if a.follow == nil {
		a.computeFollow()
	}

	var conflicts []Conflict
	for _, r := range a.g.rules {
		add := func(ct ConflictType, t Term, overlap util.KeySet[string]) {
			if overlap.Empty() {
				return
			}
			terms := overlap.Elements()
			sort.Strings(terms)
			conflicts = append(conflicts, Conflict{Rule: r.Name, Type: ct, Term: t, Terminals: terms})
		}

		a.walkTrailers(r.Body, a.follow[r.Name].Copy(), func(t Term, trailer util.KeySet[string]) {
			switch t := t.(type) {
			case Optional:
				add(ConflictOptional, t, a.enterOverlap(t.Inner, trailer))
			case Rep0:
				add(ConflictOptional, t, a.enterOverlap(t.Inner, trailer))
			case Rep1:
				add(ConflictOptional, t, a.enterOverlap(t.Inner, trailer))
			case Alternation:
				claimed := util.NewKeySet[string]()
				nullableArms := 0
				for _, arm := range t.Arms {
					armFirst := a.firstNoEpsilon(arm)
					add(ConflictAlternatives, t, armFirst.Intersection(claimed))
					claimed.AddAll(armFirst)
					if a.Nullable(arm) {
						nullableArms++
					}
				}
				switch {
				case nullableArms > 1:
					add(ConflictNullableArm, t, trailer)
				case nullableArms == 1:
					add(ConflictNullableArm, t, claimed.Intersection(trailer))
				}
			}
		})
	}
	return conflicts
}

// enterOverlap gives the terminals on which it cannot be told whether a term
// that may be skipped should be entered. An inner term that can match nothing
// is ambiguous on everything that can follow it.
func (a *Analysis) enterOverlap(inner Term, trailer util.KeySet[string]) util.KeySet[string] {
	if a.Nullable(inner) {
		return trailer
	}
	return a.firstNoEpsilon(inner).Intersection(trailer)
}

func (a *Analysis) firstNoEpsilon(t Term) util.KeySet[string] {
	set := a.First(t)
	set.Remove(Epsilon)
	return set
}

// LeftRecursive returns the names of all rules that can derive a string
// beginning with themselves, sorted. A recursive-descent parser for such a
// rule would never terminate.
func (a *Analysis) LeftRecursive() []string {
	corners := map[string][]string{}
	for _, r := range a.g.rules {
		corners[r.Name] = util.Dedupe(a.leftCorners(r.Body))
	}

	var found []string
	for _, r := range a.g.rules {
		visited := util.NewKeySet[string]()
		var pending util.Stack[string]
		for _, c := range corners[r.Name] {
			pending.Push(c)
		}
		for !pending.Empty() {
			name := pending.Pop()
			if name == r.Name {
				found = append(found, r.Name)
				break
			}
			if visited.Has(name) {
				continue
			}
			visited.Add(name)
			for _, c := range corners[name] {
				pending.Push(c)
			}
		}
	}

	sort.Strings(found)
	return found
}

// leftCorners gives the rules that can be called before any token is
// consumed when parsing t.
func (a *Analysis) leftCorners(t Term) []string {
	switch t := t.(type) {
	case NonTerminal:
		return []string{t.Name}
	case Labeled:
		return a.leftCorners(t.Inner)
	case Optional:
		return a.leftCorners(t.Inner)
	case Rep0:
		return a.leftCorners(t.Inner)
	case Rep1:
		return a.leftCorners(t.Inner)
	case Alternation:
		var all []string
		for _, arm := range t.Arms {
			all = append(all, a.leftCorners(arm)...)
		}
		return all
	case Sequence:
		var all []string
		for _, it := range t.Items {
			all = append(all, a.leftCorners(it)...)
			if !a.Nullable(it) {
				break
			}
		}
		return all
	default:
		return nil
	}
}
