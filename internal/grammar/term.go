package grammar

import (
	"strings"
)

// Term is one node of a rule body. It is implemented by Terminal,
// NonTerminal, Sequence, Alternation, Optional, Rep0, Rep1 and Labeled.
type Term interface {
	// String gives the term in the notation accepted by Load.
	String() string

	isTerm()
}

// Terminal is a token. Name is either a quoted literal such as 'SELECT' or
// '{', or the bare name of a token class such as VAR1.
type Terminal struct {
	Name string
}

// NonTerminal is a reference to the rule called Name.
type NonTerminal struct {
	Name string
}

// Sequence matches each of its items in order.
type Sequence struct {
	Items []Term
}

// Alternation matches one of its arms. When more than one arm could match,
// the one listed first is taken.
type Alternation struct {
	Arms []Term
}

// Optional matches Inner or nothing.
type Optional struct {
	Inner Term
}

// Rep0 matches Inner zero or more times.
type Rep0 struct {
	Inner Term
}

// Rep1 matches Inner one or more times.
type Rep1 struct {
	Inner Term
}

// Labeled is Inner with a name attached. The label documents the role of the
// term and has no effect on what is matched.
type Labeled struct {
	Label string
	Inner Term
}

func (Terminal) isTerm()    {}
func (NonTerminal) isTerm() {}
func (Sequence) isTerm()    {}
func (Alternation) isTerm() {}
func (Optional) isTerm()    {}
func (Rep0) isTerm()        {}
func (Rep1) isTerm()        {}
func (Labeled) isTerm()     {}

// IsLiteral returns whether the terminal is a quoted literal rather than a
// token class.
func (t Terminal) IsLiteral() bool {
	return len(t.Name) >= 2 && (t.Name[0] == '\'' || t.Name[0] == '"')
}

// Literal returns the text of a literal terminal without its quotes. For
// token classes it returns the empty string.
func (t Terminal) Literal() string {
	if !t.IsLiteral() {
		return ""
	}
	return t.Name[1 : len(t.Name)-1]
}

// binding strength of the context a term is printed in.
const (
	precAlt = iota
	precSeq
	precPostfix
)

func (t Terminal) String() string    { return t.Name }
func (t NonTerminal) String() string { return t.Name }
func (t Sequence) String() string    { return format(t, precAlt) }
func (t Alternation) String() string { return format(t, precAlt) }
func (t Optional) String() string    { return format(t, precAlt) }
func (t Rep0) String() string        { return format(t, precAlt) }
func (t Rep1) String() string        { return format(t, precAlt) }
func (t Labeled) String() string     { return format(t, precAlt) }

func format(t Term, prec int) string {
	switch t := t.(type) {
	case Terminal:
		return t.Name
	case NonTerminal:
		return t.Name
	case Labeled:
		s := t.Label + ":" + format(t.Inner, precPostfix)
		if prec >= precPostfix {
			return "( " + s + " )"
		}
		return s
	case Optional:
		return format(t.Inner, precPostfix) + "?"
	case Rep0:
		return format(t.Inner, precPostfix) + "*"
	case Rep1:
		return format(t.Inner, precPostfix) + "+"
	case Sequence:
		parts := make([]string, len(t.Items))
		for i := range t.Items {
			parts[i] = format(t.Items[i], precSeq)
		}
		s := strings.Join(parts, " ")
		if prec >= precPostfix {
			return "( " + s + " )"
		}
		return s
	case Alternation:
		parts := make([]string, len(t.Arms))
		for i := range t.Arms {
			parts[i] = format(t.Arms[i], precSeq)
		}
		s := strings.Join(parts, " | ")
		if prec >= precSeq {
			return "( " + s + " )"
		}
		return s
	default:
		panic("unknown term type")
	}
}

// Walk calls visit for t and every term nested in it, in pre-order.
func Walk(t Term, visit func(Term)) {
	visit(t)
	switch t := t.(type) {
	case Sequence:
		for _, it := range t.Items {
			Walk(it, visit)
		}
	case Alternation:
		for _, arm := range t.Arms {
			Walk(arm, visit)
		}
	case Optional:
		Walk(t.Inner, visit)
	case Rep0:
		Walk(t.Inner, visit)
	case Rep1:
		Walk(t.Inner, visit)
	case Labeled:
		Walk(t.Inner, visit)
	}
}

// Unlabel returns the term under any labels on t.
func Unlabel(t Term) Term {
	for {
		lb, ok := t.(Labeled)
		if !ok {
			return t
		}
		t = lb.Inner
	}
}
