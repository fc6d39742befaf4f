package parse

import (
	"fmt"

	"github.com/dekarrin/marlin/internal/util"
	"github.com/dekarrin/marlin/syntax"
	"github.com/dekarrin/marlin/token"
)

// maxFuel is how many times the parser may look at the next token without
// consuming one. Running out means a rule routine is looping without making
// progress.
const maxFuel = 256

type eventType int

const (
	evOpen eventType = iota
	evClose
	evAdvance
)

type event struct {
	typ  eventType
	kind syntax.Kind
}

// marker is the index of the Open event of a node that has not been closed.
type marker struct {
	index int
}

// Parser is the state of one parse. Rule routines drive it by opening and
// closing nodes and consuming tokens; the tree is built from the resulting
// event log afterwards. A Parser is used for a single input and must not be
// shared between goroutines.
type Parser struct {
	tokens []token.Token
	pos    int
	fuel   int

	// index of the first event logged after the last token was consumed
	eofFrom int

	// byte length of the source, where diagnostics at end of input point
	end int

	events []event
	diags  []Diagnostic
}

func newParser(toks []token.Token, srcLen int) *Parser {
	return &Parser{
		tokens: toks,
		fuel:   maxFuel,
		end:    srcLen,
	}
}

// open starts a node whose kind is decided when it is closed. Until then it
// is an ErrorTree.
func (p *Parser) open() marker {
	m := marker{index: len(p.events)}
	p.events = append(p.events, event{typ: evOpen, kind: syntax.ErrorTree})
	return m
}

// close ends the node started at m and gives it its kind. At end of input,
// closing a node that was opened before the last token was consumed refills
// the fuel; there are only as many of those as the input is deep.
func (p *Parser) close(m marker, kind syntax.Kind) {
	if p.eof() && m.index < p.eofFrom {
		p.fuel = maxFuel
	}
	p.events[m.index].kind = kind
	p.events = append(p.events, event{typ: evClose})
}

// closeEarly ends the node started at m as an ErrorTree because the input
// ran out before the node was complete.
func (p *Parser) closeEarly(m marker) {
	p.report("unexpected end of input")
	p.close(m, syntax.ErrorTree)
}

// advance consumes the current token into the innermost open node.
func (p *Parser) advance() {
	if p.eof() {
		panic("parser advanced past end of input")
	}
	p.fuel = maxFuel
	p.events = append(p.events, event{typ: evAdvance})
	p.pos++
	if p.eof() {
		p.eofFrom = len(p.events)
	}
}

// eof returns whether every token has been consumed. It does not use fuel.
func (p *Parser) eof() bool {
	return p.pos >= len(p.tokens)
}

// nth returns the kind of the token n places after the current one, or
// token.EOF past the end. Every look uses up fuel, including looks at end of
// input.
func (p *Parser) nth(n int) token.Kind {
	if p.fuel == 0 {
		if p.eof() {
			panic("parser is stuck at end of input")
		}
		panic(fmt.Sprintf("parser is stuck at token %d (%s)", p.pos, p.tokens[p.pos]))
	}
	p.fuel--

	if p.pos+n >= len(p.tokens) {
		return token.EOF
	}
	return p.tokens[p.pos+n].Kind
}

func (p *Parser) at(kind token.Kind) bool {
	return p.nth(0) == kind
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	next := p.nth(0)
	for _, k := range kinds {
		if next == k {
			return true
		}
	}
	return false
}

// eat consumes the current token if it is of the given kind.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind. If the current token is
// anything else a diagnostic is recorded and nothing is consumed.
func (p *Parser) expect(kind token.Kind) {
	if p.eat(kind) {
		return
	}
	p.report(fmt.Sprintf("expected %s", kind))
}

// advanceWithError consumes the current token wrapped in an ErrorTree.
func (p *Parser) advanceWithError(msg string) {
	m := p.open()
	p.report(msg)
	p.advance()
	p.close(m, syntax.ErrorTree)
}

// report records a diagnostic at the current token.
func (p *Parser) report(msg string) {
	span := token.Span{Start: p.end, End: p.end}
	found := "end of input"
	if !p.eof() {
		cur := p.tokens[p.pos]
		span = cur.Span
		found = fmt.Sprintf("%q", cur.Text)
	}

	p.diags = append(p.diags, Diagnostic{
		Message: msg,
		Found:   found,
		Span:    span,
	})
}

// build replays the event log into a Tree. The last Close belongs to the root
// and is dropped before the replay so that the root is still on the stack at
// the end. Any imbalance is a bug in a rule routine and panics.
func (p *Parser) build() *syntax.Tree {
	events := p.events
	tokens := p.tokens

	if len(events) == 0 || events[len(events)-1].typ != evClose {
		panic("event log does not end by closing the root")
	}
	events = events[:len(events)-1]

	var stack util.Stack[*syntax.Tree]
	for _, ev := range events {
		switch ev.typ {
		case evOpen:
			stack.Push(&syntax.Tree{Kind: ev.kind})
		case evClose:
			t := stack.Pop()
			if stack.Empty() {
				panic("event log closes the root before its end")
			}
			parent := stack.Peek()
			parent.Children = append(parent.Children, syntax.Child{Tree: t})
		case evAdvance:
			if len(tokens) == 0 {
				panic("event log consumes more tokens than the input has")
			}
			tok := tokens[0]
			tokens = tokens[1:]
			if stack.Empty() {
				panic("event log consumes a token outside of any node")
			}
			top := stack.Peek()
			top.Children = append(top.Children, syntax.Child{Token: &tok})
		}
	}

	if stack.Len() != 1 {
		panic(fmt.Sprintf("event log leaves %d nodes open", stack.Len()))
	}
	if len(tokens) != 0 {
		panic(fmt.Sprintf("event log leaves %d tokens unconsumed", len(tokens)))
	}

	return stack.Pop()
}
