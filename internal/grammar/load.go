package grammar

import (
	"fmt"
	"strings"

	"github.com/dekarrin/marlin/internal/lex"
	"github.com/dekarrin/marlin/internal/util"
)

type bnfKind int

const (
	bnfError bnfKind = iota
	bnfIdent
	bnfLabel
	bnfLiteral
	bnfDefine
	bnfPipe
	bnfQuestion
	bnfStar
	bnfPlus
	bnfLParen
	bnfRParen
	bnfSemicolon
)

func (k bnfKind) String() string {
	switch k {
	case bnfIdent:
		return "identifier"
	case bnfLabel:
		return "label"
	case bnfLiteral:
		return "literal"
	case bnfDefine:
		return "'::='"
	case bnfPipe:
		return "'|'"
	case bnfQuestion:
		return "'?'"
	case bnfStar:
		return "'*'"
	case bnfPlus:
		return "'+'"
	case bnfLParen:
		return "'('"
	case bnfRParen:
		return "')'"
	case bnfSemicolon:
		return "';'"
	default:
		return "unknown input"
	}
}

var bnfLexer = newBNFLexer()

func newBNFLexer() *lex.Lexer[bnfKind] {
	lx := lex.NewLexer(bnfError)

	lx.MustAddPattern(`[ \t\r\n]+`, lex.Discard[bnfKind]())
	lx.MustAddPattern(`#[^\n]*`, lex.Discard[bnfKind]())
	lx.MustAddPattern(`\[[0-9]+\]`, lex.Discard[bnfKind]())

	lx.MustAddPattern(`[A-Za-z_][A-Za-z0-9_]*`, lex.Scan(bnfIdent))
	lx.MustAddPattern(`[A-Za-z_][A-Za-z0-9_]*:`, lex.Scan(bnfLabel))
	lx.MustAddPattern(`'(?:[^'\\\n]|\\.)+'`, lex.Scan(bnfLiteral))
	lx.MustAddPattern(`"(?:[^"\\\n]|\\.)+"`, lex.Scan(bnfLiteral))
	lx.MustAddPattern(`::=|->`, lex.Scan(bnfDefine))
	lx.MustAddPattern(`\|`, lex.Scan(bnfPipe))
	lx.MustAddPattern(`\?`, lex.Scan(bnfQuestion))
	lx.MustAddPattern(`\*`, lex.Scan(bnfStar))
	lx.MustAddPattern(`\+`, lex.Scan(bnfPlus))
	lx.MustAddPattern(`\(`, lex.Scan(bnfLParen))
	lx.MustAddPattern(`\)`, lex.Scan(bnfRParen))
	lx.MustAddPattern(`;`, lex.Scan(bnfSemicolon))

	return lx
}

// Load reads a grammar from its text form:
//
//	# comment
//	[1] Rule ::= 'literal' OtherRule | ( A B )? C* D+
//	Other -> label:TOKEN_CLASS ;
//
// A rule starts at an identifier followed by '::=' or '->' and runs until the
// next rule or an optional ';'. Bracketed rule numbers are ignored. An
// identifier that names a rule is a NonTerminal; any other identifier must be
// spelled in capitals and is taken as a token class Terminal.
func Load(src string) (*Grammar, error) {
	lexed := bnfLexer.Lex(src)

	for _, lx := range lexed {
		if lx.Kind == bnfError {
			return nil, fmt.Errorf("line %d: unexpected %q", lx.Line, lx.Text)
		}
	}

	ld := &loader{toks: lexed, defined: util.NewKeySet[string]()}
	for i := range lexed {
		if ld.ruleStartsAt(i) {
			ld.defined.Add(lexed[i].Text)
		}
	}

	var rules []Rule
	for !ld.done() {
		r, err := ld.rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	return New(rules...)
}

// MustLoad is Load but panics on error.
func MustLoad(src string) *Grammar {
	g, err := Load(src)
	if err != nil {
		panic(err.Error())
	}
	return g
}

type loader struct {
	toks    []lex.Lexeme[bnfKind]
	pos     int
	defined util.KeySet[string]
}

func (ld *loader) done() bool {
	return ld.pos >= len(ld.toks)
}

func (ld *loader) peek() (lex.Lexeme[bnfKind], bool) {
	if ld.done() {
		return lex.Lexeme[bnfKind]{}, false
	}
	return ld.toks[ld.pos], true
}

func (ld *loader) at(kind bnfKind) bool {
	tok, ok := ld.peek()
	return ok && tok.Kind == kind
}

func (ld *loader) ruleStartsAt(i int) bool {
	return i+1 < len(ld.toks) && ld.toks[i].Kind == bnfIdent && ld.toks[i+1].Kind == bnfDefine
}

func (ld *loader) errorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	if tok, ok := ld.peek(); ok {
		return fmt.Errorf("line %d: %s", tok.Line, msg)
	}
	var line int
	if len(ld.toks) > 0 {
		line = ld.toks[len(ld.toks)-1].Line
	}
	return fmt.Errorf("line %d: %s", line, msg)
}

func (ld *loader) describeNext() string {
	tok, ok := ld.peek()
	if !ok {
		return "end of grammar"
	}
	return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
}

func (ld *loader) rule() (Rule, error) {
	if !ld.ruleStartsAt(ld.pos) {
		return Rule{}, ld.errorf("expected rule definition, found %s", ld.describeNext())
	}
	name := ld.toks[ld.pos].Text
	ld.pos += 2

	body, err := ld.alternation()
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", name, err)
	}

	if ld.at(bnfSemicolon) {
		ld.pos++
	}
	if !ld.done() && !ld.ruleStartsAt(ld.pos) {
		return Rule{}, fmt.Errorf("rule %q: %w", name, ld.errorf("unexpected %s", ld.describeNext()))
	}

	return Rule{Name: name, Body: body}, nil
}

func (ld *loader) alternation() (Term, error) {
	var arms []Term
	for {
		arm, err := ld.sequence()
		if err != nil {
			return nil, err
		}
		arms = append(arms, arm)

		if !ld.at(bnfPipe) {
			break
		}
		ld.pos++
	}

	if len(arms) == 1 {
		return arms[0], nil
	}
	return Alternation{Arms: arms}, nil
}

// endsSequence returns whether the next token cannot continue a sequence.
func (ld *loader) endsSequence() bool {
	tok, ok := ld.peek()
	if !ok {
		return true
	}
	switch tok.Kind {
	case bnfPipe, bnfRParen, bnfSemicolon:
		return true
	}
	return ld.ruleStartsAt(ld.pos)
}

func (ld *loader) sequence() (Term, error) {
	var items []Term
	for !ld.endsSequence() {
		it, err := ld.postfix()
		if err != nil {
			return nil, err
		}

		// a parenthesized sequence inside a sequence adds nothing
		if seq, ok := it.(Sequence); ok {
			items = append(items, seq.Items...)
		} else {
			items = append(items, it)
		}
	}

	switch len(items) {
	case 0:
		return nil, ld.errorf("expected a term, found %s", ld.describeNext())
	case 1:
		return items[0], nil
	default:
		return Sequence{Items: items}, nil
	}
}

func (ld *loader) postfix() (Term, error) {
	t, err := ld.atom()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case ld.at(bnfQuestion):
			t = Optional{Inner: t}
		case ld.at(bnfStar):
			t = Rep0{Inner: t}
		case ld.at(bnfPlus):
			t = Rep1{Inner: t}
		default:
			return t, nil
		}
		ld.pos++
	}
}

func (ld *loader) atom() (Term, error) {
	tok, ok := ld.peek()
	if !ok {
		return nil, ld.errorf("expected a term, found end of grammar")
	}

	switch tok.Kind {
	case bnfIdent:
		ld.pos++
		if ld.defined.Has(tok.Text) {
			return NonTerminal{Name: tok.Text}, nil
		}
		if IsTokenClassName(tok.Text) {
			return Terminal{Name: tok.Text}, nil
		}
		return nil, fmt.Errorf("line %d: reference to undefined rule %q", tok.Line, tok.Text)
	case bnfLiteral:
		ld.pos++
		return Terminal{Name: "'" + unescapeLiteral(tok.Text[1:len(tok.Text)-1]) + "'"}, nil
	case bnfLabel:
		ld.pos++
		inner, err := ld.postfix()
		if err != nil {
			return nil, err
		}
		return Labeled{Label: strings.TrimSuffix(tok.Text, ":"), Inner: inner}, nil
	case bnfLParen:
		ld.pos++
		inner, err := ld.alternation()
		if err != nil {
			return nil, err
		}
		if !ld.at(bnfRParen) {
			return nil, ld.errorf("expected ')', found %s", ld.describeNext())
		}
		ld.pos++
		return inner, nil
	default:
		return nil, ld.errorf("expected a term, found %s", ld.describeNext())
	}
}

func unescapeLiteral(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	escaped := false
	for _, ch := range s {
		if !escaped && ch == '\\' {
			escaped = true
			continue
		}
		escaped = false
		sb.WriteRune(ch)
	}
	return sb.String()
}
