// Package lex provides a regular-expression driven lexer. Patterns are tried
// at every position of the input; the longest match wins and ties go to the
// pattern defined first. Input no pattern matches is gathered into error
// lexemes rather than stopping the lexer, so every byte of the input that is
// not discarded ends up in exactly one lexeme.
package lex

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

type patAct[K any] struct {
	src string
	pat *regexp.Regexp
	act Action[K]
}

// Lexeme is one token produced by a Lexer. Start and End are byte offsets;
// Line and Col are 1-based and count runes.
type Lexeme[K any] struct {
	Kind  K
	Text  string
	Start int
	End   int
	Line  int
	Col   int
}

// Lexer turns text into lexemes of kind K.
type Lexer[K any] struct {
	patterns []patAct[K]
	errKind  K
}

// NewLexer creates a Lexer that gives unmatched input the kind errKind.
func NewLexer[K any](errKind K) *Lexer[K] {
	return &Lexer[K]{
		errKind: errKind,
	}
}

// AddPattern adds a pattern to the lexer. Patterns are matched only at the
// current position, so pat must not be anchored itself.
func (lx *Lexer[K]) AddPattern(pat string, action Action[K]) error {
	compiled, err := regexp.Compile(`^(?:` + pat + `)`)
	if err != nil {
		return fmt.Errorf("cannot compile regex: %w", err)
	}
	compiled.Longest()

	if compiled.MatchString("") {
		return fmt.Errorf("pattern %q matches the empty string", pat)
	}
	if action.Type == ActionClassify && action.Classify == nil {
		return fmt.Errorf("classify action for %q has no classifier", pat)
	}

	lx.patterns = append(lx.patterns, patAct[K]{
		src: pat,
		pat: compiled,
		act: action,
	})
	return nil
}

// MustAddPattern is AddPattern but panics on error.
func (lx *Lexer[K]) MustAddPattern(pat string, action Action[K]) {
	if err := lx.AddPattern(pat, action); err != nil {
		panic(err.Error())
	}
}

// Lex splits all of input into lexemes. It never fails; text that matches no
// pattern is returned as lexemes of the lexer's error kind, one per run of
// unmatched runes.
func (lx *Lexer[K]) Lex(input string) []Lexeme[K] {
	var out []Lexeme[K]

	pos := 0
	line, col := 1, 1

	// start of the run of unmatched input being collected, if any
	panicStart := -1
	panicLine, panicCol := 0, 0

	flushPanic := func() {
		if panicStart < 0 {
			return
		}
		out = append(out, Lexeme[K]{
			Kind:  lx.errKind,
			Text:  input[panicStart:pos],
			Start: panicStart,
			End:   pos,
			Line:  panicLine,
			Col:   panicCol,
		})
		panicStart = -1
	}

	for pos < len(input) {
		idx, length := lx.selectMatch(input[pos:])

		if idx < 0 {
			// no match. enter (or stay in) panic mode and skip a rune
			if panicStart < 0 {
				panicStart = pos
				panicLine, panicCol = line, col
			}
			_, size := utf8.DecodeRuneInString(input[pos:])
			line, col = advancePosition(input[pos:pos+size], line, col)
			pos += size
			continue
		}
		flushPanic()

		text := input[pos : pos+length]
		act := lx.patterns[idx].act

		switch act.Type {
		case ActionScan, ActionClassify:
			kind := act.Kind
			if act.Type == ActionClassify {
				kind = act.Classify(text)
			}
			out = append(out, Lexeme[K]{
				Kind:  kind,
				Text:  text,
				Start: pos,
				End:   pos + length,
				Line:  line,
				Col:   col,
			})
		case ActionNone:
			// discard
		}

		line, col = advancePosition(text, line, col)
		pos += length
	}
	flushPanic()

	return out
}

// selectMatch finds the pattern to use at the start of s. gnu lex style
// resolution: prefer the longest match, and of those the one defined first.
// Returns -1 if nothing matches.
func (lx *Lexer[K]) selectMatch(s string) (idx int, length int) {
	idx = -1
	for i := range lx.patterns {
		loc := lx.patterns[i].pat.FindStringIndex(s)
		if loc == nil {
			continue
		}
		if loc[1] > length {
			idx = i
			length = loc[1]
		}
	}
	return idx, length
}

func advancePosition(text string, line, col int) (int, int) {
	for _, ch := range text {
		if ch == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
