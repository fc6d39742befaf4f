// Package token defines the lexical tokens of SPARQL as seen by the parser.
//
// The Kind enumeration itself is generated from the grammar by mrlgen (see
// kinds_gen.go); this file holds the hand-written parts around it.
package token

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Kind is the lexical category of a Token.
type Kind int

// String returns the spelling of the kind as it appears in the grammar, for
// instance "'SELECT'", "'{'" or "VAR1".
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsKeyword returns whether k is a keyword token.
func (k Kind) IsKeyword() bool {
	_, ok := keywordKinds[k]
	return ok
}

// IsPunctuation returns whether k is a punctuation token.
func (k Kind) IsPunctuation() bool {
	_, ok := punctKinds[k]
	return ok
}

// Literal returns the literal text of a keyword or punctuation kind. For
// named token classes it returns the empty string.
func (k Kind) Literal() string {
	if s, ok := keywordKinds[k]; ok {
		return s
	}
	return punctKinds[k]
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	all := make([]Kind, kindCount)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// Span is a half-open range of byte offsets into source text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Position gives the 1-based line and column (in runes) of the start of the
// span within src.
func (s Span) Position(src string) (line, col int) {
	if s.Start > len(src) {
		s.Start = len(src)
	}
	before := src[:s.Start]
	line = strings.Count(before, "\n") + 1
	lineStart := strings.LastIndexByte(before, '\n') + 1
	col = len([]rune(before[lineStart:])) + 1
	return line, col
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Token is one lexeme of the input. Text is the exact source slice covered by
// Span.
type Token struct {
	Kind Kind
	Text string
	Span Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%s", t.Kind, t.Text, t.Span)
}

var (
	keywords      = map[string]Kind{}
	exactKeywords = map[string]Kind{}
	punctuation   = map[string]Kind{}
	keywordKinds  = map[Kind]string{}
	punctKinds    = map[Kind]string{}
)

func init() {
	exact := map[string]bool{}
	for _, kw := range caseSensitiveKeywords {
		exact[kw] = true
	}

	for k := Kind(0); k < kindCount; k++ {
		name := kindNames[k]
		if len(name) < 3 || name[0] != '\'' || name[len(name)-1] != '\'' {
			continue
		}
		lit := name[1 : len(name)-1]

		if isWord(lit) {
			keywordKinds[k] = lit
			if exact[lit] {
				exactKeywords[lit] = k
			} else {
				keywords[Fold(lit)] = k
			}
		} else {
			punctKinds[k] = lit
			punctuation[lit] = k
		}
	}
}

// Fold returns the case-folded form of s used for keyword comparison.
func Fold(s string) string {
	// a Caser holds state, so one is made per call.
	return cases.Fold().String(s)
}

// LookupKeyword returns the keyword Kind spelled by word. Keywords match
// without regard to case, except for those listed as case-sensitive in the
// grammar configuration (the 'a' shorthand for rdf:type).
func LookupKeyword(word string) (Kind, bool) {
	if k, ok := exactKeywords[word]; ok {
		return k, true
	}
	k, ok := keywords[Fold(word)]
	return k, ok
}

// LookupPunctuation returns the punctuation Kind spelled by s.
func LookupPunctuation(s string) (Kind, bool) {
	k, ok := punctuation[s]
	return k, ok
}

// Punctuation returns the literal text of every punctuation token.
func Punctuation() []string {
	all := make([]string, 0, len(punctuation))
	for s := range punctuation {
		all = append(all, s)
	}
	return all
}

func isWord(s string) bool {
	for i, ch := range s {
		if ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') {
			continue
		}
		if i > 0 && ch >= '0' && ch <= '9' {
			continue
		}
		return false
	}
	return s != ""
}
