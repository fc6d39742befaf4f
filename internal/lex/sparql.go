package lex

import (
	"regexp"
	"sort"

	"github.com/dekarrin/marlin/token"
)

// character classes from the SPARQL 1.1 terminal productions, written as the
// inside of a regex bracket expression.
const (
	pnCharsBase = `A-Za-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{02FF}\x{0370}-\x{037D}` +
		`\x{037F}-\x{1FFF}\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}` +
		`\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}`
	pnCharsU = pnCharsBase + `_`
	pnChars  = pnCharsU + `\-0-9\x{00B7}\x{0300}-\x{036F}\x{203F}-\x{2040}`
)

var (
	patVarname  = `[` + pnCharsU + `0-9][` + pnCharsU + `0-9\x{00B7}\x{0300}-\x{036F}\x{203F}-\x{2040}]*`
	patPNPrefix = `[` + pnCharsBase + `](?:[` + pnChars + `.]*[` + pnChars + `])?`
	patPLX      = `(?:%[0-9A-Fa-f]{2}|\\[_~.\-!$&'()*+,;=/?#@%])`
	patPNLocal  = `(?:[` + pnCharsU + `:0-9]|` + patPLX + `)(?:(?:[` + pnChars + `.:]|` + patPLX + `)*(?:[` + pnChars + `:]|` + patPLX + `))?`
	patPNameNS  = `(?:` + patPNPrefix + `)?:`
	patExponent = `[eE][+-]?[0-9]+`
	patInteger  = `[0-9]+`
	patDecimal  = `[0-9]*\.[0-9]+`
	patDouble   = `(?:[0-9]+\.[0-9]*` + patExponent + `|\.[0-9]+` + patExponent + `|[0-9]+` + patExponent + `)`
	patEchar    = `\\[tbnrf\\"']`
	patWS       = `[ \t\r\n]`
)

// sparqlLexer is read-only after init and safe to share.
var sparqlLexer = newSPARQLLexer()

func newSPARQLLexer() *Lexer[token.Kind] {
	lx := NewLexer(token.ERROR)

	lx.MustAddPattern(patWS+`+`, Discard[token.Kind]())
	lx.MustAddPattern(`#[^\r\n]*`, Discard[token.Kind]())

	lx.MustAddPattern(`<[^<>"{}|^`+"`"+`\\\x00-\x20]*>`, Scan(token.IRIREF))
	lx.MustAddPattern(patPNameNS, Scan(token.PNAME_NS))
	lx.MustAddPattern(patPNameNS+patPNLocal, Scan(token.PNAME_LN))
	lx.MustAddPattern(`_:[`+pnCharsU+`0-9](?:[`+pnChars+`.]*[`+pnChars+`])?`, Scan(token.BLANK_NODE_LABEL))
	lx.MustAddPattern(`\?`+patVarname, Scan(token.VAR1))
	lx.MustAddPattern(`\$`+patVarname, Scan(token.VAR2))
	lx.MustAddPattern(`@[a-zA-Z]+(?:-[a-zA-Z0-9]+)*`, Scan(token.LANGTAG))

	lx.MustAddPattern(patInteger, Scan(token.INTEGER))
	lx.MustAddPattern(patDecimal, Scan(token.DECIMAL))
	lx.MustAddPattern(patDouble, Scan(token.DOUBLE))
	lx.MustAddPattern(`\+`+patInteger, Scan(token.INTEGER_POSITIVE))
	lx.MustAddPattern(`\+`+patDecimal, Scan(token.DECIMAL_POSITIVE))
	lx.MustAddPattern(`\+`+patDouble, Scan(token.DOUBLE_POSITIVE))
	lx.MustAddPattern(`-`+patInteger, Scan(token.INTEGER_NEGATIVE))
	lx.MustAddPattern(`-`+patDecimal, Scan(token.DECIMAL_NEGATIVE))
	lx.MustAddPattern(`-`+patDouble, Scan(token.DOUBLE_NEGATIVE))

	lx.MustAddPattern(`'(?:[^\x27\x5C\x0A\x0D]|`+patEchar+`)*'`, Scan(token.STRING_LITERAL1))
	lx.MustAddPattern(`"(?:[^\x22\x5C\x0A\x0D]|`+patEchar+`)*"`, Scan(token.STRING_LITERAL2))
	lx.MustAddPattern(`'''(?:(?:'|'')?(?:[^'\\]|`+patEchar+`))*'''`, Scan(token.STRING_LITERAL_LONG1))
	lx.MustAddPattern(`"""(?:(?:"|"")?(?:[^"\\]|`+patEchar+`))*"""`, Scan(token.STRING_LITERAL_LONG2))

	lx.MustAddPattern(`\(`+patWS+`*\)`, Scan(token.NIL))
	lx.MustAddPattern(`\[`+patWS+`*\]`, Scan(token.ANON))

	lx.MustAddPattern(`[A-Za-z_][A-Za-z0-9_]*`, Classify(classifyWord))

	// longer punctuation first only for readability; longest match decides.
	punct := token.Punctuation()
	sort.Slice(punct, func(i, j int) bool {
		if len(punct[i]) != len(punct[j]) {
			return len(punct[i]) > len(punct[j])
		}
		return punct[i] < punct[j]
	})
	for _, p := range punct {
		k, _ := token.LookupPunctuation(p)
		lx.MustAddPattern(regexp.QuoteMeta(p), Scan(k))
	}

	return lx
}

// classifyWord gives the keyword kind of a bare word. Bare words that are not
// keywords have no meaning in SPARQL and become error tokens.
func classifyWord(text string) token.Kind {
	if k, ok := token.LookupKeyword(text); ok {
		return k
	}
	return token.ERROR
}

// Tokenize lexes SPARQL source into tokens. Whitespace and comments are
// skipped. It never fails: input that cannot be lexed becomes token.ERROR
// tokens, so the tokens together with the skipped trivia cover all of text.
func Tokenize(text string) []token.Token {
	lexed := sparqlLexer.Lex(text)

	toks := make([]token.Token, len(lexed))
	for i, lx := range lexed {
		toks[i] = token.Token{
			Kind: lx.Kind,
			Text: lx.Text,
			Span: token.Span{Start: lx.Start, End: lx.End},
		}
	}
	return toks
}
