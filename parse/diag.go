package parse

import (
	"fmt"

	"github.com/dekarrin/marlin/token"
)

// Diagnostic is a syntax error found while parsing. Parsing carries on past
// every error, so one malformed construct can produce several diagnostics.
type Diagnostic struct {
	// Message says what the parser wanted, such as "expected '}'".
	Message string

	// Found describes the token the parser was looking at: its quoted text,
	// or "end of input".
	Found string

	// Span is the location of that token. At end of input it is the empty
	// span at the end of the source.
	Span token.Span
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s, found %s", d.Span, d.Message, d.Found)
}

// Position returns the 1-based line and column of d in src.
func (d Diagnostic) Position(src string) (line, col int) {
	return d.Span.Position(src)
}

// Format gives the diagnostic with its line and column in src.
func (d Diagnostic) Format(src string) string {
	line, col := d.Position(src)
	return fmt.Sprintf("%d:%d: %s, found %s", line, col, d.Message, d.Found)
}
