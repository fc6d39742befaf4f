// Package parse is an error-tolerant parser for SPARQL 1.1 queries and
// updates. It always produces a complete syntax.Tree that holds every token of
// the input; syntax errors become ErrorTree nodes plus Diagnostics.
//
// The rule routines in rules_gen.go are generated from the grammar in
// internal/grammar by mrlgen.
package parse

//go:generate go run ../cmd/mrlgen -c ../mrlgen.toml

import (
	"github.com/dekarrin/marlin/internal/lex"
	"github.com/dekarrin/marlin/syntax"
)

// Mode is what kind of request text is parsed as.
type Mode int

const (
	Query Mode = iota
	Update
)

func (m Mode) String() string {
	switch m {
	case Query:
		return "query"
	case Update:
		return "update"
	default:
		return "unknown"
	}
}

// ParseMode returns the Mode named by s ("query" or "update").
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "query":
		return Query, true
	case "update":
		return Update, true
	default:
		return Query, false
	}
}

// Result is the outcome of a parse.
type Result struct {
	Tree        *syntax.Tree
	Diagnostics []Diagnostic
}

// OK returns whether the input parsed without any error.
func (r Result) OK() bool {
	return len(r.Diagnostics) == 0 && r.Tree.ErrorCount() == 0
}

// Parse parses text as a SPARQL query and returns its tree. It never fails;
// use ParseQuery to get the diagnostics as well.
func Parse(text string) *syntax.Tree {
	return ParseQuery(text).Tree
}

// ParseQuery parses text as a SPARQL query. The root of the tree is a
// QueryUnit.
func ParseQuery(text string) Result {
	return run(text, queryUnit)
}

// ParseUpdate parses text as a SPARQL update request. The root of the tree is
// an UpdateUnit.
func ParseUpdate(text string) Result {
	return run(text, updateUnit)
}

// ParseAs parses text in the given mode.
func ParseAs(mode Mode, text string) Result {
	if mode == Update {
		return ParseUpdate(text)
	}
	return ParseQuery(text)
}

func run(text string, start func(*Parser)) Result {
	p := newParser(lex.Tokenize(text), len(text))
	start(p)
	return Result{
		Tree:        p.build(),
		Diagnostics: p.diags,
	}
}
