// Package syntax holds the concrete syntax tree produced by the parser.
//
// A Tree is lossless: walking its leaves in order yields every token of the
// input, including tokens the parser could not place, which are wrapped in
// ErrorTree nodes. Whitespace and comments are not tokens and do not appear.
package syntax

import (
	"fmt"
	"strings"

	"github.com/dekarrin/marlin/token"
)

const (
	treeLevelEmpty               = "        "
	treeLevelOngoing             = "  |     "
	treeLevelPrefix              = "  |%s: "
	treeLevelPrefixLast          = `  \%s: `
	treeLevelPrefixNamePadChar   = '-'
	treeLevelPrefixNamePadAmount = 3
)

// Kind is the grammar rule a Tree node was parsed as. The zero value is
// ErrorTree.
type Kind int

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	all := make([]Kind, kindCount)
	for i := range all {
		all[i] = Kind(i)
	}
	return all
}

// KindOf returns the Kind for the grammar rule with the given name.
func KindOf(rule string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == rule {
			return k, true
		}
	}
	return ErrorTree, false
}

// Child is one child of a Tree. Exactly one of Token and Tree is set.
type Child struct {
	Token *token.Token
	Tree  *Tree
}

// Tree is a node of the concrete syntax tree.
type Tree struct {
	Kind     Kind
	Children []Child
}

// IsError returns whether t is an ErrorTree node.
func (t *Tree) IsError() bool {
	return t.Kind == ErrorTree
}

// Walk calls visit for t and every descendant tree in depth-first pre-order.
// If visit returns false the children of that node are skipped.
func (t *Tree) Walk(visit func(*Tree) bool) {
	if !visit(t) {
		return
	}
	for _, c := range t.Children {
		if c.Tree != nil {
			c.Tree.Walk(visit)
		}
	}
}

// Find returns the first node of the given kind in pre-order, or nil if there
// is none. t itself is included in the search.
func (t *Tree) Find(kind Kind) *Tree {
	var found *Tree
	t.Walk(func(n *Tree) bool {
		if found != nil {
			return false
		}
		if n.Kind == kind {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAll returns every node of the given kind in pre-order. Nodes nested
// inside a match are included.
func (t *Tree) FindAll(kind Kind) []*Tree {
	var all []*Tree
	t.Walk(func(n *Tree) bool {
		if n.Kind == kind {
			all = append(all, n)
		}
		return true
	})
	return all
}

// Subtrees returns the direct children of t that are trees.
func (t *Tree) Subtrees() []*Tree {
	var subs []*Tree
	for _, c := range t.Children {
		if c.Tree != nil {
			subs = append(subs, c.Tree)
		}
	}
	return subs
}

// Errors returns every ErrorTree node in t.
func (t *Tree) Errors() []*Tree {
	return t.FindAll(ErrorTree)
}

// ErrorCount returns the number of ErrorTree nodes in t.
func (t *Tree) ErrorCount() int {
	return len(t.Errors())
}

// Tokens returns every leaf token of t in source order.
func (t *Tree) Tokens() []token.Token {
	var toks []token.Token
	t.appendTokens(&toks)
	return toks
}

func (t *Tree) appendTokens(toks *[]token.Token) {
	for _, c := range t.Children {
		if c.Token != nil {
			*toks = append(*toks, *c.Token)
		} else if c.Tree != nil {
			c.Tree.appendTokens(toks)
		}
	}
}

// Span returns the source range covered by t's tokens. A tree with no tokens
// has a zero Span.
func (t *Tree) Span() token.Span {
	toks := t.Tokens()
	if len(toks) == 0 {
		return token.Span{}
	}
	return token.Span{Start: toks[0].Span.Start, End: toks[len(toks)-1].Span.End}
}

// Text returns the concatenated text of every leaf token with nothing between
// them.
func (t *Tree) Text() string {
	var sb strings.Builder
	for _, tok := range t.Tokens() {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Print returns source text for t that lexes back to the same tokens: leaf
// texts joined by a single space.
func (t *Tree) Print() string {
	toks := t.Tokens()
	texts := make([]string, len(toks))
	for i := range toks {
		texts[i] = toks[i].Text
	}
	return strings.Join(texts, " ")
}

// String returns a prettified representation of the entire tree suitable for
// use in line-by-line comparisons of tree structure. Token spans are left out
// so that two parses of differently spaced source compare equal.
func (t *Tree) String() string {
	return t.leveledStr("", "")
}

func (t *Tree) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder

	sb.WriteString(firstPrefix)
	sb.WriteString(fmt.Sprintf("( %s )", t.Kind))

	for i := range t.Children {
		sb.WriteRune('\n')
		var leveledFirstPrefix string
		var leveledContPrefix string
		if i+1 < len(t.Children) {
			leveledFirstPrefix = contPrefix + makeTreeLevelPrefix("")
			leveledContPrefix = contPrefix + treeLevelOngoing
		} else {
			leveledFirstPrefix = contPrefix + makeTreeLevelPrefixLast("")
			leveledContPrefix = contPrefix + treeLevelEmpty
		}

		c := t.Children[i]
		if c.Token != nil {
			sb.WriteString(leveledFirstPrefix)
			sb.WriteString(fmt.Sprintf("(%s %q)", c.Token.Kind, c.Token.Text))
		} else if c.Tree != nil {
			sb.WriteString(c.Tree.leveledStr(leveledFirstPrefix, leveledContPrefix))
		}
	}

	return sb.String()
}

func makeTreeLevelPrefix(msg string) string {
	for len([]rune(msg)) < treeLevelPrefixNamePadAmount {
		msg = string(treeLevelPrefixNamePadChar) + msg
	}
	return fmt.Sprintf(treeLevelPrefix, msg)
}

func makeTreeLevelPrefixLast(msg string) string {
	for len([]rune(msg)) < treeLevelPrefixNamePadAmount {
		msg = string(treeLevelPrefixNamePadChar) + msg
	}
	return fmt.Sprintf(treeLevelPrefixLast, msg)
}
