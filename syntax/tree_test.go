package syntax

import (
	"testing"

	"github.com/dekarrin/marlin/token"
	"github.com/stretchr/testify/assert"
)

func tok(kind token.Kind, text string, start int) Child {
	return Child{Token: &token.Token{
		Kind: kind,
		Text: text,
		Span: token.Span{Start: start, End: start + len(text)},
	}}
}

func node(kind Kind, children ...Child) Child {
	return Child{Tree: &Tree{Kind: kind, Children: children}}
}

// "ASK { ?s @ }"
func sampleTree() *Tree {
	return node(AskQuery,
		tok(token.ASK, "ASK", 0),
		node(WhereClause,
			node(GroupGraphPattern,
				tok(token.LBRACE, "{", 4),
				node(GroupGraphPatternSub,
					node(Var, tok(token.VAR1, "?s", 6)),
					node(ErrorTree, tok(token.ERROR, "@", 9)),
				),
				tok(token.RBRACE, "}", 11),
			),
		),
	).Tree
}

func Test_Tree_String(t *testing.T) {
	expect := `( AskQuery )
  |---: ('ASK' "ASK")
  \---: ( WhereClause )
          \---: ( GroupGraphPattern )
                  |---: ('{' "{")
                  |---: ( GroupGraphPatternSub )
                  |       |---: ( Var )
                  |       |       \---: (VAR1 "?s")
                  |       \---: ( ErrorTree )
                  |               \---: (ErrorToken "@")
                  \---: ('}' "}")`

	assert.Equal(t, expect, sampleTree().String())
}

func Test_Tree_tokens(t *testing.T) {
	assert := assert.New(t)

	tree := sampleTree()

	toks := tree.Tokens()
	if assert.Len(toks, 5) {
		assert.Equal("ASK", toks[0].Text)
		assert.Equal("}", toks[4].Text)
	}
	assert.Equal("ASK{?s@}", tree.Text())
	assert.Equal("ASK { ?s @ }", tree.Print())
	assert.Equal(token.Span{Start: 0, End: 12}, tree.Span())
	assert.Equal(token.Span{}, (&Tree{Kind: Prologue}).Span())
}

func Test_Tree_search(t *testing.T) {
	assert := assert.New(t)

	tree := sampleTree()

	ggp := tree.Find(GroupGraphPattern)
	if assert.NotNil(ggp) {
		assert.Equal("{?s@}", ggp.Text())
		assert.Len(ggp.Subtrees(), 1)
	}
	assert.Nil(tree.Find(SelectQuery))
	assert.Same(tree, tree.Find(AskQuery))

	assert.Len(tree.FindAll(Var), 1)
	assert.Equal(1, tree.ErrorCount())
	assert.True(tree.Errors()[0].IsError())
	assert.False(tree.IsError())

	var visited []Kind
	tree.Walk(func(n *Tree) bool {
		visited = append(visited, n.Kind)
		return n.Kind != GroupGraphPatternSub
	})
	assert.Equal([]Kind{AskQuery, WhereClause, GroupGraphPattern, GroupGraphPatternSub}, visited)
}

func Test_KindOf(t *testing.T) {
	testCases := []struct {
		rule     string
		expect   Kind
		expectOK bool
	}{
		{rule: "QueryUnit", expect: QueryUnit, expectOK: true},
		{rule: "Var", expect: Var, expectOK: true},
		{rule: "ErrorTree", expect: ErrorTree, expectOK: true},
		{rule: "NotARule", expect: ErrorTree, expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.rule, func(t *testing.T) {
			actual, ok := KindOf(tc.rule)
			assert.Equal(t, tc.expectOK, ok)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func Test_Kind_String(t *testing.T) {
	assert.Equal(t, "QueryUnit", QueryUnit.String())
	assert.Equal(t, "Kind(-3)", Kind(-3).String())
	assert.Len(t, Kinds(), int(kindCount))
}
