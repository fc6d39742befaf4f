package token

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	testCases := []struct {
		kind   Kind
		expect string
	}{
		{kind: EOF, expect: "EOF"},
		{kind: SELECT, expect: "'SELECT'"},
		{kind: LBRACE, expect: "'{'"},
		{kind: VAR1, expect: "VAR1"},
		{kind: Kind(-1), expect: "Kind(-1)"},
		{kind: kindCount, expect: fmt.Sprintf("Kind(%d)", int(kindCount))},
	}

	for _, tc := range testCases {
		t.Run(tc.expect, func(t *testing.T) {
			assert.Equal(t, tc.expect, tc.kind.String())
		})
	}
}

func Test_Kind_classification(t *testing.T) {
	assert := assert.New(t)

	assert.True(SELECT.IsKeyword())
	assert.False(SELECT.IsPunctuation())
	assert.Equal("SELECT", SELECT.Literal())

	assert.True(NEQ.IsPunctuation())
	assert.Equal("!=", NEQ.Literal())

	assert.False(IRIREF.IsKeyword())
	assert.False(IRIREF.IsPunctuation())
	assert.Equal("", IRIREF.Literal())

	assert.Equal("a", A.Literal())
}

func Test_LookupKeyword(t *testing.T) {
	testCases := []struct {
		word     string
		expect   Kind
		expectOK bool
	}{
		{word: "SELECT", expect: SELECT, expectOK: true},
		{word: "select", expect: SELECT, expectOK: true},
		{word: "Group_Concat", expect: GROUP_CONCAT, expectOK: true},
		{word: "a", expect: A, expectOK: true},
		{word: "A", expectOK: false},
		{word: "selection", expectOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.word, func(t *testing.T) {
			assert := assert.New(t)

			actual, ok := LookupKeyword(tc.word)

			assert.Equal(tc.expectOK, ok)
			if tc.expectOK {
				assert.Equal(tc.expect, actual)
			}
		})
	}
}

func Test_LookupPunctuation(t *testing.T) {
	assert := assert.New(t)

	k, ok := LookupPunctuation("^^")
	assert.True(ok)
	assert.Equal(DCARET, k)

	_, ok = LookupPunctuation("@")
	assert.False(ok)

	for _, p := range Punctuation() {
		k, ok := LookupPunctuation(p)
		assert.True(ok, p)
		assert.Equal(p, k.Literal())
	}
}

func Test_Span_Position(t *testing.T) {
	src := "SELECT\n  ?é ?x\n"

	testCases := []struct {
		name       string
		span       Span
		expectLine int
		expectCol  int
	}{
		{name: "start", span: Span{0, 6}, expectLine: 1, expectCol: 1},
		{name: "second line", span: Span{9, 12}, expectLine: 2, expectCol: 3},
		{name: "after a multibyte rune", span: Span{13, 15}, expectLine: 2, expectCol: 6},
		{name: "end of input", span: Span{16, 16}, expectLine: 3, expectCol: 1},
		{name: "past end", span: Span{99, 99}, expectLine: 3, expectCol: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			line, col := tc.span.Position(src)
			assert.Equal(t, tc.expectLine, line)
			assert.Equal(t, tc.expectCol, col)
		})
	}
}

func Test_Kinds(t *testing.T) {
	all := Kinds()
	assert.Equal(t, int(kindCount), len(all))
	assert.Equal(t, EOF, all[0])
	assert.Equal(t, ERROR, all[1])
}
