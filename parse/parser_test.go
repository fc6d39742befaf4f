package parse

import (
	"testing"

	"github.com/dekarrin/marlin/internal/lex"
	"github.com/dekarrin/marlin/syntax"
	"github.com/dekarrin/marlin/token"
	"github.com/stretchr/testify/assert"
)

func Test_Parser_nth(t *testing.T) {
	assert := assert.New(t)

	p := newParser(lex.Tokenize("SELECT ?x"), 9)

	assert.Equal(token.SELECT, p.nth(0))
	assert.Equal(token.VAR1, p.nth(1))
	assert.Equal(token.EOF, p.nth(2))
	assert.True(p.at(token.SELECT))
	assert.True(p.atAny(token.ASK, token.SELECT))
	assert.False(p.atAny(token.ASK, token.CONSTRUCT))
}

func Test_Parser_fuel(t *testing.T) {
	assert := assert.New(t)

	p := newParser(lex.Tokenize("SELECT"), 6)
	for i := 0; i < maxFuel; i++ {
		p.nth(0)
	}
	assert.PanicsWithValue("parser is stuck at token 0 ('SELECT' \"SELECT\" @0..6)", func() {
		p.nth(0)
	})

	// advancing restores it
	p = newParser(lex.Tokenize("SELECT *"), 8)
	for i := 0; i < maxFuel; i++ {
		p.nth(0)
	}
	p.advance()
	assert.NotPanics(func() {
		for i := 0; i < maxFuel; i++ {
			p.nth(0)
		}
	})
}

func Test_Parser_fuelAtEOF(t *testing.T) {
	assert := assert.New(t)

	p := newParser(nil, 0)
	for i := 0; i < maxFuel; i++ {
		p.nth(0)
	}
	assert.PanicsWithValue("parser is stuck at end of input", func() {
		p.nth(0)
	})

	// closing nodes opened before the input ran out refills it
	p = newParser(lex.Tokenize("( ( ("), 5)
	var opened []marker
	for !p.eof() {
		opened = append(opened, p.open())
		p.advance()
	}
	assert.NotPanics(func() {
		for i := len(opened) - 1; i >= 0; i-- {
			for j := 0; j < maxFuel; j++ {
				p.nth(0)
			}
			p.close(opened[i], syntax.BrackettedExpression)
		}
	})

	// nodes both opened and closed at end of input do not
	p = newParser(nil, 0)
	assert.Panics(func() {
		for i := 0; i <= maxFuel; i++ {
			m := p.open()
			p.nth(0)
			p.closeEarly(m)
		}
	})
}

func Test_Parser_advancePastEnd(t *testing.T) {
	p := newParser(nil, 0)
	assert.Panics(t, p.advance)
}

func Test_Parser_eatAndExpect(t *testing.T) {
	assert := assert.New(t)

	p := newParser(lex.Tokenize("ASK {"), 5)

	assert.False(p.eat(token.SELECT))
	assert.True(p.eat(token.ASK))

	p.expect(token.RBRACE)
	assert.Equal(1, p.pos, "expect must not consume on mismatch")
	if assert.Len(p.diags, 1) {
		assert.Equal("expected '}'", p.diags[0].Message)
		assert.Equal(`"{"`, p.diags[0].Found)
		assert.Equal(token.Span{Start: 4, End: 5}, p.diags[0].Span)
	}

	p.expect(token.LBRACE)
	assert.True(p.eof())

	p.expect(token.RBRACE)
	if assert.Len(p.diags, 2) {
		assert.Equal("end of input", p.diags[1].Found)
		assert.Equal(token.Span{Start: 5, End: 5}, p.diags[1].Span)
	}
}

func Test_Parser_build(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		run         func(p *Parser)
		expect      string
		expectPanic bool
	}{
		{
			name:  "nested nodes",
			input: "ASK { }",
			run: func(p *Parser) {
				m := p.open()
				p.advance()
				inner := p.open()
				p.advance()
				p.advance()
				p.close(inner, syntax.GroupGraphPattern)
				p.close(m, syntax.AskQuery)
			},
			expect: "(AskQuery ASK (GroupGraphPattern { }))",
		},
		{
			name:  "error wrapping",
			input: "ASK ?x",
			run: func(p *Parser) {
				m := p.open()
				p.advance()
				p.advanceWithError("expected '{'")
				p.close(m, syntax.AskQuery)
			},
			expect: "(AskQuery ASK (ErrorTree ?x))",
		},
		{
			name:  "tokens left over",
			input: "ASK ?x",
			run: func(p *Parser) {
				m := p.open()
				p.advance()
				p.close(m, syntax.AskQuery)
			},
			expectPanic: true,
		},
		{
			name:  "node left open",
			input: "ASK",
			run: func(p *Parser) {
				m := p.open()
				p.open()
				p.advance()
				p.close(m, syntax.AskQuery)
			},
			expectPanic: true,
		},
		{
			name:        "nothing opened",
			input:       "",
			run:         func(p *Parser) {},
			expectPanic: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			p := newParser(lex.Tokenize(tc.input), len(tc.input))
			tc.run(p)

			if tc.expectPanic {
				assert.Panics(func() { p.build() })
				return
			}

			assert.Equal(tc.expect, sexpr(p.build()))
		})
	}
}

func Test_Parser_eventsBalanced(t *testing.T) {
	inputs := append([]string{
		"SELECT",
		"SELECT @ WHERE {}",
		"}}} SELECT ((( WHERE",
		"ASK { ?s ?p }",
	}, validQueries...)

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			p := newParser(lex.Tokenize(input), len(input))
			queryUnit(p)

			var opens, closes, advances, depth, maxDepth int
			for i, ev := range p.events {
				switch ev.typ {
				case evOpen:
					opens++
					depth++
					if depth > maxDepth {
						maxDepth = depth
					}
				case evClose:
					closes++
					depth--
					if i < len(p.events)-1 {
						assert.Greater(depth, 0, "root closed at event %d of %d", i, len(p.events))
					}
				case evAdvance:
					advances++
				}
			}

			assert.Equal(opens, closes)
			assert.Equal(len(p.tokens), advances)
			assert.NotPanics(func() { p.build() })
		})
	}
}

func Test_Diagnostic_Format(t *testing.T) {
	assert := assert.New(t)

	src := "SELECT *\nWHERE { ?x }"
	res := ParseQuery(src)

	if !assert.NotEmpty(res.Diagnostics) {
		return
	}
	d := res.Diagnostics[0]
	line, col := d.Position(src)
	assert.Equal(2, line)
	assert.Equal(12, col)
	assert.Equal("2:12: expected VerbPath or VerbSimple, found \"}\"", d.Format(src))
}
