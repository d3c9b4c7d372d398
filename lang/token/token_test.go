package token_test

import (
	"testing"

	"github.com/mna/slang/lang/token"
	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	cases := []struct {
		lit  string
		want token.Kind
	}{
		{"and", token.AND},
		{"class", token.CLASS},
		{"while", token.WHILE},
		{"fn", token.FN},
		{"self", token.SELF},
		{"clock", token.IDENTIFIER},
		{"Let", token.IDENTIFIER}, // case-sensitive
	}

	for _, tt := range cases {
		t.Run(tt.lit, func(t *testing.T) {
			assert.Equal(t, tt.want, token.LookupIdent(tt.lit))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "+", token.PLUS.String())
	assert.Equal(t, "end of file", token.EOF.String())
	assert.Equal(t, "'+'", token.PLUS.GoString())
	assert.Equal(t, "'while'", token.WHILE.GoString())
}

func TestTokenString(t *testing.T) {
	tok := token.Token{Kind: token.NUMBER, Lexeme: "3.14", Literal: 3.14, Line: 1}
	assert.Equal(t, "number literal 3.14", tok.String())

	tok = token.Token{Kind: token.PLUS, Lexeme: "+", Line: 1}
	assert.Equal(t, "+", tok.String())
}
