/*
File   : lox/internal/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	diags := diag.New()
	s := New(`(){},.-+;/* */* ? : != == = <= < > >=`, diags)
	tokens := s.ScanTokens()

	assert.False(t, diags.HadError)
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Question, token.Colon, token.BangEqual,
		token.EqualEqual, token.Equal, token.LessEqual, token.Less,
		token.Greater, token.GreaterEqual, token.EOF,
	}, kinds(tokens))
}

func TestScanTokens_NumbersAndStrings(t *testing.T) {
	diags := diag.New()
	s := New(`123 3.14 "hello"`, diags)
	tokens := s.ScanTokens()

	assert.False(t, diags.HadError)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, "hello", tokens[2].Literal)
}

func TestScanTokens_Keywords(t *testing.T) {
	diags := diag.New()
	s := New(`and class else false fun for if nil or print return super this true var while break`, diags)
	tokens := s.ScanTokens()

	assert.False(t, diags.HadError)
	want := []token.Kind{
		token.And, token.Class, token.Else, token.False, token.Fun, token.For,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While, token.Break, token.EOF,
	}
	if diff := cmp.Diff(want, kinds(tokens)); diff != "" {
		t.Errorf("token kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestScanTokens_LineCommentsAndBlockComments(t *testing.T) {
	diags := diag.New()
	s := New("1 // trailing comment\n2 /* block\ncomment */ 3", diags)
	tokens := s.ScanTokens()

	assert.False(t, diags.HadError)
	assert.Equal(t, []any{1.0, 2.0, 3.0}, []any{tokens[0].Literal, tokens[1].Literal, tokens[2].Literal})
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
	assert.Equal(t, 3, tokens[2].Line) // one embedded newline inside the block comment
}

func TestScanTokens_UnterminatedStringReportsError(t *testing.T) {
	diags := diag.New()
	s := New(`"unterminated`, diags)
	s.ScanTokens()

	assert.True(t, diags.HadError)
}

func TestScanTokens_LineIsMonotoneNonDecreasing(t *testing.T) {
	diags := diag.New()
	s := New("var a = 1;\nvar b = 2;\nprint a + b;", diags)
	tokens := s.ScanTokens()

	last := 0
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, last)
		last = tok.Line
	}
	assert.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
}
