/*
File   : lox/internal/token/token_test.go
Package: token
*/
package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordsMapToExpectedKinds(t *testing.T) {
	assert.Equal(t, And, Keywords["and"])
	assert.Equal(t, Break, Keywords["break"])
	assert.Equal(t, While, Keywords["while"])
	_, ok := Keywords["notakeyword"]
	assert.False(t, ok)
}

func TestTokenStringIncludesLiteral(t *testing.T) {
	tok := NewLiteral(Number, "3.14", 3.14, 1)
	assert.Contains(t, tok.String(), "3.14")
}

func TestTokenStringWithoutLiteral(t *testing.T) {
	tok := New(Plus, "+", 1)
	assert.Equal(t, `+ "+"`, tok.String())
}
