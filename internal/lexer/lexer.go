/*
File   : lox/internal/lexer/lexer.go
Package: lexer

Package lexer turns Lox source text into a token stream. The scanning
loop (two cursors, a running line counter, a switch dispatch per
character) is grounded on go-mix/lexer/lexer.go; unlike the teacher's
scanner, this one never stops at the first bad byte — it records an
error through diag.Diagnostics and keeps scanning, per spec.md section
4.1, so a single run surfaces every lexical error in the file.
*/
package lexer

import (
	"strconv"

	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/token"
)

// Scanner performs single-pass lexical analysis over a source string.
type Scanner struct {
	src   string
	diags *diag.Diagnostics

	start   int
	current int
	line    int
}

// New creates a Scanner over src, reporting lexical errors to diags.
func New(src string, diags *diag.Diagnostics) *Scanner {
	return &Scanner{src: src, diags: diags, line: 1}
}

// ScanTokens scans the entire source and returns its token sequence,
// always terminated by a single EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	var tokens []token.Token
	for !s.atEnd() {
		s.start = s.current
		if tok, ok := s.scanToken(); ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.EOF, "", s.line))
	return tokens
}

func (s *Scanner) scanToken() (token.Token, bool) {
	c := s.advance()
	switch c {
	case '(':
		return s.make(token.LeftParen), true
	case ')':
		return s.make(token.RightParen), true
	case '{':
		return s.make(token.LeftBrace), true
	case '}':
		return s.make(token.RightBrace), true
	case ',':
		return s.make(token.Comma), true
	case '.':
		return s.make(token.Dot), true
	case '-':
		return s.make(token.Minus), true
	case '+':
		return s.make(token.Plus), true
	case ';':
		return s.make(token.Semicolon), true
	case '*':
		return s.make(token.Star), true
	case '?':
		return s.make(token.Question), true
	case ':':
		return s.make(token.Colon), true
	case '!':
		if s.matchAdvance('=') {
			return s.make(token.BangEqual), true
		}
		return s.make(token.Bang), true
	case '=':
		if s.matchAdvance('=') {
			return s.make(token.EqualEqual), true
		}
		return s.make(token.Equal), true
	case '<':
		if s.matchAdvance('=') {
			return s.make(token.LessEqual), true
		}
		return s.make(token.Less), true
	case '>':
		if s.matchAdvance('=') {
			return s.make(token.GreaterEqual), true
		}
		return s.make(token.Greater), true
	case '/':
		switch {
		case s.matchAdvance('/'):
			for s.peek() != '\n' && !s.atEnd() {
				s.advance()
			}
			return token.Token{}, false
		case s.matchAdvance('*'):
			s.blockComment()
			return token.Token{}, false
		default:
			return s.make(token.Slash), true
		}
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		s.line++
		return token.Token{}, false
	case '"':
		return s.string()
	default:
		switch {
		case isDigit(c):
			return s.number()
		case isAlpha(c):
			return s.identifier()
		default:
			s.diags.Report(s.line, "unexpected character: "+string(c))
			return token.Token{}, false
		}
	}
}

// blockComment consumes a (possibly nested) /* ... */ comment. Depth
// tracking lets Lox doc comments nest, matching spec.md section 4.1.
func (s *Scanner) blockComment() {
	startLine := s.line
	depth := 1
	for depth > 0 {
		if s.atEnd() {
			s.diags.Report(startLine, "unterminated block comment")
			return
		}
		switch {
		case s.peek() == '/' && s.peekNext() == '*':
			s.advance()
			s.advance()
			depth++
		case s.peek() == '*' && s.peekNext() == '/':
			s.advance()
			s.advance()
			depth--
		case s.peek() == '\n':
			s.line++
			s.advance()
		default:
			s.advance()
		}
	}
}

func (s *Scanner) string() (token.Token, bool) {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.diags.Report(startLine, "unterminated string")
		return token.Token{}, false
	}
	s.advance() // closing quote
	value := s.src[s.start+1 : s.current-1]
	return token.NewLiteral(token.String, s.lexeme(), value, s.line), true
}

func (s *Scanner) number() (token.Token, bool) {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	lexeme := s.lexeme()
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.diags.Report(s.line, "invalid number literal: "+lexeme)
		value = 0
	}
	return token.NewLiteral(token.Number, lexeme, value, s.line), true
}

func (s *Scanner) identifier() (token.Token, bool) {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := s.lexeme()
	if kind, ok := token.Keywords[lexeme]; ok {
		return s.make(kind), true
	}
	return s.make(token.Identifier), true
}

func (s *Scanner) make(kind token.Kind) token.Token {
	return token.New(kind, s.lexeme(), s.line)
}

func (s *Scanner) lexeme() string {
	return s.src[s.start:s.current]
}

func (s *Scanner) atEnd() bool {
	return s.current >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) matchAdvance(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
