/*
File   : lox/internal/parser/parser.go
Package: parser

Package parser implements a recursive-descent parser for Lox, one token
of lookahead, following the grammar in spec.md section 4.2 exactly (one
function per precedence level rather than a Pratt dispatch table). The
error-collection style — record a message and keep going instead of
panicking out to the caller — and the two-cursor token bookkeeping are
grounded on go-mix/parser/parser.go (par.Errors, par.CurrToken/NextToken,
par.addError). Internally, a parse error still unwinds to the nearest
statement boundary via panic/recover (parseError below never escapes this
package) so every precedence-level function can assume its sub-parses
succeeded without threading an error return through each one.
*/
package parser

import (
	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/lexer"
	"github.com/tzcl/lox/internal/token"
)

// maxArgs bounds argument and parameter lists (spec.md section 4.2).
const maxArgs = 255

// parseError is the internal unwind signal for a syntax error. It never
// escapes Parse(); synchronize() recovers it at each declaration boundary.
type parseError struct{ token token.Token }

func (parseError) Error() string { return "parse error" }

// Parser consumes a token sequence and produces a program (statement
// list). Construct one with New and call Parse once.
type Parser struct {
	diags     *diag.Diagnostics
	tokens    []token.Token
	current   int
	loopDepth int

	lastErrorAtEOF bool
}

// New creates a Parser over src. Scanning happens eagerly so Parse can
// be a pure function of the token slice.
func New(src string, diags *diag.Diagnostics) *Parser {
	scanner := lexer.New(src, diags)
	return &Parser{diags: diags, tokens: scanner.ScanTokens()}
}

// NewFromTokens creates a Parser directly from a token sequence, mainly
// useful for tests that want to skip scanning.
func NewFromTokens(tokens []token.Token, diags *diag.Diagnostics) *Parser {
	return &Parser{diags: diags, tokens: tokens}
}

// Parse consumes the whole token stream and returns the program's
// statement list. Statements that failed to parse are omitted, never
// nil-padded — check diags.HadError to know whether the result is
// complete.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- token cursor -----------------------------------------------------

func (p *Parser) peek() token.Token { return p.tokens[p.current] }

func (p *Parser) previous() token.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind or raises a parse error.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.error(p.peek(), message))
}

// error records a diagnostic for tok and returns the unwind signal; it
// does not panic itself so callers can choose to discard-and-continue
// (e.g. the 255-argument limit, which is non-fatal per spec.md).
func (p *Parser) error(tok token.Token, message string) parseError {
	where := "at '" + tok.Lexeme + "'"
	if tok.Kind == token.EOF {
		where = "at end"
	}
	p.lastErrorAtEOF = tok.Kind == token.EOF
	p.diags.ReportAt(tok.Line, where, message)
	return parseError{tok}
}

// EndedAtEOF reports whether the most recent parse error was raised with
// EOF as the current token — the REPL's signal that the input is merely
// incomplete (an unterminated block, call, or grouping) rather than
// genuinely malformed, so it can buffer another line instead of
// reporting.
func (p *Parser) EndedAtEOF() bool { return p.lastErrorAtEOF }

// synchronize discards tokens until a likely statement boundary, bounding
// how far a single syntax error cascades (spec.md section 4.2).
func (p *Parser) synchronize() {
	// A parse error is raised at the current token; when that token already
	// begins a new statement, resume right there instead of discarding it.
	switch p.peek().Kind {
	case token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
		return
	}
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

// recoverParseError is called via defer/recover at each declaration
// boundary; it swallows a parseError (already reported) and re-panics
// anything else.
func (p *Parser) recoverParseError() {
	if r := recover(); r != nil {
		if _, ok := r.(parseError); ok {
			p.synchronize()
			return
		}
		panic(r)
	}
}
