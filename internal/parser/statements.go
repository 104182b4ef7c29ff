/*
File   : lox/internal/parser/statements.go
Package: parser

Statement-level grammar productions: declarations, control flow, blocks,
and the `for` desugaring. Mirrors spec.md section 4.2's grammar
one-for-one; the recovery idiom (declaration() recovers a parseError and
resumes at the next synchronization point) generalizes go-mix's
collect-don't-panic parser to a parse tree that can still be partially
well-formed after an error, as spec.md section 8 requires.
*/
package parser

import (
	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/token"
)

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer p.recoverParseError()

	switch {
	case p.match(token.Var):
		return p.varDeclaration()
	case p.match(token.Fun):
		return p.function("function")
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "expected variable name")

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after variable declaration")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.Identifier, "expected "+kind+" name")
	params, body := p.functionTail(kind)
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

// functionTail parses the "(params) { body }" shared by named functions
// and anonymous function expressions.
func (p *Parser) functionTail(kind string) ([]token.Token, []ast.Stmt) {
	p.consume(token.LeftParen, "expected '(' after "+kind+" name")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 parameters")
			}
			params = append(params, p.consume(token.Identifier, "expected parameter name"))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after parameters")
	p.consume(token.LeftBrace, "expected '{' before "+kind+" body")
	return params, p.block()
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	case p.match(token.Break):
		return p.breakStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "expected ';' after value")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "expected ';' after expression")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'if'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after if condition")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'while'")
	condition := p.expression()
	p.consume(token.RightParen, "expected ')' after condition")

	p.loopDepth++
	defer func() { p.loopDepth-- }()
	body := p.statement()

	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; step) body` into a block
// containing the initializer followed by a while loop, exactly as
// spec.md section 4.2 specifies.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "expected '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after loop condition")

	var step ast.Expr
	if !p.check(token.RightParen) {
		step = p.expression()
	}
	p.consume(token.RightParen, "expected ')' after for clauses")

	p.loopDepth++
	body := p.statement()
	p.loopDepth--

	if step != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: step}}}
	}

	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "expected ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

func (p *Parser) breakStatement() ast.Stmt {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.error(keyword, "'break' outside a loop")
	}
	p.consume(token.Semicolon, "expected ';' after 'break'")
	return &ast.BreakStmt{Keyword: keyword, LoopDepth: p.loopDepth}
}
