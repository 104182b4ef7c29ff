/*
File   : lox/internal/parser/expressions.go
Package: parser

Expression grammar, one function per precedage level exactly as spec.md
section 4.2 lists them (loosest to tightest: assignment, logic_or,
logic_and, comma, conditional, equality, comparison, term, factor, unary,
call, primary). Each binary level follows the same "parse one operand,
then loop consuming operator+operand" left-associative shape; assignment
and the `?:` alternative recurse on themselves for right-associativity.
*/
package parser

import (
	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/token"
)

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: `a = b = 1` parses as `a = (b = 1)`.
// The left-hand side is parsed as a full logic_or expression first (not
// just an identifier) so `a + b = 1` can still be diagnosed precisely as
// an invalid target rather than a syntax error.
func (p *Parser) assignment() ast.Expr {
	expr := p.logicOr()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return ast.NewAssign(variable.Name, value)
		}
		// Reported but not synchronized: the right-hand side already
		// parsed successfully, so there is nothing to recover from.
		p.diags.ReportAt(equals.Line, "at '='", "invalid assignment target")
		return expr
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr {
	expr := p.logicAnd()
	for p.match(token.Or) {
		operator := p.previous()
		right := p.logicAnd()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) logicAnd() ast.Expr {
	expr := p.comma()
	for p.match(token.And) {
		operator := p.previous()
		right := p.comma()
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr
}

func (p *Parser) comma() ast.Expr {
	expr := p.conditional()
	for p.match(token.Comma) {
		operator := p.previous()
		right := p.conditional()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

// conditional is the right-associative `cond ? then : else` ternary.
func (p *Parser) conditional() ast.Expr {
	expr := p.equality()
	if p.match(token.Question) {
		then := p.expression()
		p.consume(token.Colon, "expected ':' after then-branch of conditional expression")
		els := p.conditional()
		return ast.NewConditional(expr, then, els)
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		operator := p.previous()
		right := p.factor()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		operator := p.previous()
		right := p.unary()
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return ast.NewUnary(operator, right)
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(token.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var arguments []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(arguments) >= maxArgs {
				p.error(p.peek(), "can't have more than 255 arguments")
			}
			arguments = append(arguments, p.conditional())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren := p.consume(token.RightParen, "expected ')' after arguments")
	return ast.NewCall(callee, paren, arguments)
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return ast.NewLiteral(false)
	case p.match(token.True):
		return ast.NewLiteral(true)
	case p.match(token.Nil):
		return ast.NewLiteral(nil)
	case p.match(token.Number, token.String):
		return ast.NewLiteral(p.previous().Literal)
	case p.match(token.Fun):
		return p.functionExpr()
	case p.match(token.Identifier):
		return ast.NewVariable(p.previous())
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "expected ')' after expression")
		return ast.NewGroup(expr)
	}

	// Missing-left-operand recovery (spec.md section 4.2): a binary
	// operator in prefix position means the left operand was omitted.
	// Consume and discard the right operand at that operator's own
	// precedence so parsing can continue past it.
	if discard, ok := p.missingLeftOperandRecovery(); ok {
		return discard
	}

	panic(p.error(p.peek(), "expected expression"))
}

func (p *Parser) functionExpr() ast.Expr {
	params, body := p.functionTail("function")
	return ast.NewFunctionExpr(params, body)
}

func (p *Parser) missingLeftOperandRecovery() (ast.Expr, bool) {
	operator := p.peek()
	var parseRight func() ast.Expr

	switch operator.Kind {
	case token.BangEqual, token.EqualEqual:
		parseRight = p.comparison
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		parseRight = p.term
	case token.Plus, token.Slash, token.Star:
		parseRight = p.factor
	default:
		return nil, false
	}

	p.error(operator, "missing left-hand operand")
	p.advance() // consume the operator itself
	parseRight() // parse and discard the right-hand side
	return ast.NewLiteral(nil), true
}
