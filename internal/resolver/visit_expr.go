/*
File   : lox/internal/resolver/visit_expr.go
Package: resolver
*/
package resolver

import "github.com/tzcl/lox/internal/ast"

// VisitLiteralExpr implements ast.ExprVisitor.
func (r *Resolver) VisitLiteralExpr(e *ast.Literal) (any, error) { return nil, nil }

// VisitVariableExpr implements ast.ExprVisitor. Reading a local variable
// while it is declared-but-not-yet-defined is a static error (spec.md
// section 4.3): `var a = a;` inside a block must not see the outer `a`.
func (r *Resolver) VisitVariableExpr(e *ast.Variable) (any, error) {
	if len(r.scopes) > 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
			r.diags.Report(e.Name.Line, "can't read local variable in its own initialiser")
		}
	}
	r.resolveLocal(e.ID(), e.Name)
	return nil, nil
}

// VisitGroupExpr implements ast.ExprVisitor.
func (r *Resolver) VisitGroupExpr(e *ast.Group) (any, error) {
	r.resolveExpr(e.Expression)
	return nil, nil
}

// VisitAssignExpr implements ast.ExprVisitor.
func (r *Resolver) VisitAssignExpr(e *ast.Assign) (any, error) {
	r.resolveExpr(e.Value)
	r.resolveLocal(e.ID(), e.Name)
	return nil, nil
}

// VisitUnaryExpr implements ast.ExprVisitor.
func (r *Resolver) VisitUnaryExpr(e *ast.Unary) (any, error) {
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitLogicalExpr implements ast.ExprVisitor.
func (r *Resolver) VisitLogicalExpr(e *ast.Logical) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitBinaryExpr implements ast.ExprVisitor.
func (r *Resolver) VisitBinaryExpr(e *ast.Binary) (any, error) {
	r.resolveExpr(e.Left)
	r.resolveExpr(e.Right)
	return nil, nil
}

// VisitCallExpr implements ast.ExprVisitor.
func (r *Resolver) VisitCallExpr(e *ast.Call) (any, error) {
	r.resolveExpr(e.Callee)
	for _, arg := range e.Arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

// VisitConditionalExpr implements ast.ExprVisitor.
func (r *Resolver) VisitConditionalExpr(e *ast.Conditional) (any, error) {
	r.resolveExpr(e.Cond)
	r.resolveExpr(e.Then)
	r.resolveExpr(e.Else)
	return nil, nil
}

// VisitFunctionExpr implements ast.ExprVisitor, resolving an anonymous
// function literal exactly like a named FunctionStmt's body.
func (r *Resolver) VisitFunctionExpr(e *ast.FunctionExpr) (any, error) {
	r.resolveFunction(e.Params, e.Body, inFunction)
	return nil, nil
}
