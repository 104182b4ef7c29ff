/*
File   : lox/internal/resolver/visit_stmt.go
Package: resolver
*/
package resolver

import "github.com/tzcl/lox/internal/ast"

// VisitExpressionStmt implements ast.StmtVisitor.
func (r *Resolver) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

// VisitPrintStmt implements ast.StmtVisitor.
func (r *Resolver) VisitPrintStmt(s *ast.PrintStmt) error {
	r.resolveExpr(s.Expression)
	return nil
}

// VisitVarStmt implements ast.StmtVisitor. The name is declared before
// its initializer is resolved and only defined afterward, so the
// initializer can't see its own binding (spec.md section 4.3).
func (r *Resolver) VisitVarStmt(s *ast.VarStmt) error {
	r.declare(s.Name)
	if s.Initializer != nil {
		r.resolveExpr(s.Initializer)
	}
	r.define(s.Name)
	return nil
}

// VisitBlockStmt implements ast.StmtVisitor.
func (r *Resolver) VisitBlockStmt(s *ast.BlockStmt) error {
	r.beginScope()
	r.ResolveStmts(s.Statements)
	r.endScope()
	return nil
}

// VisitIfStmt implements ast.StmtVisitor.
func (r *Resolver) VisitIfStmt(s *ast.IfStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.ThenBranch)
	if s.ElseBranch != nil {
		r.resolveStmt(s.ElseBranch)
	}
	return nil
}

// VisitWhileStmt implements ast.StmtVisitor.
func (r *Resolver) VisitWhileStmt(s *ast.WhileStmt) error {
	r.resolveExpr(s.Condition)
	r.resolveStmt(s.Body)
	return nil
}

// VisitBreakStmt implements ast.StmtVisitor. Validity was already
// enforced by the parser's loop-depth counter; nothing to resolve.
func (r *Resolver) VisitBreakStmt(s *ast.BreakStmt) error { return nil }

// VisitFunctionStmt implements ast.StmtVisitor. The name is declared and
// defined before the body is resolved, enabling recursive calls.
func (r *Resolver) VisitFunctionStmt(s *ast.FunctionStmt) error {
	r.declare(s.Name)
	r.define(s.Name)
	r.resolveFunction(s.Params, s.Body, inFunction)
	return nil
}

// VisitReturnStmt implements ast.StmtVisitor.
func (r *Resolver) VisitReturnStmt(s *ast.ReturnStmt) error {
	if s.Value != nil {
		r.resolveExpr(s.Value)
	}
	return nil
}
