/*
File   : lox/internal/ast/stmt.go
Package: ast

Statement node types, following the same Visitor shape as expr.go.
*/
package ast

import "github.com/tzcl/lox/internal/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// StmtVisitor dispatches over the concrete statement node types.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitBreakStmt(s *BreakStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// ExpressionStmt wraps an expression evaluated for its side effects (or,
// at the top level of a REPL line, for its printed value).
type ExpressionStmt struct {
	Expression Expr
}

// Accept implements Stmt.
func (s *ExpressionStmt) Accept(v StmtVisitor) error { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its display form.
type PrintStmt struct {
	Expression Expr
}

// Accept implements Stmt.
func (s *PrintStmt) Accept(v StmtVisitor) error { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, with an optional initializer.
type VarStmt struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

// Accept implements Stmt.
func (s *VarStmt) Accept(v StmtVisitor) error { return v.VisitVarStmt(s) }

// BlockStmt introduces a new lexical scope around a list of statements.
type BlockStmt struct {
	Statements []Stmt
}

// Accept implements Stmt.
func (s *BlockStmt) Accept(v StmtVisitor) error { return v.VisitBlockStmt(s) }

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

// Accept implements Stmt.
func (s *IfStmt) Accept(v StmtVisitor) error { return v.VisitIfStmt(s) }

// WhileStmt is a condition-guarded loop. `for` loops desugar into this
// during parsing (spec.md section 4.2).
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// Accept implements Stmt.
func (s *WhileStmt) Accept(v StmtVisitor) error { return v.VisitWhileStmt(s) }

// BreakStmt exits the nearest enclosing WhileStmt. LoopDepth is the
// number of loops the parser had open when it parsed this break,
// recorded for diagnostic purposes only — validity is already enforced
// at parse time.
type BreakStmt struct {
	Keyword   token.Token
	LoopDepth int
}

// Accept implements Stmt.
func (s *BreakStmt) Accept(v StmtVisitor) error { return v.VisitBreakStmt(s) }

// FunctionStmt declares a named function.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// Accept implements Stmt.
func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }

// ReturnStmt exits the enclosing function call with an optional value.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil if absent
}

// Accept implements Stmt.
func (s *ReturnStmt) Accept(v StmtVisitor) error { return v.VisitReturnStmt(s) }
