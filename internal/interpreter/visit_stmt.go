/*
File   : lox/internal/interpreter/visit_stmt.go
Package: interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/tzcl/lox/internal/ast"
)

// VisitExpressionStmt implements ast.StmtVisitor.
func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := in.evaluate(s.Expression)
	return err
}

// VisitPrintStmt implements ast.StmtVisitor (spec.md section 4.4's
// display forms, via Stringify).
func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) error {
	value, err := in.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(in.stdout, Stringify(value))
	return nil
}

// VisitVarStmt implements ast.StmtVisitor. A variable without an
// initializer starts bound to nil (spec.md section 4.3).
func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) error {
	var value any
	if s.Initializer != nil {
		v, err := in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	in.env.Define(s.Name.Lexeme, value)
	return nil
}

// VisitBlockStmt implements ast.StmtVisitor, opening a fresh environment
// for the block's duration.
func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) error {
	return in.executeBlock(s.Statements, NewChildEnvironment(in.env))
}

// VisitIfStmt implements ast.StmtVisitor.
func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if IsTruthy(cond) {
		return in.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return in.execute(s.ElseBranch)
	}
	return nil
}

// VisitWhileStmt implements ast.StmtVisitor. A breakSignal bubbling up
// from the body is absorbed here; any other error (including a
// returnSignal unwinding through an enclosing function call) propagates.
func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !IsTruthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			if _, ok := err.(breakSignal); ok {
				return nil
			}
			return err
		}
	}
}

// VisitBreakStmt implements ast.StmtVisitor, producing the breakSignal
// the nearest enclosing VisitWhileStmt absorbs.
func (in *Interpreter) VisitBreakStmt(s *ast.BreakStmt) error {
	return breakSignal{}
}

// VisitFunctionStmt implements ast.StmtVisitor, binding the function's
// name to a Function closed over the environment active at declaration
// (enabling recursion, since the name is already bound before the body
// can run).
func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) error {
	fn := NewFunction(s.Name.Lexeme, s.Params, s.Body, in.env)
	in.env.Define(s.Name.Lexeme, fn)
	return nil
}

// VisitReturnStmt implements ast.StmtVisitor, producing the returnSignal
// Function.Call unwinds to.
func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) error {
	var value any
	if s.Value != nil {
		v, err := in.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return returnSignal{value: value}
}
