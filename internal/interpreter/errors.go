/*
File   : lox/internal/interpreter/errors.go
Package: interpreter
*/
package interpreter

import "github.com/tzcl/lox/internal/token"

// RuntimeError is a Lox-level failure (type mismatch, undefined
// variable, division by exact zero, arity mismatch) tied to the token
// whose evaluation produced it, so the diag package can report a line
// number and lexeme the way go-mix's Diagnostics does.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

// breakSignal and returnSignal are control-flow values threaded back up
// through the Stmt-visiting Accept chain, the same tagged-propagation
// idiom go-mix's eval_loops.go uses for its own loop/return values
// (check-the-returned-signal, not panic-based unwinding) generalized to
// also cover `break`.
type breakSignal struct{}

func (breakSignal) Error() string { return "break outside loop" }

type returnSignal struct{ value any }

func (returnSignal) Error() string { return "return outside function" }
