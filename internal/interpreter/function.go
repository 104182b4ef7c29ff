/*
File   : lox/internal/interpreter/function.go
Package: interpreter

Function and Native are the two callable runtime kinds (spec.md section
3). Function mirrors go-mix's function/function.go shape — name,
parameter list, body, captured scope — but captures its defining
Environment by direct pointer, the same fix environment.go applies to
scope.Copy(), so the closures Lox needs stay linked to live state.
*/
package interpreter

import (
	"fmt"

	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/token"
)

// Function is a user-defined Lox function or anonymous function
// expression, closed over the environment active at its declaration.
type Function struct {
	name    string // "" for an anonymous function expression
	params  []token.Token
	body    []ast.Stmt
	closure *Environment
}

// NewFunction builds the callable value for a `fun name(...) {...}`
// declaration.
func NewFunction(name string, params []token.Token, body []ast.Stmt, closure *Environment) *Function {
	return &Function{name: name, params: params, body: body, closure: closure}
}

// NewAnonymousFunction builds the callable value for a `fun (...) {...}`
// expression (the anonymous-function-literal feature supplementing
// spec.md from original_source/'s grammar).
func NewAnonymousFunction(params []token.Token, body []ast.Stmt, closure *Environment) *Function {
	return &Function{params: params, body: body, closure: closure}
}

// Name returns the declared name, or "anonymous" for a function
// expression.
func (f *Function) Name() string {
	if f.name == "" {
		return "anonymous"
	}
	return f.name
}

// Arity is the declared parameter count.
func (f *Function) Arity() int { return len(f.params) }

// Call runs the function body in a fresh environment chained to its
// closure, one binding per parameter, returning the value produced by a
// `return` statement (or nil if the body falls off the end).
func (f *Function) Call(in *Interpreter, arguments []any) (any, error) {
	env := NewChildEnvironment(f.closure)
	for i, param := range f.params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := in.executeBlock(f.body, env)
	if err == nil {
		return nil, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}

// Native is a built-in function implemented in Go (spec.md's domain
// stack: `min` is exposed this way; the `pi` constant is a plain number
// global).
type Native struct {
	Name  string
	Arity int
	Fn    func(args []any) (any, error)
}

// Call invokes the native implementation directly; natives don't need
// an Interpreter since they never evaluate further Lox code.
func (n *Native) Call(_ *Interpreter, arguments []any) (any, error) {
	return n.Fn(arguments)
}

// Callable is satisfied by both Function and Native.
type Callable interface {
	Arity() int
	Call(in *Interpreter, arguments []any) (any, error)
}

var (
	_ Callable = (*Function)(nil)
	_ Callable = (*Native)(nil)
)

func callableName(c Callable) string {
	switch v := c.(type) {
	case *Function:
		return v.Name()
	case *Native:
		return v.Name
	default:
		return fmt.Sprintf("%v", c)
	}
}
