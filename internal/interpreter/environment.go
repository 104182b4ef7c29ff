/*
File   : lox/internal/interpreter/environment.go
Package: interpreter

Environment is the runtime counterpart to go-mix's scope/scope.go, with
one deliberate change: a child environment holds a pointer to its
parent and both share the same mutable binding table their whole
lifetime, rather than being produced by Scope.Copy(). A Lox closure
(spec.md section 4.5) must observe later mutations made through a
different alias of the same environment — the closure a `makeCounter`
call returns must keep updating the counter in that call's environment
(while each call still gets its own) — which a copy-on-capture scope
cannot provide.
*/
package interpreter

import (
	"fmt"

	"github.com/tzcl/lox/internal/token"
)

// Environment is one lexical scope's variable bindings, chained to its
// enclosing scope.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

// NewEnvironment creates a global environment (enclosing == nil).
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]any)}
}

// NewChildEnvironment opens a new scope nested inside parent, as
// entering a block, function call, or loop body does.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{enclosing: parent, values: make(map[string]any)}
}

// Define binds name in this scope, shadowing any outer binding of the
// same name. Re-declaring a name in the same scope silently overwrites
// it, matching go-mix's scope semantics.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name, walking outward through enclosing scopes.
func (e *Environment) Get(name token.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, &RuntimeError{Token: name, Message: fmt.Sprintf("undefined variable '%s'", name.Lexeme)}
}

// Assign rebinds an already-declared name, walking outward through
// enclosing scopes; assigning to an undeclared name is a runtime error
// (Lox has no implicit global declaration via assignment).
func (e *Environment) Assign(name token.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return &RuntimeError{Token: name, Message: fmt.Sprintf("undefined variable '%s'", name.Lexeme)}
}

// ancestor walks exactly depth links outward; depth comes straight from
// the resolver's side table, so it never overshoots the chain.
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name from the scope exactly depth hops out, bypassing the
// walk-and-miss Get would otherwise do — used when the resolver found a
// static binding.
func (e *Environment) GetAt(depth int, name string) any {
	return e.ancestor(depth).values[name]
}

// AssignAt writes name into the scope exactly depth hops out.
func (e *Environment) AssignAt(depth int, name token.Token, value any) {
	e.ancestor(depth).values[name.Lexeme] = value
}
