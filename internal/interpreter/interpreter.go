/*
File   : lox/internal/interpreter/interpreter.go
Package: interpreter

Interpreter walks the AST the same way go-mix's eval/evaluator.go does —
implementing the Expr/Stmt visitor pair and recursing via Accept — but
evaluating Lox semantics (spec.md sections 4.4 and 4.5) instead of
go-mix's language. Globals is exposed so the REPL/CLI can install
natives and so a REPL can keep state across lines.
*/
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/token"
)

// Interpreter evaluates a resolved program.
type Interpreter struct {
	diags   *diag.Diagnostics
	globals *Environment
	env     *Environment
	depths  map[int]int
	stdout  io.Writer
}

// New creates an Interpreter with a fresh global environment populated
// with the standard natives (`min` and the `pi` constant).
func New(diags *diag.Diagnostics) *Interpreter {
	globals := NewEnvironment()
	in := &Interpreter{diags: diags, globals: globals, env: globals, stdout: os.Stdout}
	defineNatives(globals)
	return in
}

// SetOutput redirects `print` output; tests use this to capture stdout.
func (in *Interpreter) SetOutput(w io.Writer) { in.stdout = w }

// SetDepths installs the resolver's expression-id -> scope-depth table
// computed ahead of evaluation (spec.md section 4.3). Entries are merged
// into those from earlier calls (expression ids are process-unique), so
// functions declared on an earlier REPL line keep their resolved depths.
func (in *Interpreter) SetDepths(depths map[int]int) {
	if in.depths == nil {
		in.depths = make(map[int]int, len(depths))
	}
	for id, depth := range depths {
		in.depths[id] = depth
	}
}

// Globals exposes the top-level environment, e.g. for a REPL that wants
// to print a variable's current value between lines.
func (in *Interpreter) Globals() *Environment { return in.globals }

// Interpret runs a full program, reporting a runtime error via diags and
// stopping at the first one (spec.md section 4.4: a runtime error halts
// execution of the current program/REPL line).
func (in *Interpreter) Interpret(statements []ast.Stmt) {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

// InterpretREPL runs one REPL line, auto-printing the value of a bare
// expression statement (spec.md section 6's REPL convenience, grounded
// on go-mix/repl/repl.go's interactive evaluation loop).
func (in *Interpreter) InterpretREPL(statements []ast.Stmt) {
	for _, stmt := range statements {
		if exprStmt, ok := stmt.(*ast.ExpressionStmt); ok {
			value, err := in.evaluate(exprStmt.Expression)
			if err != nil {
				in.reportRuntimeError(err)
				return
			}
			fmt.Fprintln(in.stdout, Stringify(value))
			continue
		}
		if err := in.execute(stmt); err != nil {
			in.reportRuntimeError(err)
			return
		}
	}
}

func (in *Interpreter) reportRuntimeError(err error) {
	if _, ok := err.(returnSignal); ok {
		// A top-level `return` ends the program (or REPL line) quietly.
		return
	}
	if rerr, ok := err.(*RuntimeError); ok {
		in.diags.RuntimeError(rerr.Token.Line, rerr.Token.Lexeme, rerr.Message)
		return
	}
	// A break escaping to the top level is a parser gap, not user-facing;
	// report generically rather than panic.
	in.diags.RuntimeError(0, "", err.Error())
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	return stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr ast.Expr) (any, error) {
	return expr.Accept(in)
}

// executeBlock runs statements in env, always restoring the interpreter's
// previous environment on the way out — including when a statement
// panics, returns, or breaks — mirroring go-mix's scope push/pop around
// block evaluation.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// lookupVariable resolves a variable read using the resolver's depth
// table when available, falling back to a dynamic lookup in globals
// otherwise (spec.md section 3's invariant: unresolved references are
// global references).
func (in *Interpreter) lookupVariable(exprID int, name token.Token) (any, error) {
	if depth, ok := in.depths[exprID]; ok {
		return in.env.GetAt(depth, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

// assignVariable writes a variable using the resolver's depth table when
// available, falling back to a dynamic assignment in globals otherwise.
func (in *Interpreter) assignVariable(exprID int, name token.Token, value any) error {
	if depth, ok := in.depths[exprID]; ok {
		in.env.AssignAt(depth, name, value)
		return nil
	}
	return in.globals.Assign(name, value)
}
