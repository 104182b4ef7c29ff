/*
File   : lox/internal/resolver/resolver.go
Package: resolver

Package resolver is a static pre-pass over the parsed AST that computes,
for every variable reference and assignment, how many lexical scopes
separate it from its binding (spec.md section 4.3). It implements
ast.ExprVisitor/ast.StmtVisitor the same way go-mix's PrintingVisitor
does (one Visit method per node type, walking children via Accept), but
where the teacher's visitor renders text this one threads a scope stack
and writes into a side table (Depths) instead.
*/
package resolver

import (
	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/token"
)

// functionKind distinguishes a function body from the top level. It is
// tracked but not consulted: a bare top-level `return` is accepted here
// and, at runtime, quietly ends the program or REPL line (spec.md's open
// question (iii)).
type functionKind int

const (
	noFunction functionKind = iota
	inFunction
)

// scope maps a name to whether its initializer has finished (spec.md's
// declared-but-not-defined distinction).
type scope map[string]bool

// Resolver walks a program once and produces a Depths table.
type Resolver struct {
	diags  *diag.Diagnostics
	scopes []scope
	depths map[int]int
	fn     functionKind
}

// New creates a Resolver reporting static errors to diags.
func New(diags *diag.Diagnostics) *Resolver {
	return &Resolver{diags: diags, depths: make(map[int]int)}
}

// Resolve walks the whole program and returns the expression-id -> depth
// table. Expressions absent from the table resolve against the globals
// at runtime, per spec.md section 3's invariant.
func Resolve(diags *diag.Diagnostics, statements []ast.Stmt) map[int]int {
	r := New(diags)
	r.ResolveStmts(statements)
	return r.depths
}

// Depths exposes the resolver's side table (the same map Resolve
// returns). Depths from earlier REPL lines are kept by the interpreter,
// which merges every table it is given.
func (r *Resolver) Depths() map[int]int { return r.depths }

// ResolveStmts resolves a statement list without pushing a new scope —
// callers push/pop around blocks and function bodies themselves.
func (r *Resolver) ResolveStmts(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	_ = stmt.Accept(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	_, _ = expr.Accept(r)
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal records the hop count for name if it's found walking the
// scope stack innermost-out; exprID keys the depth into r.depths.
func (r *Resolver) resolveLocal(exprID int, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[exprID] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: resolves against globals at runtime.
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, kind functionKind) {
	enclosingFn := r.fn
	r.fn = kind
	defer func() { r.fn = enclosingFn }()

	r.beginScope()
	defer r.endScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.ResolveStmts(body)
}
