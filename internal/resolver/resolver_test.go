/*
File   : lox/internal/resolver/resolver_test.go
Package: resolver
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/parser"
)

func TestResolve_LocalVariableInOwnInitializerIsAStaticError(t *testing.T) {
	diags := diag.New()
	stmts := parser.New(`var a = 1; { var a = a; }`, diags).Parse()
	require.False(t, diags.HadError)

	Resolve(diags, stmts)
	assert.True(t, diags.HadError)
}

func TestResolve_InnerBlockShadowsOuterUntilItEnds(t *testing.T) {
	diags := diag.New()
	stmts := parser.New(`var a = 1; { var a = 2; print a; } print a;`, diags).Parse()
	require.False(t, diags.HadError)

	depths := Resolve(diags, stmts)
	assert.False(t, diags.HadError)

	// Both print statements' variable reads get distinct resolutions:
	// the inner one resolves to depth 0 (the block scope), the outer to
	// the global (absent from the table).
	block := stmts[1].(*ast.BlockStmt)
	innerPrint := block.Statements[1].(*ast.PrintStmt)
	innerVar := innerPrint.Expression.(*ast.Variable)
	depth, ok := depths[innerVar.ID()]
	require.True(t, ok)
	assert.Equal(t, 0, depth)

	outerPrint := stmts[2].(*ast.PrintStmt)
	outerVar := outerPrint.Expression.(*ast.Variable)
	_, ok = depths[outerVar.ID()]
	assert.False(t, ok, "global reference should be absent from the depth table")
}

func TestResolve_RecursiveFunctionResolvesItsOwnName(t *testing.T) {
	diags := diag.New()
	stmts := parser.New(`fun fact(n) { if (n <= 1) return 1; return n * fact(n - 1); }`, diags).Parse()
	require.False(t, diags.HadError)

	Resolve(diags, stmts)
	assert.False(t, diags.HadError)
}
