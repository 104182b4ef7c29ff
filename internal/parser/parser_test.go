/*
File   : lox/internal/parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzcl/lox/internal/ast"
	"github.com/tzcl/lox/internal/diag"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diag.Diagnostics) {
	t.Helper()
	diags := diag.New()
	stmts := New(src, diags).Parse()
	return stmts, diags
}

func TestParse_ValidProgramHasNoErrors(t *testing.T) {
	stmts, diags := parse(t, `var a = 1; print a + 2 * 3;`)
	require.False(t, diags.HadError)
	assert.Len(t, stmts, 2)
}

func TestParse_InvalidProgramStillProducesPartialAST(t *testing.T) {
	// missing semicolon after the first statement: a syntax error, but
	// the parser must synchronize and keep parsing rather than give up.
	stmts, diags := parse(t, `var a = 1 print a;`)
	assert.True(t, diags.HadError)
	assert.NotEmpty(t, stmts)
}

func TestParse_MissingLeftOperandRecovers(t *testing.T) {
	stmts, diags := parse(t, `print + 1;`)
	assert.True(t, diags.HadError)
	require.Len(t, stmts, 1)
}

func TestParse_ForLoopDesugarsIntoWhile(t *testing.T) {
	stmts, diags := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, diags.HadError)
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "expected the for-loop to desugar into an outer block")
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar)

	whileStmt, isWhile := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, isWhile)

	body, isBlock := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, isBlock, "expected the loop body to be wrapped with the increment step")
	assert.Len(t, body.Statements, 2)
}

func TestParse_BreakOutsideLoopIsAParseError(t *testing.T) {
	_, diags := parse(t, `break;`)
	assert.True(t, diags.HadError)
}

func TestParse_BreakInsideLoopIsFine(t *testing.T) {
	_, diags := parse(t, `while (true) { break; }`)
	assert.False(t, diags.HadError)
}

func TestParse_InvalidAssignmentTargetReportsButContinues(t *testing.T) {
	stmts, diags := parse(t, `1 + 2 = 3;`)
	assert.True(t, diags.HadError)
	assert.Len(t, stmts, 1)
}

func TestParse_AnonymousFunctionExpression(t *testing.T) {
	stmts, diags := parse(t, `var f = fun (a, b) { return a + b; };`)
	require.False(t, diags.HadError)
	require.Len(t, stmts, 1)

	varStmt := stmts[0].(*ast.VarStmt)
	_, ok := varStmt.Initializer.(*ast.FunctionExpr)
	assert.True(t, ok)
}

func TestParse_ConditionalIsRightAssociative(t *testing.T) {
	stmts, diags := parse(t, `print true ? 1 : false ? 2 : 3;`)
	require.False(t, diags.HadError)
	require.Len(t, stmts, 1)

	printStmt := stmts[0].(*ast.PrintStmt)
	cond, ok := printStmt.Expression.(*ast.Conditional)
	require.True(t, ok)

	_, elseIsConditional := cond.Else.(*ast.Conditional)
	assert.True(t, elseIsConditional)
}
