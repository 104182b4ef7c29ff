/*
File   : lox/internal/interpreter/interpreter_test.go
Package: interpreter

End-to-end tests driving the full scan -> parse -> resolve -> interpret
pipeline, covering spec.md section 8's testable properties and literal
scenarios.
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/parser"
	"github.com/tzcl/lox/internal/resolver"
)

// run executes src as a full program and returns its stdout and whether
// a runtime error occurred.
func run(t *testing.T, src string) (string, bool) {
	t.Helper()
	var out bytes.Buffer
	diags := diag.NewWithWriter(&out)

	p := parser.New(src, diags)
	stmts := p.Parse()
	require.False(t, diags.HadError, "unexpected parse error")

	depths := resolver.Resolve(diags, stmts)
	require.False(t, diags.HadError, "unexpected resolve error")

	in := New(diags)
	in.SetOutput(&out)
	in.SetDepths(depths)
	in.Interpret(stmts)

	return out.String(), diags.HadRuntimeError
}

func TestPrecedenceAndAssociativity(t *testing.T) {
	out, hadErr := run(t, `print 1 + 2 * 3;`)
	require.False(t, hadErr)
	assert.Equal(t, "7\n", out)

	out, hadErr = run(t, `print 1 - 2 - 3;`)
	require.False(t, hadErr)
	assert.Equal(t, "-4\n", out)

	out, hadErr = run(t, `var a; var b; a = b = 1; print a; print b;`)
	require.False(t, hadErr)
	assert.Equal(t, "1\n1\n", out)
}

func TestShortCircuitAndNeverCallsRight(t *testing.T) {
	out, hadErr := run(t, `
		var called = false;
		fun f() { called = true; return true; }
		false and f();
		print called;
	`)
	require.False(t, hadErr)
	assert.Equal(t, "false\n", out)
}

func TestShortCircuitOrNeverCallsRight(t *testing.T) {
	out, hadErr := run(t, `
		var called = false;
		fun f() { called = true; return true; }
		true or f();
		print called;
	`)
	require.False(t, hadErr)
	assert.Equal(t, "false\n", out)
}

func TestClosureCaptureIndependentCounters(t *testing.T) {
	out, hadErr := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() { i = i + 1; print i; }
			return count;
		}
		var c1 = makeCounter(); var c2 = makeCounter();
		c1(); c1(); c2();
	`)
	require.False(t, hadErr)
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestBreakExitsLoopEarly(t *testing.T) {
	out, hadErr := run(t, `for (var i=0; i<10; i=i+1) { if (i==3) break; print i; }`)
	require.False(t, hadErr)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, hadErr := run(t, `1/0;`)
	assert.True(t, hadErr)
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	out, hadErr := run(t, `fun f(a,b){} f(1);`)
	assert.True(t, hadErr)
	assert.Contains(t, out, "expected 2 arguments but got 1")
}

func TestPrintForms(t *testing.T) {
	cases := map[string]string{
		`print nil;`:   "nil\n",
		`print true;`:  "true\n",
		`print 1.5;`:   "1.5\n",
		`print "hi";`:  "hi\n",
	}
	for src, want := range cases {
		out, hadErr := run(t, src)
		require.False(t, hadErr)
		assert.Equal(t, want, out)
	}

	out, hadErr := run(t, `fun makeCounter() {} print makeCounter;`)
	require.False(t, hadErr)
	assert.Equal(t, "<fn makeCounter>\n", out)
}

func TestScenario_ArithmeticPrecedence(t *testing.T) {
	out, hadErr := run(t, `print 1 + 2 * 3;`)
	require.False(t, hadErr)
	assert.Equal(t, "7\n", out)
}

func TestScenario_BlockScopeShadowing(t *testing.T) {
	out, hadErr := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	require.False(t, hadErr)
	assert.Equal(t, "2\n1\n", out)
}

func TestScenario_RecursiveFibonacci(t *testing.T) {
	out, hadErr := run(t, `fun fib(n){ if (n<2) return n; return fib(n-1)+fib(n-2); } print fib(10);`)
	require.False(t, hadErr)
	assert.Equal(t, "55\n", out)
}

func TestScenario_ForLoopPrintsIndices(t *testing.T) {
	out, hadErr := run(t, `for (var i=0;i<3;i=i+1) print i;`)
	require.False(t, hadErr)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestScenario_StringRepeatViaConcatenationLoop(t *testing.T) {
	out, hadErr := run(t, `var s = ""; for (var i=0;i<3;i=i+1) s = s + "a"; print s;`)
	require.False(t, hadErr)
	assert.Equal(t, "aaa\n", out)
}

func TestScenario_MinOnStrings(t *testing.T) {
	var out bytes.Buffer
	diags := diag.NewWithWriter(&out)
	p := parser.New(`min("a","b");`, diags)
	stmts := p.Parse()
	require.False(t, diags.HadError)
	depths := resolver.Resolve(diags, stmts)
	require.False(t, diags.HadError)

	in := New(diags)
	in.SetOutput(&out)
	in.SetDepths(depths)
	in.InterpretREPL(stmts)

	assert.Equal(t, "a\n", out.String())
}

func TestStringNumberCoercionExtension(t *testing.T) {
	out, hadErr := run(t, `print "count: " + 3;`)
	require.False(t, hadErr)
	assert.Equal(t, "count: 3\n", out)
}

func TestStringRepeatOperatorExtension(t *testing.T) {
	out, hadErr := run(t, `print "ab" * 3;`)
	require.False(t, hadErr)
	assert.Equal(t, "ababab\n", out)
}

func TestConditionalExpression(t *testing.T) {
	out, hadErr := run(t, `print true ? "yes" : "no";`)
	require.False(t, hadErr)
	assert.Equal(t, "yes\n", out)
}

func TestCommaOperatorEvaluatesBothYieldsRight(t *testing.T) {
	out, hadErr := run(t, `var x = (1, 2, 3); print x;`)
	require.False(t, hadErr)
	assert.Equal(t, "3\n", out)
}

func TestAnonymousFunctionExpression(t *testing.T) {
	out, hadErr := run(t, `var add = fun (a, b) { return a + b; }; print add(2, 3);`)
	require.False(t, hadErr)
	assert.Equal(t, "5\n", out)
}
