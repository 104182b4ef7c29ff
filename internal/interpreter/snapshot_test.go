/*
File   : lox/internal/interpreter/snapshot_test.go
Package: interpreter

Golden-output coverage for spec.md section 8's end-to-end scenarios,
grounded on CWBudde-go-dws's fixture_test.go use of go-snaps: run a
program, snapshot its stdout, and let go-snaps flag any future
regression in the printed output rather than re-asserting each string
inline.
*/
package interpreter

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/parser"
	"github.com/tzcl/lox/internal/resolver"
)

func TestSnapshot_EndToEndScenarios(t *testing.T) {
	scenarios := map[string]string{
		"arithmetic_precedence": `print 1 + 2 * 3;`,
		"block_shadowing":       `var a = 1; { var a = 2; print a; } print a;`,
		"recursive_fibonacci":   `fun fib(n){ if (n<2) return n; return fib(n-1)+fib(n-2); } print fib(10);`,
		"for_loop_indices":      `for (var i=0;i<3;i=i+1) print i;`,
		"string_concat_loop":    `var s = ""; for (var i=0;i<3;i=i+1) s = s + "a"; print s;`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			diags := diag.NewWithWriter(&out)

			p := parser.New(src, diags)
			stmts := p.Parse()
			require.False(t, diags.HadError)

			depths := resolver.Resolve(diags, stmts)
			require.False(t, diags.HadError)

			in := New(diags)
			in.SetOutput(&out)
			in.SetDepths(depths)
			in.Interpret(stmts)

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
