/*
File   : lox/cmd/lox/main.go
Package: main

The CLI entry point, grounded on go-mix/main/main.go's REPL-or-file
dispatch but built on cobra (as CWBudde-go-dws's own CLI entry point
is) instead of hand-rolled os.Args switching, and
restricted to the surface spec.md section 6 defines: `lox` (REPL),
`lox <script>` (file mode), and `--version`. go-mix's `server <port>`
mode has no home here — Lox's external interface is exactly the
interactive/file pair spec.md names, nothing broader.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tzcl/lox/internal/diag"
	"github.com/tzcl/lox/internal/interpreter"
	"github.com/tzcl/lox/internal/parser"
	"github.com/tzcl/lox/internal/repl"
	"github.com/tzcl/lox/internal/resolver"
)

// version is the interpreter's reported version (spec.md section 6).
var version = "0.1.0"

// Exit codes, per spec.md section 6.
const (
	exitOK          = 0
	exitUsageError  = 64
	exitDataError   = 65
	exitOpenFailure = 66
	exitRuntime     = 70
)

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := exitOK

	cmd := &cobra.Command{
		Use:          "lox [script]",
		Short:        "lox is an interpreter for the Lox scripting language",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.New(version).Start(os.Stdout)
				return nil
			}
			exitCode = runFile(args[0])
			return nil
		},
	}
	cmd.Flags().BoolP("version", "v", false, "print the interpreter version and exit")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		if printVersion, _ := cmd.Flags().GetBool("version"); printVersion {
			fmt.Fprintln(os.Stdout, "lox "+version)
			os.Exit(exitOK)
		}
	}

	if err := cmd.Execute(); err != nil {
		return exitUsageError
	}
	return exitCode
}

// runFile executes a single Lox script, mapping failures onto spec.md
// section 6's exit-code contract: 66 if the file can't be opened, 65 for
// a scan/parse/static error, 70 for a runtime error, 0 otherwise.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lox: can't open file %q: %v\n", path, err)
		return exitOpenFailure
	}

	diags := diag.New()
	p := parser.New(string(source), diags)
	statements := p.Parse()
	if diags.HadError {
		return exitDataError
	}

	depths := resolver.Resolve(diags, statements)
	if diags.HadError {
		return exitDataError
	}

	in := interpreter.New(diags)
	in.SetDepths(depths)
	in.Interpret(statements)
	if diags.HadRuntimeError {
		return exitRuntime
	}
	return exitOK
}
