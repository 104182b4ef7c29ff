/*
File   : lox/internal/diag/diag.go
Package: diag

Package diag is the interpreter's diagnostics sink. It is grounded on
go-mix's habit of collecting errors into a slice instead of panicking
(parser.Parser.Errors) and on go-dws's CompilerError, which separates a
message from how it is formatted for a terminal. Every pipeline stage
(scanner, parser, resolver, interpreter) is handed a *Diagnostics and
reports through it rather than printing directly, so the REPL can reset
it per line and tests can swap in a buffer.
*/
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Diagnostics accumulates scan/parse/static errors and runtime errors for
// a single interpreter run. HadError and HadRuntimeError are checked by
// the CLI driver to pick an exit code (spec.md section 6).
type Diagnostics struct {
	Writer          io.Writer
	HadError        bool
	HadRuntimeError bool

	errColor *color.Color
}

// New creates a Diagnostics reporting to os.Stderr.
func New() *Diagnostics {
	return &Diagnostics{
		Writer:   os.Stderr,
		errColor: color.New(color.FgRed),
	}
}

// NewWithWriter creates a Diagnostics reporting to w. Used by tests to
// capture diagnostic output instead of writing to the real stderr.
func NewWithWriter(w io.Writer) *Diagnostics {
	return &Diagnostics{Writer: w, errColor: color.New(color.FgRed)}
}

// Reset clears both error flags. The REPL calls this before each line so
// a failed line doesn't poison the ones that follow it.
func (d *Diagnostics) Reset() {
	d.HadError = false
	d.HadRuntimeError = false
}

// Report records a scan or static error at the given line, in the form
// "[line L] Error: MSG".
func (d *Diagnostics) Report(line int, message string) {
	d.HadError = true
	d.print(fmt.Sprintf("[line %d] Error: %s\n", line, message))
}

// ReportAt records a parse error tied to a token, formatting "at end" or
// "at 'LEXEME'" before the message as spec.md section 4.5 requires.
func (d *Diagnostics) ReportAt(line int, where, message string) {
	d.HadError = true
	if where == "" {
		d.print(fmt.Sprintf("[line %d] Error: %s\n", line, message))
		return
	}
	d.print(fmt.Sprintf("[line %d] Error %s: %s\n", line, where, message))
}

// RuntimeError records a runtime error, in the form
// "[line L] Error: 'LEXEME' MSG".
func (d *Diagnostics) RuntimeError(line int, lexeme, message string) {
	d.HadRuntimeError = true
	d.print(fmt.Sprintf("[line %d] Error: '%s' %s\n", line, lexeme, message))
}

func (d *Diagnostics) print(s string) {
	w := d.Writer
	if w == nil {
		w = os.Stderr
	}
	d.errColor.Fprint(w, s)
}
