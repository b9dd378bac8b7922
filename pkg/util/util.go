package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/xplshn/vinculum/pkg/config"
)

// Span locates a diagnostic inside one input. Column and Len count runes;
// a zero Column means the whole input.
type Span struct {
	Column int
	Len    int
}

// SourceRecord is one numeral as it was given on the command line or stdin.
type SourceRecord struct {
	Name    string
	Content []rune
}

// Diagnostics prints compiler-style messages for one input record.
type Diagnostics struct {
	Out    io.Writer
	Color  bool
	Record SourceRecord
	Exit   func(code int)
}

func NewDiagnostics(record SourceRecord) *Diagnostics {
	return &Diagnostics{
		Out:    os.Stderr,
		Color:  term.IsTerminal(int(os.Stderr.Fd())),
		Record: record,
		Exit:   os.Exit,
	}
}

func (d *Diagnostics) paint(code, s string) string {
	if !d.Color {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// printErrorLine prints the input and a caret under the offending span
func (d *Diagnostics) printErrorLine(span Span) {
	if len(d.Record.Content) == 0 {
		return
	}
	fmt.Fprintf(d.Out, "  %s\n", string(d.Record.Content))
	if span.Column < 1 {
		return
	}

	// Combining marks take no cell of their own.
	pad := 0
	for _, r := range d.Record.Content[:min(span.Column-1, len(d.Record.Content))] {
		if !isCombining(r) {
			pad++
		}
	}
	marker := "^"
	if span.Len > 1 {
		width := 0
		start := min(span.Column-1, len(d.Record.Content))
		end := min(start+span.Len, len(d.Record.Content))
		for _, r := range d.Record.Content[start:end] {
			if !isCombining(r) {
				width++
			}
		}
		if width > 1 {
			marker += strings.Repeat("~", width-1)
		}
	}
	fmt.Fprintf(d.Out, "  %s%s\n", strings.Repeat(" ", pad), d.paint("32", marker))
}

func isCombining(r rune) bool { return r >= 0x0300 && r <= 0x036F }

func (d *Diagnostics) header(span Span) string {
	if span.Column > 0 {
		return fmt.Sprintf("%s:%d:", d.Record.Name, span.Column)
	}
	return d.Record.Name + ":"
}

// Report prints an error without exiting.
func (d *Diagnostics) Report(span Span, format string, args ...interface{}) {
	fmt.Fprintf(d.Out, "%s %s ", d.header(span), d.paint("31", "error:"))
	fmt.Fprintf(d.Out, format, args...)
	fmt.Fprintln(d.Out)
	d.printErrorLine(span)
}

// Error prints a formatted error message and exits the program
func (d *Diagnostics) Error(span Span, format string, args ...interface{}) {
	d.Report(span, format, args...)
	d.Exit(1)
}

// Warn prints a formatted warning message if the corresponding warning is enabled
func (d *Diagnostics) Warn(cfg *config.Config, wt config.Warning, span Span, format string, args ...interface{}) {
	if !cfg.IsWarningEnabled(wt) {
		return
	}
	fmt.Fprintf(d.Out, "%s %s ", d.header(span), d.paint("33", "warning:"))
	fmt.Fprintf(d.Out, format, args...)
	fmt.Fprintf(d.Out, " [-W%s]\n", cfg.Warnings[wt].Name)
	d.printErrorLine(span)
}
