package report

import (
	"fmt"
	"io"

	"github.com/hugoduncan/line-sitter/internal/format"
)

// Violations prints one line per violation, sorted in the order
// CheckSource returned them, prefixed with the file path.
func Violations(w io.Writer, file string, violations []format.Violation, useColor bool) {
	for _, v := range violations {
		label := Colorize(fmt.Sprintf("%s:%d", file, v.Line), ColorYellow, useColor)
		fmt.Fprintf(w, "%s: line too long (%d characters)\n", label, v.Length)
	}
}

// Clean prints a one-line "no violations" confirmation for file.
func Clean(w io.Writer, file string, useColor bool) {
	fmt.Fprintf(w, "%s %s\n", Colorize("ok", ColorGreen, useColor), file)
}

// Error prints a fatal per-file error (parse failure or I/O failure).
func Error(w io.Writer, file string, err error, useColor bool) {
	label := Colorize("error", ColorRed, useColor)
	fmt.Fprintf(w, "%s: %s: %v\n", label, file, err)
}

// Header prints a per-file separator for stdout mode when more than one
// file is being processed (spec.md §6: "optionally with a header per
// file when more than one is processed").
func Header(w io.Writer, file string, useColor bool) {
	fmt.Fprintf(w, "%s\n", Colorize(";; "+file, ColorGray, useColor))
}
