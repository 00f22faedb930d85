package format

import "fmt"

// ParseError surfaces a reader failure with file context (spec.md §4.11 /
// §7: "parse failure ... Error carrying file path + byte range of first
// error node"). Modeled on opal-lang-opal/runtime/parser.ParseError's
// Filename/Position/Message shape.
type ParseError struct {
	File  string
	Byte  int
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("%s:%d: parse error: %v", e.File, e.Line, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// InvariantError reports a bug in the engine itself, never user input:
// overlapping edits, or an indent column that went negative. It is
// distinguished from ParseError so callers never confuse "bad source" with
// "bad engine" (spec.md §4.11, §7).
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string { return "internal invariant violated: " + e.Msg }
