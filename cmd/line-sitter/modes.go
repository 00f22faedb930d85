package main

import (
	"io"
	"os"

	"github.com/hugoduncan/line-sitter/internal/format"
	"github.com/hugoduncan/line-sitter/internal/report"
)

// runCheck runs check_source over every file and reports violations.
// Exit code 1 if any file has a remaining violation, 2 on the first
// parse/IO error, 0 if every file is clean.
func runCheck(w io.Writer, files []string, cfg format.Config, useColor bool) error {
	anyViolations := false
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		violations, err := format.CheckSource(string(source), cfg)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		if len(violations) == 0 {
			report.Clean(w, path, useColor)
			continue
		}
		anyViolations = true
		report.Violations(w, path, violations, useColor)
	}
	if anyViolations {
		return exitError{code: 1, err: errViolationsFound}
	}
	return nil
}

// runWrite runs fix_source over every file and overwrites it in place
// when the result differs from the input.
func runWrite(files []string, cfg format.Config) error {
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		fixed, err := format.FixSource(string(source), cfg)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		if fixed == string(source) {
			continue
		}
		info, err := os.Stat(path)
		mode := os.FileMode(0o644)
		if err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(fixed), mode); err != nil {
			return exitError{code: 2, err: err}
		}
	}
	return nil
}

// runStdout runs fix_source over every file and prints the result,
// with a header per file when more than one file is processed.
func runStdout(w io.Writer, files []string, cfg format.Config, useColor bool) error {
	multi := len(files) > 1
	for _, path := range files {
		source, err := os.ReadFile(path)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		fixed, err := format.FixSource(string(source), cfg)
		if err != nil {
			return exitError{code: 2, err: err}
		}
		if multi {
			report.Header(w, path, useColor)
		}
		io.WriteString(w, fixed)
		if len(fixed) == 0 || fixed[len(fixed)-1] != '\n' {
			io.WriteString(w, "\n")
		}
	}
	return nil
}

type violationsFoundError struct{}

func (violationsFoundError) Error() string { return "violations found" }

var errViolationsFound = violationsFoundError{}
