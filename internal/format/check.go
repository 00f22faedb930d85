package format

import "github.com/hugoduncan/line-sitter/internal/reader"

// CheckSource is check_source(S, C) (spec.md §4.10, §6): a pure function
// returning the line-length violations not covered by an ignore marker.
// It never mutates source.
func CheckSource(source string, cfg Config) ([]Violation, error) {
	v := violations(source, cfg.LineLength)
	if len(v) == 0 {
		return nil, nil
	}

	tree, err := reader.Parse(source)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	ignored := collectIgnored(tree.Root, tree.Source)

	out := make([]Violation, 0, len(v))
	for _, violation := range v {
		if ignored.ContainsLine(violation.Line) {
			continue
		}
		out = append(out, violation)
	}
	return out, nil
}
