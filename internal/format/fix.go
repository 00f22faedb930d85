package format

import "github.com/hugoduncan/line-sitter/internal/reader"

// MaxIterations bounds the fix loop (spec.md §4.9): a safety net, not a
// tuning knob — correct inputs converge well below it.
const MaxIterations = 100

// FixSource is fix_source(S, C) (spec.md §4.9, §6): repeatedly finds the
// first over-width line, plans a break for the outermost breakable form
// that still spans it, and applies that break, until no violations
// remain, no candidate makes progress, or the iteration cap is hit.
func FixSource(source string, cfg Config) (string, error) {
	indents := resolveIndents(cfg)
	s := source

	for iterations := 0; iterations < MaxIterations; {
		v := violations(s, cfg.LineLength)
		if len(v) == 0 {
			return s, nil
		}

		tree, err := reader.Parse(s)
		if err != nil {
			return "", &ParseError{Cause: err}
		}
		ignored := collectIgnored(tree.Root, tree.Source)

		targetLine := v[0].Line
		candidates := breakableForms(tree.Root, targetLine, ignored)

		progressed := false
		for _, candidate := range candidates {
			edits := plan(candidate, tree.Source, indents)
			if len(edits) == 0 {
				continue
			}
			next, err := apply(s, edits)
			if err != nil {
				return "", err
			}
			if next != s {
				s = next
				iterations++
				progressed = true
				break
			}
		}
		if !progressed {
			return s, nil // unbreakable content remains
		}
	}
	return s, nil
}
