package format

import "strings"

// Violation is one over-width line (spec.md §4.3).
type Violation struct {
	Line   int // 1-indexed
	Length int // character count
}

// violations splits s into 1-indexed lines and returns those whose
// character count exceeds limit, in line order.
func violations(s string, limit int) []Violation {
	lines := strings.Split(s, "\n")
	var out []Violation
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		n := len([]rune(line))
		if n > limit {
			out = append(out, Violation{Line: i + 1, Length: n})
		}
	}
	return out
}
