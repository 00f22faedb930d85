package format

import (
	"sort"

	"github.com/hugoduncan/line-sitter/internal/textpos"
)

// Edit replaces the bytes in [Start, End) with Replacement (spec.md §4.7,
// §4.8). Start and End are byte offsets into the source the edit was
// planned against.
type Edit struct {
	Start, End  int
	Replacement string
}

// apply sorts edits by Start descending and splices each Replacement into
// s, translating byte offsets to character indices via internal/textpos
// (spec.md §4.8). Descending order keeps not-yet-applied edits' offsets
// valid, given the planner's non-overlap guarantee.
func apply(s string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return s, nil
	}
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].End > sorted[i-1].Start {
			return "", &InvariantError{Msg: "overlapping edits"}
		}
	}

	rs := []rune(s)
	for _, e := range sorted {
		startChar := textpos.ByteToChar(s, e.Start)
		endChar := textpos.ByteToChar(s, e.End)
		rs = textpos.Splice(rs, startChar, endChar, e.Replacement)
	}
	return string(rs), nil
}
