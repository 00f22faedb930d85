package format

import (
	"strings"

	"github.com/hugoduncan/line-sitter/internal/cst"
)

// breakableForms is breakable_forms(T, line, ignored) (spec.md §4.6): a
// pre-order (outermost-first) walk of the tree, keeping only nodes that
// are candidates for breaking on the given line.
func breakableForms(root *cst.Node, line int, ignored IgnoredRanges) []*cst.Node {
	var out []*cst.Node
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		if isCandidate(n, line, ignored) {
			out = append(out, n)
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(root)
	return out
}

func isCandidate(n *cst.Node, line int, ignored IgnoredRanges) bool {
	if !n.Kind().Breakable() {
		return false
	}
	if !n.SpansLine(line) {
		return false
	}
	if ignored.ContainsByteRange(ByteRange{Start: n.StartByte(), End: n.EndByte()}) {
		return false
	}
	return hasAdjacentPairOnLine(n, line)
}

// hasAdjacentPairOnLine reports whether n still has two consecutive named
// children both starting on line — i.e. the form has not already been
// broken one child per line.
func hasAdjacentPairOnLine(n *cst.Node, line int) bool {
	kids := n.NamedChildren()
	for i := 0; i+1 < len(kids); i++ {
		if kids[i].StartLine() == line && kids[i+1].StartLine() == line {
			return true
		}
	}
	return false
}

// plan is §4.7's edit generation for a single chosen candidate node.
// Returns nil if there is no break point to apply (K clamped past the
// child count, or every break point skipped as an inline comment).
func plan(n *cst.Node, source string, indents map[string]IndentRule) []Edit {
	children := n.NamedChildren()
	if len(children) == 0 {
		return nil
	}

	r := effectiveRule(n, source, indents)
	k := keepCount(r)
	if k > len(children) {
		k = len(children)
	}
	if k == 0 {
		return nil
	}

	indent := strings.Repeat(" ", indentColumn(n, r))

	var edits []Edit
	lastKept := children[k-1]

	if pairGroupingEnabled(r) {
		tail := children[k:]
		prev := lastKept
		for i := 0; i < len(tail); {
			first := tail[i]
			if e, ok := breakEdit(prev, first, indent); ok {
				edits = append(edits, e)
			}
			if i+1 < len(tail) {
				prev = tail[i+1]
				i += 2
			} else {
				prev = tail[i]
				i++
			}
		}
	} else {
		prev := lastKept
		for i := k; i < len(children); i++ {
			next := children[i]
			if e, ok := breakEdit(prev, next, indent); ok {
				edits = append(edits, e)
			}
			prev = next
		}
	}

	return edits
}

// breakEdit computes the edit (if any) for the gap between prev and next
// (spec.md §4.7 step 5).
func breakEdit(prev, next *cst.Node, indent string) (Edit, bool) {
	if next.Kind() == cst.KindComment && next.StartLine() == prev.EndLine() {
		return Edit{}, false
	}
	replacement := "\n" + indent
	if prev.Kind() == cst.KindComment {
		replacement = indent
	}
	return Edit{Start: prev.EndByte(), End: next.StartByte(), Replacement: replacement}, true
}
