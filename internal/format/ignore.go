package format

import "github.com/hugoduncan/line-sitter/internal/cst"

// Sentinel is the fixed namespaced keyword that marks the form following
// it as ignored (spec.md §3 "Ignore marker", §6 "Sentinel marker format").
// The namespace component is this build's constant, never user-configurable.
const Sentinel = ":line-sitter/ignore"

// LineRange is an inclusive, 1-indexed line span.
type LineRange struct {
	Start, End int
}

// ByteRange is a half-open byte span.
type ByteRange struct {
	Start, End int
}

func (r ByteRange) contains(b ByteRange) bool {
	return r.Start <= b.Start && b.End <= r.End
}

// IgnoredRanges holds the byte and line ranges protected by ignore
// markers in one tree, from a single traversal (spec.md §4.4).
type IgnoredRanges struct {
	Lines []LineRange
	Bytes []ByteRange
}

// ContainsLine reports whether line falls inside any recorded line range.
func (ir IgnoredRanges) ContainsLine(line int) bool {
	for _, r := range ir.Lines {
		if r.Start <= line && line <= r.End {
			return true
		}
	}
	return false
}

// ContainsByteRange reports whether b is wholly contained in some
// recorded ignored byte range (spec.md §4.6: "its byte range is not
// contained in any ignored byte range").
func (ir IgnoredRanges) ContainsByteRange(b ByteRange) bool {
	for _, r := range ir.Bytes {
		if r.contains(b) {
			return true
		}
	}
	return false
}

// collectIgnored walks root's named children depth-first, recording the
// byte and line ranges of every ignore marker's target.
//
// The loop below is the whole algorithm: a marker is never recursed into
// (its subtree is a single keyword token, nothing to find), but the next
// sibling in the very same NamedChildren slice still gets its own turn
// through the loop. When that next sibling is itself a marker, it is
// recognized and processed exactly like any other — chaining falls out
// for free, as spec.md §4.4 notes, with no extra code.
func collectIgnored(root *cst.Node, source string) IgnoredRanges {
	var ir IgnoredRanges
	var walk func(n *cst.Node)
	walk = func(n *cst.Node) {
		for _, c := range n.NamedChildren() {
			if isIgnoreMarker(c, source) {
				if target := c.NextNamedSibling(); target != nil {
					ir.Lines = append(ir.Lines, LineRange{Start: target.StartLine(), End: target.EndLine()})
					ir.Bytes = append(ir.Bytes, ByteRange{Start: target.StartByte(), End: target.EndByte()})
				}
				continue
			}
			walk(c)
		}
	}
	walk(root)
	return ir
}

// isIgnoreMarker reports whether n is a discard node whose single named
// child is a keyword token whose text equals Sentinel exactly. A discard
// of any other keyword (e.g. #_:debug) is ordinary discarded code, not an
// ignore marker (spec.md §3/§4.4/§6).
func isIgnoreMarker(n *cst.Node, source string) bool {
	if n.Kind() != cst.KindDiscard || n.NamedChildCount() != 1 {
		return false
	}
	child := n.NamedChild(0)
	return child.Kind() == cst.KindKeyword && child.Text(source) == Sentinel
}
