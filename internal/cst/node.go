// Package cst defines the concrete syntax tree the formatting engine
// operates on: an immutable Node/Tree pair exposing byte ranges,
// row/column positions, and ordered (named and all) children.
//
// The shape is deliberately modeled on a tree-sitter Node — StartByte,
// EndByte, StartPoint, EndPoint, Parent, NamedChild, NextNamedSibling — the
// API boldsoftware-treesitter/treesitter.go exposes over a cgo-bound native
// grammar. This package provides the same contract without the cgo
// boundary: internal/reader populates it directly from Go, since no
// generated tree-sitter-clojure grammar table is available to bind against
// (see DESIGN.md). Everything in internal/format depends only on the
// interface below, exactly as spec.md §4.1 intends.
package cst

// Point is a 0-indexed (row, column) source position.
type Point struct {
	Row    int
	Column int
}

// Tree is the result of parsing one source string. It owns every Node
// reachable from its Root; nodes are never shared across trees.
type Tree struct {
	Root   *Node
	Source string
}

// Node is one node of the concrete syntax tree.
//
// Invariant: sibling ranges are disjoint and in source order, and every
// node's byte range is contained in its parent's (spec.md §3).
type Node struct {
	kind       Kind
	startByte  int
	endByte    int
	startPoint Point
	endPoint   Point

	parent   *Node
	children []*Node // all children, including punctuation (internal/reader emits no whitespace nodes)
	named    []*Node // the subset of children for which Kind.Named() is true
}

// NewNode constructs a Node. internal/reader is the only caller; exported
// so that package tests can build trees by hand without parsing text.
func NewNode(kind Kind, startByte, endByte int, startPoint, endPoint Point, children []*Node) *Node {
	n := &Node{
		kind:       kind,
		startByte:  startByte,
		endByte:    endByte,
		startPoint: startPoint,
		endPoint:   endPoint,
		children:   children,
	}
	for _, c := range children {
		c.parent = n
		if c.kind.Named() {
			n.named = append(n.named, c)
		}
	}
	return n
}

func (n *Node) Kind() Kind { return n.kind }

// IsNamed reports whether n would appear in its parent's NamedChildren.
func (n *Node) IsNamed() bool { return n.kind.Named() }

// StartByte returns n's start byte offset, half-open range start.
func (n *Node) StartByte() int { return n.startByte }

// EndByte returns n's end byte offset, half-open range end.
func (n *Node) EndByte() int { return n.endByte }

func (n *Node) StartPoint() Point { return n.startPoint }

func (n *Node) EndPoint() Point { return n.endPoint }

// Parent returns n's immediate parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns every child of n, in source order, including
// punctuation tokens. Trees built by internal/reader contain no
// whitespace nodes.
func (n *Node) Children() []*Node { return n.children }

// NamedChildren returns n's named children only, in source order.
func (n *Node) NamedChildren() []*Node { return n.named }

// NamedChildCount returns len(n.NamedChildren()).
func (n *Node) NamedChildCount() int { return len(n.named) }

// NamedChild returns n's i-th named child, or nil if i is out of range.
func (n *Node) NamedChild(i int) *Node {
	if i < 0 || i >= len(n.named) {
		return nil
	}
	return n.named[i]
}

// NextNamedSibling returns the next named child of n's parent following n,
// or nil if n is the root or the last named child.
func (n *Node) NextNamedSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.named
	for i, s := range siblings {
		if s == n {
			if i+1 < len(siblings) {
				return siblings[i+1]
			}
			return nil
		}
	}
	return nil
}

// Text returns the slice of source spanned by n's byte range.
func (n *Node) Text(source string) string {
	return source[n.startByte:n.endByte]
}

// StartLine returns n's 1-indexed start line.
func (n *Node) StartLine() int { return n.startPoint.Row + 1 }

// EndLine returns n's 1-indexed end line.
func (n *Node) EndLine() int { return n.endPoint.Row + 1 }

// SpansLine reports whether n's line range contains the given 1-indexed
// line (spec.md §4.6: "its line range contains line").
func (n *Node) SpansLine(line int) bool {
	return n.StartLine() <= line && line <= n.EndLine()
}
