package format

import "github.com/hugoduncan/line-sitter/internal/cst"

// effectiveRule derives R(n, C) (spec.md §4.5): the indent-rule tag for
// node n, given the merged head-symbol table and n's source text.
func effectiveRule(n *cst.Node, source string, indents map[string]IndentRule) IndentRule {
	if n.Kind() == cst.KindList && n.NamedChildCount() > 0 {
		head := n.NamedChild(0)
		if head.Kind() == cst.KindSymbol {
			if r, ok := indents[head.Text(source)]; ok {
				return r
			}
		}
	}
	if n.Kind() == cst.KindMap {
		return RuleMap
	}
	if n.Kind() == cst.KindVector {
		if parent := n.Parent(); parent != nil && parent.NamedChildCount() >= 2 && parent.NamedChild(1) == n {
			if effectiveRule(parent, source, indents) == RuleBinding {
				return RuleBindingVector
			}
		}
	}
	return RuleNone
}

// keepCount is K(R): how many named children stay on the opening line
// with the opening delimiter (spec.md §4.5 table).
func keepCount(r IndentRule) int {
	switch r {
	case RuleDefn, RuleDef, RuleFn, RuleBinding, RuleIf, RuleCase, RuleCondArrow, RuleMap, RuleBindingVector:
		return 2
	case RuleCondp:
		return 3
	default: // RuleCond, RuleTry, RuleDo, RuleNone
		return 1
	}
}

// indentColumn is I(n, R): the 0-indexed column at which broken children
// are placed, given the column n's opening delimiter sits at.
func indentColumn(n *cst.Node, r IndentRule) int {
	c0 := n.StartPoint().Column
	switch r {
	case RuleBindingVector, RuleNone:
		return c0 + 1
	default:
		return c0 + 2
	}
}

// pairGroupingEnabled reports whether R groups its tail children two at a
// time rather than one per line (spec.md §4.5 "Pair grouping").
func pairGroupingEnabled(r IndentRule) bool {
	switch r {
	case RuleMap, RuleBindingVector, RuleCond, RuleCondp, RuleCase, RuleCondArrow:
		return true
	default:
		return false
	}
}
