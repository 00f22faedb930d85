package format

import (
	"testing"

	"github.com/hugoduncan/line-sitter/internal/reader"
	"github.com/stretchr/testify/assert"
)

func TestBreakableFormsFindsOutermostFirst(t *testing.T) {
	src := "(a (b c d) e)"
	tree, err := reader.Parse(src)
	assert.NoError(t, err)

	forms := breakableForms(tree.Root, 1, IgnoredRanges{})
	assert.Len(t, forms, 2)
	assert.Equal(t, tree.Root.NamedChild(0), forms[0])
	assert.Equal(t, tree.Root.NamedChild(0).NamedChild(1), forms[1])
}

func TestBreakableFormsSkipsIgnoredRanges(t *testing.T) {
	src := "(a b c)"
	tree, err := reader.Parse(src)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)

	ir := IgnoredRanges{Bytes: []ByteRange{{Start: n.StartByte(), End: n.EndByte()}}}
	forms := breakableForms(tree.Root, 1, ir)
	assert.Empty(t, forms)
}

func TestBreakableFormsExcludesAlreadyBrokenForm(t *testing.T) {
	src := "(a\n b\n c)"
	tree, err := reader.Parse(src)
	assert.NoError(t, err)
	forms := breakableForms(tree.Root, 1, IgnoredRanges{})
	assert.Empty(t, forms)
}

func TestPlanPlainCallBreaksOnePerLine(t *testing.T) {
	tree, err := reader.Parse(`(println a b c)`)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	assert.Len(t, edits, 3)
	out, err := apply(tree.Source, edits)
	assert.NoError(t, err)
	assert.Equal(t, "(println\n a\n b\n c)", out)
}

func TestPlanDefnKeepsHeadAndName(t *testing.T) {
	tree, err := reader.Parse(`(defn foo [a b] (+ a b) (- a b))`)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	out, err := apply(tree.Source, edits)
	assert.NoError(t, err)
	assert.Equal(t, "(defn foo\n  [a b]\n  (+ a b)\n  (- a b))", out)
}

func TestPlanMapPairGroups(t *testing.T) {
	tree, err := reader.Parse(`{:a 1 :b 2 :c 3}`)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	out, err := apply(tree.Source, edits)
	assert.NoError(t, err)
	assert.Equal(t, "{:a 1\n  :b 2\n  :c 3}", out)
}

func TestPlanCaseOddTailGetsOwnLine(t *testing.T) {
	tree, err := reader.Parse(`(case x 1 :one 2 :two :default)`)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	out, err := apply(tree.Source, edits)
	assert.NoError(t, err)
	assert.Equal(t, "(case x\n  1 :one\n  2 :two\n  :default)", out)
}

func TestPlanSkipsInlineComment(t *testing.T) {
	tree, err := reader.Parse("(foo a b ; trailing\n c)")
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	// break before a, break before b, skip before the inline comment
	// (same line as b), then gap before c (comment already carries its
	// own trailing newline, so no leading "\n" is added there).
	assert.Len(t, edits, 3)
	out, err := apply(tree.Source, edits)
	assert.NoError(t, err)
	assert.Equal(t, "(foo\n a\n b ; trailing\n c)", out)
}

func TestPlanReturnsNilWhenNoChildren(t *testing.T) {
	tree, err := reader.Parse(`()`)
	assert.NoError(t, err)
	n := tree.Root.NamedChild(0)
	edits := plan(n, tree.Source, resolveIndents(Config{}))
	assert.Empty(t, edits)
}
