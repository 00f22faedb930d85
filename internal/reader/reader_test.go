package reader

import (
	"testing"

	"github.com/hugoduncan/line-sitter/internal/cst"
	"github.com/stretchr/testify/assert"
)

func TestParseSimpleList(t *testing.T) {
	tree, err := Parse(`(println "Hello" "World")`)
	assert.NoError(t, err)

	root := tree.Root
	assert.Equal(t, cst.KindSource, root.Kind())
	assert.Equal(t, 1, root.NamedChildCount())

	list := root.NamedChild(0)
	assert.Equal(t, cst.KindList, list.Kind())
	assert.True(t, list.Kind().Breakable())
	assert.Equal(t, 3, list.NamedChildCount())
	assert.Equal(t, cst.KindSymbol, list.NamedChild(0).Kind())
	assert.Equal(t, "println", list.NamedChild(0).Text(tree.Source))
	assert.Equal(t, cst.KindString, list.NamedChild(1).Kind())
	assert.Equal(t, `"Hello"`, list.NamedChild(1).Text(tree.Source))

	// children includes punctuation delimiters, named children do not.
	assert.Equal(t, 5, len(list.Children()))
	assert.Equal(t, cst.KindPunct, list.Children()[0].Kind())
	assert.False(t, list.Children()[0].IsNamed())
}

func TestParseNested(t *testing.T) {
	tree, err := Parse(`(a (b c d e) f)`)
	assert.NoError(t, err)
	outer := tree.Root.NamedChild(0)
	assert.Equal(t, 3, outer.NamedChildCount())
	inner := outer.NamedChild(1)
	assert.Equal(t, cst.KindList, inner.Kind())
	assert.Equal(t, inner, outer.NamedChild(0).NextNamedSibling())
	assert.Equal(t, outer.NamedChild(2), inner.NextNamedSibling())
}

func TestParseVectorMapSet(t *testing.T) {
	tree, err := Parse(`[1 2] {:a 1 :b 2} #{1 2 3}`)
	assert.NoError(t, err)
	assert.Equal(t, 3, tree.Root.NamedChildCount())
	assert.Equal(t, cst.KindVector, tree.Root.NamedChild(0).Kind())
	assert.Equal(t, cst.KindMap, tree.Root.NamedChild(1).Kind())
	assert.Equal(t, cst.KindSet, tree.Root.NamedChild(2).Kind())
}

func TestParseAnonFn(t *testing.T) {
	tree, err := Parse(`#(+ % 1)`)
	assert.NoError(t, err)
	fn := tree.Root.NamedChild(0)
	assert.Equal(t, cst.KindAnonFn, fn.Kind())
	assert.Equal(t, 3, fn.NamedChildCount())
}

func TestParseReaderConditional(t *testing.T) {
	tree, err := Parse(`#?(:clj (foo) :cljs (bar))`)
	assert.NoError(t, err)
	rc := tree.Root.NamedChild(0)
	assert.Equal(t, cst.KindReaderConditional, rc.Kind())

	tree2, err := Parse(`#?@(:clj [(foo)])`)
	assert.NoError(t, err)
	assert.Equal(t, cst.KindReaderConditionalSplicing, tree2.Root.NamedChild(0).Kind())
}

func TestParseDiscardIgnoreMarker(t *testing.T) {
	tree, err := Parse(`#_:line-sitter/ignore (foo bar baz qux)`)
	assert.NoError(t, err)
	assert.Equal(t, 2, tree.Root.NamedChildCount())

	marker := tree.Root.NamedChild(0)
	assert.Equal(t, cst.KindDiscard, marker.Kind())
	assert.Equal(t, 1, marker.NamedChildCount())
	kw := marker.NamedChild(0)
	assert.Equal(t, cst.KindKeyword, kw.Kind())
	assert.Equal(t, ":line-sitter/ignore", kw.Text(tree.Source))

	next := marker.NextNamedSibling()
	assert.Equal(t, tree.Root.NamedChild(1), next)
	assert.Equal(t, cst.KindList, next.Kind())
}

func TestParseMetaChained(t *testing.T) {
	tree, err := Parse(`^:private ^{:doc "x"} (defn foo [])`)
	assert.NoError(t, err)
	outer := tree.Root.NamedChild(0)
	assert.Equal(t, cst.KindMeta, outer.Kind())
	assert.Equal(t, cst.KindKeyword, outer.NamedChild(0).Kind())
	inner := outer.NamedChild(1)
	assert.Equal(t, cst.KindMeta, inner.Kind())
	assert.Equal(t, cst.KindList, inner.NamedChild(1).Kind())
}

func TestParseQuoteFamily(t *testing.T) {
	tree, err := Parse("'(a b) `(a ~b ~@c) @atom #'var")
	assert.NoError(t, err)
	kids := tree.Root.NamedChildren()
	assert.Equal(t, cst.KindQuote, kids[0].Kind())
	assert.Equal(t, cst.KindSyntaxQuote, kids[1].Kind())
	assert.Equal(t, cst.KindDeref, kids[2].Kind())
	assert.Equal(t, cst.KindVarQuote, kids[3].Kind())

	sq := kids[1]
	assert.Equal(t, cst.KindUnquote, sq.NamedChild(0).NamedChild(1).Kind())
	assert.Equal(t, cst.KindUnquoteSplice, sq.NamedChild(0).NamedChild(2).Kind())
}

func TestParseComment(t *testing.T) {
	tree, err := Parse("(a\n ; a comment\n b)")
	assert.NoError(t, err)
	list := tree.Root.NamedChild(0)
	assert.Equal(t, 3, list.NamedChildCount())
	comment := list.NamedChild(1)
	assert.Equal(t, cst.KindComment, comment.Kind())
	// the comment node's range includes the trailing newline.
	assert.Equal(t, "; a comment\n", comment.Text(tree.Source))
}

func TestParseAtoms(t *testing.T) {
	tree, err := Parse(`42 -3 1.5 1/2 :kw ::auto ns/sym "str" \a \newline true false nil #"re" #inst "2020"`)
	assert.NoError(t, err)
	kinds := []cst.Kind{}
	for _, n := range tree.Root.NamedChildren() {
		kinds = append(kinds, n.Kind())
	}
	want := []cst.Kind{
		cst.KindNumber, cst.KindNumber, cst.KindNumber, cst.KindNumber,
		cst.KindKeyword, cst.KindKeyword, cst.KindSymbol,
		cst.KindString, cst.KindChar, cst.KindChar,
		cst.KindBoolean, cst.KindBoolean, cst.KindNil,
		cst.KindRegex, cst.KindTaggedLiteral,
	}
	assert.Equal(t, want, kinds)
}

func TestParseMultibyte(t *testing.T) {
	tree, err := Parse(`(é b c)`)
	assert.NoError(t, err)
	list := tree.Root.NamedChild(0)
	sym := list.NamedChild(0)
	assert.Equal(t, "é", sym.Text(tree.Source))
	assert.Equal(t, 1, sym.StartPoint().Column)
}

func TestParseUnterminatedIsFatal(t *testing.T) {
	_, err := Parse(`(def x "long-string-literal`)
	assert.Error(t, err)
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestParseMismatchedDelimiterIsFatal(t *testing.T) {
	_, err := Parse(`(a b]`)
	assert.Error(t, err)
}

func TestNamespacedMapReadsAsMap(t *testing.T) {
	tree, err := Parse(`#:ns{:a 1} #::{:a 1}`)
	assert.NoError(t, err)
	assert.Equal(t, cst.KindMap, tree.Root.NamedChild(0).Kind())
	assert.Equal(t, cst.KindMap, tree.Root.NamedChild(1).Kind())
}
