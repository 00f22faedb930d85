package cst

// Kind is drawn from the fixed node-kind vocabulary the engine dispatches
// on (spec.md Glossary: node kinds). It plays the role that a tree-sitter
// grammar's symbol table plays in boldsoftware-treesitter/treesitter.go,
// but as a closed Go string enum rather than a native symbol ID, since
// this package has exactly one grammar and never needs
// Language.SymbolName's indirection.
type Kind string

// Breakable kinds: candidates for the break planner (spec.md §4.6,
// Glossary "Breakable node kinds").
const (
	KindList                      Kind = "list"
	KindVector                    Kind = "vector"
	KindMap                       Kind = "map"
	KindSet                       Kind = "set"
	KindAnonFn                    Kind = "anon_fn"
	KindReaderConditional         Kind = "reader_conditional"
	KindReaderConditionalSplicing Kind = "reader_conditional_splicing"
)

// Atomic kinds: terminal nodes with no interior structure to break
// (spec.md Glossary "Atom").
const (
	KindSymbol  Kind = "symbol"
	KindKeyword Kind = "keyword"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindChar    Kind = "char"
	KindRegex   Kind = "regex"
	KindBoolean Kind = "boolean"
	KindNil     Kind = "nil"
)

// Wrapper and punctuation kinds: structurally present, never themselves
// breakable, and in the case of punct/whitespace, not named.
const (
	KindComment       Kind = "comment"
	KindDiscard       Kind = "discard"
	KindMeta          Kind = "meta"
	KindQuote         Kind = "quote"
	KindSyntaxQuote   Kind = "syntax_quote"
	KindUnquote       Kind = "unquote"
	KindUnquoteSplice Kind = "unquote_splicing"
	KindDeref         Kind = "deref"
	KindVarQuote      Kind = "var_quote"
	KindTaggedLiteral Kind = "tagged_literal"
	KindError         Kind = "error"
	KindPunct         Kind = "punct"      // delimiter tokens: ( ) [ ] { } #{ #( etc.
	KindWhitespace    Kind = "whitespace" // runs of space/tab/newline between forms
)

// KindSource is the synthetic root node kind wrapping every top-level form
// in a file. It is never itself breakable.
const KindSource Kind = "source"

// Breakable reports whether a node of this kind is a candidate for the
// break planner (spec.md §4.6).
func (k Kind) Breakable() bool {
	switch k {
	case KindList, KindVector, KindMap, KindSet, KindAnonFn,
		KindReaderConditional, KindReaderConditionalSplicing:
		return true
	default:
		return false
	}
}

// Named reports whether a node of this kind counts as a "named child" for
// traversal purposes (spec.md §3: "named-only children, which exclude
// punctuation tokens such as delimiters"). Comments are named — the
// planner needs to see them to implement the inline-comment exception in
// spec.md §4.7.
func (k Kind) Named() bool {
	switch k {
	case KindPunct, KindWhitespace:
		return false
	default:
		return true
	}
}
