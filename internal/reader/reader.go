// Package reader implements a recursive-descent reader for Lisp-family
// source (S-expressions, reader macros, metadata, discard forms) and
// populates an internal/cst.Tree directly from Go, without a cgo boundary.
//
// It plays the role boldsoftware-treesitter/golang (and friends) play for
// their grammars — a language-specific binding registered behind the
// generic Node/Tree contract — except there is no generated native grammar
// table to bind against here (see DESIGN.md), so the concrete syntax tree
// is built by hand, one token at a time, in the spirit of
// aledsdavies-opal/runtime/lexer's rune-scanning lexer.
package reader

import (
	"fmt"

	"github.com/hugoduncan/line-sitter/internal/cst"
)

// ParseError reports a reader failure: malformed or unterminated source
// that leaves the reader unable to produce a tree at all. This is the
// "parse failure" kind of spec.md §4.11/§7 — it aborts the whole parse.
// The reader never produces cst.KindError nodes and does not recover from
// malformed input.
type ParseError struct {
	Offset int
	Point  cst.Point
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Point.Row+1, e.Point.Column+1, e.Msg)
}

type reader struct {
	s *scanner
}

// Parse reads source and returns its concrete syntax tree, rooted at a
// synthetic cst.KindSource node wrapping every top-level form.
func Parse(source string) (*cst.Tree, error) {
	r := &reader{s: newScanner(source)}
	children, err := r.readTopLevel()
	if err != nil {
		return nil, err
	}
	root := cst.NewNode(cst.KindSource, 0, len(source), cst.Point{}, r.s.point(), children)
	return &cst.Tree{Root: root, Source: source}, nil
}

func (r *reader) errorf(format string, args ...any) error {
	return &ParseError{Offset: r.s.pos, Point: r.s.point(), Msg: fmt.Sprintf(format, args...)}
}

func (r *reader) readTopLevel() ([]*cst.Node, error) {
	var children []*cst.Node
	for {
		r.skipWhitespace()
		if r.s.eof() {
			return children, nil
		}
		if ch, _ := r.s.peek(); isCloser(ch) {
			return nil, r.errorf("unexpected %q at top level", ch)
		}
		n, err := r.readForm()
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
}

// readForm reads exactly one form, dispatching on its leading rune. It is
// the sole entry point every composite and wrapper form uses to read its
// contents, so every reader macro composes with every other one for free
// (e.g. `^:private #_form` reads as metadata wrapping a discard).
func (r *reader) readForm() (*cst.Node, error) {
	r.skipWhitespace()
	if r.s.eof() {
		return nil, r.errorf("unexpected end of input, expected a form")
	}
	ch, _ := r.s.peek()
	switch {
	case ch == '(':
		return r.readSeq(cst.KindList, '(', ')')
	case ch == '[':
		return r.readSeq(cst.KindVector, '[', ']')
	case ch == '{':
		return r.readSeq(cst.KindMap, '{', '}')
	case ch == ')' || ch == ']' || ch == '}':
		return nil, r.errorf("unexpected closing delimiter %q", ch)
	case ch == ';':
		return r.readComment(), nil
	case ch == '"':
		return r.readString()
	case ch == '\'':
		return r.readPrefixed(cst.KindQuote, 1)
	case ch == '`':
		return r.readPrefixed(cst.KindSyntaxQuote, 1)
	case ch == '~':
		if r.s.peekAt(1) == '@' {
			return r.readPrefixed(cst.KindUnquoteSplice, 2)
		}
		return r.readPrefixed(cst.KindUnquote, 1)
	case ch == '@':
		return r.readPrefixed(cst.KindDeref, 1)
	case ch == '^':
		return r.readMeta()
	case ch == ':':
		return r.readKeyword()
	case ch == '\\':
		return r.readChar()
	case ch == '#':
		return r.readDispatch()
	case isDigit(ch):
		return r.readNumber()
	case (ch == '+' || ch == '-') && isDigit(r.s.peekAt(1)):
		return r.readNumber()
	default:
		return r.readSymbolLike()
	}
}

// readSeq reads a paired-delimiter container whose opener is a single
// rune: lists, vectors, and plain maps.
func (r *reader) readSeq(kind cst.Kind, open, close rune) (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // consume open
	openNode := r.punctNode(startByte, startPoint)
	return r.readSeqBody(kind, startByte, startPoint, openNode, close)
}

// readSeqBody reads named children up to (and including) close, given an
// already-built open-delimiter punctuation node. Shared by readSeq and the
// multi-rune dispatch openers (#{, #(, #?(, #?@(, #:ns{).
func (r *reader) readSeqBody(kind cst.Kind, startByte int, startPoint cst.Point, openNode *cst.Node, close rune) (*cst.Node, error) {
	children := []*cst.Node{openNode}
	for {
		r.skipWhitespace()
		if r.s.eof() {
			return nil, r.errorf("unterminated %s, expected %q", kind, close)
		}
		ch, _ := r.s.peek()
		if ch == close {
			closeStart := r.s.pos
			closeStartPoint := r.s.point()
			r.s.advance()
			children = append(children, r.punctNode(closeStart, closeStartPoint))
			return cst.NewNode(kind, startByte, r.s.pos, startPoint, r.s.point(), children), nil
		}
		if isCloser(ch) {
			return nil, r.errorf("mismatched delimiter %q, expected %q", ch, close)
		}
		child, err := r.readForm()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (r *reader) punctNode(startByte int, startPoint cst.Point) *cst.Node {
	return cst.NewNode(cst.KindPunct, startByte, r.s.pos, startPoint, r.s.point(), nil)
}

// readDispatch handles every form introduced by '#': sets, anonymous
// functions, regexes, var-quotes, discards, reader conditionals,
// namespaced maps, and tagged literals.
func (r *reader) readDispatch() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // '#'
	ch, _ := r.s.peek()
	switch ch {
	case '{':
		r.s.advance()
		return r.readSeqBody(cst.KindSet, startByte, startPoint, r.punctNode(startByte, startPoint), '}')
	case '(':
		r.s.advance()
		return r.readSeqBody(cst.KindAnonFn, startByte, startPoint, r.punctNode(startByte, startPoint), ')')
	case '"':
		return r.readRegex(startByte, startPoint)
	case '\'':
		r.s.advance()
		return r.readWrap(cst.KindVarQuote, startByte, startPoint)
	case '_':
		r.s.advance()
		return r.readWrap(cst.KindDiscard, startByte, startPoint)
	case '?':
		r.s.advance()
		splicing := r.s.match('@')
		if !r.s.match('(') {
			return nil, r.errorf("expected ( after reader-conditional dispatch")
		}
		kind := cst.KindReaderConditional
		if splicing {
			kind = cst.KindReaderConditionalSplicing
		}
		return r.readSeqBody(kind, startByte, startPoint, r.punctNode(startByte, startPoint), ')')
	case ':':
		r.s.advance()
		r.s.match(':') // #::{...} auto-resolved namespaced map, no name token
		for {
			c, w := r.s.peek()
			if w == 0 || c == '{' {
				break
			}
			r.s.advance()
		}
		if !r.s.match('{') {
			return nil, r.errorf("expected { in namespaced map literal")
		}
		return r.readSeqBody(cst.KindMap, startByte, startPoint, r.punctNode(startByte, startPoint), '}')
	default:
		tag, err := r.readSymbolLike()
		if err != nil {
			return nil, err
		}
		r.skipWhitespace()
		val, err := r.readForm()
		if err != nil {
			return nil, err
		}
		return cst.NewNode(cst.KindTaggedLiteral, startByte, val.EndByte(), startPoint, val.EndPoint(), []*cst.Node{tag, val}), nil
	}
}

// readWrap reads the single form that follows a reader-macro prefix
// (already consumed by the caller) and wraps it in a one-child node.
func (r *reader) readWrap(kind cst.Kind, startByte int, startPoint cst.Point) (*cst.Node, error) {
	r.skipWhitespace()
	child, err := r.readForm()
	if err != nil {
		return nil, err
	}
	return cst.NewNode(kind, startByte, child.EndByte(), startPoint, child.EndPoint(), []*cst.Node{child}), nil
}

// readPrefixed consumes a width-rune prefix (', `, ~, ~@, @) then wraps
// the following form.
func (r *reader) readPrefixed(kind cst.Kind, width int) (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	for i := 0; i < width; i++ {
		r.s.advance()
	}
	return r.readWrap(kind, startByte, startPoint)
}

// readMeta reads `^value form`; chained metadata (`^:a ^:b form`) falls
// out naturally since the target is read through readForm, which may
// itself be another meta node.
func (r *reader) readMeta() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // '^'
	r.skipWhitespace()
	metaVal, err := r.readForm()
	if err != nil {
		return nil, err
	}
	r.skipWhitespace()
	target, err := r.readForm()
	if err != nil {
		return nil, err
	}
	return cst.NewNode(cst.KindMeta, startByte, target.EndByte(), startPoint, target.EndPoint(), []*cst.Node{metaVal, target}), nil
}

// readComment reads from ';' to the end of the line, including the
// trailing newline if present. Keeping the newline inside the node's
// range is what lets the edit planner (spec.md §4.7) avoid emitting a
// second newline after a trailing comment.
func (r *reader) readComment() *cst.Node {
	startByte := r.s.pos
	startPoint := r.s.point()
	for {
		ch, w := r.s.peek()
		if w == 0 {
			break
		}
		if ch == '\n' {
			r.s.advance()
			break
		}
		r.s.advance()
	}
	return cst.NewNode(cst.KindComment, startByte, r.s.pos, startPoint, r.s.point(), nil)
}

func (r *reader) readString() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // opening quote
	for {
		ch, w := r.s.peek()
		if w == 0 {
			return nil, r.errorf("unterminated string")
		}
		if ch == '\\' {
			r.s.advance()
			if r.s.eof() {
				return nil, r.errorf("unterminated string")
			}
			r.s.advance()
			continue
		}
		r.s.advance()
		if ch == '"' {
			return cst.NewNode(cst.KindString, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
		}
	}
}

func (r *reader) readRegex(startByte int, startPoint cst.Point) (*cst.Node, error) {
	r.s.advance() // opening quote
	for {
		ch, w := r.s.peek()
		if w == 0 {
			return nil, r.errorf("unterminated regex")
		}
		if ch == '\\' {
			r.s.advance()
			if r.s.eof() {
				return nil, r.errorf("unterminated regex")
			}
			r.s.advance()
			continue
		}
		r.s.advance()
		if ch == '"' {
			return cst.NewNode(cst.KindRegex, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
		}
	}
}

func (r *reader) readKeyword() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance()  // ':'
	r.s.match(':') // auto-resolved ::kw
	r.readSymbolChars()
	return cst.NewNode(cst.KindKeyword, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
}

// readChar reads a character literal: a single rune (\a, \,, \() or a
// named literal/code point (\newline, \space, \uXXXX, \oNNN).
func (r *reader) readChar() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // backslash
	first, w := r.s.peek()
	if w == 0 {
		return nil, r.errorf("unterminated character literal")
	}
	r.s.advance()
	if isLetter(first) {
		for {
			ch, w := r.s.peek()
			if w == 0 || isTerminator(ch) {
				break
			}
			r.s.advance()
		}
	}
	return cst.NewNode(cst.KindChar, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
}

func (r *reader) readNumber() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	r.s.advance() // leading digit or sign
	r.readSymbolChars()
	return cst.NewNode(cst.KindNumber, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
}

// readSymbolLike reads a symbol, or the nil/true/false literals, which
// share a symbol's lexical shape.
func (r *reader) readSymbolLike() (*cst.Node, error) {
	startByte := r.s.pos
	startPoint := r.s.point()
	if ch, w := r.s.peek(); w == 0 || isTerminator(ch) {
		return nil, r.errorf("expected a form, found %q", ch)
	}
	r.s.advance()
	r.readSymbolChars()
	text := r.s.src[startByte:r.s.pos]
	kind := cst.KindSymbol
	switch text {
	case "true", "false":
		kind = cst.KindBoolean
	case "nil":
		kind = cst.KindNil
	}
	return cst.NewNode(kind, startByte, r.s.pos, startPoint, r.s.point(), nil), nil
}

func (r *reader) readSymbolChars() {
	for {
		ch, w := r.s.peek()
		if w == 0 || isTerminator(ch) {
			return
		}
		r.s.advance()
	}
}

func (r *reader) skipWhitespace() {
	for {
		ch, w := r.s.peek()
		if w == 0 {
			return
		}
		switch ch {
		case ' ', '\t', '\n', '\r', ',':
			r.s.advance()
		default:
			return
		}
	}
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isCloser(ch rune) bool { return ch == ')' || ch == ']' || ch == '}' }

func isTerminator(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', ',', '(', ')', '[', ']', '{', '}', '"', ';':
		return true
	}
	return false
}
