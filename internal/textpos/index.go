// Package textpos translates between UTF-8 byte offsets and character
// (rune) indices.
//
// Node ranges arriving from the parser adapter (internal/cst) are byte
// offsets into the source. Go strings are byte-indexable, so no
// surrogate-pair bookkeeping is needed here, but byte offsets still do not
// line up with rune counts whenever the source contains multi-byte UTF-8
// sequences. Every splice performed by the edit applicator goes through
// this package first.
package textpos

// ByteToChar maps a UTF-8 byte offset b in s to the index of the rune that
// starts at that offset, i.e. the number of runes in s[:b]. It saturates at
// len([]rune(s)) if b runs past the end of s, and rounds a b that lands
// inside a multi-byte rune up to the index of the rune after it (such a b
// is never produced by a well-formed node range, but callers must not
// panic on it).
func ByteToChar(s string, b int) int {
	if b <= 0 {
		return 0
	}
	chars := 0
	bytes := 0
	for _, r := range s {
		if bytes >= b {
			return chars
		}
		bytes += runeLen(r)
		chars++
	}
	return chars
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}

// Splice replaces the rune range [startChar, endChar) of the rune slice rs
// with replacement and returns the resulting rune slice. Both the caller
// and this function operate on the character-index view required by
// spec's edit-application model; byte offsets must already have been
// converted via ByteToChar.
func Splice(rs []rune, startChar, endChar int, replacement string) []rune {
	out := make([]rune, 0, len(rs)-(endChar-startChar)+len(replacement))
	out = append(out, rs[:startChar]...)
	out = append(out, []rune(replacement)...)
	out = append(out, rs[endChar:]...)
	return out
}
