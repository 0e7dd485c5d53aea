package matcher

import (
	"unicode"
	"unicode/utf8"
)

// Class reports whether r is a word rune for boundary checks
type Class func(r rune) bool

// ASCIIWord mirrors the classic \b: only [0-9A-Za-z_] are word runes.
// Accented letters are separators, so "culo" is a whole word inside "vehículo"
func ASCIIWord(r rune) bool {
	return r < utf8.RuneSelf &&
		('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_')
}

// UnicodeWord treats letters, numbers, all marks and '_' as word runes.
// Combining marks keep a decomposed letter inside its word; curly quotes,
// NBSP and the hyphen/dash family stay separators
func UnicodeWord(r rune) bool {
	switch r {
	case '_':
		return true
	case utf8.RuneError:
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// boundary reports whether offset i of s sits between a word and a non-word rune.
// Text edges count as non-word
func (c Class) boundary(s string, i int) bool {
	return c.before(s, i) != c.after(s, i)
}

func (c Class) before(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return c(r)
}

func (c Class) after(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return c(r)
}

// joinedBefore and joinedAfter report whether the byte next to a span glues
// it to a larger token. Whitelist adjacency is ASCII in both boundary modes:
// [0-9A-Za-z_] or a hyphen
func joinedBefore(s string, i int) bool {
	return i > 0 && glue(s[i-1])
}

func joinedAfter(s string, i int) bool {
	return i < len(s) && glue(s[i])
}

func glue(b byte) bool {
	return b == '-' || ASCIIWord(rune(b))
}
