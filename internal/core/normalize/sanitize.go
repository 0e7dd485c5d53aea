package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops runes that have no business in filtered text:
// NUL, ASCII controls other than '\n' '\r' '\t', DEL, C1 controls and invalid
// UTF-8 bytes. Returns s unchanged when nothing needs dropping
func Sanitize(s string) string {
	first := firstBad(s)
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:first])
	for i := first; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !dropRune(r, size) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// firstBad returns the offset of the first rune Sanitize would drop, or -1
func firstBad(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if dropRune(r, size) {
			return i
		}
		i += size
	}
	return -1
}

func dropRune(r rune, size int) bool {
	switch {
	case r == utf8.RuneError && size == 1:
		return true
	case r < 0x20:
		return r != '\n' && r != '\r' && r != '\t'
	case r == 0x7F:
		return true
	case r >= 0x80 && r <= 0x9F:
		return true
	}
	return false
}
