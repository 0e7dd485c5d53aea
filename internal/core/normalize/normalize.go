// Package normalize prepares text and phrases for the matcher.
//
// Fold is offset-stable: every byte offset into the folded string is a byte
// offset into the input. Matching runs on folded text while censoring edits
// the original, so nothing here may change byte widths.
//
// Clean is the lossy counterpart for untrusted input at the edges (HTTP, CLI):
// it drops control and format runes and composes to NFC before any matching.
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains for Clean
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF and friends
			norm.NFC,
		)
	},
}

// Fold lowercases s rune by rune. A rune whose lowercase form has a different
// UTF-8 width is kept as is, and invalid bytes are copied through untouched
func Fold(s string) string {
	// fast path: ASCII without uppercase
	clean := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(c)
			i++
			continue
		}
		lr := unicode.ToLower(r)
		if lr != r && utf8.RuneLen(lr) == size {
			b.WriteRune(lr)
		} else {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

// Forms returns the distinct NFC and NFD spellings of a phrase, the phrase
// itself first. Used to compile accented phrases for Unicode-aware matching
func Forms(phrase string) []string {
	out := []string{phrase}
	for _, f := range []norm.Form{norm.NFC, norm.NFD} {
		v := f.String(phrase)
		dup := false
		for _, o := range out {
			if o == v {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, v)
		}
	}
	return out
}

var codeCaser = cases.Lower(language.Und)

// Code canonicalizes a language code: trimmed and lowercased. Returns "" for blanks
func Code(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return codeCaser.String(s)
}

// Clean sanitizes untrusted input: invalid UTF-8, control and format runes
// are dropped and the result is composed to NFC
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return s
	}
	return ns
}
