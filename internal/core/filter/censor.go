package filter

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// CensorType selects how a match is rewritten
type CensorType int

const (
	// CensorWord replaces the whole match with the grawlix
	CensorWord CensorType = iota
	// CensorFirstChar replaces the first character
	CensorFirstChar
	// CensorFirstVowel replaces the first vowel
	CensorFirstVowel
	// CensorAllVowels replaces every vowel
	CensorAllVowels
)

var censorNames = [...]string{
	CensorWord:       "word",
	CensorFirstChar:  "first_char",
	CensorFirstVowel: "first_vowel",
	CensorAllVowels:  "all_vowels",
}

func (c CensorType) valid() bool { return c >= CensorWord && c <= CensorAllVowels }

func (c CensorType) String() string {
	if !c.valid() {
		return "CensorType(" + strconv.Itoa(int(c)) + ")"
	}
	return censorNames[c]
}

// ParseCensorType accepts the String forms case-insensitively, with or
// without separators ("first_char", "FirstChar", "first-char"). Empty means CensorWord
func ParseCensorType(s string) (CensorType, error) {
	key := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch key {
	case "", "word":
		return CensorWord, nil
	case "firstchar":
		return CensorFirstChar, nil
	case "firstvowel":
		return CensorFirstVowel, nil
	case "allvowels":
		return CensorAllVowels, nil
	}
	return 0, &InvalidCensorTypeError{Value: s}
}

// MarshalText implements encoding.TextMarshaler
func (c CensorType) MarshalText() ([]byte, error) {
	if !c.valid() {
		return nil, &InvalidCensorTypeError{Value: c.String()}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CensorType) UnmarshalText(b []byte) error {
	v, err := ParseCensorType(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// replace writes the censored form of word (original case) to b
func (f *Filter) replace(b *strings.Builder, word string, ct CensorType) {
	switch ct {
	case CensorWord:
		b.WriteString(f.cfg.Grawlix)
		if strings.IndexByte(word, '_') >= 0 {
			b.WriteByte('_')
		}
	case CensorFirstChar:
		_, size := utf8.DecodeRuneInString(word)
		b.WriteString(f.cfg.GrawlixChar)
		b.WriteString(word[size:])
	case CensorFirstVowel, CensorAllVowels:
		done := false
		for i := 0; i < len(word); i++ {
			if !done && isVowel(word[i]) {
				b.WriteString(f.cfg.GrawlixChar)
				done = ct == CensorFirstVowel
				continue
			}
			b.WriteByte(word[i])
		}
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
