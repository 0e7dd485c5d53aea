package matcher

import "strings"

// Whitelist suppresses matches that belong to allowed phrases
type Whitelist []string

// Suppresses reports whether match sp over folded must be dropped.
//
// Whole-word: some phrase occupies exactly sp and is not glued to a larger
// token (ASCII word byte or hyphen) on either side.
// Partial: sp overlaps an occurrence of some phrase in any direction
func (p *Pattern) Suppresses(w Whitelist, folded string, sp Span) bool {
	for _, phrase := range w {
		if phrase == "" {
			continue
		}
		if p.opts.WholeWord {
			if p.occupies(phrase, folded, sp) {
				return true
			}
			continue
		}
		if overlaps(phrase, folded, sp) {
			return true
		}
	}
	return false
}

func (p *Pattern) occupies(phrase, s string, sp Span) bool {
	if sp.Start+len(phrase) != sp.End || !strings.HasPrefix(s[sp.Start:], phrase) {
		return false
	}
	return !joinedBefore(s, sp.Start) && !joinedAfter(s, sp.End)
}

// overlaps checks the first occurrence that could still reach into sp
func overlaps(phrase, s string, sp Span) bool {
	from := max(sp.Start-len(phrase)+1, 0)
	idx := strings.Index(s[from:], phrase)
	if idx < 0 {
		return false
	}
	idx += from
	return idx < sp.End && idx+len(phrase) > sp.Start
}
