package matcher

import "unicode/utf8"

// Scan reports non-overlapping matches over folded text, left to right.
// Each search resumes at the end of the previous match. fn returns false to stop
func (p *Pattern) Scan(folded string, fn func(Span) bool) {
	if len(p.phrases) == 0 || folded == "" {
		return
	}
	if p.opts.WholeWord {
		p.scanWhole(folded, fn)
		return
	}
	p.scanPartial(folded, fn)
}

// FindAll collects every match
func (p *Pattern) FindAll(folded string) []Span {
	var out []Span
	p.Scan(folded, func(sp Span) bool {
		out = append(out, sp)
		return true
	})
	return out
}

func (p *Pattern) scanPartial(s string, fn func(Span) bool) {
	for pos := 0; pos < len(s); {
		loc := p.re.FindStringIndex(s[pos:])
		if loc == nil || loc[1] == loc[0] {
			return
		}
		sp := Span{Start: pos + loc[0], End: pos + loc[1]}
		if !fn(sp) {
			return
		}
		pos = sp.End
	}
}

func (p *Pattern) scanWhole(s string, fn func(Span) bool) {
	buf := make([]int, 0, 8)
	for i := 0; i < len(s); {
		if end, ok := p.matchAt(s, i, buf[:0]); ok {
			if !fn(Span{Start: i, End: end}) {
				return
			}
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
}

// matchAt tries the leading alternatives in order: a boundary at i, then a
// literal '_' at i consumed into the match
func (p *Pattern) matchAt(s string, i int, buf []int) (int, bool) {
	if p.class.boundary(s, i) {
		if end, ok := p.phraseAt(s, i, buf); ok {
			return end, true
		}
	}
	if s[i] == '_' {
		return p.phraseAt(s, i+1, buf[:0])
	}
	return 0, false
}

// phraseAt returns the end of the longest phrase at s[at:] whose end is a
// boundary or is followed by a '_' (consumed)
func (p *Pattern) phraseAt(s string, at int, buf []int) (int, bool) {
	ends := p.trie.Ends(s, at, buf)
	for k := len(ends) - 1; k >= 0; k-- {
		e := ends[k]
		if p.class.boundary(s, e) {
			return e, true
		}
		if e < len(s) && s[e] == '_' {
			return e + 1, true
		}
	}
	return 0, false
}
