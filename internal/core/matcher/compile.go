// Package matcher compiles phrase sets into matchers and scans folded text.
//
// Whole-word matching follows the semantics of (?:\b|_)(alts)(?:\b|_) with a
// longest-first alternation: a phrase is reported where it starts at a word
// boundary or right after a consumed '_', and ends at a word boundary or right
// before a consumed '_'. RE2 cannot express the boundary variants we need
// (Unicode classes, look-behind), so whole-word mode walks a trie instead of
// running a regexp. Partial mode is a plain regexp alternation.
//
// All offsets are byte offsets into the folded text, which normalize.Fold
// keeps identical to the original text.
package matcher

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"profanity/internal/core/normalize"
)

// Options select the matching mode
type Options struct {
	WholeWord         bool
	UnicodeBoundaries bool
}

// Span is a half-open byte range [Start,End) into the scanned text
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Pattern is a compiled phrase set. Immutable and safe to share once built
type Pattern struct {
	opts    Options
	phrases []string // longest first, ties lexicographic
	class   Class
	trie    *trie          // whole-word mode
	re      *regexp.Regexp // partial mode
}

// Compile builds a pattern from phrases. Phrases are expected lowercased;
// duplicates and empties are dropped. An empty set compiles to a pattern
// that never matches
func Compile(phrases []string, opts Options) (*Pattern, error) {
	seen := make(map[string]struct{}, len(phrases))
	add := func(p string) {
		if p != "" {
			seen[p] = struct{}{}
		}
	}
	for _, p := range phrases {
		if opts.UnicodeBoundaries {
			for _, f := range normalize.Forms(p) {
				add(f)
			}
			continue
		}
		add(p)
	}

	ordered := make([]string, 0, len(seen))
	for p := range seen {
		ordered = append(ordered, p)
	}
	sortLongestFirst(ordered)

	p := &Pattern{opts: opts, phrases: ordered, class: ASCIIWord}
	if opts.UnicodeBoundaries {
		p.class = UnicodeWord
	}

	if opts.WholeWord {
		p.trie = newTrie()
		for _, ph := range ordered {
			p.trie.Add(ph)
		}
		return p, nil
	}

	if len(ordered) == 0 {
		return p, nil
	}
	re, err := regexp.Compile(p.alternation())
	if err != nil {
		return nil, fmt.Errorf("matcher: compile %d phrases: %w", len(ordered), err)
	}
	p.re = re
	return p, nil
}

// MustCompile is Compile that panics on error
func MustCompile(phrases []string, opts Options) *Pattern {
	p, err := Compile(phrases, opts)
	if err != nil {
		panic(err)
	}
	return p
}

func sortLongestFirst(ps []string) {
	sort.Slice(ps, func(i, j int) bool {
		if len(ps[i]) != len(ps[j]) {
			return len(ps[i]) > len(ps[j])
		}
		return ps[i] < ps[j]
	})
}

func (p *Pattern) alternation() string {
	quoted := make([]string, len(p.phrases))
	for i, ph := range p.phrases {
		quoted[i] = regexp.QuoteMeta(ph)
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

// String returns the regular-expression equivalent of the pattern
func (p *Pattern) String() string {
	if p.opts.WholeWord {
		return `(?:\b|_)` + p.alternation() + `(?:\b|_)`
	}
	return p.alternation()
}

// Options returns the mode the pattern was compiled with
func (p *Pattern) Options() Options { return p.opts }

// Len reports the number of distinct compiled phrases (all forms)
func (p *Pattern) Len() int { return len(p.phrases) }

// Phrases returns the compiled phrases, longest first
func (p *Pattern) Phrases() []string {
	out := make([]string, len(p.phrases))
	copy(out, p.phrases)
	return out
}
