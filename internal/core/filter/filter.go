// Package filter detects and censors profanity in free text.
//
// A Filter owns three word sets layered over a static per-language corpus:
// blacklist (added phrases), removed (corpus phrases switched off) and
// whitelist (phrases whose matches are never reported). Patterns are compiled
// lazily per language set and cached until any of the three sets changes.
//
// A Filter is not safe for concurrent use. Hosts sharing one instance across
// goroutines must guard every call, reads included, with one mutex.
package filter

import (
	"sort"
	"strings"
	"time"

	"profanity/internal/core/matcher"
	"profanity/internal/core/normalize"
	"profanity/internal/core/wordlist"
	"profanity/internal/core/wordset"
	"profanity/internal/platform/logger"
)

// Match is one reportable occurrence in the original text
type Match struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// Filter is the profanity detection facade
type Filter struct {
	cfg       Config
	corpus    wordlist.Corpus
	onCompile CompileHook

	blacklist *wordset.Set
	whitelist *wordset.Set
	removed   *wordset.Set

	cache map[string]*matcher.Pattern
}

// New builds a Filter over the embedded corpus unless WithCorpus says otherwise
func New(opts ...Option) (*Filter, error) {
	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.corpus == nil {
		c, err := wordlist.Default()
		if err != nil {
			return nil, err
		}
		o.corpus = c
	}

	f := &Filter{
		cfg:       o.cfg.clone(),
		corpus:    o.corpus,
		onCompile: o.onCompile,
		cache:     make(map[string]*matcher.Pattern),
	}
	f.blacklist = wordset.New(f.invalidate)
	f.whitelist = wordset.New(f.invalidate)
	f.removed = wordset.New(f.invalidate)
	return f, nil
}

// MustNew is New that panics on error
func MustNew(opts ...Option) *Filter {
	f, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return f
}

func (f *Filter) invalidate() {
	clear(f.cache)
}

// Config returns a copy of the settings
func (f *Filter) Config() Config { return f.cfg.clone() }

// AddWords blacklists phrases. A phrase previously removed from the corpus
// is restored instead of blacklisted
func (f *Filter) AddWords(words ...string) {
	var restore, add []string
	for _, w := range words {
		w = normalize.Fold(w)
		if f.removed.Contains(w) {
			restore = append(restore, w)
		} else {
			add = append(add, w)
		}
	}
	if len(restore) > 0 {
		f.removed.RemoveWords(restore...)
	}
	if len(add) > 0 || len(restore) == 0 {
		f.blacklist.AddWords(add...)
	}
}

// RemoveWords un-blacklists phrases, or switches off corpus phrases
func (f *Filter) RemoveWords(words ...string) {
	var drop, suppress []string
	for _, w := range words {
		w = normalize.Fold(w)
		if f.blacklist.Contains(w) {
			drop = append(drop, w)
		} else {
			suppress = append(suppress, w)
		}
	}
	if len(drop) > 0 {
		f.blacklist.RemoveWords(drop...)
	}
	if len(suppress) > 0 || len(drop) == 0 {
		f.removed.AddWords(suppress...)
	}
}

// Whitelist exposes the whitelist set. Mutating it invalidates compiled patterns
func (f *Filter) Whitelist() *wordset.Set { return f.whitelist }

// Blacklist returns the added phrases, sorted
func (f *Filter) Blacklist() []string { return f.blacklist.Words() }

// Removed returns the switched-off corpus phrases, sorted
func (f *Filter) Removed() []string { return f.removed.Words() }

// Languages returns the corpus language codes, sorted
func (f *Filter) Languages() []string { return f.corpus.Languages() }

// Exists reports whether text holds at least one reportable match
func (f *Filter) Exists(text string, languages ...string) (bool, error) {
	p, err := f.pattern(languages)
	if err != nil {
		return false, err
	}
	found := false
	f.scan(p, normalize.Fold(text), func(matcher.Span) bool {
		found = true
		return false
	})
	return found, nil
}

// Censor rewrites every reportable match in text according to ct
func (f *Filter) Censor(text string, ct CensorType, languages ...string) (string, error) {
	if !ct.valid() {
		return "", &InvalidCensorTypeError{Value: ct.String()}
	}
	p, err := f.pattern(languages)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	last, hits := 0, 0
	f.scan(p, normalize.Fold(text), func(sp matcher.Span) bool {
		if hits == 0 {
			b.Grow(len(text))
		}
		hits++
		b.WriteString(text[last:sp.Start])
		f.replace(&b, text[sp.Start:sp.End], ct)
		last = sp.End
		return true
	})
	if hits == 0 {
		return text, nil
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Matches lists every reportable match with byte offsets into text
func (f *Filter) Matches(text string, languages ...string) ([]Match, error) {
	p, err := f.pattern(languages)
	if err != nil {
		return nil, err
	}
	var out []Match
	f.scan(p, normalize.Fold(text), func(sp matcher.Span) bool {
		out = append(out, Match{Start: sp.Start, End: sp.End, Text: text[sp.Start:sp.End]})
		return true
	})
	return out, nil
}

// ExistsValue is Exists for untyped input: non-strings are never profane
func (f *Filter) ExistsValue(v any, languages ...string) (bool, error) {
	s, ok := v.(string)
	if !ok {
		return false, nil
	}
	return f.Exists(s, languages...)
}

// CensorValue is Censor for untyped input: non-strings come back unchanged
func (f *Filter) CensorValue(v any, ct CensorType, languages ...string) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	return f.Censor(s, ct, languages...)
}

// scan runs p over folded and calls fn for each match the whitelist lets through
func (f *Filter) scan(p *matcher.Pattern, folded string, fn func(matcher.Span) bool) {
	var wl matcher.Whitelist
	if !f.whitelist.Empty() {
		wl = f.whitelist.Words()
	}
	p.Scan(folded, func(sp matcher.Span) bool {
		if wl != nil && p.Suppresses(wl, folded, sp) {
			return true
		}
		return fn(sp)
	})
}

// pattern returns the compiled pattern for a language request, compiling on miss
func (f *Filter) pattern(languages []string) (*matcher.Pattern, error) {
	codes, err := f.resolve(languages)
	if err != nil {
		return nil, err
	}
	key := strings.Join(codes, ",")
	if p, ok := f.cache[key]; ok {
		return p, nil
	}

	start := time.Now()
	p, err := matcher.Compile(f.phrases(codes), matcher.Options{
		WholeWord:         f.cfg.WholeWord,
		UnicodeBoundaries: f.cfg.UnicodeWordBoundaries,
	})
	if err != nil {
		return nil, err
	}
	took := time.Since(start)
	f.cache[key] = p

	logger.Named("filter").Debug().
		Str("languages", key).
		Int("phrases", p.Len()).
		Dur("took", took).
		Msg("pattern compiled")
	if f.onCompile != nil {
		f.onCompile(key, p.Len(), took)
	}
	return p, nil
}

// resolve canonicalizes the requested codes (or the configured ones) into a
// sorted, deduplicated list and validates each against the corpus
func (f *Filter) resolve(languages []string) ([]string, error) {
	src := languages
	if len(src) == 0 {
		src = f.cfg.Languages
	}

	seen := make(map[string]struct{}, len(src))
	codes := make([]string, 0, len(src))
	for _, raw := range src {
		code := normalize.Code(raw)
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		if !f.corpus.Has(code) {
			return nil, &InvalidLanguageError{Code: strings.TrimSpace(raw)}
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, ErrEmptyLanguageSet
	}
	sort.Strings(codes)
	return codes, nil
}

// phrases is the effective phrase list: corpus minus removed, plus blacklist
func (f *Filter) phrases(codes []string) []string {
	n := f.blacklist.Len()
	for _, c := range codes {
		n += len(f.corpus[c])
	}
	out := make([]string, 0, n)
	for _, c := range codes {
		for _, w := range f.corpus[c] {
			if !f.removed.Contains(w) {
				out = append(out, w)
			}
		}
	}
	return append(out, f.blacklist.Words()...)
}
