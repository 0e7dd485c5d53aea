// Package wordset holds a mutable set of folded phrases with a change hook.
package wordset

import (
	"sort"

	"profanity/internal/core/normalize"
)

// Set is an unordered collection of unique phrases.
// Every mutating call fires onChange exactly once, after the contents changed
// (or would have). Set is not safe for concurrent use.
type Set struct {
	words    map[string]struct{}
	onChange func()
}

// New returns an empty set. onChange may be nil.
func New(onChange func()) *Set {
	return &Set{
		words:    make(map[string]struct{}),
		onChange: onChange,
	}
}

// AddWords folds each phrase the way scanned text is folded, then inserts it.
// Empty phrases are skipped
func (s *Set) AddWords(words ...string) {
	for _, w := range words {
		w = normalize.Fold(w)
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	s.changed()
}

// RemoveWords deletes each phrase by exact match; missing phrases are ignored
func (s *Set) RemoveWords(words ...string) {
	for _, w := range words {
		delete(s.words, w)
	}
	s.changed()
}

// Contains reports exact membership
func (s *Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

func (s *Set) Len() int    { return len(s.words) }
func (s *Set) Empty() bool { return len(s.words) == 0 }

// Words returns a sorted copy of the contents
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func (s *Set) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}
