package service

import (
	"context"

	"profanity/internal/services/api/filter/domain"
)

type snapshot map[domain.List][]string

func (s *Svc) snapshotLocked() snapshot {
	return snapshot{
		domain.ListBlacklist: s.f.Blacklist(),
		domain.ListWhitelist: s.f.Whitelist().Words(),
		domain.ListRemoved:   s.f.Removed(),
	}
}

// AddWords blacklists phrases, restoring any that were removed from the corpus
func (s *Svc) AddWords(ctx context.Context, words []string) (domain.WordsResult, error) {
	return s.mutate(ctx, domain.ListBlacklist, words, s.f.AddWords, s.f.RemoveWords)
}

// RemoveWords drops blacklisted phrases or switches corpus phrases off
func (s *Svc) RemoveWords(ctx context.Context, words []string) (domain.WordsResult, error) {
	return s.mutate(ctx, domain.ListRemoved, words, s.f.RemoveWords, s.f.AddWords)
}

// AddWhitelist exempts phrases from matching
func (s *Svc) AddWhitelist(ctx context.Context, words []string) (domain.WordsResult, error) {
	wl := s.f.Whitelist()
	return s.mutate(ctx, domain.ListWhitelist, words, wl.AddWords, wl.RemoveWords)
}

// RemoveWhitelist lifts exemptions
func (s *Svc) RemoveWhitelist(ctx context.Context, words []string) (domain.WordsResult, error) {
	wl := s.f.Whitelist()
	return s.mutate(ctx, domain.ListWhitelist, words, wl.RemoveWords, wl.AddWords)
}

// mutate applies do under the lock and persists the net change. When
// persistence fails undo runs over the phrases that actually moved, so memory
// and storage never disagree
func (s *Svc) mutate(ctx context.Context, list domain.List, words []string, do, undo func(...string)) (domain.WordsResult, error) {
	ws := phrases(words)

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.snapshotLocked()
	do(ws...)
	after := s.snapshotLocked()

	var (
		changes []domain.Change
		moved   = map[string]struct{}{}
	)
	for _, l := range []domain.List{domain.ListBlacklist, domain.ListWhitelist, domain.ListRemoved} {
		c := domain.Change{List: l}
		c.Added, c.Gone = diff(before[l], after[l])
		if c.Empty() {
			continue
		}
		changes = append(changes, c)
		for _, w := range c.Added {
			moved[w] = struct{}{}
		}
		for _, w := range c.Gone {
			moved[w] = struct{}{}
		}
	}

	if s.overrides != nil && len(changes) > 0 {
		if err := s.overrides.Apply(ctx, changes...); err != nil {
			undo(keys(moved)...)
			return domain.WordsResult{}, err
		}
	}
	s.gaugeLocked()

	s.log.Debug().Str("list", string(list)).Int("phrases", len(ws)).Int("moved", len(moved)).Msg("word lists changed")

	return domain.WordsResult{List: string(list), Accepted: len(moved), Size: len(after[list])}, nil
}

// diff compares two sorted lists
func diff(before, after []string) (added, gone []string) {
	i, j := 0, 0
	for i < len(before) && j < len(after) {
		switch {
		case before[i] == after[j]:
			i++
			j++
		case before[i] < after[j]:
			gone = append(gone, before[i])
			i++
		default:
			added = append(added, after[j])
			j++
		}
	}
	gone = append(gone, before[i:]...)
	added = append(added, after[j:]...)
	return added, gone
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
