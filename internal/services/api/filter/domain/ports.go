package domain

import (
	"context"

	"profanity/internal/core/filter"
)

// ServicePort is the filter service contract the http layer depends on
type ServicePort interface {
	Exists(ctx context.Context, in TextInput) (ExistsResult, error)
	Censor(ctx context.Context, in CensorInput) (CensorResult, error)
	Matches(ctx context.Context, in TextInput) (MatchesResult, error)

	AddWords(ctx context.Context, words []string) (WordsResult, error)
	RemoveWords(ctx context.Context, words []string) (WordsResult, error)
	AddWhitelist(ctx context.Context, words []string) (WordsResult, error)
	RemoveWhitelist(ctx context.Context, words []string) (WordsResult, error)

	Lists(ctx context.Context) Lists
	Config() filter.Config
}

// OverrideStore persists list mutations so they survive restarts
type OverrideStore interface {
	Load(ctx context.Context) ([]Override, error)
	Apply(ctx context.Context, changes ...Change) error
}

// EventSink records filter calls
type EventSink interface {
	Record(ctx context.Context, ev Event) error
}
