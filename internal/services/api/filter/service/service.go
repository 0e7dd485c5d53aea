// Package service serializes access to one shared filter and layers
// persistence, metrics and the event log over it
package service

import (
	"context"
	"strings"
	"sync"

	"profanity/internal/core/filter"
	"profanity/internal/core/normalize"
	"profanity/internal/platform/logger"
	"profanity/internal/platform/metrics"
	"profanity/internal/services/api/filter/domain"
)

// Service defines the service contract for the filter
type Service interface{ domain.ServicePort }

// Svc implements Service. Every call, reads included, holds mu because a
// filter compiles and caches patterns lazily
type Svc struct {
	mu sync.Mutex
	f  *filter.Filter

	overrides domain.OverrideStore
	events    domain.EventSink
	m         *metrics.Metrics
	log       *logger.Logger
}

// Option configures Svc
type Option func(*Svc)

// WithOverrides persists list mutations to st
func WithOverrides(st domain.OverrideStore) Option { return func(s *Svc) { s.overrides = st } }

// WithEvents records every text call to sink
func WithEvents(sink domain.EventSink) Option { return func(s *Svc) { s.events = sink } }

// WithMetrics counts calls and tracks list sizes
func WithMetrics(m *metrics.Metrics) Option { return func(s *Svc) { s.m = m } }

// WithLogger overrides the component logger
func WithLogger(l *logger.Logger) Option { return func(s *Svc) { s.log = l } }

// New wraps f. The service owns f from here on; do not touch it elsewhere
func New(f *filter.Filter, opts ...Option) *Svc {
	if f == nil {
		panic("filter.Service requires a non nil Filter")
	}
	s := &Svc{f: f, log: logger.Named("filter")}
	for _, o := range opts {
		o(s)
	}
	s.gauge()
	return s
}

// Load replays persisted overrides into the filter
func (s *Svc) Load(ctx context.Context) (int, error) {
	if s.overrides == nil {
		return 0, nil
	}
	all, err := s.overrides.Load(ctx)
	if err != nil {
		return 0, err
	}

	byList := map[domain.List][]string{}
	for _, o := range all {
		byList[o.List] = append(byList[o.List], o.Phrase)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ws := byList[domain.ListBlacklist]; len(ws) > 0 {
		s.f.AddWords(ws...)
	}
	if ws := byList[domain.ListRemoved]; len(ws) > 0 {
		s.f.RemoveWords(ws...)
	}
	if ws := byList[domain.ListWhitelist]; len(ws) > 0 {
		s.f.Whitelist().AddWords(ws...)
	}
	s.gaugeLocked()
	return len(all), nil
}

// Config returns the filter settings
func (s *Svc) Config() filter.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Config()
}

// Exists implements domain.ServicePort
func (s *Svc) Exists(ctx context.Context, in domain.TextInput) (domain.ExistsResult, error) {
	text := clean(in.Text)

	s.mu.Lock()
	found, err := s.f.ExistsValue(text, in.Languages...)
	s.mu.Unlock()
	if err != nil {
		return domain.ExistsResult{}, mapErr(err)
	}

	hits := 0
	if found {
		hits = 1
	}
	s.observe(ctx, "exists", in.Languages, hits)
	return domain.ExistsResult{Exists: found}, nil
}

// Censor implements domain.ServicePort
func (s *Svc) Censor(ctx context.Context, in domain.CensorInput) (domain.CensorResult, error) {
	ct, err := filter.ParseCensorType(in.CensorType)
	if err != nil {
		return domain.CensorResult{}, mapErr(err)
	}
	text := in.Text

	s.mu.Lock()
	out, err := s.f.CensorValue(text, ct, in.Languages...)
	s.mu.Unlock()
	if err != nil {
		return domain.CensorResult{}, mapErr(err)
	}

	hits := 0
	if str, ok := out.(string); ok && str != text {
		hits = 1
	}
	s.observe(ctx, "censor", in.Languages, hits)
	return domain.CensorResult{Text: out}, nil
}

// Matches implements domain.ServicePort. Offsets are byte offsets into in.Text
func (s *Svc) Matches(ctx context.Context, in domain.TextInput) (domain.MatchesResult, error) {
	res := domain.MatchesResult{Matches: []filter.Match{}}
	text, ok := in.Text.(string)

	if !ok {
		s.observe(ctx, "matches", in.Languages, 0)
		return res, nil
	}

	s.mu.Lock()
	ms, err := s.f.Matches(text, in.Languages...)
	s.mu.Unlock()
	if err != nil {
		return res, mapErr(err)
	}

	if len(ms) > 0 {
		res.Matches = ms
	}
	s.observe(ctx, "matches", in.Languages, len(ms))
	return res, nil
}

// Lists implements domain.ServicePort
func (s *Svc) Lists(_ context.Context) domain.Lists {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.f.Config()
	return domain.Lists{
		Blacklist: s.f.Blacklist(),
		Whitelist: s.f.Whitelist().Words(),
		Removed:   s.f.Removed(),
		Languages: s.f.Languages(),
		Defaults:  cfg.Languages,
		WholeWord: cfg.WholeWord,
	}
}

// clean sanitizes string input and passes anything else through
func clean(v any) any {
	if str, ok := v.(string); ok {
		return normalize.Clean(str)
	}
	return v
}

func phrases(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = normalize.Fold(strings.TrimSpace(normalize.Clean(w))); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func (s *Svc) observe(ctx context.Context, op string, languages []string, hits int) {
	if s.m != nil {
		s.m.Ops.WithLabelValues(op).Inc()
		if hits > 0 {
			s.m.Flagged.WithLabelValues(op).Inc()
		}
	}
	if s.events == nil {
		return
	}
	if languages == nil {
		languages = s.Config().Languages
	}
	ev := domain.Event{Op: op, Languages: languages, Matches: hits, Flagged: hits > 0}
	if err := s.events.Record(ctx, ev); err != nil {
		logger.C(ctx).Warn().Err(err).Str("op", op).Msg("record filter event")
	}
}

func (s *Svc) gauge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gaugeLocked()
}

func (s *Svc) gaugeLocked() {
	if s.m == nil {
		return
	}
	s.m.Words.WithLabelValues(string(domain.ListBlacklist)).Set(float64(len(s.f.Blacklist())))
	s.m.Words.WithLabelValues(string(domain.ListWhitelist)).Set(float64(s.f.Whitelist().Len()))
	s.m.Words.WithLabelValues(string(domain.ListRemoved)).Set(float64(len(s.f.Removed())))
}

var _ domain.ServicePort = (*Svc)(nil)
