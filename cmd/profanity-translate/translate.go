package main

import (
	"context"
	"strings"
	"time"

	perr "profanity/internal/platform/errors"
	"profanity/internal/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	batchSize     = 50
	batchAttempts = 3
	batchDelay    = time.Second
	sourceLang    = "en"
)

// results containing any of these are server messages, not translations
var suspicious = []string{"error", "not found", "invalid", "translation"}

type translator interface {
	Translate(ctx context.Context, q, source, target string) (string, error)
}

// Translator renders a phrase list into target languages batch by batch
type Translator struct {
	c       translator
	log     *logger.Logger
	workers int
	sleep   func(context.Context, time.Duration) error

	// progress is called after each batch with the done and total counts
	progress func(target string, done, total int)
}

// NewTranslator wraps c. workers bounds concurrent requests per batch
func NewTranslator(c translator, workers int) *Translator {
	if workers <= 0 {
		workers = 1
	}
	return &Translator{
		c:        c,
		log:      logger.Named("translate"),
		workers:  workers,
		sleep:    sleepCtx,
		progress: func(string, int, int) {},
	}
}

// Words translates words into target. Output order follows input order.
// A batch that keeps failing after batchAttempts falls back to the originals
func (t *Translator) Words(ctx context.Context, words []string, target string) ([]string, error) {
	out := make([]string, 0, len(words))
	for i := 0; i < len(words); i += batchSize {
		batch := words[i:min(i+batchSize, len(words))]

		var got []string
		var err error
		for attempt := 1; attempt <= batchAttempts; attempt++ {
			got, err = t.batch(ctx, batch, target)
			if err == nil {
				break
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if attempt == batchAttempts {
				t.log.Error().Err(err).Str("target", target).Int("from", i).Msg("batch failed, keeping originals")
				got = batch
				break
			}
			t.log.Warn().Err(err).Str("target", target).Int("attempts_left", batchAttempts-attempt).Msg("retrying batch")
			if err := t.sleep(ctx, batchDelay); err != nil {
				return nil, err
			}
		}
		out = append(out, got...)
		t.progress(target, len(out), len(words))
	}
	return out, nil
}

func (t *Translator) batch(ctx context.Context, batch []string, target string) ([]string, error) {
	got := make([]string, len(batch))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)
	for i, w := range batch {
		g.Go(func() error {
			s, err := t.word(gctx, w, target)
			got[i] = s
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return got, nil
}

// word translates one phrase. Only unavailability is an error; anything else
// keeps the original phrase
func (t *Translator) word(ctx context.Context, w, target string) (string, error) {
	if strings.Contains(w, " ") {
		return w, nil
	}
	res, err := t.c.Translate(ctx, strings.ReplaceAll(w, "_", ""), sourceLang, target)
	if err != nil {
		if perr.Is(err, perr.CodeUnavailable) {
			return "", err
		}
		t.log.Warn().Err(err).Str("word", w).Str("target", target).Msg("translate failed")
		return w, nil
	}
	res = strings.ToLower(res)
	if strings.Trim(res, " *\t\n") == "" {
		return w, nil
	}
	for _, s := range suspicious {
		if strings.Contains(res, s) {
			t.log.Warn().Str("word", w).Str("target", target).Str("result", res).Msg("unexpected translation")
			return w, nil
		}
	}
	return res, nil
}

// tidy strips quotes, trims and dedupes, keeping first-seen order
func tidy(words []string) []string {
	strip := strings.NewReplacer(`"`, "", "“", "", "”", "")
	out := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(strip.Replace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// targets picks the languages source can be translated into, minus source
func targets(langs []Language, source string) ([]string, error) {
	for _, l := range langs {
		if l.Code != source {
			continue
		}
		out := make([]string, 0, len(l.Targets))
		for _, c := range l.Targets {
			if c != source {
				out = append(out, c)
			}
		}
		return out, nil
	}
	return nil, perr.NotFoundf("language %q not supported by server", source)
}
