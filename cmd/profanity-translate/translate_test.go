package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	perr "profanity/internal/platform/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	mu       sync.Mutex
	failures int
	err      error
	reply    map[string]string
	seen     []string
}

func (f *fakeTranslator) Translate(_ context.Context, q, source, target string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, q)
	if f.failures > 0 {
		f.failures--
		return "", perr.Unavailablef("server busy")
	}
	if f.err != nil {
		return "", f.err
	}
	if r, ok := f.reply[q]; ok {
		return r, nil
	}
	return q + "-" + target, nil
}

func newTestTranslator(f *fakeTranslator) (*Translator, *int) {
	tr := NewTranslator(f, 1)
	sleeps := 0
	tr.sleep = func(context.Context, time.Duration) error {
		sleeps++
		return nil
	}
	return tr, &sleeps
}

func TestWordRules(t *testing.T) {
	f := &fakeTranslator{reply: map[string]string{
		"damn":   "Verdammt",
		"fuck":   "* * *",
		"shit":   "Translation Error",
		"bugger": "not found",
		"arse":   "invalid",
	}}
	tr, _ := newTestTranslator(f)
	ctx := context.Background()

	cases := map[string]string{
		"damn":        "verdammt",
		"fuck":        "fuck",
		"shit":        "shit",
		"bugger":      "bugger",
		"arse":        "arse",
		"bloody hell": "bloody hell",
		"s_h_i_t_e":   "shite-de",
	}
	for in, want := range cases {
		got, err := tr.word(ctx, in, "de")
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
	assert.NotContains(t, f.seen, "bloody hell")
	assert.Contains(t, f.seen, "shite")
}

func TestWordKeepsOriginalOnPermanentError(t *testing.T) {
	tr, _ := newTestTranslator(&fakeTranslator{err: errors.New("bad request")})
	got, err := tr.word(context.Background(), "damn", "de")
	require.NoError(t, err)
	assert.Equal(t, "damn", got)
}

func TestWordsRetriesUnavailableBatch(t *testing.T) {
	f := &fakeTranslator{failures: 1}
	tr, sleeps := newTestTranslator(f)

	got, err := tr.Words(context.Background(), []string{"damn", "arse"}, "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"damn-fr", "arse-fr"}, got)
	assert.Equal(t, 1, *sleeps)
}

func TestWordsFallsBackAfterAttempts(t *testing.T) {
	f := &fakeTranslator{failures: 1000}
	tr, sleeps := newTestTranslator(f)

	got, err := tr.Words(context.Background(), []string{"damn", "arse"}, "fr")
	require.NoError(t, err)
	assert.Equal(t, []string{"damn", "arse"}, got)
	assert.Equal(t, batchAttempts-1, *sleeps)
}

func TestWordsBatchesInOrder(t *testing.T) {
	words := make([]string, 120)
	for i := range words {
		words[i] = fmt.Sprintf("w%03d", i)
	}
	tr := NewTranslator(&fakeTranslator{}, 8)
	var marks []int
	tr.progress = func(target string, done, total int) {
		assert.Equal(t, "es", target)
		assert.Equal(t, 120, total)
		marks = append(marks, done)
	}

	got, err := tr.Words(context.Background(), words, "es")
	require.NoError(t, err)
	require.Len(t, got, 120)
	for i, w := range got {
		assert.Equal(t, words[i]+"-es", w)
	}
	assert.Equal(t, []int{50, 100, 120}, marks)
}

func TestWordsCancelled(t *testing.T) {
	tr, _ := newTestTranslator(&fakeTranslator{failures: 1000})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Words(ctx, []string{"damn"}, "de")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTidy(t *testing.T) {
	got := tidy([]string{`"merde"`, " merde ", "“putain”", "", "  ", "con"})
	assert.Equal(t, []string{"merde", "putain", "con"}, got)
}

func TestTargets(t *testing.T) {
	langs := []Language{
		{Code: "de", Targets: []string{"en"}},
		{Code: "en", Targets: []string{"de", "en", "es"}},
	}
	got, err := targets(langs, "en")
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "es"}, got)

	_, err = targets(langs[:1], "en")
	assert.True(t, perr.Is(err, perr.CodeNotFound))
}

func TestPick(t *testing.T) {
	assert.Equal(t, []string{"de", "fr"}, pick(" DE, en,fr,,de "))
	assert.Empty(t, pick(""))
}
