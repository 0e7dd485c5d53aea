package main

import (
	"context"
	"net/http"
	"syscall"
	"testing"
	"time"

	perr "profanity/internal/platform/errors"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "http://lt.test"

func newTestClient(t *testing.T) (*Client, *[]time.Duration) {
	t.Helper()
	t.Cleanup(gock.Off)
	c := NewClient(Options{BaseURL: testURL + "/", WaitEvery: time.Second})
	var slept []time.Duration
	c.sleep = func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return c, &slept
}

func TestLanguages(t *testing.T) {
	c, _ := newTestClient(t)
	gock.New(testURL).
		Get("/languages").
		MatchHeader("User-Agent", defaultUA).
		Reply(http.StatusOK).
		JSON([]Language{
			{Code: "en", Name: "English", Targets: []string{"de", "en", "fr"}},
			{Code: "de", Name: "German", Targets: []string{"en"}},
		})

	langs, err := c.Languages(context.Background())
	require.NoError(t, err)
	require.Len(t, langs, 2)
	assert.Equal(t, []string{"de", "en", "fr"}, langs[0].Targets)
	assert.True(t, gock.IsDone())
}

func TestWaitLanguagesRetriesWhileRefused(t *testing.T) {
	c, slept := newTestClient(t)
	gock.New(testURL).Get("/languages").ReplyError(syscall.ECONNREFUSED)
	gock.New(testURL).Get("/languages").ReplyError(syscall.ECONNRESET)
	gock.New(testURL).Get("/languages").Reply(http.StatusOK).JSON([]Language{{Code: "en"}})

	langs, err := c.WaitLanguages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en", langs[0].Code)
	assert.Equal(t, []time.Duration{time.Second, time.Second}, *slept)
	assert.True(t, gock.IsDone())
}

func TestWaitLanguagesStopsOnOtherErrors(t *testing.T) {
	c, slept := newTestClient(t)
	gock.New(testURL).Get("/languages").Reply(http.StatusNotFound).BodyString("no such route")

	_, err := c.WaitLanguages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
	assert.Contains(t, err.Error(), "no such route")
	assert.Empty(t, *slept)
}

func TestWaitLanguagesHonoursContext(t *testing.T) {
	c, _ := newTestClient(t)
	gock.New(testURL).Get("/languages").Persist().ReplyError(syscall.ECONNREFUSED)
	ctx, cancel := context.WithCancel(context.Background())
	c.sleep = func(context.Context, time.Duration) error {
		cancel()
		return context.Canceled
	}

	_, err := c.WaitLanguages(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTranslate(t *testing.T) {
	c, _ := newTestClient(t)
	c.opts.APIKey = "k"
	gock.New(testURL).
		Post("/translate").
		MatchType("json").
		JSON(map[string]string{"q": "damn", "source": "en", "target": "de", "format": "text", "api_key": "k"}).
		Reply(http.StatusOK).
		JSON(map[string]string{"translatedText": "Verdammt"})

	got, err := c.Translate(context.Background(), "damn", "en", "de")
	require.NoError(t, err)
	assert.Equal(t, "Verdammt", got)
	assert.True(t, gock.IsDone())
}

func TestTranslateStatusCodes(t *testing.T) {
	c, _ := newTestClient(t)
	gock.New(testURL).Post("/translate").Reply(http.StatusServiceUnavailable)
	gock.New(testURL).Post("/translate").Reply(http.StatusTooManyRequests)
	gock.New(testURL).Post("/translate").Reply(http.StatusBadRequest).JSON(map[string]string{"error": "bad target"})

	_, err := c.Translate(context.Background(), "arse", "en", "xx")
	assert.True(t, perr.Is(err, perr.CodeUnavailable), "got %v", err)

	_, err = c.Translate(context.Background(), "arse", "en", "xx")
	assert.True(t, perr.Is(err, perr.CodeUnavailable), "got %v", err)

	_, err = c.Translate(context.Background(), "arse", "en", "xx")
	require.Error(t, err)
	assert.False(t, perr.Is(err, perr.CodeUnavailable))
	assert.Contains(t, err.Error(), "bad target")
}

func TestTranslateBadBody(t *testing.T) {
	c, _ := newTestClient(t)
	gock.New(testURL).Post("/translate").Reply(http.StatusOK).BodyString("<html>")

	_, err := c.Translate(context.Background(), "arse", "en", "de")
	assert.True(t, perr.Is(err, perr.CodeJSON), "got %v", err)
}

func TestOffline(t *testing.T) {
	assert.True(t, offline(perr.Wrap(syscall.ECONNREFUSED, perr.CodeUnavailable, "x")))
	assert.False(t, offline(perr.New(perr.CodeUnknown, "x")))
}
