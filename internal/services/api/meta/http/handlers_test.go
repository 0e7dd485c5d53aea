package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"profanity/internal/core/filter"
	"profanity/internal/core/wordlist"
	phttp "profanity/internal/platform/net/http"
	fsvc "profanity/internal/services/api/filter/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, d Deps, path string, out any) int {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
	return rec.Code
}

func TestHealthAndService(t *testing.T) {
	started := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	f, err := filter.New(filter.WithCorpus(wordlist.Corpus{"en": {"arse"}, "fr": {"merde"}}))
	require.NoError(t, err)
	svc := fsvc.New(f)
	_, err = svc.AddWords(context.Background(), []string{"blimey"})
	require.NoError(t, err)

	d := Deps{
		ServiceName: "profanity-api",
		StartedAt:   started,
		Filter:      svc,
		Now:         func() time.Time { return started.Add(90 * time.Second) },
	}

	var h HealthResponse
	assert.Equal(t, stdhttp.StatusOK, serve(t, d, "/health", &h))
	assert.True(t, h.OK)
	assert.Equal(t, "2026-10-19T12:01:30Z", h.Now)

	var s ServiceResponse
	serve(t, d, "/service", &s)
	assert.Equal(t, int64(90), s.Uptime)
	require.NotNil(t, s.Filter)
	assert.Equal(t, []string{"en", "fr"}, s.Filter.Languages)
	assert.Equal(t, 1, s.Filter.Lists["blacklist"])
	assert.True(t, s.Filter.WholeWord)
}

func TestReady(t *testing.T) {
	var r ReadyResponse
	code := serve(t, Deps{}, "/ready", &r)
	assert.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, "ok", r.Status)
	assert.Equal(t, "skipped", r.Checks[0].Status)

	var failed ReadyResponse
	code = serve(t, Deps{PG: pinger{}, CH: pinger{err: errors.New("refused")}}, "/ready", &failed)
	assert.Equal(t, stdhttp.StatusServiceUnavailable, code)
	assert.Equal(t, "fail", failed.Status)
	assert.Equal(t, ReadyCheck{Name: "pg", Status: "ok"}, failed.Checks[0])
	assert.Contains(t, failed.Checks[1].Error, "refused")
}

func TestVersion(t *testing.T) {
	var v struct {
		Service string `json:"service"`
	}
	serve(t, Deps{}, "/version", &v)
	assert.Equal(t, "profanity-api", v.Service)
}
