package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"profanity/internal/core/filter"
	"profanity/internal/core/wordlist"
	phttp "profanity/internal/platform/net/http"
	fhttp "profanity/internal/services/api/filter/http"
	fsvc "profanity/internal/services/api/filter/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Kind       string          `json:"kind"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func router(t *testing.T) http.Handler {
	t.Helper()
	f, err := filter.New(filter.WithCorpus(wordlist.Corpus{"en": {"arse", "damn"}}))
	require.NoError(t, err)

	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/filter", func(sub phttp.Router) { fhttp.Register(sub, fsvc.New(f)) })
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestExistsAndCensorRoutes(t *testing.T) {
	h := router(t)

	code, env := do(t, h, http.MethodPost, "/filter/exists", `{"text":"oh damn"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"exists":true}`, string(env.Data))

	code, env = do(t, h, http.MethodPost, "/filter/censor", `{"text":"oh damn","censor_type":"all_vowels"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"text":"oh d*mn"}`, string(env.Data))

	code, env = do(t, h, http.MethodPost, "/filter/censor", `{"text":7}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"text":7}`, string(env.Data))

	code, env = do(t, h, http.MethodPost, "/filter/matches", `{"text":"arse and damn"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"matches":[{"start":0,"end":4,"text":"arse"},{"start":9,"end":13,"text":"damn"}]}`, string(env.Data))
}

func TestErrorsUseEnvelope(t *testing.T) {
	h := router(t)

	code, env := do(t, h, http.MethodPost, "/filter/exists", `{"text":"x","languages":["klingon"]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "invalid_argument", env.Kind)
	assert.Equal(t, "languages", env.Field)
	assert.Contains(t, env.Error, "klingon")

	code, env = do(t, h, http.MethodPost, "/filter/censor", `{"text":"x","censor_type":"sideways"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "censor_type", env.Field)

	code, env = do(t, h, http.MethodPost, "/filter/words", `{"words":[]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "words", env.Field)

	code, _ = do(t, h, http.MethodPost, "/filter/exists", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestWordRoutes(t *testing.T) {
	h := router(t)

	code, env := do(t, h, http.MethodPost, "/filter/words", `{"words":["blimey"]}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"list":"blacklist","accepted":1,"size":1}`, string(env.Data))

	do(t, h, http.MethodPost, "/filter/words/remove", `{"words":["damn"]}`)
	do(t, h, http.MethodPost, "/filter/whitelist", `{"words":["arse"]}`)

	code, env = do(t, h, http.MethodGet, "/filter/lists", "")
	require.Equal(t, http.StatusOK, code)
	var lists struct {
		Blacklist []string `json:"blacklist"`
		Whitelist []string `json:"whitelist"`
		Removed   []string `json:"removed"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &lists))
	assert.Equal(t, []string{"blimey"}, lists.Blacklist)
	assert.Equal(t, []string{"arse"}, lists.Whitelist)
	assert.Equal(t, []string{"damn"}, lists.Removed)

	_, env = do(t, h, http.MethodPost, "/filter/exists", `{"text":"arse damn blimey"}`)
	assert.JSONEq(t, `{"exists":true}`, string(env.Data))

	do(t, h, http.MethodPost, "/filter/whitelist/remove", `{"words":["ARSE"]}`)
	_, env = do(t, h, http.MethodGet, "/filter/lists", "")
	require.NoError(t, json.Unmarshal(env.Data, &lists))
	assert.Empty(t, lists.Whitelist)
}
