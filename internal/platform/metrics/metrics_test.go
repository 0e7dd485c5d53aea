package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Post("/filter/{op}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusCreated) })

	for _, p := range []string{"/filter/exists", "/filter/censor"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, p, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("/filter/{op}", "POST", "201")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("unmatched", "GET", "404")))
}

func TestObserveCompile(t *testing.T) {
	m := New()
	m.ObserveCompile("de,en", 440, 3*time.Millisecond)
	assert.Equal(t, 440.0, testutil.ToFloat64(m.Phrases.WithLabelValues("de,en")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Compiles))
}

func TestHandlerExposes(t *testing.T) {
	m := New()
	m.Ops.WithLabelValues("censor").Inc()
	m.Words.WithLabelValues("blacklist").Set(2)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	for _, want := range []string{
		`profanity_filter_ops_total{op="censor"} 1`,
		`profanity_filter_words{list="blacklist"} 2`,
		"go_goroutines",
	} {
		assert.True(t, strings.Contains(string(body), want), "missing %s", want)
	}
}

func TestIndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() { New(); New() })
}
