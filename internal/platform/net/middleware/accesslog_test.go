package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"profanity/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestAccessLogPassesThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "hi")
		_, _ = io.WriteString(w, "there")
	})
	rr := httptest.NewRecorder()
	middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond})(next).
		ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filter/words", nil))

	if rr.Code != http.StatusCreated || rr.Body.String() != "hithere" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}

func TestCorrelateEchoesRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = chimw.GetReqID(r.Context())
	})
	h := chimw.RequestID(middleware.Correlate(next))

	req := httptest.NewRequest(http.MethodGet, "/filter/lists", nil)
	req.Header.Set(chimw.RequestIDHeader, "abc-1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if seen != "abc-1" || rr.Header().Get(chimw.RequestIDHeader) != "abc-1" {
		t.Fatalf("seen %q header %q", seen, rr.Header().Get(chimw.RequestIDHeader))
	}
}

func TestRecoverJSON(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("kaboom") })
	rr := httptest.NewRecorder()
	middleware.RecoverJSON(boom).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/filter/censor", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d", rr.Code)
	}
	var env map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if env["kind"] != "panic" || !strings.Contains(env["error"].(string), "panic recovered") {
		t.Fatalf("env = %v", env)
	}
}
