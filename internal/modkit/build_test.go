package modkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"profanity/internal/modkit/httpkit"
	phttp "profanity/internal/platform/net/http"
	"profanity/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type stub struct{ ports any }

func (s *stub) Name() string                  { return "stub" }
func (s *stub) MountRoutes(_ httpkit.Router) {}
func (s *stub) Ports() any                    { return s.ports }

type filterPorts struct{ Words func() int }

func TestBuildDefaults(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Prefix != "" || b.Ports != nil || len(b.Mw) != 0 {
		t.Fatalf("unexpected defaults: %+v", b)
	}
	testkit.MustNotPanic(t, func() { b.Register(nil) })
}

func TestBuildPrefixNormalized(t *testing.T) {
	for in, want := range map[string]string{
		"filter":    "/filter",
		"/filter/":  "/filter",
		" /meta ":   "/meta",
		"/":         "",
		"api/v1/x/": "/api/v1/x",
	} {
		if got := Build(WithPrefix(in)).Prefix; got != want {
			t.Fatalf("prefix(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildCopiesMiddleware(t *testing.T) {
	mw := func(next http.Handler) http.Handler { return next }
	opts := []Option{WithName("filter"), WithMiddlewares(mw, mw)}
	b := Build(opts...)
	b.Mw[0] = nil
	if Build(opts...).Mw[0] == nil {
		t.Fatal("Build leaked its middleware slice")
	}
}

func TestBuiltMountRunsRegister(t *testing.T) {
	var extra bool
	b := Build(
		WithPrefix("/filter"),
		WithMiddlewares(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Module", "filter")
				next.ServeHTTP(w, r)
			})
		}),
		WithRegister(func(r httpkit.Router) {
			extra = true
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
		}),
	)

	r := phttp.AdaptChi(chi.NewRouter())
	b.Mount(r, func(sub httpkit.Router) {
		sub.Get("/lists", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	})
	if !extra {
		t.Fatal("register hook not called")
	}

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/filter/lists", nil))
	if rec.Code != http.StatusOK || rec.Header().Get("X-Module") != "filter" {
		t.Fatalf("got %d %q", rec.Code, rec.Header().Get("X-Module"))
	}
}

func TestPortsOf(t *testing.T) {
	m := &stub{ports: filterPorts{Words: func() int { return 3 }}}
	p, ok := PortsOf[filterPorts](m)
	if !ok || p.Words() != 3 {
		t.Fatal("PortsOf failed")
	}
	if _, ok := PortsOf[string](m); ok {
		t.Fatal("wrong type should not match")
	}
	testkit.MustPanic(t, func() { MustPortsOf[string](m) })
}

func TestDepsLogger(t *testing.T) {
	if (Deps{}).Logger("filter") == nil {
		t.Fatal("nil logger")
	}
}
