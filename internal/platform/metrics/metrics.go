// Package metrics holds the Prometheus instruments for the filter service.
// Each Metrics owns its registry so tests and multiple servers never collide
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "profanity"

// Metrics groups every instrument we export
type Metrics struct {
	reg *prometheus.Registry

	// Requests counts HTTP requests by route pattern, method and status code
	Requests *prometheus.CounterVec
	// Latency records HTTP handling time by route pattern
	Latency *prometheus.HistogramVec

	// Ops counts filter calls by op: exists, censor, matches
	Ops *prometheus.CounterVec
	// Flagged counts calls that found profanity, by op
	Flagged *prometheus.CounterVec
	// Compiles records how long pattern compilation takes
	Compiles prometheus.Histogram
	// Phrases is the phrase count of the last pattern compiled per language key
	Phrases *prometheus.GaugeVec
	// Words is the size of the blacklist, whitelist and removed sets
	Words *prometheus.GaugeVec
	// Events counts filter events sent to clickhouse by outcome: ok, dropped, failed
	Events *prometheus.CounterVec
}

// New builds the instruments on a fresh registry that also carries the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests handled",
		}, []string{"route", "method", "code"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"route"}),
		Ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "filter", Name: "ops_total",
			Help: "Filter operations by kind",
		}, []string{"op"}),
		Flagged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "filter", Name: "flagged_total",
			Help: "Filter operations that found profanity",
		}, []string{"op"}),
		Compiles: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "filter", Name: "compile_seconds",
			Help:    "Pattern compilation time",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		}),
		Phrases: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "filter", Name: "pattern_phrases",
			Help: "Phrases in the compiled pattern for a language key",
		}, []string{"languages"}),
		Words: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "filter", Name: "words",
			Help: "Entries in the runtime word lists",
		}, []string{"list"}),
		Events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "events", Name: "total",
			Help: "Filter events by delivery outcome",
		}, []string{"outcome"}),
	}
	m.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Requests, m.Latency, m.Ops, m.Flagged, m.Compiles, m.Phrases, m.Words, m.Events,
	)
	return m
}

// Registry exposes the registry for tests and extra collectors
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveCompile is shaped to plug into the filter's compile hook
func (m *Metrics) ObserveCompile(languages string, phrases int, took time.Duration) {
	m.Compiles.Observe(took.Seconds())
	m.Phrases.WithLabelValues(languages).Set(float64(phrases))
}

// Middleware records request count and latency keyed by the chi route pattern
// so path parameters do not explode label cardinality
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.Latency.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
