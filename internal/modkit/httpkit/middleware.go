package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"profanity/internal/platform/config"
	"profanity/internal/platform/metrics"
	"profanity/internal/platform/net/middleware"
)

// CommonStack is the middleware every API route gets, outermost first.
// m may be nil when metrics are off
func CommonStack(cfg config.Conf, m *metrics.Metrics) []func(http.Handler) http.Handler {
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.Correlate,
		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: cfg.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		}),
		middleware.RecoverJSON,
	}
	if m != nil {
		stack = append(stack, m.Middleware)
	}
	return append(stack,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
			MaxAge:         300,
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Throttle(
			cfg.MayInt("THROTTLE_LIMIT", 256),
			cfg.MayInt("THROTTLE_BACKLOG", 1024),
			cfg.MayDuration("THROTTLE_WAIT", 5*time.Second),
		),
		middleware.Timeout(cfg.MayDuration("REQUEST_TIMEOUT", 30*time.Second)),
	)
}
