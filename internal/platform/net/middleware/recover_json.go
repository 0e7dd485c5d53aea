package middleware

import (
	"net/http"
	"runtime/debug"

	perr "profanity/internal/platform/errors"
	"profanity/internal/platform/logger"
	phttp "profanity/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack.
// http.ErrAbortHandler is re-raised so the server can drop the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			logger.C(r.Context()).Error().
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Str("path", r.URL.Path).
				Msg("panic recovered")
			phttp.RespondError(w, r, perr.Panicf("panic recovered"))
		}()
		next.ServeHTTP(w, r)
	})
}
