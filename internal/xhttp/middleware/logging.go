package middleware

import (
	"net/http"
	"time"

	"github.com/garrettladley/cryptopay/internal/xslog"
)

type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.status = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logging logs one line per request. Requests to quietPaths, such as a
// health check, are logged at debug.
func Logging(quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(wrapped, r)

			ctx := r.Context()
			logger := xslog.FromContext(ctx)
			attrs := []any{
				xslog.RequestGroup(r),
				xslog.ResponseGroup(wrapped.status, time.Since(start)),
			}
			if _, ok := quiet[r.URL.Path]; ok {
				logger.DebugContext(ctx, "http request", attrs...)
				return
			}
			logger.InfoContext(ctx, "http request", attrs...)
		})
	}
}
