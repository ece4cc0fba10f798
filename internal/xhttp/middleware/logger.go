package middleware

import (
	"log/slog"
	"net/http"

	"github.com/garrettladley/cryptopay/internal/xcontext"
	"github.com/garrettladley/cryptopay/internal/xslog"
)

// Logger injects base, with attrs and the request id, into request context.
// Must run AFTER RequestID middleware.
func Logger(base *slog.Logger, attrs ...slog.Attr) func(http.Handler) http.Handler {
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	if len(args) > 0 {
		base = base.With(args...)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := base
			if id, ok := xcontext.GetRequestID(r.Context()); ok {
				logger = logger.With(xslog.RequestID(id))
			}
			ctx := xslog.WithLogger(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
