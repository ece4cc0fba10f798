package middleware

import (
	"net/http"

	"github.com/garrettladley/cryptopay/internal/xcontext"
	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/google/uuid"
)

type RequestIDMiddleware struct {
	IDFunc func(*http.Request) string
}

// DefaultRequestID reuses an inbound X-Request-ID, typically set by a proxy,
// and otherwise generates a UUID.
func DefaultRequestID(r *http.Request) string {
	if id := r.Header.Get(xhttp.XRequestID); id != "" {
		return id
	}
	return uuid.New().String()
}

type RequestIDOption func(*RequestIDMiddleware)

func WithIDFunc(fn func(*http.Request) string) RequestIDOption {
	return func(m *RequestIDMiddleware) { m.IDFunc = fn }
}

func RequestID(opts ...RequestIDOption) func(http.Handler) http.Handler {
	middleware := &RequestIDMiddleware{IDFunc: DefaultRequestID}
	for _, opt := range opts {
		opt(middleware)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := middleware.IDFunc(r)
			ctx := xcontext.SetRequestID(r.Context(), id)
			xhttp.SetHeaderRequestID(w, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
