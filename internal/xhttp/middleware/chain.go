package middleware

import (
	"net/http"
	"slices"
)

// Chain wraps h so that the first middleware listed runs first.
func Chain(h http.Handler, middleware ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range slices.Backward(middleware) {
		h = m(h)
	}
	return h
}
