package xhttp

import (
	"net/http"
	"time"
)

type ClientOption func(*http.Client)

func WithTimeout(d time.Duration) ClientOption {
	return func(c *http.Client) { c.Timeout = d }
}

// WithRoundTripper wraps the client's current transport.
func WithRoundTripper(wrap func(base http.RoundTripper) http.RoundTripper) ClientOption {
	return func(c *http.Client) { c.Transport = wrap(c.Transport) }
}

// NewHTTPClient returns a client whose transport stamps the cryptopay User-Agent.
// A nil base uses http.DefaultTransport.
func NewHTTPClient(base http.RoundTripper, opts ...ClientOption) *http.Client {
	c := &http.Client{Transport: NewTransport(base)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
