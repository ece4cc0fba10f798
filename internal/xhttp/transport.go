package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/cryptopay/internal/version"
)

type userAgentTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*userAgentTransport)(nil)

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that sets the cryptopay User-Agent.
func NewTransport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &userAgentTransport{base: base}
}
