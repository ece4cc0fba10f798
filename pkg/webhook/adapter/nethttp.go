package adapter

import (
	"context"
	"io"
	"net/http"

	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/garrettladley/cryptopay/pkg/webhook"
)

type httpRequest struct {
	w http.ResponseWriter
	r *http.Request
}

func (h *httpRequest) Body(context.Context) ([]byte, error) {
	return io.ReadAll(h.r.Body)
}

func (h *httpRequest) SignatureHeader() string {
	return h.r.Header.Get(webhook.HeaderSignature)
}

func (h *httpRequest) Respond() error {
	return xhttp.WriteText(h.w, http.StatusOK, ack)
}

// AdaptHTTP expects (http.ResponseWriter, *http.Request).
func AdaptHTTP(args ...any) (webhook.Request, error) {
	const want = "http.ResponseWriter, *http.Request"
	if len(args) != 2 {
		return nil, unsupported(webhook.FrameworkHTTP, want, args)
	}
	w, ok := args[0].(http.ResponseWriter)
	if !ok {
		return nil, unsupported(webhook.FrameworkHTTP, want, args)
	}
	r, ok := args[1].(*http.Request)
	if !ok || r == nil {
		return nil, unsupported(webhook.FrameworkHTTP, want, args)
	}
	return &httpRequest{w: w, r: r}, nil
}

// HTTPFunc serves a handler bound to FrameworkHTTP with webhook.Bind.
func HTTPFunc(h webhook.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := h(ctx, w, r); err != nil {
			xerrors.WriteError(ctx, w, toHTTPError(err))
		}
	}
}

func HTTP(d *webhook.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := webhook.Handle(ctx, d, &httpRequest{w: w, r: r}); err != nil {
			xerrors.WriteError(ctx, w, toHTTPError(err))
		}
	}
}
