package adapter

import (
	"bytes"
	"context"

	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/internal/xhttp"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/valyala/fasthttp"
)

type fastHTTPRequest struct {
	ctx *fasthttp.RequestCtx
}

func (f *fastHTTPRequest) Body(context.Context) ([]byte, error) {
	return bytes.Clone(f.ctx.PostBody()), nil
}

func (f *fastHTTPRequest) SignatureHeader() string {
	return string(f.ctx.Request.Header.Peek(webhook.HeaderSignature))
}

func (f *fastHTTPRequest) Respond() error {
	f.ctx.SetStatusCode(fasthttp.StatusOK)
	f.ctx.SetContentType(xhttp.TextPlain)
	f.ctx.SetBodyString(ack)
	return nil
}

// AdaptFastHTTP expects (*fasthttp.RequestCtx).
func AdaptFastHTTP(args ...any) (webhook.Request, error) {
	if len(args) != 1 {
		return nil, unsupported(webhook.FrameworkFastHTTP, "*fasthttp.RequestCtx", args)
	}
	ctx, ok := args[0].(*fasthttp.RequestCtx)
	if !ok || ctx == nil {
		return nil, unsupported(webhook.FrameworkFastHTTP, "*fasthttp.RequestCtx", args)
	}
	return &fastHTTPRequest{ctx: ctx}, nil
}

func FastHTTP(d *webhook.Dispatcher) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		if err := webhook.Handle(ctx, d, &fastHTTPRequest{ctx: ctx}); err != nil {
			httpErr := toHTTPError(err)
			xerrors.Log(ctx, httpErr)
			ctx.SetStatusCode(httpErr.StatusCode)
			ctx.SetContentType(xhttp.ApplicationJSON)
			ctx.SetBody(httpErr.Body())
		}
	}
}
