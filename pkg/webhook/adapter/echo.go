package adapter

import (
	"context"
	"io"
	"net/http"

	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/labstack/echo/v4"
)

type echoRequest struct {
	c echo.Context
}

func (e *echoRequest) Body(context.Context) ([]byte, error) {
	return io.ReadAll(e.c.Request().Body)
}

func (e *echoRequest) SignatureHeader() string {
	return e.c.Request().Header.Get(webhook.HeaderSignature)
}

func (e *echoRequest) Respond() error {
	return e.c.String(http.StatusOK, ack)
}

// AdaptEcho expects (echo.Context).
func AdaptEcho(args ...any) (webhook.Request, error) {
	if len(args) != 1 {
		return nil, unsupported(webhook.FrameworkEcho, "echo.Context", args)
	}
	c, ok := args[0].(echo.Context)
	if !ok {
		return nil, unsupported(webhook.FrameworkEcho, "echo.Context", args)
	}
	return &echoRequest{c: c}, nil
}

// Echo returns failures as *echo.HTTPError for the echo error handler.
func Echo(d *webhook.Dispatcher) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := webhook.Handle(c.Request().Context(), d, &echoRequest{c: c}); err != nil {
			httpErr := toHTTPError(err)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.Message).SetInternal(err)
		}
		return nil
	}
}
