package adapter

import (
	"bytes"
	"context"

	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/pkg/webhook"
	"github.com/gofiber/fiber/v2"
)

type fiberRequest struct {
	c *fiber.Ctx
}

// Body copies the body; fiber reuses its buffer after the handler returns.
func (f *fiberRequest) Body(context.Context) ([]byte, error) {
	return bytes.Clone(f.c.Body()), nil
}

func (f *fiberRequest) SignatureHeader() string {
	return f.c.Get(webhook.HeaderSignature)
}

func (f *fiberRequest) Respond() error {
	return f.c.SendString(ack)
}

// AdaptFiber expects (*fiber.Ctx).
func AdaptFiber(args ...any) (webhook.Request, error) {
	if len(args) != 1 {
		return nil, unsupported(webhook.FrameworkFiber, "*fiber.Ctx", args)
	}
	c, ok := args[0].(*fiber.Ctx)
	if !ok || c == nil {
		return nil, unsupported(webhook.FrameworkFiber, "*fiber.Ctx", args)
	}
	return &fiberRequest{c: c}, nil
}

// Fiber returns failures as *fiber.Error for the app's error handler.
func Fiber(d *webhook.Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		if err := webhook.Handle(ctx, d, &fiberRequest{c: c}); err != nil {
			httpErr := toHTTPError(err)
			xerrors.Log(ctx, httpErr)
			return fiber.NewError(httpErr.StatusCode, httpErr.Message)
		}
		return nil
	}
}
