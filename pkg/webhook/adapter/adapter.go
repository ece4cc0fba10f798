// Package adapter connects the webhook dispatcher to HTTP frameworks.
//
// Each framework gets an Adapter for use with a webhook.Registry and a typed
// constructor returning the framework's native handler.
package adapter

import (
	"errors"
	"fmt"

	"github.com/garrettladley/cryptopay/internal/xerrors"
	"github.com/garrettladley/cryptopay/pkg/webhook"
)

const ack = "OK"

// Default returns a registry with every supported framework.
func Default() *webhook.Registry {
	return webhook.NewRegistry().
		Register(webhook.FrameworkHTTP, AdaptHTTP).
		Register(webhook.FrameworkGin, AdaptGin).
		Register(webhook.FrameworkEcho, AdaptEcho).
		Register(webhook.FrameworkFiber, AdaptFiber).
		Register(webhook.FrameworkFastHTTP, AdaptFastHTTP)
}

func unsupported(fw webhook.Framework, want string, args []any) error {
	return fmt.Errorf("%w: %s wants (%s), got %d args", webhook.ErrUnsupportedArgs, fw, want, len(args))
}

func toHTTPError(err error) *xerrors.Error {
	if errors.Is(err, webhook.ErrMalformedUpdate) {
		return xerrors.BadRequest(xerrors.WithMessage("malformed update"), xerrors.WithCause(err))
	}
	return xerrors.Internal(xerrors.WithMessage("webhook handling failed"), xerrors.WithCause(err))
}
