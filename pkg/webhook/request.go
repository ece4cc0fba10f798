package webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/garrettladley/cryptopay/internal/xslog"
)

// Request is the framework-neutral view of an inbound webhook.
type Request interface {
	Body(ctx context.Context) ([]byte, error)
	SignatureHeader() string
}

// Responder is implemented by requests that can acknowledge the delivery.
type Responder interface {
	Respond() error
}

// Adapter turns framework-native handler arguments into a Request.
// It returns ErrUnsupportedArgs when args do not have the expected shape.
type Adapter func(args ...any) (Request, error)

var ErrUnsupportedArgs = errors.New("unsupported handler arguments")

// Handle reads the body, emits it through d and acknowledges the delivery.
// A delivery with an invalid signature is still acknowledged. A listener
// error is returned and nothing is written.
func Handle(ctx context.Context, d *Dispatcher, req Request) error {
	body, err := req.Body(ctx)
	if err != nil {
		return fmt.Errorf("reading webhook body: %w", err)
	}

	ok, err := d.Emit(ctx, body, req.SignatureHeader())
	if err != nil {
		return err
	}
	if !ok {
		xslog.FromContext(ctx, d.logger).DebugContext(ctx, "acknowledging unverified webhook")
	}

	if r, ok := req.(Responder); ok {
		if err := r.Respond(); err != nil {
			return fmt.Errorf("acknowledging webhook: %w", err)
		}
	}
	return nil
}
