package webhook

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/garrettladley/cryptopay/internal/xslog"
	"github.com/garrettladley/cryptopay/pkg/cryptopay"
	go_json "github.com/goccy/go-json"
)

var ErrMalformedUpdate = errors.New("malformed update")

// Listener handles a verified update. A non-nil error stops the remaining
// listeners and is returned from Emit.
type Listener func(ctx context.Context, update *cryptopay.Update) error

type registration struct {
	updateType cryptopay.UpdateType
	listener   Listener
}

// Dispatcher verifies webhook deliveries and fans them out to listeners.
// It is safe for concurrent use.
type Dispatcher struct {
	secret []byte
	logger *slog.Logger

	mu        sync.Mutex
	listeners []registration
}

type Option func(*Dispatcher)

func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

func NewDispatcher(token string, opts ...Option) *Dispatcher {
	return NewDispatcherWithSecret(DeriveSecret(token), opts...)
}

func NewDispatcherWithSecret(secret []byte, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		secret: bytes.Clone(secret),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// On registers listener. updateType is recorded but every listener
// receives every update.
func (d *Dispatcher) On(updateType cryptopay.UpdateType, listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, registration{updateType: updateType, listener: listener})
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

func (d *Dispatcher) snapshot() []registration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.listeners)
}

// Emit verifies signature over body and, when it matches, decodes the
// update and invokes every listener in registration order. It reports
// false with a nil error for an unauthentic body.
func (d *Dispatcher) Emit(ctx context.Context, body []byte, signature string) (bool, error) {
	if !Verify(d.secret, signature, body) {
		xslog.FromContext(ctx, d.logger).WarnContext(ctx, "rejected webhook with invalid signature")
		return false, nil
	}

	update, err := cryptopay.ParseUpdate(body)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedUpdate, err)
	}

	return true, d.dispatch(ctx, update)
}

// EmitUpdate is Emit for an update that is already decoded. The signature is
// checked against update.Raw() when present; otherwise against the JSON
// re-encoding of update, which only matches if it reproduces the sender's
// bytes exactly.
func (d *Dispatcher) EmitUpdate(ctx context.Context, update *cryptopay.Update, signature string) (bool, error) {
	if update == nil {
		return false, fmt.Errorf("%w: nil update", ErrMalformedUpdate)
	}

	body := update.Raw()
	if body == nil {
		encoded, err := go_json.Marshal(update)
		if err != nil {
			return false, fmt.Errorf("encoding update: %w", err)
		}
		body = encoded
	}

	if !Verify(d.secret, signature, body) {
		xslog.FromContext(ctx, d.logger).WarnContext(ctx, "rejected webhook with invalid signature", xslog.UpdateID(update.UpdateID))
		return false, nil
	}

	return true, d.dispatch(ctx, update)
}

func (d *Dispatcher) dispatch(ctx context.Context, update *cryptopay.Update) error {
	listeners := d.snapshot()
	logger := xslog.FromContext(ctx, d.logger)

	logger.DebugContext(ctx, "dispatching update",
		xslog.UpdateID(update.UpdateID),
		xslog.UpdateType(string(update.UpdateType)),
		xslog.Listeners(len(listeners)),
	)

	for i, reg := range listeners {
		if err := reg.listener(ctx, update); err != nil {
			logger.ErrorContext(ctx, "webhook listener failed",
				xslog.UpdateID(update.UpdateID),
				xslog.ListenerIndex(i),
				xslog.Error(err),
			)
			return fmt.Errorf("listener %d: %w", i, err)
		}
	}
	return nil
}
