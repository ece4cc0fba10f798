package webhook

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
)

type Framework string

const (
	FrameworkHTTP     Framework = "net/http"
	FrameworkGin      Framework = "gin"
	FrameworkEcho     Framework = "echo"
	FrameworkFiber    Framework = "fiber"
	FrameworkFastHTTP Framework = "fasthttp"
)

func (f Framework) String() string {
	return string(f)
}

var ErrUnknownFramework = errors.New("unknown framework")

// Registry maps frameworks to adapters. Build it once at startup; it is not
// safe for registration concurrent with lookups.
type Registry struct {
	adapters map[Framework]Adapter
}

func NewRegistry() *Registry {
	return &Registry{adapters: make(map[Framework]Adapter)}
}

// Register adds or replaces the adapter for fw.
func (r *Registry) Register(fw Framework, adapter Adapter) *Registry {
	r.adapters[fw] = adapter
	return r
}

func (r *Registry) Lookup(fw Framework) (Adapter, error) {
	adapter, ok := r.adapters[fw]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownFramework, fw, r.Frameworks())
	}
	return adapter, nil
}

// Frameworks returns the registered frameworks in sorted order.
func (r *Registry) Frameworks() []Framework {
	return slices.Sorted(maps.Keys(r.adapters))
}

// HandlerFunc handles one delivery given the framework's native arguments.
type HandlerFunc func(ctx context.Context, args ...any) error

// Bind returns a handler that adapts args with the adapter registered for
// fw and passes the result to Handle.
func Bind(d *Dispatcher, registry *Registry, fw Framework) (HandlerFunc, error) {
	adapter, err := registry.Lookup(fw)
	if err != nil {
		return nil, err
	}
	return func(ctx context.Context, args ...any) error {
		req, err := adapter(args...)
		if err != nil {
			return fmt.Errorf("%s adapter: %w", fw, err)
		}
		return Handle(ctx, d, req)
	}, nil
}
