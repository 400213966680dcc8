// Package tasks maps task names to opaque handlers invoked by the daemon
// worker. Handlers run synchronously on the worker goroutine; registration
// may happen from any goroutine at any time.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTask reports an invocation of a name with no registered handler.
var ErrUnknownTask = errors.New("tasks: unknown task")

// Handler executes a task. The correlation token carries per-frame context
// (for example a scanned visual payload) into the handler; effects are the
// handler's own business and invisible to the registry.
type Handler func(ctx context.Context, correlationToken string)

// Registry is a name/handler map. Re-registering a name silently replaces
// the previous handler; that is the supported way to reconfigure behavior
// at runtime.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry returns an empty task registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register installs a handler under name, replacing any existing one.
// A nil handler removes the registration.
func (r *Registry) Register(name string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if handler == nil {
		delete(r.handlers, name)
		return
	}
	r.handlers[name] = handler
}

// Invoke runs the handler for name synchronously on the calling goroutine.
// An unregistered name yields ErrUnknownTask and no other effect.
func (r *Registry) Invoke(ctx context.Context, name, correlationToken string) error {
	r.mu.RLock()
	handler, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTask, name)
	}
	handler(ctx, correlationToken)
	return nil
}

// Names returns the registered task names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
