// Package hooks is a small named-event registry. Handlers run synchronously in
// registration order on the caller's goroutine.
package hooks

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Lifecycle and render hooks fired by the service.
const (
	Init             = "init"
	Ready            = "ready"
	RenderPlayerList = "renderPlayerList"
	ToDosChanged     = "todoListChanged"
)

// Func handles a hook call. args are whatever the caller passed to Call.
type Func func(ctx context.Context, args ...any) error

type handler struct {
	id   int
	fn   Func
	once bool
}

// Registry holds the handlers registered per hook name.
type Registry struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[string][]handler
}

func New() *Registry {
	return &Registry{handlers: make(map[string][]handler)}
}

// On registers fn for name and returns an id usable with Off.
func (r *Registry) On(name string, fn Func) int {
	return r.register(name, fn, false)
}

// Once registers fn to run on the next call of name only.
func (r *Registry) Once(name string, fn Func) int {
	return r.register(name, fn, true)
}

func (r *Registry) register(name string, fn Func, once bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.handlers[name] = append(r.handlers[name], handler{id: r.nextID, fn: fn, once: once})
	return r.nextID
}

// Off removes the handler with id from name. It reports whether one was removed.
func (r *Registry) Off(name string, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.handlers[name]
	for i, h := range list {
		if h.id == id {
			r.handlers[name] = append(list[:i:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of handlers registered for name.
func (r *Registry) Count(name string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers[name])
}

// Call runs every handler of name. Once handlers are removed before they run.
// A failing handler does not stop the others; their errors are joined.
func (r *Registry) Call(ctx context.Context, name string, args ...any) error {
	r.mu.Lock()
	list := r.handlers[name]
	snapshot := make([]handler, len(list))
	copy(snapshot, list)

	kept := list[:0:0]
	for _, h := range list {
		if !h.once {
			kept = append(kept, h)
		}
	}
	r.handlers[name] = kept
	r.mu.Unlock()

	var errs []error
	for _, h := range snapshot {
		if err := h.fn(ctx, args...); err != nil {
			errs = append(errs, fmt.Errorf("hook %s handler %d: %w", name, h.id, err))
		}
	}
	return errors.Join(errs...)
}
