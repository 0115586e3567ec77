package navigation

import (
	"context"
	"sync"
)

type Event string

const (
	RouteChangeStart    Event = "routeChangeStart"
	RouteChangeComplete Event = "routeChangeComplete"
	RouteChangeError    Event = "routeChangeError"
)

type Handler func(route string, err error)

// Router publishes route transition events to registered handlers.
type Router struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[Event]map[uint64]Handler
}

func NewRouter() *Router {
	return &Router{handlers: make(map[Event]map[uint64]Handler)}
}

// On registers handler for event. The returned func removes it and may be
// called any number of times.
func (r *Router) On(event Event, handler Handler) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	if r.handlers[event] == nil {
		r.handlers[event] = make(map[uint64]Handler)
	}
	r.handlers[event][id] = handler

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			delete(r.handlers[event], id)
		})
	}
}

func (r *Router) Emit(event Event, route string, err error) {
	r.mu.Lock()
	handlers := make([]Handler, 0, len(r.handlers[event]))
	for _, handler := range r.handlers[event] {
		handlers = append(handlers, handler)
	}
	r.mu.Unlock()

	for _, handler := range handlers {
		handler(route, err)
	}
}

// Subscribers reports how many handlers are registered for event.
func (r *Router) Subscribers(event Event) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers[event])
}

// Navigate runs load as a transition to route: start before, then complete
// or error depending on the result, which is returned unchanged.
func (r *Router) Navigate(ctx context.Context, route string, load func(ctx context.Context) error) error {
	r.Emit(RouteChangeStart, route, nil)
	if err := load(ctx); err != nil {
		r.Emit(RouteChangeError, route, err)
		return err
	}
	r.Emit(RouteChangeComplete, route, nil)
	return nil
}
