package ui

import "sync"

// Observable is a change-notifying container for host application state
// snapshots. It separates data management from UI representation: the host
// mutates the value, the UI engine learns it went stale.
type Observable[T any] struct {
	mu        sync.Mutex
	value     T
	listeners []func(T)
}

// NewObservable creates an observable holding the given initial value.
func NewObservable[T any](initial T) *Observable[T] {
	return &Observable[T]{value: initial}
}

// Get returns the current value.
func (o *Observable[T]) Get() T {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.value
}

// Set replaces the value and notifies listeners.
func (o *Observable[T]) Set(v T) {
	o.mu.Lock()
	o.value = v
	listeners := o.listeners
	o.mu.Unlock()
	for _, fn := range listeners {
		fn(v)
	}
}

// Update applies fn to the value in place and notifies listeners.
func (o *Observable[T]) Update(fn func(T) T) {
	o.mu.Lock()
	o.value = fn(o.value)
	v := o.value
	listeners := o.listeners
	o.mu.Unlock()
	for _, l := range listeners {
		l(v)
	}
}

// OnChange registers a listener called after every Set or Update.
func (o *Observable[T]) OnChange(fn func(T)) *Observable[T] {
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
	return o
}

// WatchInvalidate invalidates the engine's render cache whenever the
// observable changes.
func WatchInvalidate[S, E, T any](e *Engine[S, E], o *Observable[T]) {
	o.OnChange(func(T) { e.Invalidate() })
}
