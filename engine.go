package ui

import (
	"sync"
	"sync/atomic"
)

// DisplayFunc is display logic: it reads the current application state and
// describes the UI through the context. It must not mutate state.
type DisplayFunc[S any] func(state S, ctx *Context)

// UpdateFunc is update logic: it folds one event into the state and reports
// whether the UI went stale.
type UpdateFunc[S, E any] func(state S, event E) (S, bool)

// Engine is the event/update loop around the generation pipeline. Display
// logic runs only against current state; update logic runs only in response
// to events. Rendering is skipped entirely while the state is unchanged;
// the cached command stream is returned as-is.
//
// One generation pass (build + layout + publish) is a critical section:
// concurrent RenderIfStale calls serialize, and Dispatch may run from any
// goroutine.
type Engine[S, E any] struct {
	display DisplayFunc[S]
	update  UpdateFunc[S, E]

	pool     *Pool
	builder  *Builder
	layouter *Layouter
	stream   *InstrStream

	// out holds the published command stream. Every pass emits into a fresh
	// stream and stores it here; a stream is never written after the store,
	// so readers may keep one across any number of later passes.
	out    atomic.Pointer[CommandStream]
	cmdCap int // capacity hint for the next pass

	mu       sync.Mutex
	stale    atomic.Bool
	passes   atomic.Uint64
	viewport Size
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	metrics  TextMetrics
	viewport Size
	elems    int
	cmds     int
}

// WithMetrics sets the text metrics used for fit-content sizing.
func WithMetrics(m TextMetrics) EngineOption {
	return func(c *engineConfig) { c.metrics = m }
}

// WithViewport sets the initial viewport size.
func WithViewport(sz Size) EngineOption {
	return func(c *engineConfig) { c.viewport = sz }
}

// WithCapacity pre-sizes the element pool and command streams.
func WithCapacity(elements, commands int) EngineOption {
	return func(c *engineConfig) { c.elems, c.cmds = elements, commands }
}

// NewEngine creates an engine from display and update logic.
func NewEngine[S, E any](display DisplayFunc[S], update UpdateFunc[S, E], opts ...EngineOption) *Engine[S, E] {
	cfg := engineConfig{
		viewport: Size{Width: 80, Height: 24},
		elems:    256,
		cmds:     1024,
	}
	for _, o := range opts {
		o(&cfg)
	}

	pool := NewPool(cfg.elems)
	e := &Engine[S, E]{
		display:  display,
		update:   update,
		pool:     pool,
		builder:  NewBuilder(pool),
		layouter: NewLayouter(pool, cfg.metrics),
		stream:   NewInstrStream(cfg.elems * 4),
		cmdCap:   cfg.cmds,
		viewport: cfg.viewport,
	}
	e.out.Store(NewCommandStream(0))
	e.stale.Store(true)
	return e
}

// SetViewport updates the root constraint. A size change invalidates the
// cache.
func (e *Engine[S, E]) SetViewport(sz Size) {
	e.mu.Lock()
	changed := sz != e.viewport
	e.viewport = sz
	e.mu.Unlock()
	if changed {
		e.stale.Store(true)
	}
}

// Viewport returns the current root constraint.
func (e *Engine[S, E]) Viewport() Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewport
}

// Invalidate marks the cached stream stale without an event. Safe from any
// goroutine.
func (e *Engine[S, E]) Invalidate() {
	e.stale.Store(true)
}

// Dispatch routes one event through update logic and returns the new state.
// The staleness the update reports is accumulated until the next render.
func (e *Engine[S, E]) Dispatch(state S, event E) S {
	next, stale := e.update(state, event)
	if stale {
		e.stale.Store(true)
	}
	return next
}

// Cached returns the last published command stream without rendering. It is
// empty before the first successful pass. Published streams are immutable;
// a reader may hold one across any number of later passes.
func (e *Engine[S, E]) Cached() *CommandStream {
	return e.out.Load()
}

// Passes returns the number of completed generation passes. Unchanged passes
// on a cache hit.
func (e *Engine[S, E]) Passes() uint64 {
	return e.passes.Load()
}

// RenderIfStale runs the full generation+layout pipeline if state changed
// since the last successful run, and returns the resulting command stream.
// With unchanged state it returns the cached stream and recomputes nothing.
//
// On a structural error the pass is abandoned: the previous stream is
// returned alongside the error and the cache is untouched, so the backend
// never sees a malformed frame. The engine stays stale, so the next call
// retries (and re-reports the error while the display logic stays broken).
func (e *Engine[S, E]) RenderIfStale(state S) (*CommandStream, error) {
	if !e.stale.Load() {
		return e.out.Load(), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.stale.Load() {
		// Another pass got here first.
		return e.out.Load(), nil
	}

	// Clear staleness before running display logic: an event dispatched
	// while this pass runs re-marks the cache stale and the superseding
	// state renders on the next call.
	e.stale.Store(false)

	e.stream.Reset()
	e.display(state, NewContext(e.stream))

	roots, err := e.builder.Run(e.stream)
	if err != nil {
		e.stale.Store(true)
		return e.out.Load(), err
	}

	e.layouter.Layout(roots, e.viewport)

	// Emit into a fresh stream: the one published now may still be held by a
	// backend reader and must never be rewritten.
	out := NewCommandStream(e.cmdCap)
	e.layouter.Emit(roots, out)
	if n := out.Len(); n > e.cmdCap {
		e.cmdCap = n
	}
	e.out.Store(out)
	e.passes.Add(1)

	return out, nil
}
