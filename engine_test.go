package ui

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type hudState struct {
	Status string
	Broken bool
}

func hudDisplay(s hudState, ctx *Context) {
	if s.Broken {
		ctx.End()
		return
	}
	ctx.Col(func() {
		ctx.Fill(1)
		ctx.BG(RGB(12, 24, 48))
		ctx.Label(s.Status)
	})
}

func hudUpdate(s hudState, ev string) (hudState, bool) {
	switch ev {
	case "noop":
		return s, false
	case "break":
		s.Broken = true
		return s, true
	default:
		s.Status = ev
		return s, true
	}
}

func newHUDEngine() *Engine[hudState, string] {
	return NewEngine(hudDisplay, hudUpdate, WithViewport(Size{Width: 40, Height: 10}))
}

func findText(s *CommandStream, text string) bool {
	for _, c := range s.Commands() {
		if c.Op == CmdText && c.Text == text {
			return true
		}
	}
	return false
}

func TestEngineCachedEmptyBeforeFirstPass(t *testing.T) {
	e := newHUDEngine()
	if got := e.Cached().Len(); got != 0 {
		t.Errorf("cached stream has %d commands before any pass", got)
	}
	if e.Passes() != 0 {
		t.Errorf("passes = %d before any render", e.Passes())
	}
}

func TestEngineRenderAndCacheHit(t *testing.T) {
	e := newHUDEngine()
	state := hudState{Status: "all hands"}

	first, err := e.RenderIfStale(state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !findText(first, "all hands") {
		t.Errorf("rendered stream missing label text")
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d after first render, want 1", e.Passes())
	}

	snapshot := append([]Command(nil), first.Commands()...)

	second, err := e.RenderIfStale(state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if second != first {
		t.Errorf("cache hit returned a different stream")
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d after cache hit, want 1", e.Passes())
	}
	if diff := cmp.Diff(snapshot, second.Commands()); diff != "" {
		t.Errorf("cached commands changed (-want +got):\n%s", diff)
	}
}

func TestEngineNoopDispatchSkipsRegeneration(t *testing.T) {
	e := newHUDEngine()
	state := hudState{Status: "steady"}

	if _, err := e.RenderIfStale(state); err != nil {
		t.Fatalf("render: %v", err)
	}

	state = e.Dispatch(state, "noop")
	if _, err := e.RenderIfStale(state); err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d after no-op dispatch, want 1", e.Passes())
	}
}

func TestEngineDispatchTriggersRegeneration(t *testing.T) {
	e := newHUDEngine()
	state := hudState{Status: "steady"}

	if _, err := e.RenderIfStale(state); err != nil {
		t.Fatalf("render: %v", err)
	}

	state = e.Dispatch(state, "fuel low")
	out, err := e.RenderIfStale(state)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 2 {
		t.Errorf("passes = %d after dispatch, want 2", e.Passes())
	}
	if !findText(out, "fuel low") {
		t.Errorf("regenerated stream missing new label text")
	}
	if findText(out, "steady") {
		t.Errorf("regenerated stream still holds old label text")
	}
}

func TestEngineErrorOnFirstPass(t *testing.T) {
	e := newHUDEngine()
	out, err := e.RenderIfStale(hudState{Broken: true})
	if !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("err = %v, want ErrUnbalanced", err)
	}
	if out.Len() != 0 {
		t.Errorf("failed first pass published %d commands", out.Len())
	}
	if e.Passes() != 0 {
		t.Errorf("passes = %d after failed pass, want 0", e.Passes())
	}
}

func TestEngineErrorKeepsPriorCache(t *testing.T) {
	e := newHUDEngine()
	good, err := e.RenderIfStale(hudState{Status: "stable"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	snapshot := append([]Command(nil), good.Commands()...)

	state := e.Dispatch(hudState{Status: "stable"}, "break")
	out, err := e.RenderIfStale(state)
	if err == nil {
		t.Fatal("expected structural error")
	}
	if out != good {
		t.Errorf("failed pass swapped the published stream")
	}
	if diff := cmp.Diff(snapshot, e.Cached().Commands()); diff != "" {
		t.Errorf("failed pass mutated the cache (-want +got):\n%s", diff)
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d, want 1", e.Passes())
	}
}

func TestEnginePaintOrder(t *testing.T) {
	e := newHUDEngine()
	out, err := e.RenderIfStale(hudState{Status: "deck"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	// Parent background and clip precede child content; the pop closes the
	// frame. Later commands paint over earlier ones.
	ops := make([]CommandOp, 0, out.Len())
	for _, c := range out.Commands() {
		ops = append(ops, c.Op)
	}
	want := []CommandOp{CmdRect, CmdPushClip, CmdText, CmdPopClip}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("paint order (-want +got):\n%s", diff)
	}
}

func TestEngineViewportChangeInvalidates(t *testing.T) {
	e := newHUDEngine()
	if _, err := e.RenderIfStale(hudState{Status: "ok"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	// Same size: still a cache hit.
	e.SetViewport(Size{Width: 40, Height: 10})
	if _, err := e.RenderIfStale(hudState{Status: "ok"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d after same-size SetViewport, want 1", e.Passes())
	}

	e.SetViewport(Size{Width: 100, Height: 30})
	out, err := e.RenderIfStale(hudState{Status: "ok"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 2 {
		t.Errorf("passes = %d after resize, want 2", e.Passes())
	}
	if got := out.Commands()[0].Bounds; got.W != 100 || got.H != 30 {
		t.Errorf("root bounds after resize = %+v, want 100x30", got)
	}
}

func TestEngineInvalidateForcesPass(t *testing.T) {
	e := newHUDEngine()
	if _, err := e.RenderIfStale(hudState{Status: "ok"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	e.Invalidate()
	if _, err := e.RenderIfStale(hudState{Status: "ok"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 2 {
		t.Errorf("passes = %d after Invalidate, want 2", e.Passes())
	}
}

func TestEnginePoolGenerationAdvancesPerPass(t *testing.T) {
	e := newHUDEngine()
	if _, err := e.RenderIfStale(hudState{Status: "a"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	gen := e.pool.Gen()
	_ = e.Dispatch(hudState{Status: "a"}, "b")
	if _, err := e.RenderIfStale(hudState{Status: "b"}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.pool.Gen() == gen {
		t.Errorf("pool generation did not advance across passes")
	}
}

func TestWatchInvalidate(t *testing.T) {
	e := newHUDEngine()
	obs := NewObservable(hudState{Status: "ok"})
	WatchInvalidate(e, obs)

	if _, err := e.RenderIfStale(obs.Get()); err != nil {
		t.Fatalf("render: %v", err)
	}
	obs.Set(hudState{Status: "hull breach"})
	out, err := e.RenderIfStale(obs.Get())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if e.Passes() != 2 {
		t.Errorf("passes = %d after observable change, want 2", e.Passes())
	}
	if !findText(out, "hull breach") {
		t.Errorf("stream missing updated text")
	}
}

func TestEnginePublishedStreamImmutable(t *testing.T) {
	e := newHUDEngine()
	first, err := e.RenderIfStale(hudState{Status: "frame one"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	snapshot := append([]Command(nil), first.Commands()...)

	// A reader may hold a published stream across any number of later
	// passes; none of them may write into it.
	state := hudState{}
	for i := 0; i < 5; i++ {
		state = e.Dispatch(state, fmt.Sprintf("frame %d", i+2))
		if _, err := e.RenderIfStale(state); err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
	}

	if diff := cmp.Diff(snapshot, first.Commands()); diff != "" {
		t.Errorf("held stream rewritten by later passes (-want +got):\n%s", diff)
	}
}

func TestEngineConcurrentDispatchRenderRead(t *testing.T) {
	e := newHUDEngine()
	if _, err := e.RenderIfStale(hudState{Status: "start"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup

	// Backend readers walking whatever stream is currently published.
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				s := e.Cached()
				n := 0
				for _, c := range s.Commands() {
					if c.Op == CmdText {
						n++
					}
				}
				if s.Len() > 0 && n == 0 {
					t.Error("published stream has no text command")
					return
				}
			}
		}()
	}

	state := hudState{}
	for i := 0; i < 200; i++ {
		state = e.Dispatch(state, fmt.Sprintf("tick %d", i))
		if _, err := e.RenderIfStale(state); err != nil {
			t.Errorf("render %d: %v", i, err)
			break
		}
	}
	close(done)
	wg.Wait()
}

func TestEngineErrorStaysStale(t *testing.T) {
	e := newHUDEngine()
	if _, err := e.RenderIfStale(hudState{Broken: true}); !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("first attempt = %v, want ErrUnbalanced", err)
	}

	// Broken display logic keeps reporting until the state renders cleanly.
	if _, err := e.RenderIfStale(hudState{Broken: true}); !errors.Is(err, ErrUnbalanced) {
		t.Errorf("second attempt = %v, want ErrUnbalanced again", err)
	}

	out, err := e.RenderIfStale(hudState{Status: "recovered"})
	if err != nil {
		t.Fatalf("recovery render: %v", err)
	}
	if !findText(out, "recovered") {
		t.Errorf("recovered stream missing label text")
	}
	if e.Passes() != 1 {
		t.Errorf("passes = %d, want 1", e.Passes())
	}
}
