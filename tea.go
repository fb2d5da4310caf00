package ui

import tea "github.com/charmbracelet/bubbletea"

// Program adapts the engine to a bubbletea host loop. bubbletea owns the
// frame loop, input, and terminal; the engine owns generation, layout and
// the command stream cache; the TermRenderer realizes the stream for View.
//
// MapMsg translates host messages into UI events. Messages it rejects are
// ignored, except window sizing and quit keys which the adapter handles
// itself.
type Program[S, E any] struct {
	engine   *Engine[S, E]
	state    S
	mapMsg   func(tea.Msg) (E, bool)
	renderer *TermRenderer

	// last structural error, surfaced via Err.
	err error
}

// NewProgram wraps an engine in a tea.Model.
func NewProgram[S, E any](engine *Engine[S, E], initial S, mapMsg func(tea.Msg) (E, bool)) *Program[S, E] {
	vp := engine.Viewport()
	return &Program[S, E]{
		engine:   engine,
		state:    initial,
		mapMsg:   mapMsg,
		renderer: NewTermRenderer(vp.Width, vp.Height),
	}
}

// State returns the current application state.
func (p *Program[S, E]) State() S {
	return p.state
}

// Err returns the structural error from the most recent render attempt, if
// any. Stale frames keep showing the last good stream while this is set.
func (p *Program[S, E]) Err() error {
	return p.err
}

// Init implements tea.Model.
func (p *Program[S, E]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p *Program[S, E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		p.engine.SetViewport(Size{Width: m.Width, Height: m.Height})
		p.renderer.Resize(m.Width, m.Height)
		return p, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return p, tea.Quit
		}
	}

	if ev, ok := p.mapMsg(msg); ok {
		p.state = p.engine.Dispatch(p.state, ev)
	}
	return p, nil
}

// View implements tea.Model.
func (p *Program[S, E]) View() string {
	stream, err := p.engine.RenderIfStale(p.state)
	p.err = err
	p.renderer.Draw(stream)
	return p.renderer.String()
}
