// Command lnr-hud runs the game overlay against a simulated voyage: a sailing
// HUD with heading, speed and supply meters, and a pause menu on top. It
// doubles as a smoke test for the whole pipeline, from display logic down to
// the terminal backend.
//
// Keys: m or esc toggles the menu, j/k or arrows move the cursor, enter
// selects, ctrl+c quits.
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	ui "github.com/wallabra/loot-and-roam"
)

type mode int

const (
	modeSail mode = iota
	modeMenu
)

type game struct {
	Mode    mode
	Tick    int
	Heading float64 // degrees
	Speed   float64 // knots
	Hull    float64 // 0..1
	Crew    float64
	Ammo    float64
	Cursor  int
	Notice  string
}

var menuItems = []string{"Resume", "Drop anchor", "Jettison cargo", "Abandon ship"}

type event int

const (
	evTick event = iota
	evMenuToggle
	evUp
	evDown
	evSelect
)

func update(g game, ev event) (game, bool) {
	switch ev {
	case evTick:
		if g.Mode == modeMenu {
			return g, false // simulation pauses under the menu
		}
		g.Tick++
		t := float64(g.Tick) / 10
		g.Heading = math.Mod(g.Heading+0.4, 360)
		g.Speed = 6 + 2*math.Sin(t/3)
		g.Hull = 0.3 + 0.7*(0.5+0.5*math.Cos(t/20))
		g.Crew = 0.85
		g.Ammo = math.Max(0, 1-t/120)
		return g, true

	case evMenuToggle:
		if g.Mode == modeSail {
			g.Mode = modeMenu
			g.Cursor = 0
		} else {
			g.Mode = modeSail
		}
		return g, true

	case evUp:
		if g.Mode == modeMenu && g.Cursor > 0 {
			g.Cursor--
			return g, true
		}
		return g, false

	case evDown:
		if g.Mode == modeMenu && g.Cursor < len(menuItems)-1 {
			g.Cursor++
			return g, true
		}
		return g, false

	case evSelect:
		if g.Mode != modeMenu {
			return g, false
		}
		g.Notice = menuItems[g.Cursor]
		g.Mode = modeSail
		return g, true
	}
	return g, false
}

func display(g game, ctx *ui.Context) {
	ctx.Col(func() {
		ctx.Fill(1)

		switch g.Mode {
		case modeSail:
			hud(g, ctx)
		case modeMenu:
			menu(g, ctx)
		}
	})
}

func hud(g game, ctx *ui.Context) {
	theme := ui.ThemeHUD

	// Status line across the top.
	ctx.Row(func() {
		ctx.Styled(theme.Panel)
		ctx.FillW(1, 3)
		ctx.Gap(4)
		ctx.Begin(ui.ElementText)
		ctx.Styled(theme.Accent)
		ctx.Text(fmt.Sprintf("HDG %03.0f", g.Heading))
		ctx.End()
		ctx.Label(fmt.Sprintf("%4.1f kn", g.Speed))
		if g.Notice != "" {
			ctx.Begin(ui.ElementText)
			ctx.Styled(theme.Muted)
			ctx.Text(g.Notice)
			ctx.End()
		}
	})

	// Push the meter panel to the bottom.
	ctx.Col(func() {
		ctx.Fill(1)
	})

	ctx.Col(func() {
		ctx.Styled(theme.Panel)
		ctx.FillW(1, 5)
		meter(ctx, "hull", g.Hull, theme)
		meter(ctx, "crew", g.Crew, theme)
		meter(ctx, "ammo", g.Ammo, theme)
	})
}

func meter(ctx *ui.Context, name string, ratio float64, theme ui.Theme) {
	// Two weighted fill boxes split the bar; a zero weight falls back to an
	// even split, so keep both strictly positive.
	filled := float32(math.Max(ratio, 0.001))
	rest := float32(math.Max(1-ratio, 0.001))

	ctx.Row(func() {
		ctx.Gap(1)
		ctx.Begin(ui.ElementText)
		if ratio < 0.25 {
			ctx.Styled(theme.Danger)
		}
		ctx.Text(fmt.Sprintf("%-5s", name))
		ctx.End()
		ctx.Begin(ui.ElementBox)
		ctx.Size(ui.Sizing{WMode: ui.SizeFill, HMode: ui.SizeFixed, FixedH: 1, Weight: filled})
		ctx.BG(ui.MeterColor(ratio))
		ctx.End()
		ctx.Begin(ui.ElementBox)
		ctx.Size(ui.Sizing{WMode: ui.SizeFill, HMode: ui.SizeFixed, FixedH: 1, Weight: rest})
		ctx.End()
	})
}

func menu(g game, ctx *ui.Context) {
	theme := ui.ThemeMenu

	ctx.Col(func() {
		ctx.Fill(1)
		ctx.AlignMain(ui.AlignCenter)
		ctx.AlignCross(ui.AlignCenter)

		ctx.Col(func() {
			ctx.Styled(theme.Panel)
			ctx.Gap(1)
			ctx.Begin(ui.ElementText)
			ctx.Styled(theme.Accent)
			ctx.Bold()
			ctx.Text("Paused")
			ctx.End()
			for i, item := range menuItems {
				ctx.Begin(ui.ElementText)
				if i == g.Cursor {
					ctx.Styled(theme.Accent)
					ctx.Text("> " + item)
				} else {
					ctx.Text("  " + item)
				}
				ctx.End()
			}
		})
	})
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/10, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func mapMsg(msg tea.Msg) (event, bool) {
	switch m := msg.(type) {
	case tickMsg:
		return evTick, true
	case tea.KeyMsg:
		switch m.String() {
		case "m", "esc":
			return evMenuToggle, true
		case "up", "k":
			return evUp, true
		case "down", "j":
			return evDown, true
		case "enter":
			return evSelect, true
		}
	}
	return 0, false
}

// model wraps the engine's tea adapter to drive the simulation clock and log
// render failures without blanking the screen.
type model struct {
	prog   *ui.Program[game, event]
	logger *log.Logger
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.prog.Update(msg)
	if _, ok := msg.(tickMsg); ok {
		return m, tea.Batch(cmd, tick())
	}
	return m, cmd
}

func (m model) View() string {
	view := m.prog.View()
	if err := m.prog.Err(); err != nil {
		m.logger.Error("render pass failed", "err", err)
	}
	return view
}

func main() {
	logFile, err := os.OpenFile("lnr-hud.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open log:", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Prefix:          "lnr-hud",
	})

	engine := ui.NewEngine(display, update, ui.WithViewport(ui.ViewportSize()))
	prog := ui.NewProgram(engine, game{Heading: 270, Speed: 6, Hull: 1, Crew: 0.85, Ammo: 1}, mapMsg)

	logger.Info("starting", "viewport", engine.Viewport())
	if _, err := tea.NewProgram(model{prog: prog, logger: logger}, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger.Info("stopped", "passes", engine.Passes())
}
