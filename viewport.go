package ui

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size is a viewport dimension in layout units.
type Size struct {
	Width  int
	Height int
}

// ViewportSize queries the terminal size for hosts that embed the engine
// directly in a terminal. Falls back to 80x24 when stdout is not a terminal.
func ViewportSize() Size {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return Size{Width: 80, Height: 24}
	}
	return Size{Width: w, Height: h}
}

// ResizeWatcher delivers viewport sizes on terminal resize. Hosts running
// under bubbletea get resizes as WindowSizeMsg instead and don't need this.
type ResizeWatcher struct {
	sizes chan Size
	sig   chan os.Signal
	done  chan struct{}
}

// NewResizeWatcher starts watching for terminal resizes.
func NewResizeWatcher() *ResizeWatcher {
	w := &ResizeWatcher{
		sizes: make(chan Size, 1),
		sig:   make(chan os.Signal, 1),
		done:  make(chan struct{}),
	}
	signal.Notify(w.sig, unix.SIGWINCH)
	go w.run()
	return w
}

func (w *ResizeWatcher) run() {
	fd := int(os.Stdout.Fd())
	for {
		select {
		case <-w.done:
			return
		case <-w.sig:
			ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
			if err != nil {
				continue
			}
			sz := Size{Width: int(ws.Col), Height: int(ws.Row)}
			// Coalesce: only the latest size matters.
			select {
			case w.sizes <- sz:
			default:
				select {
				case <-w.sizes:
				default:
				}
				w.sizes <- sz
			}
		}
	}
}

// Sizes returns the channel of resize events.
func (w *ResizeWatcher) Sizes() <-chan Size {
	return w.sizes
}

// Stop stops watching. The sizes channel is not closed.
func (w *ResizeWatcher) Stop() {
	signal.Stop(w.sig)
	close(w.done)
}
