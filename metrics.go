package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextMetrics measures text content for fit-content sizing. The engine is
// backend-agnostic; the backend knows how wide its glyphs are.
type TextMetrics interface {
	// Measure returns the width and height of the given text in layout units.
	Measure(text string) (w, h int)
}

// CellMetrics measures text in terminal cells: display width of the widest
// line by lines. This is the metrics used by the terminal backend.
type CellMetrics struct{}

func (CellMetrics) Measure(text string) (w, h int) {
	if text == "" {
		return 0, 0
	}
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
		h++
	}
	return w, h
}
