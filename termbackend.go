package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TermRenderer is the reference rendering backend: it consumes a command
// stream into a cell buffer and serializes the buffer to a styled string via
// lipgloss. One cell is one layout unit.
type TermRenderer struct {
	buf   *Buffer
	clips []Rect

	// lipgloss style cache keyed by Style; command streams repeat a handful
	// of styles thousands of times per frame.
	styles map[Style]lipgloss.Style
}

// NewTermRenderer creates a renderer with the given grid size.
func NewTermRenderer(width, height int) *TermRenderer {
	return &TermRenderer{
		buf:    NewBuffer(width, height),
		clips:  make([]Rect, 0, 16),
		styles: make(map[Style]lipgloss.Style),
	}
}

// Resize adjusts the grid to a new viewport.
func (r *TermRenderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Buffer exposes the cell grid, mainly for tests.
func (r *TermRenderer) Buffer() *Buffer {
	return r.buf
}

// Draw clears the grid and paints the command stream in order.
func (r *TermRenderer) Draw(stream *CommandStream) {
	r.buf.Clear()
	r.clips = r.clips[:0]

	for _, cmd := range stream.Commands() {
		switch cmd.Op {
		case CmdPushClip:
			clip := cmd.Bounds
			if len(r.clips) > 0 {
				clip = intersect(clip, r.clips[len(r.clips)-1])
			}
			r.clips = append(r.clips, clip)

		case CmdPopClip:
			if len(r.clips) > 0 {
				r.clips = r.clips[:len(r.clips)-1]
			}

		case CmdRect:
			r.fillRect(cmd.Bounds, cmd.Style)

		case CmdText:
			r.drawText(cmd.Bounds, cmd.Text, cmd.Style)
		}
	}
}

func (r *TermRenderer) clip() Rect {
	if len(r.clips) == 0 {
		return Rect{X: 0, Y: 0, W: r.buf.Width(), H: r.buf.Height()}
	}
	return r.clips[len(r.clips)-1]
}

func intersect(a, b Rect) Rect {
	x1, y1 := max(a.X, b.X), max(a.Y, b.Y)
	x2, y2 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

func (r *TermRenderer) fillRect(bounds Rect, style Style) {
	area := intersect(bounds, r.clip())
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			cell := r.buf.Get(x, y)
			cell.Style.BG = style.BG
			if cell.Rune == ' ' {
				cell.Style.FG = style.FG
				cell.Style.Attr = style.Attr
			}
			r.buf.Set(x, y, cell)
		}
	}
}

func (r *TermRenderer) drawText(bounds Rect, text string, style Style) {
	area := intersect(bounds, r.clip())
	y := bounds.Y
	for _, line := range strings.Split(text, "\n") {
		if y >= area.Y+area.H {
			break
		}
		x := bounds.X
		for _, ch := range line {
			w := runewidth.RuneWidth(ch)
			if x >= area.X+area.W {
				break
			}
			if x >= area.X && y >= area.Y {
				r.buf.Set(x, y, Cell{Rune: ch, Style: style})
				// Wide runes occupy a trailing blank cell.
				if w == 2 {
					r.buf.Set(x+1, y, Cell{Rune: 0, Style: style})
				}
			}
			x += w
		}
		y++
	}
}

// String serializes the grid as a styled string, one line per row. Cells
// with equal styles render as one lipgloss run.
func (r *TermRenderer) String() string {
	var sb strings.Builder
	var run strings.Builder

	for y := 0; y < r.buf.Height(); y++ {
		runStyle := DefaultStyle()
		run.Reset()
		for x := 0; x < r.buf.Width(); x++ {
			cell := r.buf.Get(x, y)
			if cell.Rune == 0 {
				continue // trailing half of a wide rune
			}
			if !cell.Style.Equal(runStyle) && run.Len() > 0 {
				sb.WriteString(r.render(runStyle, run.String()))
				run.Reset()
			}
			runStyle = cell.Style
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(r.render(runStyle, run.String()))
		}
		if y < r.buf.Height()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (r *TermRenderer) render(style Style, text string) string {
	if style.Equal(DefaultStyle()) {
		return text
	}
	ls, ok := r.styles[style]
	if !ok {
		ls = lipStyle(style)
		r.styles[style] = ls
	}
	return ls.Render(text)
}

func lipStyle(s Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if c, ok := lipColor(s.FG); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipColor(s.BG); ok {
		ls = ls.Background(c)
	}
	if s.Attr.Has(AttrBold) {
		ls = ls.Bold(true)
	}
	if s.Attr.Has(AttrDim) {
		ls = ls.Faint(true)
	}
	if s.Attr.Has(AttrItalic) {
		ls = ls.Italic(true)
	}
	if s.Attr.Has(AttrUnderline) {
		ls = ls.Underline(true)
	}
	if s.Attr.Has(AttrBlink) {
		ls = ls.Blink(true)
	}
	if s.Attr.Has(AttrInverse) {
		ls = ls.Reverse(true)
	}
	if s.Attr.Has(AttrStrikethrough) {
		ls = ls.Strikethrough(true)
	}
	return ls
}

func lipColor(c Color) (lipgloss.Color, bool) {
	switch c.Mode {
	case Color16, Color256:
		return lipgloss.Color(strconv.Itoa(int(c.Index))), true
	case ColorRGB:
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	default:
		return "", false
	}
}
