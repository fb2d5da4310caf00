package ui

// Cell is a single character cell in a terminal-backend grid.
type Cell struct {
	Rune  rune
	Style Style
}

// EmptyCell returns a cell with a space and default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Style: DefaultStyle()}
}

// Buffer is a 2D cell grid the terminal backend realizes command streams
// into. Out-of-range access is ignored or returns an empty cell, so painters
// never need their own bounds checks beyond clipping.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height.
func (b *Buffer) Height() int {
	return b.height
}

// Clear fills the buffer with empty cells.
func (b *Buffer) Clear() {
	empty := EmptyCell()
	for i := range b.cells {
		b.cells[i] = empty
	}
}

// Resize reallocates the buffer to new dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	if width == b.width && height == b.height {
		b.Clear()
		return
	}
	b.width, b.height = width, height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Get returns the cell at (x, y), or an empty cell out of range.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return EmptyCell()
	}
	return b.cells[y*b.width+x]
}

// Set writes the cell at (x, y). Out-of-range writes are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}
