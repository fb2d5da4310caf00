package ui

import "fmt"

// Element pool: slot-indexed storage for every UI element of one generation
// pass. Elements reference each other purely by Index, never by pointer, so
// the whole pool owns all elements and there is nothing to free per element.
// The pool is reset in bulk at the start of the next pass; slots and their
// children slices are reused.

// ElementKind identifies what an element draws.
type ElementKind uint8

const (
	ElementBox  ElementKind = iota // container, lays out children
	ElementText                    // text leaf
)

// Axis is the layout direction of a box's children.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// SizeMode is how one axis of an element is resolved during layout.
type SizeMode uint8

const (
	SizeFit   SizeMode = iota // size to content (default)
	SizeFixed                 // explicit size, never shrunk
	SizeFill                  // proportional share of remaining space
)

// Sizing holds the per-axis constraint of an element.
type Sizing struct {
	WMode, HMode   SizeMode
	FixedW, FixedH int
	Weight         float32 // share for fill axes; zero means 1
}

func (s Sizing) weight() float32 {
	if s.Weight <= 0 {
		return 1
	}
	return s.Weight
}

// Rect is an absolute rectangular bound, assigned during layout.
type Rect struct {
	X, Y, W, H int
}

// Inset returns the rect shrunk by n on all four sides, floored at zero size.
func (r Rect) Inset(n int) Rect {
	r.X += n
	r.Y += n
	r.W -= 2 * n
	r.H -= 2 * n
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// Index addresses an element within the pool generation that created it.
// The generation tag makes cross-generation use detectable.
type Index struct {
	Slot int32
	Gen  uint32
}

// NoIndex is the null index (no parent).
var NoIndex = Index{Slot: -1}

// Valid reports whether the index addresses an element at all.
func (i Index) Valid() bool {
	return i.Slot >= 0
}

// Element is a single UI node produced during one generation pass.
type Element struct {
	Kind   ElementKind
	Axis   Axis
	Parent Index
	// Children is ordered: it determines layout order and paint order.
	Children []Index

	Style  Style
	Sizing Sizing
	Text   string

	// Bounds is set only after layout.
	Bounds Rect

	// Fit-content sizes from the bottom-up measure pass.
	fitW, fitH int
}

// Pool is the generation-scoped element store.
type Pool struct {
	elems []Element
	used  int
	gen   uint32
}

// NewPool creates a pool with pre-allocated slot capacity.
func NewPool(capacity int) *Pool {
	return &Pool{elems: make([]Element, 0, capacity)}
}

// Reset begins a new generation. All outstanding indices become stale; slots
// are reused, not freed.
func (p *Pool) Reset() {
	p.gen++
	p.used = 0
}

// Gen returns the current generation number.
func (p *Pool) Gen() uint32 {
	return p.gen
}

// Len returns the number of elements allocated this generation.
func (p *Pool) Len() int {
	return p.used
}

// Alloc returns a fresh index for a new element. The slot is cleared but its
// children slice capacity is retained.
func (p *Pool) Alloc() Index {
	if p.used == len(p.elems) {
		p.elems = append(p.elems, Element{})
	}
	el := &p.elems[p.used]
	children := el.Children[:0]
	*el = Element{Parent: NoIndex, Children: children}
	idx := Index{Slot: int32(p.used), Gen: p.gen}
	p.used++
	return idx
}

// Get returns the element at idx, or an error when the index is out of range
// or belongs to a prior generation. A stale index is a bug in the caller, not
// a recoverable condition; the error exists so the pass can abort loudly
// instead of returning corrupted bounds.
func (p *Pool) Get(idx Index) (*Element, error) {
	if idx.Gen != p.gen {
		return nil, fmt.Errorf("ui: index %d from generation %d used in generation %d: %w",
			idx.Slot, idx.Gen, p.gen, ErrStaleIndex)
	}
	if idx.Slot < 0 || int(idx.Slot) >= p.used {
		return nil, fmt.Errorf("ui: index %d out of range (pool has %d): %w",
			idx.Slot, p.used, ErrStaleIndex)
	}
	return &p.elems[idx.Slot], nil
}

// at is the unchecked accessor for indices the pipeline created itself during
// the current generation.
func (p *Pool) at(idx Index) *Element {
	return &p.elems[idx.Slot]
}
