package ui

// Builder is the stack machine that interprets a high-level instruction
// stream into a populated element pool. It owns the pool and the style stack
// for the duration of one generation pass.
type Builder struct {
	pool   *Pool
	styles StyleStack
	open   []Index // innermost open element last
	roots  []Index
}

// NewBuilder creates a builder over the given pool.
func NewBuilder(pool *Pool) *Builder {
	return &Builder{
		pool: pool,
		open: make([]Index, 0, 32),
	}
}

// Pool returns the builder's element pool.
func (b *Builder) Pool() *Pool {
	return b.pool
}

// Run consumes the instruction stream in emission order and returns the root
// element indices of the new generation.
//
// On a structural error (unbalanced begin/end, property with no open
// element, child opened under a text element) the pass is aborted: the pool generation is left unfinished and
// must not be handed to layout. The caller keeps its previous command stream.
func (b *Builder) Run(stream *InstrStream) ([]Index, error) {
	b.pool.Reset()
	b.styles.Reset()
	b.open = b.open[:0]
	b.roots = b.roots[:0]

	for i, in := range stream.Ops() {
		switch in.Op {
		case OpBegin:
			if len(b.open) > 0 && b.pool.at(b.open[len(b.open)-1]).Kind == ElementText {
				return nil, structural(i, ErrChildOfText)
			}
			idx := b.pool.Alloc()
			el := b.pool.at(idx)
			el.Kind = in.Kind
			el.Axis = in.Axis
			b.styles.PushInherited()
			b.open = append(b.open, idx)

		case OpEnd:
			if len(b.open) == 0 {
				return nil, structural(i, ErrUnbalanced)
			}
			idx := b.open[len(b.open)-1]
			b.open = b.open[:len(b.open)-1]

			el := b.pool.at(idx)
			el.Style = b.styles.Pop()
			if len(b.open) > 0 {
				parent := b.open[len(b.open)-1]
				el.Parent = parent
				pe := b.pool.at(parent)
				pe.Children = append(pe.Children, idx)
			} else {
				el.Parent = NoIndex
				b.roots = append(b.roots, idx)
			}

		case OpText:
			if len(b.open) == 0 {
				return nil, structural(i, ErrNoOpenElement)
			}
			b.pool.at(b.open[len(b.open)-1]).Text = in.Text

		case OpStyle:
			if len(b.open) == 0 {
				return nil, structural(i, ErrNoOpenElement)
			}
			applyStyleProp(b.styles.Current(), in)

		case OpSizing:
			if len(b.open) == 0 {
				return nil, structural(i, ErrNoOpenElement)
			}
			b.pool.at(b.open[len(b.open)-1]).Sizing = in.Sizing
		}
	}

	if len(b.open) != 0 {
		return nil, structural(-1, ErrDanglingOpen)
	}
	// The style stack mirrors the open stack; residue here means the machine
	// itself is broken, not the display logic.
	if b.styles.Depth() != 0 {
		panic("ui: style stack out of sync with open-element stack")
	}

	return b.roots, nil
}

func applyStyleProp(s *Style, in Instr) {
	switch in.Prop {
	case PropFG:
		s.FG = in.Color
	case PropBG:
		s.BG = in.Color
	case PropAttrSet:
		s.Attr = Attribute(in.A)
	case PropAttrAdd:
		s.Attr = s.Attr.With(Attribute(in.A))
	case PropAttrClear:
		s.Attr = s.Attr.Without(Attribute(in.A))
	case PropPadding:
		s.Padding = in.A
	case PropGap:
		s.Gap = in.A
	case PropMainAlign:
		s.MainAlign = Align(in.A)
	case PropCrossAlign:
		s.CrossAlign = Align(in.A)
	case PropMinSize:
		s.MinW, s.MinH = in.A, in.B
	}
}
