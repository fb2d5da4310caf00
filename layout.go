package ui

// Multi-pass constraint layout over the element pool.
//
// Pass 1 (bottom-up): resolve fit-content sizes from children and content.
// Pass 2 (top-down): distribute available space per sizing mode and assign
// absolute bounds.
// Pass 3 (pre-order): emit the low-level command stream; emission order is
// paint order.
//
// Over-constraint policy: when children ask for more main-axis space than the
// parent has, only the flexible (fit and fill) children are shrunk,
// proportionally to their size. Fixed children are never shrunk; if fixed
// sizes alone overflow, the overflow stands and the clip region crops it
// visually.

// Layouter resolves bounds for one pool generation and emits commands.
type Layouter struct {
	pool    *Pool
	metrics TextMetrics
}

// NewLayouter creates a layouter over the given pool. A nil metrics falls
// back to CellMetrics.
func NewLayouter(pool *Pool, metrics TextMetrics) *Layouter {
	if metrics == nil {
		metrics = CellMetrics{}
	}
	return &Layouter{pool: pool, metrics: metrics}
}

// Layout assigns bounds to every element reachable from roots. Roots are
// placed at the origin; a fill-parent root receives the viewport size.
// The pool must come out of a successful Builder.Run; layout has no failure
// mode of its own under that precondition.
func (l *Layouter) Layout(roots []Index, viewport Size) {
	for _, r := range roots {
		l.measureFit(r)
	}
	for _, r := range roots {
		el := l.pool.at(r)
		var rect Rect
		switch el.Sizing.WMode {
		case SizeFixed:
			rect.W = el.Sizing.FixedW
		case SizeFill:
			rect.W = viewport.Width
		default:
			rect.W = el.fitW
		}
		switch el.Sizing.HMode {
		case SizeFixed:
			rect.H = el.Sizing.FixedH
		case SizeFill:
			rect.H = viewport.Height
		default:
			rect.H = el.fitH
		}
		l.place(r, rect)
	}
}

// measureFit computes fit-content sizes, children before parents.
func (l *Layouter) measureFit(idx Index) {
	el := l.pool.at(idx)
	for _, c := range el.Children {
		l.measureFit(c)
	}

	pad2 := el.Style.Padding * 2
	switch el.Kind {
	case ElementText:
		w, h := l.metrics.Measure(el.Text)
		el.fitW, el.fitH = w+pad2, h+pad2

	case ElementBox:
		var main, cross int
		for i, ci := range el.Children {
			cw, ch := baseSize(l.pool.at(ci))
			cm, cc := cw, ch
			if el.Axis == Vertical {
				cm, cc = ch, cw
			}
			main += cm
			if i > 0 {
				main += el.Style.Gap
			}
			if cc > cross {
				cross = cc
			}
		}
		if el.Axis == Horizontal {
			el.fitW, el.fitH = main+pad2, cross+pad2
		} else {
			el.fitW, el.fitH = cross+pad2, main+pad2
		}
	}

	// A fit-content element with nothing inside resolves to the style
	// minimum (zero when unspecified).
	if el.fitW < el.Style.MinW {
		el.fitW = el.Style.MinW
	}
	if el.fitH < el.Style.MinH {
		el.fitH = el.Style.MinH
	}
}

// baseSize is what an element contributes to its parent before space
// distribution: fixed size, fit size, or the style minimum for fill axes.
func baseSize(el *Element) (w, h int) {
	switch el.Sizing.WMode {
	case SizeFixed:
		w = el.Sizing.FixedW
	case SizeFill:
		w = el.Style.MinW
	default:
		w = el.fitW
	}
	switch el.Sizing.HMode {
	case SizeFixed:
		h = el.Sizing.FixedH
	case SizeFill:
		h = el.Style.MinH
	default:
		h = el.fitH
	}
	return w, h
}

// place assigns rect to idx and distributes the inner space to children.
func (l *Layouter) place(idx Index, rect Rect) {
	el := l.pool.at(idx)
	el.Bounds = rect

	if el.Kind != ElementBox || len(el.Children) == 0 {
		return
	}

	inner := rect.Inset(el.Style.Padding)
	horizontal := el.Axis == Horizontal
	gap := el.Style.Gap
	n := len(el.Children)

	innerMain, innerCross := inner.W, inner.H
	if !horizontal {
		innerMain, innerCross = inner.H, inner.W
	}

	// Base main sizes, stored straight into the children's bounds.
	sumBase := 0
	flexBase := 0 // total shrinkable size
	var totalWeight float32
	for _, ci := range el.Children {
		c := l.pool.at(ci)
		w, h := baseSize(c)
		c.Bounds.W, c.Bounds.H = w, h
		main, mode := w, c.Sizing.WMode
		if !horizontal {
			main, mode = h, c.Sizing.HMode
		}
		sumBase += main
		switch mode {
		case SizeFill:
			totalWeight += c.Sizing.weight()
			flexBase += main
		case SizeFit:
			flexBase += main
		}
	}

	free := innerMain - sumBase - gap*(n-1)
	switch {
	case free > 0 && totalWeight > 0:
		// Grow fill children by weight. Integer remainder goes to the last
		// fill child so the space is consumed exactly.
		granted := 0
		lastFill := -1
		for i, ci := range el.Children {
			c := l.pool.at(ci)
			if mainMode(c, horizontal) == SizeFill {
				lastFill = i
			}
		}
		for i, ci := range el.Children {
			c := l.pool.at(ci)
			if mainMode(c, horizontal) != SizeFill {
				continue
			}
			extra := int(float32(free) * (c.Sizing.weight() / totalWeight))
			if i == lastFill {
				extra = free - granted
			}
			granted += extra
			addMain(c, horizontal, extra)
		}

	case free < 0 && flexBase > 0:
		// Shrink flexible children proportionally to their size. Fixed
		// children keep their size even when that overflows.
		deficit := -free
		if deficit > flexBase {
			deficit = flexBase
		}
		taken := 0
		lastFlex := -1
		for i, ci := range el.Children {
			if mainMode(l.pool.at(ci), horizontal) != SizeFixed {
				lastFlex = i
			}
		}
		for i, ci := range el.Children {
			c := l.pool.at(ci)
			if mainMode(c, horizontal) == SizeFixed {
				continue
			}
			cut := deficit * mainOf(c, horizontal) / flexBase
			if i == lastFlex {
				cut = deficit - taken
			}
			if m := mainOf(c, horizontal); cut > m {
				cut = m
			}
			taken += cut
			addMain(c, horizontal, -cut)
		}
	}

	// Cross sizes: fill spans the inner area; fit is clamped to it; fixed
	// may overflow.
	for _, ci := range el.Children {
		c := l.pool.at(ci)
		switch crossMode(c, horizontal) {
		case SizeFill:
			setCross(c, horizontal, innerCross)
		case SizeFit:
			if crossOf(c, horizontal) > innerCross {
				setCross(c, horizontal, innerCross)
			}
		}
	}

	// Main-axis packing offset for leftover space no fill child claimed.
	used := gap * (n - 1)
	for _, ci := range el.Children {
		used += mainOf(l.pool.at(ci), horizontal)
	}
	cursor := 0
	if leftover := innerMain - used; leftover > 0 {
		switch el.Style.MainAlign {
		case AlignCenter:
			cursor = leftover / 2
		case AlignEnd:
			cursor = leftover
		}
	}

	for _, ci := range el.Children {
		c := l.pool.at(ci)
		crossOff := 0
		if space := innerCross - crossOf(c, horizontal); space > 0 {
			switch el.Style.CrossAlign {
			case AlignCenter:
				crossOff = space / 2
			case AlignEnd:
				crossOff = space
			}
		}

		var r Rect
		if horizontal {
			r = Rect{X: inner.X + cursor, Y: inner.Y + crossOff, W: c.Bounds.W, H: c.Bounds.H}
		} else {
			r = Rect{X: inner.X + crossOff, Y: inner.Y + cursor, W: c.Bounds.W, H: c.Bounds.H}
		}
		cursor += mainOf(c, horizontal) + gap

		l.place(ci, r)
	}
}

func mainMode(el *Element, horizontal bool) SizeMode {
	if horizontal {
		return el.Sizing.WMode
	}
	return el.Sizing.HMode
}

func crossMode(el *Element, horizontal bool) SizeMode {
	if horizontal {
		return el.Sizing.HMode
	}
	return el.Sizing.WMode
}

func mainOf(el *Element, horizontal bool) int {
	if horizontal {
		return el.Bounds.W
	}
	return el.Bounds.H
}

func crossOf(el *Element, horizontal bool) int {
	if horizontal {
		return el.Bounds.H
	}
	return el.Bounds.W
}

func addMain(el *Element, horizontal bool, delta int) {
	if horizontal {
		el.Bounds.W += delta
	} else {
		el.Bounds.H += delta
	}
}

func setCross(el *Element, horizontal bool, v int) {
	if horizontal {
		el.Bounds.H = v
	} else {
		el.Bounds.W = v
	}
}

// Emit walks the laid-out pool in paint order and appends one or more
// commands per element: background rect, own content, and a clip region
// around children. Children paint after their parent.
func (l *Layouter) Emit(roots []Index, out *CommandStream) {
	for _, r := range roots {
		l.emit(r, out)
	}
}

func (l *Layouter) emit(idx Index, out *CommandStream) {
	el := l.pool.at(idx)

	if el.Style.BG.Mode != ColorDefault {
		out.Rect(el.Bounds, el.Style)
	}

	switch el.Kind {
	case ElementText:
		if el.Text != "" {
			out.Text(el.Bounds.Inset(el.Style.Padding), el.Text, el.Style)
		}

	case ElementBox:
		out.PushClip(el.Bounds)
		for _, c := range el.Children {
			l.emit(c, out)
		}
		out.PopClip()
	}
}
