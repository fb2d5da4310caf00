package ui

// Context is the element-building API handed to display logic. Every call
// appends one high-level instruction; nothing is interpreted until the
// Builder consumes the stream. This flattens arbitrarily nested display
// closures into a serial, inspectable stream instead of relying on the call
// stack.
//
// Calls are not validated here: an end with no begin, or a property with no
// open element, is recorded as-is and rejected by the Builder, which aborts
// that generation pass.
type Context struct {
	stream *InstrStream
}

// NewContext wraps an instruction stream. The Engine constructs contexts
// itself; direct construction is for tests and custom pipelines.
func NewContext(stream *InstrStream) *Context {
	return &Context{stream: stream}
}

// Begin opens a new element of the given kind. Boxes lay their children out
// vertically by default; see BeginAxis.
func (c *Context) Begin(kind ElementKind) {
	c.stream.push(Instr{Op: OpBegin, Kind: kind, Axis: Vertical})
}

// BeginAxis opens a new box-like element with an explicit layout axis.
func (c *Context) BeginAxis(kind ElementKind, axis Axis) {
	c.stream.push(Instr{Op: OpBegin, Kind: kind, Axis: axis})
}

// End finalizes the innermost open element.
func (c *Context) End() {
	c.stream.push(Instr{Op: OpEnd})
}

// Text sets the content of the open element.
func (c *Context) Text(text string) {
	c.stream.push(Instr{Op: OpText, Text: text})
}

// Col describes a vertical box; fn describes its children.
func (c *Context) Col(fn func()) {
	c.BeginAxis(ElementBox, Vertical)
	if fn != nil {
		fn()
	}
	c.End()
}

// Row describes a horizontal box; fn describes its children.
func (c *Context) Row(fn func()) {
	c.BeginAxis(ElementBox, Horizontal)
	if fn != nil {
		fn()
	}
	c.End()
}

// Label describes a self-contained text element.
func (c *Context) Label(text string) {
	c.Begin(ElementText)
	c.Text(text)
	c.End()
}

// Styled applies a whole style to the open element, property by property.
// Useful with themes.
func (c *Context) Styled(s Style) {
	c.FG(s.FG)
	c.BG(s.BG)
	c.Attr(s.Attr)
	if s.Padding != 0 {
		c.Pad(s.Padding)
	}
	if s.Gap != 0 {
		c.Gap(s.Gap)
	}
	c.AlignMain(s.MainAlign)
	c.AlignCross(s.CrossAlign)
	if s.MinW != 0 || s.MinH != 0 {
		c.Min(s.MinW, s.MinH)
	}
}

// FG sets the foreground color of the open element.
func (c *Context) FG(col Color) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropFG, Color: col})
}

// BG sets the background color of the open element.
func (c *Context) BG(col Color) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropBG, Color: col})
}

// Attr replaces the attribute set of the open element, including anything
// inherited. Use AttrAdd or AttrClear to adjust individual attributes.
func (c *Context) Attr(a Attribute) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropAttrSet, A: int(a)})
}

// AttrAdd merges attributes into the open element's set.
func (c *Context) AttrAdd(a Attribute) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropAttrAdd, A: int(a)})
}

// AttrClear removes attributes from the open element's set, inherited ones
// included.
func (c *Context) AttrClear(a Attribute) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropAttrClear, A: int(a)})
}

// Bold adds the bold attribute to the open element.
func (c *Context) Bold() {
	c.stream.push(Instr{Op: OpStyle, Prop: PropAttrAdd, A: int(AttrBold)})
}

// Pad sets the padding of the open element.
func (c *Context) Pad(n int) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropPadding, A: n})
}

// Gap sets the spacing between the open element's children.
func (c *Context) Gap(n int) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropGap, A: n})
}

// AlignMain sets child packing along the open element's layout axis.
func (c *Context) AlignMain(a Align) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropMainAlign, A: int(a)})
}

// AlignCross sets child placement across the open element's layout axis.
func (c *Context) AlignCross(a Align) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropCrossAlign, A: int(a)})
}

// Min sets the minimum fit-content size of the open element.
func (c *Context) Min(w, h int) {
	c.stream.push(Instr{Op: OpStyle, Prop: PropMinSize, A: w, B: h})
}

// Fixed gives the open element a fixed size on both axes. Fixed elements are
// never shrunk by the layout engine.
func (c *Context) Fixed(w, h int) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		WMode: SizeFixed, HMode: SizeFixed, FixedW: w, FixedH: h,
	}})
}

// FixedW fixes only the width; the height stays fit-content.
func (c *Context) FixedW(w int) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		WMode: SizeFixed, FixedW: w,
	}})
}

// FixedH fixes only the height; the width stays fit-content.
func (c *Context) FixedH(h int) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		HMode: SizeFixed, FixedH: h,
	}})
}

// Fill makes the open element take a weighted share of remaining space on
// both axes. A root fill element receives the viewport.
func (c *Context) Fill(weight float32) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		WMode: SizeFill, HMode: SizeFill, Weight: weight,
	}})
}

// FillW fills the width, fixes the height.
func (c *Context) FillW(weight float32, h int) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		WMode: SizeFill, HMode: SizeFixed, FixedH: h, Weight: weight,
	}})
}

// FillH fills the height, fixes the width.
func (c *Context) FillH(weight float32, w int) {
	c.stream.push(Instr{Op: OpSizing, Sizing: Sizing{
		WMode: SizeFixed, HMode: SizeFill, FixedW: w, Weight: weight,
	}})
}

// Size sets an arbitrary sizing constraint on the open element.
func (c *Context) Size(s Sizing) {
	c.stream.push(Instr{Op: OpSizing, Sizing: s})
}
