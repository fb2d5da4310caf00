package ui

// Attribute represents text styling attributes that can be combined.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrStrikethrough
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// ColorMode represents the color mode for a color value.
type ColorMode uint8

const (
	ColorDefault ColorMode = iota // Backend default
	Color16                       // Basic 16 colors (0-15)
	Color256                      // 256 color palette (0-255)
	ColorRGB                      // 24-bit true color
)

// Color represents a style color.
type Color struct {
	Mode    ColorMode
	R, G, B uint8 // For RGB mode
	Index   uint8 // For 16/256 mode
}

// DefaultColor returns the backend's default color.
func DefaultColor() Color {
	return Color{Mode: ColorDefault}
}

// BasicColor returns one of the 16 basic colors.
func BasicColor(index uint8) Color {
	return Color{Mode: Color16, Index: index}
}

// PaletteColor returns one of the 256 palette colors.
func PaletteColor(index uint8) Color {
	return Color{Mode: Color256, Index: index}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorRGB, R: r, G: g, B: b}
}

// Hex returns a 24-bit true color from a hex value (e.g., 0xFF5500).
func Hex(hex uint32) Color {
	return Color{
		Mode: ColorRGB,
		R:    uint8((hex >> 16) & 0xFF),
		G:    uint8((hex >> 8) & 0xFF),
		B:    uint8(hex & 0xFF),
	}
}

// Standard basic colors for convenience.
var (
	Black   = BasicColor(0)
	Red     = BasicColor(1)
	Green   = BasicColor(2)
	Yellow  = BasicColor(3)
	Blue    = BasicColor(4)
	Magenta = BasicColor(5)
	Cyan    = BasicColor(6)
	White   = BasicColor(7)

	BrightBlack   = BasicColor(8)
	BrightRed     = BasicColor(9)
	BrightGreen   = BasicColor(10)
	BrightYellow  = BasicColor(11)
	BrightBlue    = BasicColor(12)
	BrightMagenta = BasicColor(13)
	BrightCyan    = BasicColor(14)
	BrightWhite   = BasicColor(15)
)

// Equal returns true if two colors are equal.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Align positions content along an axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Style is the set of inheritable visual and layout properties carried by
// every element. Children begin with a clone of their parent's style and may
// override individual properties before they are finalized.
type Style struct {
	FG   Color
	BG   Color
	Attr Attribute

	// Layout hints
	Padding    int   // inset applied on all four sides
	Gap        int   // spacing between children
	MainAlign  Align // child packing along the layout axis
	CrossAlign Align // child placement across the layout axis
	MinW, MinH int   // lower bounds for fit-content resolution
}

// DefaultStyle returns a style with default colors and no attributes.
func DefaultStyle() Style {
	return Style{
		FG: DefaultColor(),
		BG: DefaultColor(),
	}
}

// Foreground returns a new style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a new style with the given background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a new style with bold enabled.
func (s Style) Bold() Style {
	s.Attr = s.Attr.With(AttrBold)
	return s
}

// Dim returns a new style with dim enabled.
func (s Style) Dim() Style {
	s.Attr = s.Attr.With(AttrDim)
	return s
}

// Italic returns a new style with italic enabled.
func (s Style) Italic() Style {
	s.Attr = s.Attr.With(AttrItalic)
	return s
}

// Underline returns a new style with underline enabled.
func (s Style) Underline() Style {
	s.Attr = s.Attr.With(AttrUnderline)
	return s
}

// Inverse returns a new style with inverse enabled.
func (s Style) Inverse() Style {
	s.Attr = s.Attr.With(AttrInverse)
	return s
}

// Equal returns true if two styles are equal.
func (s Style) Equal(other Style) bool {
	return s == other
}

// StyleStack maintains the inheritable style state during tree construction.
// Its depth always mirrors the element nesting depth of the builder: one push
// per begin, one pop per end, same ordering.
type StyleStack struct {
	stack []Style
}

// Reset empties the stack for a new generation pass. The backing slice is
// kept for reuse.
func (s *StyleStack) Reset() {
	s.stack = s.stack[:0]
}

// Depth returns the current stack depth.
func (s *StyleStack) Depth() int {
	return len(s.stack)
}

// PushInherited clones the top-of-stack style (or the default style when the
// stack is empty) and pushes it, returning a pointer to the new top for
// mutation.
func (s *StyleStack) PushInherited() *Style {
	if len(s.stack) == 0 {
		s.stack = append(s.stack, DefaultStyle())
	} else {
		s.stack = append(s.stack, s.stack[len(s.stack)-1])
	}
	return &s.stack[len(s.stack)-1]
}

// Current returns a pointer to the top of the stack for mutation.
// Panics when the stack is empty: property mutation outside an open element
// is a bug in the display logic, not a runtime condition.
func (s *StyleStack) Current() *Style {
	if len(s.stack) == 0 {
		panic("ui: style stack empty: set-property with no open element")
	}
	return &s.stack[len(s.stack)-1]
}

// Pop removes and returns the top style, to be attached to the element being
// finalized. Panics when the stack is empty: a pop without a matching push
// means begin/end calls are mismatched.
func (s *StyleStack) Pop() Style {
	if len(s.stack) == 0 {
		panic("ui: style stack empty: unbalanced begin/end")
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top
}
