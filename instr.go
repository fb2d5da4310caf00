package ui

// High-level instructions: the flat stream display logic compiles to.
// Each op is a compact union; exactly which fields are meaningful depends on
// Op. The stream is produced fresh every generation pass and never persisted.

// OpKind identifies a high-level instruction.
type OpKind uint8

const (
	OpBegin  OpKind = iota // open a new element
	OpEnd                  // finalize the innermost open element
	OpText                 // set content on the open element
	OpStyle                // set one style property on the open element
	OpSizing               // set the sizing constraint of the open element
)

// StyleProp identifies the property an OpStyle instruction sets.
type StyleProp uint8

const (
	PropFG StyleProp = iota
	PropBG
	PropAttrSet   // replace the attribute set
	PropAttrAdd   // merge attributes in
	PropAttrClear // remove attributes
	PropPadding
	PropGap
	PropMainAlign
	PropCrossAlign
	PropMinSize
)

// Instr is one high-level instruction.
type Instr struct {
	Op OpKind

	// OpBegin
	Kind ElementKind
	Axis Axis

	// OpStyle
	Prop  StyleProp
	Color Color // PropFG, PropBG
	A, B  int   // PropAttr*/Padding/Gap/Align in A; PropMinSize in A,B

	// OpSizing
	Sizing Sizing

	// OpText
	Text string
}

// InstrStream is a reusable high-level instruction stream.
type InstrStream struct {
	ops []Instr
}

// NewInstrStream creates a stream with pre-allocated capacity.
func NewInstrStream(capacity int) *InstrStream {
	return &InstrStream{ops: make([]Instr, 0, capacity)}
}

// Reset clears the stream for the next generation pass, keeping capacity.
func (s *InstrStream) Reset() {
	s.ops = s.ops[:0]
}

// Ops returns the recorded instructions in emission order.
func (s *InstrStream) Ops() []Instr {
	return s.ops
}

// Len returns the number of recorded instructions.
func (s *InstrStream) Len() int {
	return len(s.ops)
}

func (s *InstrStream) push(in Instr) {
	s.ops = append(s.ops, in)
}
