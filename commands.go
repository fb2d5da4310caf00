package ui

// Low-level rendering commands: the ordered stream a backend consumes to
// paint one frame. Commands carry resolved absolute coordinates; ordering is
// paint ordering (later commands paint over earlier ones).
//
// The engine emits each generation pass into a fresh stream and publishes it
// atomically; a published stream is never written again, so backends may hold
// one for as long as they need.

// CommandOp identifies a low-level command.
type CommandOp uint8

const (
	CmdRect     CommandOp = iota // fill Bounds with Style's background
	CmdText                      // draw Text at Bounds origin with Style
	CmdPushClip                  // restrict painting to Bounds until the matching pop
	CmdPopClip
)

// Command is one primitive drawing operation.
type Command struct {
	Op     CommandOp
	Bounds Rect
	Text   string
	Style  Style
}

// CommandStream is a reusable ordered command list.
type CommandStream struct {
	cmds []Command
}

// NewCommandStream creates a stream with pre-allocated capacity.
func NewCommandStream(capacity int) *CommandStream {
	return &CommandStream{cmds: make([]Command, 0, capacity)}
}

// Reset clears the stream for reuse, keeping capacity.
func (s *CommandStream) Reset() {
	s.cmds = s.cmds[:0]
}

// Commands returns the commands in paint order.
func (s *CommandStream) Commands() []Command {
	return s.cmds
}

// Len returns the number of commands.
func (s *CommandStream) Len() int {
	return len(s.cmds)
}

// Rect appends a fill-rect command.
func (s *CommandStream) Rect(bounds Rect, style Style) {
	s.cmds = append(s.cmds, Command{Op: CmdRect, Bounds: bounds, Style: style})
}

// Text appends a draw-text command.
func (s *CommandStream) Text(bounds Rect, text string, style Style) {
	s.cmds = append(s.cmds, Command{Op: CmdText, Bounds: bounds, Text: text, Style: style})
}

// PushClip appends a clip-push command.
func (s *CommandStream) PushClip(bounds Rect) {
	s.cmds = append(s.cmds, Command{Op: CmdPushClip, Bounds: bounds})
}

// PopClip appends a clip-pop command.
func (s *CommandStream) PopClip() {
	s.cmds = append(s.cmds, Command{Op: CmdPopClip})
}
