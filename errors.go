package ui

import (
	"errors"
	"fmt"
)

// Structural errors abort a single generation pass. The previous cached
// command stream is retained and the error is surfaced to the host.
var (
	// ErrUnbalanced reports an end instruction with no matching begin.
	ErrUnbalanced = errors.New("unbalanced begin/end")

	// ErrDanglingOpen reports elements still open after the instruction
	// stream was fully consumed.
	ErrDanglingOpen = errors.New("begin with no matching end")

	// ErrNoOpenElement reports a property or content instruction emitted
	// while no element was open.
	ErrNoOpenElement = errors.New("no open element")

	// ErrChildOfText reports a begin instruction while a text element was
	// open. Text elements are leaves; a child opened under one would never
	// be placed or painted.
	ErrChildOfText = errors.New("text element cannot contain children")

	// ErrStaleIndex reports a pool index used outside the generation that
	// created it.
	ErrStaleIndex = errors.New("stale pool index")
)

// StructuralError wraps a structural error with the offset of the offending
// high-level instruction.
type StructuralError struct {
	Op  int // instruction offset in the stream, -1 for end-of-stream checks
	Err error
}

func (e *StructuralError) Error() string {
	if e.Op < 0 {
		return fmt.Sprintf("ui: structural error at end of stream: %v", e.Err)
	}
	return fmt.Sprintf("ui: structural error at instruction %d: %v", e.Op, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

func structural(op int, err error) error {
	return &StructuralError{Op: op, Err: err}
}
