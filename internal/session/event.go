// Package session models the input state of a typing test.
package session

// Event is one occurrence fed to the state machine: a keystroke, a terminal
// change, or a frame with no input at all.
type Event interface {
	isEvent()
}

// CharEvent is a printable character keystroke.
type CharEvent struct {
	Rune rune
}

// BackspaceEvent erases the rune before the cursor.
type BackspaceEvent struct{}

// AdvanceEvent is the word separator keystroke.
type AdvanceEvent struct{}

// ResizeEvent reports a terminal geometry change; layout is re-derived on the
// next frame, the typing state is untouched.
type ResizeEvent struct{}

// TickEvent is a frame that saw no input before the poll timeout.
type TickEvent struct{}

func (CharEvent) isEvent()      {}
func (BackspaceEvent) isEvent() {}
func (AdvanceEvent) isEvent()   {}
func (ResizeEvent) isEvent()    {}
func (TickEvent) isEvent()      {}
