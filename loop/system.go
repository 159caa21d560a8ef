// Package loop drives a fixed set of systems once per frame.
//
// A frame is a single cooperative step: every registered System runs in
// registration order with the elapsed time since the previous frame, then any
// work deferred through the frame's Commands is flushed. Nothing in a frame
// runs concurrently with anything else in the same Scheduler.
package loop

// System represents a behavior that runs once per frame.
// Systems may keep their own state in fields; it persists between frames.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
