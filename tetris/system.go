package tetris

import "github.com/plus3/linefall/loop"

// DropSystem advances a session's automatic drop timer every frame.
type DropSystem struct {
	Session *Session
	Drops   int64
}

// Execute implements loop.System.
func (d *DropSystem) Execute(frame *loop.Frame) {
	if d.Session.Tick(frame.Elapsed()) {
		d.Drops++
	}
}
