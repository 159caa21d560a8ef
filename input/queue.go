package input

import (
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

// Queue buffers intents between frames.
type Queue struct {
	pending []Intent
}

// Push appends intents. None is dropped.
func (q *Queue) Push(intents ...Intent) {
	for _, i := range intents {
		if i != None {
			q.pending = append(q.pending, i)
		}
	}
}

// Len returns the number of buffered intents.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain returns the buffered intents in arrival order and empties the queue.
// The returned slice is only valid until the next Push.
func (q *Queue) Drain() []Intent {
	out := q.pending
	q.pending = q.pending[:0]
	return out
}

// Poller feeds a queue from a device. It is called once per frame before
// the queue is drained.
type Poller interface {
	Poll(q *Queue)
}

// PollerFunc adapts a function to Poller.
type PollerFunc func(q *Queue)

func (f PollerFunc) Poll(q *Queue) { f(q) }

// System polls its devices and applies the queued intents to Session.
// Quit is forwarded to OnQuit.
type System struct {
	Session *tetris.Session
	Queue   Queue
	Pollers []Poller
	OnQuit  func()

	// Applied counts intents dispatched to the session.
	Applied int64
}

// Execute implements loop.System.
func (s *System) Execute(frame *loop.Frame) {
	for _, p := range s.Pollers {
		p.Poll(&s.Queue)
	}
	for _, intent := range s.Queue.Drain() {
		if intent == Quit {
			if s.OnQuit != nil {
				s.OnQuit()
			}
			continue
		}
		if Dispatch(s.Session, intent) {
			s.Applied++
		}
	}
}
