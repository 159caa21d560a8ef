// Package ebiten polls Ebiten keyboard, mouse and touch state into intents.
package ebiten

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kamstrup/intmap"

	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/tetris"
)

// DefaultKeymap returns the standard keyboard bindings.
func DefaultKeymap() *input.Keymap[eb.Key] {
	return input.NewKeymap[eb.Key]().
		Bind(input.MoveLeft, eb.KeyA, eb.KeyArrowLeft).
		Bind(input.MoveRight, eb.KeyD, eb.KeyArrowRight).
		Bind(input.SoftDrop, eb.KeyS, eb.KeyArrowDown).
		Bind(input.Rotate, eb.KeyE, eb.KeyArrowUp).
		Bind(input.HardDrop, eb.KeyQ, eb.KeySpace).
		Bind(input.TogglePause, eb.KeyP).
		Bind(input.Start, eb.KeyEnter, eb.KeyR).
		Bind(input.Quit, eb.KeyEscape)
}

type point struct {
	x, y int
}

// Poller implements input.Poller for Ebiten. Call Poll from Game.Update.
type Poller struct {
	Keymap  *input.Keymap[eb.Key]
	Buttons input.Buttons
	// Session gates gestures, which are ignored while the game is not
	// running. Keys and buttons are always forwarded.
	Session *tetris.Session
	// Captured reports whether an overlay currently owns the mouse and
	// keyboard. Nil means never.
	Captured func() (mouse, keyboard bool)

	gestures *intmap.Map[eb.TouchID, point]
	keys     []eb.Key
	touchIDs []eb.TouchID
}

var _ input.Poller = (*Poller)(nil)

// NewPoller returns a poller with the default keymap and the given buttons.
func NewPoller(session *tetris.Session, buttons input.Buttons) *Poller {
	return &Poller{
		Keymap:   DefaultKeymap(),
		Buttons:  buttons,
		Session:  session,
		gestures: intmap.New[eb.TouchID, point](4),
	}
}

// Poll pushes the intents produced since the last tick.
func (p *Poller) Poll(q *input.Queue) {
	var mouseCaptured, keyboardCaptured bool
	if p.Captured != nil {
		mouseCaptured, keyboardCaptured = p.Captured()
	}

	if !keyboardCaptured {
		p.pollKeys(q)
	}
	if !mouseCaptured {
		p.pollMouse(q)
		p.pollTouches(q)
	}
}

func (p *Poller) pollKeys(q *input.Queue) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if intent, ok := p.Keymap.Lookup(k); ok {
			q.Push(intent)
		}
	}
}

func (p *Poller) pollMouse(q *input.Queue) {
	if !inpututil.IsMouseButtonJustPressed(eb.MouseButtonLeft) {
		return
	}
	x, y := eb.CursorPosition()
	if intent, ok := p.Buttons.Hit(float32(x), float32(y)); ok {
		q.Push(intent)
	}
}

func (p *Poller) pollTouches(q *input.Queue) {
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := eb.TouchPosition(id)
		if intent, ok := p.Buttons.Hit(float32(x), float32(y)); ok {
			q.Push(intent)
			continue
		}
		if p.gesturesAllowed() {
			p.gestures.Put(id, point{x, y})
		}
	}

	p.touchIDs = inpututil.AppendJustReleasedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		start, ok := p.gestures.Get(id)
		if !ok {
			continue
		}
		p.gestures.Del(id)
		if !p.gesturesAllowed() {
			continue
		}
		x, y := inpututil.TouchPositionInPreviousTick(id)
		q.Push(input.Classify(float64(x-start.x), float64(y-start.y)))
	}
}

func (p *Poller) gesturesAllowed() bool {
	return p.Session == nil || p.Session.State() == tetris.StateRunning
}

// PendingGestures returns the number of touches being tracked.
func (p *Poller) PendingGestures() int {
	return p.gestures.Len()
}
