// Package input turns device events into game intents and applies them to a
// session once per frame.
//
// Front-end pollers translate keys, clicks and touches into Intent values
// and push them onto a Queue; the Queue's System drains it at the start of
// each frame so all session mutation happens on the frame loop.
package input

import (
	"fmt"

	"github.com/plus3/linefall/tetris"
)

// Intent is a player action independent of the device that produced it.
type Intent uint8

const (
	None Intent = iota
	MoveLeft
	MoveRight
	SoftDrop
	Rotate
	HardDrop
	TogglePause
	Start
	Quit
)

var intentNames = [...]string{
	None:        "None",
	MoveLeft:    "MoveLeft",
	MoveRight:   "MoveRight",
	SoftDrop:    "SoftDrop",
	Rotate:      "Rotate",
	HardDrop:    "HardDrop",
	TogglePause: "TogglePause",
	Start:       "Start",
	Quit:        "Quit",
}

func (i Intent) String() string {
	if int(i) >= len(intentNames) {
		return fmt.Sprintf("Intent(%d)", int(i))
	}
	return intentNames[i]
}

// Dispatch applies intent to session. It reports false for intents the
// session does not handle (None and Quit), which are left to the caller.
func Dispatch(session *tetris.Session, intent Intent) bool {
	switch intent {
	case MoveLeft:
		session.MoveHorizontal(-1)
	case MoveRight:
		session.MoveHorizontal(1)
	case SoftDrop:
		session.SoftDrop()
	case Rotate:
		session.Rotate()
	case HardDrop:
		session.HardDrop()
	case TogglePause:
		session.TogglePause()
	case Start:
		session.Start()
	default:
		return false
	}
	return true
}
