//go:build !js

package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/linefall/input"
)

// DefaultKeymap returns raylib key bindings.
func DefaultKeymap() *input.Keymap[int32] {
	return input.NewKeymap[int32]().
		Bind(input.MoveLeft, rl.KeyA, rl.KeyLeft).
		Bind(input.MoveRight, rl.KeyD, rl.KeyRight).
		Bind(input.SoftDrop, rl.KeyS, rl.KeyDown).
		Bind(input.Rotate, rl.KeyE, rl.KeyUp).
		Bind(input.HardDrop, rl.KeyQ, rl.KeySpace).
		Bind(input.TogglePause, rl.KeyP).
		Bind(input.Start, rl.KeyEnter, rl.KeyR)
}

// Poller reads raylib's key queue and left clicks.
type Poller struct {
	keymap  *input.Keymap[int32]
	buttons input.Buttons
	scale   float32
}

func NewPoller(buttons input.Buttons, scale float32) *Poller {
	return &Poller{keymap: DefaultKeymap(), buttons: buttons, scale: scale}
}

func (p *Poller) Poll(q *input.Queue) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if intent, ok := p.keymap.Lookup(key); ok {
			q.Push(intent)
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		pos := rl.GetMousePosition()
		if intent, ok := p.buttons.Hit(pos.X/p.scale, pos.Y/p.scale); ok {
			q.Push(intent)
		}
	}
}
