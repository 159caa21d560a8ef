package main

import (
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

// Cues turns status changes into sound cues. It implements tetris.Display.
type Cues struct {
	player Player
	last   tetris.Status
	seen   bool
}

var _ tetris.Display = (*Cues)(nil)

func NewCues(player Player) *Cues {
	return &Cues{player: player}
}

// StatusChanged plays a reveal cue when the message grows, otherwise a clear
// cue when the line count rises. Reaching the line goal adds a victory cue.
// A drop back to zero lines is a reset and plays nothing.
func (c *Cues) StatusChanged(st tetris.Status) {
	prev, seen := c.last, c.seen
	c.last, c.seen = st, true
	if !seen || st.Lines <= prev.Lines {
		return
	}

	if st.Message != prev.Message {
		c.player.Play(CueReveal)
	} else {
		c.player.Play(CueClear)
	}
	if prev.Lines < tetris.VictoryLines && st.Lines >= tetris.VictoryLines {
		c.player.Play(CueVictory)
	}
}

// NextChanged implements tetris.Display.
func (c *Cues) NextChanged(tetris.Matrix) {}

// GameOver plays the game-over cue.
func (c *Cues) GameOver() {
	c.player.Play(CueGameOver)
}

// CueSystem watches for the transition into game over, which the status
// stream does not carry.
type CueSystem struct {
	Session *tetris.Session
	Cues    *Cues
	last    tetris.State
}

// Execute implements loop.System.
func (s *CueSystem) Execute(*loop.Frame) {
	state := s.Session.State()
	if state == tetris.StateOver && s.last != tetris.StateOver {
		s.Cues.GameOver()
	}
	s.last = state
}
