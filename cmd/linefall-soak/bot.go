package main

import (
	"math/rand/v2"

	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

var botMoves = []input.Intent{
	input.None,
	input.None,
	input.None,
	input.MoveLeft,
	input.MoveRight,
	input.Rotate,
	input.SoftDrop,
	input.HardDrop,
}

// Bot presses random controls and restarts finished games.
type Bot struct {
	Session *tetris.Session
	rng     *rand.Rand
}

var _ input.Poller = (*Bot)(nil)

func NewBot(session *tetris.Session, seed uint64) *Bot {
	return &Bot{Session: session, rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (b *Bot) Poll(q *input.Queue) {
	switch b.Session.State() {
	case tetris.StateOver, tetris.StateWon:
		q.Push(input.Start)
	default:
		q.Push(botMoves[b.rng.IntN(len(botMoves))])
	}
}

// Tally counts game outcomes by watching session state between frames.
type Tally struct {
	Session *tetris.Session

	Games     int
	GameOvers int
	Victories int
	Lines     int
	Reveals   int
	BestScore int

	last      tetris.State
	lastLines int
	lastShown int
}

func NewTally(session *tetris.Session) *Tally {
	return &Tally{Session: session, Games: 1, last: session.State()}
}

// Execute implements loop.System.
func (t *Tally) Execute(*loop.Frame) {
	s := t.Session
	state := s.State()

	if lines := s.Lines(); lines > t.lastLines {
		t.Lines += lines - t.lastLines
	}
	if shown := s.Revealed(); shown > t.lastShown {
		t.Reveals += shown - t.lastShown
	}
	t.BestScore = max(t.BestScore, s.Score())

	if state != t.last {
		switch state {
		case tetris.StateOver:
			t.GameOvers++
		case tetris.StateWon:
			t.Victories++
		case tetris.StateRunning:
			if t.last == tetris.StateOver || t.last == tetris.StateWon {
				t.Games++
			}
		}
	}

	t.last = state
	t.lastLines = s.Lines()
	t.lastShown = s.Revealed()
}
