package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

func TestQueue(t *testing.T) {
	var q input.Queue
	q.Push(input.MoveLeft, input.None, input.Rotate)
	assert.Equal(t, 2, q.Len())
	assert.Equal(t, []input.Intent{input.MoveLeft, input.Rotate}, q.Drain())
	assert.Equal(t, 0, q.Len())
	assert.Empty(t, q.Drain())
}

func TestSystemAppliesInArrivalOrder(t *testing.T) {
	s := tetris.NewSession(tetris.WithSeed(2))
	x := s.Active().X

	quits := 0
	sys := &input.System{
		Session: s,
		OnQuit:  func() { quits++ },
		Pollers: []input.Poller{
			input.PollerFunc(func(q *input.Queue) {
				q.Push(input.MoveLeft, input.MoveLeft)
			}),
			input.PollerFunc(func(q *input.Queue) {
				q.Push(input.MoveRight, input.Quit)
			}),
		},
	}

	sched := loop.NewScheduler()
	sched.Register(sys)
	sched.Once(1.0 / 60)

	assert.Equal(t, x-1, s.Active().X)
	assert.Equal(t, 1, quits)
	assert.Equal(t, int64(3), sys.Applied)
	assert.Equal(t, 0, sys.Queue.Len())
}

func TestSystemPauseFreezesMoves(t *testing.T) {
	s := tetris.NewSession(tetris.WithSeed(2))
	x := s.Active().X

	sys := &input.System{Session: s}
	sys.Queue.Push(input.TogglePause, input.MoveLeft, input.HardDrop)
	sys.Execute(&loop.Frame{})

	assert.True(t, s.Paused())
	assert.Equal(t, x, s.Active().X)
	assert.Equal(t, 0, s.Locks())

	sys.Queue.Push(input.TogglePause, input.MoveLeft)
	sys.Execute(&loop.Frame{})
	assert.False(t, s.Paused())
	assert.Equal(t, x-1, s.Active().X)
}
