package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/linefall/input"
	"github.com/plus3/linefall/tetris"
)

func TestIntentString(t *testing.T) {
	assert.Equal(t, "HardDrop", input.HardDrop.String())
	assert.Equal(t, "Quit", input.Quit.String())
	assert.Equal(t, "Intent(99)", input.Intent(99).String())
}

func TestDispatch(t *testing.T) {
	t.Run("moves", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		x := s.Active().X

		assert.True(t, input.Dispatch(s, input.MoveLeft))
		assert.Equal(t, x-1, s.Active().X)
		assert.True(t, input.Dispatch(s, input.MoveRight))
		assert.True(t, input.Dispatch(s, input.MoveRight))
		assert.Equal(t, x+1, s.Active().X)
	})

	t.Run("soft drop", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		y := s.Active().Y
		input.Dispatch(s, input.SoftDrop)
		assert.Equal(t, y+1, s.Active().Y)
	})

	t.Run("hard drop locks", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		input.Dispatch(s, input.HardDrop)
		assert.Equal(t, 1, s.Locks())
		assert.Positive(t, s.Board().Occupied())
	})

	t.Run("pause and start", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		input.Dispatch(s, input.TogglePause)
		assert.True(t, s.Paused())
		input.Dispatch(s, input.Start)
		assert.False(t, s.Paused())
	})

	t.Run("rotate", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		before := s.Active().Matrix.Clone()
		assert.True(t, input.Dispatch(s, input.Rotate))
		assert.True(t, s.Active().Matrix.Equal(before.Rotated(tetris.Clockwise)))
	})

	t.Run("unhandled", func(t *testing.T) {
		s := tetris.NewSession(tetris.WithSeed(4))
		assert.False(t, input.Dispatch(s, input.None))
		assert.False(t, input.Dispatch(s, input.Quit))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   input.Intent
	}{
		{"tap", 0, 0, input.Rotate},
		{"small drift", 30, -30, input.Rotate},
		{"swipe right", 31, 5, input.MoveRight},
		{"swipe left", -80, 40, input.MoveLeft},
		{"swipe down", 10, 31, input.SoftDrop},
		{"swipe up", -10, -60, input.Rotate},
		{"diagonal tie goes vertical", 50, 50, input.SoftDrop},
		{"diagonal tie upward", -50, -50, input.Rotate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, input.Classify(tt.dx, tt.dy))
		})
	}
}
