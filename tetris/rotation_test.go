package tetris_test

import (
	"testing"

	"github.com/plus3/linefall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateInOpenSpace(t *testing.T) {
	board := tetris.NewBoard(10, 13)
	p := tetris.Piece{Matrix: tetris.ShapeT.Matrix(), X: 3, Y: 4}

	rotated, ok := tetris.Rotate(board, p, tetris.Clockwise)

	require.True(t, ok)
	assert.Equal(t, 3, rotated.X)
	assert.Equal(t, 4, rotated.Y)
	assert.True(t, p.Matrix.Rotated(tetris.Clockwise).Equal(rotated.Matrix))
}

func TestRotateKicksAwayFromWall(t *testing.T) {
	board := tetris.NewBoard(10, 13)
	vertical := tetris.Piece{Matrix: tetris.ShapeI.Matrix().Rotated(tetris.Clockwise), X: -2, Y: 3}
	require.False(t, tetris.Collides(board, vertical))

	rotated, ok := tetris.Rotate(board, vertical, tetris.Clockwise)

	// +1 and -2 still hit the left wall; the third nudge (+3) lands at x=0.
	require.True(t, ok)
	assert.Equal(t, 0, rotated.X)
	assert.Equal(t, 3, rotated.Y)
	assert.False(t, tetris.Collides(board, rotated))
}

func TestRotateFirstNudgeIsRight(t *testing.T) {
	board := tetris.NewBoard(10, 13)
	// Vertical bar in the S slot hugging the left wall: turning it lays the
	// bar across columns -1..1, one step right clears the wall.
	p := tetris.Piece{Matrix: tetris.ShapeS.Matrix(), X: -1, Y: 5}
	require.False(t, tetris.Collides(board, p))

	rotated, ok := tetris.Rotate(board, p, tetris.Clockwise)

	require.True(t, ok)
	assert.Equal(t, 0, rotated.X)
}

func TestRotateRevertsWhenNoNudgeFits(t *testing.T) {
	board := tetris.NewBoard(3, 5)
	board.Set(0, 3, 1)
	p := tetris.Piece{Matrix: tetris.ShapeS.Matrix(), X: 0, Y: 2}
	require.False(t, tetris.Collides(board, p))

	rotated, ok := tetris.Rotate(board, p, tetris.Clockwise)

	assert.False(t, ok)
	assert.Equal(t, p.X, rotated.X)
	assert.Equal(t, p.Y, rotated.Y)
	assert.True(t, tetris.ShapeS.Matrix().Equal(rotated.Matrix))
}
