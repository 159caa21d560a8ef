package tetris_test

import (
	"testing"

	"github.com/plus3/linefall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	board := tetris.NewBoard(10, 13)
	board.Set(5, 6, 3)

	o := tetris.ShapeO.Matrix()
	j := tetris.ShapeJ.Matrix()

	tests := []struct {
		name  string
		piece tetris.Piece
		want  bool
	}{
		{"spawn position", tetris.Piece{Matrix: o, X: 4, Y: 0}, false},
		{"left wall", tetris.Piece{Matrix: o, X: -1, Y: 0}, true},
		{"right wall", tetris.Piece{Matrix: o, X: 9, Y: 0}, true},
		{"resting on floor", tetris.Piece{Matrix: o, X: 4, Y: 11}, false},
		{"through floor", tetris.Piece{Matrix: o, X: 4, Y: 12}, true},
		{"partly above top", tetris.Piece{Matrix: o, X: 4, Y: -1}, false},
		{"fully above top", tetris.Piece{Matrix: o, X: 4, Y: -5}, false},
		{"above top but outside wall", tetris.Piece{Matrix: o, X: -1, Y: -5}, true},
		{"overlaps occupied cell", tetris.Piece{Matrix: o, X: 4, Y: 5}, true},
		{"touches occupied cell", tetris.Piece{Matrix: o, X: 3, Y: 5}, false},
		{"empty matrix row over occupied cell", tetris.Piece{Matrix: j, X: 4, Y: 6}, false},
		{"filled matrix row over occupied cell", tetris.Piece{Matrix: j, X: 4, Y: 5}, true},
		{"empty matrix column outside wall", tetris.Piece{Matrix: tetris.ShapeS.Matrix(), X: -1, Y: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tetris.Collides(board, tt.piece))
		})
	}
}
