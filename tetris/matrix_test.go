package tetris_test

import (
	"testing"

	"github.com/plus3/linefall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestRotatedFourTimesIsIdentity(t *testing.T) {
	for _, shape := range tetris.Shapes() {
		for _, dir := range []tetris.Direction{tetris.Clockwise, tetris.CounterClockwise} {
			original := shape.Matrix()
			m := original
			for range 4 {
				m = m.Rotated(dir)
			}
			assert.True(t, original.Equal(m), "shape %s dir %d", shape, dir)
		}
	}
}

func TestRotatedDirectionsAreInverse(t *testing.T) {
	for _, shape := range tetris.Shapes() {
		m := shape.Matrix()
		assert.True(t, m.Equal(m.Rotated(tetris.Clockwise).Rotated(tetris.CounterClockwise)), shape.String())
	}
}

func TestRotatedClockwise(t *testing.T) {
	m := tetris.ShapeI.Matrix()
	rotated := m.Rotated(tetris.Clockwise)

	for y := range 4 {
		for x := range 4 {
			want := tetris.Empty
			if x == 2 {
				want = tetris.Cell(tetris.ShapeI)
			}
			assert.Equal(t, want, rotated[y][x], "cell %d,%d", x, y)
		}
	}
}

func TestRotatedRectangular(t *testing.T) {
	m := tetris.Matrix{
		{1, 2, 3},
		{4, 5, 6},
	}

	assert.Equal(t, tetris.Matrix{
		{4, 1},
		{5, 2},
		{6, 3},
	}, m.Rotated(tetris.Clockwise))

	assert.Equal(t, tetris.Matrix{
		{3, 6},
		{2, 5},
		{1, 4},
	}, m.Rotated(tetris.CounterClockwise))
}

func TestRotatedDoesNotAlias(t *testing.T) {
	m := tetris.ShapeT.Matrix()
	rotated := m.Rotated(tetris.Clockwise)
	rotated[0][0] = 7

	assert.True(t, tetris.ShapeT.Matrix().Equal(m))
}

func TestShapeMatrix(t *testing.T) {
	tests := []struct {
		shape  tetris.Shape
		width  int
		height int
		cells  int
	}{
		{tetris.ShapeI, 4, 4, 4},
		{tetris.ShapeJ, 3, 3, 3},
		{tetris.ShapeL, 3, 3, 6},
		{tetris.ShapeO, 2, 2, 4},
		{tetris.ShapeS, 3, 3, 3},
		{tetris.ShapeT, 3, 3, 6},
		{tetris.ShapeZ, 3, 3, 9},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			m := tt.shape.Matrix()
			assert.Equal(t, tt.width, m.Width())
			assert.Equal(t, tt.height, m.Height())
			assert.Equal(t, tt.cells, m.Cells())
			for _, row := range m {
				for _, c := range row {
					assert.Contains(t, []tetris.Cell{tetris.Empty, tetris.Cell(tt.shape)}, c)
				}
			}
		})
	}
}

func TestShapeMatrixIsFresh(t *testing.T) {
	m := tetris.ShapeZ.Matrix()
	m[1][1] = tetris.Empty
	assert.Equal(t, 9, tetris.ShapeZ.Matrix().Cells())
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "O", tetris.ShapeO.String())
	assert.Equal(t, "Shape(9)", tetris.Shape(9).String())
}
