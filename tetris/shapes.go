package tetris

import "fmt"

// Shape identifies one of the seven fixed pieces. Its value is also the
// Cell value the piece leaves on the board.
type Shape Cell

const (
	ShapeI Shape = iota + 1
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// ShapeCount is the number of distinct shapes.
const ShapeCount = 7

var shapeNames = [ShapeCount + 1]string{"", "I", "J", "L", "O", "S", "T", "Z"}

func (s Shape) String() string {
	if s < ShapeI || s > ShapeZ {
		return fmt.Sprintf("Shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Shape layouts with 1 for an occupied cell; Matrix replaces the 1s with the
// shape's own value.
var shapeLayouts = [ShapeCount + 1][][]uint8{
	ShapeI: {
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	ShapeJ: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 0, 0},
	},
	ShapeL: {
		{0, 1, 1},
		{0, 1, 1},
		{0, 1, 1},
	},
	ShapeO: {
		{1, 1},
		{1, 1},
	},
	ShapeS: {
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	ShapeT: {
		{0, 0, 0},
		{1, 1, 1},
		{1, 1, 1},
	},
	ShapeZ: {
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	},
}

// Matrix returns a fresh spawn-orientation matrix for s.
func (s Shape) Matrix() Matrix {
	layout := shapeLayouts[s]
	m := make(Matrix, len(layout))
	for y, row := range layout {
		m[y] = make([]Cell, len(row))
		for x, v := range row {
			if v != 0 {
				m[y][x] = Cell(s)
			}
		}
	}
	return m
}

// Shapes lists every shape in type order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}
}
