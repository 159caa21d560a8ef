package tetris

// Direction selects a quarter turn.
type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

// Matrix is the cell layout of one piece orientation, indexed [row][column].
type Matrix [][]Cell

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// Equal reports whether m and o have the same shape and contents.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(o[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotated returns a new matrix turned a quarter in the given direction.
// Clockwise is transpose then reverse every row; counter-clockwise is
// transpose then reverse the row order. An h×w matrix becomes w×h.
func (m Matrix) Rotated(dir Direction) Matrix {
	h, w := m.Height(), m.Width()
	out := make(Matrix, w)
	for i := range out {
		out[i] = make([]Cell, h)
	}

	for i := range w {
		for j := range h {
			if dir == CounterClockwise {
				out[i][j] = m[j][w-1-i]
			} else {
				out[i][j] = m[h-1-j][i]
			}
		}
	}
	return out
}

// Cells returns the number of occupied cells.
func (m Matrix) Cells() int {
	n := 0
	for _, row := range m {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
