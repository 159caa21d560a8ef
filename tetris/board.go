package tetris

// Cell is the content of one board square. 0 is empty; 1..7 identify the
// shape that was locked there.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// Board is a fixed-size grid of cells indexed [row][column].
// Its dimensions never change after creation.
type Board struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewBoard creates an empty board of the given width and height.
func NewBoard(cols, rows int) *Board {
	b := &Board{
		cols:  cols,
		rows:  rows,
		cells: make([][]Cell, rows),
	}
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	return b
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// At returns the cell at column x, row y.
func (b *Board) At(x, y int) Cell {
	return b.cells[y][x]
}

// Set stores c at column x, row y.
func (b *Board) Set(x, y int, c Cell) {
	b.cells[y][x] = c
}

// Row returns a copy of row y.
func (b *Board) Row(y int) []Cell {
	row := make([]Cell, b.cols)
	copy(row, b.cells[y])
	return row
}

// Reset empties every cell.
func (b *Board) Reset() {
	for _, row := range b.cells {
		clear(row)
	}
}

// IsRowFull reports whether every cell of row y is occupied.
func (b *Board) IsRowFull(y int) bool {
	for _, c := range b.cells[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// ClearRow removes row y, shifts every row above it down by one and puts an
// empty row on top.
func (b *Board) ClearRow(y int) {
	removed := b.cells[y]
	copy(b.cells[1:y+1], b.cells[:y])
	clear(removed)
	b.cells[0] = removed
}

// Merge writes every occupied cell of p into the board. Cells above the top
// row are dropped.
func (b *Board) Merge(p Piece) {
	for y, row := range p.Matrix {
		for x, c := range row {
			if c == Empty {
				continue
			}
			by := p.Y + y
			if by < 0 {
				continue
			}
			b.cells[by][p.X+x] = c
		}
	}
}

// Occupied counts the non-empty cells on the board.
func (b *Board) Occupied() int {
	n := 0
	for _, row := range b.cells {
		for _, c := range row {
			if c != Empty {
				n++
			}
		}
	}
	return n
}
