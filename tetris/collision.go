package tetris

// Collides reports whether any occupied cell of p lies outside the board's
// side walls, at or below its floor, or on an occupied board cell.
// Cells above the top row never touch the board.
func Collides(b *Board, p Piece) bool {
	for y, row := range p.Matrix {
		for x, c := range row {
			if c == Empty {
				continue
			}

			bx := p.X + x
			by := p.Y + y

			if bx < 0 || bx >= b.cols || by >= b.rows {
				return true
			}

			if by >= 0 && b.cells[by][bx] != Empty {
				return true
			}
		}
	}
	return false
}
