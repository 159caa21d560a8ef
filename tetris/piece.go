package tetris

// Piece is a matrix placed on the board with its top-left corner at (X, Y).
type Piece struct {
	Matrix Matrix
	X, Y   int
}

// Width returns the matrix width.
func (p Piece) Width() int { return p.Matrix.Width() }

// Height returns the matrix height.
func (p Piece) Height() int { return p.Matrix.Height() }

// Moved returns p shifted by (dx, dy). The matrix is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
