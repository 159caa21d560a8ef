package tetris

// Rotate turns p a quarter in dir. If the turned piece collides it is nudged
// sideways by +1, -2, +3, -4, ... columns in turn until it fits. Once the next
// nudge would be wider than the piece the rotation is abandoned and p is
// returned unchanged with ok false.
func Rotate(b *Board, p Piece, dir Direction) (rotated Piece, ok bool) {
	rotated = Piece{Matrix: p.Matrix.Rotated(dir), X: p.X, Y: p.Y}

	offset := 1
	for Collides(b, rotated) {
		if abs(offset) > rotated.Width() {
			return p, false
		}
		rotated.X += offset
		if offset > 0 {
			offset = -(offset + 1)
		} else {
			offset = -(offset - 1)
		}
	}
	return rotated, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
