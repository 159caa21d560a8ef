package tetris

// ClearFullRows removes every full row, scanning from the bottom up, and
// returns how many were removed. After a removal the same index is checked
// again because the row above has moved into it.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := b.rows - 1; y >= 0; {
		if !b.IsRowFull(y) {
			y--
			continue
		}
		b.ClearRow(y)
		cleared++
	}
	return cleared
}
