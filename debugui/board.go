package debugui

import (
	"strings"

	"github.com/plus3/linefall/tetris"
)

// BoardText draws the board as rows of '.' and shape digits.
func BoardText(b *tetris.Board) string {
	var sb strings.Builder
	for y := range b.Rows() {
		for x := range b.Cols() {
			c := b.At(x, y)
			if c == tetris.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
		if y < b.Rows()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
