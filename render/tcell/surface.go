// Package tcell implements render.Surface on a character-cell terminal.
//
// Logical pixels map to cells at CellWidth×CellHeight, so a 30px block
// occupies two columns of one row. Translucent paints and thin strokes have
// no terminal equivalent and are dropped.
package tcell

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/plus3/linefall/render"
)

const (
	CellWidth  = 15
	CellHeight = 30
)

// Surface draws onto a tcell screen.
type Surface struct {
	Screen tcell.Screen
}

var _ render.Surface = (*Surface)(nil)

// New returns a surface drawing onto screen.
func New(screen tcell.Screen) *Surface {
	return &Surface{Screen: screen}
}

// Color converts c to a terminal RGB colour.
func Color(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func toCell(x, y float32) (int, int) {
	return int(x) / CellWidth, int(y) / CellHeight
}

func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	if render.Transparent(c) {
		return
	}
	x0, y0 := toCell(x, y)
	x1, y1 := toCell(x+w-1, y+h-1)
	style := tcell.StyleDefault.Background(Color(c))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.Screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (s *Surface) StrokeRect(x, y, w, h, width float32, c color.Color) {}

func (s *Surface) Line(x0, y0, x1, y1, width float32, c color.Color) {}

// Text writes s one terminal row per line, keeping each cell's background.
func (s *Surface) Text(str string, x, y float32, c color.Color) {
	col0, row := toCell(x, y)
	col := col0
	fg := Color(c)
	for _, r := range str {
		if r == '\n' {
			row++
			col = col0
			continue
		}
		_, _, style, _ := s.Screen.GetContent(col, row)
		s.Screen.SetContent(col, row, r, nil, style.Foreground(fg))
		col += max(runewidth.RuneWidth(r), 1)
	}
}
