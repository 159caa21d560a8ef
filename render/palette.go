package render

import (
	"image/color"

	"github.com/plus3/linefall/tetris"
)

var (
	Background = color.RGBA{0x1c, 0x1c, 0x54, 0xff}
	GridLine   = color.NRGBA{0xff, 0xff, 0xff, 0x1a}
	CellStroke = color.White
	Highlight  = color.NRGBA{0xff, 0xff, 0xff, 0x33}
	TextColor  = color.White
	Dim        = color.NRGBA{0x00, 0x00, 0x00, 0xb0}
	ButtonFill = color.RGBA{0x3a, 0x0c, 0xa3, 0xff}
)

// Palette maps a cell value to its fill colour. Index 0 is unused.
var Palette = [tetris.ShapeCount + 1]color.Color{
	nil,
	color.RGBA{0x9d, 0x4e, 0xdd, 0xff}, // I
	color.RGBA{0x3a, 0x0c, 0xa3, 0xff}, // J
	color.RGBA{0x43, 0x61, 0xee, 0xff}, // L
	color.RGBA{0x72, 0x00, 0x26, 0xff}, // O
	color.RGBA{0x90, 0xe0, 0xef, 0xff}, // S
	color.RGBA{0xb5, 0x17, 0x9e, 0xff}, // T
	color.RGBA{0x56, 0x0b, 0xad, 0xff}, // Z
}

// CellColor returns the palette colour of c, or nil for empty and
// out-of-range values.
func CellColor(c tetris.Cell) color.Color {
	if int(c) >= len(Palette) {
		return nil
	}
	return Palette[c]
}
