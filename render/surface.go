// Package render draws a session onto an abstract 2D draw target.
//
// The Renderer only issues rectangle fills, rectangle strokes, lines and text
// through the Surface interface; front-ends supply a Surface for their
// backend (see the ebiten and tcell subpackages).
package render

import "image/color"

// Surface is a draw target. Coordinates are in logical pixels.
type Surface interface {
	FillRect(x, y, w, h float32, c color.Color)
	StrokeRect(x, y, w, h, width float32, c color.Color)
	Line(x0, y0, x1, y1, width float32, c color.Color)
	// Text draws s with its top-left corner at (x, y). Lines are separated by '\n'.
	Text(s string, x, y float32, c color.Color)
}

// Offset translates every call into a sub-region of another surface.
type Offset struct {
	Surface
	X, Y float32
}

func (o Offset) FillRect(x, y, w, h float32, c color.Color) {
	o.Surface.FillRect(x+o.X, y+o.Y, w, h, c)
}

func (o Offset) StrokeRect(x, y, w, h, width float32, c color.Color) {
	o.Surface.StrokeRect(x+o.X, y+o.Y, w, h, width, c)
}

func (o Offset) Line(x0, y0, x1, y1, width float32, c color.Color) {
	o.Surface.Line(x0+o.X, y0+o.Y, x1+o.X, y1+o.Y, width, c)
}

func (o Offset) Text(s string, x, y float32, c color.Color) {
	o.Surface.Text(s, x+o.X, y+o.Y, c)
}
