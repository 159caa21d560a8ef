//go:build !js

// Package raylib implements render.Surface with raylib's immediate-mode
// drawing calls. Draw between rl.BeginDrawing and rl.EndDrawing.
package raylib

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/plus3/linefall/render"
)

// FontSize is the HUD text height in pixels.
const FontSize = 14

// Surface draws to the current raylib frame.
type Surface struct{}

var _ render.Surface = Surface{}

// Color converts c to a straight-alpha raylib colour.
func Color(c color.Color) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (Surface) FillRect(x, y, w, h float32, c color.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(x, y, w, h), Color(c))
}

func (Surface) StrokeRect(x, y, w, h, width float32, c color.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), width, Color(c))
}

func (Surface) Line(x0, y0, x1, y1, width float32, c color.Color) {
	rl.DrawLineEx(rl.NewVector2(x0, y0), rl.NewVector2(x1, y1), width, Color(c))
}

func (Surface) Text(s string, x, y float32, c color.Color) {
	rl.DrawText(s, int32(x), int32(y), FontSize, Color(c))
}
