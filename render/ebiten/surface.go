// Package ebiten implements render.Surface on an Ebiten image.
package ebiten

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/plus3/linefall/render"
)

// Face is the HUD font.
var Face = text.NewGoXFace(basicfont.Face7x13)

const lineSpacing = 16

// Surface draws onto Target. Target may be swapped between frames.
type Surface struct {
	Target *eb.Image
}

var _ render.Surface = (*Surface)(nil)

// New returns a surface drawing onto target.
func New(target *eb.Image) *Surface {
	return &Surface{Target: target}
}

func (s *Surface) FillRect(x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(s.Target, x, y, w, h, c, false)
}

func (s *Surface) StrokeRect(x, y, w, h, width float32, c color.Color) {
	vector.StrokeRect(s.Target, x, y, w, h, width, c, false)
}

func (s *Surface) Line(x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(s.Target, x0, y0, x1, y1, width, c, true)
}

func (s *Surface) Text(str string, x, y float32, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineSpacing
	text.Draw(s.Target, str, Face, op)
}
