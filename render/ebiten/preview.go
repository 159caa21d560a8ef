package ebiten

import (
	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/linefall/render"
	"github.com/plus3/linefall/tetris"
)

// Preview caches the next-piece preview in an offscreen image and only
// redraws it when the next shape changes. It implements the NextChanged half
// of tetris.Display.
type Preview struct {
	renderer *render.Renderer
	image    *eb.Image
	surface  *Surface
	dirty    bool
	next     tetris.Matrix
}

// NewPreview allocates the preview image for r.
func NewPreview(r *render.Renderer) *Preview {
	size := int(r.PreviewSize())
	img := eb.NewImage(size, size)
	return &Preview{
		renderer: r,
		image:    img,
		surface:  New(img),
	}
}

// NextChanged marks the cached image stale.
func (p *Preview) NextChanged(next tetris.Matrix) {
	p.next = next
	p.dirty = true
}

// Image returns the preview, redrawing it first if the next shape changed.
func (p *Preview) Image() *eb.Image {
	if p.dirty {
		p.image.Clear()
		p.renderer.DrawPreview(p.surface, p.next)
		p.dirty = false
	}
	return p.image
}

// DrawTo blits the preview onto dst at (x, y).
func (p *Preview) DrawTo(dst *eb.Image, x, y float64) {
	op := &eb.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(p.Image(), op)
}
