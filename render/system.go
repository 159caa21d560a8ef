package render

import (
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

// Layout positions the parts of the screen relative to the surface origin.
type Layout struct {
	FieldX, FieldY     float32
	PreviewX, PreviewY float32
	StatusX, StatusY   float32
	Buttons            []Button
}

// System redraws a session every frame.
type System struct {
	Renderer *Renderer
	Session  *tetris.Session
	Layout   Layout
	// Surface returns the surface for the current frame.
	Surface func() Surface
	// Present is called after drawing, if set.
	Present func()
}

// Execute implements loop.System.
func (rs *System) Execute(frame *loop.Frame) {
	s := rs.Surface()
	Draw(s, rs.Renderer, rs.Session, rs.Layout)
	if rs.Present != nil {
		rs.Present()
	}
}

// Draw renders the whole screen for session: field, banner, preview, status
// and buttons.
func Draw(s Surface, r *Renderer, session *tetris.Session, layout Layout) {
	field := Offset{Surface: s, X: layout.FieldX, Y: layout.FieldY}
	r.DrawField(field, session.Board(), session.Active())
	if banner := Banner(session.State()); banner != "" {
		r.DrawBanner(field, banner)
	}
	r.DrawPreview(Offset{Surface: s, X: layout.PreviewX, Y: layout.PreviewY}, session.Next().Matrix())
	r.DrawStatus(s, layout.StatusX, layout.StatusY, session.Status())
	if len(layout.Buttons) > 0 {
		r.DrawButtons(s, layout.Buttons)
	}
}
