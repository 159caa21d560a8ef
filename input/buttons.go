package input

import "github.com/plus3/linefall/render"

// Button is an on-screen control.
type Button struct {
	Label      string
	Intent     Intent
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside b. Edges on the right and
// bottom are exclusive.
func (b Button) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Buttons is a bar of on-screen controls.
type Buttons []Button

// NewButtons lays the default controls out in one row of height h starting
// at (x, y) and spanning width w.
func NewButtons(x, y, w, h float32) Buttons {
	controls := []struct {
		label  string
		intent Intent
	}{
		{"Left", MoveLeft},
		{"Right", MoveRight},
		{"Rotate", Rotate},
		{"Drop", SoftDrop},
		{"Start", Start},
		{"Pause", TogglePause},
	}

	bw := w / float32(len(controls))
	buttons := make(Buttons, len(controls))
	for i, c := range controls {
		buttons[i] = Button{
			Label:  c.label,
			Intent: c.intent,
			X:      x + float32(i)*bw,
			Y:      y,
			W:      bw,
			H:      h,
		}
	}
	return buttons
}

// Hit returns the intent of the button under (x, y).
func (bs Buttons) Hit(x, y float32) (Intent, bool) {
	for _, b := range bs {
		if b.Contains(x, y) {
			return b.Intent, true
		}
	}
	return None, false
}

// Render converts the bar for drawing.
func (bs Buttons) Render() []render.Button {
	out := make([]render.Button, len(bs))
	for i, b := range bs {
		out[i] = render.Button{Label: b.Label, X: b.X, Y: b.Y, W: b.W, H: b.H}
	}
	return out
}
