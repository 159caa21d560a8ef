//go:build !js

package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	eb "github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/linefall/loop"
)

// Window renders one ImGui window.
type Window func()

// InputState tracks whether ImGui wants the mouse or keyboard this frame.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay owns the ImGui backend and the windows drawn each frame.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	windows []Window
	Input   InputState
}

// New creates the ImGui context for the Ebiten window with the given title
// and size. Call it before ebiten.RunGame.
func New(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &Overlay{backend: backend}
}

// Add appends a window.
func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Captured reports the capture state from the last executed frame.
func (o *Overlay) Captured() (mouse, keyboard bool) {
	return o.Input.WantCaptureMouse, o.Input.WantCaptureKeyboard
}

// Execute implements loop.System. Windows are deferred so they render after
// every other system has run.
func (o *Overlay) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		frame.Commands.Defer(w)
	}
}

func (o *Overlay) BeginFrame() { o.backend.BeginFrame() }

func (o *Overlay) EndFrame() { o.backend.EndFrame() }

func (o *Overlay) Draw(screen *eb.Image) { o.backend.Draw(screen) }

func (o *Overlay) Layout(w, h int) { o.backend.Layout(w, h) }
