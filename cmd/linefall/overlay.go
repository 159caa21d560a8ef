package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/linefall/loop"
)

type overlay interface {
	loop.System
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(w, h int)
	Captured() (mouse, keyboard bool)
}

type noOverlay struct{}

func (noOverlay) Execute(*loop.Frame) {}
func (noOverlay) BeginFrame() {}
func (noOverlay) EndFrame() {}
func (noOverlay) Draw(*ebiten.Image) {}
func (noOverlay) Layout(int, int) {}
func (noOverlay) Captured() (bool, bool) { return false, false }
