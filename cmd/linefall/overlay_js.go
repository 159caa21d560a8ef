//go:build js

package main

import (
	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

func newOverlay(config.Config, *tetris.Session, *loop.Scheduler) overlay {
	return noOverlay{}
}
