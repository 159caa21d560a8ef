//go:build !js

package main

import (
	"github.com/plus3/linefall/config"
	"github.com/plus3/linefall/debugui"
	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

func newOverlay(cfg config.Config, session *tetris.Session, scheduler *loop.Scheduler) overlay {
	if !cfg.Debug {
		return noOverlay{}
	}

	o := debugui.New("linefall", int(screenWidth*cfg.Scale), int(screenHeight*cfg.Scale))
	history := debugui.NewFrameHistory(120)
	scheduler.Register(&debugui.HistorySystem{History: history})
	o.Add(debugui.SessionWindow(session))
	o.Add(debugui.StatsWindow(scheduler, history))
	return o
}
