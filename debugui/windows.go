//go:build !js

package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/linefall/loop"
	"github.com/plus3/linefall/tetris"
)

// SessionWindow shows live session state with controls to reset and pause.
func SessionWindow(session *tetris.Session) Window {
	return func() {
		if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		imgui.Text(fmt.Sprintf("State: %s", session.State()))
		imgui.Text(fmt.Sprintf("Active: %s  Next: %s", activeLabel(session), session.Next()))
		imgui.Text(fmt.Sprintf("Drop counter: %s", session.DropCounter()))
		imgui.Text(fmt.Sprintf("Locks: %d", session.Locks()))
		imgui.Text(fmt.Sprintf("Revealed: %d/%d", session.Revealed(), session.Reveal().Len()))

		if imgui.Button("Reset") {
			session.Reset()
		}
		imgui.SameLine()
		if imgui.Button("Pause") {
			session.TogglePause()
		}

		if imgui.TreeNodeStr("Status") {
			for _, f := range Fields(session.Status()) {
				imgui.Text(fmt.Sprintf("%s: %s", f.Name, f.Value))
			}
			imgui.TreePop()
		}

		if imgui.TreeNodeStr("Board") {
			imgui.Text(BoardText(session.Board()))
			imgui.TreePop()
		}

		imgui.End()
	}
}

// StatsWindow shows frame timings and per-system scheduler stats.
func StatsWindow(scheduler *loop.Scheduler, history *FrameHistory) Window {
	return func() {
		if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}

		stats := scheduler.GetStats()
		imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", history.Average(), history.FPS()))

		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		samples := history.Samples()
		if len(samples) > 0 {
			imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
		}

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStats", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, s := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(s.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", s.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(s.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(s.MaxDuration.String())
			}

			imgui.EndTable()
		}

		imgui.End()
	}
}

func activeLabel(session *tetris.Session) string {
	for _, row := range session.Active().Matrix {
		for _, c := range row {
			if c != tetris.Empty {
				return tetris.Shape(c).String()
			}
		}
	}
	return "-"
}
