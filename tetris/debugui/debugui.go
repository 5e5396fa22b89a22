// Package debugui provides Dear ImGui inspector windows for a running
// tetris session. Call Overlay.Render between the backend's BeginFrame and
// EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// Overlay groups the session, board and performance windows.
type Overlay struct {
	Session     SessionPanel
	Board       BoardInspector
	Performance PerformanceStats
	timer       *FrameTimer
}

// NewOverlay creates an overlay keeping historyFrames of frame timings.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		Performance: NewPerformanceStats(historyFrames),
		timer:       NewFrameTimer(),
	}
}

// Render draws every window for the runner's session.
func (o *Overlay) Render(runner *tetris.Runner) {
	session := runner.Session()
	o.Session.Render(session)
	o.Board.Render(session)
	o.Performance.Render(runner, o.timer.GetDeltaTime())
}

// WantsKeyboard reports whether Dear ImGui is consuming keyboard input, in
// which case game key handling should be skipped for the frame.
func WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
