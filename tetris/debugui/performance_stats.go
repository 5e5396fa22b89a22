package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) PerformanceStats {
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

func (ps *PerformanceStats) Render(runner *tetris.Runner, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(300, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)

	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	stats := runner.GetStats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Frames: %d  Restarts: %d", stats.Frames, stats.Restarts))
	imgui.Text(fmt.Sprintf("Tick Avg: %.3f ms", ms(stats.AvgDuration)))
	imgui.Text(fmt.Sprintf("Tick Min/Max: %.3f / %.3f ms", ms(stats.MinDuration), ms(stats.MaxDuration)))
	imgui.Text(fmt.Sprintf("Tick Last: %.3f ms", ms(stats.LastDuration)))

	imgui.End()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
