package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

var (
	playingColor  = imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
	gameOverColor = imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	idleColor     = imgui.NewVec4(1.0, 0.8, 0.0, 1.0)
)

type SessionPanel struct{}

func (sp *SessionPanel) Render(session *tetris.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 320), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	switch session.State() {
	case tetris.StatePlaying:
		imgui.TextColored(playingColor, "PLAYING")
	case tetris.StateGameOver:
		imgui.TextColored(gameOverColor, "GAME OVER")
	default:
		imgui.TextColored(idleColor, "IDLE")
	}

	cfg := session.Config()
	imgui.Text(fmt.Sprintf("Seed: %d", session.Seed()))
	imgui.Text(fmt.Sprintf("Width: %d  Spawn: (%d,%d)", cfg.Width, cfg.Spawn.X, cfg.Spawn.Y))
	imgui.Text(fmt.Sprintf("Fall Interval: %.2fs", cfg.FallInterval))
	imgui.Separator()

	current, cells := session.Current()
	imgui.Text(fmt.Sprintf("Score: %d", session.Score()))
	imgui.Text(fmt.Sprintf("Lines: %d", session.Lines()))
	imgui.Text(fmt.Sprintf("Current: %s %v", current, cells))
	imgui.Text(fmt.Sprintf("Next: %s", session.Next()))

	stats := session.Stats()
	if imgui.TreeNodeStr("Statistics") {
		imgui.Text(fmt.Sprintf("Games: %d", stats.Games))
		imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
		imgui.Text(fmt.Sprintf("Locks: %d", stats.Locks))
		imgui.Text(fmt.Sprintf("Lines: %d", stats.Lines))
		for rows, count := range stats.Clears {
			if rows == 0 {
				continue
			}
			imgui.BulletText(fmt.Sprintf("%d-row clears: %d", rows, count))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawned Shapes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for i := range tetris.ShapeCount {
				shape := tetris.ShapeI + tetris.Shape(i)
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.SpawnedOf(shape)))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
