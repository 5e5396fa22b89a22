package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetris"
)

// BoardInspector shows how full each row of the well is.
type BoardInspector struct {
	showDrawing bool
}

func (bi *BoardInspector) Render(session *tetris.Session) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 360), imgui.CondOnce)

	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := session.Board()
	imgui.Text(fmt.Sprintf("Locked Cells: %d", board.Len()))
	imgui.Text(fmt.Sprintf("Stack Height: %d", board.Height()))
	imgui.Checkbox("Show Drawing", &bi.showDrawing)
	imgui.Separator()

	if bi.showDrawing {
		imgui.Text(board.String())
		imgui.Separator()
	}

	counts := board.RowCounts()
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("RowTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Fill")
		imgui.TableHeadersRow()

		for y := len(counts) - 1; y >= 0; y-- {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", y))
			imgui.TableNextColumn()
			fill := float32(counts[y]) / float32(board.Width())
			imgui.ProgressBarV(fill, imgui.NewVec2(-1, 0), fmt.Sprintf("%d/%d", counts[y], board.Width()))
		}
		imgui.EndTable()
	}

	imgui.End()
}
