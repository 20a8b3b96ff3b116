package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// BoardInspectorPanel shows the active piece, the upcoming queue and a
// textual dump of the well's occupancy.
type BoardInspectorPanel struct {
	showGrid bool
}

func NewBoardInspectorPanel() *BoardInspectorPanel {
	return &BoardInspectorPanel{showGrid: true}
}

func (p *BoardInspectorPanel) Render(frame *game.Frame) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sess := frame.World.Session
	board := sess.Board()

	imgui.Text(fmt.Sprintf("Well: %dx%d  Occupied: %d", board.Width, board.Height, board.OccupiedCount()))

	if piece, ok := sess.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s rot=%d at (%d,%d) tint=%d",
			piece.Kind, piece.Rot, piece.Row, piece.Col, piece.Tint))
		ghost := game.Dropped(board, piece)
		imgui.Text(fmt.Sprintf("Drops to row %d", ghost.Row))
	} else {
		imgui.Text("Active: none")
	}

	if imgui.TreeNodeStr("Next Queue") {
		for _, kind := range sess.NextKinds() {
			imgui.BulletText(kind.String())
		}
		imgui.TreePop()
	}

	imgui.Checkbox("Show occupancy grid", &p.showGrid)
	if p.showGrid {
		imgui.Separator()
		for row := 0; row < board.Height; row++ {
			var line strings.Builder
			for col := 0; col < board.Width; col++ {
				if blk, occupied := board.At(row, col); occupied {
					line.WriteByte('0' + byte(blk.Tint))
				} else {
					line.WriteByte('.')
				}
			}
			imgui.Text(line.String())
		}
	}

	imgui.End()
}
