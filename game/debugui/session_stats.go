package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// SessionStatsPanel shows the session counters, a frame time graph and the
// scheduler's per-system timing table.
type SessionStatsPanel struct {
	scheduler *game.Scheduler

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewSessionStatsPanel(scheduler *game.Scheduler, historyFrames int) *SessionStatsPanel {
	return &SessionStatsPanel{
		scheduler:     scheduler,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (p *SessionStatsPanel) Render(frame *game.Frame) {
	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	p.frameHistory[p.frameIndex] = float32(frame.DeltaTime) * 1000.0
	p.frameIndex = (p.frameIndex + 1) % p.historyFrames

	sess := frame.World.Session
	imgui.Text(fmt.Sprintf("State: %s", sess.State()))
	imgui.Text(fmt.Sprintf("Score: %s", sess.ScoreString()))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", sess.Level(), sess.Lines()))
	imgui.Text(fmt.Sprintf("Fall Speed: %.2f rows/s", sess.FallSpeed()))

	var avgFrameTime float32
	for _, ft := range p.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(p.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &p.frameHistory[0], int32(len(p.frameHistory)))

	if imgui.TreeNodeStr("System Timing") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemTimingTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Executions")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range p.scheduler.Stats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
