// Package debugui provides immediate-mode GUI overlays for game sessions using Dear ImGui.
// It renders diagnostic panels after the simulation systems have run each step.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/game"
)

// Panel renders one Dear ImGui window from the current frame's state.
type Panel interface {
	Render(frame *game.Frame)
}

// InputState tracks Dear ImGui's input capture state. Front-ends consult it
// to decide whether to forward mouse or keyboard events to the session.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// OverlaySystem updates the input capture state and defers every panel's
// render function, so overlays draw after all simulation systems and never
// interleave with a mid-step board mutation.
type OverlaySystem struct {
	Panels     []Panel
	InputState *InputState
}

// Execute refreshes input capture state and queues all panels for rendering.
func (o *OverlaySystem) Execute(frame *game.Frame) {
	if o.InputState != nil {
		o.InputState.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		o.InputState.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	for _, panel := range o.Panels {
		frame.Defer(func() {
			panel.Render(frame)
		})
	}
}
