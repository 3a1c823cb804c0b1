// Package debugui provides Dear ImGui inspector windows for a running puzzle engine.
// Windows only read engine state; they never place pieces or reset the session.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfill/puzzle"
)

// Window is one inspector panel. Render is called once per frame between the
// backend's BeginFrame and EndFrame.
type Window interface {
	Render(engine *puzzle.Engine)
}

// InputState tracks whether ImGui is consuming mouse or keyboard input, so the
// game can ignore drags that start on an inspector window.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups inspector windows behind a single visibility toggle.
type Overlay struct {
	Visible bool
	windows []Window
	input   InputState
}

// NewOverlay creates an overlay with the given windows.
func NewOverlay(windows ...Window) *Overlay {
	return &Overlay{windows: windows}
}

// NewDefaultOverlay wires the piece dock, board inspector and session stats
// windows together, sharing the dock's piece selection with the board view.
func NewDefaultOverlay(historyFrames int) *Overlay {
	selection := &Selection{}
	return NewOverlay(
		NewPieceDockWindow(selection),
		NewBoardInspectorWindow(selection),
		NewSessionStatsWindow(historyFrames),
	)
}

// Toggle flips visibility.
func (o *Overlay) Toggle() {
	o.Visible = !o.Visible
}

// Input returns the capture state recorded during the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Render updates the input capture state and, when visible, draws every window.
func (o *Overlay) Render(engine *puzzle.Engine) {
	if !o.Visible {
		o.input = InputState{}
		return
	}
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, w := range o.windows {
		w.Render(engine)
	}
}

// Selection is the piece currently highlighted across inspector windows.
type Selection struct {
	Id puzzle.PieceId
}

func colorVec4(c puzzle.Color) imgui.Vec4 {
	rgb := c.RGB()
	return imgui.NewVec4(float32(rgb[0])/255, float32(rgb[1])/255, float32(rgb[2])/255, 1)
}
