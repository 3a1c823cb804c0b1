package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfill/puzzle"
)

// SessionStatsWindow plots score and frame time history next to the engine's
// session counters.
type SessionStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	scoreHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewSessionStatsWindow(historyFrames int) *SessionStatsWindow {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &SessionStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		scoreHistory:  make([]float32, historyFrames),
		timer:         NewFrameTimer(),
	}
}

func (w *SessionStatsWindow) Render(engine *puzzle.Engine) {
	w.record(w.timer.GetDeltaTime(), engine.Score())

	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 320), imgui.CondOnce)
	if !imgui.BeginV("Session Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := engine.Stats()
	board := engine.Board()

	imgui.Text(fmt.Sprintf("State: %s", engine.State()))
	imgui.Text(fmt.Sprintf("Score: %d", engine.Score()))
	imgui.Text(fmt.Sprintf("Placements: %d", stats.Placements))
	imgui.Text(fmt.Sprintf("Lines Cleared: %d", stats.LinesCleared))
	imgui.Text(fmt.Sprintf("Combos: %d", stats.Combos))
	imgui.Text(fmt.Sprintf("Best Move: +%d", stats.BestMove))
	imgui.Text(fmt.Sprintf("Filled Cells: %d / %d", board.Filled(), puzzle.Size*puzzle.Size))
	imgui.Text(fmt.Sprintf("Last Move Cleared: %v", engine.LastCleared()))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", w.AverageFrameTime()))
	imgui.PlotLinesFloatPtr("##frametime", &w.frameHistory[0], int32(len(w.frameHistory)))

	imgui.Text("Score")
	imgui.PlotLinesFloatPtr("##score", &w.scoreHistory[0], int32(len(w.scoreHistory)))

	if imgui.TreeNodeStr("Catalog") {
		for _, tmpl := range engine.Catalog().Templates() {
			imgui.BulletText(fmt.Sprintf("%s %dx%d (%d cells)", tmpl.Name, tmpl.Shape.Rows(), tmpl.Shape.Cols(), tmpl.Shape.Count()))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (w *SessionStatsWindow) record(deltaTime float32, score int) {
	w.frameHistory[w.frameIndex] = deltaTime * 1000.0
	w.scoreHistory[w.frameIndex] = float32(score)
	w.frameIndex = (w.frameIndex + 1) % w.historyFrames
}

// AverageFrameTime returns the mean of the recorded frame times in milliseconds.
func (w *SessionStatsWindow) AverageFrameTime() float32 {
	var total float32
	for _, ft := range w.frameHistory {
		total += ft
	}
	return total / float32(w.historyFrames)
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
