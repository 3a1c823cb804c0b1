package main

import (
	"errors"
	"log/slog"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfill/internal/highscore"
	"github.com/plus3/blockfill/puzzle"
	"github.com/plus3/blockfill/puzzle/debugui"
)

const flashDuration = 250 * time.Millisecond

// dragState tracks a piece picked up from the dock.
type dragState struct {
	active  bool
	id      puzzle.PieceId
	x, y    int
	preview puzzle.Preview
	onBoard bool
}

// flashState highlights cells removed by the last clear.
type flashState struct {
	cells []puzzle.Anchor
	combo bool
	until time.Time
}

// Game implements ebiten.Game on top of a puzzle engine.
type Game struct {
	engine  *puzzle.Engine
	scores  *highscore.Recorder
	backend *ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
	logger  *slog.Logger

	drag      dragState
	flash     flashState
	prevMouse bool
}

func NewGame(engine *puzzle.Engine, store *highscore.Store, backend *ebitenbackend.EbitenBackend, overlay *debugui.Overlay, logger *slog.Logger) *Game {
	g := &Game{
		engine:  engine,
		scores:  highscore.NewRecorder(store, logger),
		backend: backend,
		overlay: overlay,
		logger:  logger,
	}
	engine.OnScoreChange(g.scores.Observe)
	return g
}

func (g *Game) Update() error {
	g.backend.BeginFrame()
	g.overlay.Render(g.engine)
	g.backend.EndFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.Toggle()
	}

	if !g.overlay.Input().WantCaptureKeyboard {
		g.handleKeys()
	}

	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if g.overlay.Input().WantCaptureMouse && !g.drag.active {
		g.prevMouse = mouseLeft
		return nil
	}
	mx, my := ebiten.CursorPosition()

	switch g.engine.State() {
	case puzzle.NotStarted:
		if mouseLeft && !g.prevMouse {
			g.start()
		}
	case puzzle.InProgress:
		g.handleDrag(mx, my, mouseLeft)
	}

	g.prevMouse = mouseLeft
	return nil
}

func (g *Game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if g.engine.State() == puzzle.NotStarted {
			g.start()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.engine.Reset(); err != nil && !errors.Is(err, puzzle.ErrNotStarted) {
			g.logger.Warn("reset", "err", err)
		}
		g.drag = dragState{}
		g.flash = flashState{}
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.engine.Quit()
		g.drag = dragState{}
		g.flash = flashState{}
		g.scores.Forget()
	}
}

func (g *Game) start() {
	if err := g.engine.Start(); err != nil {
		g.logger.Warn("start", "err", err)
	}
}

func (g *Game) handleDrag(mx, my int, mouseLeft bool) {
	pieces := g.engine.Pieces()

	if mouseLeft && !g.prevMouse {
		if slot := dockSlot(mx, my, len(pieces)); slot >= 0 {
			g.drag = dragState{active: true, id: pieces[slot].Id}
		}
	}
	if !g.drag.active {
		return
	}

	g.drag.x, g.drag.y = mx, my
	row, col, onBoard := boardCell(mx, my)
	g.drag.onBoard = onBoard
	if onBoard {
		preview, err := g.engine.Preview(g.drag.id, row, col)
		if err != nil {
			g.logger.Debug("preview", "piece", g.drag.id, "err", err)
			g.drag = dragState{}
			return
		}
		g.drag.preview = preview
	}

	if mouseLeft {
		return
	}

	drop := g.drag
	g.drag = dragState{}
	if !drop.onBoard || !drop.preview.Valid {
		return
	}
	result, err := g.engine.Place(drop.id, drop.preview.Row, drop.preview.Col)
	if err != nil {
		g.logger.Warn("place", "piece", drop.id, "row", drop.preview.Row, "col", drop.preview.Col, "err", err)
		return
	}
	if result.LinesCleared() {
		g.flash = flashState{
			combo: result.Combo,
			until: time.Now().Add(flashDuration),
		}
		for at := range result.Cleared.Cells() {
			g.flash.cells = append(g.flash.cells, at)
		}
	}
	if result.GameOver {
		g.logger.Info("game over", "score", g.engine.Score(), "best", g.scores.Best())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(ScreenWidth, ScreenHeight)
	return ScreenWidth, ScreenHeight
}
