package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfill/puzzle"
)

var (
	backgroundColor = color.NRGBA{15, 23, 42, 255}
	boardFrameColor = color.NRGBA{30, 41, 59, 255}
	validTint       = color.NRGBA{255, 255, 255, 90}
	invalidTint     = color.NRGBA{239, 68, 68, 110}
	flashColor      = color.NRGBA{255, 255, 255, 255}
	comboFlashColor = color.NRGBA{250, 204, 21, 255}
	shadeColor      = color.NRGBA{0, 0, 0, 170}
)

func rgba(c puzzle.Color, alpha uint8) color.NRGBA {
	rgb := c.RGB()
	return color.NRGBA{rgb[0], rgb[1], rgb[2], alpha}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawHeader(screen)
	g.drawBoard(screen)
	g.drawPreview(screen)
	g.drawFlash(screen)
	g.drawDock(screen)

	switch g.engine.State() {
	case puzzle.NotStarted:
		g.drawBanner(screen, "BLOCKFILL", "click or press Enter to start")
	case puzzle.GameOver:
		sub := "press R to play again, Q for menu"
		if g.scores.NewRecord() {
			sub = "new high score! " + sub
		}
		g.drawBanner(screen, fmt.Sprintf("GAME OVER  %d", g.engine.Score()), sub)
	}

	g.backend.Draw(screen)
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	best := g.scores.Best()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", g.engine.Score()), BoardX, BoardY-56)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BEST  %d", best), BoardX, BoardY-40)
	if g.engine.LastCleared() {
		ebitenutil.DebugPrintAt(screen, "CLEAR!", BoardX+BoardPixel-48, BoardY-56)
	}
	ebitenutil.DebugPrintAt(screen, "R reset  Q menu  F1 inspector  Esc exit", BoardX, ScreenHeight-24)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, BoardX-CellGap, BoardY-CellGap, BoardPixel+2*CellGap, BoardPixel+2*CellGap, boardFrameColor, false)

	board := g.engine.Board()
	for at, c := range board.Cells() {
		drawCell(screen, BoardX+at.Col*CellSize, BoardY+at.Row*CellSize, CellSize, rgba(c, 255))
	}
}

func (g *Game) drawPreview(screen *ebiten.Image) {
	if !g.drag.active || !g.drag.onBoard {
		return
	}
	piece, ok := g.engine.Piece(g.drag.id)
	if !ok {
		return
	}
	tint := invalidTint
	if g.drag.preview.Valid {
		tint = validTint
	}
	for off := range piece.Shape.Cells() {
		r, c := g.drag.preview.Row+off.Row, g.drag.preview.Col+off.Col
		if r < 0 || r >= puzzle.Size || c < 0 || c >= puzzle.Size {
			continue
		}
		drawCell(screen, BoardX+c*CellSize, BoardY+r*CellSize, CellSize, tint)
	}
}

func (g *Game) drawFlash(screen *ebiten.Image) {
	remaining := time.Until(g.flash.until)
	if remaining <= 0 {
		return
	}
	base := flashColor
	if g.flash.combo {
		base = comboFlashColor
	}
	base.A = uint8(255 * remaining / flashDuration)
	for _, at := range g.flash.cells {
		drawCell(screen, BoardX+at.Col*CellSize, BoardY+at.Row*CellSize, CellSize, base)
	}
}

func (g *Game) drawDock(screen *ebiten.Image) {
	pieces := g.engine.Pieces()
	for i, p := range pieces {
		left := dockSlotX(i, len(pieces))
		vector.StrokeRect(screen, float32(left+4), float32(DockY), DockSlotSize-8, DockSlotSize, 1, boardFrameColor, false)

		if g.drag.active && g.drag.id == p.Id {
			continue
		}
		x := left + (DockSlotSize-p.Shape.Cols()*DockCellSize)/2
		y := DockY + (DockSlotSize-p.Shape.Rows()*DockCellSize)/2
		drawShape(screen, p, x, y, DockCellSize, 255)
	}

	if !g.drag.active || g.drag.onBoard {
		return
	}
	if p, ok := g.engine.Piece(g.drag.id); ok {
		x := g.drag.x - p.Shape.Cols()*CellSize/2
		y := g.drag.y - p.Shape.Rows()*CellSize/2
		drawShape(screen, p, x, y, CellSize, 200)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, title, subtitle string) {
	vector.DrawFilledRect(screen, BoardX, BoardY+BoardPixel/2-40, BoardPixel, 80, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, title, BoardX+24, BoardY+BoardPixel/2-20)
	ebitenutil.DebugPrintAt(screen, subtitle, BoardX+24, BoardY+BoardPixel/2+4)
}

func drawShape(screen *ebiten.Image, p puzzle.Piece, x, y, size int, alpha uint8) {
	fill := rgba(p.Color, alpha)
	for off := range p.Shape.Cells() {
		drawCell(screen, x+off.Col*size, y+off.Row*size, size, fill)
	}
}

func drawCell(screen *ebiten.Image, x, y, size int, c color.Color) {
	inset := float32(CellGap) / 2
	if size < CellSize {
		inset = 1
	}
	s := float32(size) - 2*inset
	vector.DrawFilledRect(screen, float32(x)+inset, float32(y)+inset, s, s, c, false)
}
