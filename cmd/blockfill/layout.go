package main

import "github.com/plus3/blockfill/puzzle"

const (
	ScreenWidth  = 720
	ScreenHeight = 860

	CellSize   = 64
	CellGap    = 4
	BoardX     = (ScreenWidth - puzzle.Size*CellSize) / 2
	BoardY     = 96
	BoardPixel = puzzle.Size * CellSize

	DockY        = BoardY + BoardPixel + 40
	DockCellSize = 28
	DockSlotSize = puzzle.MaxShapeSize*DockCellSize + 16
)

// boardCell maps a screen position to a board cell. Positions off the board
// still map to a (possibly out of range) cell so that anchors can be clamped.
func boardCell(x, y int) (row, col int, onBoard bool) {
	dx, dy := x-BoardX, y-BoardY
	row, col = floorDiv(dy, CellSize), floorDiv(dx, CellSize)
	onBoard = dx >= 0 && dy >= 0 && dx < BoardPixel && dy < BoardPixel
	return row, col, onBoard
}

// dockSlotX returns the left edge of dock slot i for a dock of n slots.
func dockSlotX(i, n int) int {
	total := n * DockSlotSize
	return (ScreenWidth-total)/2 + i*DockSlotSize
}

// dockSlot returns the slot under a screen position, or -1.
func dockSlot(x, y, n int) int {
	if y < DockY || y >= DockY+DockSlotSize {
		return -1
	}
	for i := range n {
		left := dockSlotX(i, n)
		if x >= left && x < left+DockSlotSize {
			return i
		}
	}
	return -1
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
