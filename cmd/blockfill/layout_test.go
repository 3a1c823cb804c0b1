package main

import (
	"testing"

	"github.com/plus3/blockfill/puzzle"
	"github.com/stretchr/testify/assert"
)

func TestBoardCell(t *testing.T) {
	tests := []struct {
		name             string
		x, y             int
		wantRow, wantCol int
		onBoard          bool
	}{
		{"top left", BoardX, BoardY, 0, 0, true},
		{"inside second cell", BoardX + CellSize + 3, BoardY + 1, 0, 1, true},
		{"bottom right", BoardX + BoardPixel - 1, BoardY + BoardPixel - 1, 7, 7, true},
		{"left of board", BoardX - 1, BoardY, 0, -1, false},
		{"above board", BoardX, BoardY - CellSize - 1, -2, 0, false},
		{"below board", BoardX, BoardY + BoardPixel, puzzle.Size, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, on := boardCell(tt.x, tt.y)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
			assert.Equal(t, tt.onBoard, on)
		})
	}
}

func TestDockSlot(t *testing.T) {
	for i := range 3 {
		x := dockSlotX(i, 3) + DockSlotSize/2
		assert.Equal(t, i, dockSlot(x, DockY+1, 3))
	}
	assert.Equal(t, -1, dockSlot(dockSlotX(0, 3)-1, DockY+1, 3))
	assert.Equal(t, -1, dockSlot(dockSlotX(1, 3), DockY-1, 3))
	assert.Equal(t, -1, dockSlot(dockSlotX(2, 3)+DockSlotSize, DockY+1, 3))
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(5, 64))
	assert.Equal(t, -1, floorDiv(-1, 64))
	assert.Equal(t, -1, floorDiv(-64, 64))
	assert.Equal(t, -2, floorDiv(-65, 64))
}
