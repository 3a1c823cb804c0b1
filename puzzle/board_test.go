package puzzle_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/plus3/blockfill/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkerRows = []string{
	"Y.Y.Y.Y.",
	".Y.Y.Y.Y",
	"Y.Y.Y.Y.",
	".Y.Y.Y.Y",
	"Y.Y.Y.Y.",
	".Y.Y.Y.Y",
	"Y.Y.Y.Y.",
	".Y.Y.Y.Y",
}

// legalByDefinition checks every occupied offset directly against the board.
func legalByDefinition(b *puzzle.Board, s puzzle.Shape, row, col int) bool {
	for r := 0; r < s.Rows(); r++ {
		for c := 0; c < s.Cols(); c++ {
			if !s.At(r, c) {
				continue
			}
			br, bc := row+r, col+c
			if br < 0 || br >= puzzle.Size || bc < 0 || bc >= puzzle.Size {
				return false
			}
			if b.At(br, bc).Filled() {
				return false
			}
		}
	}
	return true
}

func TestIsLegalPlacementExhaustive(t *testing.T) {
	boards := map[string]*puzzle.Board{
		"empty":   {},
		"checker": puzzle.MustParseBoard(checkerRows...),
		"corner": puzzle.MustParseBoard(
			"CCCCCCCC",
			"C.......",
			"C.......",
			"C.......",
			"C...RR..",
			"C...RR..",
			"C.......",
			"C.......",
		),
	}

	for name, board := range boards {
		for _, tmpl := range puzzle.DefaultTemplates() {
			for turn := range 4 {
				shape := tmpl.Shape.RotateN(turn)
				for row := -2; row < puzzle.Size+2; row++ {
					for col := -2; col < puzzle.Size+2; col++ {
						want := legalByDefinition(board, shape, row, col)
						got := board.IsLegalPlacement(shape, row, col)
						if !assert.Equal(t, want, got, "%s/%s turn=%d at (%d,%d)", name, tmpl.Name, turn, row, col) {
							return
						}
					}
				}
			}
		}
	}
}

func TestIsLegalPlacementIgnoresUnoccupiedOffsets(t *testing.T) {
	board := puzzle.MustParseBoard(
		"R.......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".......R",
	)

	// Empty offset (0,0) overlays the filled top-left cell.
	assert.True(t, board.IsLegalPlacement(puzzle.MustShape(".#", "#."), 0, 0))
	// Empty offset (1,1) overlays the filled bottom-right cell.
	assert.True(t, board.IsLegalPlacement(puzzle.MustShape("##", "#."), 6, 6))
	// Empty offset (0,1) falls off the right edge.
	assert.True(t, board.IsLegalPlacement(puzzle.MustShape("#."), 3, 7))
	// Occupied offsets are still checked.
	assert.False(t, board.IsLegalPlacement(puzzle.MustShape("#.", ".#"), 6, 6))
	assert.False(t, board.IsLegalPlacement(puzzle.MustShape(".#"), 3, 7))
}

func TestPlaceThenIllegal(t *testing.T) {
	var board puzzle.Board
	shape := puzzle.MustShape("###", ".#.")

	require.True(t, board.IsLegalPlacement(shape, 3, 2))
	require.NoError(t, board.Place(shape, 3, 2, puzzle.Purple))

	assert.False(t, board.IsLegalPlacement(shape, 3, 2))
	assert.Equal(t, 4, board.Filled())
	assert.Equal(t, puzzle.Purple, board.At(3, 2))
	assert.Equal(t, puzzle.Purple, board.At(4, 3))
	assert.Equal(t, puzzle.Empty, board.At(4, 2))
}

func TestPlaceRejectsWithoutMutation(t *testing.T) {
	board := puzzle.MustParseBoard(
		"........",
		"........",
		"...R....",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	before := *board

	err := board.Place(i4Shape, 2, 0, puzzle.Cyan)
	assert.ErrorIs(t, err, puzzle.ErrIllegalPlacement)
	assert.ErrorIs(t, err, puzzle.ErrInvalidMove)

	err = board.Place(i4Shape, 0, 5, puzzle.Cyan)
	assert.ErrorIs(t, err, puzzle.ErrIllegalPlacement)

	err = board.Place(monoShape, 0, 0, puzzle.Empty)
	assert.ErrorIs(t, err, puzzle.ErrInvalidColor)

	assert.Equal(t, before, *board)
}

func TestClampAnchor(t *testing.T) {
	block := puzzle.MustShape("###", "###", "###")

	tests := []struct {
		shape            puzzle.Shape
		row, col         int
		wantRow, wantCol int
	}{
		{block, 0, 0, 0, 0},
		{block, -3, -1, 0, 0},
		{block, 7, 7, 5, 5},
		{block, 4, 9, 4, 5},
		{i4Shape, 7, 6, 7, 4},
		{i4Shape.Rotate(), 6, 7, 4, 7},
		{monoShape, 7, 7, 7, 7},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d@%d,%d", tt.shape.Rows(), tt.shape.Cols(), tt.row, tt.col), func(t *testing.T) {
			r, c := puzzle.ClampAnchor(tt.shape, tt.row, tt.col)
			assert.Equal(t, tt.wantRow, r)
			assert.Equal(t, tt.wantCol, c)

			var board puzzle.Board
			br, bc := board.ClampedAnchor(tt.shape, tt.row, tt.col)
			assert.Equal(t, r, br)
			assert.Equal(t, c, bc)
		})
	}
}

func TestCenteredAnchor(t *testing.T) {
	block := puzzle.MustShape("###", "###", "###")

	r, c := puzzle.CenteredAnchor(block, 4, 4)
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)

	r, c = puzzle.CenteredAnchor(block, 0, 7)
	assert.Equal(t, 0, r)
	assert.Equal(t, 5, c)

	r, c = puzzle.CenteredAnchor(i4Shape, 5, 1)
	assert.Equal(t, 5, r)
	assert.Equal(t, 0, c)
}

func TestParseBoard(t *testing.T) {
	board, err := puzzle.ParseBoard(checkerRows...)
	require.NoError(t, err)
	assert.Equal(t, 32, board.Filled())
	assert.Equal(t, puzzle.Yellow, board.At(0, 0))
	assert.Equal(t, puzzle.Empty, board.At(0, 1))
	assert.Equal(t, puzzle.Empty, board.At(-1, 0))

	again := puzzle.MustParseBoard(strings.Split(board.String(), "\n")...)
	assert.Equal(t, *board, *again)

	_, err = puzzle.ParseBoard("........")
	assert.ErrorIs(t, err, puzzle.ErrInvalidBoard)

	rows := append([]string(nil), checkerRows...)
	rows[3] = "..."
	_, err = puzzle.ParseBoard(rows...)
	assert.ErrorIs(t, err, puzzle.ErrInvalidBoard)
}

func TestBoardCells(t *testing.T) {
	board := puzzle.MustParseBoard(checkerRows...)

	count, filled := 0, 0
	for at, color := range board.Cells() {
		count++
		if color.Filled() {
			filled++
			assert.Equal(t, 0, (at.Row+at.Col)%2)
		}
	}
	assert.Equal(t, puzzle.Size*puzzle.Size, count)
	assert.Equal(t, 32, filled)
}
