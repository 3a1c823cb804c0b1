package puzzle_test

import (
	"testing"

	"github.com/plus3/blockfill/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineLifecycle(t *testing.T) {
	e := puzzle.New()
	assert.Equal(t, puzzle.NotStarted, e.State())
	assert.Empty(t, e.Pieces())

	_, err := e.Place(1, 0, 0)
	assert.ErrorIs(t, err, puzzle.ErrNotStarted)
	assert.ErrorIs(t, err, puzzle.ErrInvalidMove)
	assert.ErrorIs(t, e.Reset(), puzzle.ErrNotStarted)

	require.NoError(t, e.Start())
	assert.Equal(t, puzzle.InProgress, e.State())
	assert.Len(t, e.Pieces(), puzzle.DefaultBatchSize)
	assert.Equal(t, 0, e.Score())
	board := e.Board()
	assert.True(t, board.IsEmpty())

	assert.ErrorIs(t, e.Start(), puzzle.ErrAlreadyStarted)

	require.NoError(t, e.Reset())
	assert.Equal(t, puzzle.InProgress, e.State())

	e.Quit()
	assert.Equal(t, puzzle.NotStarted, e.State())
	assert.Empty(t, e.Pieces())
	require.NoError(t, e.Start())
}

func TestPlaceWithoutClear(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	require.NoError(t, e.Start())
	piece := e.Pieces()[0]

	result, err := e.Place(piece.Id, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, puzzle.PlacementBonus, result.ScoreDelta)
	assert.Equal(t, 0, result.LineScore)
	assert.False(t, result.LinesCleared())
	assert.False(t, result.Combo)
	assert.False(t, result.Refilled)
	assert.False(t, result.GameOver)
	assert.Equal(t, 10, e.Score())
	assert.False(t, e.LastCleared())

	board := e.Board()
	assert.Equal(t, 4, board.Filled())
	assert.Equal(t, puzzle.Cyan, board.At(2, 1))

	_, ok := e.Piece(piece.Id)
	assert.False(t, ok)
	assert.Len(t, e.Pieces(), 2)
}

func TestCompletingARow(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	require.NoError(t, e.Start())
	pieces := e.Pieces()

	first, err := e.Place(pieces[0].Id, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, first.ScoreDelta)
	assert.Equal(t, 10, e.Score())

	second, err := e.Place(pieces[1].Id, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 160, second.ScoreDelta)
	assert.Equal(t, 150, second.LineScore)
	assert.True(t, second.LinesCleared())
	assert.Equal(t, []int{0}, second.Cleared.Rows)
	assert.Empty(t, second.Cleared.Cols)
	assert.Equal(t, 170, e.Score())
	assert.True(t, e.LastCleared())

	board := e.Board()
	assert.True(t, board.IsEmpty())
}

func TestInvalidMovesLeaveSessionUnchanged(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	require.NoError(t, e.Start())
	pieces := e.Pieces()
	_, err := e.Place(pieces[0].Id, 4, 0)
	require.NoError(t, err)

	before := e.Snapshot()

	tests := []struct {
		name     string
		id       puzzle.PieceId
		row, col int
		err      error
	}{
		{"already played", pieces[0].Id, 0, 0, puzzle.ErrUnknownPiece},
		{"never issued", puzzle.PieceId(1 << 62), 0, 0, puzzle.ErrUnknownPiece},
		{"off the right edge", pieces[1].Id, 0, 5, puzzle.ErrIllegalPlacement},
		{"negative anchor", pieces[1].Id, -1, 0, puzzle.ErrIllegalPlacement},
		{"overlapping", pieces[1].Id, 4, 2, puzzle.ErrIllegalPlacement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, e.CanPlace(tt.id, tt.row, tt.col))
			_, err := e.Place(tt.id, tt.row, tt.col)
			assert.ErrorIs(t, err, tt.err)
			assert.ErrorIs(t, err, puzzle.ErrInvalidMove)
			assert.Equal(t, before, e.Snapshot())
		})
	}
}

func TestRefillAfterLastPiece(t *testing.T) {
	e := singleTemplateEngine("mono", monoShape)
	require.NoError(t, e.Start())

	first := e.Pieces()
	issued := map[puzzle.PieceId]bool{}
	for _, id := range pieceIds(first) {
		issued[id] = true
	}

	var last puzzle.PlaceResult
	for i, p := range first {
		result, err := e.Place(p.Id, 0, i)
		require.NoError(t, err)
		assert.Equal(t, i == len(first)-1, result.Refilled)
		last = result
	}
	assert.True(t, last.Refilled)

	next := e.Pieces()
	require.Len(t, next, 3)
	for _, p := range next {
		assert.False(t, issued[p.Id], "refilled piece reuses id %s", p.Id)
		issued[p.Id] = true
	}
	assert.Len(t, issued, 6)
}

func TestPreview(t *testing.T) {
	block := puzzle.MustShape("###", "###", "###")
	e := singleTemplateEngine("block3", block)

	_, err := e.Preview(1, 0, 0)
	assert.ErrorIs(t, err, puzzle.ErrNotStarted)

	require.NoError(t, e.Start())
	pieces := e.Pieces()

	p, err := e.Preview(pieces[0].Id, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Row)
	assert.Equal(t, 0, p.Col)
	assert.True(t, p.Valid)

	_, err = e.Place(pieces[0].Id, 5, 0)
	require.NoError(t, err)

	p, err = e.Preview(pieces[1].Id, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, p.Row)
	assert.Equal(t, 1, p.Col)
	assert.False(t, p.Valid)

	// Previewing never changes the session.
	assert.Equal(t, 10, e.Score())
	assert.Len(t, e.Pieces(), 2)

	_, err = e.Preview(pieces[0].Id, 0, 0)
	assert.ErrorIs(t, err, puzzle.ErrUnknownPiece)
}

func TestScoreListener(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	var changes []puzzle.ScoreChange
	e.OnScoreChange(func(c puzzle.ScoreChange) {
		changes = append(changes, c)
	})

	require.NoError(t, e.Start())
	pieces := e.Pieces()
	_, err := e.Place(pieces[0].Id, 0, 0)
	require.NoError(t, err)
	_, err = e.Place(pieces[1].Id, 0, 4)
	require.NoError(t, err)
	require.NoError(t, e.Reset())

	assert.Equal(t, []puzzle.ScoreChange{
		{Previous: 0, Current: 10},
		{Previous: 10, Current: 170},
		{Previous: 170, Current: 0, Reset: true},
	}, changes)
}

func TestStats(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	require.NoError(t, e.Start())
	pieces := e.Pieces()

	_, err := e.Place(pieces[0].Id, 0, 0)
	require.NoError(t, err)
	_, err = e.Place(pieces[1].Id, 0, 4)
	require.NoError(t, err)

	assert.Equal(t, puzzle.Stats{
		Placements:   2,
		LinesCleared: 1,
		Combos:       0,
		BestMove:     160,
	}, e.Stats())

	require.NoError(t, e.Reset())
	assert.Equal(t, puzzle.Stats{}, e.Stats())
}

func TestComboClear(t *testing.T) {
	e := singleTemplateEngine("I4", i4Shape)
	require.NoError(t, e.Start())

	board := puzzle.MustParseBoard(
		"CCCCCCC.",
		".......C",
		".......C",
		".......C",
		".......C",
		".......C",
		".......C",
		".......C",
	)
	mono := puzzle.NewTestPiece("mono", monoShape, puzzle.Emerald)
	rest := e.Pieces()[1:]
	e.LoadSession(*board, append([]puzzle.Piece{mono}, rest...))

	result, err := e.Place(mono.Id, 0, 7)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, result.Cleared.Rows)
	assert.Equal(t, []int{7}, result.Cleared.Cols)
	assert.True(t, result.Combo)
	assert.Equal(t, 600, result.LineScore)
	assert.Equal(t, 610, result.ScoreDelta)
	assert.Equal(t, 610, e.Score())
	assert.False(t, result.GameOver)

	after := e.Board()
	assert.True(t, after.IsEmpty())
	assert.Equal(t, 1, e.Stats().Combos)
}

func TestGameOverWhenNothingFits(t *testing.T) {
	e := singleTemplateEngine("domino", dominoShape)
	require.NoError(t, e.Start())

	board := puzzle.MustParseBoard(isolatedHoles...)
	mono := puzzle.NewTestPiece("mono", monoShape, puzzle.Emerald)
	pieces := []puzzle.Piece{
		mono,
		puzzle.NewTestPiece("domino", dominoShape, puzzle.Yellow),
		puzzle.NewTestPiece("domino", dominoShape.Rotate(), puzzle.Yellow),
	}
	e.LoadSession(*board, pieces)

	result, err := e.Place(mono.Id, 0, 0)
	require.NoError(t, err)

	assert.False(t, result.LinesCleared())
	assert.Equal(t, 10, result.ScoreDelta)
	assert.True(t, result.GameOver)
	assert.True(t, e.IsGameOver())
	assert.Equal(t, puzzle.GameOver, e.State())

	_, err = e.Place(pieces[1].Id, 1, 3)
	assert.ErrorIs(t, err, puzzle.ErrGameOver)
	assert.ErrorIs(t, err, puzzle.ErrInvalidMove)
	assert.False(t, e.CanPlace(pieces[1].Id, 1, 3))
	assert.Equal(t, 10, e.Score())

	require.NoError(t, e.Reset())
	assert.Equal(t, puzzle.InProgress, e.State())
	assert.Equal(t, 0, e.Score())
}

func TestBatchSizeOption(t *testing.T) {
	e := puzzle.New(puzzle.WithBatchSize(5))
	require.NoError(t, e.Start())
	assert.Len(t, e.Pieces(), 5)
	assert.Equal(t, 5, e.BatchSize())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", puzzle.NotStarted.String())
	assert.Equal(t, "in-progress", puzzle.InProgress.String())
	assert.Equal(t, "game-over", puzzle.GameOver.String())
}
