package puzzle_test

import (
	"testing"

	"github.com/plus3/blockfill/puzzle"
)

func BenchmarkIsLegalPlacement(b *testing.B) {
	board := puzzle.MustParseBoard(checkerRows...)
	shape := puzzle.MustShape("###", "###", "###")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.IsLegalPlacement(shape, i%6, (i/6)%6)
	}
}

func BenchmarkAnyPlacementExistsNoMoves(b *testing.B) {
	board := puzzle.MustParseBoard(isolatedHoles...)
	pieces := []puzzle.Piece{
		puzzle.NewTestPiece("domino", dominoShape, puzzle.Yellow),
		puzzle.NewTestPiece("domino", dominoShape.Rotate(), puzzle.Yellow),
		puzzle.NewTestPiece("I4", i4Shape, puzzle.Cyan),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = puzzle.AnyPlacementExists(board, pieces)
	}
}

func BenchmarkFindFullLines(b *testing.B) {
	board := puzzle.MustParseBoard(isolatedHoles...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = puzzle.FindFullLines(board)
	}
}

func BenchmarkGenerateBatch(b *testing.B) {
	catalog := puzzle.NewCatalog(nil, puzzle.WithRandom(puzzle.NewRandom(1, 2)), puzzle.WithMirroring(true))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = catalog.GenerateBatch(3)
	}
}

func BenchmarkPlaceAndReset(b *testing.B) {
	e := singleTemplateEngine("mono", monoShape)
	if err := e.Start(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pieces := e.Pieces()
		if _, err := e.Place(pieces[0].Id, 0, 0); err != nil {
			b.Fatal(err)
		}
		if err := e.Reset(); err != nil {
			b.Fatal(err)
		}
	}
}
