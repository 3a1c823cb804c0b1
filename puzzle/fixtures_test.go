package puzzle_test

import "github.com/plus3/blockfill/puzzle"

// fixedRandom always answers the same value, clamped into range.
type fixedRandom int

func (f fixedRandom) IntN(n int) int {
	return min(int(f), n-1)
}

// scriptedRandom replays values in order, wrapping around.
type scriptedRandom struct {
	values []int
	next   int
}

func (s *scriptedRandom) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

var (
	monoShape   = puzzle.MustShape("#")
	dominoShape = puzzle.MustShape("##")
	i4Shape     = puzzle.MustShape("####")
)

// singleTemplateEngine deals only the given shape, never rotated.
func singleTemplateEngine(name string, shape puzzle.Shape) *puzzle.Engine {
	catalog := puzzle.NewCatalog(
		[]puzzle.Template{{Name: name, Shape: shape, Color: puzzle.Cyan}},
		puzzle.WithRandom(fixedRandom(0)),
	)
	return puzzle.New(puzzle.WithCatalog(catalog))
}

func pieceIds(pieces []puzzle.Piece) []puzzle.PieceId {
	ids := make([]puzzle.PieceId, len(pieces))
	for i, p := range pieces {
		ids[i] = p.Id
	}
	return ids
}
