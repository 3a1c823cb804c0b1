package puzzle

import (
	"strconv"
	"sync/atomic"
)

// PieceId identifies one generated piece. Ids are never reused within a
// process, so the engine can remove exactly the instance that was played.
type PieceId uint64

func (id PieceId) String() string {
	return "piece-" + strconv.FormatUint(uint64(id), 10)
}

var lastPieceId atomic.Uint64

func nextPieceId() PieceId {
	return PieceId(lastPieceId.Add(1))
}

// Piece is a placeable shape held in the active set.
type Piece struct {
	Id       PieceId
	Shape    Shape
	Color    Color
	Template string
}
