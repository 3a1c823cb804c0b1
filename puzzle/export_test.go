package puzzle

// LoadSession replaces the board and active set of a running engine so tests
// can start from a hand-built position.
func (e *Engine) LoadSession(b Board, pieces []Piece) {
	e.board = b
	e.active.Replace(pieces)
}

// NewTestPiece returns a piece with a freshly issued id.
func NewTestPiece(template string, shape Shape, color Color) Piece {
	return Piece{Id: nextPieceId(), Shape: shape, Color: color, Template: template}
}
