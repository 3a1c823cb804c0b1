package puzzle

// LegalAnchors iterates every anchor where shape fits on b, scanning rows
// 0..Size-rows and columns 0..Size-cols in row-major order.
func LegalAnchors(b *Board, shape Shape) func(yield func(Anchor) bool) {
	return func(yield func(Anchor) bool) {
		for r := 0; r <= Size-shape.Rows(); r++ {
			for c := 0; c <= Size-shape.Cols(); c++ {
				if b.IsLegalPlacement(shape, r, c) && !yield(Anchor{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// CountPlacements returns how many anchors accept shape on b.
func CountPlacements(b *Board, shape Shape) int {
	n := 0
	for range LegalAnchors(b, shape) {
		n++
	}
	return n
}

// AnyPlacementExists reports whether at least one of pieces fits somewhere
// on b. It stops at the first legal anchor found.
func AnyPlacementExists(b *Board, pieces []Piece) bool {
	for _, p := range pieces {
		for range LegalAnchors(b, p.Shape) {
			return true
		}
	}
	return false
}
