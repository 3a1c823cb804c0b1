package puzzle

const (
	// LinePoints is awarded per cleared row or column.
	LinePoints = 150
	// ComboMultiplier applies when more than one line clears at once.
	ComboMultiplier = 2
	// PlacementBonus is awarded for every successful placement.
	PlacementBonus = 10
)

// ClearSet lists the full rows and columns found on one board snapshot.
type ClearSet struct {
	Rows []int
	Cols []int
}

// Len returns the total number of full lines.
func (s ClearSet) Len() int {
	return len(s.Rows) + len(s.Cols)
}

// Empty reports whether there is nothing to clear.
func (s ClearSet) Empty() bool {
	return s.Len() == 0
}

// Combo reports whether the set scores the combo bonus.
func (s ClearSet) Combo() bool {
	return s.Len() > 1
}

// Score returns the line-clear points for the set.
func (s ClearSet) Score() int {
	return ScoreFor(len(s.Rows), len(s.Cols))
}

// Cells iterates every coordinate the set will clear. A cell at the
// intersection of a full row and a full column is yielded once.
func (s ClearSet) Cells() func(yield func(Anchor) bool) {
	return func(yield func(Anchor) bool) {
		var rowFull [Size]bool
		for _, r := range s.Rows {
			if r < 0 || r >= Size {
				continue
			}
			rowFull[r] = true
			for c := range Size {
				if !yield(Anchor{Row: r, Col: c}) {
					return
				}
			}
		}
		for _, c := range s.Cols {
			for r := range Size {
				if rowFull[r] {
					continue
				}
				if !yield(Anchor{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// FindFullLines returns the rows and columns of b whose every cell is
// occupied. Rows and columns are evaluated against the same snapshot.
func FindFullLines(b *Board) ClearSet {
	var set ClearSet
	for r := range Size {
		full := true
		for c := range Size {
			if !b.cells[r][c].Filled() {
				full = false
				break
			}
		}
		if full {
			set.Rows = append(set.Rows, r)
		}
	}
	for c := range Size {
		full := true
		for r := range Size {
			if !b.cells[r][c].Filled() {
				full = false
				break
			}
		}
		if full {
			set.Cols = append(set.Cols, c)
		}
	}
	return set
}

// ScoreFor returns the points for clearing rows+cols lines in one move:
// LinePoints per line, multiplied by ComboMultiplier when more than one
// line clears. The placement bonus is not included.
func ScoreFor(rows, cols int) int {
	lines := rows + cols
	if lines <= 0 {
		return 0
	}
	points := lines * LinePoints
	if lines > 1 {
		points *= ComboMultiplier
	}
	return points
}

// Clear empties every row and column listed in set.
func (b *Board) Clear(set ClearSet) {
	for _, r := range set.Rows {
		if r < 0 || r >= Size {
			continue
		}
		b.cells[r] = [Size]Color{}
	}
	for _, c := range set.Cols {
		if c < 0 || c >= Size {
			continue
		}
		for r := range Size {
			b.cells[r][c] = Empty
		}
	}
}
