package puzzle

import (
	"fmt"
	"strings"
)

// Size is the side length of the square board.
const Size = 8

// Anchor is the board coordinate where a shape's top-left cell goes.
type Anchor struct {
	Row int
	Col int
}

// Board is the 8×8 cell grid. It is a value type: assigning a Board copies
// every cell, which is how snapshots are taken.
type Board struct {
	cells [Size][Size]Color
}

// ParseBoard builds a board from Size text rows. '.' is empty; any other
// byte fills the cell (letters map to a color via their glyph, everything
// else uses Indigo).
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoard, len(rows), Size)
	}
	b := &Board{}
	for r, line := range rows {
		if len(line) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(line), Size)
		}
		for c, ch := range []byte(line) {
			b.cells[r][c] = colorForGlyph(ch)
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixtures. It panics on malformed input.
func MustParseBoard(rows ...string) *Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic("puzzle: " + err.Error())
	}
	return b
}

func colorForGlyph(ch byte) Color {
	if ch == '.' {
		return Empty
	}
	for c := Yellow; int(c) < len(colorNames); c++ {
		if rune(ch) == c.Glyph() {
			return c
		}
	}
	return Indigo
}

// At returns the token at (r, c). Out-of-range coordinates read as Empty.
func (b *Board) At(r, c int) Color {
	if !inBounds(r, c) {
		return Empty
	}
	return b.cells[r][c]
}

// IsEmpty reports whether no cell is occupied.
func (b *Board) IsEmpty() bool {
	return b.Filled() == 0
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c].Filled() {
				n++
			}
		}
	}
	return n
}

// Cells iterates every coordinate with its token in row-major order.
func (b *Board) Cells() func(yield func(Anchor, Color) bool) {
	return func(yield func(Anchor, Color) bool) {
		for r := range Size {
			for c := range Size {
				if !yield(Anchor{Row: r, Col: c}, b.cells[r][c]) {
					return
				}
			}
		}
	}
}

// IsLegalPlacement reports whether every occupied offset of shape, with its
// top-left at (row, col), lands inside the board on an empty cell.
// Unoccupied offsets are never tested.
func (b *Board) IsLegalPlacement(shape Shape, row, col int) bool {
	for off := range shape.Cells() {
		r, c := row+off.Row, col+off.Col
		if !inBounds(r, c) || b.cells[r][c].Filled() {
			return false
		}
	}
	return true
}

// Place writes color into every cell covered by shape at (row, col).
// Legality is re-checked; a rejected placement leaves the board untouched.
func (b *Board) Place(shape Shape, row, col int, color Color) error {
	if !color.Filled() {
		return ErrInvalidColor
	}
	if !b.IsLegalPlacement(shape, row, col) {
		return fmt.Errorf("place at (%d,%d): %w", row, col, ErrIllegalPlacement)
	}
	for off := range shape.Cells() {
		b.cells[row+off.Row][col+off.Col] = color
	}
	return nil
}

// ClampedAnchor is ClampAnchor; it does not depend on board contents.
func (b *Board) ClampedAnchor(shape Shape, row, col int) (int, int) {
	return ClampAnchor(shape, row, col)
}

// ClampAnchor clamps a desired anchor so the shape's bounding box lies
// fully on the board.
func ClampAnchor(shape Shape, row, col int) (int, int) {
	return clamp(row, 0, Size-shape.Rows()), clamp(col, 0, Size-shape.Cols())
}

// CenteredAnchor turns a pointer cell into a preview anchor: the shape is
// centered on the pointer (half extents, floor-divided) and then clamped.
func CenteredAnchor(shape Shape, pointerRow, pointerCol int) (int, int) {
	return ClampAnchor(shape, pointerRow-shape.Rows()/2, pointerCol-shape.Cols()/2)
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := range Size {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range Size {
			sb.WriteRune(b.cells[r][c].Glyph())
		}
	}
	return sb.String()
}

func inBounds(r, c int) bool {
	return r >= 0 && r < Size && c >= 0 && c < Size
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
