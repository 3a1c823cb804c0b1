package puzzle

import (
	"fmt"
	"strings"
)

// MaxShapeSize bounds both extents of a Shape.
const MaxShapeSize = 5

// Offset is a cell position relative to a shape's top-left corner.
type Offset struct {
	Row int
	Col int
}

// Shape is an immutable occupancy matrix with explicit extents.
// Cells outside rows×cols are always false, so two shapes with the same
// occupancy compare equal with ==.
type Shape struct {
	rows  int
	cols  int
	cells [MaxShapeSize][MaxShapeSize]bool
}

// NewShape parses a shape from text rows where '#' marks an occupied cell
// and '.' an empty one. All rows must have the same length.
func NewShape(rows ...string) (Shape, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}
	matrix := make([][]bool, len(rows))
	for r, line := range rows {
		matrix[r] = make([]bool, len(line))
		for c, ch := range []byte(line) {
			switch ch {
			case '#':
				matrix[r][c] = true
			case '.':
			default:
				return Shape{}, fmt.Errorf("%w: unexpected %q in row %d", ErrInvalidShape, ch, r)
			}
		}
	}
	return ShapeFromMatrix(matrix)
}

// MustShape is NewShape for fixed shape literals. It panics on malformed input.
func MustShape(rows ...string) Shape {
	s, err := NewShape(rows...)
	if err != nil {
		panic("puzzle: " + err.Error())
	}
	return s
}

// ShapeFromMatrix copies a rectangular boolean matrix into a Shape.
func ShapeFromMatrix(matrix [][]bool) (Shape, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}
	rows, cols := len(matrix), len(matrix[0])
	if rows > MaxShapeSize || cols > MaxShapeSize {
		return Shape{}, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrInvalidShape, rows, cols, MaxShapeSize, MaxShapeSize)
	}

	s := Shape{rows: rows, cols: cols}
	occupied := 0
	for r, line := range matrix {
		if len(line) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidShape, r, len(line), cols)
		}
		for c, v := range line {
			s.cells[r][c] = v
			if v {
				occupied++
			}
		}
	}
	if occupied == 0 {
		return Shape{}, ErrEmptyShape
	}
	return s, nil
}

// Rows returns the number of rows in the shape's bounding box.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns in the shape's bounding box.
func (s Shape) Cols() int { return s.cols }

// At reports whether the local offset (r, c) is occupied. Offsets outside
// the bounding box are unoccupied.
func (s Shape) At(r, c int) bool {
	if r < 0 || c < 0 || r >= s.rows || c >= s.cols {
		return false
	}
	return s.cells[r][c]
}

// Count returns the number of occupied cells.
func (s Shape) Count() int {
	n := 0
	for range s.Cells() {
		n++
	}
	return n
}

// Cells iterates the occupied offsets in row-major order.
func (s Shape) Cells() func(yield func(Offset) bool) {
	return func(yield func(Offset) bool) {
		for r := 0; r < s.rows; r++ {
			for c := 0; c < s.cols; c++ {
				if s.cells[r][c] && !yield(Offset{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Rotate returns the shape turned a quarter clockwise: the matrix is
// transposed and each resulting row reversed.
func (s Shape) Rotate() Shape {
	out := Shape{rows: s.cols, cols: s.rows}
	for r := 0; r < out.rows; r++ {
		for c := 0; c < out.cols; c++ {
			out.cells[r][c] = s.cells[s.rows-1-c][r]
		}
	}
	return out
}

// RotateN applies n clockwise quarter turns. Negative n turns counter-clockwise.
func (s Shape) RotateN(n int) Shape {
	n = ((n % 4) + 4) % 4
	for range n {
		s = s.Rotate()
	}
	return s
}

// Mirror returns the shape flipped horizontally.
func (s Shape) Mirror() Shape {
	out := Shape{rows: s.rows, cols: s.cols}
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			out.cells[r][c] = s.cells[r][s.cols-1-c]
		}
	}
	return out
}

// Equal reports whether both shapes have the same extents and occupancy.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// Matrix returns a freshly allocated copy of the occupancy matrix.
func (s Shape) Matrix() [][]bool {
	m := make([][]bool, s.rows)
	for r := range m {
		m[r] = make([]bool, s.cols)
		copy(m[r], s.cells[r][:s.cols])
	}
	return m
}

func (s Shape) String() string {
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.cols; c++ {
			if s.cells[r][c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
