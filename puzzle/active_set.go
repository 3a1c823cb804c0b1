package puzzle

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// ActiveSet holds the pieces currently offered to the player, in dock order,
// indexed by id.
type ActiveSet struct {
	order []PieceId
	byId  *intmap.Map[PieceId, Piece]
}

func newActiveSet(capacity int) *ActiveSet {
	return &ActiveSet{
		order: make([]PieceId, 0, capacity),
		byId:  intmap.New[PieceId, Piece](capacity),
	}
}

// Len returns the number of held pieces.
func (s *ActiveSet) Len() int {
	return len(s.order)
}

// Get returns the held piece with the given id.
func (s *ActiveSet) Get(id PieceId) (Piece, bool) {
	return s.byId.Get(id)
}

// Pieces returns the held pieces in dock order.
func (s *ActiveSet) Pieces() []Piece {
	out := make([]Piece, 0, len(s.order))
	for _, id := range s.order {
		p, _ := s.byId.Get(id)
		out = append(out, p)
	}
	return out
}

// Remove drops the piece with the given id, keeping the order of the rest.
func (s *ActiveSet) Remove(id PieceId) (Piece, bool) {
	p, ok := s.byId.Get(id)
	if !ok {
		return Piece{}, false
	}
	s.byId.Del(id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return p, true
}

// Replace swaps the whole set for batch.
func (s *ActiveSet) Replace(batch []Piece) {
	s.byId.Clear()
	s.order = s.order[:0]
	for _, p := range batch {
		s.byId.Put(p.Id, p)
		s.order = append(s.order, p.Id)
	}
}
