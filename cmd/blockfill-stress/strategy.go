package main

import (
	"fmt"

	"github.com/plus3/blockfill/puzzle"
)

// Move is a placement chosen by a Strategy.
type Move struct {
	Id       puzzle.PieceId
	Row, Col int
}

// Strategy picks the next placement for a running game. It reports false
// only when no active piece fits anywhere.
type Strategy interface {
	Name() string
	Choose(board *puzzle.Board, pieces []puzzle.Piece) (Move, bool)
}

func NewStrategy(name string) (Strategy, error) {
	switch name {
	case "first":
		return FirstFit{}, nil
	case "greedy":
		return Greedy{}, nil
	}
	return nil, fmt.Errorf("unknown strategy %q (want first|greedy)", name)
}

// FirstFit plays the first legal anchor of the first piece that fits, in dock
// order and row-major anchor order.
type FirstFit struct{}

func (FirstFit) Name() string { return "first" }

func (FirstFit) Choose(board *puzzle.Board, pieces []puzzle.Piece) (Move, bool) {
	for _, p := range pieces {
		for at := range puzzle.LegalAnchors(board, p.Shape) {
			return Move{Id: p.Id, Row: at.Row, Col: at.Col}, true
		}
	}
	return Move{}, false
}

// Greedy simulates every legal placement on a copy of the board and keeps the
// one that scores most, breaking ties by the emptiest resulting board.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Choose(board *puzzle.Board, pieces []puzzle.Piece) (Move, bool) {
	var (
		best      Move
		found     bool
		bestScore int
		bestFill  int
	)
	for _, p := range pieces {
		for at := range puzzle.LegalAnchors(board, p.Shape) {
			sim := *board
			if err := sim.Place(p.Shape, at.Row, at.Col, p.Color); err != nil {
				continue
			}
			cleared := puzzle.FindFullLines(&sim)
			sim.Clear(cleared)
			score, fill := cleared.Score(), sim.Filled()
			if !found || score > bestScore || (score == bestScore && fill < bestFill) {
				best = Move{Id: p.Id, Row: at.Row, Col: at.Col}
				bestScore, bestFill, found = score, fill, true
			}
		}
	}
	return best, found
}
