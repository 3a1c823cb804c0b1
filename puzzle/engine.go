package puzzle

import (
	"fmt"
	"log/slog"
)

// DefaultBatchSize is the number of pieces dealt per refill.
const DefaultBatchSize = 3

// State is the engine's lifecycle state.
type State int

const (
	NotStarted State = iota
	InProgress
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case InProgress:
		return "in-progress"
	case GameOver:
		return "game-over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats accumulates per-session counters.
type Stats struct {
	Placements   int
	LinesCleared int
	Combos       int
	BestMove     int
}

// ScoreChange is delivered to score listeners after every change.
type ScoreChange struct {
	Previous int
	Current  int
	Reset    bool
}

// PlaceResult describes one accepted placement.
type PlaceResult struct {
	Piece      Piece
	Row        int
	Col        int
	Cleared    ClearSet
	LineScore  int
	ScoreDelta int
	Combo      bool
	Refilled   bool
	GameOver   bool
}

// LinesCleared reports whether the placement cleared at least one line.
func (r PlaceResult) LinesCleared() bool {
	return !r.Cleared.Empty()
}

// Preview is the read-only answer to "where would this piece land".
type Preview struct {
	Piece Piece
	Row   int
	Col   int
	Valid bool
}

// Snapshot is a copy of everything a renderer needs after a command.
type Snapshot struct {
	Board       Board
	Pieces      []Piece
	Score       int
	State       State
	LastCleared bool
	Stats       Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog sets the piece source.
func WithCatalog(c *Catalog) Option {
	return func(e *Engine) {
		if c != nil {
			e.catalog = c
		}
	}
}

// WithBatchSize sets how many pieces are dealt per refill.
func WithBatchSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithLogger sets the structured logger used for debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine owns one game session and is the only thing that mutates it.
// It is not safe for concurrent use; callers drive it from a single loop.
type Engine struct {
	catalog   *Catalog
	batchSize int
	logger    *slog.Logger
	listeners []func(ScoreChange)

	state       State
	board       Board
	active      *ActiveSet
	score       int
	lastCleared bool
	stats       Stats
}

// New creates an engine in the NotStarted state.
func New(opts ...Option) *Engine {
	e := &Engine{
		batchSize: DefaultBatchSize,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.catalog == nil {
		e.catalog = NewCatalog(nil)
	}
	e.active = newActiveSet(e.batchSize)
	return e
}

// OnScoreChange registers fn to run synchronously after every score change,
// including the drop to zero on Reset.
func (e *Engine) OnScoreChange(fn func(ScoreChange)) {
	e.listeners = append(e.listeners, fn)
}

// Start begins the first session. It is only valid from NotStarted.
func (e *Engine) Start() error {
	if e.state != NotStarted {
		return fmt.Errorf("start from %s: %w", e.state, ErrAlreadyStarted)
	}
	e.newSession()
	e.logger.Debug("game started", "pieces", e.active.Len())
	return nil
}

// Reset discards the current session and starts a new one.
// It is valid from InProgress or GameOver.
func (e *Engine) Reset() error {
	if e.state == NotStarted {
		return fmt.Errorf("reset: %w", ErrNotStarted)
	}
	final := e.score
	e.newSession()
	e.logger.Debug("game reset", "previous_score", final)
	return nil
}

// Quit ends the session and returns to NotStarted.
func (e *Engine) Quit() {
	previous := e.score
	e.state = NotStarted
	e.board = Board{}
	e.active.Replace(nil)
	e.score = 0
	e.lastCleared = false
	e.stats = Stats{}
	if previous != 0 {
		e.notify(ScoreChange{Previous: previous, Reset: true})
	}
}

func (e *Engine) newSession() {
	previous := e.score
	e.board = Board{}
	e.score = 0
	e.lastCleared = false
	e.stats = Stats{}
	e.active.Replace(e.catalog.GenerateBatch(e.batchSize))
	e.state = InProgress
	if previous != 0 {
		e.notify(ScoreChange{Previous: previous, Reset: true})
	}
}

// Place puts the held piece id with its top-left at (row, col). Any
// rejection wraps ErrInvalidMove and leaves the session unchanged.
func (e *Engine) Place(id PieceId, row, col int) (PlaceResult, error) {
	if err := e.checkPlaying(); err != nil {
		return PlaceResult{}, fmt.Errorf("place %s: %w", id, err)
	}
	piece, ok := e.active.Get(id)
	if !ok {
		return PlaceResult{}, fmt.Errorf("place %s: %w", id, ErrUnknownPiece)
	}
	if err := e.board.Place(piece.Shape, row, col, piece.Color); err != nil {
		return PlaceResult{}, fmt.Errorf("place %s: %w", id, err)
	}

	result := PlaceResult{Piece: piece, Row: row, Col: col}

	// Score from the full board before the lines are emptied.
	result.Cleared = FindFullLines(&e.board)
	if !result.Cleared.Empty() {
		result.LineScore = result.Cleared.Score()
		result.Combo = result.Cleared.Combo()
		e.board.Clear(result.Cleared)
	}
	result.ScoreDelta = result.LineScore + PlacementBonus

	previous := e.score
	e.score += result.ScoreDelta
	e.lastCleared = result.LinesCleared()

	e.active.Remove(id)
	if e.active.Len() == 0 {
		e.active.Replace(e.catalog.GenerateBatch(e.batchSize))
		result.Refilled = true
	}

	if !AnyPlacementExists(&e.board, e.active.Pieces()) {
		e.state = GameOver
		result.GameOver = true
	}

	e.stats.Placements++
	e.stats.LinesCleared += result.Cleared.Len()
	if result.Combo {
		e.stats.Combos++
	}
	e.stats.BestMove = max(e.stats.BestMove, result.ScoreDelta)

	e.logger.Debug("piece placed",
		"piece", id,
		"template", piece.Template,
		"row", row,
		"col", col,
		"lines", result.Cleared.Len(),
		"delta", result.ScoreDelta,
		"score", e.score,
	)
	if result.GameOver {
		e.logger.Debug("game over", "score", e.score, "placements", e.stats.Placements)
	}

	e.notify(ScoreChange{Previous: previous, Current: e.score})
	return result, nil
}

// Preview centers the held piece id on the pointer cell, clamps it onto the
// board, and reports whether it would fit there. It never mutates state.
func (e *Engine) Preview(id PieceId, pointerRow, pointerCol int) (Preview, error) {
	if err := e.checkPlaying(); err != nil {
		return Preview{}, err
	}
	piece, ok := e.active.Get(id)
	if !ok {
		return Preview{}, fmt.Errorf("preview %s: %w", id, ErrUnknownPiece)
	}
	row, col := CenteredAnchor(piece.Shape, pointerRow, pointerCol)
	return Preview{
		Piece: piece,
		Row:   row,
		Col:   col,
		Valid: e.board.IsLegalPlacement(piece.Shape, row, col),
	}, nil
}

// CanPlace reports whether Place(id, row, col) would succeed.
func (e *Engine) CanPlace(id PieceId, row, col int) bool {
	if e.checkPlaying() != nil {
		return false
	}
	piece, ok := e.active.Get(id)
	return ok && e.board.IsLegalPlacement(piece.Shape, row, col)
}

func (e *Engine) checkPlaying() error {
	switch e.state {
	case NotStarted:
		return ErrNotStarted
	case GameOver:
		return ErrGameOver
	}
	return nil
}

func (e *Engine) notify(change ScoreChange) {
	for _, fn := range e.listeners {
		fn(change)
	}
}

// Board returns a copy of the board.
func (e *Engine) Board() Board { return e.board }

// Pieces returns the active set in dock order.
func (e *Engine) Pieces() []Piece { return e.active.Pieces() }

// Piece returns the held piece with the given id.
func (e *Engine) Piece(id PieceId) (Piece, bool) { return e.active.Get(id) }

// Score returns the current session score.
func (e *Engine) Score() int { return e.score }

// State returns the lifecycle state.
func (e *Engine) State() State { return e.state }

// IsGameOver reports whether no held piece fits anywhere.
func (e *Engine) IsGameOver() bool { return e.state == GameOver }

// LastCleared reports whether the most recent placement cleared lines.
func (e *Engine) LastCleared() bool { return e.lastCleared }

// Stats returns the session counters.
func (e *Engine) Stats() Stats { return e.stats }

// BatchSize returns the number of pieces dealt per refill.
func (e *Engine) BatchSize() int { return e.batchSize }

// Catalog returns the engine's piece source.
func (e *Engine) Catalog() *Catalog { return e.catalog }

// Snapshot copies the observable session state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board:       e.board,
		Pieces:      e.active.Pieces(),
		Score:       e.score,
		State:       e.state,
		LastCleared: e.lastCleared,
		Stats:       e.stats,
	}
}
