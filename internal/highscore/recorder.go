package highscore

import (
	"log/slog"

	"github.com/plus3/blockfill/puzzle"
)

// Recorder submits every score change from an engine to a Store and remembers
// whether the running session has beaten the stored best.
type Recorder struct {
	store     *Store
	logger    *slog.Logger
	newRecord bool
}

// NewRecorder returns a recorder for store. Attach it with
// engine.OnScoreChange(rec.Observe).
func NewRecorder(store *Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Recorder{store: store, logger: logger}
}

func (r *Recorder) Observe(change puzzle.ScoreChange) {
	if change.Reset {
		r.newRecord = false
		return
	}
	improved, err := r.store.Submit(change.Current)
	if err != nil {
		r.logger.Warn("save high score", "path", r.store.Path(), "score", change.Current, "err", err)
	}
	if improved {
		if !r.newRecord {
			r.logger.Info("new high score", "score", change.Current)
		}
		r.newRecord = true
	}
}

// NewRecord reports whether the current session set a new best.
func (r *Recorder) NewRecord() bool {
	return r.newRecord
}

// Forget clears the new-record flag, for example when returning to a menu.
func (r *Recorder) Forget() {
	r.newRecord = false
}

func (r *Recorder) Best() int {
	return r.store.Best()
}
