package main

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/plus3/blockfill/puzzle"
)

// Config controls a self-play run.
type Config struct {
	Duration  time.Duration
	Workers   int
	Seed      uint64
	Mirror    bool
	BatchSize int
	Strategy  Strategy
	// MaxGames stops each worker after this many finished games. Zero means
	// run until the duration elapses.
	MaxGames int
}

// workerResult is what a single goroutine collected with its own engine.
type workerResult struct {
	games        int
	placements   int64
	linesCleared int
	combos       int
	bestMove     int
	scores       []int
	latency      []time.Duration
}

// Run plays games on cfg.Workers goroutines, each with a private engine, and
// merges the results into a report.
func Run(ctx context.Context, cfg Config, logger *slog.Logger) *Report {
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}
	workers := max(cfg.Workers, 1)

	report := NewReport(cfg, workers)
	startTime := time.Now()

	results := make([]workerResult, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[w] = runWorker(ctx, cfg, w, logger.With("worker", w))
		}()
	}
	wg.Wait()

	report.TotalTime = time.Since(startTime)
	for _, r := range results {
		report.Merge(r)
	}
	report.Finalize()
	return report
}

func runWorker(ctx context.Context, cfg Config, worker int, logger *slog.Logger) workerResult {
	var rng puzzle.RandomSource
	if cfg.Seed == 0 {
		rng = puzzle.NewRandom(0, 0)
	} else {
		rng = puzzle.NewRandom(cfg.Seed, uint64(worker)+1)
	}
	catalog := puzzle.NewCatalog(nil, puzzle.WithRandom(rng), puzzle.WithMirroring(cfg.Mirror))
	engine := puzzle.New(puzzle.WithCatalog(catalog), puzzle.WithBatchSize(cfg.BatchSize))

	var res workerResult
	if err := engine.Start(); err != nil {
		logger.Error("start", "err", err)
		return res
	}

	for ctx.Err() == nil {
		board := engine.Board()
		move, ok := cfg.Strategy.Choose(&board, engine.Pieces())
		if !ok {
			// Only reachable if the engine missed a game over.
			logger.Error("strategy found no move in a running game", "score", engine.Score())
			break
		}

		start := time.Now()
		result, err := engine.Place(move.Id, move.Row, move.Col)
		res.latency = append(res.latency, time.Since(start))
		if err != nil {
			logger.Error("place", "piece", move.Id, "row", move.Row, "col", move.Col, "err", err)
			break
		}
		res.placements++

		if !result.GameOver {
			continue
		}
		stats := engine.Stats()
		res.games++
		res.scores = append(res.scores, engine.Score())
		res.linesCleared += stats.LinesCleared
		res.combos += stats.Combos
		res.bestMove = max(res.bestMove, stats.BestMove)
		logger.Debug("game finished", "score", engine.Score(), "placements", stats.Placements)

		if cfg.MaxGames > 0 && res.games >= cfg.MaxGames {
			break
		}
		if err := engine.Reset(); err != nil {
			logger.Error("reset", "err", err)
			break
		}
	}
	return res
}
