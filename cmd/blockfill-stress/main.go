package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/plus3/blockfill/internal/logging"
	"github.com/plus3/blockfill/puzzle"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the run should last.")
	workers := flag.Int("workers", 4, "Number of goroutines, each playing its own games.")
	seed := flag.Uint64("seed", 0, "Random seed for the piece catalogs (0 picks a random seed).")
	mirror := flag.Bool("mirror", false, "Allow mirrored pieces.")
	batch := flag.Int("batch", puzzle.DefaultBatchSize, "Pieces per batch.")
	strategyName := flag.String("strategy", "greedy", "Placement strategy: first|greedy.")
	maxGames := flag.Int("games", 0, "Stop each worker after this many games (0 = no limit).")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	logger := logging.New(os.Stderr, *levelStr)

	strategy, err := NewStrategy(*strategyName)
	if err != nil {
		logger.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting self-play", "duration", *duration, "workers", *workers, "strategy", strategy.Name())
	report := Run(ctx, Config{
		Duration:  *duration,
		Workers:   *workers,
		Seed:      *seed,
		Mirror:    *mirror,
		BatchSize: *batch,
		Strategy:  strategy,
		MaxGames:  *maxGames,
	}, logger)
	logger.Info("self-play finished", "games", report.Games, "placements", report.Placements)

	fmt.Println("\n\n--- Self-Play Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Error("generate report", "err", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}
