package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfill/internal/highscore"
	"github.com/plus3/blockfill/internal/logging"
	"github.com/plus3/blockfill/puzzle"
)

func main() {
	mirror := flag.Bool("mirror", false, "allow mirrored pieces")
	batch := flag.Int("batch", puzzle.DefaultBatchSize, "pieces per batch")
	sound := flag.Bool("sound", true, "play sound effects")
	volume := flag.Int("volume", 70, "sound volume in percent")
	logFile := flag.String("log-file", "", "write logs to this file (default: discard)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	scores := flag.String("scores", "", "high score file (default: user config dir)")
	flag.Parse()

	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	logger := logging.New(out, *levelStr)

	if err := run(logger, *mirror, *batch, *sound, *volume, *scores); err != nil {
		logger.Error("program error", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, mirror bool, batch int, sound bool, volume int, scoresPath string) error {
	if scoresPath == "" {
		var err error
		if scoresPath, err = highscore.DefaultPath(); err != nil {
			return fmt.Errorf("resolve high score path: %w", err)
		}
	}
	store, err := highscore.Open(scoresPath)
	if err != nil {
		logger.Warn("high score file unreadable, starting from zero", "path", scoresPath, "err", err)
	}

	soundEngine, err := NewSoundEngine(sound, float64(volume)/100)
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
	}

	engine := puzzle.New(
		puzzle.WithCatalog(puzzle.NewCatalog(nil, puzzle.WithMirroring(mirror))),
		puzzle.WithBatchSize(batch),
		puzzle.WithLogger(logger),
	)
	model := NewModel(engine, highscore.NewRecorder(store, logger), soundEngine, logger)

	logger.Info("blockfill-tui start", "mirror", mirror, "batch", batch, "sound", soundEngine.Available())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
