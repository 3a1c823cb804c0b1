package main

import (
	"flag"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfill/internal/highscore"
	"github.com/plus3/blockfill/internal/logging"
	"github.com/plus3/blockfill/puzzle"
	"github.com/plus3/blockfill/puzzle/debugui"
)

func main() {
	mirror := flag.Bool("mirror", false, "allow mirrored pieces")
	batch := flag.Int("batch", puzzle.DefaultBatchSize, "pieces per batch")
	debugUI := flag.Bool("debug-ui", false, "show the ImGui inspector on startup (toggle with F1)")
	levelStr := flag.String("log-level", "info", "debug|info|warn|error")
	scores := flag.String("scores", "", "high score file (default: user config dir)")
	flag.Parse()

	logger := logging.New(os.Stderr, *levelStr)

	path := *scores
	if path == "" {
		var err error
		if path, err = highscore.DefaultPath(); err != nil {
			logger.Error("resolve high score path", "err", err)
			os.Exit(1)
		}
	}
	store, err := highscore.Open(path)
	if err != nil {
		logger.Warn("high score file unreadable, starting from zero", "path", path, "err", err)
	}

	catalog := puzzle.NewCatalog(nil, puzzle.WithMirroring(*mirror))
	engine := puzzle.New(
		puzzle.WithCatalog(catalog),
		puzzle.WithBatchSize(*batch),
		puzzle.WithLogger(logger),
	)

	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow("Blockfill", ScreenWidth, ScreenHeight)
	imgui.CurrentIO().SetIniFilename("")

	overlay := debugui.NewDefaultOverlay(120)
	overlay.Visible = *debugUI

	game := NewGame(engine, store, backend, overlay, logger)

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run game", "err", err)
		os.Exit(1)
	}
}
