package main

import (
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/plus3/blockfill/internal/highscore"
	"github.com/plus3/blockfill/puzzle"
)

const flashDuration = 180 * time.Millisecond

type flashDoneMsg struct{ seq int }
type soundMsg struct{}

// Model is the bubbletea model for a terminal session. The engine and its
// collaborators are shared pointers, so copies of Model drive the same game.
type Model struct {
	engine *puzzle.Engine
	scores *highscore.Recorder
	sound  *SoundEngine
	logger *slog.Logger

	width    int
	height   int
	selected int
	cursor   puzzle.Anchor
	status   string

	flash    map[puzzle.Anchor]struct{}
	flashSeq int
}

func NewModel(engine *puzzle.Engine, scores *highscore.Recorder, sound *SoundEngine, logger *slog.Logger) Model {
	engine.OnScoreChange(scores.Observe)
	return Model{
		engine: engine,
		scores: scores,
		sound:  sound,
		logger: logger,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = nil
		}
		return m, nil
	case soundMsg:
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.engine.State() {
		case puzzle.NotStarted:
			return m, m.updateMenu(msg)
		case puzzle.InProgress:
			return m, m.updateGame(msg)
		case puzzle.GameOver:
			return m, m.updateGameOver(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ":
		if err := m.engine.Start(); err != nil {
			m.logger.Warn("start", "err", err)
			return nil
		}
		m.newSession()
		return playSound(m.sound, SoundSelect)
	case "m":
		m.toggleMute()
	case "q", "esc":
		return tea.Quit
	}
	return nil
}

func (m *Model) updateGame(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "tab":
		m.selectPiece(m.selected + 1)
		return playSound(m.sound, SoundSelect)
	case "shift+tab":
		m.selectPiece(m.selected - 1)
		return playSound(m.sound, SoundSelect)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(key[0] - '1')
		if idx >= len(m.engine.Pieces()) {
			return nil
		}
		m.selectPiece(idx)
		return playSound(m.sound, SoundSelect)
	case "enter", " ":
		return m.place()
	case "r":
		m.reset()
	case "m":
		m.toggleMute()
	case "q", "esc":
		m.quitToMenu()
	}
	return nil
}

func (m *Model) updateGameOver(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r", "enter":
		m.reset()
		return playSound(m.sound, SoundSelect)
	case "m":
		m.toggleMute()
	case "q", "esc":
		m.quitToMenu()
	}
	return nil
}

// selectedPiece returns the piece under the dock cursor.
func (m *Model) selectedPiece() (puzzle.Piece, bool) {
	pieces := m.engine.Pieces()
	if len(pieces) == 0 {
		return puzzle.Piece{}, false
	}
	return pieces[min(m.selected, len(pieces)-1)], true
}

func (m *Model) selectPiece(idx int) {
	n := len(m.engine.Pieces())
	if n == 0 {
		m.selected = 0
		return
	}
	m.selected = ((idx % n) + n) % n
	m.clampCursor()
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row += dr
	m.cursor.Col += dc
	m.clampCursor()
}

func (m *Model) clampCursor() {
	piece, ok := m.selectedPiece()
	if !ok {
		return
	}
	m.cursor.Row, m.cursor.Col = puzzle.ClampAnchor(piece.Shape, m.cursor.Row, m.cursor.Col)
}

func (m *Model) place() tea.Cmd {
	piece, ok := m.selectedPiece()
	if !ok {
		return nil
	}
	result, err := m.engine.Place(piece.Id, m.cursor.Row, m.cursor.Col)
	if err != nil {
		m.logger.Debug("rejected placement", "piece", piece.Id, "row", m.cursor.Row, "col", m.cursor.Col, "err", err)
		if errors.Is(err, puzzle.ErrIllegalPlacement) {
			m.status = "doesn't fit there"
		}
		return playSound(m.sound, SoundInvalid)
	}

	m.status = placementStatus(result)
	if result.Refilled {
		m.selected = 0
	} else {
		m.selected = min(m.selected, len(m.engine.Pieces())-1)
	}
	m.clampCursor()

	cmds := []tea.Cmd{playSound(m.sound, soundForPlacement(result.Cleared.Len(), result.Combo, result.GameOver))}
	if result.LinesCleared() {
		m.flash = make(map[puzzle.Anchor]struct{})
		for at := range result.Cleared.Cells() {
			m.flash[at] = struct{}{}
		}
		m.flashSeq++
		cmds = append(cmds, flashDoneCmd(m.flashSeq))
	}
	if result.GameOver {
		m.logger.Info("game over", "score", m.engine.Score(), "best", m.scores.Best())
	}
	return tea.Batch(cmds...)
}

func (m *Model) reset() {
	if err := m.engine.Reset(); err != nil {
		m.logger.Warn("reset", "err", err)
		return
	}
	m.newSession()
}

func (m *Model) quitToMenu() {
	m.engine.Quit()
	m.scores.Forget()
	m.newSession()
}

func (m *Model) newSession() {
	m.selected = 0
	m.cursor = puzzle.Anchor{}
	m.status = ""
	m.flash = nil
	m.clampCursor()
}

func (m *Model) toggleMute() {
	if m.sound.ToggleMute() {
		m.status = "sound off"
	} else {
		m.status = "sound on"
	}
}

func placementStatus(result puzzle.PlaceResult) string {
	switch {
	case result.GameOver:
		return "no moves left"
	case result.Combo:
		return "combo!"
	case result.Cleared.Len() > 1:
		return "multi clear!"
	case result.LinesCleared():
		return "clear!"
	}
	return ""
}

func flashDoneCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} })
}

func playSound(engine *SoundEngine, event SoundEvent) tea.Cmd {
	return func() tea.Msg {
		if engine != nil {
			engine.Play(event)
		}
		return soundMsg{}
	}
}
