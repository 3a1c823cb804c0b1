package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/plus3/blockfill/puzzle"
)

const cellText = "  "

var (
	accentColor = lipgloss.Color("#facc15")
	textColor   = lipgloss.Color("250")
	borderColor = lipgloss.Color("#475569")

	titleStyle   = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(textColor)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	boardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	slotStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(borderColor).Padding(0, 1)
	activeSlot   = slotStyle.BorderForeground(accentColor)
	flashStyle   = lipgloss.NewStyle().Background(lipgloss.Color("15"))
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func hexColor(c puzzle.Color) lipgloss.Color {
	rgb := c.RGB()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
}

func cellStyle(c puzzle.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(hexColor(c))
}

func (m Model) View() string {
	var content string
	switch m.engine.State() {
	case puzzle.NotStarted:
		content = viewMenu(m)
	default:
		content = viewGame(m)
	}
	return center(m.width, m.height, content)
}

func viewMenu(m Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("BLOCKFILL"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("High score: %d", m.scores.Best())))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Enter to play, m to toggle sound, q to quit"))
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	return b.String()
}

func viewGame(m Model) string {
	board := renderBoard(m)
	info := renderInfo(m)
	top := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", info)
	return lipgloss.JoinVertical(lipgloss.Left, top, "", renderDock(m), "", renderHelp(m))
}

// renderBoard draws the grid with the selected piece ghosted at the cursor.
func renderBoard(m Model) string {
	board := m.engine.Board()

	ghost := map[puzzle.Anchor]bool{}
	valid := false
	piece, ok := m.selectedPiece()
	if ok && m.engine.State() == puzzle.InProgress {
		valid = m.engine.CanPlace(piece.Id, m.cursor.Row, m.cursor.Col)
		for off := range piece.Shape.Cells() {
			ghost[puzzle.Anchor{Row: m.cursor.Row + off.Row, Col: m.cursor.Col + off.Col}] = true
		}
	}

	var b strings.Builder
	for r := range puzzle.Size {
		for c := range puzzle.Size {
			at := puzzle.Anchor{Row: r, Col: c}
			b.WriteString(renderCell(board.At(r, c), at, m.flash, ghost[at], valid, piece.Color))
		}
		if r < puzzle.Size-1 {
			b.WriteString("\n")
		}
	}
	return boardStyle.Render(b.String())
}

func renderCell(filled puzzle.Color, at puzzle.Anchor, flash map[puzzle.Anchor]struct{}, ghost, valid bool, ghostColor puzzle.Color) string {
	if _, ok := flash[at]; ok {
		return flashStyle.Render(cellText)
	}
	switch {
	case ghost && valid:
		return lipgloss.NewStyle().Foreground(hexColor(ghostColor)).Render("▓▓")
	case ghost && filled.Filled():
		return cellStyle(filled).Inherit(invalidStyle).Render("><")
	case ghost:
		return invalidStyle.Render("░░")
	}
	return cellStyle(filled).Render(cellText)
}

func renderInfo(m Model) string {
	stats := m.engine.Stats()
	lines := []string{
		titleStyle.Render("BLOCKFILL"),
		"",
		fmt.Sprintf("Score  %d", m.engine.Score()),
		fmt.Sprintf("Best   %d", m.scores.Best()),
		"",
		helpStyle.Render(fmt.Sprintf("Moves  %d", stats.Placements)),
		helpStyle.Render(fmt.Sprintf("Lines  %d", stats.LinesCleared)),
		helpStyle.Render(fmt.Sprintf("Combos %d", stats.Combos)),
	}
	if m.status != "" {
		lines = append(lines, "", titleStyle.Render(m.status))
	}
	if m.engine.IsGameOver() {
		lines = append(lines, "", warningStyle.Render("GAME OVER"))
		if m.scores.NewRecord() {
			lines = append(lines, titleStyle.Render("new high score!"))
		}
	}
	if m.sound.Muted() {
		lines = append(lines, "", helpStyle.Render("muted"))
	}
	return strings.Join(lines, "\n")
}

// renderDock lays the active pieces out side by side.
func renderDock(m Model) string {
	pieces := m.engine.Pieces()
	slots := make([]string, 0, len(pieces))
	for i, p := range pieces {
		style := slotStyle
		if i == m.selected {
			style = activeSlot
		}
		label := helpStyle.Render(fmt.Sprintf("%d", i+1))
		slots = append(slots, style.Render(lipgloss.JoinVertical(lipgloss.Center, renderMiniPiece(p), label)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, slots...)
}

func renderMiniPiece(p puzzle.Piece) string {
	fill := cellStyle(p.Color).Render(cellText)
	var b strings.Builder
	for r := range p.Shape.Rows() {
		for c := range p.Shape.Cols() {
			if p.Shape.At(r, c) {
				b.WriteString(fill)
			} else {
				b.WriteString(cellText)
			}
		}
		if r < p.Shape.Rows()-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderHelp(m Model) string {
	if m.engine.IsGameOver() {
		return helpStyle.Render("r play again  m sound  q menu")
	}
	return helpStyle.Render("arrows move  1-3/tab pick  enter place  r reset  m sound  q menu")
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
