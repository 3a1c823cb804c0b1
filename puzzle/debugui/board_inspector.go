package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfill/puzzle"
)

// BoardInspectorWindow shows the raw cell grid with per-line fill counts.
// Anchors where the selected piece fits are marked with '+'.
type BoardInspectorWindow struct {
	selection *Selection
}

func NewBoardInspectorWindow(selection *Selection) *BoardInspectorWindow {
	return &BoardInspectorWindow{selection: selection}
}

func (w *BoardInspectorWindow) Render(engine *puzzle.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 240), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := engine.Board()
	rowFill, colFill := LineFill(&board)

	var anchors [puzzle.Size][puzzle.Size]bool
	if piece, ok := engine.Piece(w.selection.Id); ok {
		for at := range puzzle.LegalAnchors(&board, piece.Shape) {
			anchors[at.Row][at.Col] = true
		}
		imgui.Text(fmt.Sprintf("Anchors for %s (%s)", piece.Id, piece.Template))
	} else {
		imgui.Text("Select a piece in the dock to show its anchors")
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("BoardTable", puzzle.Size+1, tableFlags, imgui.NewVec2(0, 0), 0) {
		for r := range puzzle.Size {
			imgui.TableNextRow()
			for c := range puzzle.Size {
				imgui.TableNextColumn()
				cell := board.At(r, c)
				switch {
				case cell.Filled():
					imgui.PushStyleColorVec4(imgui.ColText, colorVec4(cell))
					imgui.Text(string(cell.Glyph()))
					imgui.PopStyleColor()
				case anchors[r][c]:
					imgui.Text("+")
				default:
					imgui.Text(".")
				}
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", rowFill[r]))
		}

		imgui.TableNextRow()
		for c := range puzzle.Size {
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", colFill[c]))
		}
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", board.Filled()))

		imgui.EndTable()
	}

	if full := puzzle.FindFullLines(&board); !full.Empty() {
		imgui.BulletText(fmt.Sprintf("Full rows %v, cols %v", full.Rows, full.Cols))
	}

	imgui.End()
}

// LineFill counts occupied cells per row and per column.
func LineFill(board *puzzle.Board) (rows, cols [puzzle.Size]int) {
	for at, color := range board.Cells() {
		if color.Filled() {
			rows[at.Row]++
			cols[at.Col]++
		}
	}
	return rows, cols
}
