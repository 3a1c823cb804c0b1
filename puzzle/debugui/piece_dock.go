package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfill/puzzle"
)

// PieceInfo is one row of the piece dock table.
type PieceInfo struct {
	Piece      puzzle.Piece
	Cells      int
	Placements int
}

// PieceDockWindow lists the active set with the number of legal anchors each
// piece currently has.
type PieceDockWindow struct {
	selection     *Selection
	sortColumn    int
	sortAscending bool
}

func NewPieceDockWindow(selection *Selection) *PieceDockWindow {
	return &PieceDockWindow{
		selection:     selection,
		sortAscending: true,
	}
}

func (w *PieceDockWindow) Render(engine *puzzle.Engine) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 220), imgui.CondOnce)
	if !imgui.BeginV("Piece Dock", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := engine.Board()
	rows := CollectPieces(&board, engine.Pieces())

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("PieceTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Id")
		imgui.TableSetupColumn("Template")
		imgui.TableSetupColumn("Size")
		imgui.TableSetupColumn("Cells")
		imgui.TableSetupColumn("Anchors")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			w.sortColumn = int(spec.ColumnIndex())
			w.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		SortPieces(rows, w.sortColumn, w.sortAscending)

		for _, row := range rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			selected := w.selection.Id == row.Piece.Id
			if imgui.SelectableBoolV(row.Piece.Id.String(), selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				w.selection.Id = row.Piece.Id
			}

			imgui.TableNextColumn()
			imgui.PushStyleColorVec4(imgui.ColText, colorVec4(row.Piece.Color))
			imgui.Text(row.Piece.Template)
			imgui.PopStyleColor()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%dx%d", row.Piece.Shape.Rows(), row.Piece.Shape.Cols()))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Cells))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.Placements))
		}

		imgui.EndTable()
	}

	if piece, ok := engine.Piece(w.selection.Id); ok && imgui.TreeNodeStr("Shape") {
		for _, line := range strings.Split(piece.Shape.String(), "\n") {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// CollectPieces builds dock rows in dock order.
func CollectPieces(board *puzzle.Board, pieces []puzzle.Piece) []PieceInfo {
	rows := make([]PieceInfo, 0, len(pieces))
	for _, p := range pieces {
		rows = append(rows, PieceInfo{
			Piece:      p,
			Cells:      p.Shape.Count(),
			Placements: puzzle.CountPlacements(board, p.Shape),
		})
	}
	return rows
}

// SortPieces orders dock rows by table column.
func SortPieces(rows []PieceInfo, column int, ascending bool) {
	slices.SortStableFunc(rows, func(a, b PieceInfo) int {
		var c int
		switch column {
		case 1:
			c = strings.Compare(a.Piece.Template, b.Piece.Template)
		case 2:
			c = cmp.Compare(a.Piece.Shape.Rows()*a.Piece.Shape.Cols(), b.Piece.Shape.Rows()*b.Piece.Shape.Cols())
		case 3:
			c = cmp.Compare(a.Cells, b.Cells)
		case 4:
			c = cmp.Compare(a.Placements, b.Placements)
		default:
			c = cmp.Compare(a.Piece.Id, b.Piece.Id)
		}
		if !ascending {
			return -c
		}
		return c
	})
}
