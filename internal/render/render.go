// Package render draws static, non-interactive views of a board, a
// piece, and a Game for the print_* and demo commands (§6). Unlike the
// teacher's bubbletea model.go this package never runs a tea.Program:
// every function returns a finished string for one fmt.Println, which
// is all the CLI surface needs.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

var (
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	ghostStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	lockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#DCFFDC"))
)

func pieceStyle(t tetris.PieceType) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch t {
	case tetris.PieceI:
		return base.Foreground(lipgloss.Color("#00FFFF"))
	case tetris.PieceO:
		return base.Foreground(lipgloss.Color("#FFD700"))
	case tetris.PieceT:
		return base.Foreground(lipgloss.Color("#840084"))
	case tetris.PieceS:
		return base.Foreground(lipgloss.Color("#00E632"))
	case tetris.PieceZ:
		return base.Foreground(lipgloss.Color("#FF0000"))
	case tetris.PieceJ:
		return base.Foreground(lipgloss.Color("#0000FF"))
	default:
		return base.Foreground(lipgloss.Color("#FF8C00"))
	}
}

// Board renders b's visible rows (top row first) with the border
// style the teacher uses in its own tetris model. overlay, if
// non-nil, marks active-piece cells over the grid; ghost, if non-nil,
// marks ghost cells.
func Board(b *tetris.Board, overlay map[tetris.Point]tetris.PieceType, ghost map[tetris.Point]bool) string {
	var rows strings.Builder
	top := borderStyle.Render("+" + strings.Repeat("--", tetris.BoardWidth) + "+")
	rows.WriteString(top)
	rows.WriteByte('\n')

	for y := tetris.BoardVisibleHeight - 1; y >= 0; y-- {
		rows.WriteString(borderStyle.Render("|"))
		for x := 0; x < tetris.BoardWidth; x++ {
			pt := tetris.Point{X: x, Y: y}
			switch {
			case overlayHas(overlay, pt):
				rows.WriteString(pieceStyle(overlay[pt]).Render("[]"))
			case ghost != nil && ghost[pt]:
				rows.WriteString(ghostStyle.Render("[]"))
			case b.Get(x, y):
				rows.WriteString(lockedStyle.Render("[]"))
			default:
				rows.WriteString(emptyStyle.Render(" ."))
			}
		}
		rows.WriteString(borderStyle.Render("|"))
		rows.WriteByte('\n')
	}
	rows.WriteString(top)
	return rows.String()
}

func overlayHas(overlay map[tetris.Point]tetris.PieceType, pt tetris.Point) bool {
	if overlay == nil {
		return false
	}
	_, ok := overlay[pt]
	return ok
}

// Piece renders p's 4 cells inside a 4x4 preview box, for queue and
// hold previews.
func Piece(t tetris.PieceType) string {
	info := tetris.GetPieceInfo(t, tetris.RotationSpawn)
	cellSet := map[tetris.Point]bool{}
	for _, c := range info.Cells {
		cellSet[c] = true
	}
	var b strings.Builder
	for y := 0; y < tetris.PieceShapeSize; y++ {
		for x := 0; x < tetris.PieceShapeSize; x++ {
			if cellSet[tetris.Point{X: x, Y: tetris.PieceShapeSize - 1 - y}] {
				b.WriteString(pieceStyle(t).Render("[]"))
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Game renders a full static snapshot: board with the active piece
// and its ghost overlaid, the hold slot, and the upcoming queue.
func Game(g *tetris.Game) string {
	overlay := map[tetris.Point]tetris.PieceType{}
	for _, c := range g.Active.Cells() {
		overlay[c] = g.Active.Type
	}

	ghostPiece := g.Active
	ghostPiece.Y = ghostPiece.GhostY(&g.Board)
	ghost := map[tetris.Point]bool{}
	for _, c := range ghostPiece.Cells() {
		if !overlayHas(overlay, c) {
			ghost[c] = true
		}
	}

	boardView := Board(&g.Board, overlay, ghost)

	var holdView string
	if g.HasHold {
		holdView = labelStyle.Render("Hold:") + "\n" + Piece(g.Hold)
	} else {
		holdView = labelStyle.Render("Hold:") + "\n(empty)"
	}

	var queue strings.Builder
	queue.WriteString(labelStyle.Render("Next:"))
	queue.WriteByte('\n')
	for i, p := range g.Queue.Slice() {
		queue.WriteString(fmt.Sprintf("%d: %s\n", i+1, p))
	}

	side := lipgloss.JoinVertical(lipgloss.Left, holdView, "", queue.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, boardView, "  ", side)
}
