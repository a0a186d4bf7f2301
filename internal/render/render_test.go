package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func TestBoardRendersBorderAndRows(t *testing.T) {
	b := tetris.NewBoard()
	b.Set(0, 0, true)
	out := Board(&b, nil, nil)
	assert.Contains(t, out, "+")
	assert.Equal(t, tetris.BoardVisibleHeight+2, strings.Count(out, "\n")+1)
}

func TestPieceRendersOneLinePerShapeRow(t *testing.T) {
	out := Piece(tetris.PieceO)
	assert.Equal(t, tetris.PieceShapeSize, strings.Count(out, "\n"))
}

func TestGameRendersBoardAndQueue(t *testing.T) {
	g := tetris.NewGameFromBoard(tetris.NewBoard(), tetris.PieceT, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 3)
	out := Game(&g)
	assert.Contains(t, out, "Next:")
	assert.Contains(t, out, "Hold:")
	assert.Contains(t, out, "(empty)")
}

func TestGameRendersHoldPieceWhenPresent(t *testing.T) {
	g := tetris.NewGameFromBoard(tetris.NewBoard(), tetris.PieceT, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 1)
	g.HasHold = true
	g.Hold = tetris.PieceI
	out := Game(&g)
	assert.NotContains(t, out, "(empty)")
}
