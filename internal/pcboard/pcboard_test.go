package pcboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func TestPcBoardSetGetRoundTrip(t *testing.T) {
	p := Empty()
	assert.True(t, p.IsEmpty())
	p = p.Set(3, 1, true)
	assert.True(t, p.Get(3, 1))
	assert.Equal(t, 1, p.PopCount())
	p = p.Set(3, 1, false)
	assert.False(t, p.Get(3, 1))
	assert.True(t, p.IsEmpty())
}

func TestPcBoardGetOutOfRangeIsFalse(t *testing.T) {
	p := Empty()
	assert.False(t, p.Get(-1, 0))
	assert.False(t, p.Get(Width, 0))
	assert.False(t, p.Get(0, Height))
}

func TestPcBoardBitsRoundTrip(t *testing.T) {
	p := Empty().Set(0, 0, true).Set(9, 3, true)
	got := FromBits(p.Bits())
	assert.Equal(t, p, got)
}

func TestFromBoardRejectsOccupiedRowsAboveHeight(t *testing.T) {
	b := tetris.NewBoard()
	b.Set(0, Height, true)
	_, ok := FromBoard(&b)
	assert.False(t, ok)
}

func TestFromBoardToBoardRoundTrip(t *testing.T) {
	b := tetris.NewBoard()
	b.Set(2, 0, true)
	b.Set(5, 3, true)
	pc, ok := FromBoard(&b)
	require.True(t, ok)
	back := pc.ToBoard()
	assert.True(t, back.Get(2, 0))
	assert.True(t, back.Get(5, 3))
	assert.False(t, back.Get(0, 0))
}

func TestQuickFilterRequiresMultipleOfFour(t *testing.T) {
	p := Empty().Set(0, 0, true).Set(1, 0, true).Set(2, 0, true)
	assert.False(t, p.QuickFilter())
	p = p.Set(3, 0, true)
	assert.True(t, p.QuickFilter())
}

func TestFirstEmptyCellIsRowMajor(t *testing.T) {
	p := Empty().Set(0, 0, true)
	pt, ok := p.FirstEmptyCell()
	require.True(t, ok)
	assert.Equal(t, tetris.Point{X: 1, Y: 0}, pt)
}

func TestFirstEmptyCellOnFullBoard(t *testing.T) {
	p := Empty()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p = p.Set(x, y, true)
		}
	}
	_, ok := p.FirstEmptyCell()
	assert.False(t, ok)
}

func TestFitsEmptyAndWithCellsFilled(t *testing.T) {
	cells := [4]tetris.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}
	p := Empty()
	assert.True(t, p.FitsEmpty(cells))
	p = p.WithCellsFilled(cells)
	assert.False(t, p.FitsEmpty(cells))
	assert.Equal(t, 4, p.PopCount())
}

func TestFitsEmptyRejectsOutOfBounds(t *testing.T) {
	cells := [4]tetris.Point{{X: -1, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	assert.False(t, Empty().FitsEmpty(cells))
}
