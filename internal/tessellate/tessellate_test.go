package tessellate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
)

func TestHasTessellationEmptyBoard(t *testing.T) {
	assert.True(t, HasTessellation(pcboard.Empty()))
}

func TestHasTessellationSingleCellIsFalse(t *testing.T) {
	p := pcboard.Empty().Set(0, 0, true)
	assert.False(t, HasTessellation(p))
}

func TestHasTessellationFourCellSquareIsTrue(t *testing.T) {
	p := pcboard.Empty().Set(0, 0, true).Set(1, 0, true).Set(0, 1, true).Set(1, 1, true)
	assert.True(t, HasTessellation(p))
}

func TestEnumerateTessellationsEmptyBoardCoversEveryCell(t *testing.T) {
	results := EnumerateTessellations(pcboard.Empty())
	require.NotEmpty(t, results)
	for _, tess := range results {
		covered := pcboard.Empty()
		for _, pl := range tess {
			cells := pl.Cells()
			require.True(t, covered.FitsEmpty(cells), "placement %+v overlaps an earlier one", pl)
			covered = covered.WithCellsFilled(cells)
		}
		assert.Equal(t, pcboard.Width*pcboard.Height, covered.PopCount(), "tessellation %+v leaves cells uncovered", tess)
	}
}

func TestEnumerateTessellationsIsDeterministic(t *testing.T) {
	a := EnumerateTessellations(pcboard.Empty())
	b := EnumerateTessellations(pcboard.Empty())
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestIsValidRejectsOddPopcount(t *testing.T) {
	p := pcboard.Empty().Set(0, 0, true).Set(1, 0, true).Set(2, 0, true)
	assert.False(t, IsValid(p))
}

func TestIsValidAcceptsFourCellSquare(t *testing.T) {
	p := pcboard.Empty().Set(0, 0, true).Set(1, 0, true).Set(0, 1, true).Set(1, 1, true)
	assert.True(t, IsValid(p))
}
