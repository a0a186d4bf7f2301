package pcgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
)

func TestBoardsStartsWithEmptyBoard(t *testing.T) {
	boards, err := Boards(context.Background(), 50)
	require.NoError(t, err)
	require.NotEmpty(t, boards)
	assert.Equal(t, pcboard.Empty(), boards[0])
}

func TestBoardsRespectsMaxBoards(t *testing.T) {
	boards, err := Boards(context.Background(), 10)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(boards), 10)
}

func TestBoardsHasNoDuplicates(t *testing.T) {
	boards, err := Boards(context.Background(), 100)
	require.NoError(t, err)

	seen := make(map[uint64]bool, len(boards))
	for _, b := range boards {
		require.False(t, seen[b.Bits()], "duplicate board discovered")
		seen[b.Bits()] = true
	}
}

func TestBoardsHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Boards(ctx, DefaultMaxBoards)
	assert.Error(t, err)
}

func TestBoardsDefaultsMaxBoardsWhenNonPositive(t *testing.T) {
	boards, err := Boards(context.Background(), 0)
	require.NoError(t, err)
	assert.NotEmpty(t, boards)
}
