package ai

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func TestPcFinderAiReturnsClosestLeaf(t *testing.T) {
	board := tetris.NewBoard()
	board.Set(0, 0, true)
	board.Set(1, 0, true)
	board.Set(2, 0, true)
	board.Set(3, 0, true)
	pc, ok := pcboard.FromBoard(&board)
	require.True(t, ok)

	near := pcboard.Empty()
	far := pcboard.Empty().Set(0, 0, true)

	table := pctable.Build(nil, nil, uuid.Must(uuid.NewRandom()))
	key := pctable.Key{Board: pc.Bits(), Piece: tetris.PieceO}
	table.Entries[key] = []pctable.Leaf{
		{Child: far.Bits(), Actions: []tetris.Action{tetris.ActionSoftDrop, tetris.ActionHardDrop}, Distance: 4},
		{Child: near.Bits(), Actions: []tetris.Action{tetris.ActionHardDrop}, Distance: 1},
	}

	g := tetris.NewGameFromBoard(board, tetris.PieceO, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 1)
	result := NewPcFinderAi(table).Evaluate(&g)

	require.True(t, result.Success)
	assert.Equal(t, []tetris.Action{tetris.ActionHardDrop}, result.Moves)
	require.NotNil(t, result.Score)
	assert.Equal(t, -1.0, *result.Score)
}

func TestPcFinderAiFailsWithoutTableEntry(t *testing.T) {
	board := tetris.NewBoard()
	table := pctable.Build(nil, nil, uuid.Must(uuid.NewRandom()))

	g := tetris.NewGameFromBoard(board, tetris.PieceT, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 1)
	result := NewPcFinderAi(table).Evaluate(&g)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Reason)
}

func TestPcFinderAiFailsWhenBoardDoesNotEmbed(t *testing.T) {
	board := tetris.NewBoard()
	board.Set(0, pcboard.Height, true)
	table := pctable.Build(nil, nil, uuid.Must(uuid.NewRandom()))

	g := tetris.NewGameFromBoard(board, tetris.PieceT, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 1)
	result := NewPcFinderAi(table).Evaluate(&g)

	assert.False(t, result.Success)
}
