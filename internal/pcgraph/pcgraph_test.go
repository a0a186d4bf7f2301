package pcgraph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func board(bits uint64) pcboard.PcBoard { return pcboard.FromBits(bits) }

func TestPruneKeepsOnlyEdgesOnAPathToEmpty(t *testing.T) {
	empty := pcboard.Empty()
	reachable := board(1)
	dangling := board(1 << 10)
	unreachable := board(1 << 20)

	edges := []Edge{
		{Parent: reachable, Child: empty, Piece: tetris.PieceO},
		{Parent: dangling, Child: unreachable, Piece: tetris.PieceO},
	}

	survivors, distance := Prune(edges)
	require.Len(t, survivors, 1)
	assert.Equal(t, reachable, survivors[0].Parent)
	assert.Equal(t, 0, distance[empty.Bits()])
	assert.Equal(t, 1, distance[reachable.Bits()])
	_, ok := distance[dangling.Bits()]
	assert.False(t, ok)
}

func TestPruneDistanceFollowsShortestPath(t *testing.T) {
	empty := pcboard.Empty()
	one := board(1)
	two := board(2)

	edges := []Edge{
		{Parent: two, Child: one, Piece: tetris.PieceO},
		{Parent: one, Child: empty, Piece: tetris.PieceO},
		{Parent: two, Child: empty, Piece: tetris.PieceI},
	}

	_, distance := Prune(edges)
	assert.Equal(t, 0, distance[empty.Bits()])
	assert.Equal(t, 1, distance[one.Bits()])
	assert.Equal(t, 1, distance[two.Bits()])
}

func TestExploreFromEmptyBoardIsDeterministic(t *testing.T) {
	boards := []pcboard.PcBoard{pcboard.Empty()}

	a, err := Explore(context.Background(), boards, 2)
	require.NoError(t, err)
	b, err := Explore(context.Background(), boards, 1)
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Parent, b[i].Parent)
		assert.Equal(t, a[i].Child, b[i].Child)
		assert.Equal(t, a[i].Piece, b[i].Piece)
	}
}

func TestExploreHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Explore(ctx, []pcboard.PcBoard{pcboard.Empty()}, 1)
	assert.Error(t, err)
}
