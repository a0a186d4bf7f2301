package pctable

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/pcgraph"
	"github.com/thesilican/tetris-ai-sub001/internal/tessellate"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func TestTessellationsRoundTrip(t *testing.T) {
	tess := []tessellate.Tessellation{
		{
			{Piece: tetris.PieceO, Rotation: tetris.RotationSpawn, X: 0, Y: 0},
			{Piece: tetris.PieceI, Rotation: tetris.RotationCW, X: 4, Y: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTessellations(&buf, tess))

	got, err := ReadTessellations(&buf)
	require.NoError(t, err)
	assert.Equal(t, tess, got)
}

func TestReadTessellationsRejectsBadMagic(t *testing.T) {
	_, err := ReadTessellations(bytes.NewReader([]byte("nope")))
	assert.Error(t, err)
}

func sampleEdges() []pcgraph.Edge {
	return []pcgraph.Edge{
		{
			Parent:  pcboard.Empty().Set(0, 0, true),
			Child:   pcboard.Empty(),
			Piece:   tetris.PieceO,
			Actions: []tetris.Action{tetris.ActionHardDrop},
		},
		{
			Parent:  pcboard.Empty().Set(3, 2, true).Set(4, 2, true),
			Child:   pcboard.Empty().Set(0, 0, true),
			Piece:   tetris.PieceI,
			Actions: []tetris.Action{tetris.ActionRotateCW, tetris.ActionHardDrop},
		},
	}
}

func TestEdgesRoundTrip(t *testing.T) {
	edges := sampleEdges()
	var buf bytes.Buffer
	require.NoError(t, WriteEdges(&buf, edges))
	got, err := ReadEdges(&buf)
	require.NoError(t, err)
	assert.Equal(t, edges, got)
}

func TestPrunedRoundTrip(t *testing.T) {
	edges := sampleEdges()
	var buf bytes.Buffer
	require.NoError(t, WritePruned(&buf, edges))
	got, err := ReadPruned(&buf)
	require.NoError(t, err)
	assert.Equal(t, edges, got)
}

func TestEdgesAndPrunedAreNotInterchangeable(t *testing.T) {
	edges := sampleEdges()
	var buf bytes.Buffer
	require.NoError(t, WriteEdges(&buf, edges))
	_, err := ReadPruned(&buf)
	assert.Error(t, err)
}

func TestBuildAndBestLeaf(t *testing.T) {
	parent := pcboard.Empty().Set(0, 0, true).Set(1, 0, true).Set(2, 0, true).Set(3, 0, true)
	nearChild := pcboard.Empty().Set(0, 0, true)
	farChild := pcboard.Empty().Set(0, 0, true).Set(1, 0, true)

	edges := []pcgraph.Edge{
		{Parent: parent, Child: nearChild, Piece: tetris.PieceO, Actions: []tetris.Action{tetris.ActionHardDrop}},
		{Parent: parent, Child: farChild, Piece: tetris.PieceO, Actions: []tetris.Action{tetris.ActionSoftDrop, tetris.ActionHardDrop}},
	}
	distance := map[uint64]int{nearChild.Bits(): 1, farChild.Bits(): 3}

	runID := uuid.Must(uuid.NewRandom())
	table := Build(edges, distance, runID)

	leaf, ok := table.BestLeaf(parent, tetris.PieceO)
	require.True(t, ok)
	assert.Equal(t, nearChild.Bits(), leaf.Child)
	assert.Equal(t, 1, leaf.Distance)
}

func TestBestLeafMissingKeyFails(t *testing.T) {
	table := Build(nil, map[uint64]int{}, uuid.Must(uuid.NewRandom()))
	_, ok := table.BestLeaf(pcboard.Empty(), tetris.PieceO)
	assert.False(t, ok)
}

func TestTableWriteReadRoundTrip(t *testing.T) {
	edges := sampleEdges()
	distance := map[uint64]int{
		edges[0].Child.Bits(): 0,
		edges[1].Child.Bits(): 1,
	}
	runID := uuid.Must(uuid.NewRandom())
	table := Build(edges, distance, runID)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf))

	got, err := ReadTable(&buf)
	require.NoError(t, err)
	assert.Equal(t, table.RunID, got.RunID)
	assert.Equal(t, len(table.Entries), len(got.Entries))
	for k, leaves := range table.Entries {
		gotLeaves, ok := got.Entries[k]
		require.True(t, ok)
		assert.ElementsMatch(t, leaves, gotLeaves)
	}
}
