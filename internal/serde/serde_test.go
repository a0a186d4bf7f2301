package serde

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	g := tetris.NewGameFromBoard(tetris.NewBoard(), tetris.PieceT, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 3)
	g.Board.Set(0, 0, true)
	g.Active.X = 4
	g.Active.Y = 18
	g.Active.Rotation = tetris.RotationCW
	g.Hold = tetris.PieceI
	g.HasHold = true
	g.CanHold = false

	data, err := Marshal(g)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	assert.True(t, got.Board.Get(0, 0))
	assert.Equal(t, g.Active.Type, got.Active.Type)
	assert.Equal(t, g.Active.Rotation, got.Active.Rotation)
	assert.Equal(t, g.Active.X, got.Active.X)
	assert.Equal(t, g.Active.Y, got.Active.Y)
	assert.Equal(t, g.CanHold, got.CanHold)
	require.True(t, got.HasHold)
	assert.Equal(t, tetris.PieceI, got.Hold)
	assert.Equal(t, g.Queue.Slice(), got.Queue.Slice())
}

func TestUnmarshalWithoutHold(t *testing.T) {
	g := tetris.NewGameFromBoard(tetris.NewBoard(), tetris.PieceO, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 2)
	g.HasHold = false

	data, err := Marshal(g)
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	assert.False(t, got.HasHold)
}

func TestUnmarshalRejectsMalformedJSON(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.ErrorIs(t, err, tetris.ErrInvalidInput)
}

func TestUnmarshalRejectsUnknownPieceType(t *testing.T) {
	g := tetris.NewGameFromBoard(tetris.NewBoard(), tetris.PieceO, tetris.NewFixedBag(tetris.AllPieceTypes[:]), 1)
	data, err := Marshal(g)
	require.NoError(t, err)

	var doc GameDoc
	require.NoError(t, json.Unmarshal(data, &doc))
	doc.Active.Type = "X"
	bad, err := json.Marshal(doc)
	require.NoError(t, err)

	_, err = Unmarshal(bad)
	assert.Error(t, err)
}
