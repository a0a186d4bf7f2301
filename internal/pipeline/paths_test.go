package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsJoinDataDir(t *testing.T) {
	p := NewPaths("/data")
	assert.Equal(t, filepath.Join("/data", "tessellations.bin"), p.Tessellations())
	assert.Equal(t, filepath.Join("/data", "edges.bin"), p.Edges())
	assert.Equal(t, filepath.Join("/data", "pruned.bin"), p.Pruned())
	assert.Equal(t, filepath.Join("/data", "pc-table.bin"), p.Table())
}

func TestExistsAndEnsureDir(t *testing.T) {
	dir := t.TempDir()
	p := NewPaths(filepath.Join(dir, "nested"))

	assert.False(t, Exists(p.Table()))

	require.NoError(t, EnsureDir(p.DataDir))
	require.NoError(t, os.WriteFile(p.Table(), []byte("x"), 0o600))
	assert.True(t, Exists(p.Table()))
}

func TestExistsFalseForDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(dir))
}
