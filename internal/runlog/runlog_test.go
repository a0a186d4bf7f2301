package runlog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)
	assert.Empty(t, s.History.Runs)
}

func TestAppendPersistsAndReloads(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)

	run := Run{Stage: "edges", StartedAt: time.Unix(0, 0).UTC(), DurationMS: 42, BoardCount: 7, RunID: "abc"}
	require.NoError(t, s.Append(run))

	assert.FileExists(t, filepath.Join(dir, "runlog.json"))

	reloaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, reloaded.History.Runs, 1)
	assert.Equal(t, run, reloaded.History.Runs[0])
}

func TestLastReturnsMostRecentMatchingStage(t *testing.T) {
	dir := t.TempDir()
	s, err := Load(dir)
	require.NoError(t, err)

	require.NoError(t, s.Append(Run{Stage: "edges", RunID: "first"}))
	require.NoError(t, s.Append(Run{Stage: "prune", RunID: "second"}))
	require.NoError(t, s.Append(Run{Stage: "edges", RunID: "third"}))

	last, ok := s.Last("edges")
	require.True(t, ok)
	assert.Equal(t, "third", last.RunID)

	_, ok = s.Last("table")
	assert.False(t, ok)
}
