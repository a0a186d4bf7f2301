// Package pipeline names the PC pipeline's on-disk artifact layout
// (§6) so every stage command agrees on where things live under
// DATA_DIR.
package pipeline

import (
	"os"
	"path/filepath"
)

// Paths resolves the four pipeline artifacts under a data directory.
type Paths struct {
	DataDir string
}

// NewPaths returns a Paths rooted at dataDir.
func NewPaths(dataDir string) Paths { return Paths{DataDir: dataDir} }

// Tessellations is tessellations.bin's path.
func (p Paths) Tessellations() string { return filepath.Join(p.DataDir, "tessellations.bin") }

// Edges is edges.bin's path.
func (p Paths) Edges() string { return filepath.Join(p.DataDir, "edges.bin") }

// Pruned is pruned.bin's path.
func (p Paths) Pruned() string { return filepath.Join(p.DataDir, "pruned.bin") }

// Table is pc-table.bin's path.
func (p Paths) Table() string { return filepath.Join(p.DataDir, "pc-table.bin") }

// Exists reports whether a regular file is present at path, used by
// every stage to implement the "existing artifact short-circuits
// recomputation" idempotency rule (§6 CLI surface).
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDir creates dir (and parents) if it does not already exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o750)
}
