// Command table runs the C11 table-builder stage in isolation: it
// reads pruned.bin and writes pc-table.bin (§6 CLI surface).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/thesilican/tetris-ai-sub001/internal/config"
	"github.com/thesilican/tetris-ai-sub001/internal/obslog"
	"github.com/thesilican/tetris-ai-sub001/internal/pcgraph"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/pipeline"
	"github.com/thesilican/tetris-ai-sub001/internal/runlog"
)

func main() {
	fs := pflag.NewFlagSet("table", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := obslog.Stage(obslog.Default(), "table")
	paths := pipeline.NewPaths(cfg.DataDir)

	if !pipeline.Exists(paths.Pruned()) {
		logger.Error().Str("path", paths.Pruned()).Msg("missing input artifact")
		os.Exit(1)
	}
	if pipeline.Exists(paths.Table()) {
		logger.Info().Msg("already generated, skipping")
		return
	}

	prunedFile, err := os.Open(paths.Pruned())
	if err != nil {
		logger.Error().Err(err).Msg("open pruned.bin")
		os.Exit(1)
	}
	defer prunedFile.Close()

	pruned, err := pctable.ReadPruned(prunedFile)
	if err != nil {
		logger.Error().Err(err).Msg("decode pruned.bin")
		os.Exit(1)
	}

	_, distance := pcgraph.Prune(pruned)

	start := time.Now()
	runID := uuid.New()
	t := pctable.Build(pruned, distance, runID)
	elapsed := time.Since(start)

	out, err := os.Create(paths.Table())
	if err != nil {
		logger.Error().Err(err).Msg("create pc-table.bin")
		os.Exit(1)
	}
	defer out.Close()
	if err := t.Write(out); err != nil {
		logger.Error().Err(err).Msg("write pc-table.bin")
		os.Exit(1)
	}

	logger.Info().Int("board_count", len(t.Entries)).Dur("elapsed", elapsed).Msg("done")

	if store, err := runlog.Load(cfg.DataDir); err == nil {
		_ = store.Append(runlog.Run{
			Stage:      "table",
			StartedAt:  start,
			DurationMS: elapsed.Milliseconds(),
			BoardCount: len(t.Entries),
			RunID:      runID.String(),
		})
	}
}
