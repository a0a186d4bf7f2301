// Command prune runs the C10 pruning stage in isolation: it reads
// edges.bin and writes pruned.bin (§6 CLI surface). It does not
// require the full generate pipeline to have produced boards or
// tessellations; it only depends on edges.bin already existing.
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
	fs := pflag.NewFlagSet("prune", pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := obslog.Stage(obslog.Default(), "prune")
	paths := pipeline.NewPaths(cfg.DataDir)

	if !pipeline.Exists(paths.Edges()) {
		logger.Error().Str("path", paths.Edges()).Msg("missing input artifact")
		os.Exit(1)
	}
	if pipeline.Exists(paths.Pruned()) {
		logger.Info().Msg("already generated, skipping")
		return
	}

	edgesFile, err := os.Open(paths.Edges())
	if err != nil {
		logger.Error().Err(err).Msg("open edges.bin")
		os.Exit(1)
	}
	defer edgesFile.Close()

	edges, err := pctable.ReadEdges(edgesFile)
	if err != nil {
		logger.Error().Err(err).Msg("decode edges.bin")
		os.Exit(1)
	}

	start := time.Now()
	pruned, _ := pcgraph.Prune(edges)
	elapsed := time.Since(start)

	out, err := os.Create(paths.Pruned())
	if err != nil {
		logger.Error().Err(err).Msg("create pruned.bin")
		os.Exit(1)
	}
	defer out.Close()
	if err := pctable.WritePruned(out, pruned); err != nil {
		logger.Error().Err(err).Msg("write pruned.bin")
		os.Exit(1)
	}

	logger.Info().Int("board_count", len(pruned)).Dur("elapsed", elapsed).Msg("done")

	if store, err := runlog.Load(cfg.DataDir); err == nil {
		_ = store.Append(runlog.Run{
			Stage:      "prune",
			StartedAt:  start,
			DurationMS: elapsed.Milliseconds(),
			BoardCount: len(pruned),
			RunID:      uuid.New().String(),
		})
	}
}
