// Command generate runs the full PC pipeline (§6 CLI surface):
// tessellations, the board-discovery + graph-explorer pass, pruning,
// and the table builder, writing all four artifacts under DATA_DIR.
// Each stage is idempotent: an existing artifact short-circuits its
// recomputation.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/thesilican/tetris-ai-sub001/internal/config"
	"github.com/thesilican/tetris-ai-sub001/internal/obslog"
	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/pcgen"
	"github.com/thesilican/tetris-ai-sub001/internal/pcgraph"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/pipeline"
	"github.com/thesilican/tetris-ai-sub001/internal/runlog"
	"github.com/thesilican/tetris-ai-sub001/internal/tessellate"
)

func main() {
	fs := pflag.NewFlagSet("generate", pflag.ExitOnError)
	config.RegisterFlags(fs)
	maxBoards := fs.Int("max-boards", pcgen.DefaultMaxBoards, "cap on boards discovered during forward search")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := obslog.Default()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, logger, cfg, *maxBoards); err != nil {
		logger.Error().Err(err).Msg("generate failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, logger zerolog.Logger, cfg config.Config, maxBoards int) error {
	if err := pipeline.EnsureDir(cfg.DataDir); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	paths := pipeline.NewPaths(cfg.DataDir)
	store, err := runlog.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("generate: load run log: %w", err)
	}
	runID := uuid.New()

	tessellations, err := stageTessellations(logger, store, paths, runID)
	if err != nil {
		return err
	}

	boards, err := stageBoards(ctx, logger, maxBoards)
	if err != nil {
		return err
	}

	edges, err := stageEdges(ctx, logger, store, paths, cfg, boards, runID)
	if err != nil {
		return err
	}

	pruned, distance, err := stagePrune(logger, store, paths, edges, runID)
	if err != nil {
		return err
	}

	if err := stageTable(logger, store, paths, pruned, distance, runID); err != nil {
		return err
	}

	logger.Info().
		Int("tessellations", len(tessellations)).
		Int("boards", len(boards)).
		Int("edges", len(edges)).
		Int("pruned", len(pruned)).
		Msg("generate complete")
	return nil
}

// stageTessellations produces tessellations.bin, short-circuiting if
// it already exists.
func stageTessellations(logger zerolog.Logger, store *runlog.Store, paths pipeline.Paths, runID uuid.UUID) ([]tessellate.Tessellation, error) {
	stageLog := obslog.Stage(logger, "tessellations")
	if pipeline.Exists(paths.Tessellations()) {
		f, err := os.Open(paths.Tessellations())
		if err != nil {
			return nil, fmt.Errorf("generate: reopen tessellations.bin: %w", err)
		}
		defer f.Close()
		tess, err := pctable.ReadTessellations(f)
		if err != nil {
			return nil, fmt.Errorf("generate: read existing tessellations.bin: %w", err)
		}
		stageLog.Info().Int("board_count", len(tess)).Msg("already generated, skipping")
		return tess, nil
	}

	start := time.Now()
	tess := tessellate.EnumerateTessellations(pcboard.Empty())
	elapsed := time.Since(start)

	f, err := os.Create(paths.Tessellations())
	if err != nil {
		return nil, fmt.Errorf("generate: create tessellations.bin: %w", err)
	}
	defer f.Close()
	if err := pctable.WriteTessellations(f, tess); err != nil {
		return nil, fmt.Errorf("generate: write tessellations.bin: %w", err)
	}

	stageLog.Info().Int("board_count", len(tess)).Dur("elapsed", elapsed).Msg("done")
	recordRun(store, "tessellations", start, len(tess), runID)
	return tess, nil
}

// stageBoards discovers the forward-reachable valid PcBoard universe.
// It has no persisted artifact of its own: it feeds directly into the
// explorer stage.
func stageBoards(ctx context.Context, logger zerolog.Logger, maxBoards int) ([]pcboard.PcBoard, error) {
	stageLog := obslog.Stage(logger, "boards")
	start := time.Now()
	boards, err := pcgen.Boards(ctx, maxBoards)
	if err != nil {
		return boards, fmt.Errorf("generate: discover boards: %w", err)
	}
	stageLog.Info().Int("board_count", len(boards)).Dur("elapsed", time.Since(start)).Msg("done")
	return boards, nil
}

// stageEdges produces edges.bin, short-circuiting if it already exists.
func stageEdges(ctx context.Context, logger zerolog.Logger, store *runlog.Store, paths pipeline.Paths, cfg config.Config, boards []pcboard.PcBoard, runID uuid.UUID) ([]pcgraph.Edge, error) {
	stageLog := obslog.Stage(logger, "edges")
	if pipeline.Exists(paths.Edges()) {
		f, err := os.Open(paths.Edges())
		if err != nil {
			return nil, fmt.Errorf("generate: reopen edges.bin: %w", err)
		}
		defer f.Close()
		edges, err := pctable.ReadEdges(f)
		if err != nil {
			return nil, fmt.Errorf("generate: read existing edges.bin: %w", err)
		}
		stageLog.Info().Int("board_count", len(edges)).Msg("already generated, skipping")
		return edges, nil
	}

	start := time.Now()
	edges, err := pcgraph.Explore(ctx, boards, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("generate: explore: %w", err)
	}
	elapsed := time.Since(start)

	f, err := os.Create(paths.Edges())
	if err != nil {
		return nil, fmt.Errorf("generate: create edges.bin: %w", err)
	}
	defer f.Close()
	if err := pctable.WriteEdges(f, edges); err != nil {
		return nil, fmt.Errorf("generate: write edges.bin: %w", err)
	}

	stageLog.Info().Int("board_count", len(edges)).Dur("elapsed", elapsed).Msg("done")
	recordRun(store, "edges", start, len(edges), runID)
	return edges, nil
}

// stagePrune produces pruned.bin, short-circuiting if it already
// exists. The distance map is not persisted (it is cheap to recompute
// from the surviving edges) so a skipped stage recomputes it.
func stagePrune(logger zerolog.Logger, store *runlog.Store, paths pipeline.Paths, edges []pcgraph.Edge, runID uuid.UUID) ([]pcgraph.Edge, map[uint64]int, error) {
	stageLog := obslog.Stage(logger, "prune")
	if pipeline.Exists(paths.Pruned()) {
		f, err := os.Open(paths.Pruned())
		if err != nil {
			return nil, nil, fmt.Errorf("generate: reopen pruned.bin: %w", err)
		}
		defer f.Close()
		pruned, err := pctable.ReadPruned(f)
		if err != nil {
			return nil, nil, fmt.Errorf("generate: read existing pruned.bin: %w", err)
		}
		_, distance := pcgraph.Prune(pruned)
		stageLog.Info().Int("board_count", len(pruned)).Msg("already generated, skipping")
		return pruned, distance, nil
	}

	start := time.Now()
	pruned, distance := pcgraph.Prune(edges)
	elapsed := time.Since(start)

	f, err := os.Create(paths.Pruned())
	if err != nil {
		return nil, nil, fmt.Errorf("generate: create pruned.bin: %w", err)
	}
	defer f.Close()
	if err := pctable.WritePruned(f, pruned); err != nil {
		return nil, nil, fmt.Errorf("generate: write pruned.bin: %w", err)
	}

	stageLog.Info().Int("board_count", len(pruned)).Dur("elapsed", elapsed).Msg("done")
	recordRun(store, "prune", start, len(pruned), runID)
	return pruned, distance, nil
}

// stageTable produces pc-table.bin, short-circuiting if it already exists.
func stageTable(logger zerolog.Logger, store *runlog.Store, paths pipeline.Paths, edges []pcgraph.Edge, distance map[uint64]int, runID uuid.UUID) error {
	stageLog := obslog.Stage(logger, "table")
	if pipeline.Exists(paths.Table()) {
		stageLog.Info().Msg("already generated, skipping")
		return nil
	}

	start := time.Now()
	table := pctable.Build(edges, distance, runID)
	elapsed := time.Since(start)

	f, err := os.Create(paths.Table())
	if err != nil {
		return fmt.Errorf("generate: create pc-table.bin: %w", err)
	}
	defer f.Close()
	if err := table.Write(f); err != nil {
		return fmt.Errorf("generate: write pc-table.bin: %w", err)
	}

	stageLog.Info().Int("board_count", len(table.Entries)).Dur("elapsed", elapsed).Msg("done")
	recordRun(store, "table", start, len(table.Entries), runID)
	return nil
}

func recordRun(store *runlog.Store, stage string, start time.Time, count int, runID uuid.UUID) {
	_ = store.Append(runlog.Run{
		Stage:      stage,
		StartedAt:  start,
		DurationMS: time.Since(start).Milliseconds(),
		BoardCount: count,
		RunID:      runID.String(),
	})
}
