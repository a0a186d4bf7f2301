// Command demo plays a scripted number of pieces against a fresh Game
// using the PC-table Ai (if pc-table.bin is present) or, failing that,
// a hard drop at the spawn position, printing a static board snapshot after
// every move (§6 CLI surface "runtime consumers"). It is deliberately
// non-interactive: no input loop, no alternate screen.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/thesilican/tetris-ai-sub001/internal/ai"
	"github.com/thesilican/tetris-ai-sub001/internal/config"
	"github.com/thesilican/tetris-ai-sub001/internal/obslog"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/pipeline"
	"github.com/thesilican/tetris-ai-sub001/internal/render"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

func main() {
	fs := pflag.NewFlagSet("demo", pflag.ExitOnError)
	config.RegisterFlags(fs)
	pieces := fs.Int("pieces", 10, "number of pieces to play before stopping")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := obslog.Stage(obslog.Default(), "demo")

	var finder ai.Ai
	paths := pipeline.NewPaths(cfg.DataDir)
	if pipeline.Exists(paths.Table()) {
		f, err := os.Open(paths.Table())
		if err != nil {
			logger.Error().Err(err).Msg("open pc-table.bin")
			os.Exit(1)
		}
		t, err := pctable.ReadTable(f)
		f.Close()
		if err != nil {
			logger.Error().Err(err).Msg("decode pc-table.bin")
			os.Exit(1)
		}
		finder = ai.NewPcFinderAi(t)
		logger.Info().Str("run_id", t.RunID.String()).Msg("loaded pc-table.bin")
	} else {
		logger.Info().Msg("no pc-table.bin found, playing without an Ai")
	}

	g := tetris.NewGame(tetris.NewRng7Bag(cfg.Seed), tetris.DefaultQueueTarget)
	for i := 0; i < *pieces && !g.Over; i++ {
		fmt.Printf("=== piece %d ===\n", i+1)
		fmt.Println(render.Game(&g))

		var moves []tetris.Action
		if finder != nil {
			result := finder.Evaluate(&g)
			if result.Success {
				moves = result.Moves
			} else {
				logger.Warn().Str("reason", result.Reason).Msg("ai could not find a move, hard-dropping in place")
			}
		}
		if moves == nil {
			moves = []tetris.Action{tetris.ActionHardDrop}
		}
		for _, a := range moves {
			g.Apply(a)
		}
	}

	fmt.Println("=== final ===")
	fmt.Println(render.Game(&g))
	if g.Over {
		fmt.Println("topped out")
	}
}
