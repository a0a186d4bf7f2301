// Command print_tess dumps tessellations.bin as human-readable text
// (§6 CLI surface).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/thesilican/tetris-ai-sub001/internal/config"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/pipeline"
)

func main() {
	fs := pflag.NewFlagSet("print_tess", pflag.ExitOnError)
	config.RegisterFlags(fs)
	limit := fs.Int("limit", 20, "maximum number of tessellations to print (0 = all)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	paths := pipeline.NewPaths(cfg.DataDir)
	f, err := os.Open(paths.Tessellations())
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_tess:", err)
		os.Exit(1)
	}
	defer f.Close()

	tess, err := pctable.ReadTessellations(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_tess:", err)
		os.Exit(1)
	}

	fmt.Printf("%d tessellations\n", len(tess))
	n := len(tess)
	if *limit > 0 && *limit < n {
		n = *limit
	}
	for i := 0; i < n; i++ {
		fmt.Printf("[%d] %d placements:\n", i, len(tess[i]))
		for _, pl := range tess[i] {
			fmt.Printf("    %s rot=%d x=%d y=%d\n", pl.Piece, pl.Rotation, pl.X, pl.Y)
		}
	}
	if *limit > 0 && *limit < len(tess) {
		fmt.Printf("... %d more omitted (--limit=0 to print all)\n", len(tess)-*limit)
	}
}
