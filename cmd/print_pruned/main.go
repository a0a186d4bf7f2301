// Command print_pruned dumps pruned.bin as human-readable text (§6
// CLI surface).
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
	fs := pflag.NewFlagSet("print_pruned", pflag.ExitOnError)
	config.RegisterFlags(fs)
	limit := fs.Int("limit", 20, "maximum number of edges to print (0 = all)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	paths := pipeline.NewPaths(cfg.DataDir)
	f, err := os.Open(paths.Pruned())
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_pruned:", err)
		os.Exit(1)
	}
	defer f.Close()

	edges, err := pctable.ReadPruned(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_pruned:", err)
		os.Exit(1)
	}

	fmt.Printf("%d surviving edges\n", len(edges))
	n := len(edges)
	if *limit > 0 && *limit < n {
		n = *limit
	}
	for i := 0; i < n; i++ {
		e := edges[i]
		fmt.Printf("[%d] %d -> %d via %s actions=%v\n", i, e.Parent.Bits(), e.Child.Bits(), e.Piece, e.Actions)
	}
	if *limit > 0 && *limit < len(edges) {
		fmt.Printf("... %d more omitted (--limit=0 to print all)\n", len(edges)-*limit)
	}
}
