// Command print_table dumps pc-table.bin as human-readable text (§6
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
	fs := pflag.NewFlagSet("print_table", pflag.ExitOnError)
	config.RegisterFlags(fs)
	limit := fs.Int("limit", 20, "maximum number of keys to print (0 = all)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	paths := pipeline.NewPaths(cfg.DataDir)
	f, err := os.Open(paths.Table())
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_table:", err)
		os.Exit(1)
	}
	defer f.Close()

	t, err := pctable.ReadTable(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "print_table:", err)
		os.Exit(1)
	}

	fmt.Printf("run %s, %d keys\n", t.RunID, len(t.Entries))
	printed := 0
	for k, leaves := range t.Entries {
		if *limit > 0 && printed >= *limit {
			fmt.Printf("... %d more omitted (--limit=0 to print all)\n", len(t.Entries)-printed)
			break
		}
		fmt.Printf("board=%d piece=%s: %d leaves\n", k.Board, k.Piece, len(leaves))
		for _, l := range leaves {
			fmt.Printf("    -> %d dist=%d actions=%v\n", l.Child, l.Distance, l.Actions)
		}
		printed++
	}
}
