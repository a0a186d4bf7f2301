// Command ai evaluates a single Game (read as §6 Game JSON from
// --input, or stdin if omitted) against the PC-table Ai and prints the
// resulting AiResult as JSON (§6 CLI surface "runtime consumers").
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/thesilican/tetris-ai-sub001/internal/ai"
	"github.com/thesilican/tetris-ai-sub001/internal/config"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/pipeline"
	"github.com/thesilican/tetris-ai-sub001/internal/serde"
)

func main() {
	fs := pflag.NewFlagSet("ai", pflag.ExitOnError)
	config.RegisterFlags(fs)
	input := fs.String("input", "", "path to a Game JSON document (defaults to stdin)")
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	data, err := readInput(*input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ai:", err)
		os.Exit(1)
	}

	g, err := serde.Unmarshal(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ai:", err)
		os.Exit(1)
	}

	paths := pipeline.NewPaths(cfg.DataDir)
	tableFile, err := os.Open(paths.Table())
	if err != nil {
		fmt.Fprintln(os.Stderr, "ai: open pc-table.bin:", err)
		os.Exit(1)
	}
	defer tableFile.Close()
	table, err := pctable.ReadTable(tableFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ai: decode pc-table.bin:", err)
		os.Exit(1)
	}

	result := ai.NewPcFinderAi(table).Evaluate(&g)
	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "ai: encode result:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path) //nolint:gosec // G304: path is an explicit, user-supplied CLI flag
}
