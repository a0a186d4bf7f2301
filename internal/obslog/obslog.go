// Package obslog configures the process-wide structured logger used
// by the PC pipeline stages and CLI commands (§AMBIENT STACK). Game
// core packages (tetris, pcboard, tessellate) never log.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog.Logger writing human-readable output to w when
// pretty is true (for interactive terminals), or newline-delimited
// JSON otherwise (for piped/CI runs).
func New(w io.Writer, pretty bool) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// Default returns the standard stderr logger, pretty when stderr is a
// terminal.
func Default() zerolog.Logger {
	return New(os.Stderr, isTerminal(os.Stderr))
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Stage returns a child logger that adds the "stage" field to every
// event. Callers add "board_count" and "elapsed" themselves.
func Stage(logger zerolog.Logger, stage string) zerolog.Logger {
	return logger.With().Str("stage", stage).Logger()
}
