package tetris

import "errors"

// Error kinds per §7. IllegalMove is deliberately not an error: a
// failed Piece operation is reported as a bool, never surfaced as one
// of these.
var (
	// ErrInvalidInput marks malformed input: out-of-range coordinates,
	// unknown piece letters, malformed wire data.
	ErrInvalidInput = errors.New("tetris: invalid input")

	// ErrInvariant marks an internal invariant violation (a bug, not a
	// user error): e.g. a height map inconsistent with the grid.
	ErrInvariant = errors.New("tetris: internal invariant violated")
)
