// Package tetris implements the bit-packed Tetris game core: piece
// geometry (C1), the board (C2), the active piece with SRS rotation and
// kicks (C3), the 7-bag/queue model (C4), the Game state machine (C5),
// and move-fragment driven child-state enumeration (C6).
package tetris

// Board and piece geometry constants, named per the data model in §3.
const (
	// BoardWidth is the number of columns on the board.
	BoardWidth = 10
	// BoardHeight is the total number of rows tracked, including the
	// hidden region above the visible playfield. Canonical per §9's
	// resolution of the BOARD_HEIGHT ambiguity (24, not 25).
	BoardHeight = 24
	// BoardVisibleHeight is the number of rows visible to the player.
	// A locked cell at or above this row tops the game out.
	BoardVisibleHeight = 20

	// PieceShapeSize is the width/height of a piece's bounding box.
	PieceShapeSize = 4
	// PieceSpawnColumn is the x of the left edge of a freshly spawned
	// piece's bounding box.
	PieceSpawnColumn = 3
	// PieceNumRotations is the number of distinct rotation states.
	PieceNumRotations = 4
	// PieceNumTypes is the number of distinct tetromino shapes.
	PieceNumTypes = 7

	// BagLen is the number of pieces in one 7-bag cycle.
	BagLen = PieceNumTypes
	// GameMaxQueueLen is the maximum number of pieces the Game's queue
	// holds at once.
	GameMaxQueueLen = 8
)
