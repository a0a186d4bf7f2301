package tetris

import "fmt"

// PieceType identifies a tetromino shape. The ordering is the board's
// canonical encoding and is stable across the wire format (§6) and the
// PC pipeline's binary artifacts.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
)

// AllPieceTypes lists the seven piece types in canonical order.
var AllPieceTypes = [PieceNumTypes]PieceType{PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL}

// String implements fmt.Stringer using the single-letter piece names.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return fmt.Sprintf("PieceType(%d)", uint8(p))
	}
}

// ParsePieceType parses a single-letter piece name as used in the Game
// JSON wire format (§6). Returns an error that wraps ErrInvalidInput on
// an unrecognized letter.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "I":
		return PieceI, nil
	case "O":
		return PieceO, nil
	case "T":
		return PieceT, nil
	case "S":
		return PieceS, nil
	case "Z":
		return PieceZ, nil
	case "J":
		return PieceJ, nil
	case "L":
		return PieceL, nil
	default:
		return 0, fmt.Errorf("tetris: unknown piece letter %q: %w", s, ErrInvalidInput)
	}
}

// Rotation is one of the four SRS rotation states: 0 is spawn, 1 is one
// clockwise turn, 2 is 180 degrees, 3 is one counter-clockwise turn.
type Rotation uint8

const (
	RotationSpawn Rotation = iota
	RotationCW
	Rotation180
	RotationCCW
)

// CW returns the rotation state reached by turning r one step clockwise.
func (r Rotation) CW() Rotation { return (r + 1) % PieceNumRotations }

// CCW returns the rotation state reached by turning r one step counter-clockwise.
func (r Rotation) CCW() Rotation { return (r + 3) % PieceNumRotations }

// Opposite returns the 180-degree rotation from r.
func (r Rotation) Opposite() Rotation { return (r + 2) % PieceNumRotations }

// Action is an atomic input applied to a Game (§3 Action).
type Action uint8

const (
	ActionShiftLeft Action = iota
	ActionShiftRight
	ActionRotateCW
	ActionRotateCCW
	ActionRotate180
	ActionSoftDrop
	ActionHold
	ActionHardDrop
)

func (a Action) String() string {
	switch a {
	case ActionShiftLeft:
		return "ShiftLeft"
	case ActionShiftRight:
		return "ShiftRight"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotate180:
		return "Rotate180"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHold:
		return "Hold"
	case ActionHardDrop:
		return "HardDrop"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// TSpin classifies a lock as a T-spin, per §4.3.
type TSpin uint8

const (
	TSpinNone TSpin = iota
	TSpinMini
	TSpinFull
)

func (t TSpin) String() string {
	switch t {
	case TSpinNone:
		return "None"
	case TSpinMini:
		return "Mini"
	case TSpinFull:
		return "Full"
	default:
		return fmt.Sprintf("TSpin(%d)", uint8(t))
	}
}

// Point is a (col, row) offset local to a piece's 4x4 bounding box, or
// an absolute (x, y) board coordinate, depending on context.
type Point struct {
	X, Y int
}

// LockInfo reports the effects of locking a piece into the board (§3).
type LockInfo struct {
	LinesCleared int
	TopOut       bool
	TSpin        TSpin
}
