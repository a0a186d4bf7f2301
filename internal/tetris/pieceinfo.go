package tetris

// PieceInfo is the immutable, process-wide geometry table for one
// (PieceType, Rotation) pair (C1). It is populated once at package
// init time into pieceTable and never mutated afterward.
type PieceInfo struct {
	// Cells lists the 4 occupied cells of the piece in this rotation,
	// as offsets from the piece's (X, Y) bounding-box origin. Y
	// increases upward, matching the board's coordinate system (row 0
	// is the bottom row).
	Cells [4]Point
	// Mask is the same 4 cells packed into the low 16 bits of a
	// uint16, bit index = y*PieceShapeSize+x.
	Mask uint16
	// ColumnBottomY gives, for each of the 4 local columns, the lowest
	// occupied local Y, or -1 if the column is empty in this rotation.
	// Collision checks use Mask (Board.Intersects), not this field.
	ColumnBottomY [PieceShapeSize]int
}

// kickOffset is a single wall-kick candidate, tried in order.
type kickOffset = Point

// kickTransition identifies a rotation change.
type kickTransition struct {
	From, To Rotation
}

// pieceTable is indexed [PieceType][Rotation].
var pieceTable [PieceNumTypes][PieceNumRotations]PieceInfo

// kickTables is indexed [PieceType][kickTransition], holding the
// ordered offsets to try, starting with the bare (0,0) rotation. O's
// entries are only (0,0), and Piece.rotate handles O before consulting
// them (see piece.go).
var kickTables map[PieceType]map[kickTransition][]kickOffset

// Fixed local corner offsets of a T piece's 3x3 bounding sub-box,
// constant across rotation: the shape rotates, the box does not.
var tCorners = [4]Point{
	{X: 0, Y: 3}, // top-left
	{X: 2, Y: 3}, // top-right
	{X: 0, Y: 1}, // bottom-left
	{X: 2, Y: 1}, // bottom-right
}

const (
	tCornerTL = 0
	tCornerTR = 1
	tCornerBL = 2
	tCornerBR = 3
)

// tFrontCorners gives, per rotation, the indices into tCorners that
// face the direction the T's point faces (§4.3).
var tFrontCorners = [PieceNumRotations][2]int{
	RotationSpawn: {tCornerTL, tCornerTR}, // points up
	RotationCW:    {tCornerTR, tCornerBR}, // points right
	Rotation180:   {tCornerBL, tCornerBR}, // points down
	RotationCCW:   {tCornerTL, tCornerBL}, // points left
}

func init() {
	initPieceTable()
	initKickTables()
}

// rawShape lists, per piece and rotation, the occupied (col, rowDown)
// cells using the common top-down SRS diagram convention (rowDown 0 is
// the top of the 4x4 box). initPieceTable flips rowDown to the board's
// row-0-is-bottom convention.
var rawShapes = [PieceNumTypes][PieceNumRotations][4]Point{
	PieceI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	PieceO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	PieceT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	PieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {0, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

func initPieceTable() {
	for pt := range rawShapes {
		for rot := range rawShapes[pt] {
			var info PieceInfo
			for i := range info.ColumnBottomY {
				info.ColumnBottomY[i] = -1
			}
			for i, c := range rawShapes[pt][rot] {
				yUp := PieceShapeSize - 1 - c.Y
				info.Cells[i] = Point{X: c.X, Y: yUp}
				info.Mask |= 1 << uint(yUp*PieceShapeSize+c.X)
				if info.ColumnBottomY[c.X] == -1 || yUp < info.ColumnBottomY[c.X] {
					info.ColumnBottomY[c.X] = yUp
				}
			}
			pieceTable[pt][rot] = info
		}
	}
}

// GetPieceInfo returns the immutable geometry for (p, r).
func GetPieceInfo(p PieceType, r Rotation) PieceInfo {
	return pieceTable[p][r%PieceNumRotations]
}

func initKickTables() {
	jlstz := map[kickTransition][]kickOffset{
		{RotationSpawn, RotationCW}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{RotationCW, RotationSpawn}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{RotationCW, Rotation180}:    {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{Rotation180, RotationCW}:    {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{Rotation180, RotationCCW}:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{RotationCCW, Rotation180}:   {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{RotationCCW, RotationSpawn}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{RotationSpawn, RotationCCW}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		// Single-transition 180s, per §4.1/§9 (resolved open question):
		// JLSTZ use the published 4-offset 180 kick list.
		{RotationSpawn, Rotation180}: {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{Rotation180, RotationSpawn}: {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{RotationCW, RotationCCW}:    {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{RotationCCW, RotationCW}:    {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
	}

	i := map[kickTransition][]kickOffset{
		{RotationSpawn, RotationCW}:  {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{RotationCW, RotationSpawn}:  {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{RotationCW, Rotation180}:    {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		{Rotation180, RotationCW}:    {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{Rotation180, RotationCCW}:   {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		{RotationCCW, Rotation180}:   {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		{RotationCCW, RotationSpawn}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
		{RotationSpawn, RotationCCW}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		// I piece 180: undocumented in the source material (§9 open
		// question); resolved by reusing the JLSTZ 4-offset 180 list,
		// since no example or original_source file pins a distinct one.
		{RotationSpawn, Rotation180}: {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{Rotation180, RotationSpawn}: {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{RotationCW, RotationCCW}:    {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
		{RotationCCW, RotationCW}:    {{0, 0}, {1, 0}, {-1, 0}, {0, 1}},
	}

	o := map[kickTransition][]kickOffset{}
	for _, from := range []Rotation{RotationSpawn, RotationCW, Rotation180, RotationCCW} {
		for _, to := range []Rotation{RotationSpawn, RotationCW, Rotation180, RotationCCW} {
			o[kickTransition{from, to}] = []kickOffset{{0, 0}}
		}
	}

	kickTables = map[PieceType]map[kickTransition][]kickOffset{
		PieceJ: jlstz, PieceL: jlstz, PieceS: jlstz, PieceT: jlstz, PieceZ: jlstz,
		PieceI: i,
		PieceO: o,
	}
}

// kicksFor returns the ordered kick offsets to try for (piece, from, to).
func kicksFor(p PieceType, from, to Rotation) []kickOffset {
	return kickTables[p][kickTransition{from, to}]
}
