package tetris

// Piece is the mutable active placement of a tetromino on a board
// (C3). X is the left edge of its 4x4 bounding box; Y is the bottom.
type Piece struct {
	Type     PieceType
	Rotation Rotation
	X, Y     int

	// lastWasRotate tracks whether the most recent successful
	// operation was a rotation, for T-spin classification at lock
	// time (§4.3).
	lastWasRotate bool
}

// NewPiece returns a piece spawned at the standard position: rotation
// 0, column PieceSpawnColumn, and the lowest Y that keeps it clear of
// the stack (clamped so it never starts below the board).
func NewPiece(t PieceType, b *Board) Piece {
	p := Piece{Type: t, Rotation: RotationSpawn, X: PieceSpawnColumn}
	p.Y = spawnY(t, b)
	return p
}

// spawnY finds the minimum Y (closest to the stack) that keeps a fresh
// piece from overlapping filled cells, matching the spec's "minimum
// that keeps the piece above the stack".
func spawnY(t PieceType, b *Board) int {
	info := GetPieceInfo(t, RotationSpawn)
	y := BoardHeight - PieceShapeSize
	for y > 0 && !b.Intersects(info.Mask, PieceSpawnColumn, y-1) {
		y--
	}
	return y
}

// Info returns the PieceInfo for the piece's current type and rotation.
func (p Piece) Info() PieceInfo {
	return GetPieceInfo(p.Type, p.Rotation)
}

// Mask returns the 4x4 occupancy mask for the piece's current rotation.
func (p Piece) Mask() uint16 {
	return p.Info().Mask
}

// Cells returns the absolute board coordinates of the piece's 4 cells.
func (p Piece) Cells() [4]Point {
	info := p.Info()
	var out [4]Point
	for i, c := range info.Cells {
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}

// fits reports whether the piece (at its current position/rotation)
// does not collide with b.
func (p Piece) fits(b *Board) bool {
	return !b.Intersects(p.Mask(), p.X, p.Y)
}

// ShiftLeft shifts the piece one column left if the destination is clear.
func (p *Piece) ShiftLeft(b *Board) bool { return p.shift(b, -1) }

// ShiftRight shifts the piece one column right if the destination is clear.
func (p *Piece) ShiftRight(b *Board) bool { return p.shift(b, 1) }

func (p *Piece) shift(b *Board, dx int) bool {
	if b.Intersects(p.Mask(), p.X+dx, p.Y) {
		return false
	}
	p.X += dx
	p.lastWasRotate = false
	return true
}

// SoftDrop drops the piece until it rests on the floor or stack.
// Reports whether it moved at least one row.
func (p *Piece) SoftDrop(b *Board) bool {
	moved := false
	for !b.Intersects(p.Mask(), p.X, p.Y-1) {
		p.Y--
		moved = true
	}
	if moved {
		p.lastWasRotate = false
	}
	return moved
}

// rotate attempts the (from, to) rotation transition, trying (0,0)
// then each kick offset in order. Mutates the piece on the first
// offset that fits and reports success.
func (p *Piece) rotate(b *Board, to Rotation) bool {
	from := p.Rotation
	if p.Type == PieceO {
		p.Rotation = to
		p.lastWasRotate = true
		return true
	}
	mask := GetPieceInfo(p.Type, to).Mask
	for _, k := range kicksFor(p.Type, from, to) {
		nx, ny := p.X+k.X, p.Y+k.Y
		if !b.Intersects(mask, nx, ny) {
			p.Rotation = to
			p.X, p.Y = nx, ny
			p.lastWasRotate = true
			return true
		}
	}
	return false
}

// RotateCW rotates the piece one step clockwise, trying SRS kicks in order.
func (p *Piece) RotateCW(b *Board) bool { return p.rotate(b, p.Rotation.CW()) }

// RotateCCW rotates the piece one step counter-clockwise, trying SRS kicks in order.
func (p *Piece) RotateCCW(b *Board) bool { return p.rotate(b, p.Rotation.CCW()) }

// Rotate180 rotates the piece 180 degrees as a single atomic
// transition with its own kick list (§4.1).
func (p *Piece) Rotate180(b *Board) bool { return p.rotate(b, p.Rotation.Opposite()) }

// HardDrop drops the piece to its lowest legal position and locks it
// into b, classifying any T-spin per §4.3. The final descent to the
// floor is gravity, not a player operation, so unlike SoftDrop it does
// not clear lastWasRotate: T-spin classification depends on whether a
// rotation was the last *input* before the drop, not on how far the
// drop itself falls.
//
// The corners must be probed against the board as it stood *before*
// Lock runs: Lock clears and compacts completed rows, and a scored
// T-spin very often completes one of the rows the probe reads, so
// classifying afterward reads the wrong original row.
func (p *Piece) HardDrop(b *Board) LockInfo {
	for !b.Intersects(p.Mask(), p.X, p.Y-1) {
		p.Y--
	}
	tSpin := p.classifyTSpin(b)
	info := b.Lock(p.Mask(), p.X, p.Y)
	info.TSpin = tSpin
	return info
}

// GhostY returns the Y the piece would land at if hard-dropped now,
// without mutating the piece or board.
func (p Piece) GhostY(b *Board) int {
	y := p.Y
	for !b.Intersects(p.Mask(), p.X, y-1) {
		y--
	}
	return y
}

// classifyTSpin implements §4.3: only meaningful for a T piece whose
// last successful operation before locking was a rotation. The four
// probe cells lie outside the T's own footprint, so it must be called
// against b before the piece is OR'd in and before Lock's line clear
// can compact rows out from under the probe.
func (p Piece) classifyTSpin(b *Board) TSpin {
	if p.Type != PieceT || !p.lastWasRotate {
		return TSpinNone
	}
	var filled [4]bool
	occupied := 0
	for i, c := range tCorners {
		filled[i] = b.Get(p.X+c.X, p.Y+c.Y)
		if filled[i] {
			occupied++
		}
	}
	if occupied < 3 {
		return TSpinNone
	}
	front := tFrontCorners[p.Rotation]
	if filled[front[0]] && filled[front[1]] {
		return TSpinFull
	}
	return TSpinMini
}
