package tetris

// rowMask is the 10 low bits that make up one playable row.
const rowMask = (1 << BoardWidth) - 1

// Board is a bit-packed 10x24 grid (C2). Row 0 is the bottom row; Y
// increases upward. It is a plain value type: copy it to snapshot it.
type Board struct {
	rows      [BoardHeight]uint16
	heightMap [BoardWidth]int
	holes     [BoardWidth]int
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Get reports whether (x, y) is filled. Out-of-bounds coordinates
// report false.
func (b *Board) Get(x, y int) bool {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return false
	}
	return b.rows[y]&(1<<uint(x)) != 0
}

// Set fills or clears (x, y). Out-of-bounds coordinates are a no-op.
func (b *Board) Set(x, y int, filled bool) {
	if x < 0 || x >= BoardWidth || y < 0 || y >= BoardHeight {
		return
	}
	if filled {
		b.rows[y] |= 1 << uint(x)
	} else {
		b.rows[y] &^= 1 << uint(x)
	}
	b.recomputeColumn(x)
}

// Row returns the 10 low bits of row y.
func (b *Board) Row(y int) uint16 {
	if y < 0 || y >= BoardHeight {
		return 0
	}
	return b.rows[y] & rowMask
}

// HeightAt returns the height map entry for column x: one past the
// topmost filled row, or 0 if the column is empty.
func (b *Board) HeightAt(x int) int {
	if x < 0 || x >= BoardWidth {
		return 0
	}
	return b.heightMap[x]
}

// HolesAt returns the number of empty cells strictly below the height
// map entry for column x.
func (b *Board) HolesAt(x int) int {
	if x < 0 || x >= BoardWidth {
		return 0
	}
	return b.holes[x]
}

// Intersects reports whether a 4x4 piece mask aligned with its origin
// at (x, y) collides with a wall, the floor, or a filled cell.
func (b *Board) Intersects(mask uint16, x, y int) bool {
	for dy := 0; dy < PieceShapeSize; dy++ {
		rowBits := (mask >> uint(dy*PieceShapeSize)) & 0xF
		if rowBits == 0 {
			continue
		}
		by := y + dy
		if by < 0 {
			return true
		}
		for dx := 0; dx < PieceShapeSize; dx++ {
			if rowBits&(1<<uint(dx)) == 0 {
				continue
			}
			bx := x + dx
			if bx < 0 || bx >= BoardWidth || by >= BoardHeight {
				return true
			}
			if b.Get(bx, by) {
				return true
			}
		}
	}
	return false
}

// Lock ORs mask into the board at (x, y), clears completed rows
// (compacting downward), recomputes the height map and hole counts,
// and reports the result.
func (b *Board) Lock(mask uint16, x, y int) LockInfo {
	for dy := 0; dy < PieceShapeSize; dy++ {
		rowBits := (mask >> uint(dy*PieceShapeSize)) & 0xF
		if rowBits == 0 {
			continue
		}
		by := y + dy
		for dx := 0; dx < PieceShapeSize; dx++ {
			if rowBits&(1<<uint(dx)) == 0 {
				continue
			}
			bx := x + dx
			if bx >= 0 && bx < BoardWidth && by >= 0 && by < BoardHeight {
				b.rows[by] |= 1 << uint(bx)
			}
		}
	}

	topOut := false
	for yy := BoardVisibleHeight; yy < BoardHeight; yy++ {
		if b.rows[yy]&rowMask != 0 {
			topOut = true
			break
		}
	}

	cleared := b.clearLines()
	b.recomputeAll()

	return LockInfo{LinesCleared: cleared, TopOut: topOut, TSpin: TSpinNone}
}

// clearLines removes every row whose low 10 bits are all set,
// compacting rows above strictly downward, and returns the count
// cleared.
func (b *Board) clearLines() int {
	cleared := 0
	dst := 0
	for src := 0; src < BoardHeight; src++ {
		if b.rows[src]&rowMask == rowMask {
			cleared++
			continue
		}
		if dst != src {
			b.rows[dst] = b.rows[src]
		}
		dst++
	}
	for ; dst < BoardHeight; dst++ {
		b.rows[dst] = 0
	}
	return cleared
}

// AddGarbage pushes the stack up by n rows, inserting rows that are
// full except at holeColumn. Rows shifted above BoardHeight are
// discarded (and reported as a top-out).
func (b *Board) AddGarbage(holeColumn, n int) (toppedOut bool) {
	if n <= 0 {
		return false
	}
	if holeColumn < 0 || holeColumn >= BoardWidth {
		holeColumn = 0
	}
	if n >= BoardHeight {
		*b = NewBoard()
		b.recomputeAll()
		return true
	}

	for yy := BoardHeight - 1; yy >= n; yy-- {
		b.rows[yy] = b.rows[yy-n]
	}
	garbageRow := uint16(rowMask &^ (1 << uint(holeColumn)))
	for yy := 0; yy < n; yy++ {
		b.rows[yy] = garbageRow
	}

	for yy := BoardVisibleHeight; yy < BoardHeight; yy++ {
		if b.rows[yy]&rowMask != 0 {
			toppedOut = true
			break
		}
	}
	b.recomputeAll()
	return toppedOut
}

// RandomGarbageColumn draws a hole column for AddGarbage from the same
// seeded-RNG contract used by the 7-bag (§9 supplemented feature:
// garbage column tracking).
func (b *Board) RandomGarbageColumn(rng interface{ Uint64N(uint64) uint64 }) int {
	return int(rng.Uint64N(BoardWidth))
}

// ToppedOut reports whether any cell at or above BoardVisibleHeight is
// filled.
func (b *Board) ToppedOut() bool {
	for yy := BoardVisibleHeight; yy < BoardHeight; yy++ {
		if b.rows[yy]&rowMask != 0 {
			return true
		}
	}
	return false
}

// Empty reports whether every cell on the board is clear.
func (b *Board) Empty() bool {
	for _, r := range b.rows {
		if r&rowMask != 0 {
			return false
		}
	}
	return true
}

func (b *Board) recomputeAll() {
	for x := 0; x < BoardWidth; x++ {
		b.recomputeColumn(x)
	}
}

func (b *Board) recomputeColumn(x int) {
	height := 0
	for y := BoardHeight - 1; y >= 0; y-- {
		if b.rows[y]&(1<<uint(x)) != 0 {
			height = y + 1
			break
		}
	}
	b.heightMap[x] = height

	holes := 0
	for y := 0; y < height; y++ {
		if b.rows[y]&(1<<uint(x)) == 0 {
			holes++
		}
	}
	b.holes[x] = holes
}
