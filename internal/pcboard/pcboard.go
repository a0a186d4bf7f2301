// Package pcboard implements the 4-row perfect-clear board subspace
// (C7): a compressed 40-bit encoding of the bottom four rows of a
// tetris.Board, the subspace the PC-finder pipeline searches over.
package pcboard

import (
	"fmt"
	"math/bits"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// Width and Height are the PC subspace's fixed dimensions.
const (
	Width  = tetris.BoardWidth
	Height = 4
	// numBits is the number of bits of PcBoard.bits actually in use.
	numBits = Width * Height
)

// PcBoard is a 4x10 board packed into the low 40 bits of a uint64, bit
// index = y*Width+x with y in [0,Height). It is a plain comparable
// value type, usable directly as a map key.
type PcBoard struct {
	bits uint64
}

// Empty returns the PC board with every cell clear.
func Empty() PcBoard { return PcBoard{} }

// FromBoard embeds a full tetris.Board into the PC subspace. Reports
// false if any row at or above Height is occupied — such a board has
// no PC subspace representation.
func FromBoard(b *tetris.Board) (PcBoard, bool) {
	for y := Height; y < tetris.BoardHeight; y++ {
		if b.Row(y) != 0 {
			return PcBoard{}, false
		}
	}
	var pb PcBoard
	for y := 0; y < Height; y++ {
		pb.bits |= uint64(b.Row(y)) << uint(y*Width)
	}
	return pb, true
}

// ToBoard expands the PC board back into a full tetris.Board with rows
// at or above Height left empty.
func (p PcBoard) ToBoard() tetris.Board {
	b := tetris.NewBoard()
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			b.Set(x, y, p.Get(x, y))
		}
	}
	return b
}

// Get reports whether (x, y) is filled. Out-of-range coordinates
// report false.
func (p PcBoard) Get(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return p.bits&(1<<uint(y*Width+x)) != 0
}

// Set returns a copy of p with (x, y) filled or cleared.
func (p PcBoard) Set(x, y int, filled bool) PcBoard {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return p
	}
	bit := uint64(1) << uint(y*Width+x)
	if filled {
		p.bits |= bit
	} else {
		p.bits &^= bit
	}
	return p
}

// PopCount returns the number of filled cells.
func (p PcBoard) PopCount() int { return bits.OnesCount64(p.bits) }

// Bits returns the raw 40-bit packed representation, used by the
// serialization layer (§6) and as a graph-index key.
func (p PcBoard) Bits() uint64 { return p.bits & ((1 << numBits) - 1) }

// FromBits reconstructs a PcBoard from its packed representation.
func FromBits(v uint64) PcBoard { return PcBoard{bits: v & ((1 << numBits) - 1)} }

// IsEmpty reports whether every cell is clear — the PC pipeline's
// target state.
func (p PcBoard) IsEmpty() bool { return p.bits == 0 }

// QuickFilter is a cheap necessary condition for validity (§4.7,
// §9 "the exact is_valid cheap predicate ... is not documented"):
// popcount must be a multiple of 4 and at most the full board. The
// authoritative check is tessellate.HasTessellation, which this
// filter exists only to avoid running on obviously-invalid boards.
func (p PcBoard) QuickFilter() bool {
	n := p.PopCount()
	return n <= numBits && n%4 == 0
}

// FirstEmptyCell returns the lowest-index empty cell in row-major
// order (row ascending, then column ascending), used by the
// tessellation enumerator (C8) to pick its next cell to cover.
func (p PcBoard) FirstEmptyCell() (tetris.Point, bool) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if !p.Get(x, y) {
				return tetris.Point{X: x, Y: y}, true
			}
		}
	}
	return tetris.Point{}, false
}

// FitsEmpty reports whether every one of cells lies in-bounds and is
// currently clear.
func (p PcBoard) FitsEmpty(cells [4]tetris.Point) bool {
	for _, c := range cells {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
			return false
		}
		if p.Get(c.X, c.Y) {
			return false
		}
	}
	return true
}

// WithCellsFilled returns a copy of p with every one of cells set.
// Caller must have already verified FitsEmpty.
func (p PcBoard) WithCellsFilled(cells [4]tetris.Point) PcBoard {
	for _, c := range cells {
		p = p.Set(c.X, c.Y, true)
	}
	return p
}

// String renders the board as 4 rows of '#'/'.' for debugging and the
// print_* CLI dumps, top row first.
func (p PcBoard) String() string {
	out := make([]byte, 0, Height*(Width+1))
	for y := Height - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if p.Get(x, y) {
				out = append(out, '#')
			} else {
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return fmt.Sprintf("%s", out)
}
