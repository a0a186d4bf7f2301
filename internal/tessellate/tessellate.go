// Package tessellate enumerates tetromino tilings of the empty cells
// of a 4x10 PC board (C8), the authoritative validity test PcBoard
// delegates to and the source of the PC pipeline's seed boards.
package tessellate

import (
	"sort"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// Placement is one tetromino placed within the 4x10 region, anchored
// the same way tetris.Piece is: (X, Y) is the origin of its 4x4 local
// box, Y increasing upward.
type Placement struct {
	Piece    tetris.PieceType
	Rotation tetris.Rotation
	X, Y     int
}

// Cells returns the 4 absolute cells Placement occupies.
func (pl Placement) Cells() [4]tetris.Point {
	info := tetris.GetPieceInfo(pl.Piece, pl.Rotation)
	var out [4]tetris.Point
	for i, c := range info.Cells {
		out[i] = tetris.Point{X: pl.X + c.X, Y: pl.Y + c.Y}
	}
	return out
}

// Tessellation is a complete tiling: a sorted, deduplicated-by-content
// list of placements exactly covering a board's empty cells.
type Tessellation []Placement

// orientation names one of the 19 rotation-distinct tetromino shapes
// (§4.8): pieces whose 4 rotation states are not all geometrically
// distinct (O has 1, I/S/Z have 2) are listed once each.
type orientation struct {
	piece tetris.PieceType
	rot   tetris.Rotation
}

var orientations = buildOrientations()

func buildOrientations() []orientation {
	var out []orientation
	add := func(p tetris.PieceType, rots ...tetris.Rotation) {
		for _, r := range rots {
			out = append(out, orientation{piece: p, rot: r})
		}
	}
	add(tetris.PieceI, tetris.RotationSpawn, tetris.RotationCW)
	add(tetris.PieceO, tetris.RotationSpawn)
	add(tetris.PieceT, tetris.RotationSpawn, tetris.RotationCW, tetris.Rotation180, tetris.RotationCCW)
	add(tetris.PieceS, tetris.RotationSpawn, tetris.RotationCW)
	add(tetris.PieceZ, tetris.RotationSpawn, tetris.RotationCW)
	add(tetris.PieceJ, tetris.RotationSpawn, tetris.RotationCW, tetris.Rotation180, tetris.RotationCCW)
	add(tetris.PieceL, tetris.RotationSpawn, tetris.RotationCW, tetris.Rotation180, tetris.RotationCCW)
	return out
}

// candidatesForCell returns every placement, across all 19
// orientations, that covers target with at least one of its 4 cells,
// fits in-bounds, and lies entirely on currently-empty cells of b.
func candidatesForCell(b pcboard.PcBoard, target tetris.Point) []Placement {
	var out []Placement
	for _, o := range orientations {
		info := tetris.GetPieceInfo(o.piece, o.rot)
		for _, anchor := range info.Cells {
			x := target.X - anchor.X
			y := target.Y - anchor.Y
			pl := Placement{Piece: o.piece, Rotation: o.rot, X: x, Y: y}
			cells := pl.Cells()
			if b.FitsEmpty(cells) {
				out = append(out, pl)
			}
		}
	}
	return out
}

// EnumerateTessellations returns every distinct tiling of b's empty
// cells by exactly (popcountComplement/4) tetrominoes, via exhaustive
// backtracking: at each step, cover the lowest row-major empty cell
// with every orientation that can legally occupy it, and recurse.
func EnumerateTessellations(b pcboard.PcBoard) []Tessellation {
	var results []Tessellation
	var cur []Placement
	search(b, cur, &results)
	return results
}

func search(b pcboard.PcBoard, cur []Placement, results *[]Tessellation) {
	target, ok := b.FirstEmptyCell()
	if !ok {
		tess := make(Tessellation, len(cur))
		copy(tess, cur)
		sortPlacements(tess)
		*results = append(*results, tess)
		return
	}
	for _, pl := range candidatesForCell(b, target) {
		next := b.WithCellsFilled(pl.Cells())
		cur = append(cur, pl)
		search(next, cur, results)
		cur = cur[:len(cur)-1]
	}
}

func sortPlacements(t Tessellation) {
	sort.Slice(t, func(i, j int) bool {
		if t[i].Y != t[j].Y {
			return t[i].Y < t[j].Y
		}
		if t[i].X != t[j].X {
			return t[i].X < t[j].X
		}
		if t[i].Piece != t[j].Piece {
			return t[i].Piece < t[j].Piece
		}
		return t[i].Rotation < t[j].Rotation
	})
}

// HasTessellation reports whether b has at least one valid tiling,
// short-circuiting on the first found — the authoritative validity
// test PcBoard.QuickFilter only prefilters for (§4.7, §9).
func HasTessellation(b pcboard.PcBoard) bool {
	target, ok := b.FirstEmptyCell()
	if !ok {
		return true
	}
	for _, pl := range candidatesForCell(b, target) {
		if HasTessellation(b.WithCellsFilled(pl.Cells())) {
			return true
		}
	}
	return false
}

// IsValid is the full PcBoard validity predicate (§4.7): a cheap
// necessary filter followed by the authoritative tessellation test.
func IsValid(b pcboard.PcBoard) bool {
	return b.QuickFilter() && HasTessellation(b)
}
