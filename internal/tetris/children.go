package tetris

import "sort"

// FragmentSet names a sub-grammar of action prefixes ending in a hard
// drop (§4.6). Segments counts maximal runs of same-category actions
// (a run of shifts, a single rotation, a single soft drop each count
// as one segment); MaxRotations/MaxSoftDrops additionally cap how many
// rotation/soft-drop actions may appear in the whole prefix.
type FragmentSet struct {
	Name         string
	MaxSegments  int
	MaxRotations int
	MaxSoftDrops int
	AllowHold    bool
}

// FragmentBasic is the "1F" grammar: (Shift)* Rot? (Shift)* HardDrop,
// plus an optional leading Hold.
var FragmentBasic = FragmentSet{
	Name: "1F", MaxSegments: 3, MaxRotations: 1, MaxSoftDrops: 0, AllowHold: true,
}

// FragmentFinesse is the "4F" grammar: Hold? Rot? Shift* Rot? SoftDrop?
// Shift* Rot? HardDrop, bounded to depth <= 4 rotate/shift segments.
var FragmentFinesse = FragmentSet{
	Name: "4F", MaxSegments: 4, MaxRotations: 3, MaxSoftDrops: 1, AllowHold: true,
}

// actionCategory groups actions for the segment-counting rule above.
type actionCategory uint8

const (
	catNone actionCategory = iota
	catShift
	catRotate
	catSoftDrop
)

func categoryOf(a Action) actionCategory {
	switch a {
	case ActionShiftLeft, ActionShiftRight:
		return catShift
	case ActionRotateCW, ActionRotateCCW, ActionRotate180:
		return catRotate
	case ActionSoftDrop:
		return catSoftDrop
	default:
		return catNone
	}
}

// bfsMoves lists the atomic actions tried at each BFS state, in the
// canonical order that also serves as the action alphabet for
// lexicographic tie-breaking (§4.6 determinism).
var bfsMoves = []Action{ActionShiftLeft, ActionShiftRight, ActionRotateCW, ActionRotateCCW, ActionRotate180, ActionSoftDrop}

type bfsKey struct {
	rot           Rotation
	x, y          int
	lastWasRotate bool
}

type bfsNode struct {
	piece               Piece
	segments, rotations int
	softDrops           int
	lastCategory        actionCategory
	actions             []Action
}

// Child is one reachable resting placement together with the action
// sequence that reaches it from the Game passed to Children.
type Child struct {
	Game    Game
	Actions []Action

	// Placement is the piece at the position/rotation it locked at,
	// before Game advanced its Active to the next spawn.
	Placement Piece

	// lockedCells are Placement's absolute cells, sorted row-major.
	// Kept alongside Game so sorting and dedup don't need to replay
	// Actions.
	lockedCells [4]Point
}

// Finesse reports whether Actions is as short as theoretically
// possible for this placement: at most one rotation plus the minimal
// shift distance (§9 supplemented feature).
func (c Child) Finesse() bool {
	shifts, rotates := 0, 0
	for _, a := range c.Actions {
		switch categoryOf(a) {
		case catShift:
			shifts++
		case catRotate:
			rotates++
		}
	}
	minShift := abs(c.Placement.X - PieceSpawnColumn)
	return rotates <= 1 && shifts == minShift
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type dedupKey struct {
	cells [4]Point
	spin  TSpin
}

func canonicalKey(cells [4]Point, spin TSpin) dedupKey {
	sorted := cells
	sort.Slice(sorted[:], func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	return dedupKey{cells: sorted, spin: spin}
}

// Children enumerates every distinct resting placement reachable from
// g under fragment's grammar, together with a canonical action
// sequence to reach each (C6, §4.6). The result is sorted by
// lock-position row-major then rotation, and is deterministic for
// identical inputs.
func Children(g Game, frag FragmentSet) []Child {
	results := make(map[dedupKey]Child)

	collectFrom(g, frag, nil, results)

	if frag.AllowHold && g.CanHold {
		afterHold := g
		afterHold.Apply(ActionHold)
		collectFrom(afterHold, frag, []Action{ActionHold}, results)
	}

	out := make([]Child, 0, len(results))
	for _, c := range results {
		out = append(out, c)
	}
	sortChildren(out)
	return out
}

// collectFrom runs the fragment-grammar BFS starting from g.Active's
// spawn state, prefixing every discovered action sequence with prefix
// (used for the one-Hold-then-search branch), and merges results into
// out by canonical placement key.
func collectFrom(g Game, frag FragmentSet, prefix []Action, out map[dedupKey]Child) {
	if g.Over {
		return
	}
	start := bfsNode{piece: g.Active}
	visited := map[bfsKey]bool{key(start.piece): true}
	queue := []bfsNode{start}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		considerHardDrop(g, node, prefix, out)

		for _, a := range bfsMoves {
			cat := categoryOf(a)
			if cat == catRotate && node.rotations >= frag.MaxRotations {
				continue
			}
			if cat == catSoftDrop && node.softDrops >= frag.MaxSoftDrops {
				continue
			}
			newSegments := node.segments
			if cat != node.lastCategory || node.lastCategory == catNone {
				newSegments++
			}
			if newSegments > frag.MaxSegments {
				continue
			}

			next := node.piece
			if !applyAction(&next, &g.Board, a) {
				continue
			}
			k := key(next)
			if visited[k] {
				continue
			}
			visited[k] = true

			child := bfsNode{
				piece:        next,
				segments:     newSegments,
				rotations:    node.rotations,
				softDrops:    node.softDrops,
				lastCategory: cat,
				actions:      appendAction(node.actions, a),
			}
			if cat == catRotate {
				child.rotations++
			}
			if cat == catSoftDrop {
				child.softDrops++
			}
			queue = append(queue, child)
		}
	}
}

func key(p Piece) bfsKey {
	return bfsKey{rot: p.Rotation, x: p.X, y: p.Y, lastWasRotate: p.lastWasRotate}
}

func appendAction(existing []Action, a Action) []Action {
	out := make([]Action, len(existing)+1)
	copy(out, existing)
	out[len(existing)] = a
	return out
}

func applyAction(p *Piece, b *Board, a Action) bool {
	switch a {
	case ActionShiftLeft:
		return p.ShiftLeft(b)
	case ActionShiftRight:
		return p.ShiftRight(b)
	case ActionRotateCW:
		return p.RotateCW(b)
	case ActionRotateCCW:
		return p.RotateCCW(b)
	case ActionRotate180:
		return p.Rotate180(b)
	case ActionSoftDrop:
		return p.SoftDrop(b)
	default:
		return false
	}
}

// considerHardDrop simulates terminating node's path with a HardDrop,
// and if the resulting placement is new (or reached with a
// shorter/lexicographically-earlier sequence) than what's already in
// out, records it. The resulting Game is produced by replaying
// ActionHardDrop through the real Game.Apply, not a hand-rolled copy
// of its bookkeeping, so it can never drift from what actually
// applying Actions to g would produce (§8 invariant 1).
func considerHardDrop(g Game, node bfsNode, prefix []Action, out map[dedupKey]Child) {
	locked := restingPiece(&g.Board, node.piece)
	finalCells := locked.Cells()

	branch := g
	branch.Active = node.piece
	info := branch.Apply(ActionHardDrop)
	dk := canonicalKey(finalCells, info.TSpin)

	fullActions := make([]Action, 0, len(prefix)+len(node.actions)+1)
	fullActions = append(fullActions, prefix...)
	fullActions = append(fullActions, node.actions...)
	fullActions = append(fullActions, ActionHardDrop)

	candidate := Child{Game: branch, Actions: fullActions, lockedCells: dk.cells, Placement: locked}

	existing, has := out[dk]
	if !has || lessActions(fullActions, existing.Actions) {
		out[dk] = candidate
	}
}

// restingPiece returns p as it would come to rest if hard-dropped onto
// b right now, without mutating b or locking anything.
func restingPiece(b *Board, p Piece) Piece {
	p.Y = p.GhostY(b)
	return p
}

// lessActions orders two equal-purpose action sequences by length then
// lexicographically on the action alphabet, per §4.6.
func lessActions(a, b []Action) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// sortChildren orders results by lock-position row-major (min Y then
// min X of the final cells) then rotation, the documented order §4.6
// requires for reproducibility.
func sortChildren(children []Child) {
	sort.Slice(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.lockedCells[0].Y != b.lockedCells[0].Y {
			return a.lockedCells[0].Y < b.lockedCells[0].Y
		}
		if minCellX(a) != minCellX(b) {
			return minCellX(a) < minCellX(b)
		}
		return a.Placement.Rotation < b.Placement.Rotation
	})
}

func minCellX(c Child) int {
	minX := c.lockedCells[0].X
	for _, p := range c.lockedCells[1:] {
		if p.X < minX {
			minX = p.X
		}
	}
	return minX
}
