package tetris

// GamePhase names the states of the per-lock state machine (§4.12).
// Apply collapses Locking/Clearing/Spawning into a single atomic step,
// but Phase reflects where the last HardDrop left the game so callers
// (and tests) can distinguish a live game from a terminal one without
// re-deriving it from Board/Over.
type GamePhase uint8

const (
	PhasePlaying GamePhase = iota
	PhaseToppedOut
)

// Game is the full mutable state of one Tetris game (C5): board,
// active piece, hold, queue and its feeding bag. Like Board and Piece
// it is a value type — copy it to fork independent continuations, as
// C6's child-state search does.
type Game struct {
	Board   Board
	Active  Piece
	Hold    PieceType
	HasHold bool
	CanHold bool
	Queue   Queue
	Bag     Bag
	Over    bool
	Phase   GamePhase

	// QueueTarget is the length the queue is refilled to after every
	// hard drop (§4.5 "Queue refill").
	QueueTarget int
}

// DefaultQueueTarget matches common guideline "next" previews.
const DefaultQueueTarget = 5

// NewGame creates a fresh game fed by bag, with the queue pre-filled
// to target and the first piece spawned.
func NewGame(bag Bag, target int) Game {
	if target <= 0 {
		target = DefaultQueueTarget
	}
	g := Game{Bag: bag, CanHold: true, QueueTarget: target}
	g.Queue.Refill(&g.Bag, g.QueueTarget)
	first, _ := g.Queue.Pop()
	g.Queue.Refill(&g.Bag, g.QueueTarget)
	g.spawnActive(first)
	return g
}

// NewGameFromBoard builds a Game over an explicit pre-existing board
// with active freshly spawned on it, used by the PC pipeline's graph
// explorer (C9) to probe placements from a given PcBoard rather than a
// freshly dealt game.
func NewGameFromBoard(b Board, active PieceType, bag Bag, queueTarget int) Game {
	if queueTarget <= 0 {
		queueTarget = DefaultQueueTarget
	}
	g := Game{Board: b, Bag: bag, CanHold: true, QueueTarget: queueTarget}
	g.Queue.Refill(&g.Bag, g.QueueTarget)
	g.spawnActive(active)
	return g
}

// spawnActive spawns a fresh piece of type t, flagging Over/ToppedOut
// if the spawn position is already blocked.
func (g *Game) spawnActive(t PieceType) {
	g.Active = NewPiece(t, &g.Board)
	if !g.Active.fits(&g.Board) {
		g.Over = true
		g.Phase = PhaseToppedOut
	}
}

// Apply performs one atomic Action (§3/§4.5) and returns the resulting
// LockInfo — zero-valued except after a HardDrop. Applying any action
// once Over is true leaves the game unchanged and returns a LockInfo
// with only TopOut set.
func (g *Game) Apply(a Action) LockInfo {
	if g.Over {
		return LockInfo{TopOut: true}
	}
	switch a {
	case ActionShiftLeft:
		g.Active.ShiftLeft(&g.Board)
	case ActionShiftRight:
		g.Active.ShiftRight(&g.Board)
	case ActionRotateCW:
		g.Active.RotateCW(&g.Board)
	case ActionRotateCCW:
		g.Active.RotateCCW(&g.Board)
	case ActionRotate180:
		g.Active.Rotate180(&g.Board)
	case ActionSoftDrop:
		g.Active.SoftDrop(&g.Board)
	case ActionHold:
		g.applyHold()
	case ActionHardDrop:
		return g.applyHardDrop()
	}
	return LockInfo{}
}

// applyHold swaps the active piece with the held one, per §4.5.
func (g *Game) applyHold() {
	if !g.CanHold {
		return
	}
	current := g.Active.Type
	var next PieceType
	if g.HasHold {
		next = g.Hold
	} else {
		var ok bool
		next, ok = g.Queue.Pop()
		if !ok {
			next = g.Bag.Next()
		}
		g.Queue.Refill(&g.Bag, g.QueueTarget)
	}
	g.Hold = current
	g.HasHold = true
	g.spawnActive(next)
	g.CanHold = false
}

// applyHardDrop locks the active piece, clears lines, and spawns the
// next queued piece, per §4.5/§4.12.
func (g *Game) applyHardDrop() LockInfo {
	info := g.Active.HardDrop(&g.Board)
	g.CanHold = true

	next, ok := g.Queue.Pop()
	if !ok {
		next = g.Bag.Next()
	}
	g.Queue.Refill(&g.Bag, g.QueueTarget)

	if info.TopOut {
		g.Over = true
		g.Phase = PhaseToppedOut
		return info
	}

	g.spawnActive(next)
	if g.Over {
		info.TopOut = true
	} else {
		g.Phase = PhasePlaying
	}
	return info
}

// Clone returns an independent copy of g. Because every field of Game
// is itself a value type, this is equivalent to a plain struct copy;
// Clone exists to make the intent explicit at call sites (C6 forks a
// Game per branch of its search).
func (g Game) Clone() Game { return g }
