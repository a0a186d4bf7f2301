// Package pcgraph builds and prunes the reachability graph over PC
// boards (C9, C10): for every valid board and every piece type, which
// child boards are reachable, and which of those boards lie on a path
// back to the empty board.
package pcgraph

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// Edge is a directed transition between two PC boards witnessed by
// dropping one piece with a specific action sequence (§3 Edge).
type Edge struct {
	Parent  pcboard.PcBoard
	Child   pcboard.PcBoard
	Piece   tetris.PieceType
	Actions []tetris.Action
}

type edgeKey struct {
	parent, child uint64
	piece         tetris.PieceType
}

// Explore computes the edge set reachable from boards by placing each
// of the 7 piece types on each board via C6's Finesse fragment grammar
// (the repo's FRAGMENTS set, §4.9), sharded across a worker pool of
// size workers. It returns once every board has been processed or ctx
// is cancelled.
func Explore(ctx context.Context, boards []pcboard.PcBoard, workers int) ([]Edge, error) {
	if workers <= 0 {
		workers = 1
	}

	var mu sync.Mutex
	merged := make(map[edgeKey]Edge)

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for _, board := range boards {
		board := board
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			if err := ctx.Err(); err != nil {
				return err
			}
			local := exploreBoard(board)
			mu.Lock()
			mergeEdges(merged, local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Edge, 0, len(merged))
	for _, e := range merged {
		out = append(out, e)
	}
	sortEdges(out)
	return out, nil
}

// exploreBoard computes every edge originating from board, for every
// piece type, keeping the shortest-action witness per (child, piece).
func exploreBoard(board pcboard.PcBoard) map[edgeKey]Edge {
	out := make(map[edgeKey]Edge)
	base := board.ToBoard()
	for _, p := range tetris.AllPieceTypes {
		bag := tetris.NewFixedBag(tetris.AllPieceTypes[:])
		g := tetris.NewGameFromBoard(base, p, bag, 1)
		for _, child := range tetris.Children(g, tetris.FragmentFinesse) {
			childPc, ok := pcboard.FromBoard(&child.Game.Board)
			if !ok {
				continue
			}
			k := edgeKey{parent: board.Bits(), child: childPc.Bits(), piece: p}
			edge := Edge{Parent: board, Child: childPc, Piece: p, Actions: child.Actions}
			if existing, has := out[k]; !has || len(edge.Actions) < len(existing.Actions) {
				out[k] = edge
			}
		}
	}
	return out
}

func mergeEdges(dst, src map[edgeKey]Edge) {
	for k, e := range src {
		if existing, has := dst[k]; !has || len(e.Actions) < len(existing.Actions) {
			dst[k] = e
		}
	}
}

// sortEdges imposes a total order so the serialized artifact is
// byte-identical across runs given identical inputs (§5 Ordering
// guarantees).
func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Parent.Bits() != b.Parent.Bits() {
			return a.Parent.Bits() < b.Parent.Bits()
		}
		if a.Piece != b.Piece {
			return a.Piece < b.Piece
		}
		return a.Child.Bits() < b.Child.Bits()
	})
}
