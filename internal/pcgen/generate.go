// Package pcgen drives the forward discovery pass that seeds C9: the
// set of valid PC boards reachable by actually dropping pieces,
// starting from the empty board. §4.9 assumes "every valid PcBoard"
// is already in hand; the full 2^40-board powerset is not enumerable,
// so this package builds the practically relevant subset instead — the
// boards gameplay can actually produce — by breadth-first exploration
// with the same Children/FragmentFinesse machinery C9 itself uses.
package pcgen

import (
	"context"
	"fmt"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// DefaultMaxBoards bounds the forward search so a run terminates in
// bounded memory; a full 4x10 PC subspace empties out well before this
// many distinct boards are reachable in practice.
const DefaultMaxBoards = 200_000

// Boards performs a breadth-first search from pcboard.Empty(), at each
// frontier board trying every piece type's Finesse children and
// keeping every result that embeds into the PC subspace, until no new
// board is discovered or maxBoards is reached. The returned slice is
// in discovery order, so index 0 is always the empty board.
func Boards(ctx context.Context, maxBoards int) ([]pcboard.PcBoard, error) {
	if maxBoards <= 0 {
		maxBoards = DefaultMaxBoards
	}

	visited := map[uint64]bool{pcboard.Empty().Bits(): true}
	order := []pcboard.PcBoard{pcboard.Empty()}
	frontier := []pcboard.PcBoard{pcboard.Empty()}

	for len(frontier) > 0 && len(order) < maxBoards {
		select {
		case <-ctx.Done():
			return order, fmt.Errorf("pcgen: board discovery cancelled: %w", ctx.Err())
		default:
		}

		var next []pcboard.PcBoard
		for _, board := range frontier {
			for _, child := range reachableFrom(board) {
				if visited[child.Bits()] {
					continue
				}
				visited[child.Bits()] = true
				order = append(order, child)
				next = append(next, child)
				if len(order) >= maxBoards {
					break
				}
			}
			if len(order) >= maxBoards {
				break
			}
		}
		frontier = next
	}
	return order, nil
}

// reachableFrom returns every board embeddable into the PC subspace
// reachable from board by dropping one piece of any type via the
// Finesse fragment set.
func reachableFrom(board pcboard.PcBoard) []pcboard.PcBoard {
	base := board.ToBoard()
	var out []pcboard.PcBoard
	for _, p := range tetris.AllPieceTypes {
		bag := tetris.NewFixedBag(tetris.AllPieceTypes[:])
		g := tetris.NewGameFromBoard(base, p, bag, 1)
		for _, child := range tetris.Children(g, tetris.FragmentFinesse) {
			childPc, ok := pcboard.FromBoard(&child.Game.Board)
			if !ok {
				continue
			}
			out = append(out, childPc)
		}
	}
	return out
}
