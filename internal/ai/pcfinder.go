package ai

import (
	"fmt"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/pctable"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// PcFinderAi chooses moves by looking up the current board in a
// pre-built PC table and picking the leaf closest to an empty board
// (§4.11, §6 Ai trait).
type PcFinderAi struct {
	Table *pctable.Table
}

// NewPcFinderAi wraps a loaded PC table as an Ai.
func NewPcFinderAi(t *pctable.Table) *PcFinderAi {
	return &PcFinderAi{Table: t}
}

// Evaluate embeds g's board into the PC subspace, looks up the active
// piece's leaves, and returns the actions of whichever leaf has the
// smallest distance-to-empty. Fails if the board does not embed into
// the PC subspace or the table has no entry for it.
func (a *PcFinderAi) Evaluate(g *tetris.Game) AiResult {
	pc, ok := pcboard.FromBoard(&g.Board)
	if !ok {
		return Fail("board does not embed into the PC subspace")
	}
	leaf, ok := a.Table.BestLeaf(pc, g.Active.Type)
	if !ok {
		return Fail(fmt.Sprintf("no table entry for board=%d piece=%s", pc.Bits(), g.Active.Type))
	}
	score := float64(-leaf.Distance)
	return Ok(leaf.Actions, &score)
}
