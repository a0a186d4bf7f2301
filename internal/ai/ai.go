// Package ai defines the runtime AI contract (§6 Ai trait) and a
// PC-table-backed implementation.
package ai

import "github.com/thesilican/tetris-ai-sub001/internal/tetris"

// AiResult is the outcome of one Ai.Evaluate call: either a move plan
// or a reported failure reason. Exactly one of the two states holds.
type AiResult struct {
	Success bool            `json:"success"`
	Moves   []tetris.Action `json:"moves,omitempty"`
	Score   *float64        `json:"score,omitempty"`
	Reason  string          `json:"reason,omitempty"`
}

// Ok constructs a successful AiResult.
func Ok(moves []tetris.Action, score *float64) AiResult {
	return AiResult{Success: true, Moves: moves, Score: score}
}

// Fail constructs a failed AiResult with reason.
func Fail(reason string) AiResult {
	return AiResult{Success: false, Reason: reason}
}

// Ai is the capability every move-choosing implementation exposes
// (§6): given the current game, either a move plan or a reason it
// could not produce one.
type Ai interface {
	Evaluate(g *tetris.Game) AiResult
}
