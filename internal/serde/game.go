// Package serde implements the Game JSON wire format of §6: the
// stable ingest/egress form consumed by external tooling and round-
// tripped by scenario S6.
package serde

import (
	"encoding/json"
	"fmt"

	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

// GameDoc is the on-wire shape of a Game. Board is row-major,
// board[y][x], row 0 first — the spec leaves the [10][24] vs [24][10]
// ambiguity open (§6); row-major by y was chosen to match Board's own
// indexing (Board.Row(y)) and avoid a transpose at every read.
type GameDoc struct {
	Board   [tetris.BoardHeight][tetris.BoardWidth]int `json:"board"`
	Active  ActiveDoc                                  `json:"active"`
	Hold    *string                                    `json:"hold"`
	CanHold bool                                       `json:"canHold"`
	Queue   []string                                   `json:"queue"`
}

// ActiveDoc is the wire shape of Game.Active.
type ActiveDoc struct {
	Type string `json:"type"`
	Rot  int    `json:"rot"`
	Loc  [2]int `json:"loc"`
}

// Marshal encodes g into the §6 Game JSON wire format.
func Marshal(g tetris.Game) ([]byte, error) {
	return json.Marshal(toDoc(g))
}

// MarshalIndent encodes g with indentation, for print_* dumps.
func MarshalIndent(g tetris.Game, indent string) ([]byte, error) {
	return json.MarshalIndent(toDoc(g), "", indent)
}

func toDoc(g tetris.Game) GameDoc {
	var doc GameDoc
	for y := 0; y < tetris.BoardHeight; y++ {
		for x := 0; x < tetris.BoardWidth; x++ {
			if g.Board.Get(x, y) {
				doc.Board[y][x] = 1
			}
		}
	}
	doc.Active = ActiveDoc{
		Type: g.Active.Type.String(),
		Rot:  int(g.Active.Rotation),
		Loc:  [2]int{g.Active.X, g.Active.Y},
	}
	if g.HasHold {
		s := g.Hold.String()
		doc.Hold = &s
	}
	doc.CanHold = g.CanHold
	for _, p := range g.Queue.Slice() {
		doc.Queue = append(doc.Queue, p.String())
	}
	return doc
}

// Unmarshal decodes the §6 Game JSON wire format into a Game. The
// resulting Game is fed by a fresh seed-0 7-bag, since bag state is
// not part of the wire contract; callers that need to keep drawing
// from a specific stream should replace g.Bag after unmarshaling.
func Unmarshal(data []byte) (tetris.Game, error) {
	var doc GameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return tetris.Game{}, fmt.Errorf("serde: decode game: %w: %v", tetris.ErrInvalidInput, err)
	}

	var board tetris.Board
	for y := 0; y < tetris.BoardHeight; y++ {
		for x := 0; x < tetris.BoardWidth; x++ {
			if doc.Board[y][x] != 0 {
				board.Set(x, y, true)
			}
		}
	}

	activeType, err := tetris.ParsePieceType(doc.Active.Type)
	if err != nil {
		return tetris.Game{}, fmt.Errorf("serde: decode active piece: %w", err)
	}

	target := len(doc.Queue)
	g := tetris.NewGameFromBoard(board, activeType, tetris.NewRng7Bag(0), target)
	g.Active.Rotation = tetris.Rotation(doc.Active.Rot)
	g.Active.X, g.Active.Y = doc.Active.Loc[0], doc.Active.Loc[1]
	g.CanHold = doc.CanHold

	if doc.Hold != nil {
		holdType, err := tetris.ParsePieceType(*doc.Hold)
		if err != nil {
			return tetris.Game{}, fmt.Errorf("serde: decode hold piece: %w", err)
		}
		g.Hold = holdType
		g.HasHold = true
	}

	g.Queue = tetris.NewQueue()
	for _, s := range doc.Queue {
		pt, err := tetris.ParsePieceType(s)
		if err != nil {
			return tetris.Game{}, fmt.Errorf("serde: decode queue piece: %w", err)
		}
		g.Queue.Push(pt)
	}

	return g, nil
}
