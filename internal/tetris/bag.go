package tetris

import "github.com/thesilican/tetris-ai-sub001/internal/prng"

// bagKind discriminates the two Bag variants (§3).
type bagKind uint8

const (
	bagFixed bagKind = iota
	bagRng7
)

// Bag is a source of pieces (C4): either a fixed repeating sequence or
// a seeded 7-bag randomizer. It is a plain value type — copying a Bag
// yields an independent draw stream, which C6's speculative child
// search relies on when it forks a Game to explore a branch without
// perturbing the original.
type Bag struct {
	kind bagKind

	// bagFixed fields.
	sequence []PieceType
	fixedPos int

	// bagRng7 fields.
	stream    prng.Stream
	rngQueue  [BagLen]PieceType
	rngPos    int
	rngFilled bool
}

// NewFixedBag returns a Bag that repeats sequence indefinitely. Panics
// if sequence is empty.
func NewFixedBag(sequence []PieceType) Bag {
	if len(sequence) == 0 {
		panic("tetris: NewFixedBag requires a non-empty sequence")
	}
	cp := make([]PieceType, len(sequence))
	copy(cp, sequence)
	return Bag{kind: bagFixed, sequence: cp}
}

// NewRng7Bag returns a 7-bag randomizer seeded with seed. Identical
// seeds always produce identical draw sequences across runs and
// platforms (§4.4).
func NewRng7Bag(seed uint64) Bag {
	return Bag{kind: bagRng7, stream: *prng.New(seed)}
}

// Next dequeues and returns the next piece type, refilling internally
// as needed.
func (b *Bag) Next() PieceType {
	switch b.kind {
	case bagFixed:
		p := b.sequence[b.fixedPos]
		b.fixedPos = (b.fixedPos + 1) % len(b.sequence)
		return p
	case bagRng7:
		if !b.rngFilled || b.rngPos >= BagLen {
			b.refillRng7()
		}
		p := b.rngQueue[b.rngPos]
		b.rngPos++
		return p
	default:
		panic("tetris: Bag used before initialization")
	}
}

// refillRng7 copies the canonical 7 piece types and shuffles them in
// place with a reverse Fisher-Yates pass (§4.4): for i from n-1 down
// to 1, swap index i with a uniform draw from [0, i).
func (b *Bag) refillRng7() {
	b.rngQueue = AllPieceTypes
	for i := len(b.rngQueue) - 1; i >= 1; i-- {
		j := int(b.stream.Uint64N(uint64(i)))
		b.rngQueue[i], b.rngQueue[j] = b.rngQueue[j], b.rngQueue[i]
	}
	b.rngPos = 0
	b.rngFilled = true
}
