// Package pctable implements the PC table builder (C11) and the
// little-endian binary artifact formats of §6: tessellations.bin,
// edges.bin, pruned.bin and pc-table.bin.
package pctable

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
	"github.com/thesilican/tetris-ai-sub001/internal/pcgraph"
	"github.com/thesilican/tetris-ai-sub001/internal/tessellate"
	"github.com/thesilican/tetris-ai-sub001/internal/tetris"
)

const formatVersion = 1

var (
	magicTessellations = [4]byte{'P', 'C', 'T', 'S'}
	magicEdges         = [4]byte{'P', 'C', 'E', 'D'}
	magicPruned        = [4]byte{'P', 'C', 'P', 'R'}
	magicTable         = [4]byte{'P', 'C', 'T', 'B'}
)

func writeHeader(w io.Writer, magic [4]byte) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("pctable: write header: %w", err)
	}
	return binary.Write(w, binary.LittleEndian, uint8(formatVersion))
}

func readHeader(r io.Reader, want [4]byte) error {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return fmt.Errorf("pctable: read header: %w", err)
	}
	if magic != want {
		return fmt.Errorf("pctable: bad magic %q, want %q: %w", magic, want, tetris.ErrInvalidInput)
	}
	var version uint8
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return fmt.Errorf("pctable: read version: %w", err)
	}
	if version != formatVersion {
		return fmt.Errorf("pctable: unsupported version %d: %w", version, tetris.ErrInvalidInput)
	}
	return nil
}

func writeActions(w io.Writer, actions []tetris.Action) error {
	buf := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(buf, uint64(len(actions)))
	if _, err := w.Write(buf[:n]); err != nil {
		return err
	}
	for _, a := range actions {
		if err := binary.Write(w, binary.LittleEndian, uint8(a)); err != nil {
			return err
		}
	}
	return nil
}

func readActions(r *bufio.Reader) ([]tetris.Action, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	actions := make([]tetris.Action, n)
	for i := range actions {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		actions[i] = tetris.Action(b)
	}
	return actions, nil
}

// WriteTessellations serializes tessellations as a length-prefixed
// list of (piece:u8, rot:u8, x:u8, y:u8) tuples per tessellation.
func WriteTessellations(w io.Writer, tessellations []tessellate.Tessellation) error {
	if err := writeHeader(w, magicTessellations); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(tessellations))); err != nil {
		return err
	}
	for _, tess := range tessellations {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(tess))); err != nil {
			return err
		}
		for _, pl := range tess {
			rec := [4]byte{uint8(pl.Piece), uint8(pl.Rotation), uint8(pl.X), uint8(pl.Y)}
			if _, err := w.Write(rec[:]); err != nil {
				return fmt.Errorf("pctable: write placement: %w", err)
			}
		}
	}
	return nil
}

// ReadTessellations deserializes the format WriteTessellations writes.
func ReadTessellations(r io.Reader) ([]tessellate.Tessellation, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br, magicTessellations); err != nil {
		return nil, err
	}
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("pctable: read tessellation count: %w", err)
	}
	out := make([]tessellate.Tessellation, count)
	for i := range out {
		var n uint32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("pctable: read placement count: %w", err)
		}
		tess := make(tessellate.Tessellation, n)
		for j := range tess {
			var rec [4]byte
			if _, err := io.ReadFull(br, rec[:]); err != nil {
				return nil, fmt.Errorf("pctable: read placement: %w", err)
			}
			tess[j] = tessellate.Placement{
				Piece:    tetris.PieceType(rec[0]),
				Rotation: tetris.Rotation(rec[1]),
				X:        int(rec[2]),
				Y:        int(rec[3]),
			}
		}
		out[i] = tess
	}
	return out, nil
}

func writeEdgeList(w io.Writer, magic [4]byte, edges []pcgraph.Edge) error {
	if err := writeHeader(w, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(edges))); err != nil {
		return err
	}
	for _, e := range edges {
		if err := binary.Write(w, binary.LittleEndian, e.Parent.Bits()); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.Child.Bits()); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint8(e.Piece)); err != nil {
			return err
		}
		if err := writeActions(w, e.Actions); err != nil {
			return fmt.Errorf("pctable: write edge actions: %w", err)
		}
	}
	return nil
}

func readEdgeList(r io.Reader, magic [4]byte) ([]pcgraph.Edge, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br, magic); err != nil {
		return nil, err
	}
	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("pctable: read edge count: %w", err)
	}
	out := make([]pcgraph.Edge, count)
	for i := range out {
		var parent, child uint64
		var piece uint8
		if err := binary.Read(br, binary.LittleEndian, &parent); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &child); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &piece); err != nil {
			return nil, err
		}
		actions, err := readActions(br)
		if err != nil {
			return nil, fmt.Errorf("pctable: read edge actions: %w", err)
		}
		out[i] = pcgraph.Edge{
			Parent:  pcboard.FromBits(parent),
			Child:   pcboard.FromBits(child),
			Piece:   tetris.PieceType(piece),
			Actions: actions,
		}
	}
	return out, nil
}

// WriteEdges serializes the full explored edge set (§6 edges.bin).
func WriteEdges(w io.Writer, edges []pcgraph.Edge) error { return writeEdgeList(w, magicEdges, edges) }

// ReadEdges deserializes edges.bin.
func ReadEdges(r io.Reader) ([]pcgraph.Edge, error) { return readEdgeList(r, magicEdges) }

// WritePruned serializes the post-pruning edge subset (§6 pruned.bin).
func WritePruned(w io.Writer, edges []pcgraph.Edge) error {
	return writeEdgeList(w, magicPruned, edges)
}

// ReadPruned deserializes pruned.bin.
func ReadPruned(r io.Reader) ([]pcgraph.Edge, error) { return readEdgeList(r, magicPruned) }

// Key identifies one row of the PC table: a board and the piece about
// to be placed on it (§3 PcTableKey).
type Key struct {
	Board uint64
	Piece tetris.PieceType
}

// Leaf is one reachable child and the action sequence that reaches
// it, annotated with its BFS distance to the empty board (§3
// PcTableLeaf, §9 supplemented leaf-ranking feature).
type Leaf struct {
	Child    uint64
	Actions  []tetris.Action
	Distance int
}

// Table is the built, in-memory PC lookup table (C11).
type Table struct {
	RunID   uuid.UUID
	Entries map[Key][]Leaf
}

// Build groups pruned edges by (parent, piece) and attaches each
// leaf's distance-to-empty computed by pcgraph.Prune.
func Build(edges []pcgraph.Edge, distance map[uint64]int, runID uuid.UUID) *Table {
	t := &Table{RunID: runID, Entries: make(map[Key][]Leaf)}
	for _, e := range edges {
		k := Key{Board: e.Parent.Bits(), Piece: e.Piece}
		d, ok := distance[e.Child.Bits()]
		if !ok {
			continue
		}
		t.Entries[k] = append(t.Entries[k], Leaf{
			Child:    e.Child.Bits(),
			Actions:  e.Actions,
			Distance: d,
		})
	}
	return t
}

// Lookup returns the leaves recorded for (board, piece).
func (t *Table) Lookup(board pcboard.PcBoard, piece tetris.PieceType) ([]Leaf, bool) {
	leaves, ok := t.Entries[Key{Board: board.Bits(), Piece: piece}]
	return leaves, ok
}

// BestLeaf returns the leaf with the smallest distance-to-empty for
// (board, piece), the "downstream heuristic" §4.11 calls for.
func (t *Table) BestLeaf(board pcboard.PcBoard, piece tetris.PieceType) (Leaf, bool) {
	leaves, ok := t.Lookup(board, piece)
	if !ok || len(leaves) == 0 {
		return Leaf{}, false
	}
	best := leaves[0]
	for _, l := range leaves[1:] {
		if l.Distance < best.Distance {
			best = l
		}
	}
	return best, true
}

// Write serializes the table (§6 pc-table.bin): header, run UUID, then
// a length-prefixed list of keys each followed by its leaf list.
func (t *Table) Write(w io.Writer) error {
	if err := writeHeader(w, magicTable); err != nil {
		return err
	}
	runIDBytes, err := t.RunID.MarshalBinary()
	if err != nil {
		return fmt.Errorf("pctable: marshal run id: %w", err)
	}
	if _, err := w.Write(runIDBytes); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Entries))); err != nil {
		return err
	}
	for k, leaves := range t.Entries {
		if err := binary.Write(w, binary.LittleEndian, k.Board); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint8(k.Piece)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(leaves))); err != nil {
			return err
		}
		for _, l := range leaves {
			if err := binary.Write(w, binary.LittleEndian, l.Child); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(l.Distance)); err != nil {
				return err
			}
			if err := writeActions(w, l.Actions); err != nil {
				return fmt.Errorf("pctable: write leaf actions: %w", err)
			}
		}
	}
	return nil
}

// ReadTable deserializes pc-table.bin.
func ReadTable(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if err := readHeader(br, magicTable); err != nil {
		return nil, err
	}
	var runIDBytes [16]byte
	if _, err := io.ReadFull(br, runIDBytes[:]); err != nil {
		return nil, fmt.Errorf("pctable: read run id: %w", err)
	}
	runID, err := uuid.FromBytes(runIDBytes[:])
	if err != nil {
		return nil, fmt.Errorf("pctable: parse run id: %w", err)
	}

	var keyCount uint32
	if err := binary.Read(br, binary.LittleEndian, &keyCount); err != nil {
		return nil, fmt.Errorf("pctable: read key count: %w", err)
	}

	t := &Table{RunID: runID, Entries: make(map[Key][]Leaf, keyCount)}
	for i := uint32(0); i < keyCount; i++ {
		var board uint64
		var piece uint8
		var leafCount uint32
		if err := binary.Read(br, binary.LittleEndian, &board); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &piece); err != nil {
			return nil, err
		}
		if err := binary.Read(br, binary.LittleEndian, &leafCount); err != nil {
			return nil, err
		}
		leaves := make([]Leaf, leafCount)
		for j := range leaves {
			var child uint64
			var distance uint32
			if err := binary.Read(br, binary.LittleEndian, &child); err != nil {
				return nil, err
			}
			if err := binary.Read(br, binary.LittleEndian, &distance); err != nil {
				return nil, err
			}
			actions, err := readActions(br)
			if err != nil {
				return nil, fmt.Errorf("pctable: read leaf actions: %w", err)
			}
			leaves[j] = Leaf{Child: child, Distance: int(distance), Actions: actions}
		}
		t.Entries[Key{Board: board, Piece: tetris.PieceType(piece)}] = leaves
	}
	return t, nil
}
