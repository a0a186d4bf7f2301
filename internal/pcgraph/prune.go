package pcgraph

import (
	"github.com/thesilican/tetris-ai-sub001/internal/pcboard"
)

// Prune runs a reverse-BFS from the empty PcBoard over edges and keeps
// only those whose endpoints both lie on some path back to empty
// (C10, §4.10). It also returns, per board, the BFS distance-to-empty
// discovered along the way (§9 supplemented feature: PC-table leaf
// ranking by remaining depth) for callers that want it without a
// second pass.
func Prune(edges []Edge) (survivors []Edge, distance map[uint64]int) {
	reverse := make(map[uint64][]uint64)
	for _, e := range edges {
		c := e.Child.Bits()
		reverse[c] = append(reverse[c], e.Parent.Bits())
	}

	distance = make(map[uint64]int)
	emptyKey := pcboard.Empty().Bits()
	distance[emptyKey] = 0
	queue := []uint64{emptyKey}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, parent := range reverse[cur] {
			if _, seen := distance[parent]; seen {
				continue
			}
			distance[parent] = distance[cur] + 1
			queue = append(queue, parent)
		}
	}

	survivors = make([]Edge, 0, len(edges))
	for _, e := range edges {
		_, parentVisited := distance[e.Parent.Bits()]
		_, childVisited := distance[e.Child.Bits()]
		if parentVisited && childVisited {
			survivors = append(survivors, e)
		}
	}
	return survivors, distance
}
