package wfc

import (
	"container/heap"

	"github.com/wavesynth/wfc/geom"
	"github.com/wavesynth/wfc/wave"
)

// coordEntropy is one priority-queue entry: the cell's EntropyKey as of
// the moment it was pushed. The queue never mutates an entry in place
// (no decrease-key); chooseNextCell instead detects staleness by
// comparing SnapshotWeightedCount against the cell's live count.
type coordEntropy struct {
	coord geom.Coord
	key   wave.EntropyKey
}

type entropyHeap []coordEntropy

func (h entropyHeap) Len() int            { return len(h) }
func (h entropyHeap) Less(i, j int) bool  { return h[i].key.Less(h[j].key) }
func (h entropyHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entropyHeap) Push(x interface{}) { *h = append(*h, x.(coordEntropy)) }
func (h *entropyHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// observer is a min-entropy priority queue over output cells, with lazy
// invalidation: stale entries are discarded on pop rather than updated
// in place.
type observer struct {
	heap entropyHeap
}

func (o *observer) clear() {
	o.heap = o.heap[:0]
}

func (o *observer) push(coord geom.Coord, key wave.EntropyKey) {
	heap.Push(&o.heap, coordEntropy{coord: coord, key: key})
}

// chooseNextCell pops entries until it finds one whose snapshot still
// matches the cell's live weighted-pattern count and which has more than
// one admitted pattern, or the heap empties.
func (o *observer) chooseNextCell(w *wave.Wave) (geom.Coord, bool) {
	for o.heap.Len() > 0 {
		top := heap.Pop(&o.heap).(coordEntropy)
		cell := w.Get(top.coord)
		if cell.NumWeightedCompat() == top.key.SnapshotWeightedCount && cell.NumCompat() > 1 {
			return top.coord, true
		}
	}
	return geom.Coord{}, false
}
