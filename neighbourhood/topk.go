package neighbourhood

import (
	"container/heap"

	"github.com/routeforge/vrpcore/model"
)

// candidate is one (location, proximity) pair considered for a client's
// neighbour list.
type candidate struct {
	loc  model.LocationIndex
	prox float64
}

// maxHeap is a bounded max-heap of candidates: the root is the WORST
// (largest-proximity) candidate retained so far, so a new, better candidate
// can replace it in O(log k).
type maxHeap []candidate

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i].prox > h[j].prox }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// selectTopK keeps the k candidates with the smallest proximity out of
// every (loc, prox) pair yielded by next, without ever materialising the
// full candidate list.
func selectTopK(k int, next func(yield func(candidate))) []candidate {
	h := make(maxHeap, 0, k)
	next(func(c candidate) {
		if h.Len() < k {
			heap.Push(&h, c)
			return
		}
		if c.prox < h[0].prox {
			heap.Pop(&h)
			heap.Push(&h, c)
		}
	})

	out := make([]candidate, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(candidate)
	}
	return out
}
