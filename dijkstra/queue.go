package dijkstra

import (
	"container/heap"

	"github.com/rhartert/yagh"
)

// frontier is the min-priority queue consumed by runner.process.
// push may be called again for a vertex already queued with a larger
// priority; pop must return the smallest priority first.
type frontier interface {
	push(v int, dist int64)
	pop() nodeItem
	size() int
}

// newFrontier builds the queue selected by p for a graph of n vertices.
func newFrontier(p QueuePolicy, n int) frontier {
	if p == QueueIndexed {
		return &indexedQueue{h: yagh.New[int64](n)}
	}
	pq := make(nodePQ, 0, n)
	heap.Init(&pq)

	return &lazyQueue{pq: pq}
}

// nodeItem represents a vertex and its distance from the source at push time.
type nodeItem struct {
	vertex int   // vertex index
	dist   int64 // distance from source when pushed
}

// lazyQueue implements the "lazy-decrease-key" strategy: an improved vertex is
// pushed again and the outdated entry is ignored by process when popped.
type lazyQueue struct {
	pq nodePQ
}

func (q *lazyQueue) push(v int, dist int64) { heap.Push(&q.pq, nodeItem{vertex: v, dist: dist}) }
func (q *lazyQueue) pop() nodeItem { return heap.Pop(&q.pq).(nodeItem) }
func (q *lazyQueue) size() int { return q.pq.Len() }

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// indexedQueue keeps at most one entry per vertex; push on a queued vertex
// updates its key in place (decrease-key), so nothing popped is ever stale.
type indexedQueue struct {
	h *yagh.IntMap[int64]
}

func (q *indexedQueue) push(v int, dist int64) { q.h.Put(v, dist) }

func (q *indexedQueue) pop() nodeItem {
	e := q.h.Pop()

	return nodeItem{vertex: e.Elem, dist: e.Cost}
}

func (q *indexedQueue) size() int { return q.h.Size() }
