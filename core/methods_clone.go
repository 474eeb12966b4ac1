// File: methods_clone.go
// Role: Lifecycle: Freeze/Frozen and Clone.
// Concurrency:
//   - Freeze takes the write lock so no AddEdge can straddle it.
//   - Clone snapshots under the read lock; the source graph is never mutated.
// AI-HINT (file):
//   - Freeze once the build phase is over; caches over a graph rely on it.
//   - Clone is always unfrozen, so it can be extended independently.

package core

import "github.com/tevino/abool"

// Freeze makes the graph read-only: every later AddEdge and
// AddUndirectedEdge returns ErrGraphFrozen. Freezing twice is a no-op.
// Complexity: O(1).
func (g *Graph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.frozen.Set()
}

// Frozen reports whether Freeze has been called.
// Complexity: O(1), lock-free.
func (g *Graph) Frozen() bool {
	return g.frozen.IsSet()
}

// Clone returns a deep copy of g with the same size, capacity hint and edges.
// The clone is never frozen, whatever the state of g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		size:      g.size,
		edgeCap:   g.edgeCap,
		edgeCount: g.edgeCount,
		adjacency: make([][]Edge, g.size),
		frozen:    abool.New(),
	}
	for v, list := range g.adjacency {
		if list == nil {
			continue
		}
		clone.adjacency[v] = make([]Edge, len(list), cap(list))
		copy(clone.adjacency[v], list)
	}

	return clone
}
