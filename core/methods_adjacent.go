// File: methods_adjacent.go
// Role: Neighborhood API (Neighbors, OutDegree) and Size.
// Determinism:
//   - Neighbors() preserves insertion order.
// Concurrency:
//   - Read operations hold the mu read lock; returned slices never alias internal storage.

package core

// Size returns the number of vertices; valid indices are [0, Size()).
// Complexity: O(1). size is immutable, so no lock is taken.
func (g *Graph) Size() int {
	return g.size
}

// Neighbors returns a copy of the outgoing edges of v in insertion order.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexOutOfRange).
//   - Stage 2: Copy adjacency[v] under the read lock.
//
// Returns:
//   - []Edge: outgoing edges; empty (non-nil) slice when v has none.
//   - error: nil on success; ErrVertexOutOfRange (wrapped) otherwise.
//
// Complexity:
//   - Time O(deg(v)), Space O(deg(v)).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out, nil
}

// OutDegree returns the number of outgoing edges of v.
// Complexity: O(1).
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[v]), nil
}
