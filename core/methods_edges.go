// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/AddUndirectedEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges grouped by From ascending, insertion order within a group.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.
// AI-HINT (file):
//   - Negative weights are rejected with ErrInvalidWeight; shortest-path code relies on it.
//   - AddUndirectedEdge validates once, then inserts both directions under one lock.

package core

import "fmt"

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both endpoints (ErrVertexOutOfRange) and the weight (ErrInvalidWeight).
//  2. Lock mu; reject if frozen (ErrGraphFrozen).
//  3. Append to adjacency[from]; bump edgeCount.
//
// Self-loops and parallel edges are accepted.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if err := g.validateEdge(from, to, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen.IsSet() {
		return ErrGraphFrozen
	}
	g.appendEdge(from, to, weight)

	return nil
}

// AddUndirectedEdge inserts u→v and v→u with the same weight.
//
// Both directions share the same preconditions, so they are validated once up
// front and then inserted under a single write lock: either both edges are
// stored or neither is. For u == v two identical self-loops are stored, exactly
// as two AddEdge calls would.
//
// The helper always produces symmetric weights; there is no per-direction override.
// Complexity: O(1) amortized.
func (g *Graph) AddUndirectedEdge(u, v int, weight int64) error {
	if err := g.validateEdge(u, v, weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen.IsSet() {
		return ErrGraphFrozen
	}
	g.appendEdge(u, v, weight)
	g.appendEdge(v, u, weight)

	return nil
}

// HasEdge reports whether at least one edge from→to exists.
// Out-of-range indices simply report false.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to int) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the smallest weight among the edges from→to.
// The boolean is false when no such edge exists or an index is out of range.
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to int) (int64, bool) {
	if g.checkVertex(from) != nil || g.checkVertex(to) != nil {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		best  int64
		found bool
	)
	for _, e := range g.adjacency[from] {
		if e.To != to {
			continue
		}
		if !found || e.Weight < best {
			best, found = e.Weight, true
		}
	}

	return best, found
}

// Edges returns a copy of every edge, grouped by From ascending and in
// insertion order within each group.
// Complexity: O(V+E) time, O(E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// EdgeCount returns the number of directed edges stored.
// An undirected edge counts twice.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// validateEdge checks endpoints and weight without taking any lock.
func (g *Graph) validateEdge(from, to int, weight int64) error {
	if err := g.checkVertex(from); err != nil {
		return err
	}
	if err := g.checkVertex(to); err != nil {
		return err
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrInvalidWeight, from, to, weight)
	}

	return nil
}

// appendEdge stores from→to. Caller must hold mu for writing.
func (g *Graph) appendEdge(from, to int, weight int64) {
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++
}
