// Package core provides the fixed-size, index-addressed Graph that every
// algorithm in sssp runs on.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are the integers [0, Size()). There is no vertex entity and no
//     vertex insertion; the index space is fixed by NewGraph.
//   - Edges are directed and stored in per-source adjacency lists, in insertion
//     order. An undirected edge is two directed edges of equal weight
//     (AddUndirectedEdge).
//   - Weights are non-negative int64 values. Negative weights are rejected with
//     ErrInvalidWeight, so downstream shortest-path code never sees them.
//   - Self-loops and parallel edges are accepted as ordinary input.
//   - There is no removal and no weight update: a Graph only grows.
//
// Lifecycle:
//
//	g, err := core.NewGraph(10)   // build phase
//	_ = g.AddEdge(0, 1, 5)
//	_ = g.AddUndirectedEdge(1, 2, 3)
//	g.Freeze()                    // read-only from here on (optional)
//
// Core Methods:
//
//	// Construction & mutation
//	NewGraph(size int, opts ...GraphOption) (*Graph, error) // O(V)
//	AddEdge(from, to int, weight int64) error               // O(1) amortized
//	AddUndirectedEdge(u, v int, weight int64) error         // O(1) amortized
//
//	// Query
//	Size() int                                    // O(1)
//	EdgeCount() int                               // O(1)
//	Neighbors(v int) ([]Edge, error)              // O(deg(v)), copy in insertion order
//	Edges() []Edge                                // O(V+E), grouped by From
//	HasEdge(from, to int) bool                    // O(deg(from))
//	Weight(from, to int) (int64, bool)            // O(deg(from)), minimum over parallel edges
//	OutDegree(v int) (int, error)                 // O(1)
//
//	// Lifecycle
//	Freeze() / Frozen() bool                      // O(1)
//	Clone() *Graph                                // O(V+E), unfrozen deep copy
//
// Concurrency:
//
//	All methods are safe for concurrent use; a sync.RWMutex guards the
//	adjacency lists and an atomic flag guards the frozen state. Algorithms only
//	read, so any number of computations may share one Graph. Mutating a Graph
//	while a computation reads it is legal but yields a result for an
//	unspecified snapshot; Freeze the graph to rule that out.
//
// Errors:
//
//	ErrInvalidSize      – NewGraph with a negative size.
//	ErrVertexOutOfRange – an index outside [0, Size()).
//	ErrInvalidWeight    – a negative edge weight.
//	ErrGraphFrozen      – AddEdge after Freeze.
package core
