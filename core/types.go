// Package core defines the central Graph and Edge types, the sentinel errors
// of graph construction, and the NewGraph constructor.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and NewGraph.
//
// Errors:
//
//	ErrInvalidSize      - graph constructed with a negative size.
//	ErrVertexOutOfRange - vertex index outside [0, size).
//	ErrInvalidWeight    - negative edge weight.
//	ErrGraphFrozen      - mutation attempted on a frozen graph.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tevino/abool"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates that NewGraph received a size that cannot index vertices.
	ErrInvalidSize = errors.New("core: invalid graph size")

	// ErrVertexOutOfRange indicates that a vertex index lies outside [0, size).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrInvalidWeight indicates that a negative weight was supplied for an edge.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")

	// ErrGraphFrozen indicates a mutation of a graph after Freeze.
	ErrGraphFrozen = errors.New("core: graph is frozen")
)

// Edge is a directed connection From→To with a non-negative Weight.
//
// Edges are values: the Graph hands out copies, so callers can never
// mutate the stored adjacency through an Edge.
type Edge struct {
	// From is the source vertex index. It always equals the index of the
	// adjacency list the edge is stored under.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the traversal cost, always >= 0.
	Weight int64
}

// String renders the edge as "from→to(weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// GraphOption configures a Graph before any edge is inserted.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates room for n outgoing edges per vertex.
// Useful for dense fixtures where the out-degree is known up front.
// Panics on negative n, like every option constructor in sssp.
func WithEdgeCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithEdgeCapacity(n<0)")
	}
	return func(g *Graph) { g.edgeCap = n }
}

// Graph is a fixed-size, directed, non-negatively weighted adjacency-list graph.
//
// mu guards adjacency and edgeCount; frozen is read without the lock.
type Graph struct {
	mu sync.RWMutex

	size      int      // number of vertices; immutable after NewGraph
	edgeCap   int      // per-vertex capacity hint applied at construction
	edgeCount int      // total directed edges stored
	adjacency [][]Edge // adjacency[v] = outgoing edges of v, insertion order

	frozen *abool.AtomicBool
}

// NewGraph allocates a Graph with size empty adjacency lists.
// A size of zero is a valid empty graph; a negative size returns ErrInvalidSize.
// Complexity: O(size) time and space.
func NewGraph(size int, opts ...GraphOption) (*Graph, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := &Graph{
		size:   size,
		frozen: abool.New(),
	}
	// Apply options before allocating so capacity hints take effect.
	for _, opt := range opts {
		opt(g)
	}

	g.adjacency = make([][]Edge, size)
	if g.edgeCap > 0 {
		for v := range g.adjacency {
			g.adjacency[v] = make([]Edge, 0, g.edgeCap)
		}
	}

	return g, nil
}

// checkVertex reports ErrVertexOutOfRange, wrapped with the offending index,
// when v is outside [0, size). size is immutable so no lock is needed.
func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.size {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.size)
	}

	return nil
}
