// Package dijkstra provides single-source shortest paths over core.Graph with
// Dijkstra's algorithm, for graphs with non-negative edge weights.
//
// Overview:
//
//   - Compute finds the minimum-cost distance from one source vertex to every
//     reachable vertex in O((V + E) log V), where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - The outcome is an immutable *Result answering distance, predecessor and
//     path queries. Unreachable vertices are a normal outcome, never an error.
//
// When to use:
//
//   - Whenever you need exact shortest paths on a static weighted graph.
//   - As a building block for routing, navigation or scheduling problems with
//     non-negative costs.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Queue policy: lazy-deletion binary heap (default) or indexed heap with decrease-key.
//   - MaxDistance: vertices farther than the cap stay unreached, saving work in large graphs.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//   - ComputeMany: independent computations for many sources in parallel.
//   - Cache: memoised per-source results over a frozen graph.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Each heap Push/Pop costs O(log N) where N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) to store distance and predecessor slices.
//   - O(E) worst-case entries in the heap under “lazy decrease-key”; O(V) with QueueIndexed.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:
//     Returned if you pass a nil *core.Graph.
//   - ErrVertexOutOfRange:
//     Returned for a source or query vertex outside [0, size). Wraps core.ErrVertexOutOfRange.
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadQueuePolicy:
//     Panicked by the option constructors; returned by Compute for hand-built options.
//   - ErrDistanceOverflow:
//     Returned if a vertex is reachable only through paths whose length does not
//     fit in int64. Overflowing detours around an already reachable vertex are ignored.
//   - ErrInvariantViolation:
//     Returned by Result.Path if the predecessor tree is corrupt. This is a bug,
//     never a consequence of user input; path reconstruction always terminates.
//
// API reference:
//
//	func Compute(g *core.Graph, source int, opts ...Option) (*Result, error)
//
//	func (r *Result) Distance(v int) (dist int64, reachable bool, err error)
//	func (r *Result) Path(v int) ([]int, error)           // nil when unreachable
//	func (r *Result) Predecessor(v int) (int, bool, error)
//	func (r *Result) Reached() []int
//
// Thread safety:
//
//   - Compute only reads the graph; many computations may share one graph.
//   - A Result is immutable and safe for concurrent readers.
//   - Mutating the graph during Compute is not supported: freeze it first, or
//     serialize mutation against computation externally.
//
// See also:
//
//   - core.Graph: graph construction and the Freeze lifecycle.
//   - builder: deterministic graph fixtures.
package dijkstra
