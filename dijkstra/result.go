package dijkstra

import (
	"fmt"

	"github.com/rhartert/sparsesets"
	"golang.org/x/exp/slices"
)

// Result is the immutable outcome of one Compute call: the shortest distance
// and predecessor of every vertex reached from the source.
//
// A Result shares nothing with the graph it was computed from and is never
// modified after Compute returns, so it is safe for concurrent readers.
//
// Invariants:
//   - Distance(Source()) == 0 and the source has no predecessor.
//   - For every reached v != Source(), Predecessor(v) = p with
//     Distance(p) + w(p→v) == Distance(v) for some edge p→v.
//   - Unreached vertices have neither a distance nor a predecessor.
type Result struct {
	source  int
	dist    []int64
	prev    []int
	reached *sparsesets.Set
}

// Distance is one row of Distances: a vertex and its optional distance.
type Distance struct {
	Vertex  int
	Value   int64 // meaningful only if Reached
	Reached bool
}

// Source returns the vertex the result was computed from.
func (r *Result) Source() int { return r.source }

// Size returns the vertex count of the graph at computation time.
func (r *Result) Size() int { return len(r.dist) }

// Reachable reports whether v was reached from the source.
// Out-of-range vertices are simply unreachable.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.dist) && r.reached.Contains(v)
}

// Distance returns the shortest distance from the source to v.
//
// Returns:
//   - (d, true, nil)  when v is reachable.
//   - (0, false, nil) when v is unreachable; this is a normal outcome, not an error.
//   - ErrVertexOutOfRange when v is outside [0, Size()).
//
// Complexity: O(1).
func (r *Result) Distance(v int) (int64, bool, error) {
	if err := r.checkVertex(v); err != nil {
		return 0, false, err
	}
	if !r.reached.Contains(v) {
		return 0, false, nil
	}

	return r.dist[v], true, nil
}

// Predecessor returns the vertex preceding v on its shortest path.
// The boolean is false for the source and for unreachable vertices.
// Complexity: O(1).
func (r *Result) Predecessor(v int) (int, bool, error) {
	if err := r.checkVertex(v); err != nil {
		return 0, false, err
	}
	if r.prev[v] == noPredecessor {
		return 0, false, nil
	}

	return r.prev[v], true, nil
}

// Path reconstructs the shortest path source → … → v.
//
// Implementation:
//   - Stage 1: Validate v (ErrVertexOutOfRange); unreachable v returns (nil, nil).
//   - Stage 2: Walk predecessor links from v back to the source, at most Size() steps.
//   - Stage 3: Reverse into source-first order.
//
// Returns:
//   - []int of length ≥ 1, starting at Source() and ending at v; length 1 iff v == Source().
//   - nil when v is unreachable.
//
// Errors:
//   - ErrVertexOutOfRange for v outside [0, Size()).
//   - ErrInvariantViolation if the predecessor chain loops or breaks before the source.
//
// Complexity: O(len(path)).
func (r *Result) Path(v int) ([]int, error) {
	if err := r.checkVertex(v); err != nil {
		return nil, err
	}
	if !r.reached.Contains(v) {
		return nil, nil
	}

	path := []int{v}
	cur := v
	// A simple path visits each vertex at most once: Size()-1 hops at most.
	for steps := 0; cur != r.source; steps++ {
		if steps >= len(r.dist) {
			return nil, fmt.Errorf("%w: predecessor cycle while walking back from %d", ErrInvariantViolation, v)
		}
		cur = r.prev[cur]
		if cur == noPredecessor || !r.reached.Contains(cur) {
			return nil, fmt.Errorf("%w: predecessor chain of %d breaks before source %d", ErrInvariantViolation, v, r.source)
		}
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// Reached returns the reachable vertices in ascending order, source included.
// Complexity: O(R log R) for R reached vertices.
func (r *Result) Reached() []int {
	out := slices.Clone(r.reached.Content())
	slices.Sort(out)

	return out
}

// Distances returns one row per vertex 0..Size()-1.
// Complexity: O(V).
func (r *Result) Distances() []Distance {
	out := make([]Distance, len(r.dist))
	for v := range out {
		out[v].Vertex = v
		if r.reached.Contains(v) {
			out[v].Value = r.dist[v]
			out[v].Reached = true
		}
	}

	return out
}

func (r *Result) checkVertex(v int) error {
	if v < 0 || v >= len(r.dist) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(r.dist))
	}

	return nil
}
