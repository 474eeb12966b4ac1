// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation (Push/Pop) costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative weights at insertion, so no pre-scan is needed.
//   - Unreached vertices are tracked explicitly, never with a sentinel distance.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never record a distance above MaxDistance.
//   - Stale heap entries are recognised by comparing their priority with the
//     vertex's current best distance, which needs no visited set.
package dijkstra

import (
	"fmt"

	"github.com/rhartert/sparsesets"

	"github.com/katalvlaran/sssp/core"
)

// Compute runs Dijkstra from source over g and returns the immutable result.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must lie in [0, g.Size()) (ErrVertexOutOfRange).
//  3. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold, ErrBadQueuePolicy).
//
// Options customization:
//
//   - WithQueue(p): QueueLazy (default) or QueueIndexed.
//   - WithMaxDistance(x): vertices with distance > x stay unreached (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// The graph is only read. Concurrent Compute calls on one graph are safe and
// share no state.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Compute(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source index
	n := g.Size()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d not in [0,%d)", ErrVertexOutOfRange, source, n)
	}

	// 3) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// 4) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		reached: sparsesets.New(n),
		pq:      newFrontier(cfg.Queue, n),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{
		source:  source,
		dist:    r.dist,
		prev:    r.prev,
		reached: r.reached,
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g        *core.Graph     // The input graph; read-only within Dijkstra.
	options  Options         // Configuration options (queue, thresholds).
	dist     []int64         // dist[v] = best known distance; meaningful only if reached.
	prev     []int           // prev[v] = predecessor on the best known path, noPredecessor if none.
	reached  *sparsesets.Set // Vertices with a finite tentative distance.
	pq       frontier        // Min-priority queue of (vertex, distance).
	overflow []overflowEdge  // Unrepresentable relaxations into then-unreached vertices.
}

// overflowEdge records a relaxation du+w that does not fit in int64.
type overflowEdge struct {
	edge core.Edge
	from int64
}

// noPredecessor marks the source and unreached vertices in prev.
const noPredecessor = -1

// init sets up predecessors, marks the source reached at distance zero and queues it.
func (r *runner) init(source int) {
	for v := range r.prev {
		r.prev[v] = noPredecessor
	}

	r.dist[source] = 0
	r.reached.Insert(source)
	r.pq.push(source, 0)
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
// The loop ends when the queue is empty.
//
// A vertex whose only paths overflow int64 fails the run with ErrDistanceOverflow;
// an overflowing edge into a vertex that ends up reached is not an error.
func (r *runner) process() error {
	var item nodeItem
	for r.pq.size() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item = r.pq.pop()

		// 2) Stale entry: the vertex was improved after this entry was pushed.
		if item.dist > r.dist[item.vertex] {
			continue
		}

		// 3) Relax all outgoing edges of the vertex.
		if err := r.relax(item.vertex); err != nil {
			return err
		}
	}

	// 4) Overflow matters only where it hid the sole path to a vertex.
	for _, o := range r.overflow {
		if !r.reached.Contains(o.edge.To) {
			return fmt.Errorf("%w: edge %s from distance %d", ErrDistanceOverflow, o.edge, o.from)
		}
	}

	return nil
}

// relax examines each edge outgoing from u and attempts to improve distances to its neighbors.
// If a shorter path to neighbor v is found, dist[v] and prev[v] are updated and v is queued.
//
// Assumes r.dist[u] is final when relax(u) is called.
func (r *runner) relax(u int) error {
	// 1) Retrieve the outgoing edges of u.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	// Largest weight that keeps du+w within MaxDistance (and within int64).
	room := r.options.MaxDistance - du

	var newDist int64
	for _, e := range neighbors {
		// Skip any edge marked impassable by InfEdgeThreshold.
		if r.options.walled() && e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		seen := r.reached.Contains(e.To)

		// du+w would exceed the cap. Without a cap the cap is MaxInt64,
		// so this is exactly the overflow condition.
		if e.Weight > room {
			// Any stored distance fits in int64, so an overflowing candidate
			// never improves a reached vertex.
			if !r.options.capped() && !seen {
				r.overflow = append(r.overflow, overflowEdge{edge: e, from: du})
			}
			continue
		}

		// Only a strict improvement moves v; equal-length alternatives keep the first predecessor.
		newDist = du + e.Weight
		if seen && newDist >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = newDist
		r.prev[e.To] = u
		if !seen {
			r.reached.Insert(e.To)
		}
		r.pq.push(e.To, newDist)
	}

	return nil
}
