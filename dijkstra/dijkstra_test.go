// Package dijkstra_test contains unit tests for the Dijkstra implementation.
// These tests validate input checking, the documented ten-vertex scenario,
// the query contract of Result, and the MaxDistance/InfEdgeThreshold options.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// policies lists every queue policy; behavioral tests run against each.
var policies = []dijkstra.QueuePolicy{dijkstra.QueueLazy, dijkstra.QueueIndexed}

// distRow renders Distances() as *int64 (nil = unreachable) for cmp.Diff.
func distRow(r *dijkstra.Result) []*int64 {
	out := make([]*int64, r.Size())
	for _, d := range r.Distances() {
		if d.Reached {
			v := d.Value
			out[d.Vertex] = &v
		}
	}
	return out
}

func some(v int64) *int64 { return &v }

// newGraph builds a graph of size n from (from, to, weight) triples.
func newGraph(t *testing.T, n int, edges ...[3]int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestCompute_NilGraph(t *testing.T) {
	_, err := dijkstra.Compute(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestCompute_SourceOutOfRange(t *testing.T) {
	g := newGraph(t, 3)
	for _, src := range []int{-1, 3, 100} {
		_, err := dijkstra.Compute(g, src)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange, "source %d", src)
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange, "source %d", src)
	}

	// An empty graph has no valid source at all.
	empty := newGraph(t, 0)
	_, err := dijkstra.Compute(empty, 0)
	assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
}

func TestCompute_HandBuiltOptions(t *testing.T) {
	g := newGraph(t, 2, [3]int64{0, 1, 1})

	_, err := dijkstra.Compute(g, 0, func(o *dijkstra.Options) { o.MaxDistance = -1 })
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Compute(g, 0, func(o *dijkstra.Options) { o.InfEdgeThreshold = 0 })
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	_, err = dijkstra.Compute(g, 0, func(o *dijkstra.Options) { o.Queue = dijkstra.QueuePolicy(9) })
	assert.ErrorIs(t, err, dijkstra.ErrBadQueuePolicy)
}

func TestOptionConstructorsPanic(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
	assert.Panics(t, func() { dijkstra.WithQueue(dijkstra.QueuePolicy(-1)) })
	assert.NotPanics(t, func() { dijkstra.WithMaxDistance(0) })
}

func TestParseQueuePolicy(t *testing.T) {
	for _, p := range policies {
		got, err := dijkstra.ParseQueuePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := dijkstra.ParseQueuePolicy("fibonacci")
	assert.ErrorIs(t, err, dijkstra.ErrBadQueuePolicy)
	assert.Equal(t, "QueuePolicy(7)", dijkstra.QueuePolicy(7).String())
}

// ------------------------------------------------------------------------
// 2. Documented scenario and small graphs.
// ------------------------------------------------------------------------

func TestCompute_ExampleGraph(t *testing.T) {
	g, err := builder.ExampleGraph()
	require.NoError(t, err)

	for _, p := range policies {
		t.Run(p.String(), func(t *testing.T) {
			res, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
			require.NoError(t, err)

			want := []*int64{some(0), some(5), some(3), some(2), some(3), some(2), nil, nil, nil, nil}
			if diff := cmp.Diff(want, distRow(res)); diff != "" {
				t.Errorf("distances mismatch (-want +got):\n%s", diff)
			}

			wantPaths := map[int][]int{
				0: {0},
				1: {0, 1},
				2: {0, 2},
				3: {0, 3},
				4: {0, 3, 4},
				5: {0, 5},
			}
			for v, wp := range wantPaths {
				got, err := res.Path(v)
				require.NoError(t, err)
				if diff := cmp.Diff(wp, got); diff != "" {
					t.Errorf("Path(%d) mismatch (-want +got):\n%s", v, diff)
				}
			}

			for v := 6; v < 10; v++ {
				d, ok, err := res.Distance(v)
				require.NoError(t, err)
				assert.False(t, ok, "vertex %d must be unreachable", v)
				assert.Zero(t, d)

				path, err := res.Path(v)
				require.NoError(t, err)
				assert.Nil(t, path, "vertex %d has no path", v)
				assert.False(t, res.Reachable(v))
			}

			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Reached())
			assert.Equal(t, 0, res.Source())
			assert.Equal(t, 10, res.Size())
		})
	}
}

func TestCompute_SingleVertex(t *testing.T) {
	g := newGraph(t, 1)
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	d, ok, err := res.Distance(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(0), d)

	path, err := res.Path(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, hasPrev, err := res.Predecessor(0)
	require.NoError(t, err)
	assert.False(t, hasPrev)
}

func TestCompute_DisconnectedNeverReportsZero(t *testing.T) {
	// 0→1, and an island 2↔3 with a zero-weight edge.
	g := newGraph(t, 4, [3]int64{0, 1, 4}, [3]int64{2, 3, 0}, [3]int64{3, 2, 0})

	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	for _, v := range []int{2, 3} {
		_, ok, err := res.Distance(v)
		require.NoError(t, err)
		assert.False(t, ok)
		_, ok, err = res.Predecessor(v)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestCompute_DirectedEdgesAreOneWay(t *testing.T) {
	g := newGraph(t, 3, [3]int64{1, 0, 1}, [3]int64{2, 1, 1})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Reached())

	// Undirected edges are traversable both ways.
	require.NoError(t, g.AddUndirectedEdge(0, 2, 7))
	res, err = dijkstra.Compute(g, 0)
	require.NoError(t, err)
	if diff := cmp.Diff([]*int64{some(0), some(8), some(7)}, distRow(res)); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_StaleEntriesAreSkipped(t *testing.T) {
	// 0→2 is found first at 10, then improved to 2 via 0→1→2.
	// The stale (2,10) entry must not relax 2→3 with the old distance.
	g := newGraph(t, 4,
		[3]int64{0, 2, 10},
		[3]int64{0, 1, 1},
		[3]int64{1, 2, 1},
		[3]int64{2, 3, 1},
	)
	for _, p := range policies {
		res, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
		require.NoError(t, err)
		d, _, _ := res.Distance(3)
		assert.Equal(t, int64(3), d, p.String())
		path, err := res.Path(3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3}, path, p.String())
	}
}

func TestCompute_SelfLoopsAndParallelEdges(t *testing.T) {
	g := newGraph(t, 2,
		[3]int64{0, 0, 0},
		[3]int64{0, 1, 9},
		[3]int64{0, 1, 4},
		[3]int64{1, 1, 1},
	)
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	d, ok, err := res.Distance(1)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), d, "cheapest parallel edge wins")

	_, hasPrev, _ := res.Predecessor(0)
	assert.False(t, hasPrev, "a zero-weight self-loop must not give the source a predecessor")
}

func TestCompute_EqualLengthPathsKeepFirst(t *testing.T) {
	// Two shortest paths to 3 of length 2; the reported one is a valid shortest path.
	g := newGraph(t, 4,
		[3]int64{0, 1, 1},
		[3]int64{0, 2, 1},
		[3]int64{1, 3, 1},
		[3]int64{2, 3, 1},
	)
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	path, err := res.Path(3)
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Contains(t, [][]int{{0, 1, 3}, {0, 2, 3}}, path)
}

// ------------------------------------------------------------------------
// 3. Query contract.
// ------------------------------------------------------------------------

func TestResult_OutOfRangeQueries(t *testing.T) {
	g := newGraph(t, 3, [3]int64{0, 1, 1})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	for _, v := range []int{-1, 3} {
		_, _, err = res.Distance(v)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
		_, err = res.Path(v)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
		_, _, err = res.Predecessor(v)
		assert.ErrorIs(t, err, dijkstra.ErrVertexOutOfRange)
		assert.False(t, res.Reachable(v))
	}
}

func TestResult_PredecessorCycleFailsLoudly(t *testing.T) {
	g := newGraph(t, 4, [3]int64{0, 1, 1}, [3]int64{1, 2, 1}, [3]int64{2, 3, 1})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	// Corrupt: 1 ← 2 ← 1 forms a loop that never reaches the source.
	dijkstra.SetPredecessor(res, 1, 2)
	_, err = res.Path(3)
	assert.ErrorIs(t, err, dijkstra.ErrInvariantViolation)
}

func TestResult_BrokenChainFailsLoudly(t *testing.T) {
	g := newGraph(t, 3, [3]int64{0, 1, 1}, [3]int64{1, 2, 1})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	dijkstra.SetPredecessor(res, 1, -1)
	_, err = res.Path(2)
	assert.ErrorIs(t, err, dijkstra.ErrInvariantViolation)
}

// ------------------------------------------------------------------------
// 4. Options: MaxDistance, InfEdgeThreshold, overflow.
// ------------------------------------------------------------------------

func TestCompute_MaxDistance(t *testing.T) {
	g, err := builder.ExampleGraph()
	require.NoError(t, err)

	res, err := dijkstra.Compute(g, 0, dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 5}, res.Reached())

	// Cap of zero keeps only the source (and zero-weight neighbors, of which there are none).
	res, err = dijkstra.Compute(g, 0, dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Reached())
}

func TestCompute_InfEdgeThreshold(t *testing.T) {
	g, err := builder.ExampleGraph()
	require.NoError(t, err)

	// Edges of weight ≥ 3 are walls: 0→1(5), 0→2(3), 4→5(3) disappear.
	res, err := dijkstra.Compute(g, 0, dijkstra.WithInfEdgeThreshold(3))
	require.NoError(t, err)
	want := []*int64{some(0), nil, nil, some(2), some(3), some(2), nil, nil, nil, nil}
	if diff := cmp.Diff(want, distRow(res)); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_Overflow(t *testing.T) {
	g := newGraph(t, 3, [3]int64{0, 1, math.MaxInt64}, [3]int64{1, 2, 1})
	for _, p := range policies {
		_, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
		assert.ErrorIs(t, err, dijkstra.ErrDistanceOverflow, p.String())
	}

	// A single MaxInt64 edge is still representable.
	g = newGraph(t, 2, [3]int64{0, 1, math.MaxInt64})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)
	d, ok, _ := res.Distance(1)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), d)

	// Under a cap, an oversized edge is skipped instead of overflowing.
	g = newGraph(t, 3, [3]int64{0, 1, 5}, [3]int64{1, 2, math.MaxInt64})
	res, err = dijkstra.Compute(g, 0, dijkstra.WithMaxDistance(100))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Reached())
}

func TestCompute_MaxWeightEdgeIsTraversable(t *testing.T) {
	g := newGraph(t, 2, [3]int64{0, 1, math.MaxInt64})

	for _, p := range policies {
		res, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
		require.NoError(t, err, p.String())
		d, ok, err := res.Distance(1)
		require.NoError(t, err)
		assert.True(t, ok, "%s: default options must not wall off any edge", p)
		assert.Equal(t, int64(math.MaxInt64), d, p.String())
	}

	// An explicit MaxInt64 threshold is the same as no threshold.
	res, err := dijkstra.Compute(g, 0, dijkstra.WithInfEdgeThreshold(math.MaxInt64))
	require.NoError(t, err)
	assert.True(t, res.Reachable(1))

	// Any lower threshold walls the edge.
	res, err = dijkstra.Compute(g, 0, dijkstra.WithInfEdgeThreshold(math.MaxInt64-1))
	require.NoError(t, err)
	assert.False(t, res.Reachable(1))
}

func TestCompute_OverflowIntoReachedVertex(t *testing.T) {
	// 1→2 overflows, but 2 already holds distance 1 via 0→2.
	g := newGraph(t, 3,
		[3]int64{0, 1, math.MaxInt64 - 1},
		[3]int64{0, 2, 1},
		[3]int64{1, 2, 5},
	)
	for _, p := range policies {
		res, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
		require.NoError(t, err, p.String())
		want := []*int64{some(0), some(math.MaxInt64 - 1), some(1)}
		if diff := cmp.Diff(want, distRow(res)); diff != "" {
			t.Errorf("%s: distances mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestCompute_OverflowThenReachedLater(t *testing.T) {
	// 1 and 2 tie at MaxInt64-1. Whichever pops first, 1→3 overflows while
	// 2→3 lands exactly on MaxInt64, so 3 is reachable.
	g := newGraph(t, 4,
		[3]int64{0, 1, math.MaxInt64 - 1},
		[3]int64{0, 2, math.MaxInt64 - 1},
		[3]int64{1, 3, 5},
		[3]int64{2, 3, 1},
	)
	for _, p := range policies {
		res, err := dijkstra.Compute(g, 0, dijkstra.WithQueue(p))
		require.NoError(t, err, p.String())
		d, ok, _ := res.Distance(3)
		assert.True(t, ok, p.String())
		assert.Equal(t, int64(math.MaxInt64), d, p.String())
		path, err := res.Path(3)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 2, 3}, path, p.String())
	}
}

func TestCompute_ResultIsDetachedFromGraph(t *testing.T) {
	g := newGraph(t, 3, [3]int64{0, 1, 1})
	res, err := dijkstra.Compute(g, 0)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(1, 2, 1))
	assert.False(t, res.Reachable(2), "a Result describes the graph at computation time")
}
