package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
	"github.com/katalvlaran/sssp/core"
)

func TestExampleGraph(t *testing.T) {
	g, err := builder.ExampleGraph()
	require.NoError(t, err)
	assert.Equal(t, builder.ExampleSize, g.Size())
	assert.Equal(t, builder.ExampleEdges(), g.Edges(), "edges are stored in the documented order")

	// Vertices 6..9 stay isolated.
	for v := 6; v < builder.ExampleSize; v++ {
		deg, err := g.OutDegree(v)
		require.NoError(t, err)
		assert.Zero(t, deg)
	}

	_, err = builder.BuildGraph(builder.ExampleMinSize-1, nil, builder.Example())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestExampleEdges_ReturnsCopy(t *testing.T) {
	edges := builder.ExampleEdges()
	edges[0].Weight = 99
	assert.Equal(t, int64(5), builder.ExampleEdges()[0].Weight)
}

func TestTopologies_EdgeCounts(t *testing.T) {
	cases := []struct {
		name       string
		size       int
		cons       builder.Constructor
		undirected bool
		want       int
	}{
		{"path", 5, builder.Path(5), false, 4},
		{"path undirected", 5, builder.Path(5), true, 8},
		{"cycle", 4, builder.Cycle(4), false, 4},
		{"star", 6, builder.Star(6), false, 5},
		{"complete", 4, builder.Complete(4), false, 12},
		{"complete undirected", 4, builder.Complete(4), true, 12},
		{"grid", 6, builder.Grid(2, 3), false, 7},
		{"grid undirected", 6, builder.Grid(2, 3), true, 14},
		{"random p=1", 3, builder.RandomSparse(3, 1), false, 6},
		{"random p=0", 3, builder.RandomSparse(3, 0), false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var opts []builder.BuilderOption
			if tc.undirected {
				opts = append(opts, builder.WithUndirected())
			}
			g, err := builder.BuildGraph(tc.size, opts, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.EdgeCount())
		})
	}
}

func TestGrid_Layout(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(builder.GridVertex(0, 0, 3), builder.GridVertex(0, 1, 3)))
	assert.True(t, g.HasEdge(builder.GridVertex(0, 2, 3), builder.GridVertex(1, 2, 3)))
	assert.False(t, g.HasEdge(builder.GridVertex(0, 2, 3), builder.GridVertex(1, 0, 3)))
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(1, nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, builder.Path(4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices, "graph smaller than the constructor needs")

	_, err = builder.BuildGraph(3, nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(4, nil, builder.Grid(0, 4))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(3, nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.BuildGraph(-1, nil)
	assert.ErrorIs(t, err, core.ErrInvalidSize)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(30, []builder.BuilderOption{
			builder.WithSeed(7),
			builder.WithWeightFn(builder.UniformWeightFn(1, 50)),
		}, builder.RandomSparse(30, 0.1))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()
	assert.Equal(t, a.Edges(), b.Edges())

	for _, e := range a.Edges() {
		assert.NotEqual(t, e.From, e.To, "no self-loops")
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(50))
	}
}

func TestApply_Overlay(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(3, 0, 9))

	err = builder.Apply(g, []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))}, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	w, ok := g.Weight(1, 2)
	assert.True(t, ok)
	assert.Equal(t, int64(2), w)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 1) })

	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil), "nil rng falls back to min")
}
