// Package builder provides deterministic graph constructors for core.Graph:
// the documented ten-vertex example, classic topologies, and seeded random graphs.
//
// Every constructor is a Constructor closure applied by BuildGraph (new graph)
// or Apply (existing graph) in call order, so fixtures compose:
//
//	g, err := builder.BuildGraph(12,
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUndirected()},
//	    builder.Path(6),
//	    builder.RandomSparse(12, 0.2),
//	)
//
// Conventions:
//
//   - Constructors use vertices [0, n) of the target graph and fail with
//     ErrTooFewVertices when the graph is smaller than they need.
//   - Edges are directed unless WithUndirected is set, in which case each edge is
//     inserted in both directions with the same weight.
//   - Weights come from the configured weight function (constant 1 by default).
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless input; constructors never panic.
package builder
