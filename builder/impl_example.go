// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_example.go - the documented ten-vertex demonstration graph.
//
// Contract:
//   - Requires a graph of at least ExampleMinSize vertices; vertices beyond the
//     edge set (6..9 in the canonical ten-vertex graph) stay isolated.
//   - Emits ExampleEdges in their listed order with their fixed weights.
//   - Always directed: WithUndirected and the weight function are ignored.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodExample = "Example"

	// ExampleSize is the vertex count of the canonical demonstration graph.
	ExampleSize = 10

	// ExampleMinSize is the smallest graph that holds every example edge.
	ExampleMinSize = 6
)

// exampleEdges is the fixed directed edge set of the demonstration graph.
var exampleEdges = []core.Edge{
	{From: 0, To: 1, Weight: 5},
	{From: 0, To: 2, Weight: 3},
	{From: 0, To: 3, Weight: 2},
	{From: 0, To: 5, Weight: 2},
	{From: 1, To: 3, Weight: 1},
	{From: 2, To: 4, Weight: 1},
	{From: 3, To: 4, Weight: 1},
	{From: 4, To: 5, Weight: 3},
}

// ExampleEdges returns a copy of the demonstration edge set.
func ExampleEdges() []core.Edge {
	out := make([]core.Edge, len(exampleEdges))
	copy(out, exampleEdges)

	return out
}

// Example returns a Constructor that inserts the demonstration edge set.
func Example() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := requireVertices(methodExample, g, ExampleMinSize, ExampleMinSize); err != nil {
			return err
		}
		for _, e := range exampleEdges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: AddEdge(%s): %w", methodExample, e, err)
			}
		}

		return nil
	}
}

// ExampleGraph builds the canonical ten-vertex demonstration graph.
func ExampleGraph() (*core.Graph, error) {
	return BuildGraph(ExampleSize, nil, Example())
}
