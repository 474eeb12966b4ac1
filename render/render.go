// SPDX-License-Identifier: MIT
// Package: sssp/render
//
// Package render exports a core.Graph, optionally annotated with a
// dijkstra.Result, as Graphviz DOT text.
//
// Layout contract:
//   - Every vertex 0..n-1 becomes a node named by its index.
//   - Every directed edge becomes one DOT edge labelled with its weight;
//     parallel edges and self-loops are kept.
//   - With a Result: labels carry the distance, the source is double-circled,
//     unreached vertices are grey, and shortest-path tree edges are bold.
//
// The output is deterministic for the same graph and result.
package render

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// GraphName is the DOT graph identifier used for every export.
const GraphName = "sssp"

var (
	// ErrNilGraph is returned when DOT is called without a graph.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrSizeMismatch indicates the Result was computed over a graph of another size.
	ErrSizeMismatch = errors.New("render: result does not match graph size")
)

const (
	colorUnreached = "grey"
	colorTree      = "blue"
)

// DOT renders g as a directed Graphviz graph. res may be nil, in which case
// only the plain topology is drawn.
//
// Complexity: O(V + E) plus the tree lookups, O(E) overall.
func DOT(g *core.Graph, res *dijkstra.Result) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if res != nil && res.Size() != g.Size() {
		return "", fmt.Errorf("%w: result %d, graph %d", ErrSizeMismatch, res.Size(), g.Size())
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(GraphName); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	if err := graph.AddAttr(GraphName, "rankdir", "LR"); err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	// 1) Nodes.
	for v := 0; v < g.Size(); v++ {
		if err := graph.AddNode(GraphName, strconv.Itoa(v), nodeAttrs(v, res)); err != nil {
			return "", fmt.Errorf("render: node %d: %w", v, err)
		}
	}

	// 2) Edges, grouped by From in insertion order.
	// Only the first parallel edge matching the tree is highlighted.
	highlighted := make(map[int]bool)
	for _, e := range g.Edges() {
		attrs := map[string]string{
			"label": strconv.Quote(strconv.FormatInt(e.Weight, 10)),
		}
		if !highlighted[e.To] && onTree(res, e) {
			highlighted[e.To] = true
			attrs["color"] = colorTree
			attrs["penwidth"] = "2"
		}
		if err := graph.AddEdge(strconv.Itoa(e.From), strconv.Itoa(e.To), true, attrs); err != nil {
			return "", fmt.Errorf("render: edge %s: %w", e, err)
		}
	}

	return graph.String(), nil
}

// nodeAttrs builds the DOT attributes of vertex v.
func nodeAttrs(v int, res *dijkstra.Result) map[string]string {
	attrs := map[string]string{
		"shape": "circle",
	}
	if res == nil {
		return attrs
	}

	d, ok, _ := res.Distance(v)
	switch {
	case !ok:
		attrs["label"] = fmt.Sprintf(`"%d\nunreached"`, v)
		attrs["color"] = colorUnreached
		attrs["fontcolor"] = colorUnreached
	case v == res.Source():
		attrs["label"] = fmt.Sprintf(`"%d\nd=%d"`, v, d)
		attrs["shape"] = "doublecircle"
	default:
		attrs["label"] = fmt.Sprintf(`"%d\nd=%d"`, v, d)
	}

	return attrs
}

// onTree reports whether e is the tree edge predecessor[e.To]→e.To whose
// weight accounts for the distance of e.To.
func onTree(res *dijkstra.Result, e core.Edge) bool {
	if res == nil {
		return false
	}
	p, ok, err := res.Predecessor(e.To)
	if err != nil || !ok || p != e.From {
		return false
	}
	du, _, _ := res.Distance(e.From)
	dv, _, _ := res.Distance(e.To)

	return du+e.Weight == dv
}
