// Package sssp computes single-source shortest paths over weighted graphs
// whose vertices are the integers 0..n-1.
//
// 🚀 What is in the box?
//
//	A small, thread-safe library plus a demonstration command:
//		• Core primitives: fixed-size graph, directed and undirected edges, freeze/clone
//		• Shortest paths: Dijkstra with lazy deletion or an indexed decrease-key heap
//		• Path reconstruction: source → … → v from the predecessor tree
//		• Many sources: parallel runs and a memoised per-source cache
//		• Fixtures: path, cycle, star, grid, complete and random sparse graphs
//		• Export: Graphviz DOT with the shortest-path tree highlighted
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - Graph, Edge and the thread-safe mutation/read API
//	dijkstra/  - Compute, Result queries, ComputeMany, Cache
//	builder/   - deterministic topology constructors for tests and demos
//	render/    - DOT export via gographviz
//	cmd/sssp/  - the demo/run/dot command line
//
// Quick start:
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 1)
//	res, _ := dijkstra.Compute(g, 0)
//	d, ok, _ := res.Distance(2) // 5, true
//	path, _ := res.Path(2)      // [0 1 2]
//
// Unreachable vertices report ok == false and a nil path; they are never
// confused with a distance of zero.
package sssp
