// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_star.go - Star(n) and Complete(n) constructors.
//
// Contract:
//   - Star: n ≥ 2; center is vertex 0, emits 0 → i for i=1..n-1.
//   - Complete: n ≥ 1; emits i → j for every ordered pair i≠j (i asc, then j asc).
//     With WithUndirected only pairs i<j are emitted, each in both directions.
//
// Complexity:
//   - Star O(n) edges; Complete O(n²) edges.

package builder

import "github.com/katalvlaran/sssp/core"

const (
	methodStar       = "Star"
	methodComplete   = "Complete"
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Star returns a Constructor that connects center 0 to leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodStar, g, n, minStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emitWeighted(methodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n without self-loops.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodComplete, g, n, minCompleteNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				// Undirected mode covers j<i through the mirrored insertion.
				if i == j || (cfg.undirected && j < i) {
					continue
				}
				if err := emitWeighted(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
