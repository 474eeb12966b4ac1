// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   - Path: n ≥ 2; emits (i-1) → i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3; emits the Path edges, then the closing edge (n-1) → 0.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity:
//   - Time: O(n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/sssp/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path P_n over 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodPath, g, n, minPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emitWeighted(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle C_n over 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(methodCycle, g, n, minCycleNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := emitWeighted(methodCycle, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		// Close the ring.
		return emitWeighted(methodCycle, g, cfg, n-1, 0)
	}
}
