// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor (Erdős–Rényi-like).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - RNG required only for 0 < p < 1 (else ErrNeedRandSource).
//   - Directed: one Bernoulli trial per ordered pair (i,j), i≠j.
//     Undirected: one trial per unordered pair i<j, emitted both ways.
//
// Determinism:
//   - Stable trial order: i asc, then j asc. Fixed seed ⇒ identical graph.
//
// Complexity:
//   - Time: O(n²) trials. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := requireVertices(methodRandomSparse, g, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trials in a stable order.
		for i := 0; i < n; i++ {
			j := 0
			if cfg.undirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := emitWeighted(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether a pair is kept. p ∈ {0,1} never consumes randomness.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
