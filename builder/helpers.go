// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// helpers.go - shared validation and edge emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// requireVertices validates n against the constructor minimum and the graph size.
func requireVertices(method string, g *core.Graph, n, min int) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrConstructFailed)
	}
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	if g.Size() < n {
		return fmt.Errorf("%s: graph has %d vertices, need %d: %w", method, g.Size(), n, ErrTooFewVertices)
	}

	return nil
}

// emit inserts u→v with weight w, or both directions when cfg.undirected.
func emit(method string, g *core.Graph, cfg builderConfig, u, v int, w int64) error {
	var err error
	if cfg.undirected {
		err = g.AddUndirectedEdge(u, v, w)
	} else {
		err = g.AddEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// emitWeighted draws a weight from cfg.weightFn and emits u→v.
func emitWeighted(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	return emit(method, g, cfg, u, v, cfg.weightFn(cfg.rng))
}
