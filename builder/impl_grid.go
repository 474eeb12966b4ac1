// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex of cell (r,c) is r*cols + c (row-major), so the graph needs rows*cols vertices.
//   - For each cell in row-major order emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridVertex maps a grid cell to its vertex index.
func GridVertex(r, c, cols int) int {
	return r*cols + c
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate dimensions, then the vertex budget.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if err := requireVertices(methodGrid, g, rows*cols, minGridDim); err != nil {
			return err
		}

		// 2) Emit edges: Right (r, c+1) then Bottom (r+1, c).
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridVertex(r, c, cols)
				if c+1 < cols {
					if err := emitWeighted(methodGrid, g, cfg, u, GridVertex(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := emitWeighted(methodGrid, g, cfg, u, GridVertex(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
