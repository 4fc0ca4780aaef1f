// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_grid.go - Grid(rows, cols) with 4-neighbourhood.
//
// Nodes in row-major order at (c, r). For each cell the right neighbour edge is
// emitted before the bottom one. rows*(cols-1) + cols*(rows-1) edges.

package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/spantree/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, lay Layout, cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be >= %d)",
				methodGrid, rows, cols, minGridDim)
		}
		cells := addNodes(g, lay, cfg, rows*cols, func(i int) Point {
			return Point{X: float64(i % cols), Y: float64(i / cols)}
		})
		at := func(r, c int) *core.Node { return cells[r*cols+c] }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
