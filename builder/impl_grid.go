// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Emits points in row-major order: point (r,c) is at
//     (c*spacing, r*spacing, 0), so index r*cols+c addresses it.
//
// Complexity: O(rows*cols) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// Grid returns a Constructor that emits a rows×cols lattice in the XY plane.
func Grid(rows, cols int) Constructor {
	return func(l *vectorlist.VectorList, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(MethodGrid, fmt.Errorf("rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, MinGridDim, ErrTooFewVertices))
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				p := vector.Point(float32(c)*cfg.spacing, float32(r)*cfg.spacing, 0)
				if err := cfg.emit(l, MethodGrid, p); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
