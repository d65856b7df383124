// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// impl_path.go - implementation of Path(from, to, n) constructor.
//
// Contract:
//   • n ≥ MinPathNodes (else ErrTooFewVertices).
//   • The first point is from, the last is to; the rest are evenly spaced.
//   • W of the endpoints is ignored: every emitted point has W=1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// Path returns a Constructor that emits n points along the segment from→to.
func Path(from, to vector.Vector, n int) Constructor {
	return func(l *vectorlist.VectorList, cfg builderConfig) error {
		if n < MinPathNodes {
			return builderErrorf(MethodPath, fmt.Errorf("n=%d < min=%d: %w", n, MinPathNodes, ErrTooFewVertices))
		}
		start := vector.Point(from.X, from.Y, from.Z)
		delta := vector.Sub(vector.Point(to.X, to.Y, to.Z), start)
		last := float32(n - 1)
		for i := 0; i < n; i++ {
			p := vector.Add(start, vector.Scaled(delta, float32(i)/last))
			if err := cfg.emit(l, MethodPath, p); err != nil {
				return err
			}
		}

		return nil
	}
}
