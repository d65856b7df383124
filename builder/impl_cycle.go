// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ MinCycleNodes (else ErrTooFewVertices).
//   • Point i sits at angle 2πi/n on a ring of cfg.radius in the XY plane,
//     starting on +X and turning counter-clockwise seen from +Z.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// Cycle returns a Constructor that emits n points evenly spaced on a ring.
func Cycle(n int) Constructor {
	return func(l *vectorlist.VectorList, cfg builderConfig) error {
		if n < MinCycleNodes {
			return builderErrorf(MethodCycle, fmt.Errorf("n=%d < min=%d: %w", n, MinCycleNodes, ErrTooFewVertices))
		}
		step := 2 * math32.Pi / float32(n)
		for i := 0; i < n; i++ {
			s, c := math32.Sincos(step * float32(i))
			if err := cfg.emit(l, MethodCycle, vector.Point(cfg.radius*c, cfg.radius*s, 0)); err != nil {
				return err
			}
		}

		return nil
	}
}
