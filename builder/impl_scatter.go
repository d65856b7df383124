// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// impl_scatter.go - implementation of Scatter(n) constructor.
//
// Contract:
//   • n ≥ MinScatterNodes (else ErrTooFewVertices).
//   • cfg.rng must be set (else ErrNeedRandSource).
//   • Each coordinate is uniform in [-radius, radius).
//   • Same seed ⇒ same cloud.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// Scatter returns a Constructor that emits n random points in a cube
// centred on the origin.
func Scatter(n int) Constructor {
	return func(l *vectorlist.VectorList, cfg builderConfig) error {
		if n < MinScatterNodes {
			return builderErrorf(MethodScatter, fmt.Errorf("n=%d < min=%d: %w", n, MinScatterNodes, ErrTooFewVertices))
		}
		if cfg.rng == nil {
			return builderErrorf(MethodScatter, ErrNeedRandSource)
		}
		coord := func() float32 { return (2*cfg.rng.Float32() - 1) * cfg.radius }
		for i := 0; i < n; i++ {
			if err := cfg.emit(l, MethodScatter, vector.Point(coord(), coord(), coord())); err != nil {
				return err
			}
		}

		return nil
	}
}
