// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// impl_platonic.go - PlatonicSolid(name, withCenter) and PlatonicEdges(name).
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Dodecahedron, Icosahedron}.
//     Unknown name → ErrUnknownSolid.
//   • Emits the shell vertices scaled to circumradius cfg.radius, in the
//     canonical order of variants_platonic.go.
//   • If withCenter is true, the centre is emitted last, at index V.
//   • PlatonicEdges indexes vertices relative to the first shell vertex.
//
// Complexity: O(V) for the selected solid (V ≤ 20).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// PlatonicSolid returns a Constructor that emits the chosen solid's vertices,
// optionally followed by its centre.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(l *vectorlist.VectorList, cfg builderConfig) error {
		vs, ok := platonicVertices[name]
		if !ok {
			return builderErrorf(MethodPlatonicSolid, fmt.Errorf("solid %d: %w", int(name), ErrUnknownSolid))
		}
		for _, v := range vs {
			p := vector.Point(v.X*cfg.radius, v.Y*cfg.radius, v.Z*cfg.radius)
			if err := cfg.emit(l, MethodPlatonicSolid, p); err != nil {
				return err
			}
		}
		if withCenter {
			return cfg.emit(l, MethodPlatonicSolid, vector.Point(0, 0, 0))
		}

		return nil
	}
}

// PlatonicEdges returns a copy of the solid's shell edges.
func PlatonicEdges(name PlatonicName) ([]Edge, error) {
	es, ok := platonicEdgeSets[name]
	if !ok {
		return nil, builderErrorf(MethodPlatonicSolid, fmt.Errorf("solid %d: %w", int(name), ErrUnknownSolid))
	}

	return append([]Edge(nil), es...), nil
}
