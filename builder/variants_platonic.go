// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// variants_platonic.go - canonical data for the Platonic solids.
//
// Design:
//   • Single source of truth for the five solids: unit-circumradius vertex
//     coordinates and shell edges.
//   • Coordinates use the classic cartesian forms (±1 and the golden ratio φ),
//     then are normalized onto the unit sphere.
//   • Edges are derived at init as every vertex pair at the minimum pairwise
//     distance; for a regular polyhedron these are exactly the shell edges.
//
// Determinism:
//   • Vertex order is fixed by the tables below.
//   • Edge lists are sorted lexicographically by (U,V) with U < V.

package builder

import (
	"github.com/chewxy/math32"

	"github.com/katalvlaran/lvlath3d/vector"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs and errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// Edge is an undirected wireframe edge between vertex indices U < V.
type Edge struct{ U, V int }

// edgeRelTol absorbs float32 rounding when comparing squared distances.
const edgeRelTol = 1e-4

var (
	phi    = (1 + math32.Sqrt(5)) / 2
	invPhi = 1 / phi
)

// platonicRaw holds the un-normalized coordinates.
var platonicRaw = map[PlatonicName][][3]float32{
	Tetrahedron: {
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	},
	// bottom face 0-1-2-3, top face 4-5-6-7
	Cube: {
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	},
	// poles 0,1 on Z, then the equator
	Octahedron: {
		{0, 0, 1}, {0, 0, -1},
		{1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0},
	},
	Dodecahedron: {
		{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
		{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
		{0, invPhi, phi}, {0, invPhi, -phi}, {0, -invPhi, phi}, {0, -invPhi, -phi},
		{invPhi, phi, 0}, {invPhi, -phi, 0}, {-invPhi, phi, 0}, {-invPhi, -phi, 0},
		{phi, 0, invPhi}, {phi, 0, -invPhi}, {-phi, 0, invPhi}, {-phi, 0, -invPhi},
	},
	Icosahedron: {
		{0, 1, phi}, {0, 1, -phi}, {0, -1, phi}, {0, -1, -phi},
		{1, phi, 0}, {1, -phi, 0}, {-1, phi, 0}, {-1, -phi, 0},
		{phi, 0, 1}, {phi, 0, -1}, {-phi, 0, 1}, {-phi, 0, -1},
	},
}

// platonicVertices maps each solid to its unit-circumradius vertices (W=1).
var platonicVertices = map[PlatonicName][]vector.Vector{}

// platonicEdgeSets maps each solid to its sorted shell edges.
var platonicEdgeSets = map[PlatonicName][]Edge{}

func init() {
	for name, raw := range platonicRaw {
		vs := make([]vector.Vector, len(raw))
		for i, c := range raw {
			d := vector.Direction(c[0], c[1], c[2])
			d.Normalize()
			vs[i] = vector.Point(d.X, d.Y, d.Z)
		}
		platonicVertices[name] = vs
		platonicEdgeSets[name] = shortestPairs(vs)
	}
}

// shortestPairs returns every pair (i<j) whose distance equals the minimum
// pairwise distance, in lexicographic order.
func shortestPairs(vs []vector.Vector) []Edge {
	minD := math32.Inf(1)
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if d := vector.Norm(vector.Sub(vs[i], vs[j])); d < minD {
				minD = d
			}
		}
	}
	var out []Edge
	for i := range vs {
		for j := i + 1; j < len(vs); j++ {
			if vector.Norm(vector.Sub(vs[i], vs[j])) <= minD*(1+edgeRelTol) {
				out = append(out, Edge{U: i, V: j})
			}
		}
	}

	return out
}
