// Package builder provides deterministic geometry constructors that fill a
// vectorlist.VectorList with vertices: rings, grids, segments, random clouds
// and the five Platonic solids. It is the usual producer of the vectors that
// a VectorList aggregates before they are handed to a consumer as a flat
// float32 buffer.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds radius, spacing, placement transform, RNG and
//     the options forwarded to the VectorList.
//   - Constructors (Constructor implementations):
//     – Cycle(n):         n points on a ring in the XY plane.
//     – Grid(rows, cols): a row-major lattice in the XY plane.
//     – Path(from, to, n): n evenly spaced points on a segment.
//     – Scatter(n):       n random points in a cube (requires WithSeed/WithRand).
//     – PlatonicSolid(name, withCenter): the vertices of a regular polyhedron.
//   - Wireframes:
//     – PlatonicEdges(name): the canonical edge list of a solid, indexed like
//     the vertices PlatonicSolid emits.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order give the same
//     vertices in the same order.
//   - Every emitted point has W=1 and passes through the placement transform
//     (WithTransform, identity by default).
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves return sentinel errors and never panic.
package builder
