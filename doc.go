// Package lvlath3d is a small 3D math toolkit for graphics and geometry code:
// homogeneous vectors, 4×4 transforms and a growable vertex staging list.
//
// 🚀 What is lvlath3d?
//
//	A float32, pure-Go library that brings together:
//		• Vectors: arithmetic, cross/dot products, normalization, axis rotations, plane normals
//		• Matrices: identity/scale/translation/rotation factories, multiply, transform
//		• Inversion: determinant, classical adjoint, graceful identity fallback when singular
//		• Cameras: LookAt basis and its View inverse
//		• Staging: VectorList with configurable growth, lazy pop and eager compaction
//		• Export: row-major flat arrays and golang.org/x/image/math/f32 interop
//		• Geometry: rings, grids, paths, random clouds and Platonic solids, with wireframe edges
//
// ✨ Why choose lvlath3d?
//
//   - Value types – Vector and Matrix live on the stack, no hidden allocations
//   - Degenerate math is defined, not an error – callers keep graceful degradation
//   - Explicit errors only where memory is involved (vectorlist)
//   - Injected diagnostics – plug any *slog.Logger in as a vectorlist Reporter
//
// Under the hood, everything is organized under four subpackages:
//
//	vector/     : homogeneous 4-component Vector and its operations
//	matrix/     : 4×4 Matrix built from four row Vectors
//	vectorlist/ : capacity-managed growable sequence of Vectors
//	builder/    : geometry constructors that fill a VectorList
//
// A runnable walk-through lives in examples/wireframe_camera.go.
//
// Quick ASCII example (row-vector convention, v' = v × M):
//
//	[x y z 1] × | Xx Xy Xz 0 |
//	            | Yx Yy Yz 0 |
//	            | Zx Zy Zz 0 |
//	            | Tx Ty Tz 1 |
//
//	go get github.com/katalvlaran/lvlath3d
package lvlath3d
