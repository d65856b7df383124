// Package matrix provides the 4×4 homogeneous transform used by lvlath3d.
//
// The matrix package provides:
//
//   - Factories that reset to a canonical form before writing: Homogeneous,
//     Empty, CreateScale, CreateTranslation, CreateScaleAndTranslation,
//     CreateRotationX/Y/Z (+ SinCos variants) and the axis-angle CreateRotation.
//   - Composition and application: Multiply and Transform, both using the
//     row-vector convention out[i] = Σk v[k]·m[k][i].
//   - Inversion by cofactor expansion: Determinant, Adjoint, Scale, Invert.
//     A singular matrix (|det| < Epsilon) inverts to the identity instead of
//     failing; Inverse reports which branch was taken.
//   - Camera helpers: LookAt (camera basis, W row = eye) and View (its inverse).
//   - Export: ToFlatArray / FlattenInto (row-major, 16 float32) and the
//     golang.org/x/image/math/f32 bridge.
//
// Rows X, Y, Z hold the basis (rotation/scale) and W holds the translation.
// No invariant is enforced at runtime; build matrices through the factories.
//
// See the examples in this package for usage patterns.
package matrix
