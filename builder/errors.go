// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name and parameters with %w.
//   • Storage failures from vectorlist are wrapped, not replaced, so
//     errors.Is(err, vectorlist.ErrAllocation) keeps working.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnknownSolid indicates a PlatonicName outside the five defined solids.
var ErrUnknownSolid = errors.New("builder: unknown platonic solid")
