// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// any vertex is emitted.
type BuilderOption func(*builderConfig)

// WithRadius sets the ring radius (Cycle), the solid circumradius
// (PlatonicSolid) and the half-extent of the Scatter cube.
// Panics if r <= 0.
func WithRadius(r float32) BuilderOption {
	if !(r > 0) {
		panic("builder: WithRadius(r<=0)")
	}

	return func(c *builderConfig) { c.radius = r }
}

// WithSpacing sets the distance between neighbouring Grid points.
// Panics if s <= 0.
func WithSpacing(s float32) BuilderOption {
	if !(s > 0) {
		panic("builder: WithSpacing(s<=0)")
	}

	return func(c *builderConfig) { c.spacing = s }
}

// WithTransform places every emitted point with m (row-vector convention,
// see matrix.Transform). Compose placements with matrix.Multiply.
func WithTransform(m matrix.Matrix) BuilderOption {
	return func(c *builderConfig) { c.transform = m }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithListOptions forwards options (growth policy, reporter, limits) to the
// VectorList that BuildList creates. Later calls append.
func WithListOptions(opts ...vectorlist.Option) BuilderOption {
	return func(c *builderConfig) { c.listOpts = append(c.listOpts, opts...) }
}
