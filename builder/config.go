// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • radius    = DefaultRadius   (ring radius, solid circumradius)
//   • spacing   = DefaultSpacing  (grid pitch)
//   • transform = identity        (placement applied to every point)
//   • rng       = nil             (pure/deterministic unless seeded)
//   • listOpts  = none            (vectorlist defaults)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlath3d/matrix"
	"github.com/katalvlaran/lvlath3d/vector"
	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	radius    float32
	spacing   float32
	transform matrix.Matrix
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Options for the VectorList created by BuildList.
	listOpts []vectorlist.Option
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last writer wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		radius:    DefaultRadius,
		spacing:   DefaultSpacing,
		transform: matrix.Homogeneous(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emit places p with the configured transform and appends it to l.
func (cfg builderConfig) emit(l *vectorlist.VectorList, method string, p vector.Vector) error {
	matrix.TransformInPlace(cfg.transform, &p)
	if _, err := l.Push(p); err != nil {
		return builderErrorf(method, err)
	}

	return nil
}
