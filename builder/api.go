// SPDX-License-Identifier: MIT
// Package: lvlath3d/builder
//
// api.go - thin public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildList(bopts, cons...). Creates the list, resolves
//     cfg, runs cons in order.
//   - Constructors append to a caller-owned list; they never reset it, so
//     several shapes can share one buffer.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical vertex sequences.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vectorlist"
)

// Constructor appends vertices to l using the resolved builderConfig.
// Constructors validate parameters before emitting anything, so a parameter
// error leaves l untouched. A storage error may leave a partial shape.
type Constructor func(l *vectorlist.VectorList, cfg builderConfig) error

// BuildList creates an empty VectorList (capacity 0, growing through the
// forwarded list options), resolves the builder configuration from bopts and
// applies all constructors in order. The first error is returned wrapped as
// "BuildList: %w" together with the partially filled list.
func BuildList(bopts []BuilderOption, cons ...Constructor) (*vectorlist.VectorList, error) {
	cfg := newBuilderConfig(bopts...)
	l, err := vectorlist.New(0, cfg.listOpts...)
	if err != nil {
		return nil, fmt.Errorf("BuildList: %w", err)
	}
	if err = apply(l, cfg, cons...); err != nil {
		return l, fmt.Errorf("BuildList: %w", err)
	}

	return l, nil
}

// Append resolves bopts and applies all constructors to an existing list.
// The list's own options stay in effect; WithListOptions is ignored here.
func Append(l *vectorlist.VectorList, bopts []BuilderOption, cons ...Constructor) error {
	return apply(l, newBuilderConfig(bopts...), cons...)
}

// apply runs cons in order against l with an already resolved cfg.
func apply(l *vectorlist.VectorList, cfg builderConfig, cons ...Constructor) error {
	for _, c := range cons {
		if err := c(l, cfg); err != nil {
			return err
		}
	}

	return nil
}

// builderErrorf wraps err with the constructor name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
