// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Degenerate math (singular inversion, zero-length axes) is NOT an error in
// this package; the only failure surface is exporting into a caller buffer.

package matrix

import (
	"errors"
	"fmt"
)

// ErrShortBuffer is returned when a destination slice cannot hold FlatLen values.
var ErrShortBuffer = errors.New("matrix: destination shorter than 16 elements")

// Operation tags for error wrapping.
const (
	opFlattenInto = "FlattenInto"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
