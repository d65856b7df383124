// SPDX-License-Identifier: MIT
// Package vectorlist: sentinel error set.
// Every message is prefixed with "vectorlist: ". Call sites wrap with the
// operation name via listErrorf; callers match with errors.Is.

package vectorlist

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates that backing storage could not be allocated,
	// either because the request exceeds the configured maximum capacity or
	// because the runtime refused the allocation size.
	ErrAllocation = errors.New("vectorlist: allocation failed")

	// ErrNotInitialized indicates an operation on a list without storage.
	ErrNotInitialized = errors.New("vectorlist: list not initialized")

	// ErrOutOfRange indicates an index outside [0, count).
	ErrOutOfRange = errors.New("vectorlist: index out of range")
)

// Operation name constants for unified error wrapping and reporting.
const (
	opInit        = "Init"
	opPush        = "Push"
	opPop         = "Pop"
	opRemoveIndex = "RemoveIndex"
	opTrim        = "Trim"
	opAt          = "At"
)

// listErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func listErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
