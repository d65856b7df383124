// SPDX-License-Identifier: MIT

package vectorlist

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
)

// VectorList is a growable sequence of vectors with explicit capacity control.
//
// Storage holds capacity slots; entries 0..count-1 are live. Slots at and
// beyond count may hold stale values left by Pop and are overwritten by Push.
// The zero value has no storage; call Init (or use New) before pushing.
type VectorList struct {
	vectors []vector.Vector // len(vectors) == capacity; nil when not initialized
	count   int             // live entries
	opts    Options
	ready   bool // opts resolved
}

// Result is the outcome of a removal.
// Count is the logical length after the call; Removed is false when the call
// was a no-op (empty list, or index out of range in non-strict mode).
type Result struct {
	Count   int
	Removed bool
}

// New allocates a list with the given capacity.
// Options are resolved once and kept for the life of the list.
func New(capacity int, opts ...Option) (*VectorList, error) {
	l := &VectorList{opts: gatherOptions(opts...), ready: true}
	if err := l.Init(capacity); err != nil {
		return nil, err
	}

	return l, nil
}

// options returns the resolved options, falling back to defaults for a zero value.
func (l *VectorList) options() *Options {
	if !l.ready {
		l.opts = defaultOptions()
		l.ready = true
	}

	return &l.opts
}

// allocate returns a zeroed buffer of n vectors or ErrAllocation.
// Requests outside [0, maxCapacity] are refused up front; a runtime refusal
// of the size is recovered and reported the same way.
func (l *VectorList) allocate(n int) (buf []vector.Vector, err error) {
	if n < 0 || n > l.options().maxCapacity {
		return nil, fmt.Errorf("capacity %d (max %d): %w", n, l.opts.maxCapacity, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("capacity %d: %v: %w", n, r, ErrAllocation)
		}
	}()

	return make([]vector.Vector, n), nil
}

// fail reports an allocation failure and returns it wrapped with op.
func (l *VectorList) fail(op string, err error) error {
	l.options().reporter.Debug("vectorlist: allocation failed", "op", op, "err", err)

	return listErrorf(op, err)
}

// Init allocates capacity slots and empties the list (count=0, index=-1).
// Any previous storage is released. On failure the list is left without
// storage and every later mutation returns ErrNotInitialized until a
// successful Init.
func (l *VectorList) Init(capacity int) error {
	l.vectors, l.count = nil, 0
	buf, err := l.allocate(capacity)
	if err != nil {
		return l.fail(opInit, err)
	}
	l.vectors = buf

	return nil
}

// Push appends v and returns the count after the push.
// Implementation:
//   - Stage 1: if count == capacity, grow storage through the GrowthPolicy
//     (clamped to the maximum capacity) and copy the live entries.
//   - Stage 2: write v at index+1 and advance the cursor.
//
// Errors:
//   - ErrNotInitialized when the list has no storage.
//   - ErrAllocation when growth is impossible; count and capacity are unchanged.
//
// Complexity: O(1) without growth, O(count) when it grows.
func (l *VectorList) Push(v vector.Vector) (int, error) {
	if l.vectors == nil {
		return 0, listErrorf(opPush, ErrNotInitialized)
	}
	if l.count == len(l.vectors) {
		if err := l.grow(); err != nil {
			return l.count, l.fail(opPush, err)
		}
	}
	l.vectors[l.count] = v
	l.count++

	return l.count, nil
}

// grow replaces storage with a larger buffer holding the same live entries.
func (l *VectorList) grow() error {
	o := l.options()
	old := len(l.vectors)
	next := o.growth(old)
	if next <= old {
		next = old + 1
	}
	if next > o.maxCapacity {
		next = o.maxCapacity
	}
	if next <= old {
		return fmt.Errorf("list full at capacity %d: %w", old, ErrAllocation)
	}
	buf, err := l.allocate(next)
	if err != nil {
		return err
	}
	copy(buf, l.vectors[:l.count])
	l.vectors = buf
	o.reporter.Debug("vectorlist: grow", "from", old, "to", next)

	return nil
}

// Pop copies the last entry into out (when out is non-nil) and removes it.
// The slot stays allocated: capacity never shrinks on Pop.
// On an empty list Pop is a no-op and out is not written.
func (l *VectorList) Pop(out *vector.Vector) (Result, error) {
	if l.vectors == nil {
		return Result{}, listErrorf(opPop, ErrNotInitialized)
	}
	if l.count == 0 {
		return Result{}, nil
	}
	if out != nil {
		*out = l.vectors[l.count-1]
	}
	l.count--

	return Result{Count: l.count, Removed: true}, nil
}

// RemoveLast pops the last entry and discards it.
func (l *VectorList) RemoveLast() (Result, error) {
	return l.Pop(nil)
}

// RemoveIndex deletes entry i, preserving the order of the others.
// Implementation:
//   - Stage 1: i outside [0, count) is a no-op returning the unchanged count
//     with Removed=false, or ErrOutOfRange under WithStrictIndex.
//   - Stage 2: allocate fresh storage of the current capacity, copy every
//     live entry except i, release the old storage.
//
// Complexity: O(capacity) time and memory; unlike Pop this is eager.
func (l *VectorList) RemoveIndex(i int) (Result, error) {
	if l.vectors == nil {
		return Result{}, listErrorf(opRemoveIndex, ErrNotInitialized)
	}
	if i < 0 || i >= l.count {
		if l.options().strictIndex {
			return Result{Count: l.count}, listErrorf(opRemoveIndex, fmt.Errorf("index %d, count %d: %w", i, l.count, ErrOutOfRange))
		}

		return Result{Count: l.count}, nil
	}
	buf, err := l.allocate(len(l.vectors))
	if err != nil {
		return Result{Count: l.count}, l.fail(opRemoveIndex, err)
	}
	copy(buf, l.vectors[:i])
	copy(buf[i:], l.vectors[i+1:l.count])
	l.vectors = buf
	l.count--
	l.options().reporter.Debug("vectorlist: compact", "removed", i, "count", l.count)

	return Result{Count: l.count, Removed: true}, nil
}

// Trim reallocates storage to exactly count slots and returns the count.
// Use it before handing the list to a consumer to drop popped slots.
func (l *VectorList) Trim() (int, error) {
	if l.vectors == nil {
		return 0, listErrorf(opTrim, ErrNotInitialized)
	}
	old := len(l.vectors)
	buf, err := l.allocate(l.count)
	if err != nil {
		return l.count, l.fail(opTrim, err)
	}
	copy(buf, l.vectors[:l.count])
	l.vectors = buf
	l.options().reporter.Debug("vectorlist: trim", "from", old, "to", l.count)

	return l.count, nil
}

// Free releases storage and resets count=0, capacity=0, index=-1.
// Calling Free more than once is safe.
func (l *VectorList) Free() {
	l.vectors = nil
	l.count = 0
}
