package vectorlist

import (
	"fmt"

	"github.com/katalvlaran/lvlath3d/vector"
)

// Count returns the number of live entries.
func (l *VectorList) Count() int { return l.count }

// Capacity returns the number of allocated slots.
func (l *VectorList) Capacity() int { return len(l.vectors) }

// Index returns the cursor to the last live entry, or -1 when empty.
func (l *VectorList) Index() int { return l.count - 1 }

// Initialized reports whether the list currently owns storage.
func (l *VectorList) Initialized() bool { return l.vectors != nil }

// At returns entry i.
func (l *VectorList) At(i int) (vector.Vector, error) {
	if l.vectors == nil {
		return vector.Vector{}, listErrorf(opAt, ErrNotInitialized)
	}
	if i < 0 || i >= l.count {
		return vector.Vector{}, listErrorf(opAt, fmt.Errorf("index %d, count %d: %w", i, l.count, ErrOutOfRange))
	}

	return l.vectors[i], nil
}

// Vectors returns a copy of the live entries. The list's storage is never
// exposed. Returns nil when the list has no storage.
func (l *VectorList) Vectors() []vector.Vector {
	if l.vectors == nil {
		return nil
	}
	out := make([]vector.Vector, l.count)
	copy(out, l.vectors[:l.count])

	return out
}

// Floats flattens the live entries as x, y, z, w per vector, ready for a
// vertex buffer upload. Returns nil when the list has no storage.
func (l *VectorList) Floats() []float32 {
	if l.vectors == nil {
		return nil
	}
	out := make([]float32, 0, 4*l.count)
	for _, v := range l.vectors[:l.count] {
		out = append(out, v.X, v.Y, v.Z, v.W)
	}

	return out
}
