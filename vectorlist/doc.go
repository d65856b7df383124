// Package vectorlist provides VectorList, a capacity-managed growable sequence
// of vector.Vector used to stage vertex data before handing it to a renderer.
//
// 🚀 What is a VectorList?
//
//	An arena of vector slots with a live-count cursor:
//	  • count    : logical length (entries 0..count-1 are live)
//	  • capacity : allocated slots
//	  • index    : cursor to the last live entry (count-1, or -1 when empty)
//
// ✨ Key features:
//   - Push grows storage by a configurable GrowthPolicy (default GrowByOne:
//     exactly one slot per overflow)
//   - Pop / RemoveLast are lazy: the slot stays allocated and is reused by Push
//   - RemoveIndex is eager: storage is reallocated and compacted in order
//   - Trim shrinks capacity to count before a bulk handoff (Vectors, Floats)
//   - Free releases storage and is idempotent
//
// ⚙️ Usage:
//
//	list, err := vectorlist.New(10,
//	    vectorlist.WithGrowth(vectorlist.GrowDouble),
//	    vectorlist.WithReporter(slog.Default()),
//	)
//	if err != nil {
//	    // handle ErrAllocation
//	}
//	n, err := list.Push(vector.Point(1, 2, 3))
//
// Errors:
//   - ErrAllocation     : storage could not be obtained; counters are unchanged.
//   - ErrNotInitialized : the list has no storage (never initialized, failed
//     Init, or freed).
//   - ErrOutOfRange     : index outside [0,count) for At, and for RemoveIndex
//     under WithStrictIndex.
//
// Concurrency: a VectorList is not safe for concurrent use; guard it with a
// mutex if it is shared between goroutines.
package vectorlist
