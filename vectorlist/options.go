// SPDX-License-Identifier: MIT

// Package vectorlist: functional configuration for VectorList.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - GrowthPolicy and the stock policies,
//   - Reporter, the diagnostic collaborator,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - No global state: every list carries its own resolved Options.
//   - The default growth is +1 slot per overflow. It keeps memory tight for
//     small geometry buffers at O(n) copies per overflow; pick GrowDouble for
//     amortized O(1) pushes.
package vectorlist

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxCapacity caps any single allocation (in vectors).
	// 1<<24 vectors is 256 MiB of float32 storage.
	DefaultMaxCapacity = 1 << 24

	// DefaultStrictIndex keeps RemoveIndex out-of-range calls a silent no-op.
	DefaultStrictIndex = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicGrowthNil      = "vectorlist: WithGrowth: policy must be non-nil"
	panicGrowStepBad    = "vectorlist: GrowBy: step must be >= 1"
	panicMaxCapacityBad = "vectorlist: WithMaxCapacity: max must be >= 1"
	panicReporterNil    = "vectorlist: WithReporter: reporter must be non-nil"
)

// GrowthPolicy returns the new capacity for a full list of the given capacity.
// Results not greater than capacity are treated as capacity+1; results above
// the configured maximum are clamped to it.
type GrowthPolicy func(capacity int) int

// GrowByOne grows storage by exactly one slot. This is the default.
func GrowByOne(capacity int) int { return capacity + 1 }

// GrowDouble doubles capacity (an empty list grows to one slot).
func GrowDouble(capacity int) int {
	if capacity == 0 {
		return 1
	}

	return capacity * 2
}

// GrowBy returns a policy that adds step slots per overflow.
// Panics if step < 1.
func GrowBy(step int) GrowthPolicy {
	if step < 1 {
		panic(panicGrowStepBad)
	}

	return func(capacity int) int { return capacity + step }
}

// Reporter receives diagnostic events as a message plus key/value pairs.
// *slog.Logger satisfies it.
type Reporter interface {
	Debug(msg string, args ...any)
}

// nopReporter discards everything.
type nopReporter struct{}

func (nopReporter) Debug(string, ...any) {}

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	growth      GrowthPolicy
	maxCapacity int
	strictIndex bool
	reporter    Reporter
}

// WithGrowth sets the policy used by Push when the list is full.
// Panics on a nil policy.
func WithGrowth(p GrowthPolicy) Option {
	if p == nil {
		panic(panicGrowthNil)
	}

	return func(o *Options) { o.growth = p }
}

// WithMaxCapacity sets the largest capacity any allocation may request.
// Requests above it fail with ErrAllocation. Panics if limit < 1.
func WithMaxCapacity(limit int) Option {
	if limit < 1 {
		panic(panicMaxCapacityBad)
	}

	return func(o *Options) { o.maxCapacity = limit }
}

// WithStrictIndex makes RemoveIndex return ErrOutOfRange instead of a no-op.
func WithStrictIndex() Option {
	return func(o *Options) { o.strictIndex = true }
}

// WithReporter installs a diagnostic collaborator. Growth, trim, compaction
// and allocation failures are reported through it. Panics on nil.
func WithReporter(r Reporter) Option {
	if r == nil {
		panic(panicReporterNil)
	}

	return func(o *Options) { o.reporter = r }
}

// gatherOptions resolves defaults, then applies user setters in order.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		growth:      GrowByOne,
		maxCapacity: DefaultMaxCapacity,
		strictIndex: DefaultStrictIndex,
		reporter:    nopReporter{},
	}
}
