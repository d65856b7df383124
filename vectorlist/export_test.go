package vectorlist

// Test bridge for the white-box options checks.
// Keep OptionsSnapshot in sync with Options.

// OptionsSnapshot is a read-only view of resolved Options.
type OptionsSnapshot struct {
	Growth      GrowthPolicy
	MaxCapacity int
	StrictIndex bool
	Reporter    Reporter
}

// GatherOptionsSnapshot_TestOnly resolves opts the way New does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Growth:      o.growth,
		MaxCapacity: o.maxCapacity,
		StrictIndex: o.strictIndex,
		Reporter:    o.reporter,
	}
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicGrowthNil_TestOnly      = panicGrowthNil
	PanicGrowStepBad_TestOnly    = panicGrowStepBad
	PanicMaxCapacityBad_TestOnly = panicMaxCapacityBad
	PanicReporterNil_TestOnly    = panicReporterNil
)
