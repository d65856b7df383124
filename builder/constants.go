// Package builder defines shared constants used by the geometry constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodScatter is the canonical name for the Scatter constructor.
	MethodScatter = "Scatter"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest ring that encloses an area.
const MinCycleNodes = 3

// MinPathNodes is the smallest path: both endpoints.
const MinPathNodes = 2

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
const MinGridDim = 1

// MinScatterNodes is the smallest random cloud.
const MinScatterNodes = 1

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultRadius is the ring radius and solid circumradius.
const DefaultRadius float32 = 1

// DefaultSpacing is the distance between neighbouring grid points.
const DefaultSpacing float32 = 1
