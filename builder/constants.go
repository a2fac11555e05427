// Package builder defines shared constants used by the coupling-map
// generators, ensuring consistent minima and error context across them.
package builder

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodLine is the canonical name for the Line generator.
	MethodLine = "Line"
	// MethodRing is the canonical name for the Ring generator.
	MethodRing = "Ring"
	// MethodGrid is the canonical name for the Grid generator.
	MethodGrid = "Grid"
	// MethodHeavySquare is the canonical name for the HeavySquare generator.
	MethodHeavySquare = "HeavySquare"
	// MethodRandomCoupling is the canonical name for the RandomCoupling generator.
	MethodRandomCoupling = "RandomCoupling"
	// MethodUniformWeights is the canonical name for the UniformWeights generator.
	MethodUniformWeights = "UniformWeights"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinLineNodes is the smallest line with at least one coupling.
const MinLineNodes = 2

// MinRingNodes is the smallest ring that does not collapse into parallel couplings.
const MinRingNodes = 3

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid has no couplings, but is considered valid.
const MinGridDim = 1

// MinRandomNodes is the smallest qubit count accepted by RandomCoupling.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomCoupling's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomCoupling's p.
const MaxProbability = 1.0
