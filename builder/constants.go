// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodGenerateNetwork is the canonical name for the GenerateNetwork facade.
	MethodGenerateNetwork = "GenerateNetwork"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodEmpty is the canonical name for the Empty constructor.
	MethodEmpty = "Empty"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRandomSparseNodes is the smallest vertex count accepted by RandomSparse.
const MinRandomSparseNodes = 1

// MinCompleteNodes is the smallest meaningful size for K_n.
const MinCompleteNodes = 1

// MinEmptyNodes is the smallest vertex count accepted by Empty.
const MinEmptyNodes = 1

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinStarNodes is the smallest meaningful size for a star topology.
// A star requires one hub plus at least one leaf (2 nodes total).
const MinStarNodes = 2

// StarHub is the index of the hub vertex in Star(n).
const StarHub = 0

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lower bound (inclusive) for edge probabilities.
	MinProbability = 0.0
	// MaxProbability is the upper bound (inclusive) for edge probabilities.
	MaxProbability = 1.0
)
