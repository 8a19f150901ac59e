// Package order - core types and sentinel errors shared by the engine,
// its two variants, and the traversal utilities.
package order

import "errors"

// Sentinel errors for ordering operations.
var (
	// ErrDimensionMismatch indicates an invalid problem or solution shape
	// (dimension too small, nil cost source, malformed input length).
	ErrDimensionMismatch = errors.New("order: dimension mismatch")
	// ErrNodeOutOfRange indicates a node index outside [0..N-1].
	ErrNodeOutOfRange = errors.New("order: node index out of range")
	// ErrNilCostFunc indicates a Problem was constructed without a cost source.
	ErrNilCostFunc = errors.New("order: nil cost function")
	// ErrInfeasibleEdge indicates an attempt to add a pair outside the current
	// feasible set. Recoverable: the caller picks a different pair.
	ErrInfeasibleEdge = errors.New("order: edge not currently feasible")
	// ErrDuplicateEdge indicates an attempt to re-add a committed pair.
	// Recoverable: the caller picks a different pair.
	ErrDuplicateEdge = errors.New("order: edge already added")
	// ErrInvariantViolation indicates an internal consistency breach. This is
	// a programming-defect signal: abort the run, never catch-and-continue.
	ErrInvariantViolation = errors.New("order: structural invariant violated")
	// ErrIncompleteStructure indicates a finished ordering was requested
	// before the completion criterion holds. Recoverable: keep adding edges.
	ErrIncompleteStructure = errors.New("order: structure not complete")
	// ErrStartOutOfRange indicates a traversal origin that is out of range
	// or, for the path variant, not one of the two endpoints.
	ErrStartOutOfRange = errors.New("order: traversal start out of range")
)

// Variant selects the structural completion target of a Solution.
type Variant int

const (
	// Path builds an open ordering: N-1 edges, exactly two degree-1 endpoints.
	Path Variant = iota
	// Cycle builds a closed tour: N edges, every node at degree 2.
	Cycle
)

// String returns a short human-readable variant name.
func (v Variant) String() string {
	switch v {
	case Path:
		return "path"
	case Cycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Edge is an unordered committed node pair in canonical form (A < B).
type Edge struct {
	A, B int
}

// unassigned marks a node that belongs to no connected component yet.
const unassigned = -1
