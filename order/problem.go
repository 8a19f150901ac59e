// Package order - immutable problem container binding a dimension and a
// cost model.
//
// The cost model is read-only and upper-triangular: a cost exists for every
// pair i<j and nowhere else. Mirrored lookups are handled by canonicalizing
// the pair, never by storing the mirror. Costs are plain int64 values and
// may be negative (textual similarity models emit negative costs so that
// similar items attract under minimization).
package order

// CostFunc supplies the cost of connecting nodes i and j, 0 <= i < j < N.
// It is consulted exactly once per pair during Problem construction.
type CostFunc func(i, j int) int64

// Problem is the immutable unit of work handed to an optimizer: a dimension
// N plus the materialized upper-triangular cost matrix.
type Problem struct {
	n     int
	costs [][]int64 // costs[i][j-i-1] holds cost(i, j) for j > i
}

// NewProblem materializes an N-node ordering problem from cost.
//
// Contracts:
//   - n >= 2 (a single node admits no ordering); otherwise ErrDimensionMismatch.
//   - cost must be non-nil; otherwise ErrNilCostFunc.
//
// Complexity: O(n²) time and space (one cost call per pair i<j).
func NewProblem(n int, cost CostFunc) (*Problem, error) {
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}

	var (
		rows = make([][]int64, n)
		i    int
		j    int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]int64, n-i-1)
		for j = i + 1; j < n; j++ {
			rows[i][j-i-1] = cost(i, j)
		}
	}

	return &Problem{n: n, costs: rows}, nil
}

// Dimension returns N, the number of nodes.
func (p *Problem) Dimension() int { return p.n }

// Cost returns the cost of the unordered pair {i, j}. The pair is
// canonicalized internally, so Cost(3, 1) == Cost(1, 3).
//
// Errors: ErrNodeOutOfRange for indices outside [0..N-1] or i == j
// (self-pairs carry no cost by construction).
//
// Complexity: O(1).
func (p *Problem) Cost(i, j int) (int64, error) {
	if i > j {
		i, j = j, i
	}
	if i < 0 || j >= p.n || i == j {
		return 0, ErrNodeOutOfRange
	}

	return p.costs[i][j-i-1], nil
}
