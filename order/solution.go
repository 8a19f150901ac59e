// Package order - the incremental engine state machine.
//
// A Solution accepts edges one at a time and keeps four pieces of mutable
// state consistent after every insertion: the committed-edge matrix, the
// per-node degrees, the component labels, and the monotonically shrinking
// feasible mask. All matrices are dense upper-triangular booleans owned
// exclusively by the instance - no process-wide state, no sharing.
//
// Design principles:
//   - Deterministic: no randomness, no map iteration in state transitions.
//   - Strict sentinels: feasibility and duplicate rejections are expected
//     control flow; invariant breaches are fatal and always wrapped around
//     ErrInvariantViolation with a diagnostic suffix.
//   - Eager relabeling on merge (full-array scan): O(n) per merge; see
//     DESIGN.md for the trade-off against path-compressed union-find.
package order

import "fmt"

// Solution is the incremental ordering engine: the mutable state of one
// partially built path or cycle. Create instances with NewPathSolution or
// NewCycleSolution; mutate exclusively through AddEdge. Once IsComplete
// reports true the instance is read-only.
type Solution struct {
	problem *Problem
	n       int
	variant Variant

	added     [][]bool // committed pairs, added[i][j-i-1] for j > i
	feasible  [][]bool // current feasible mask, same layout
	valid     [][]bool // frozen feasibility universe, for invariant checks
	degree    []int    // committed-edge count per node, always 0..2
	component []int    // component label per node, unassigned (-1) if degree 0

	edgeCount int
	complete  bool
	closing   Edge // designated loop-closing pair; {-1,-1} until unlocked
}

// NewPathSolution creates an empty engine targeting an open ordering over
// problem: N-1 edges, two degree-1 endpoints.
//
// Errors: ErrDimensionMismatch if problem is nil or N < 2.
func NewPathSolution(problem *Problem) (*Solution, error) {
	return newSolution(problem, Path, 2)
}

// NewCycleSolution creates an empty engine targeting a closed tour over
// problem: N edges, every node at degree 2. A cycle needs at least three
// nodes; the two-node "cycle" would require the same pair twice.
//
// Errors: ErrDimensionMismatch if problem is nil or N < 3.
func NewCycleSolution(problem *Problem) (*Solution, error) {
	return newSolution(problem, Cycle, 3)
}

// newSolution allocates the dense state for an n-node engine. The feasible
// mask starts as the full universe of pairs i<j; valid keeps a frozen copy
// so EnsureValid can verify committed edges never leave the universe.
//
// Complexity: O(n²) time and space.
func newSolution(problem *Problem, variant Variant, minDim int) (*Solution, error) {
	if problem == nil || problem.Dimension() < minDim {
		return nil, ErrDimensionMismatch
	}

	var (
		n = problem.Dimension()
		s = &Solution{
			problem:   problem,
			n:         n,
			variant:   variant,
			added:     make([][]bool, n),
			feasible:  make([][]bool, n),
			valid:     make([][]bool, n),
			degree:    make([]int, n),
			component: make([]int, n),
			closing:   Edge{A: unassigned, B: unassigned},
		}
		i int
		j int
	)
	for i = 0; i < n; i++ {
		s.added[i] = make([]bool, n-i-1)
		s.feasible[i] = make([]bool, n-i-1)
		s.valid[i] = make([]bool, n-i-1)
		for j = range s.feasible[i] {
			s.feasible[i][j] = true
			s.valid[i][j] = true
		}
		s.component[i] = unassigned
	}

	return s, nil
}

// Dimension returns N, the number of nodes.
func (s *Solution) Dimension() int { return s.n }

// Kind returns the structural variant (Path or Cycle).
func (s *Solution) Kind() Variant { return s.variant }

// Problem returns the immutable problem this engine is bound to.
func (s *Solution) Problem() *Problem { return s.problem }

// IsComplete reports whether the variant-specific completion criterion has
// been met. A complete engine is read-only.
func (s *Solution) IsComplete() bool { return s.complete }

// EdgeCount returns the number of committed edges.
func (s *Solution) EdgeCount() int { return s.edgeCount }

// Degree returns the number of committed edges touching node i.
//
// Errors: ErrNodeOutOfRange.
func (s *Solution) Degree(i int) (int, error) {
	if i < 0 || i >= s.n {
		return 0, ErrNodeOutOfRange
	}

	return s.degree[i], nil
}

// ComponentOf returns the component label of node i, or -1 if the node has
// no committed edges yet. Labels are named after an arbitrary member node.
//
// Errors: ErrNodeOutOfRange.
func (s *Solution) ComponentOf(i int) (int, error) {
	if i < 0 || i >= s.n {
		return 0, ErrNodeOutOfRange
	}

	return s.component[i], nil
}

// HasEdge reports whether the unordered pair {a, b} has been committed.
// Out-of-range or self pairs are simply absent.
func (s *Solution) HasEdge(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b >= s.n || a == b {
		return false
	}

	return s.added[a][b-a-1]
}

// IsFeasible reports whether the unordered pair {a, b} is currently
// eligible for AddEdge. Out-of-range or self pairs are never feasible.
func (s *Solution) IsFeasible(a, b int) bool {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b >= s.n || a == b {
		return false
	}

	return s.feasible[a][b-a-1]
}

// Edges returns the committed edges in canonical (A<B) row-major order.
//
// Complexity: O(n²) time, O(edges) space.
func (s *Solution) Edges() []Edge {
	out := make([]Edge, 0, s.edgeCount)

	var i, j int
	for i = 0; i < s.n; i++ {
		for j = i + 1; j < s.n; j++ {
			if s.added[i][j-i-1] {
				out = append(out, Edge{A: i, B: j})
			}
		}
	}

	return out
}

// Endpoints returns the degree-1 nodes in ascending order. A completed path
// has exactly two; a completed cycle has none.
//
// Complexity: O(n).
func (s *Solution) Endpoints() []int {
	var out []int
	for i := 0; i < s.n; i++ {
		if s.degree[i] == 1 {
			out = append(out, i)
		}
	}

	return out
}

// Cost returns the sum of problem costs over all committed edges. For a
// completed cycle this is the tour cost; for a path (complete or partial)
// it is the cost of the chain built so far. Negative totals are legal:
// similarity-derived cost models are negative by construction.
//
// Complexity: O(n²).
func (s *Solution) Cost() (int64, error) {
	if err := s.EnsureValid(); err != nil {
		return 0, err
	}

	var (
		total int64
		c     int64
		err   error
		i, j  int
	)
	for i = 0; i < s.n; i++ {
		for j = i + 1; j < s.n; j++ {
			if !s.added[i][j-i-1] {
				continue
			}
			c, err = s.problem.Cost(i, j)
			if err != nil {
				return 0, err
			}
			total += c
		}
	}

	return total, nil
}

// AddEdge commits the unordered pair {a, b} and restores every invariant
// before returning. The pair is canonicalized internally.
//
// Transition, in order:
//  1. Reject duplicates (ErrDuplicateEdge) and infeasible pairs
//     (ErrInfeasibleEdge). Both are expected optimizer control flow.
//  2. Commit: mark added, drop from the feasible mask, bump both degrees;
//     a node reaching degree 2 loses every remaining pair touching it.
//  3. Connectivity update: start, absorb, or merge components; merging
//     forbids every pair inside the combined component, which is what
//     makes premature subtours impossible.
//  4. Variant hook: the path variant finishes when the mask empties; the
//     cycle variant, one edge short of a tour, re-opens the unique pair of
//     degree-1 endpoints - the sole exception to "feasibility never
//     returns" - and finishes once that closing edge lands.
//  5. Full invariant re-check (EnsureValid).
//
// Errors: ErrNodeOutOfRange, ErrDuplicateEdge, ErrInfeasibleEdge, and
// wrapped ErrInvariantViolation for internal breaches (fatal, never
// catch-and-continue).
//
// Complexity: O(n) typical, O(n²) on the re-validation pass.
func (s *Solution) AddEdge(a, b int) error {
	if a > b {
		a, b = b, a
	}
	if a < 0 || b >= s.n {
		return ErrNodeOutOfRange
	}
	if a == b {
		return ErrInfeasibleEdge
	}

	// Stage 1 - admission.
	if s.added[a][b-a-1] {
		return ErrDuplicateEdge
	}
	if !s.feasible[a][b-a-1] {
		return ErrInfeasibleEdge
	}

	// Stage 2 - commit and clamp degrees.
	s.feasible[a][b-a-1] = false
	s.added[a][b-a-1] = true
	s.edgeCount++

	var node int
	for _, node = range [2]int{a, b} {
		if s.degree[node] >= 2 {
			// Unreachable when the mask is maintained correctly: a degree-2
			// node has no feasible pairs left.
			return fmt.Errorf("%w: node %d would exceed degree 2", ErrInvariantViolation, node)
		}
		s.degree[node]++
		if s.degree[node] == 2 {
			s.forbidNode(node)
		}
	}

	// Stage 3 - connectivity.
	if err := s.updateComponents(a, b); err != nil {
		return err
	}

	// Stage 4 - variant hook.
	if err := s.afterAdd(); err != nil {
		return err
	}

	// Stage 5 - re-validate before handing control back.
	return s.EnsureValid()
}

// forbidNode removes every pair touching node from the feasible mask.
//
// Complexity: O(n).
func (s *Solution) forbidNode(node int) {
	var i int
	for i = 0; i < node; i++ {
		s.feasible[i][node-i-1] = false
	}
	for i = node + 1; i < s.n; i++ {
		s.feasible[node][i-node-1] = false
	}
}

// forbidPair removes a single canonical pair from the feasible mask.
func (s *Solution) forbidPair(i, j int) {
	if i > j {
		i, j = j, i
	}
	s.feasible[i][j-i-1] = false
}

// updateComponents runs the connectivity transition for the freshly
// committed pair (a, b), a < b:
//
//   - both unassigned: start a new two-node component labeled by a;
//   - exactly one assigned: absorb the other node, then forbid pairs
//     between the absorbed node and every member of its new component;
//   - different labels: merge, relabeling the swallowed component by a
//     full-array scan, then forbid every pair inside the merged set;
//   - same label: legal only for the designated closing edge of the cycle
//     variant; anywhere else it means a subtour closed early, which is an
//     invariant breach.
//
// Complexity: O(n) scans; the merge case is O(n²) in the worst case from
// the pairwise forbid over the combined membership.
func (s *Solution) updateComponents(a, b int) error {
	var (
		ca = s.component[a]
		cb = s.component[b]
	)

	switch {
	case ca == unassigned && cb == unassigned:
		// Fresh two-node chain; the connecting pair itself is already spent.
		s.component[a] = a
		s.component[b] = a

	case ca != unassigned && cb != unassigned:
		if ca == cb {
			if s.variant == Cycle && a == s.closing.A && b == s.closing.B {
				// The designated closing edge: the component is already
				// whole, nothing to relabel.
				return nil
			}

			return fmt.Errorf("%w: intra-component edge (%d,%d) outside the designated closing edge", ErrInvariantViolation, a, b)
		}
		s.mergeComponents(ca, cb)

	default:
		// Exactly one endpoint assigned: absorb the loose node.
		var addition, label int
		if ca == unassigned {
			addition, label = a, cb
		} else {
			addition, label = b, ca
		}
		s.component[addition] = label
		for member := 0; member < s.n; member++ {
			if member != addition && s.component[member] == label {
				s.forbidPair(addition, member)
			}
		}
	}

	return nil
}

// mergeComponents relabels every node of the swallowed component to the
// swallower's label, then forbids every remaining pair inside the merged
// membership. Eager relabeling keeps labels stable for the surviving
// component.
func (s *Solution) mergeComponents(swallower, swallowed int) {
	var i, j int
	for i = 0; i < s.n; i++ {
		if s.component[i] == swallowed {
			s.component[i] = swallower
		}
	}
	for i = 0; i < s.n; i++ {
		if s.component[i] != swallower {
			continue
		}
		for j = i + 1; j < s.n; j++ {
			if s.component[j] == swallower {
				s.feasible[i][j-i-1] = false
			}
		}
	}
}

// afterAdd is the variant hook evaluated after the connectivity update.
//
// Path: an empty mask means the chain is done; anything other than exactly
// N-1 committed edges at that point is a liveness defect (a state with no
// feasible edge and an incomplete structure), surfaced as an invariant
// violation rather than patched silently.
//
// Cycle: an empty mask one edge short of a tour triggers the single
// designated re-open of the endpoint pair; an empty mask at N edges means
// the closing edge just landed and the tour is complete.
func (s *Solution) afterAdd() error {
	if s.complete || !s.maskEmpty() {
		return nil
	}

	switch s.variant {
	case Path:
		if s.edgeCount != s.n-1 {
			return fmt.Errorf("%w: feasible set empty after %d of %d path edges", ErrInvariantViolation, s.edgeCount, s.n-1)
		}
		s.complete = true

	case Cycle:
		if s.edgeCount == s.n {
			s.complete = true
			return nil
		}
		if s.edgeCount != s.n-1 {
			return fmt.Errorf("%w: feasible set empty after %d of %d cycle edges", ErrInvariantViolation, s.edgeCount, s.n)
		}
		ends := s.Endpoints()
		if len(ends) != 2 {
			return fmt.Errorf("%w: %d degree-1 endpoints at closing time, want 2", ErrInvariantViolation, len(ends))
		}
		// The sole exception to monotone feasibility: unlock the pair of
		// open-path ends so the tour can close.
		s.closing = Edge{A: ends[0], B: ends[1]}
		s.feasible[ends[0]][ends[1]-ends[0]-1] = true
	}

	return nil
}

// maskEmpty reports whether no pair remains feasible.
//
// Complexity: O(n²).
func (s *Solution) maskEmpty() bool {
	var i, j int
	for i = range s.feasible {
		for j = range s.feasible[i] {
			if s.feasible[i][j] {
				return false
			}
		}
	}

	return true
}
