// Package order - shared invariant-checking utilities.
//
// EnsureValid re-derives every structural invariant from scratch rather
// than trusting the incremental bookkeeping; it runs after every AddEdge
// and is cheap enough (O(n²)) for the instance sizes this engine targets.
// A failure here is a defect in the engine or in an optimizer bypassing
// the public contract - callers must treat it as fatal.
package order

import "fmt"

// EnsureValid re-checks invariants 1-4 of the engine contract:
//
//  1. every committed edge lies inside the original feasibility universe;
//  2. every node's recorded degree equals the recount of committed edges
//     touching it, and never exceeds 2;
//  3. a degree-2 node has no feasible pair left;
//  4. no intra-component pair is feasible except the designated closing
//     edge, and the component labeling covers exactly the nodes with at
//     least one committed edge.
//
// Returns nil, or an error wrapping ErrInvariantViolation with a
// diagnostic suffix. Never recover from the latter.
//
// Complexity: O(n²) time, O(n) space.
func (s *Solution) EnsureValid() error {
	var (
		recount = make([]int, s.n)
		edges   int
		i, j    int
	)

	// Invariant 1 + degree recount in one pass over the triangle.
	for i = 0; i < s.n; i++ {
		for j = i + 1; j < s.n; j++ {
			if s.added[i][j-i-1] {
				if !s.valid[i][j-i-1] {
					return fmt.Errorf("%w: committed edge (%d,%d) outside the valid universe", ErrInvariantViolation, i, j)
				}
				if s.feasible[i][j-i-1] {
					return fmt.Errorf("%w: committed edge (%d,%d) still feasible", ErrInvariantViolation, i, j)
				}
				recount[i]++
				recount[j]++
				edges++
			}
			if s.feasible[i][j-i-1] && !s.valid[i][j-i-1] {
				return fmt.Errorf("%w: feasible pair (%d,%d) outside the valid universe", ErrInvariantViolation, i, j)
			}
		}
	}
	if edges != s.edgeCount {
		return fmt.Errorf("%w: edge count %d, recounted %d", ErrInvariantViolation, s.edgeCount, edges)
	}

	// Invariant 2: recorded degrees match and stay within 0..2.
	for i = 0; i < s.n; i++ {
		if s.degree[i] != recount[i] {
			return fmt.Errorf("%w: node %d degree %d, recounted %d", ErrInvariantViolation, i, s.degree[i], recount[i])
		}
		if s.degree[i] > 2 {
			return fmt.Errorf("%w: node %d degree %d exceeds 2", ErrInvariantViolation, i, s.degree[i])
		}
	}

	// Invariant 3: saturated nodes are fully clamped out of the mask.
	for i = 0; i < s.n; i++ {
		if s.degree[i] != 2 {
			continue
		}
		for j = 0; j < s.n; j++ {
			if j != i && s.pairFeasible(i, j) {
				return fmt.Errorf("%w: pair (%d,%d) feasible despite node %d at degree 2", ErrInvariantViolation, i, j, i)
			}
		}
	}

	// Invariant 4a: labeling covers exactly the touched nodes, and each
	// label is itself a member of its component.
	for i = 0; i < s.n; i++ {
		switch {
		case s.degree[i] == 0 && s.component[i] != unassigned:
			return fmt.Errorf("%w: isolated node %d carries label %d", ErrInvariantViolation, i, s.component[i])
		case s.degree[i] > 0 && s.component[i] == unassigned:
			return fmt.Errorf("%w: node %d has edges but no component label", ErrInvariantViolation, i)
		case s.component[i] != unassigned && s.component[s.component[i]] != s.component[i]:
			return fmt.Errorf("%w: label %d of node %d is not a member of its own component", ErrInvariantViolation, s.component[i], i)
		}
	}

	// Invariant 4b: no feasible intra-component pair beyond the designated
	// closing edge.
	for i = 0; i < s.n; i++ {
		for j = i + 1; j < s.n; j++ {
			if !s.feasible[i][j-i-1] {
				continue
			}
			if s.component[i] != unassigned && s.component[i] == s.component[j] {
				if s.variant == Cycle && i == s.closing.A && j == s.closing.B {
					continue
				}

				return fmt.Errorf("%w: intra-component pair (%d,%d) remains feasible", ErrInvariantViolation, i, j)
			}
		}
	}

	return nil
}

// pairFeasible reads the mask for an arbitrary (possibly unordered) pair.
func (s *Solution) pairFeasible(i, j int) bool {
	if i > j {
		i, j = j, i
	}

	return s.feasible[i][j-i-1]
}

// EnsureComplete verifies validity plus the variant-specific completion
// criterion:
//
//   - Path: exactly N-1 edges, two degree-1 endpoints, N-2 degree-2 nodes,
//     all nodes in one connected component.
//   - Cycle: exactly N edges, every node at degree 2, one component.
//
// Returns nil once the structure is finished; an error wrapping
// ErrIncompleteStructure while edges are still missing; a wrapped
// ErrInvariantViolation if the state is internally inconsistent.
//
// Complexity: O(n²) (dominated by EnsureValid).
func (s *Solution) EnsureComplete() error {
	if err := s.EnsureValid(); err != nil {
		return err
	}
	if !s.complete {
		return fmt.Errorf("%w: %d of %d edges committed", ErrIncompleteStructure, s.edgeCount, s.requiredEdges())
	}
	if !s.maskEmpty() {
		return fmt.Errorf("%w: feasible pairs remain after completion", ErrInvariantViolation)
	}

	// One component spanning every node.
	var (
		label = s.component[0]
		i     int
	)
	if label == unassigned {
		return fmt.Errorf("%w: node 0 not yet connected", ErrIncompleteStructure)
	}
	for i = 1; i < s.n; i++ {
		if s.component[i] != label {
			return fmt.Errorf("%w: node %d outside the spanning component", ErrIncompleteStructure, i)
		}
	}

	var deg1, deg2 int
	for i = 0; i < s.n; i++ {
		switch s.degree[i] {
		case 1:
			deg1++
		case 2:
			deg2++
		}
	}

	switch s.variant {
	case Path:
		if s.edgeCount != s.n-1 || deg1 != 2 || deg2 != s.n-2 {
			return fmt.Errorf("%w: path wants %d edges and 2 endpoints, have %d edges, %d endpoints", ErrIncompleteStructure, s.n-1, s.edgeCount, deg1)
		}
	case Cycle:
		if s.edgeCount != s.n || deg2 != s.n {
			return fmt.Errorf("%w: cycle wants %d edges with all nodes saturated, have %d edges, %d saturated", ErrIncompleteStructure, s.n, s.edgeCount, deg2)
		}
	}

	return nil
}

// requiredEdges returns the committed-edge count of a finished structure.
func (s *Solution) requiredEdges() int {
	if s.variant == Cycle {
		return s.n
	}

	return s.n - 1
}
