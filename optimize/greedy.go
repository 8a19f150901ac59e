// Package optimize - the deterministic greedy strategy.
package optimize

import (
	"fmt"

	"github.com/maxwelljohn/topic-sort/order"
)

// newEngine builds an empty engine of the requested variant over p.
func newEngine(p *order.Problem, variant order.Variant) (*order.Solution, error) {
	if variant == order.Cycle {
		return order.NewCycleSolution(p)
	}

	return order.NewPathSolution(p)
}

// Greedy drives a fresh engine to completion by repeatedly committing the
// cheapest currently feasible pair, ties broken row-major (smallest i,
// then smallest j). It never calls AddEdge on an infeasible pair, so every
// engine error it surfaces is a genuine defect rather than control flow.
//
// The engine's feasibility rules guarantee a feasible pair always exists
// until the structural criterion is met; a scan that finds none is
// surfaced as the engine's own invariant breach, never patched here.
//
// Complexity: O(n³) - n edge commits, each preceded by an O(n²) scan of
// the feasible mask. Fine for the instance sizes this module targets.
func Greedy(p *order.Problem, variant order.Variant) (*order.Solution, error) {
	s, err := newEngine(p, variant)
	if err != nil {
		return nil, err
	}

	var (
		n     = p.Dimension()
		bestA int
		bestB int
		bestC int64
		found bool
		c     int64
		i, j  int
	)
	for !s.IsComplete() {
		// Scan the triangle for the cheapest feasible pair. Strict "less
		// than" keeps the first (row-major) pair on ties.
		found = false
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if !s.IsFeasible(i, j) {
					continue
				}
				if c, err = p.Cost(i, j); err != nil {
					return nil, err
				}
				if !found || c < bestC {
					bestA, bestB, bestC = i, j, c
					found = true
				}
			}
		}
		if !found {
			// Liveness breach: no feasible pair yet incomplete. The engine
			// flags the same condition on its own transitions; reaching
			// this line means the property failed between calls.
			return nil, fmt.Errorf("%w: no feasible pair for incomplete %s", order.ErrInvariantViolation, variant)
		}

		if err = s.AddEdge(bestA, bestB); err != nil {
			return nil, err
		}
	}

	if err = s.EnsureComplete(); err != nil {
		return nil, err
	}

	return s, nil
}
