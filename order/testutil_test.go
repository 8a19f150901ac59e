// Package order_test - lightweight helpers shared across *_test.go files
// in this package. Minimal by intent; anything behavioral belongs in the
// focused test files.
package order_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxwelljohn/topic-sort/order"
)

// unitProblem builds an n-node problem where every pair costs 1. Useful
// when only structure matters.
func unitProblem(t *testing.T, n int) *order.Problem {
	t.Helper()
	p, err := order.NewProblem(n, func(int, int) int64 { return 1 })
	require.NoError(t, err)

	return p
}

// chainScenarioProblem is the 4-node scenario from the similarity domain:
// the pairwise ranking favors the chain 0-1-2-3. Off-chain pairs cost 0,
// chain pairs are negative (similar items attract).
func chainScenarioProblem(t *testing.T) *order.Problem {
	t.Helper()
	costs := map[[2]int]int64{
		{0, 1}: -10,
		{2, 3}: -9,
		{1, 2}: -8,
	}
	p, err := order.NewProblem(4, func(i, j int) int64 { return costs[[2]int{i, j}] })
	require.NoError(t, err)

	return p
}

// mustAdd commits every pair in sequence, failing the test on any error.
func mustAdd(t *testing.T, s *order.Solution, pairs ...[2]int) {
	t.Helper()
	for _, pr := range pairs {
		require.NoError(t, s.AddEdge(pr[0], pr[1]), "adding (%d,%d)", pr[0], pr[1])
	}
}

// feasiblePairs scans the full triangle through the public accessor.
func feasiblePairs(s *order.Solution) [][2]int {
	var out [][2]int
	n := s.Dimension()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if s.IsFeasible(i, j) {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}
