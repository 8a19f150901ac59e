// Package optimize_test verifies the greedy strategy.
// Focus:
//  1. The 4-node similarity chain: exactly the three ranked edges, in cost
//     order, completion reported with those edges and no others.
//  2. The scaled unit square: the tour uses the four sides and skips both
//     diagonals, so the cost equals the perimeter.
//  3. Determinism: identical runs produce identical orderings and costs.
package optimize_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwelljohn/topic-sort/optimize"
	"github.com/maxwelljohn/topic-sort/order"
)

// chainProblem ranks pairwise similarity so the best open ordering is the
// chain 0-1-2-3 (similarity costs are negative).
func chainProblem(t *testing.T) *order.Problem {
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

// squareProblem places four nodes on a 10x10 square: sides cost 10,
// diagonals round(10·√2) = 14.
func squareProblem(t *testing.T) *order.Problem {
	t.Helper()
	pts := [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	p, err := order.NewProblem(4, func(i, j int) int64 {
		return int64(math.Round(math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])))
	})
	require.NoError(t, err)

	return p
}

func TestGreedy_PathChainScenario(t *testing.T) {
	s, err := optimize.Greedy(chainProblem(t), order.Path)
	require.NoError(t, err)
	require.NoError(t, s.EnsureComplete())

	assert.Equal(t, 3, s.EdgeCount())
	assert.Equal(t, []order.Edge{{A: 0, B: 1}, {A: 1, B: 2}, {A: 2, B: 3}}, s.Edges())

	walk, err := s.Traversal()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, walk)

	cost, err := s.Cost()
	require.NoError(t, err)
	assert.Equal(t, int64(-27), cost)
}

func TestGreedy_CycleUnitSquareAvoidsDiagonals(t *testing.T) {
	s, err := optimize.Greedy(squareProblem(t), order.Cycle)
	require.NoError(t, err)
	require.NoError(t, s.EnsureComplete())

	// Perimeter, no diagonal: 4 sides of length 10.
	cost, err := s.Cost()
	require.NoError(t, err)
	assert.Equal(t, int64(40), cost)

	assert.False(t, s.HasEdge(0, 2), "diagonal 0-2 unused")
	assert.False(t, s.HasEdge(1, 3), "diagonal 1-3 unused")
}

func TestGreedy_Deterministic(t *testing.T) {
	// Random but fixed costs; two runs must agree edge for edge.
	rng := rand.New(rand.NewSource(7))
	costs := make(map[[2]int]int64)
	const n = 12
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			costs[[2]int{i, j}] = rng.Int63n(1000)
		}
	}
	p, err := order.NewProblem(n, func(i, j int) int64 { return costs[[2]int{i, j}] })
	require.NoError(t, err)

	for _, variant := range []order.Variant{order.Path, order.Cycle} {
		t.Run(variant.String(), func(t *testing.T) {
			a, err := optimize.Greedy(p, variant)
			require.NoError(t, err)
			b, err := optimize.Greedy(p, variant)
			require.NoError(t, err)

			assert.Equal(t, a.Edges(), b.Edges())

			ca, err := a.Cost()
			require.NoError(t, err)
			cb, err := b.Cost()
			require.NoError(t, err)
			assert.Equal(t, ca, cb)
		})
	}
}

func TestGreedy_TieBreakIsRowMajor(t *testing.T) {
	// All pairs cost the same, so ties decide everything. Row-major picks
	// (0,1), then (0,2); node 0 saturates; (1,3) and (2,4) follow. The
	// resulting chain is 3-1-0-2-4, reported from its smaller endpoint.
	p, err := order.NewProblem(5, func(int, int) int64 { return 3 })
	require.NoError(t, err)

	s, err := optimize.Greedy(p, order.Path)
	require.NoError(t, err)

	walk, err := s.Traversal()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 0, 2, 4}, walk)
}

func TestGreedy_CompletesOnRandomProblems(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		rng := rand.New(rand.NewSource(seed))
		n := 3 + rng.Intn(10)
		costs := make([][]int64, n)
		for i := range costs {
			costs[i] = make([]int64, n)
			for j := i + 1; j < n; j++ {
				costs[i][j] = rng.Int63n(500) - 250 // negatives included
			}
		}
		p, err := order.NewProblem(n, func(i, j int) int64 { return costs[i][j] })
		require.NoError(t, err)

		for _, variant := range []order.Variant{order.Path, order.Cycle} {
			s, gerr := optimize.Greedy(p, variant)
			require.NoError(t, gerr, "seed=%d n=%d variant=%s", seed, n, variant)
			require.NoError(t, s.EnsureComplete())
		}
	}
}
