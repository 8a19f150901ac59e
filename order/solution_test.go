// Package order_test verifies the incremental engine state machine.
// Focus:
//  1. Admission: duplicate, infeasible, out-of-range rejections.
//  2. Degree clamping and the no-premature-subtour rule.
//  3. Variant completion criteria, including the N=2 path and N=3 cycle
//     boundaries and the single closing-edge re-open of the cycle variant.
//  4. Randomized feasible sequences: invariants hold after every single
//     call, and a feasible pair always exists until completion (liveness).
package order_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwelljohn/topic-sort/order"
)

// -----------------------------------------------------------------------------
// Admission
// -----------------------------------------------------------------------------

func TestAddEdge_RejectsBadIndices(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 4))
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddEdge(-1, 2), order.ErrNodeOutOfRange)
	assert.ErrorIs(t, s.AddEdge(0, 4), order.ErrNodeOutOfRange)
	// Self-pairs are outside the feasibility universe, not out of range.
	assert.ErrorIs(t, s.AddEdge(2, 2), order.ErrInfeasibleEdge)
	assert.Equal(t, 0, s.EdgeCount())
}

func TestAddEdge_DuplicateAndInfeasible(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 4))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1})
	assert.ErrorIs(t, s.AddEdge(0, 1), order.ErrDuplicateEdge)
	assert.ErrorIs(t, s.AddEdge(1, 0), order.ErrDuplicateEdge, "canonicalized duplicate")

	mustAdd(t, s, [2]int{1, 2})
	// Node 1 is saturated: every remaining pair touching it is gone.
	assert.ErrorIs(t, s.AddEdge(1, 3), order.ErrInfeasibleEdge)
	// 0 and 2 share a component now; connecting them would close a subtour.
	assert.ErrorIs(t, s.AddEdge(0, 2), order.ErrInfeasibleEdge)

	// Failed attempts leave no trace.
	require.NoError(t, s.EnsureValid())
	assert.Equal(t, 2, s.EdgeCount())
}

// -----------------------------------------------------------------------------
// Degree and component bookkeeping
// -----------------------------------------------------------------------------

func TestAddEdge_DegreeAndComponentAccessors(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 5))
	require.NoError(t, err)

	// Isolated nodes are unassigned.
	c, err := s.ComponentOf(3)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	mustAdd(t, s, [2]int{0, 1}, [2]int{3, 4})

	for node, wantDeg := range map[int]int{0: 1, 1: 1, 2: 0, 3: 1, 4: 1} {
		d, derr := s.Degree(node)
		require.NoError(t, derr)
		assert.Equal(t, wantDeg, d, "node %d", node)
	}

	c01, err := s.ComponentOf(1)
	require.NoError(t, err)
	c34, err := s.ComponentOf(4)
	require.NoError(t, err)
	assert.NotEqual(t, c01, c34, "separate chains carry separate labels")

	// Merging relabels the swallowed chain.
	mustAdd(t, s, [2]int{1, 3})
	for _, node := range []int{0, 1, 3, 4} {
		c, err = s.ComponentOf(node)
		require.NoError(t, err)
		assert.Equal(t, c01, c, "node %d joins the surviving label", node)
	}

	_, err = s.Degree(5)
	assert.ErrorIs(t, err, order.ErrNodeOutOfRange)
	_, err = s.ComponentOf(-1)
	assert.ErrorIs(t, err, order.ErrNodeOutOfRange)
}

func TestEdges_CanonicalRowMajorOrder(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 4))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{3, 2}, [2]int{1, 0})
	assert.Equal(t, []order.Edge{{A: 0, B: 1}, {A: 2, B: 3}}, s.Edges())
	assert.True(t, s.HasEdge(2, 3))
	assert.True(t, s.HasEdge(3, 2), "unordered lookup")
	assert.False(t, s.HasEdge(0, 2))
}

// -----------------------------------------------------------------------------
// Path variant
// -----------------------------------------------------------------------------

func TestPath_FourNodeChainScenario(t *testing.T) {
	s, err := order.NewPathSolution(chainScenarioProblem(t))
	require.NoError(t, err)

	// Order of addition does not matter for the structure.
	mustAdd(t, s, [2]int{0, 1}, [2]int{2, 3}, [2]int{1, 2})

	assert.True(t, s.IsComplete())
	require.NoError(t, s.EnsureComplete())
	assert.Equal(t, 3, s.EdgeCount())
	assert.Equal(t, []int{0, 3}, s.Endpoints())

	walk, err := s.Traversal()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, walk)

	cost, err := s.Cost()
	require.NoError(t, err)
	assert.Equal(t, int64(-27), cost)
}

func TestPath_TwoNodeBoundary(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 2))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1})
	assert.True(t, s.IsComplete())
	require.NoError(t, s.EnsureComplete())

	// Both nodes are endpoints; nobody reaches degree 2.
	assert.Equal(t, []int{0, 1}, s.Endpoints())

	walk, err := s.Traversal()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, walk)
}

func TestPath_CompleteEngineIsReadOnly(t *testing.T) {
	s, err := order.NewPathSolution(unitProblem(t, 3))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1}, [2]int{1, 2})
	require.NoError(t, s.EnsureComplete())

	// The mask is empty, so any further mutation is rejected.
	assert.ErrorIs(t, s.AddEdge(0, 2), order.ErrInfeasibleEdge)
	assert.Equal(t, 2, s.EdgeCount())
}

// -----------------------------------------------------------------------------
// Cycle variant
// -----------------------------------------------------------------------------

func TestCycle_RejectsDegenerateDimensions(t *testing.T) {
	_, err := order.NewCycleSolution(unitProblem(t, 2))
	assert.ErrorIs(t, err, order.ErrDimensionMismatch)

	_, err = order.NewCycleSolution(nil)
	assert.ErrorIs(t, err, order.ErrDimensionMismatch)
}

func TestCycle_ThreeNodeBoundary(t *testing.T) {
	s, err := order.NewCycleSolution(unitProblem(t, 3))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1}, [2]int{1, 2})

	// Two edges do not make a 3-cycle.
	assert.False(t, s.IsComplete())
	assert.ErrorIs(t, s.EnsureComplete(), order.ErrIncompleteStructure)

	// The closing pair was re-opened and is the only feasible pair left.
	assert.Equal(t, [][2]int{{0, 2}}, feasiblePairs(s))

	mustAdd(t, s, [2]int{0, 2})
	assert.True(t, s.IsComplete())
	require.NoError(t, s.EnsureComplete())
	assert.Equal(t, 3, s.EdgeCount())
}

func TestCycle_ClosingEdgeIsTheSoleReopen(t *testing.T) {
	s, err := order.NewCycleSolution(unitProblem(t, 4))
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})

	// N-1 edges committed, ends 0 and 3 open: exactly one pair returns.
	assert.False(t, s.IsComplete())
	assert.Equal(t, [][2]int{{0, 3}}, feasiblePairs(s))

	mustAdd(t, s, [2]int{0, 3})
	require.NoError(t, s.EnsureComplete())

	for node := 0; node < 4; node++ {
		d, derr := s.Degree(node)
		require.NoError(t, derr)
		assert.Equal(t, 2, d, "node %d saturated", node)
	}
	assert.Empty(t, feasiblePairs(s), "no feasibility changes after completion")
}

func TestCycle_CostIsSumOverCommittedPairs(t *testing.T) {
	p, err := order.NewProblem(4, rowMajorCost)
	require.NoError(t, err)
	s, err := order.NewCycleSolution(p)
	require.NoError(t, err)

	mustAdd(t, s, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{0, 3})
	require.NoError(t, s.EnsureComplete())

	cost, err := s.Cost()
	require.NoError(t, err)
	// (0,1)=1 + (1,2)=12 + (2,3)=23 + (0,3)=3.
	assert.Equal(t, int64(39), cost)
}

// -----------------------------------------------------------------------------
// Round-trip: traversal replayed into a fresh engine reproduces the state.
// -----------------------------------------------------------------------------

func TestRoundTrip_TraversalReplayMatches(t *testing.T) {
	for _, variant := range []order.Variant{order.Path, order.Cycle} {
		t.Run(variant.String(), func(t *testing.T) {
			p := unitProblem(t, 6)
			s := buildRandomComplete(t, p, variant, 42)

			walk, err := s.Traversal()
			require.NoError(t, err)

			fresh, err := newByVariant(p, variant)
			require.NoError(t, err)
			for i := 0; i+1 < len(walk); i++ {
				require.NoError(t, fresh.AddEdge(walk[i], walk[i+1]))
			}

			require.NoError(t, fresh.EnsureComplete())
			assert.Equal(t, s.Edges(), fresh.Edges())

			c1, err := s.Cost()
			require.NoError(t, err)
			c2, err := fresh.Cost()
			require.NoError(t, err)
			assert.Equal(t, c1, c2)
		})
	}
}

// -----------------------------------------------------------------------------
// Randomized feasible sequences: invariants plus liveness (a feasible
// pair must always exist until completion).
// -----------------------------------------------------------------------------

func TestRandomFeasibleSequences_InvariantsAndLiveness(t *testing.T) {
	for _, variant := range []order.Variant{order.Path, order.Cycle} {
		minN := 2
		if variant == order.Cycle {
			minN = 3
		}
		for n := minN; n <= 9; n++ {
			for seed := int64(1); seed <= 5; seed++ {
				s := buildRandomComplete(t, unitProblem(t, n), variant, seed)
				require.NoError(t, s.EnsureComplete(), "variant=%s n=%d seed=%d", variant, n, seed)
			}
		}
	}
}

// newByVariant dispatches construction on the variant under test.
func newByVariant(p *order.Problem, variant order.Variant) (*order.Solution, error) {
	if variant == order.Cycle {
		return order.NewCycleSolution(p)
	}

	return order.NewPathSolution(p)
}

// buildRandomComplete drives an engine to completion by committing
// uniformly random feasible pairs, asserting full validity after every
// single call. An empty feasible set before completion fails the test:
// that would be a liveness counterexample.
func buildRandomComplete(t *testing.T, p *order.Problem, variant order.Variant, seed int64) *order.Solution {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	s, err := newByVariant(p, variant)
	require.NoError(t, err)

	for !s.IsComplete() {
		pairs := feasiblePairs(s)
		require.NotEmpty(t, pairs, "no feasible pair while incomplete (%d edges)", s.EdgeCount())

		pick := pairs[rng.Intn(len(pairs))]
		require.NoError(t, s.AddEdge(pick[0], pick[1]))
		require.NoError(t, s.EnsureValid())

		for node := 0; node < s.Dimension(); node++ {
			d, derr := s.Degree(node)
			require.NoError(t, derr)
			assert.LessOrEqual(t, d, 2)
		}
	}

	return s
}
