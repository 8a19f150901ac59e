// Package order_test verifies Problem construction and cost lookups.
// Focus:
//  1. Shape contracts: dimension >= 2, non-nil cost source.
//  2. Canonical pair lookup: Cost(i, j) == Cost(j, i), self-pairs rejected.
//  3. Negative costs are first-class (similarity models rely on them).
package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwelljohn/topic-sort/order"
)

// rowMajorCost is a cost model whose value encodes the pair: 10*i + j.
// Handy for asserting canonicalization.
func rowMajorCost(i, j int) int64 { return int64(10*i + j) }

func TestNewProblem_ShapeContracts(t *testing.T) {
	tests := []struct {
		name string
		n    int
		fn   order.CostFunc
		want error
	}{
		{name: "dimension too small", n: 1, fn: rowMajorCost, want: order.ErrDimensionMismatch},
		{name: "dimension negative", n: -3, fn: rowMajorCost, want: order.ErrDimensionMismatch},
		{name: "nil cost func", n: 4, fn: nil, want: order.ErrNilCostFunc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := order.NewProblem(tc.n, tc.fn)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProblem_CostCanonicalizesPairs(t *testing.T) {
	p, err := order.NewProblem(4, rowMajorCost)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Dimension())

	// Mirrored lookups hit the same upper-triangular entry.
	c1, err := p.Cost(1, 3)
	require.NoError(t, err)
	c2, err := p.Cost(3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(13), c1)
	assert.Equal(t, c1, c2)
}

func TestProblem_CostRejectsBadPairs(t *testing.T) {
	p, err := order.NewProblem(3, rowMajorCost)
	require.NoError(t, err)

	for _, pair := range [][2]int{{0, 0}, {2, 2}, {-1, 1}, {0, 3}, {3, 5}} {
		_, err = p.Cost(pair[0], pair[1])
		assert.ErrorIs(t, err, order.ErrNodeOutOfRange, "pair %v", pair)
	}
}

func TestProblem_NegativeCostsSurviveConstruction(t *testing.T) {
	p, err := order.NewProblem(3, func(i, j int) int64 { return -int64(i + j) })
	require.NoError(t, err)

	c, err := p.Cost(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), c)
}
