package index

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockfreq/errs"
)

func TestNewCostModel_Validation(t *testing.T) {
	_, err := NewCostModel(CostConfig{AccessCost: 0, StorageCost: 1}, 550)
	require.ErrorIs(t, err, errs.ErrInvalidCostUnit)

	_, err = NewCostModel(CostConfig{AccessCost: 1, StorageCost: -1}, 550)
	require.ErrorIs(t, err, errs.ErrInvalidCostUnit)

	_, err = NewCostModel(CostConfig{AccessCost: 1, StorageCost: 1}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidQueryRate)
}

func TestCostModel_BreakEvenBytes(t *testing.T) {
	m, err := NewCostModel(CostConfig{AccessCost: 4, StorageCost: 2}, 550)
	require.NoError(t, err)

	require.InDelta(t, 2.0, m.CostRatio(), 1e-12)
	require.InDelta(t, 550.0, m.QueriesPerBlock(), 1e-12)
	// queries_per_block * cost_ratio * 1024
	require.InDelta(t, 550*2*1024.0, m.BreakEvenBytes(), 1e-6)
}

func TestCostModel_Accept(t *testing.T) {
	// break_even = 1 * (14/1024) * 1024 = exactly 14 bytes.
	m, err := NewCostModel(CostConfig{AccessCost: 14, StorageCost: 1024}, 1)
	require.NoError(t, err)

	require.True(t, m.Accept(13))
	require.True(t, m.Accept(14), "a buffer exactly at break-even is accepted")
	require.False(t, m.Accept(15))
}
