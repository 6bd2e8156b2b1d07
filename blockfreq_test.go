package blockfreq

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/blockfreq/format"
	"github.com/arloliu/blockfreq/index"
)

func TestBuildQuery_EndToEnd(t *testing.T) {
	cost := CostConfig{AccessCost: 4, StorageCost: 1}

	result, err := Build([]uint32{5, 5, 5, 7, 7, 9}, cost)
	require.NoError(t, err)
	require.True(t, result.Accepted())

	res, err := Query(result.Index, 7)
	require.NoError(t, err)
	require.Equal(t, LookupFound, res.Status)
	require.Equal(t, uint32(2), res.Count)

	res, err = Query(result.Index, 6)
	require.NoError(t, err)
	require.Equal(t, LookupAbsent, res.Status)

	res, err = Query(nil, 7)
	require.NoError(t, err)
	require.Equal(t, LookupNoIndex, res.Status)
}

func TestBuild_RejectsWithUnfavorableCosts(t *testing.T) {
	result, err := Build([]uint32{5, 5, 5, 7, 7, 9}, CostConfig{AccessCost: 1, StorageCost: 1e9})
	require.NoError(t, err)
	require.True(t, result.Rejected)
	require.Nil(t, result.Index)
}

func TestBuild_WithOptions(t *testing.T) {
	result, err := Build([]uint32{1, 2, 3},
		CostConfig{AccessCost: 4, StorageCost: 1},
		index.WithQueriesPerBlock(100),
	)
	require.NoError(t, err)
	require.True(t, result.Accepted())
}

func TestSealOpen_EndToEnd(t *testing.T) {
	cost := CostConfig{AccessCost: 4, StorageCost: 1}

	result, err := Build([]uint32{5, 5, 5, 7, 7, 9}, cost)
	require.NoError(t, err)

	sealed, err := Seal(result.Index, format.CompressionLZ4)
	require.NoError(t, err)

	opened, err := Open(sealed)
	require.NoError(t, err)
	require.Equal(t, result.Index, opened)

	res, err := Query(opened, 9)
	require.NoError(t, err)
	require.Equal(t, LookupFound, res.Status)
	require.Equal(t, uint32(1), res.Count)
}
