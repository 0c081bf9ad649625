package block_test

import (
	"testing"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/block"
	"github.com/katalvlaran/dmatrix/partition"
	"github.com/katalvlaran/dmatrix/row"
	"github.com/stretchr/testify/require"
)

func TestWeightDelta_DashWeighting(t *testing.T) {
	// spec.md §8 scenario 5: width 1, ranges [0..2], rows [DASH] vs [1].
	ds := &partition.Dataset{
		Q: 1, Dash: -1 << 62,
		Features: [][]int64{{-1 << 62}, {1}},
		Min:      []int64{0}, Max: []int64{2},
	}
	w, err := block.WeightDelta(ds, 0, 1)
	require.NoError(t, err)
	require.Equal(t, []int64{2}, w) // |0-1| + |1-1| + |2-1| = 2
}

func TestProcessBlock_TwoSingletons(t *testing.T) {
	// spec.md §8 scenario 2.
	ds := &partition.Dataset{
		Q: 2, Dash: -1 << 62,
		Features: [][]int64{{1, 2}, {2, 1}},
		Min:      []int64{1, 1}, Max: []int64{2, 2},
	}
	acc := accumulator.New(2)
	require.NoError(t, block.ProcessBlock(acc, ds, 0, 1, 1, 1, nil))

	rows := acc.Rows()
	require.Len(t, rows, 1)
	expected, _ := row.Difference(row.New([]int64{1, 2}), row.New([]int64{2, 1}))
	require.True(t, row.Equal(rows[0], expected))
	require.Equal(t, []int64{1, 1}, acc.ColumnWeights())
}

func TestWeightDelta_OverflowIsReported(t *testing.T) {
	ds := &partition.Dataset{
		Q: 1, Dash: -1 << 62,
		Features: [][]int64{{-1 << 62}, {-1 << 62}},
		Min:      []int64{0}, Max: []int64{1<<62 - 1},
	}
	_, err := block.WeightDelta(ds, 0, 1)
	require.Error(t, err)
	var overflow *block.ErrWeightOverflow
	require.ErrorAs(t, err, &overflow)
}
