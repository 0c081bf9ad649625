package accumulator_test

import (
	"testing"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/row"
	"github.com/stretchr/testify/require"
)

func strategies() []accumulator.Strategy {
	return []accumulator.Strategy{accumulator.StrategyCoarse, accumulator.StrategyLockFree}
}

func TestDominanceCollapse(t *testing.T) {
	for _, s := range strategies() {
		acc := accumulator.New(2, accumulator.WithStrategy(s))

		require.NoError(t, acc.AddRow(row.New([]int64{row.Dash, 1}), []int64{0, 0}))
		require.NoError(t, acc.AddRow(row.New([]int64{1, 1}), []int64{0, 0}))
		require.NoError(t, acc.AddRow(row.New([]int64{row.Dash, row.Dash}), []int64{0, 0}))

		rows := acc.Rows()
		require.Len(t, rows, 1)
		require.True(t, row.Equal(rows[0], row.New([]int64{row.Dash, row.Dash})))
	}
}

func TestDominanceCollapse_OrderIndependent(t *testing.T) {
	// Same three rows, reverse insertion order, same final set.
	for _, s := range strategies() {
		acc := accumulator.New(2, accumulator.WithStrategy(s))

		require.NoError(t, acc.AddRow(row.New([]int64{row.Dash, row.Dash}), []int64{0, 0}))
		require.NoError(t, acc.AddRow(row.New([]int64{1, 1}), []int64{0, 0}))
		require.NoError(t, acc.AddRow(row.New([]int64{row.Dash, 1}), []int64{0, 0}))

		rows := acc.Rows()
		require.Len(t, rows, 1)
		require.True(t, row.Equal(rows[0], row.New([]int64{row.Dash, row.Dash})))
	}
}

func TestAddRow_AccumulatesWeights(t *testing.T) {
	for _, s := range strategies() {
		acc := accumulator.New(2, accumulator.WithStrategy(s))
		require.NoError(t, acc.AddRow(row.New([]int64{1, row.Dash}), []int64{3, 4}))
		require.NoError(t, acc.AddRow(row.New([]int64{2, row.Dash}), []int64{1, 2}))
		require.Equal(t, []int64{4, 6}, acc.ColumnWeights())
	}
}

func TestAddRow_Idempotent(t *testing.T) {
	for _, s := range strategies() {
		acc := accumulator.New(1, accumulator.WithStrategy(s))
		r := row.New([]int64{5})
		require.NoError(t, acc.AddRow(r, []int64{1}))
		require.NoError(t, acc.AddRow(r, []int64{1}))
		require.Len(t, acc.Rows(), 1)
	}
}

func TestAddRow_WidthMismatch(t *testing.T) {
	for _, s := range strategies() {
		acc := accumulator.New(2, accumulator.WithStrategy(s))
		err := acc.AddRow(row.New([]int64{1, 2}), []int64{1})
		require.ErrorIs(t, err, accumulator.ErrWidthMismatch)
	}
}

func TestAddMatrix_FoldsWeightsAndRows(t *testing.T) {
	for _, s := range strategies() {
		dst := accumulator.New(2, accumulator.WithStrategy(s))
		require.NoError(t, dst.AddRow(row.New([]int64{1, row.Dash}), []int64{1, 1}))

		src := accumulator.New(2, accumulator.WithStrategy(s))
		require.NoError(t, src.AddRow(row.New([]int64{row.Dash, 2}), []int64{2, 2}))

		require.NoError(t, dst.AddMatrix(src))
		require.Equal(t, []int64{3, 3}, dst.ColumnWeights())
		require.Len(t, dst.Rows(), 2)
	}
}

func TestAddMatrix_AppliesDominanceAcrossBoth(t *testing.T) {
	for _, s := range strategies() {
		dst := accumulator.New(2, accumulator.WithStrategy(s))
		require.NoError(t, dst.AddRow(row.New([]int64{row.Dash, row.Dash}), []int64{0, 0}))

		src := accumulator.New(2, accumulator.WithStrategy(s))
		require.NoError(t, src.AddRow(row.New([]int64{1, 1}), []int64{0, 0}))

		require.NoError(t, dst.AddMatrix(src))
		require.Len(t, dst.Rows(), 1)
	}
}

func TestAddMatrix_WidthMismatch(t *testing.T) {
	dst := accumulator.New(2)
	src := accumulator.New(3)
	require.ErrorIs(t, dst.AddMatrix(src), accumulator.ErrWidthMismatch)
}
