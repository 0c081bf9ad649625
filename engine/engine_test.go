package engine_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dmatrix/engine"
	"github.com/katalvlaran/dmatrix/partition"
	"github.com/katalvlaran/dmatrix/row"
	"github.com/stretchr/testify/require"
)

func threeClassDataset() *partition.Dataset {
	dash := int64(-1 << 62)
	return &partition.Dataset{
		N: 4, Q: 2, R: 1, Dash: dash,
		Features: [][]int64{
			{1, 2},
			{1, 2},
			{2, 1},
			{3, 3},
		},
		Labels: [][]int64{
			{0}, {0}, {1}, {2},
		},
		Min: []int64{1, 1},
		Max: []int64{3, 3},
	}
}

func TestRun_SingleClassIsErrNoWork(t *testing.T) {
	ds := &partition.Dataset{
		N: 2, Q: 1, R: 1, Dash: -1 << 62,
		Features: [][]int64{{1}, {2}},
		Labels:   [][]int64{{0}, {0}},
		Min:      []int64{1}, Max: []int64{2},
	}
	acc, err := engine.Run(context.Background(), ds, engine.Options{})
	require.ErrorIs(t, err, engine.ErrNoWork)
	require.NotNil(t, acc)
	require.Empty(t, acc.Rows())
}

func TestRun_BisectAndWorkQueueAgree(t *testing.T) {
	ds := threeClassDataset()

	bisect, err := engine.Run(context.Background(), ds, engine.Options{Strategy: engine.StrategyBisect, Workers: 3})
	require.NoError(t, err)

	queue, err := engine.Run(context.Background(), ds, engine.Options{Strategy: engine.StrategyWorkQueue, Workers: 3})
	require.NoError(t, err)

	require.ElementsMatch(t, rowValues(bisect.Rows()), rowValues(queue.Rows()))
	require.Equal(t, bisect.ColumnWeights(), queue.ColumnWeights())
}

func TestRun_PrivateAccumulatorsMatchShared(t *testing.T) {
	ds := threeClassDataset()

	shared, err := engine.Run(context.Background(), ds, engine.Options{Strategy: engine.StrategyWorkQueue, Workers: 4})
	require.NoError(t, err)

	private, err := engine.Run(context.Background(), ds, engine.Options{
		Strategy:            engine.StrategyWorkQueue,
		Workers:             4,
		PrivateAccumulators: true,
	})
	require.NoError(t, err)

	require.ElementsMatch(t, rowValues(shared.Rows()), rowValues(private.Rows()))
	require.Equal(t, shared.ColumnWeights(), private.ColumnWeights())
}

func TestRun_ContextCancellationStopsWork(t *testing.T) {
	ds := threeClassDataset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Run(ctx, ds, engine.Options{Strategy: engine.StrategyWorkQueue})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidStrategy(t *testing.T) {
	ds := threeClassDataset()
	_, err := engine.Run(context.Background(), ds, engine.Options{Strategy: engine.Strategy(99)})
	require.ErrorIs(t, err, engine.ErrInvalidStrategy)
}

func rowValues(rows []row.Row) [][]int64 {
	out := make([][]int64, len(rows))
	for i, r := range rows {
		out[i] = r.Values()
	}
	return out
}
