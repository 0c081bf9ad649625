package planner_test

import (
	"testing"

	"github.com/katalvlaran/dmatrix/planner"
	"github.com/stretchr/testify/require"
)

func collectPairs(t *testing.T, task planner.Task) map[[2]int]bool {
	t.Helper()
	seen := make(map[[2]int]bool)
	task.Pairs(func(i, j int) {
		if i > j {
			i, j = j, i
		}
		seen[[2]int{i, j}] = true
	})
	return seen
}

func allPairs(t *testing.T, p *planner.BisectPlan) map[[2]int]bool {
	t.Helper()
	seen := make(map[[2]int]bool)
	for step := 0; step < p.StepCount(); step++ {
		for thread := 0; thread < p.MaxThreads(); thread++ {
			for pair := range collectPairs(t, p.Task(step, thread)) {
				require.False(t, seen[pair], "pair %v covered more than once", pair)
				seen[pair] = true
			}
		}
	}
	return seen
}

func TestBisectPlan_SingleClass(t *testing.T) {
	p := planner.NewBisectPlan([]int{5}, 4)
	require.Equal(t, 0, p.StepCount())
}

func TestBisectPlan_CoversEveryPairExactlyOnce(t *testing.T) {
	counts := []int{10, 8, 6, 4, 2, 1}
	p := planner.NewBisectPlan(counts, 4)

	want := make(map[[2]int]bool)
	for i := 0; i < len(counts); i++ {
		for j := i + 1; j < len(counts); j++ {
			want[[2]int{i, j}] = true
		}
	}
	require.Equal(t, want, allPairs(t, p))
}

func TestBisectPlan_ThreadsForStepNeverExceedsMaxThreads(t *testing.T) {
	p := planner.NewBisectPlan([]int{9, 7, 5, 3, 1}, 3)
	for step := 0; step < p.StepCount(); step++ {
		require.LessOrEqual(t, p.ThreadsForStep(step), p.MaxThreads())
	}
}

func TestBisectPlan_SingleThreadDegeneratesToOneLeaf(t *testing.T) {
	counts := []int{4, 3, 2, 1}
	p := planner.NewBisectPlan(counts, 1)
	require.Equal(t, 1, p.StepCount())
	require.Equal(t, 1, p.ThreadsForStep(0))

	want := make(map[[2]int]bool)
	for i := 0; i < len(counts); i++ {
		for j := i + 1; j < len(counts); j++ {
			want[[2]int{i, j}] = true
		}
	}
	require.Equal(t, want, collectPairs(t, p.Task(0, 0)))
}

func TestBisectPlan_OutOfRangeStepOrThreadIsEmpty(t *testing.T) {
	p := planner.NewBisectPlan([]int{3, 2, 1}, 2)
	require.True(t, p.Task(-1, 0).IsEmpty())
	require.True(t, p.Task(p.StepCount(), 0).IsEmpty())
	require.True(t, p.Task(0, p.MaxThreads()+5).IsEmpty())
}
