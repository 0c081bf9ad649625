package engine

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/block"
	"github.com/katalvlaran/dmatrix/partition"
	"github.com/katalvlaran/dmatrix/planner"
	"github.com/katalvlaran/dmatrix/trace"
)

// Run partitions ds into equivalence classes, computes the irredundant
// difference matrix and column-weight vector over every cross-class pair
// of rows, and returns the resulting Accumulator.
//
// Complexity: O(N·Q) for partitioning plus O(sum over pairs of
// count[i]·count[j]·Q) for block processing, spread across
// opts.workers() goroutines.
func Run(ctx context.Context, ds *partition.Dataset, opts Options) (accumulator.Accumulator, error) {
	obs := opts.observer()
	defer obs.Phase("run")()

	reordered, idx, err := partition.Partition(ds)
	if err != nil {
		return nil, err
	}

	dst := accumulator.New(reordered.Q, accumulator.WithStrategy(opts.AccumulatorStrategy))
	if idx.Classes() <= 1 {
		return dst, ErrNoWork
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	workers := opts.workers()

	var errOnce sync.Once
	var firstErr error
	abort := &atomic.Bool{}
	fail := func(e error) {
		if e == nil {
			return
		}
		abort.Store(true)
		errOnce.Do(func() { firstErr = e })
	}

	watchCtx, cancelWatch := context.WithCancel(ctx)
	defer cancelWatch()
	go func() {
		<-watchCtx.Done()
		if ctx.Err() != nil {
			fail(ctx.Err())
		}
	}()

	switch opts.Strategy {
	case StrategyBisect:
		runBisect(reordered, idx, dst, opts, workers, abort, fail, obs)
	case StrategyWorkQueue:
		runWorkQueue(reordered, idx, dst, opts, workers, abort, fail, obs)
	default:
		return nil, ErrInvalidStrategy
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return dst, nil
}

// processPair runs one class pair's block through dst, translating
// class indices into row offsets/lengths via idx.
func processPair(dst accumulator.Accumulator, ds *partition.Dataset, idx *partition.Index, i, j int, obs trace.Observer) error {
	return block.ProcessBlock(dst, ds, idx.Offset[i], idx.Count[i], idx.Offset[j], idx.Count[j], obs)
}

// runBisect drives planner.BisectPlan with opts.workers() persistent
// thread slots synchronized by a barrier of the same size at every step,
// per spec.md §4.E: a slot with no task at a given step still calls
// barrier.wait so deeper subtrees never race ahead of shallower ones
// still splitting.
func runBisect(ds *partition.Dataset, idx *partition.Index, shared accumulator.Accumulator, opts Options, workers int, abort *atomic.Bool, fail func(error), obs trace.Observer) {
	plan := planner.NewBisectPlan(idx.Count, workers)
	if plan.StepCount() == 0 {
		return
	}

	var privates []accumulator.Accumulator
	if opts.PrivateAccumulators {
		privates = make([]accumulator.Accumulator, workers)
		for w := range privates {
			privates[w] = accumulator.New(ds.Q, accumulator.WithStrategy(opts.AccumulatorStrategy))
		}
	}

	b := newBarrier(workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for t := 0; t < workers; t++ {
		go func(thread int) {
			defer wg.Done()
			dst := shared
			if privates != nil {
				dst = privates[thread]
			}
			for step := 0; step < plan.StepCount(); step++ {
				if abort.Load() {
					b.breakAll()
					return
				}
				task := plan.Task(step, thread)
				if !task.IsEmpty() {
					task.Pairs(func(i, j int) {
						if err := processPair(dst, ds, idx, i, j, obs); err != nil {
							fail(err)
						}
					})
				}
				b.wait()
			}
		}(t)
	}
	wg.Wait()

	if privates != nil && !abort.Load() {
		for _, p := range privates {
			if err := shared.AddMatrix(p); err != nil {
				fail(err)
				break
			}
		}
	}
}

// runWorkQueue drives planner.WorkQueuePlan with opts.workers() goroutines
// self-serving tasks off a shared FIFO until it is empty or abort fires.
func runWorkQueue(ds *partition.Dataset, idx *partition.Index, shared accumulator.Accumulator, opts Options, workers int, abort *atomic.Bool, fail func(error), obs trace.Observer) {
	queue := planner.NewWorkQueuePlan(idx.Count)

	var privates []accumulator.Accumulator
	if opts.PrivateAccumulators {
		privates = make([]accumulator.Accumulator, workers)
		for w := range privates {
			privates[w] = accumulator.New(ds.Q, accumulator.WithStrategy(opts.AccumulatorStrategy))
		}
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(worker int) {
			defer wg.Done()
			dst := shared
			if privates != nil {
				dst = privates[worker]
			}
			for {
				if abort.Load() {
					return
				}
				task, ok := queue.Pop()
				if !ok {
					return
				}
				task.Pairs(func(i, j int) {
					if err := processPair(dst, ds, idx, i, j, obs); err != nil {
						fail(err)
					}
				})
			}
		}(w)
	}
	wg.Wait()

	if privates != nil && !abort.Load() {
		for _, p := range privates {
			if err := shared.AddMatrix(p); err != nil {
				fail(err)
				break
			}
		}
	}
}
