package engine

import (
	"runtime"

	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/trace"
)

// Strategy selects which planner package drives task distribution.
type Strategy int

const (
	// StrategyBisect uses planner.BisectPlan: a barrier-synchronized,
	// balanced recursive split of the class-id space.
	StrategyBisect Strategy = iota

	// StrategyWorkQueue uses planner.WorkQueuePlan: a self-service FIFO
	// of every class pair, sorted by descending expected cost.
	StrategyWorkQueue
)

// Options configures a single Run call.
type Options struct {
	// Strategy selects the planner. The zero value is StrategyBisect.
	Strategy Strategy

	// AccumulatorStrategy selects the Accumulator implementation. The
	// zero value is accumulator.StrategyCoarse.
	AccumulatorStrategy accumulator.Strategy

	// PrivateAccumulators, when true, gives every worker its own
	// Accumulator and folds them together with AddMatrix once all work
	// completes, instead of every worker writing into one shared
	// Accumulator throughout. Per Design Notes §9, both modes are
	// required to produce the same set of rows and the same column
	// weights.
	PrivateAccumulators bool

	// Workers caps the number of worker goroutines (WorkQueue) or
	// thread slots (Bisect). Zero or negative selects
	// runtime.GOMAXPROCS(0).
	Workers int

	// Observer receives Phase/Event notifications. Nil selects
	// trace.Noop().
	Observer trace.Observer
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o Options) observer() trace.Observer {
	if o.Observer == nil {
		return trace.Noop()
	}
	return o.Observer
}
