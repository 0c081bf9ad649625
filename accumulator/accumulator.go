package accumulator

// New constructs an Accumulator of the given width using the strategy
// selected by opts (StrategyCoarse by default).
// Complexity: O(width) time and space.
func New(width int, opts ...Option) Accumulator {
	cfg := config{strategy: StrategyCoarse}
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.strategy {
	case StrategyLockFree:
		return newLockFreeAccumulator(width)
	default:
		return newCoarseAccumulator(width)
	}
}
