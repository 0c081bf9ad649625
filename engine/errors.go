package engine

import "errors"

// ErrNoWork is returned by Run when the dataset partitions into at most
// one equivalence class, so there are no cross-class pairs to process.
// The returned Accumulator is still valid; it is simply empty.
var ErrNoWork = errors.New("engine: fewer than two equivalence classes")

// ErrInvalidStrategy is returned when Options.Strategy is not one of the
// declared Strategy constants.
var ErrInvalidStrategy = errors.New("engine: invalid strategy")
