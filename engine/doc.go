// Package engine ties packages partition, planner, block and accumulator
// together into the single entry point external callers use: Run
// partitions a dataset into equivalence classes, builds the requested
// work-distribution plan, drives it to completion with a pool of
// goroutines, and returns the resulting Accumulator.
//
// Run accepts a context.Context as an additional, idiomatic-Go
// cancellation path layered on top of the shared abort flag the
// underlying algorithm already uses when a worker fails: either source
// stops every worker at its next suspension point, and Run then returns
// the error with no Accumulator, so partial output is never handed back.
package engine
