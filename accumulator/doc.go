// Package accumulator implements the dominance-filtered collection of
// difference rows described in spec.md §4.C: a shared structure that many
// workers insert candidate rows into, maintaining the invariant that no
// stored row includes another, plus a companion vector of per-column
// weighted counts.
//
// Two concurrency strategies are available behind the same Accumulator
// interface, selected with WithStrategy: a coarse-locking variant (two
// independent sync.Mutex critical sections) and a fine-grained lock-free
// variant (a singly linked list with hand-over-hand spinlocks and
// generation-numbered nodes). Neither strategy is exposed in the public
// contract beyond the constructor option — callers program against
// Accumulator.
package accumulator
