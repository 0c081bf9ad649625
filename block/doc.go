// Package block implements the pairwise block processor from spec.md
// §4.D: given two row ranges within a partitioned dataset, it produces
// one difference row and one per-column weight delta for every pair of
// rows drawn from the two ranges, forwarding both into an
// accumulator.Accumulator.
package block
