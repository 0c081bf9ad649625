// Package partition groups training rows into equivalence classes by
// label vector, reorders the backing dataset so each class occupies a
// contiguous range, and hands back an Index of per-class offsets and
// counts.
//
// Classes are ordered by descending size (ties broken by first
// appearance) so that downstream planners can pair the largest, most
// expensive classes first.
package partition
