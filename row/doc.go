// Package row defines the fixed-width integer vector at the heart of
// dmatrix: Row, the DASH sentinel, and the two relations everything else
// is built on — Difference and Includes.
//
// A Row never changes width after construction. DASH marks "don't care" at
// a position; Includes(a, b) holds when a generalizes b, i.e. every
// non-DASH position of a matches the corresponding position of b exactly.
package row
