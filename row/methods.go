package row

import "hash/fnv"

// New builds a Row from values, taking ownership of the slice. Callers
// that still need the original slice afterward should pass a copy.
// Complexity: O(1) time, O(1) space.
func New(values []int64) Row {
	return Row{values: values}
}

// Zero builds a Row of the given width with every position set to Dash.
// Complexity: O(width) time, O(width) space.
func Zero(width int) Row {
	v := make([]int64, width)
	for i := range v {
		v[i] = Dash
	}
	return Row{values: v}
}

// Width reports the number of positions in r.
func (r Row) Width() int { return len(r.values) }

// ValueAt returns the value stored at position k, which may be Dash.
func (r Row) ValueAt(k int) int64 { return r.values[k] }

// Clone returns a Row backed by an independent copy of r's values.
// Complexity: O(width) time, O(width) space.
func (r Row) Clone() Row {
	v := make([]int64, len(r.values))
	copy(v, r.values)
	return Row{values: v}
}

// Difference returns, position-wise, Dash where a and b agree and
// |a[k]-b[k]| where they disagree. a and b must share width.
// Complexity: O(width) time, O(width) space.
func Difference(a, b Row) (Row, error) {
	if len(a.values) != len(b.values) {
		return Row{}, ErrWidthMismatch
	}
	out := make([]int64, len(a.values))
	for k, av := range a.values {
		bv := b.values[k]
		if av == bv {
			out[k] = Dash
		} else {
			d := av - bv
			if d < 0 {
				d = -d
			}
			out[k] = d
		}
	}
	return Row{values: out}, nil
}

// Includes reports whether a generalizes b: for every position k, a is
// Dash there or a and b agree there. Includes is reflexive and
// transitive. Two rows include each other only when they are equal: at a
// position where exactly one of them is Dash, the other one fails.
// Complexity: O(width) time, O(1) space.
func Includes(a, b Row) (bool, error) {
	if len(a.values) != len(b.values) {
		return false, ErrWidthMismatch
	}
	for k, av := range a.values {
		if av == Dash {
			continue
		}
		if av != b.values[k] {
			return false, nil
		}
	}
	return true, nil
}

// Equal reports whether a and b hold identical values at every position.
func Equal(a, b Row) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for k, av := range a.values {
		if av != b.values[k] {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a digest of r's values, suitable for use as a map
// key surrogate when grouping rows by label vector (see package
// partition). Two equal rows always hash equal; unequal rows may collide,
// so callers must still confirm equality on collision.
// Complexity: O(width) time, O(1) space.
func (r Row) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range r.values {
		u := uint64(v)
		for i := 0; i < 8; i++ {
			buf[i] = byte(u >> (8 * i))
		}
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

// DashCount returns the number of positions in r equal to Dash.
func (r Row) DashCount() int {
	n := 0
	for _, v := range r.values {
		if v == Dash {
			n++
		}
	}
	return n
}

// Values returns the backing slice directly. Callers must treat the
// result as read-only; mutating it mutates r.
func (r Row) Values() []int64 { return r.values }
