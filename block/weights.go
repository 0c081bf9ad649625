package block

import "github.com/katalvlaran/dmatrix/partition"

// mulChecked multiplies a and b, reporting overflow the classic way: if a
// is nonzero and the product divided by a doesn't recover b, it overflowed.
func mulChecked(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/a != b {
		return 0, false
	}
	return p, true
}

func addChecked(a, b int64) (int64, bool) {
	s := a + b
	// Same-sign operands whose sum flips sign overflowed.
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s > 0) {
		return 0, false
	}
	return s, true
}

// rangeAt returns the inclusive [lo, hi] instantiation range of column k
// for the row at rowIdx: [min[k], max[k]] if Dash there, else the single
// concrete value.
func rangeAt(ds *partition.Dataset, rowIdx, k int) (int64, int64) {
	v := ds.Features[rowIdx][k]
	if v == ds.Dash {
		return ds.Min[k], ds.Max[k]
	}
	return v, v
}

// WeightDelta computes the per-column weight contribution of one pair of
// feature rows, per spec.md §4.D: the total L1 distance over column k,
// summed across every concrete instantiation of the two (possibly
// partially specified) rows, weighted by each instantiation's cardinality
// of siblings in every other Dash column.
//
// Complexity: O(Q) for the multiplier pass, plus O(Q · R1 · R2) where R1,
// R2 are the widest per-column instantiation ranges — dominated in
// practice by columns with few distinct values.
func WeightDelta(ds *partition.Dataset, row1Idx, row2Idx int) ([]int64, error) {
	q := ds.Q

	m1, m2 := int64(1), int64(1)
	for k := 0; k < q; k++ {
		if ds.Features[row1Idx][k] == ds.Dash {
			p, ok := mulChecked(m1, ds.ValuesCount(k))
			if !ok {
				return nil, &ErrWeightOverflow{Column: k, Left: m1, Right: ds.ValuesCount(k)}
			}
			m1 = p
		}
		if ds.Features[row2Idx][k] == ds.Dash {
			p, ok := mulChecked(m2, ds.ValuesCount(k))
			if !ok {
				return nil, &ErrWeightOverflow{Column: k, Left: m2, Right: ds.ValuesCount(k)}
			}
			m2 = p
		}
	}

	w := make([]int64, q)
	for k := 0; k < q; k++ {
		scale, ok := mulChecked(m1, m2)
		if !ok {
			return nil, &ErrWeightOverflow{Column: k, Left: m1, Right: m2}
		}
		if ds.Features[row1Idx][k] == ds.Dash {
			scale /= ds.ValuesCount(k)
		}
		if ds.Features[row2Idx][k] == ds.Dash {
			scale /= ds.ValuesCount(k)
		}

		lo1, hi1 := rangeAt(ds, row1Idx, k)
		lo2, hi2 := rangeAt(ds, row2Idx, k)

		var sum int64
		for i := lo1; i <= hi1; i++ {
			for j := lo2; j <= hi2; j++ {
				d := i - j
				if d < 0 {
					d = -d
				}
				s, ok := addChecked(sum, d)
				if !ok {
					return nil, &ErrWeightOverflow{Column: k, Left: sum, Right: d}
				}
				sum = s
			}
		}

		w[k], ok = mulChecked(scale, sum)
		if !ok {
			return nil, &ErrWeightOverflow{Column: k, Left: scale, Right: sum}
		}
	}
	return w, nil
}
