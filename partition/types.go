package partition

// Dataset is the rectangular training table consumed by the core: a
// feature matrix of width Q, a label matrix of width R, and the inclusive
// value range of each feature column. Features and Labels share the same
// integer alphabet and Dash sentinel.
type Dataset struct {
	N, Q, R int
	Dash    int64

	Features [][]int64 // N rows, each of width Q
	Labels   [][]int64 // N rows, each of width R
	Min, Max []int64   // width Q
}

// validate checks that Dataset's slice lengths agree with its declared
// dimensions. It does not check value ranges — that is the loader's job
// per spec.md §7 (dataio owns malformed-input detection); partition only
// guards against being handed a structurally inconsistent Dataset.
func (ds *Dataset) validate() error {
	if ds.N == 0 {
		return ErrEmptyDataset
	}
	if len(ds.Features) != ds.N || len(ds.Labels) != ds.N {
		return ErrDimensionMismatch
	}
	if len(ds.Min) != ds.Q || len(ds.Max) != ds.Q {
		return ErrDimensionMismatch
	}
	for _, f := range ds.Features {
		if len(f) != ds.Q {
			return ErrDimensionMismatch
		}
	}
	for _, l := range ds.Labels {
		if len(l) != ds.R {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Index exposes, per equivalence class, the starting row and size within
// the (now reordered) Dataset it was produced from.
//
// Invariants: sum(Count) == Dataset.N; Count is non-increasing;
// Offset[c+1] == Offset[c] + Count[c].
type Index struct {
	Offset []int
	Count  []int
}

// Classes reports the number of equivalence classes.
func (idx *Index) Classes() int { return len(idx.Count) }

// ValuesCount returns max[k]-min[k]+1, the cardinality of feature column k.
func (ds *Dataset) ValuesCount(k int) int64 {
	return ds.Max[k] - ds.Min[k] + 1
}
