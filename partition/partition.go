package partition

import (
	"sort"

	"github.com/katalvlaran/dmatrix/row"
)

// classBucket resolves hash collisions among label rows mapped to the
// same row.Hash() value.
type classBucket struct {
	label row.Row
	id    int
}

// Partition implements the six-step algorithm from spec.md §4.B: assign
// class ids by label vector, tally sizes, sort classes by descending
// size, compute destination indices, move rows into place, and renumber
// classes 0..C in the new order.
//
// Partition allocates fresh backing arrays and returns a new *Dataset; it
// does not mutate ds in place, since the original row order may still be
// of interest to a caller (e.g. for error reporting keyed by input row
// number).
//
// Complexity: O(N·R) time for hashing/equality plus O(C log C) for the
// sort, O(N·(Q+R)) space for the reordered copy.
func Partition(ds *Dataset) (*Dataset, *Index, error) {
	if err := ds.validate(); err != nil {
		return nil, nil, err
	}

	classOf := make([]int, ds.N)
	buckets := make(map[uint64][]classBucket)
	nextID := 0

	for i := 0; i < ds.N; i++ {
		label := row.New(ds.Labels[i])
		h := label.Hash()
		found := -1
		for _, b := range buckets[h] {
			if row.Equal(b.label, label) {
				found = b.id
				break
			}
		}
		if found < 0 {
			found = nextID
			buckets[h] = append(buckets[h], classBucket{label: label, id: found})
			nextID++
		}
		classOf[i] = found
	}
	classCount := nextID

	sizes := make([]int, classCount)
	for _, c := range classOf {
		sizes[c]++
	}

	order := make([]int, classCount)
	for c := range order {
		order[c] = c
	}
	sort.SliceStable(order, func(i, j int) bool {
		return sizes[order[i]] > sizes[order[j]]
	})

	// newRank[oldClassID] = rank in descending-size order == new class id.
	newRank := make([]int, classCount)
	for rank, oldID := range order {
		newRank[oldID] = rank
	}

	offset := make([]int, classCount)
	cursor := 0
	for rank, oldID := range order {
		offset[rank] = cursor
		cursor += sizes[oldID]
	}
	count := make([]int, classCount)
	for rank, oldID := range order {
		count[rank] = sizes[oldID]
	}

	// destIndex[i] = final row position for original row i.
	fill := make([]int, classCount)
	copy(fill, offset)
	dest := make([]int, ds.N)
	for i := 0; i < ds.N; i++ {
		newClass := newRank[classOf[i]]
		dest[i] = fill[newClass]
		fill[newClass]++
	}

	out := &Dataset{
		N: ds.N, Q: ds.Q, R: ds.R, Dash: ds.Dash,
		Features: make([][]int64, ds.N),
		Labels:   make([][]int64, ds.N),
		Min:      append([]int64(nil), ds.Min...),
		Max:      append([]int64(nil), ds.Max...),
	}
	for i := 0; i < ds.N; i++ {
		out.Features[dest[i]] = append([]int64(nil), ds.Features[i]...)
		out.Labels[dest[i]] = append([]int64(nil), ds.Labels[i]...)
	}

	idx := &Index{Offset: offset, Count: count}
	if err := checkIndex(idx, ds.N); err != nil {
		return nil, nil, err
	}
	return out, idx, nil
}

// checkIndex verifies the post-conditions spec.md §3 demands of Index:
// sum(count) == N, count non-increasing, offset[c+1] == offset[c]+count[c].
func checkIndex(idx *Index, n int) error {
	sum := 0
	for c, cnt := range idx.Count {
		sum += cnt
		if c > 0 && idx.Count[c-1] < cnt {
			return ErrOffsetInconsistent
		}
		if c > 0 && idx.Offset[c] != idx.Offset[c-1]+idx.Count[c-1] {
			return ErrOffsetInconsistent
		}
	}
	if sum != n {
		return ErrOffsetInconsistent
	}
	return nil
}
