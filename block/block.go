package block

import (
	"github.com/katalvlaran/dmatrix/accumulator"
	"github.com/katalvlaran/dmatrix/partition"
	"github.com/katalvlaran/dmatrix/row"
	"github.com/katalvlaran/dmatrix/trace"
)

// ProcessBlock produces one difference row and one weight delta for every
// pair of rows (r1, r2) with r1 drawn from [offset1, offset1+len1) and r2
// from [offset2, offset2+len2), forwarding each pair into dst via AddRow.
// This is the unit of work handed out by both planners (spec.md §4.D).
//
// Complexity: O(len1 · len2 · Q) time, dominated by WeightDelta's inner
// instantiation loop.
func ProcessBlock(dst accumulator.Accumulator, ds *partition.Dataset, offset1, len1, offset2, len2 int, obs trace.Observer) error {
	if obs == nil {
		obs = trace.Noop()
	}
	defer obs.Phase("qHandling")()

	for i := 0; i < len1; i++ {
		for j := 0; j < len2; j++ {
			r1 := offset1 + i
			r2 := offset2 + j

			diff, err := row.Difference(row.New(ds.Features[r1]), row.New(ds.Features[r2]))
			if err != nil {
				return err
			}
			w, err := WeightDelta(ds, r1, r2)
			if err != nil {
				return err
			}
			if err := dst.AddRow(diff, w); err != nil {
				return err
			}
		}
	}
	return nil
}
