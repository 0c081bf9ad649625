package partition

import "errors"

var (
	// ErrEmptyDataset indicates a Dataset with zero rows was submitted for
	// partitioning; there is no meaningful class structure to compute.
	ErrEmptyDataset = errors.New("partition: dataset has no rows")

	// ErrDimensionMismatch indicates that Features, Labels, Min, or Max do
	// not agree with the declared N, Q, R of the Dataset.
	ErrDimensionMismatch = errors.New("partition: dimension mismatch")

	// ErrOffsetInconsistent indicates a post-condition failure in the
	// computed Index: offsets and counts do not tile [0, N) exactly. This
	// signals a bug in Partition itself, not malformed input.
	ErrOffsetInconsistent = errors.New("partition: offset/count arrays inconsistent")
)
