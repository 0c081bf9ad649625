package row

import (
	"errors"
	"math"
)

// Dash is the sentinel value representing "any value" at a Row position.
// It is chosen far outside any plausible feature-column range.
const Dash int64 = math.MinInt64

// ErrWidthMismatch is returned when two rows of differing width are
// compared or combined.
var ErrWidthMismatch = errors.New("row: width mismatch")

// Row is a fixed-length ordered sequence of integers, one of which may be
// Dash at any position. Row is a thin wrapper over a slice: callers that
// need an independent copy must call Clone explicitly, since the zero
// value and simple assignment both alias the backing array.
type Row struct {
	values []int64
}
