package dataio

import "errors"

// ErrDimensionMismatch is returned when a block's declared row/column
// count disagrees with the number of values actually present on a line,
// or with another block's declared row count.
var ErrDimensionMismatch = errors.New("dataio: dimension mismatch")

// ErrValueOutOfRange is returned when a feature value falls outside the
// [min, max] range declared for its column in the Ranges block.
var ErrValueOutOfRange = errors.New("dataio: value out of declared range")

// ErrDuplicateRange is returned when the Ranges block declares more than
// one min/max pair for the same feature column.
var ErrDuplicateRange = errors.New("dataio: duplicate range")

// ErrMissingRange is returned when the Ranges block omits a feature
// column that appears in the FeatureMatrix block.
var ErrMissingRange = errors.New("dataio: missing range")

// ErrMalformedHeader is returned when a block header line cannot be
// parsed as the expected "# Name" / "rows cols" pair.
var ErrMalformedHeader = errors.New("dataio: malformed block header")
