package accumulator

import (
	"errors"

	"github.com/katalvlaran/dmatrix/row"
)

var (
	// ErrWidthMismatch is returned when a row or weight-delta vector does
	// not match the accumulator's configured width.
	ErrWidthMismatch = errors.New("accumulator: width mismatch")

	// ErrDominanceInvariant indicates that a stored row was found to
	// dominate, or be dominated by, another stored row after an insertion
	// that should have prevented it. It signals a bug in the insertion
	// protocol, not malformed input, and callers should treat it as fatal
	// per spec.md §7.
	ErrDominanceInvariant = errors.New("accumulator: dominance invariant violated")
)

// checkNoDominance is the postcondition both accumulator strategies run
// immediately after inserting candidate: candidate must not include, or
// be included by, any other row currently in rows. Both strategies'
// filter loops are supposed to guarantee this already; this check exists
// to catch the case where they don't.
func checkNoDominance(rows []row.Row, candidate row.Row) error {
	for _, r := range rows {
		if row.Equal(r, candidate) {
			continue
		}
		if inc, _ := row.Includes(r, candidate); inc {
			return ErrDominanceInvariant
		}
		if inc, _ := row.Includes(candidate, r); inc {
			return ErrDominanceInvariant
		}
	}
	return nil
}
