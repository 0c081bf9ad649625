package block

import "fmt"

// ErrWeightOverflow is returned when a weight-delta computation would
// overflow int64. It carries the offending column and the operands that
// triggered it, per spec.md §7's overflow-reporting requirement.
type ErrWeightOverflow struct {
	Column int
	Left   int64
	Right  int64
}

func (e *ErrWeightOverflow) Error() string {
	return fmt.Sprintf("block: weight overflow at column %d: combining %d and %d exceeds int64", e.Column, e.Left, e.Right)
}
