package accumulator

import (
	"sync"

	"github.com/katalvlaran/dmatrix/row"
)

// coarseAccumulator is the "two independent critical sections" strategy
// from spec.md §4.C: weightsMu and rowsMu are never held nested, so weight
// updates never block on row-list traversal or vice versa.
type coarseAccumulator struct {
	width int

	weightsMu sync.Mutex
	weights   []int64

	rowsMu sync.Mutex
	rows   []row.Row
}

func newCoarseAccumulator(width int) *coarseAccumulator {
	return &coarseAccumulator{
		width:   width,
		weights: make([]int64, width),
	}
}

func (a *coarseAccumulator) Width() int { return a.width }

func (a *coarseAccumulator) AddRow(r row.Row, delta []int64) error {
	if r.Width() != a.width {
		return ErrWidthMismatch
	}
	if err := a.addWeights(delta); err != nil {
		return err
	}
	return a.insertRow(r)
}

func (a *coarseAccumulator) AddMatrix(other Accumulator) error {
	if other.Width() != a.width {
		return ErrWidthMismatch
	}
	if err := a.addWeights(other.ColumnWeights()); err != nil {
		return err
	}
	for _, r := range other.Rows() {
		if err := a.insertRow(r); err != nil {
			return err
		}
	}
	return nil
}

func (a *coarseAccumulator) addWeights(delta []int64) error {
	if len(delta) != a.width {
		return ErrWidthMismatch
	}
	a.weightsMu.Lock()
	defer a.weightsMu.Unlock()
	for i, d := range delta {
		a.weights[i] += d
	}
	return nil
}

// insertRow applies the dominance filter and then re-checks the invariant
// it just enforced: candidate must not dominate, or be dominated by, any
// row left standing. A violation here means the filter loop above has a
// bug, not that the input was malformed, so it is reported as
// ErrDominanceInvariant rather than silently trusted.
func (a *coarseAccumulator) insertRow(candidate row.Row) error {
	a.rowsMu.Lock()
	defer a.rowsMu.Unlock()

	i := 0
	for i < len(a.rows) {
		if included, _ := row.Includes(a.rows[i], candidate); included {
			return nil
		}
		if includes, _ := row.Includes(candidate, a.rows[i]); includes {
			last := len(a.rows) - 1
			a.rows[i] = a.rows[last]
			a.rows = a.rows[:last]
			continue
		}
		i++
	}
	a.rows = append(a.rows, candidate)
	return checkNoDominance(a.rows, candidate)
}

func (a *coarseAccumulator) Rows() []row.Row {
	a.rowsMu.Lock()
	defer a.rowsMu.Unlock()
	out := make([]row.Row, len(a.rows))
	copy(out, a.rows)
	return out
}

func (a *coarseAccumulator) ColumnWeights() []int64 {
	a.weightsMu.Lock()
	defer a.weightsMu.Unlock()
	out := make([]int64, len(a.weights))
	copy(out, a.weights)
	return out
}
