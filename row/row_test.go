package row_test

import (
	"testing"

	"github.com/katalvlaran/dmatrix/row"
	"github.com/stretchr/testify/require"
)

func TestDifference_AllDash(t *testing.T) {
	a := row.New([]int64{1, 2, 3})
	diff, err := row.Difference(a, a)
	require.NoError(t, err)
	for k := 0; k < diff.Width(); k++ {
		require.Equal(t, row.Dash, diff.ValueAt(k))
	}
}

func TestDifference_CanonicalValue(t *testing.T) {
	a := row.New([]int64{1, 2})
	b := row.New([]int64{2, 1})
	diff, err := row.Difference(a, b)
	require.NoError(t, err)
	require.Equal(t, int64(1), diff.ValueAt(0))
	require.Equal(t, int64(1), diff.ValueAt(1))
}

func TestIncludes_AllDashIncludesEverything(t *testing.T) {
	dash := row.Zero(3)
	concrete := row.New([]int64{5, -1, 0})
	ok, err := row.Includes(dash, concrete)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIncludes_ReflexiveAndTransitive(t *testing.T) {
	a := row.New([]int64{1, row.Dash})
	b := row.New([]int64{1, 2})
	c := row.New([]int64{1, 2})

	ok, err := row.Includes(a, a)
	require.NoError(t, err)
	require.True(t, ok, "includes must be reflexive")

	ab, err := row.Includes(a, b)
	require.NoError(t, err)
	require.True(t, ab)

	bc, err := row.Includes(b, c)
	require.NoError(t, err)
	require.True(t, bc)

	ac, err := row.Includes(a, c)
	require.NoError(t, err)
	require.True(t, ac, "includes must be transitive")
}

func TestIncludes_DistinctPatternsIncludeSameRow(t *testing.T) {
	a := row.New([]int64{1, row.Dash})
	b := row.New([]int64{row.Dash, 1})
	// a and b place Dash differently, yet both include the concrete row
	// that matches each of them at its non-dash position.
	c := row.New([]int64{1, 1})
	aIncludesC, err := row.Includes(a, c)
	require.NoError(t, err)
	require.True(t, aIncludesC)

	bIncludesC, err := row.Includes(b, c)
	require.NoError(t, err)
	require.True(t, bIncludesC)
}

func TestIncludes_WidthMismatch(t *testing.T) {
	a := row.New([]int64{1})
	b := row.New([]int64{1, 2})
	_, err := row.Includes(a, b)
	require.ErrorIs(t, err, row.ErrWidthMismatch)
}

func TestClone_Independence(t *testing.T) {
	orig := row.New([]int64{1, 2, 3})
	clone := orig.Clone()
	clone.Values()[0] = 99
	require.Equal(t, int64(1), orig.ValueAt(0))
}

func TestHash_EqualRowsHashEqual(t *testing.T) {
	a := row.New([]int64{1, row.Dash, 3})
	b := row.New([]int64{1, row.Dash, 3})
	require.Equal(t, a.Hash(), b.Hash())
	require.True(t, row.Equal(a, b))
}

func TestDashCount(t *testing.T) {
	r := row.New([]int64{row.Dash, 1, row.Dash})
	require.Equal(t, 2, r.DashCount())
}
