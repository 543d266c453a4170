package set

import (
	"math"
	"slices"
	"testing"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byInt2(a, b *tuple.Int2) int {
	return tuple.Compare2[int32, elem.Int](a, b)
}

func TestSorted(t *testing.T) {
	t.Parallel()

	s := NewSorted(byInt2)

	_, ok := s.Min()
	assert.False(t, ok)

	assert.True(t, s.Add(tuple.NewInt2(3, 1)))
	assert.True(t, s.Add(tuple.NewInt2(1, 9)))
	assert.True(t, s.Add(tuple.NewInt2(1, 2)))
	assert.False(t, s.Add(tuple.NewInt2(3, 1)))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(tuple.NewInt2(1, 9)))
	assert.False(t, s.Contains(tuple.NewInt2(9, 1)))

	lo, ok := s.Min()
	require.True(t, ok)
	assert.Equal(t, "int2(x=1, y=2)", lo.String())

	hi, ok := s.Max()
	require.True(t, ok)
	assert.Equal(t, "int2(x=3, y=1)", hi.String())

	var got []string

	s.Ascend(tuple.NewInt2(1, 5), func(v *tuple.Int2) bool {
		got = append(got, v.String())

		return true
	})

	assert.Equal(t, []string{"int2(x=1, y=9)", "int2(x=3, y=1)"}, got)

	assert.True(t, s.Remove(tuple.NewInt2(1, 9)))
	assert.False(t, s.Remove(tuple.NewInt2(1, 9)))
	assert.Len(t, s.Items(), 2)

	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestSorted_FloatOrder(t *testing.T) {
	t.Parallel()

	s := NewSorted(func(a, b *tuple.Double2) int {
		return tuple.Compare2[float64, elem.Double](a, b)
	})

	nan := math.NaN()
	negZero := math.Copysign(0, -1)

	s.Add(tuple.NewDouble2(nan, 0))
	s.Add(tuple.NewDouble2(0, 0))
	s.Add(tuple.NewDouble2(negZero, 0))
	s.Add(tuple.NewDouble2(math.Inf(1), 0))
	s.Add(tuple.NewDouble2(math.NaN(), 0))

	// NaN is one member, and -0 is distinct from +0.
	require.Equal(t, 4, s.Len())

	var xs []string
	for v := range s.All() {
		xs = append(xs, v.String())
	}

	assert.Equal(t, []string{
		"double2(x=-0, y=0)",
		"double2(x=0, y=0)",
		"double2(x=+Inf, y=0)",
		"double2(x=NaN, y=0)",
	}, xs)

	assert.True(t, slices.IsSortedFunc(s.Items(), func(a, b *tuple.Double2) int {
		return tuple.Compare2[float64, elem.Double](a, b)
	}))
}
