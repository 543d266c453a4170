package set

import (
	"errors"
	"slices"
	"testing"

	tupleerrors "github.com/amp-labs/amp-tuple/errors"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/tuple"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoHash = errors.New("no hash for you")

// sameBucket puts every element in one bucket.
func sameBucket(hashing.Hashable) (string, error) {
	return "bucket", nil
}

func failingHash(hashing.Hashable) (string, error) {
	return "", errNoHash
}

func TestSet(t *testing.T) {
	t.Parallel()

	hashFuncs := map[string]hashing.HashFunc{
		"default":     nil,
		"sha256":      hashing.Sha256,
		"xxhash64":    hashing.Xxhash64,
		"same bucket": sameBucket,
	}

	for name, hash := range hashFuncs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := New[*tuple.Int2](hash)

			require.NoError(t, s.AddAll(
				tuple.NewInt2(1, 2),
				tuple.NewInt2(2, 1),
				tuple.NewInt2(1, 2),
			))
			assert.Equal(t, 2, s.Size())

			contains, err := s.Contains(tuple.NewInt2(2, 1))
			require.NoError(t, err)
			assert.True(t, contains)

			contains, err = s.Contains(tuple.NewInt2(2, 2))
			require.NoError(t, err)
			assert.False(t, contains)

			require.NoError(t, s.Remove(tuple.NewInt2(1, 2)))
			require.NoError(t, s.Remove(tuple.NewInt2(9, 9)))
			assert.Equal(t, 1, s.Size())
			assert.Equal(t, []string{"int2(x=2, y=1)"}, SortedStrings(s))

			s.Clear()
			assert.Equal(t, 0, s.Size())
			assert.Empty(t, s.Entries())
		})
	}
}

func TestSet_DecimalScale(t *testing.T) {
	t.Parallel()

	dec := decimal.RequireFromString

	s, err := Of(
		tuple.NewBigDecimal2(dec("2.0"), dec("3")),
		tuple.NewBigDecimal2(dec("2.00"), dec("3.000")),
		tuple.NewBigDecimal2(dec("2.01"), dec("3")),
	)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Size())
}

func TestSet_MutableEntries(t *testing.T) {
	t.Parallel()

	s := New[*tuple.MutableString2](hashing.Sha256)

	require.NoError(t, s.Add(tuple.NewMutableString2("a", "b")))

	contains, err := s.Contains(tuple.NewMutableString2("a", "b"))
	require.NoError(t, err)
	assert.True(t, contains)
}

func TestSet_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil element", func(t *testing.T) {
		t.Parallel()

		s := New[*tuple.Int2](nil)

		require.ErrorIs(t, s.Add(nil), tupleerrors.ErrInvalidArgument)

		_, err := s.Contains(nil)
		require.ErrorIs(t, err, tupleerrors.ErrInvalidArgument)
		assert.Equal(t, 0, s.Size())
	})

	t.Run("hash failure", func(t *testing.T) {
		t.Parallel()

		s := New[hashing.HashableString](failingHash)

		require.ErrorIs(t, s.Add("foo"), errNoHash)
		require.ErrorIs(t, s.Remove("foo"), errNoHash)
		assert.Equal(t, 0, s.Size())
	})
}

func TestSet_Algebra(t *testing.T) {
	t.Parallel()

	a, err := Of[hashing.HashableString]("foo", "bar", "baz")
	require.NoError(t, err)

	b, err := Of[hashing.HashableString]("bar", "qux")
	require.NoError(t, err)

	union, err := a.Union(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar", "baz", "foo", "qux"}, SortedStrings(union))

	inter, err := a.Intersection(b)
	require.NoError(t, err)
	assert.Equal(t, []string{"bar"}, SortedStrings(inter))

	empty, err := a.Intersection(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())

	same, err := a.Union(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, same.Size())

	// The operands are untouched.
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 2, b.Size())
}

func TestSet_Seq(t *testing.T) {
	t.Parallel()

	s, err := Of(tuple.NewLong3(1, 2, 3), tuple.NewLong3(4, 5, 6))
	require.NoError(t, err)

	var sums []int64

	for element := range s.Seq() {
		x, y, z := element.Values()
		sums = append(sums, x+y+z)
	}

	slices.Sort(sums)
	assert.Equal(t, []int64{6, 15}, sums)

	count := 0

	for range s.Seq() {
		count++

		break
	}

	assert.Equal(t, 1, count)
}

func TestSortedStrings_Natural(t *testing.T) {
	t.Parallel()

	s, err := Of(
		tuple.NewInt2(10, 1),
		tuple.NewInt2(2, 1),
		tuple.NewInt2(1, 1),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"int2(x=1, y=1)",
		"int2(x=2, y=1)",
		"int2(x=10, y=1)",
	}, SortedStrings(s))
}
