package validate

import (
	"testing"

	"github.com/amp-labs/amp-tuple/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type source interface {
	Len() int
}

type fixed struct{}

func (*fixed) Len() int { return 2 }

func TestIsNilish(t *testing.T) {
	t.Parallel()

	var (
		ptr   *int
		slice []int
		m     map[string]int
		src   source = (*fixed)(nil)
	)

	assert.True(t, IsNilish(nil))
	assert.True(t, IsNilish(ptr))
	assert.True(t, IsNilish(slice))
	assert.True(t, IsNilish(m))
	assert.True(t, IsNilish(src))

	assert.False(t, IsNilish(0))
	assert.False(t, IsNilish(""))
	assert.False(t, IsNilish([]int{}))
	assert.False(t, IsNilish(&fixed{}))
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	var src source = (*fixed)(nil)

	err := NotNil("source", src)
	require.ErrorIs(t, err, errors.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "source must not be nil")

	require.NoError(t, NotNil("source", &fixed{}))
}

func TestMinLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		got     int
		want    int
		wantErr bool
	}{
		{name: "shorter", got: 1, want: 2, wantErr: true},
		{name: "empty", got: 0, want: 2, wantErr: true},
		{name: "exact", got: 2, want: 2},
		{name: "longer", got: 5, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := MinLen("values", tt.got, tt.want)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrInvalidArgument)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestExactLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, ExactLen("values", 3, 3))
	require.ErrorIs(t, ExactLen("values", 4, 3), errors.ErrInvalidArgument)
	require.ErrorIs(t, ExactLen("values", 2, 3), errors.ErrInvalidArgument)
}

func TestIndex(t *testing.T) {
	t.Parallel()

	for i := range 4 {
		require.NoError(t, Index(i, 4))
	}

	for _, i := range []int{-1, 4, 100} {
		err := Index(i, 4)
		require.ErrorIs(t, err, errors.ErrIndexOutOfRange)
	}

	assert.EqualError(t, Index(2, 2), "index out of range: index 2 not in [0, 2)")
}
