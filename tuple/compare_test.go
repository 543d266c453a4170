package tuple

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEqual_CrossVariant(t *testing.T) {
	t.Parallel()

	assert.True(t, Equal2[int32, elem.Int](NewInt2(1, 2), NewMutableInt2(1, 2)))
	assert.False(t, Equal2[int32, elem.Int](NewInt2(1, 2), NewMutableInt2(1, 3)))
	assert.False(t, Equal2[int32, elem.Int](NewInt2(1, 2), NewInt3(1, 2, 3)), "different arity")
	assert.False(t, Equal2[int32, elem.Int](NewInt2(1, 2), nil))
	assert.True(t, Equal2[int32, elem.Int](nil, nil))

	assert.True(t, Equal3[string, elem.String](NewString3("a", "b", "c"), NewMutableString3("a", "b", "c")))
	assert.True(t, Equal4[float64, elem.Double](
		NewDouble4(math.NaN(), 1, 2, 3),
		NewMutableDouble4(math.NaN(), 1, 2, 3)))
}

func TestCompare2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        *Int2
		b        *Int2
		expected int
	}{
		{name: "equal", a: NewInt2(1, 2), b: NewInt2(1, 2), expected: 0},
		{name: "x decides", a: NewInt2(1, 9), b: NewInt2(2, 0), expected: -1},
		{name: "y breaks ties", a: NewInt2(1, 3), b: NewInt2(1, 2), expected: 1},
		{name: "nil first", a: nil, b: NewInt2(math.MinInt32, math.MinInt32), expected: -1},
		{name: "both nil", a: nil, b: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Compare2[int32, elem.Int](tt.a, tt.b))
			assert.Equal(t, -tt.expected, Compare2[int32, elem.Int](tt.b, tt.a))
		})
	}
}

func TestCompare_ConsistentWithEquals(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	values := []*Float3{
		NewFloat3(0, 0, 0),
		NewFloat3(negZero, 0, 0),
		NewFloat3(nan, 1, 2),
		NewFloat3(nan, 1, 2),
		NewFloat3(float32(math.Inf(1)), 1, 2),
		NewFloat3(-1, nan, 0),
	}

	for _, a := range values {
		for _, b := range values {
			c := Compare3[float32, elem.Float](a, b)

			assert.Equal(t, a.Equals(b), c == 0, "%s vs %s", a, b)
			assert.Equal(t, c, -Compare3[float32, elem.Float](b, a))
		}
	}

	assert.Equal(t, -1, Compare3[float32, elem.Float](values[1], values[0]), "-0 sorts before +0")
	assert.Equal(t, 1, Compare3[float32, elem.Float](values[2], values[4]), "NaN sorts after +Inf")
}

func TestCompare4_MixedVariants(t *testing.T) {
	t.Parallel()

	a := NewBigDecimal4(dec("1.0"), dec("2"), dec("3"), dec("4.00"))
	b := NewMutableBigDecimal4(dec("1"), dec("2.0"), dec("3"), dec("4"))

	assert.Equal(t, 0, Compare4[decimal.Decimal, elem.BigDecimal](a, b))

	b.SetW(dec("4.01"))

	assert.Equal(t, -1, Compare4[decimal.Decimal, elem.BigDecimal](a, b))
}

func TestCompare_UnreadableComponents(t *testing.T) {
	t.Parallel()

	broken := newSource[int32](1, 2, 3)
	broken.failAt = 1

	alsoBroken := newSource[int32](1, 9, 0)
	alsoBroken.failAt = 1

	readable := newSource[int32](1, -5, 3)

	assert.Equal(t, -1, compareIndexed[int32, elem.Int](broken, readable))
	assert.Equal(t, 1, compareIndexed[int32, elem.Int](readable, broken))

	// The unreadable positions tie, so the next component decides.
	assert.Equal(t, 1, compareIndexed[int32, elem.Int](broken, alsoBroken))
	assert.Equal(t, -1, compareIndexed[int32, elem.Int](alsoBroken, broken))

	assert.False(t, equalIndexed[int32, elem.Int](broken, readable))
}
