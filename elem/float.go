package elem

import (
	"cmp"
	"encoding/binary"
	"strconv"

	"github.com/amp-labs/amp-tuple/hashing"
)

// Float is the semantics of single-precision floats.
//
// Equality compares canonical bit patterns rather than using ==, so NaN
// equals NaN and -0 differs from +0. The order is total: -0 sorts before
// +0 and NaN sorts after +Inf.
type Float struct{}

func (Float) Equal(a, b float32) bool {
	return hashing.Float32Bits(a) == hashing.Float32Bits(b)
}

func (Float) Hash(v float32) int32 { return hashing.Float32(v) }
func (Float) Name() string         { return "float" }

func (Float) Format(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (Float) Compare(a, b float32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return cmp.Compare(int32(hashing.Float32Bits(a)), int32(hashing.Float32Bits(b))) //nolint:gosec
}

func (Float) AppendKey(dst []byte, v float32) []byte {
	return binary.BigEndian.AppendUint32(dst, hashing.Float32Bits(v))
}

// Double is the semantics of double-precision floats, with the same
// bit-pattern equality and total order as Float.
type Double struct{}

func (Double) Equal(a, b float64) bool {
	return hashing.Float64Bits(a) == hashing.Float64Bits(b)
}

func (Double) Hash(v float64) int32 { return hashing.Float64(v) }
func (Double) Name() string         { return "double" }

func (Double) Format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (Double) Compare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return cmp.Compare(int64(hashing.Float64Bits(a)), int64(hashing.Float64Bits(b))) //nolint:gosec
}

func (Double) AppendKey(dst []byte, v float64) []byte {
	return binary.BigEndian.AppendUint64(dst, hashing.Float64Bits(v))
}
