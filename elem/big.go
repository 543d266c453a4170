package elem

import (
	"encoding/binary"
	"math/big"

	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/shopspring/decimal"
)

const nilFormat = "<nil>"

//nolint:gochecknoglobals
var ten = big.NewInt(10)

// BigInt is the semantics of arbitrary-precision integers. Values compare
// numerically; nil is equal only to nil and orders before every number.
type BigInt struct{}

func (BigInt) Equal(a, b *big.Int) bool {
	return BigInt{}.Compare(a, b) == 0
}

func (BigInt) Hash(v *big.Int) int32 { return hashing.BigInt(v) }
func (BigInt) Name() string          { return "bigint" }

func (BigInt) Format(v *big.Int) string {
	if v == nil {
		return nilFormat
	}

	return v.String()
}

func (BigInt) Compare(a, b *big.Int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	return a.Cmp(b)
}

// AppendKey writes a presence byte, the sign and the big-endian magnitude.
func (BigInt) AppendKey(dst []byte, v *big.Int) []byte {
	if v == nil {
		return append(dst, 0)
	}

	return appendBigInt(append(dst, 1), v)
}

func appendBigInt(dst []byte, v *big.Int) []byte {
	mag := v.Bytes()

	dst = append(dst, byte(v.Sign()+1))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(mag))) //nolint:gosec

	return append(dst, mag...)
}

// BigDecimal is the semantics of arbitrary-precision decimals. Equality is
// numeric, so 2.0 equals 2.00, and the hash is taken over the value with
// trailing zeros stripped so that it agrees with equality.
type BigDecimal struct{}

func (BigDecimal) Equal(a, b decimal.Decimal) bool  { return a.Equal(b) }
func (BigDecimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }
func (BigDecimal) Format(v decimal.Decimal) string  { return v.String() }
func (BigDecimal) Name() string                     { return "bigdecimal" }

// Hash is 31*hash(unscaled) + scale of the normalized value.
func (BigDecimal) Hash(v decimal.Decimal) int32 {
	unscaled, exp := normalize(v)

	return hashing.Prime*hashing.BigInt(unscaled) - exp
}

func (BigDecimal) AppendKey(dst []byte, v decimal.Decimal) []byte {
	unscaled, exp := normalize(v)

	dst = binary.BigEndian.AppendUint32(dst, uint32(exp)) //nolint:gosec

	return appendBigInt(dst, unscaled)
}

// normalize returns the coefficient and exponent of v with trailing
// decimal zeros removed from the coefficient. Zero normalizes to (0, 0).
func normalize(v decimal.Decimal) (*big.Int, int32) {
	coef := v.Coefficient()
	exp := v.Exponent()

	if coef.Sign() == 0 {
		return coef, 0
	}

	quo, rem := new(big.Int), new(big.Int)

	for {
		quo.QuoRem(coef, ten, rem)

		if rem.Sign() != 0 {
			return coef, exp
		}

		coef.Set(quo)
		exp++
	}
}
