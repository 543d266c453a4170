// Package hashing provides the two kinds of hashing the tuple packages need:
// the int32 hash codes that back value equality (a polynomial fold with prime
// 31, compatible with the classic Arrays.hashCode scheme), and content digests
// of Hashable values used to key hash sets.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"
	"math/big"
	"unicode/utf16"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// Prime is the multiplier applied to the running hash before each
// component hash is added.
const Prime int32 = 31

const (
	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

// Combine folds component hash codes together in order:
// result = 1; result = 31*result + h for each h. Arithmetic wraps.
func Combine(hashes ...int32) int32 {
	result := int32(1)

	for _, h := range hashes {
		result = Prime*result + h
	}

	return result
}

// Int64 folds a 64-bit value into 32 bits by xor-ing its halves.
func Int64(v int64) int32 {
	u := uint64(v)

	return int32(uint32(u ^ (u >> 32))) //nolint:gosec
}

// Float32Bits returns the IEEE bit pattern of v with every NaN collapsed to
// a single canonical NaN. Two floats are bit-pattern equal iff their
// canonical bits are equal, which makes NaN equal to itself and keeps
// -0 and +0 apart.
func Float32Bits(v float32) uint32 {
	if math.IsNaN(float64(v)) {
		return canonicalNaN32
	}

	return math.Float32bits(v)
}

// Float64Bits is the float64 counterpart of Float32Bits.
func Float64Bits(v float64) uint64 {
	if math.IsNaN(v) {
		return canonicalNaN64
	}

	return math.Float64bits(v)
}

// Float32 hashes a float by its canonical bit pattern.
func Float32(v float32) int32 {
	return int32(Float32Bits(v)) //nolint:gosec
}

// Float64 hashes a double by folding its canonical bit pattern.
func Float64(v float64) int32 {
	return Int64(int64(Float64Bits(v))) //nolint:gosec
}

// Bool hashes true as 1 and false as 0.
func Bool(v bool) int32 {
	if v {
		return 1
	}

	return 0
}

// String hashes s over its UTF-16 code units:
// s[0]*31^(n-1) + s[1]*31^(n-2) + ... + s[n-1].
func String(s string) int32 {
	var h int32

	for _, unit := range utf16.Encode([]rune(s)) {
		h = Prime*h + int32(unit)
	}

	return h
}

// BigInt hashes the magnitude of v as a sequence of big-endian 32-bit words
// and multiplies by the sign. A nil value hashes to 0.
func BigInt(v *big.Int) int32 {
	if v == nil {
		return 0
	}

	mag := v.Bytes()

	var h int32

	if head := len(mag) % 4; head != 0 {
		var word uint32
		for _, b := range mag[:head] {
			word = word<<8 | uint32(b)
		}

		h = int32(word) //nolint:gosec
		mag = mag[head:]
	}

	for len(mag) >= 4 {
		h = Prime*h + int32(binary.BigEndian.Uint32(mag)) //nolint:gosec
		mag = mag[4:]
	}

	return h * int32(v.Sign()) //nolint:gosec
}

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its digest.
// Sha256, Xxh3 and Xxhash64 are HashFuncs.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Two values that are equal must
// write the same bytes.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the hex-encoded SHA256 digest of the given Hashable.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the hex-encoded 64-bit XXH3 digest of the given Hashable.
// It is the default HashFunc of the set package.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// Xxhash64 returns the hex-encoded 64-bit XXH64 digest of the given Hashable.
func Xxhash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}
