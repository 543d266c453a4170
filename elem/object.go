package elem

import (
	"encoding/binary"
	"fmt"

	"github.com/amp-labs/amp-tuple/validate"
)

// Value is implemented by reference types that define their own equality.
// HashCode must agree with Equals.
type Value[T any] interface {
	Equals(other T) bool
	HashCode() int32
}

// Object is the semantics of arbitrary reference types. It delegates to the
// value's own Equals and HashCode. Nil values (including typed nil pointers)
// are equal to each other, unequal to everything else, and hash to 0.
type Object[T Value[T]] struct{}

func (Object[T]) Equal(a, b T) bool {
	aNil, bNil := validate.IsNilish(a), validate.IsNilish(b)
	if aNil || bNil {
		return aNil && bNil
	}

	return a.Equals(b)
}

func (Object[T]) Hash(v T) int32 {
	if validate.IsNilish(v) {
		return 0
	}

	return v.HashCode()
}

func (Object[T]) Format(v T) string {
	if validate.IsNilish(v) {
		return nilFormat
	}

	return fmt.Sprint(v)
}

func (Object[T]) Name() string { return "object" }

// AppendKey can only see the hash code, so unequal objects may share a key.
// Sets resolve that with Equals.
func (Object[T]) AppendKey(dst []byte, v T) []byte {
	if validate.IsNilish(v) {
		return append(dst, 0)
	}

	return binary.BigEndian.AppendUint32(append(dst, 1), uint32(v.HashCode())) //nolint:gosec
}
