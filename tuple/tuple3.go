package tuple

import (
	"hash"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/validate"
)

// Tuple3 is an immutable triple of T values. Its hash code is computed on
// first use and cached.
type Tuple3[T any, S elem.Semantics[T]] struct {
	x, y, z T
	hash    hashMemo
}

// New3 returns a tuple holding x, y and z.
func New3[T any, S elem.Semantics[T]](x, y, z T) *Tuple3[T, S] {
	return &Tuple3[T, S]{x: x, y: y, z: z}
}

// Fill3 returns a tuple with every component set to v.
func Fill3[T any, S elem.Semantics[T]](v T) *Tuple3[T, S] {
	return New3[T, S](v, v, v)
}

// Copy3 returns a tuple holding the components of src, which must be
// non-nil and have exactly three components.
func Copy3[T any, S elem.Semantics[T]](src Gettable3[T]) (*Tuple3[T, S], error) {
	if err := checkSource[T](src, 3); err != nil {
		return nil, err
	}

	return New3[T, S](src.X(), src.Y(), src.Z()), nil
}

// FromSlice3 returns a tuple holding the first three values. It fails with
// errors.ErrInvalidArgument when fewer are given.
func FromSlice3[T any, S elem.Semantics[T]](values []T) (*Tuple3[T, S], error) {
	if err := validate.MinLen("values", len(values), 3); err != nil {
		return nil, err
	}

	return New3[T, S](values[0], values[1], values[2]), nil
}

// FromIndexed3 returns a tuple holding the first three values of src.
func FromIndexed3[T any, S elem.Semantics[T]](src Indexed[T]) (*Tuple3[T, S], error) {
	values, err := readIndexed(src, 3)
	if err != nil {
		return nil, err
	}

	return New3[T, S](values[0], values[1], values[2]), nil
}

func (t *Tuple3[T, S]) Len() int { return 3 }
func (t *Tuple3[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Tuple3[T, S]) Y() T     { return t.y } //nolint:ireturn
func (t *Tuple3[T, S]) Z() T     { return t.z } //nolint:ireturn

// Get returns the i-th component, or errors.ErrIndexOutOfRange.
func (t *Tuple3[T, S]) Get(i int) (T, error) { //nolint:ireturn
	switch i {
	case 0:
		return t.x, nil
	case 1:
		return t.y, nil
	case 2:
		return t.z, nil
	default:
		return outOfRange[T](i, 3)
	}
}

// Values unpacks the tuple.
func (t *Tuple3[T, S]) Values() (T, T, T) { //nolint:ireturn
	return t.x, t.y, t.z
}

func (t *Tuple3[T, S]) Slice() []T {
	return []T{t.x, t.y, t.z}
}

func (t *Tuple3[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y, t.z)
}

// Mutable returns a mutable copy.
func (t *Tuple3[T, S]) Mutable() *Mutable3[T, S] {
	return NewMutable3[T, S](t.x, t.y, t.z)
}

// Equals reports whether both tuples hold equal components under S.
func (t *Tuple3[T, S]) Equals(other *Tuple3[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) &&
		sem.Equal(t.y, other.y) &&
		sem.Equal(t.z, other.z))
}

func (t *Tuple3[T, S]) HashCode() int32 {
	if h, ok := t.hash.load(); ok {
		return h
	}

	var sem S

	return t.hash.store(hashing.Combine(sem.Hash(t.x), sem.Hash(t.y), sem.Hash(t.z)))
}

func (t *Tuple3[T, S]) String() string {
	return format[T, S](t.x, t.y, t.z)
}

func (t *Tuple3[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y, t.z)
}

func (t *Tuple3[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y, t.z)
}

func (t Tuple3[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y, t.z)
}

func (t Tuple3[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}
