package tuple

import (
	"hash"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/validate"
)

// Tuple4 is an immutable quadruple of T values. Its hash code is computed on
// first use and cached.
type Tuple4[T any, S elem.Semantics[T]] struct {
	x, y, z, w T
	hash       hashMemo
}

// New4 returns a tuple holding x, y, z and w.
func New4[T any, S elem.Semantics[T]](x, y, z, w T) *Tuple4[T, S] {
	return &Tuple4[T, S]{x: x, y: y, z: z, w: w}
}

// Fill4 returns a tuple with every component set to v.
func Fill4[T any, S elem.Semantics[T]](v T) *Tuple4[T, S] {
	return New4[T, S](v, v, v, v)
}

// Copy4 returns a tuple holding the components of src, which must be
// non-nil and have exactly four components.
func Copy4[T any, S elem.Semantics[T]](src Gettable4[T]) (*Tuple4[T, S], error) {
	if err := checkSource[T](src, 4); err != nil {
		return nil, err
	}

	return New4[T, S](src.X(), src.Y(), src.Z(), src.W()), nil
}

// FromSlice4 returns a tuple holding the first four values. It fails with
// errors.ErrInvalidArgument when fewer are given.
func FromSlice4[T any, S elem.Semantics[T]](values []T) (*Tuple4[T, S], error) {
	if err := validate.MinLen("values", len(values), 4); err != nil {
		return nil, err
	}

	return New4[T, S](values[0], values[1], values[2], values[3]), nil
}

// FromIndexed4 returns a tuple holding the first four values of src.
func FromIndexed4[T any, S elem.Semantics[T]](src Indexed[T]) (*Tuple4[T, S], error) {
	values, err := readIndexed(src, 4)
	if err != nil {
		return nil, err
	}

	return New4[T, S](values[0], values[1], values[2], values[3]), nil
}

func (t *Tuple4[T, S]) Len() int { return 4 }
func (t *Tuple4[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Tuple4[T, S]) Y() T     { return t.y } //nolint:ireturn
func (t *Tuple4[T, S]) Z() T     { return t.z } //nolint:ireturn
func (t *Tuple4[T, S]) W() T     { return t.w } //nolint:ireturn

// Get returns the i-th component, or errors.ErrIndexOutOfRange.
func (t *Tuple4[T, S]) Get(i int) (T, error) { //nolint:ireturn
	switch i {
	case 0:
		return t.x, nil
	case 1:
		return t.y, nil
	case 2:
		return t.z, nil
	case 3:
		return t.w, nil
	default:
		return outOfRange[T](i, 4)
	}
}

// Values unpacks the tuple.
func (t *Tuple4[T, S]) Values() (T, T, T, T) { //nolint:ireturn
	return t.x, t.y, t.z, t.w
}

func (t *Tuple4[T, S]) Slice() []T {
	return []T{t.x, t.y, t.z, t.w}
}

func (t *Tuple4[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y, t.z, t.w)
}

// Mutable returns a mutable copy.
func (t *Tuple4[T, S]) Mutable() *Mutable4[T, S] {
	return NewMutable4[T, S](t.x, t.y, t.z, t.w)
}

// Equals reports whether both tuples hold equal components under S.
func (t *Tuple4[T, S]) Equals(other *Tuple4[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) &&
		sem.Equal(t.y, other.y) &&
		sem.Equal(t.z, other.z) &&
		sem.Equal(t.w, other.w))
}

func (t *Tuple4[T, S]) HashCode() int32 {
	if h, ok := t.hash.load(); ok {
		return h
	}

	var sem S

	return t.hash.store(hashing.Combine(sem.Hash(t.x), sem.Hash(t.y), sem.Hash(t.z), sem.Hash(t.w)))
}

func (t *Tuple4[T, S]) String() string {
	return format[T, S](t.x, t.y, t.z, t.w)
}

func (t *Tuple4[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y, t.z, t.w)
}

func (t *Tuple4[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y, t.z, t.w)
}

func (t Tuple4[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y, t.z, t.w)
}

func (t Tuple4[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}
