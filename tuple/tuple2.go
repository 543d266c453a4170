package tuple

import (
	"hash"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/validate"
)

// Tuple2 is an immutable pair of T values. Its hash code is computed on
// first use and cached.
type Tuple2[T any, S elem.Semantics[T]] struct {
	x, y T
	hash hashMemo
}

// New2 returns a tuple holding x and y.
func New2[T any, S elem.Semantics[T]](x, y T) *Tuple2[T, S] {
	return &Tuple2[T, S]{x: x, y: y}
}

// Fill2 returns a tuple with both components set to v.
func Fill2[T any, S elem.Semantics[T]](v T) *Tuple2[T, S] {
	return New2[T, S](v, v)
}

// Copy2 returns a tuple holding the components of src, which must be
// non-nil and have exactly two components.
func Copy2[T any, S elem.Semantics[T]](src Gettable2[T]) (*Tuple2[T, S], error) {
	if err := checkSource[T](src, 2); err != nil {
		return nil, err
	}

	return New2[T, S](src.X(), src.Y()), nil
}

// FromSlice2 returns a tuple holding the first two values. It fails with
// errors.ErrInvalidArgument when fewer are given.
func FromSlice2[T any, S elem.Semantics[T]](values []T) (*Tuple2[T, S], error) {
	if err := validate.MinLen("values", len(values), 2); err != nil {
		return nil, err
	}

	return New2[T, S](values[0], values[1]), nil
}

// FromIndexed2 returns a tuple holding the first two values of src.
func FromIndexed2[T any, S elem.Semantics[T]](src Indexed[T]) (*Tuple2[T, S], error) {
	values, err := readIndexed(src, 2)
	if err != nil {
		return nil, err
	}

	return New2[T, S](values[0], values[1]), nil
}

func (t *Tuple2[T, S]) Len() int { return 2 }
func (t *Tuple2[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Tuple2[T, S]) Y() T     { return t.y } //nolint:ireturn

// Get returns the i-th component, or errors.ErrIndexOutOfRange.
func (t *Tuple2[T, S]) Get(i int) (T, error) { //nolint:ireturn
	switch i {
	case 0:
		return t.x, nil
	case 1:
		return t.y, nil
	default:
		return outOfRange[T](i, 2)
	}
}

// Values unpacks the tuple.
func (t *Tuple2[T, S]) Values() (T, T) { //nolint:ireturn
	return t.x, t.y
}

func (t *Tuple2[T, S]) Slice() []T {
	return []T{t.x, t.y}
}

func (t *Tuple2[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y)
}

// Mutable returns a mutable copy.
func (t *Tuple2[T, S]) Mutable() *Mutable2[T, S] {
	return NewMutable2[T, S](t.x, t.y)
}

// Equals reports whether both tuples hold equal components under S.
func (t *Tuple2[T, S]) Equals(other *Tuple2[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) && sem.Equal(t.y, other.y))
}

func (t *Tuple2[T, S]) HashCode() int32 {
	if h, ok := t.hash.load(); ok {
		return h
	}

	var sem S

	return t.hash.store(hashing.Combine(sem.Hash(t.x), sem.Hash(t.y)))
}

func (t *Tuple2[T, S]) String() string {
	return format[T, S](t.x, t.y)
}

func (t *Tuple2[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y)
}

func (t *Tuple2[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y)
}

func (t Tuple2[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y)
}

func (t Tuple2[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}
