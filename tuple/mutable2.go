package tuple

import (
	"hash"
	"iter"
	"log/slog"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/validate"
	"gopkg.in/yaml.v3"
)

// Mutable2 is a pair of T values that can be overwritten in place. Its hash
// code is recomputed on every call.
type Mutable2[T any, S elem.Semantics[T]] struct {
	x, y T
}

// NewMutable2 returns a mutable tuple holding x and y.
func NewMutable2[T any, S elem.Semantics[T]](x, y T) *Mutable2[T, S] {
	return &Mutable2[T, S]{x: x, y: y}
}

// FillMutable2 returns a mutable tuple with both components set to v.
func FillMutable2[T any, S elem.Semantics[T]](v T) *Mutable2[T, S] {
	return NewMutable2[T, S](v, v)
}

// CopyMutable2 returns a mutable tuple holding the components of src.
func CopyMutable2[T any, S elem.Semantics[T]](src Gettable2[T]) (*Mutable2[T, S], error) {
	if err := checkSource[T](src, 2); err != nil {
		return nil, err
	}

	return NewMutable2[T, S](src.X(), src.Y()), nil
}

// FromSliceMutable2 returns a mutable tuple holding the first two values.
func FromSliceMutable2[T any, S elem.Semantics[T]](values []T) (*Mutable2[T, S], error) {
	if err := validate.MinLen("values", len(values), 2); err != nil {
		return nil, err
	}

	return NewMutable2[T, S](values[0], values[1]), nil
}

// FromIndexedMutable2 returns a mutable tuple holding the first two values of src.
func FromIndexedMutable2[T any, S elem.Semantics[T]](src Indexed[T]) (*Mutable2[T, S], error) {
	values, err := readIndexed(src, 2)
	if err != nil {
		return nil, err
	}

	return NewMutable2[T, S](values[0], values[1]), nil
}

func (t *Mutable2[T, S]) Len() int { return 2 }
func (t *Mutable2[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Mutable2[T, S]) Y() T     { return t.y } //nolint:ireturn

func (t *Mutable2[T, S]) Get(i int) (T, error) { //nolint:ireturn
	switch i {
	case 0:
		return t.x, nil
	case 1:
		return t.y, nil
	default:
		return outOfRange[T](i, 2)
	}
}

func (t *Mutable2[T, S]) Values() (T, T) { //nolint:ireturn
	return t.x, t.y
}

func (t *Mutable2[T, S]) Slice() []T {
	return []T{t.x, t.y}
}

func (t *Mutable2[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y)
}

func (t *Mutable2[T, S]) SetX(v T) { t.x = v }
func (t *Mutable2[T, S]) SetY(v T) { t.y = v }

// Set overwrites the i-th component, or fails with errors.ErrIndexOutOfRange.
func (t *Mutable2[T, S]) Set(i int, v T) error {
	switch i {
	case 0:
		t.x = v
	case 1:
		t.y = v
	default:
		return validate.Index(i, 2)
	}

	return nil
}

func (t *Mutable2[T, S]) SetAll(x, y T) {
	t.x, t.y = x, y
}

// CopyFrom overwrites every component with those of src. On error the
// tuple is left unchanged.
func (t *Mutable2[T, S]) CopyFrom(src Gettable2[T]) error {
	if err := checkSource[T](src, 2); err != nil {
		return err
	}

	t.SetAll(src.X(), src.Y())

	return nil
}

// CopyFromIndexed overwrites every component with the first two values of
// src. All values are read before any is assigned.
func (t *Mutable2[T, S]) CopyFromIndexed(src Indexed[T]) error {
	values, err := readIndexed(src, 2)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1])

	return nil
}

// Freeze returns an immutable copy.
func (t *Mutable2[T, S]) Freeze() *Tuple2[T, S] {
	return New2[T, S](t.x, t.y)
}

func (t *Mutable2[T, S]) Equals(other *Mutable2[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) && sem.Equal(t.y, other.y))
}

func (t *Mutable2[T, S]) HashCode() int32 {
	var sem S

	return hashing.Combine(sem.Hash(t.x), sem.Hash(t.y))
}

func (t *Mutable2[T, S]) String() string {
	return format[T, S](t.x, t.y)
}

func (t *Mutable2[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y)
}

func (t *Mutable2[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y)
}

func (t Mutable2[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y)
}

func (t *Mutable2[T, S]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	values, err := unmarshalJSON[T](data, 2)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1])

	return nil
}

func (t Mutable2[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}

func (t *Mutable2[T, S]) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		return nil
	}

	values, err := unmarshalYAML[T](node, 2)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1])

	return nil
}
