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

// Mutable3 is a triple of T values that can be overwritten in place. Its hash
// code is recomputed on every call.
type Mutable3[T any, S elem.Semantics[T]] struct {
	x, y, z T
}

// NewMutable3 returns a mutable tuple holding x, y and z.
func NewMutable3[T any, S elem.Semantics[T]](x, y, z T) *Mutable3[T, S] {
	return &Mutable3[T, S]{x: x, y: y, z: z}
}

// FillMutable3 returns a mutable tuple with every component set to v.
func FillMutable3[T any, S elem.Semantics[T]](v T) *Mutable3[T, S] {
	return NewMutable3[T, S](v, v, v)
}

// CopyMutable3 returns a mutable tuple holding the components of src.
func CopyMutable3[T any, S elem.Semantics[T]](src Gettable3[T]) (*Mutable3[T, S], error) {
	if err := checkSource[T](src, 3); err != nil {
		return nil, err
	}

	return NewMutable3[T, S](src.X(), src.Y(), src.Z()), nil
}

// FromSliceMutable3 returns a mutable tuple holding the first three values.
func FromSliceMutable3[T any, S elem.Semantics[T]](values []T) (*Mutable3[T, S], error) {
	if err := validate.MinLen("values", len(values), 3); err != nil {
		return nil, err
	}

	return NewMutable3[T, S](values[0], values[1], values[2]), nil
}

// FromIndexedMutable3 returns a mutable tuple holding the first three values of src.
func FromIndexedMutable3[T any, S elem.Semantics[T]](src Indexed[T]) (*Mutable3[T, S], error) {
	values, err := readIndexed(src, 3)
	if err != nil {
		return nil, err
	}

	return NewMutable3[T, S](values[0], values[1], values[2]), nil
}

func (t *Mutable3[T, S]) Len() int { return 3 }
func (t *Mutable3[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Mutable3[T, S]) Y() T     { return t.y } //nolint:ireturn
func (t *Mutable3[T, S]) Z() T     { return t.z } //nolint:ireturn

func (t *Mutable3[T, S]) Get(i int) (T, error) { //nolint:ireturn
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

func (t *Mutable3[T, S]) Values() (T, T, T) { //nolint:ireturn
	return t.x, t.y, t.z
}

func (t *Mutable3[T, S]) Slice() []T {
	return []T{t.x, t.y, t.z}
}

func (t *Mutable3[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y, t.z)
}

func (t *Mutable3[T, S]) SetX(v T) { t.x = v }
func (t *Mutable3[T, S]) SetY(v T) { t.y = v }
func (t *Mutable3[T, S]) SetZ(v T) { t.z = v }

// Set overwrites the i-th component, or fails with errors.ErrIndexOutOfRange.
func (t *Mutable3[T, S]) Set(i int, v T) error {
	switch i {
	case 0:
		t.x = v
	case 1:
		t.y = v
	case 2:
		t.z = v
	default:
		return validate.Index(i, 3)
	}

	return nil
}

func (t *Mutable3[T, S]) SetAll(x, y, z T) {
	t.x, t.y, t.z = x, y, z
}

// CopyFrom overwrites every component with those of src. On error the
// tuple is left unchanged.
func (t *Mutable3[T, S]) CopyFrom(src Gettable3[T]) error {
	if err := checkSource[T](src, 3); err != nil {
		return err
	}

	t.SetAll(src.X(), src.Y(), src.Z())

	return nil
}

// CopyFromIndexed overwrites every component with the first three values of
// src. All values are read before any is assigned.
func (t *Mutable3[T, S]) CopyFromIndexed(src Indexed[T]) error {
	values, err := readIndexed(src, 3)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2])

	return nil
}

// Freeze returns an immutable copy.
func (t *Mutable3[T, S]) Freeze() *Tuple3[T, S] {
	return New3[T, S](t.x, t.y, t.z)
}

func (t *Mutable3[T, S]) Equals(other *Mutable3[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) &&
		sem.Equal(t.y, other.y) &&
		sem.Equal(t.z, other.z))
}

func (t *Mutable3[T, S]) HashCode() int32 {
	var sem S

	return hashing.Combine(sem.Hash(t.x), sem.Hash(t.y), sem.Hash(t.z))
}

func (t *Mutable3[T, S]) String() string {
	return format[T, S](t.x, t.y, t.z)
}

func (t *Mutable3[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y, t.z)
}

func (t *Mutable3[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y, t.z)
}

func (t Mutable3[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y, t.z)
}

func (t *Mutable3[T, S]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	values, err := unmarshalJSON[T](data, 3)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2])

	return nil
}

func (t Mutable3[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}

func (t *Mutable3[T, S]) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		return nil
	}

	values, err := unmarshalYAML[T](node, 3)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2])

	return nil
}
