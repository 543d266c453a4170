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

// Mutable4 is a quadruple of T values that can be overwritten in place. Its hash
// code is recomputed on every call.
type Mutable4[T any, S elem.Semantics[T]] struct {
	x, y, z, w T
}

// NewMutable4 returns a mutable tuple holding x, y, z and w.
func NewMutable4[T any, S elem.Semantics[T]](x, y, z, w T) *Mutable4[T, S] {
	return &Mutable4[T, S]{x: x, y: y, z: z, w: w}
}

// FillMutable4 returns a mutable tuple with every component set to v.
func FillMutable4[T any, S elem.Semantics[T]](v T) *Mutable4[T, S] {
	return NewMutable4[T, S](v, v, v, v)
}

// CopyMutable4 returns a mutable tuple holding the components of src.
func CopyMutable4[T any, S elem.Semantics[T]](src Gettable4[T]) (*Mutable4[T, S], error) {
	if err := checkSource[T](src, 4); err != nil {
		return nil, err
	}

	return NewMutable4[T, S](src.X(), src.Y(), src.Z(), src.W()), nil
}

// FromSliceMutable4 returns a mutable tuple holding the first four values.
func FromSliceMutable4[T any, S elem.Semantics[T]](values []T) (*Mutable4[T, S], error) {
	if err := validate.MinLen("values", len(values), 4); err != nil {
		return nil, err
	}

	return NewMutable4[T, S](values[0], values[1], values[2], values[3]), nil
}

// FromIndexedMutable4 returns a mutable tuple holding the first four values of src.
func FromIndexedMutable4[T any, S elem.Semantics[T]](src Indexed[T]) (*Mutable4[T, S], error) {
	values, err := readIndexed(src, 4)
	if err != nil {
		return nil, err
	}

	return NewMutable4[T, S](values[0], values[1], values[2], values[3]), nil
}

func (t *Mutable4[T, S]) Len() int { return 4 }
func (t *Mutable4[T, S]) X() T     { return t.x } //nolint:ireturn
func (t *Mutable4[T, S]) Y() T     { return t.y } //nolint:ireturn
func (t *Mutable4[T, S]) Z() T     { return t.z } //nolint:ireturn
func (t *Mutable4[T, S]) W() T     { return t.w } //nolint:ireturn

func (t *Mutable4[T, S]) Get(i int) (T, error) { //nolint:ireturn
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

func (t *Mutable4[T, S]) Values() (T, T, T, T) { //nolint:ireturn
	return t.x, t.y, t.z, t.w
}

func (t *Mutable4[T, S]) Slice() []T {
	return []T{t.x, t.y, t.z, t.w}
}

func (t *Mutable4[T, S]) All() iter.Seq2[int, T] {
	return all(t.x, t.y, t.z, t.w)
}

func (t *Mutable4[T, S]) SetX(v T) { t.x = v }
func (t *Mutable4[T, S]) SetY(v T) { t.y = v }
func (t *Mutable4[T, S]) SetZ(v T) { t.z = v }
func (t *Mutable4[T, S]) SetW(v T) { t.w = v }

// Set overwrites the i-th component, or fails with errors.ErrIndexOutOfRange.
func (t *Mutable4[T, S]) Set(i int, v T) error {
	switch i {
	case 0:
		t.x = v
	case 1:
		t.y = v
	case 2:
		t.z = v
	case 3:
		t.w = v
	default:
		return validate.Index(i, 4)
	}

	return nil
}

func (t *Mutable4[T, S]) SetAll(x, y, z, w T) {
	t.x, t.y, t.z, t.w = x, y, z, w
}

// CopyFrom overwrites every component with those of src. On error the
// tuple is left unchanged.
func (t *Mutable4[T, S]) CopyFrom(src Gettable4[T]) error {
	if err := checkSource[T](src, 4); err != nil {
		return err
	}

	t.SetAll(src.X(), src.Y(), src.Z(), src.W())

	return nil
}

// CopyFromIndexed overwrites every component with the first four values of
// src. All values are read before any is assigned.
func (t *Mutable4[T, S]) CopyFromIndexed(src Indexed[T]) error {
	values, err := readIndexed(src, 4)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2], values[3])

	return nil
}

// Freeze returns an immutable copy.
func (t *Mutable4[T, S]) Freeze() *Tuple4[T, S] {
	return New4[T, S](t.x, t.y, t.z, t.w)
}

func (t *Mutable4[T, S]) Equals(other *Mutable4[T, S]) bool {
	if t == nil || other == nil {
		return t == other
	}

	var sem S

	return t == other || (sem.Equal(t.x, other.x) &&
		sem.Equal(t.y, other.y) &&
		sem.Equal(t.z, other.z) &&
		sem.Equal(t.w, other.w))
}

func (t *Mutable4[T, S]) HashCode() int32 {
	var sem S

	return hashing.Combine(sem.Hash(t.x), sem.Hash(t.y), sem.Hash(t.z), sem.Hash(t.w))
}

func (t *Mutable4[T, S]) String() string {
	return format[T, S](t.x, t.y, t.z, t.w)
}

func (t *Mutable4[T, S]) UpdateHash(h hash.Hash) error {
	return updateHash[T, S](h, t.x, t.y, t.z, t.w)
}

func (t *Mutable4[T, S]) LogValue() slog.Value {
	return logValue[T, S](t.x, t.y, t.z, t.w)
}

func (t Mutable4[T, S]) MarshalJSON() ([]byte, error) {
	return marshalJSON(t.x, t.y, t.z, t.w)
}

func (t *Mutable4[T, S]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return nil
	}

	values, err := unmarshalJSON[T](data, 4)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2], values[3])

	return nil
}

func (t Mutable4[T, S]) MarshalYAML() (any, error) {
	return t.Slice(), nil
}

func (t *Mutable4[T, S]) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		return nil
	}

	values, err := unmarshalYAML[T](node, 4)
	if err != nil {
		return err
	}

	t.SetAll(values[0], values[1], values[2], values[3])

	return nil
}
