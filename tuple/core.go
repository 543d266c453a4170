package tuple

import (
	"fmt"
	"hash"
	"iter"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amp-labs/amp-tuple/elem"
	"github.com/amp-labs/amp-tuple/validate"
	"go.uber.org/atomic"
)

//nolint:gochecknoglobals
var componentNames = [...]string{"x", "y", "z", "w"}

// hashMemo holds an immutable tuple's hash code once computed. Bit 32 marks
// the word as set. Concurrent first calls may both compute; they store the
// same value.
type hashMemo struct {
	word atomic.Uint64
}

const memoSet = uint64(1) << 32

func (m *hashMemo) load() (int32, bool) {
	w := m.word.Load()
	if w&memoSet == 0 {
		return 0, false
	}

	return int32(uint32(w)), true //nolint:gosec
}

func (m *hashMemo) store(h int32) int32 {
	m.word.Store(memoSet | uint64(uint32(h))) //nolint:gosec

	return h
}

func outOfRange[T any](i, n int) (T, error) {
	var zero T

	return zero, validate.Index(i, n)
}

// readIndexed reads the first n values of src. Nothing is returned unless
// every read succeeds.
func readIndexed[T any](src Indexed[T], n int) ([]T, error) {
	if err := validate.NotNil("source", src); err != nil {
		return nil, err
	}

	if err := validate.MinLen("source", src.Len(), n); err != nil {
		return nil, err
	}

	values := make([]T, n)

	for i := range values {
		v, err := src.Get(i)
		if err != nil {
			return nil, fmt.Errorf("reading component %s: %w", componentNames[i], err)
		}

		values[i] = v
	}

	return values, nil
}

// checkSource rejects nil sources and sources of a different arity.
func checkSource[T any](src Indexed[T], n int) error {
	if err := validate.NotNil("source", src); err != nil {
		return err
	}

	return validate.ExactLen("source", src.Len(), n)
}

func format[T any, S elem.Semantics[T]](values ...T) string {
	var (
		sem S
		sb  strings.Builder
	)

	sb.WriteString(sem.Name())
	sb.WriteString(strconv.Itoa(len(values)))
	sb.WriteByte('(')

	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(componentNames[i])
		sb.WriteByte('=')
		sb.WriteString(sem.Format(v))
	}

	sb.WriteByte(')')

	return sb.String()
}

// updateHash writes the element name, the arity and the canonical key of
// every component, so that equal tuples always produce equal digests.
func updateHash[T any, S elem.Semantics[T]](h hash.Hash, values ...T) error {
	var sem S

	key := append([]byte(sem.Name()), byte(len(values)))

	for _, v := range values {
		key = sem.AppendKey(key, v)
	}

	_, err := h.Write(key)

	return err
}

func logValue[T any, S elem.Semantics[T]](values ...T) slog.Value {
	var sem S

	attrs := make([]slog.Attr, len(values))

	for i, v := range values {
		attrs[i] = slog.String(componentNames[i], sem.Format(v))
	}

	return slog.GroupValue(attrs...)
}

func all[T any](values ...T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// equalIndexed compares two same-arity sources component by component.
// Nil sources are equal only to each other.
func equalIndexed[T any, S elem.Semantics[T]](a, b Indexed[T]) bool {
	aNil, bNil := validate.IsNilish(a), validate.IsNilish(b)
	if aNil || bNil {
		return aNil && bNil
	}

	if a.Len() != b.Len() {
		return false
	}

	var sem S

	for i := range a.Len() {
		av, aErr := a.Get(i)
		bv, bErr := b.Get(i)

		if aErr != nil || bErr != nil || !sem.Equal(av, bv) {
			return false
		}
	}

	return true
}

// compareIndexed orders two sources lexicographically. Nil sorts first and
// a shorter source sorts before a longer one sharing its prefix. A component
// whose Get fails sorts before any readable component, and two unreadable
// components tie.
func compareIndexed[T any, S elem.Ordering[T]](a, b Indexed[T]) int {
	aNil, bNil := validate.IsNilish(a), validate.IsNilish(b)

	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return -1
	case bNil:
		return 1
	}

	var sem S

	for i := range min(a.Len(), b.Len()) {
		av, aErr := a.Get(i)
		bv, bErr := b.Get(i)

		switch {
		case aErr != nil && bErr != nil:
			continue
		case aErr != nil:
			return -1
		case bErr != nil:
			return 1
		}

		if c := sem.Compare(av, bv); c != 0 {
			return c
		}
	}

	return a.Len() - b.Len()
}
