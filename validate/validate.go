// Package validate holds the precondition checks used by tuple constructors
// and setters. Each check returns nil on success, or an error wrapping one of
// the sentinels in the errors package.
package validate

import (
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-tuple/errors"
)

// IsNilish returns true if the value is a literal nil
// or if it points to something with a nil value.
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}

// NotNil fails with errors.ErrInvalidArgument when value is nil, including a
// typed nil pointer stored in an interface.
func NotNil(name string, value any) error {
	if IsNilish(value) {
		return fmt.Errorf("%w: %s must not be nil", errors.ErrInvalidArgument, name)
	}

	return nil
}

// MinLen fails with errors.ErrInvalidArgument when got < want.
func MinLen(name string, got, want int) error {
	if got < want {
		return fmt.Errorf("%w: %s has %d elements, need at least %d", errors.ErrInvalidArgument, name, got, want)
	}

	return nil
}

// ExactLen fails with errors.ErrInvalidArgument when got != want.
func ExactLen(name string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d elements, need exactly %d", errors.ErrInvalidArgument, name, got, want)
	}

	return nil
}

// Index fails with errors.ErrIndexOutOfRange unless 0 <= i < n.
func Index(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d not in [0, %d)", errors.ErrIndexOutOfRange, i, n)
	}

	return nil
}
