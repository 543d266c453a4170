// Package errors defines the error values shared by the tuple packages.
package errors

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or setter receives a
	// missing source, or a source that holds fewer values than the tuple's arity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned when a component index falls outside [0, arity).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Collection accumulates errors so that a caller can report every problem
// found in one pass instead of stopping at the first. It is not thread-safe.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when only
// one was added, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
