package set

import (
	"iter"

	"github.com/tidwall/btree"
)

// Sorted is an ordered set backed by a B-tree. Two elements are the same
// member when the comparison function returns 0 for them, so the function
// must be consistent with the element's equality. tuple.Compare2 and its
// siblings qualify.
//
// Sorted is not safe for concurrent use.
type Sorted[T any] struct {
	tree *btree.BTreeG[T]
}

// NewSorted returns an empty ordered set using compare, which returns a
// negative number, zero or a positive number like cmp.Compare.
func NewSorted[T any](compare func(a, b T) int) *Sorted[T] {
	less := func(a, b T) bool {
		return compare(a, b) < 0
	}

	return &Sorted[T]{
		tree: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

// Add inserts v and reports whether it was absent. An equal element
// already present is replaced by v.
func (s *Sorted[T]) Add(v T) bool {
	_, replaced := s.tree.Set(v)

	return !replaced
}

// Remove deletes v and reports whether it was present.
func (s *Sorted[T]) Remove(v T) bool {
	_, deleted := s.tree.Delete(v)

	return deleted
}

func (s *Sorted[T]) Contains(v T) bool {
	_, ok := s.tree.Get(v)

	return ok
}

func (s *Sorted[T]) Len() int {
	return s.tree.Len()
}

// Min returns the smallest element, or false when the set is empty.
func (s *Sorted[T]) Min() (T, bool) { //nolint:ireturn
	return s.tree.Min()
}

// Max returns the largest element, or false when the set is empty.
func (s *Sorted[T]) Max() (T, bool) { //nolint:ireturn
	return s.tree.Max()
}

// Ascend calls fn for every element not less than pivot, in order, until
// fn returns false.
func (s *Sorted[T]) Ascend(pivot T, fn func(T) bool) {
	s.tree.Ascend(pivot, fn)
}

// All returns an iterator over every element in ascending order.
func (s *Sorted[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.tree.Scan(yield)
	}
}

// Items returns every element in ascending order.
func (s *Sorted[T]) Items() []T {
	return s.tree.Items()
}

func (s *Sorted[T]) Clear() {
	s.tree.Clear()
}
