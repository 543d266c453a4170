// Package set provides collections of tuples and other hashable values.
package set

import (
	"fmt"
	"iter"

	"facette.io/natsort"
	"github.com/amp-labs/amp-tuple/hashing"
	"github.com/amp-labs/amp-tuple/validate"
)

// Collectable is an interface that combines the Hashable interface with
// value equality. This is useful for objects that need to be stored in a
// Set, where the digest picks a bucket and Equals decides membership.
type Collectable[T any] interface {
	hashing.Hashable
	Equals(other T) bool
}

// Printable is a Collectable with a diagnostic string form.
type Printable[T any] interface {
	Collectable[T]
	fmt.Stringer
}

// A Set is a collection of unique elements. Uniqueness is determined by
// the HashFunc provided when the Set is created, as well as how the
// element has implemented the Collectable interface. Elements whose
// digests collide share a bucket, so a collision never loses an element.
//
// A Set is not safe for concurrent use.
type Set[T Collectable[T]] struct {
	hash    hashing.HashFunc
	buckets map[string][]T
	size    int
}

// New creates an empty Set using the given hash function. A nil hash
// function selects hashing.Xxh3.
func New[T Collectable[T]](hash hashing.HashFunc) *Set[T] {
	if hash == nil {
		hash = hashing.Xxh3
	}

	return &Set[T]{
		hash:    hash,
		buckets: make(map[string][]T),
	}
}

// Of creates a Set with the default hash function holding the given
// elements.
func Of[T Collectable[T]](elements ...T) (*Set[T], error) {
	s := New[T](nil)

	if err := s.AddAll(elements...); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Set[T]) key(element T) (string, error) {
	if err := validate.NotNil("element", element); err != nil {
		return "", err
	}

	key, err := s.hash(element)
	if err != nil {
		return "", fmt.Errorf("hashing element: %w", err)
	}

	return key, nil
}

func indexOf[T Collectable[T]](bucket []T, element T) int {
	for i, candidate := range bucket {
		if candidate.Equals(element) {
			return i
		}
	}

	return -1
}

// AddAll adds multiple elements to the set. It stops at the first element
// that cannot be hashed; elements before it stay added.
func (s *Set[T]) AddAll(elements ...T) error {
	for _, element := range elements {
		if err := s.Add(element); err != nil {
			return err
		}
	}

	return nil
}

// Add adds a single element to the set. Adding an element equal to one
// already present is a no-op.
func (s *Set[T]) Add(element T) error {
	key, err := s.key(element)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]
	if indexOf(bucket, element) >= 0 {
		return nil
	}

	s.buckets[key] = append(bucket, element)
	s.size++

	return nil
}

// Remove removes an element from the set. Removing an absent element is
// a no-op.
func (s *Set[T]) Remove(element T) error {
	key, err := s.key(element)
	if err != nil {
		return err
	}

	bucket := s.buckets[key]

	i := indexOf(bucket, element)
	if i < 0 {
		return nil
	}

	if len(bucket) == 1 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = append(bucket[:i:i], bucket[i+1:]...)
	}

	s.size--

	return nil
}

// Contains reports whether an element equal to the given one is present.
func (s *Set[T]) Contains(element T) (bool, error) {
	key, err := s.key(element)
	if err != nil {
		return false, err
	}

	return indexOf(s.buckets[key], element) >= 0, nil
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.buckets = make(map[string][]T)
	s.size = 0
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return s.size
}

// Entries returns all elements in the set as a slice. The order is not
// guaranteed.
func (s *Set[T]) Entries() []T {
	items := make([]T, 0, s.size)

	for element := range s.Seq() {
		items = append(items, element)
	}

	return items
}

// Seq returns an iterator over the elements of the set. The order is not
// guaranteed.
func (s *Set[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, bucket := range s.buckets {
			for _, element := range bucket {
				if !yield(element) {
					return
				}
			}
		}
	}
}

// Union returns a new set, using this set's hash function, holding the
// elements of both sets.
func (s *Set[T]) Union(other *Set[T]) (*Set[T], error) {
	ns := New[T](s.hash)

	if err := ns.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if other == nil {
		return ns, nil
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

// Intersection returns a new set, using this set's hash function, holding
// the elements present in both sets.
func (s *Set[T]) Intersection(other *Set[T]) (*Set[T], error) {
	ns := New[T](s.hash)

	if other == nil {
		return ns, nil
	}

	for element := range s.Seq() {
		contains, err := other.Contains(element)
		if err != nil {
			return nil, err
		}

		if !contains {
			continue
		}

		if err := ns.Add(element); err != nil {
			return nil, err
		}
	}

	return ns, nil
}

// SortedStrings returns the string form of every element in natural sort
// order, so that "int2(x=2, y=1)" comes before "int2(x=10, y=1)".
func SortedStrings[T Printable[T]](s *Set[T]) []string {
	items := make([]string, 0, s.Size())

	for element := range s.Seq() {
		items = append(items, element.String())
	}

	natsort.Sort(items)

	return items
}
