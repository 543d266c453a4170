package tuple

import "github.com/amp-labs/amp-tuple/elem"

// Equal2 compares any two pairs component by component under S, so a
// Tuple2 and a Mutable2 holding equal values are Equal2. Nil is equal only
// to nil, and sources of different arity are never equal.
func Equal2[T any, S elem.Semantics[T]](a, b Gettable2[T]) bool {
	return equalIndexed[T, S](a, b)
}

// Equal3 is Equal2 for triples.
func Equal3[T any, S elem.Semantics[T]](a, b Gettable3[T]) bool {
	return equalIndexed[T, S](a, b)
}

// Equal4 is Equal2 for quadruples.
func Equal4[T any, S elem.Semantics[T]](a, b Gettable4[T]) bool {
	return equalIndexed[T, S](a, b)
}

// Compare2 orders pairs lexicographically under S: x first, then y.
// It returns 0 exactly when Equal2 reports true. Nil sorts first.
func Compare2[T any, S elem.Ordering[T]](a, b Gettable2[T]) int {
	return compareIndexed[T, S](a, b)
}

// Compare3 is Compare2 for triples.
func Compare3[T any, S elem.Ordering[T]](a, b Gettable3[T]) int {
	return compareIndexed[T, S](a, b)
}

// Compare4 is Compare2 for quadruples.
func Compare4[T any, S elem.Ordering[T]](a, b Gettable4[T]) int {
	return compareIndexed[T, S](a, b)
}
