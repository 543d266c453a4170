// Package tuple provides fixed-arity tuples of 2, 3 and 4 components that
// all share one element type.
//
// Every tuple type takes two type parameters: the element type T and a
// semantics type S from package elem that decides how components are
// compared, hashed, ordered and printed. The same generic code therefore
// serves bytes, floats, big decimals, strings and arbitrary objects, each
// with the right equality:
//
//	a := tuple.NewBigDecimal2(decimal.RequireFromString("2.0"), decimal.RequireFromString("3.00"))
//	b := tuple.NewBigDecimal2(decimal.RequireFromString("2.00"), decimal.RequireFromString("3.0"))
//	a.Equals(b) // true
//
// Tuple2, Tuple3 and Tuple4 are immutable and cache their hash code.
// Mutable2, Mutable3 and Mutable4 can be changed in place and are not safe
// for concurrent mutation. Named aliases such as Int2 or MutableDouble4, and
// their constructors, are generated from kinds.yaml.
//
// Whole-tuple setters validate every input before assigning anything, so a
// failed call leaves the tuple unchanged.
package tuple

//go:generate go run ../cmd/tuplegen -config kinds.yaml -out aliases_gen.go
