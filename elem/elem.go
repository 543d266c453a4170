// Package elem defines element semantics: stateless types that tell a
// generic tuple how to compare, hash, order and print its components.
//
// Each semantics type is an empty struct, used as a type parameter and
// called through its zero value:
//
//	var s elem.Double
//	s.Equal(math.NaN(), math.NaN()) // true, bit-pattern equality
//
// Equal and Hash must agree: if Equal(a, b) then Hash(a) == Hash(b), and
// AppendKey(nil, a) and AppendKey(nil, b) are byte-for-byte equal.
package elem

// Equality is an equivalence relation over values of type T.
type Equality[T any] interface {
	Equal(a, b T) bool
}

// Hasher computes the int32 hash code of a value of type T.
type Hasher[T any] interface {
	Hash(v T) int32
}

// Semantics bundles everything a tuple needs to know about its element type.
type Semantics[T any] interface {
	Equality[T]
	Hasher[T]

	// Format renders v for diagnostics.
	Format(v T) string

	// Name is the lowercase element name used in String output, e.g. "int".
	Name() string

	// AppendKey appends a canonical byte encoding of v to dst. Values that
	// are Equal produce the same bytes.
	AppendKey(dst []byte, v T) []byte
}

// Ordering is implemented by semantics whose values have a total order
// consistent with Equal: Compare(a, b) == 0 iff Equal(a, b).
type Ordering[T any] interface {
	Semantics[T]

	Compare(a, b T) int
}
