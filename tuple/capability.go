package tuple

import "iter"

// Indexed is a fixed-size sequence whose values can be read by position.
type Indexed[T any] interface {
	Len() int
	Get(i int) (T, error)
}

// Gettable2 is anything with readable x and y components.
type Gettable2[T any] interface {
	Indexed[T]
	X() T
	Y() T
}

// Gettable3 adds a z component.
type Gettable3[T any] interface {
	Gettable2[T]
	Z() T
}

// Gettable4 adds a w component.
type Gettable4[T any] interface {
	Gettable3[T]
	W() T
}

// Settable can overwrite a component by position.
type Settable[T any] interface {
	Set(i int, v T) error
}

// Settable2 can overwrite x and y.
type Settable2[T any] interface {
	Settable[T]
	SetX(v T)
	SetY(v T)
	SetAll(x, y T)
}

// Settable3 can overwrite x, y and z.
type Settable3[T any] interface {
	Settable[T]
	SetX(v T)
	SetY(v T)
	SetZ(v T)
	SetAll(x, y, z T)
}

// Settable4 can overwrite x, y, z and w.
type Settable4[T any] interface {
	Settable[T]
	SetX(v T)
	SetY(v T)
	SetZ(v T)
	SetW(v T)
	SetAll(x, y, z, w T)
}

// Convertible exposes the components as a fresh slice or an iterator.
type Convertible[T any] interface {
	Slice() []T
	All() iter.Seq2[int, T]
}
