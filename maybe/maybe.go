/*
Package maybe provides an option type for values which may be absent.

A Maybe helps with optional fields and optional arguments without resorting
to pointers or sentinel values. It is deliberately modeled after Elm's

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

Destructuring a Maybe is done with a matcher, to be used in a switch
statement:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		// use v
	case m.Nothing():
		// absent
	}
*/
package maybe

// Maybe wraps a value of type T which may be absent.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the wrapped value, or def if m is Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map transforms a wrapped value; Nothing maps to Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Map is a type-changing variant of Maybe.Map, which Go methods cannot
// express (methods may not introduce type parameters).
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// AndThen chains computations which may themselves fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first present value in xs, or Nothing if all of xs are
// absent.
func OneOf[T any](xs ...Maybe[T]) Maybe[T] {
	var v T
	for _, x := range xs {
		switch m := x.Match(); m {
		case m.Just(&v):
			return x
		case m.Nothing():
		}
	}
	return Nothing[T]()
}

// IsJust returns true if x wraps a present value.
func IsJust[T any](x Maybe[T]) bool {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return true
	case m.Nothing():
	}
	return false
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Maybe. Case methods return a non-nil Matcher
// exactly when their case applies, so that a switch over the matcher visits
// the applicable branch.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
