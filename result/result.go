/*
Package result provides a result type for computations which may fail.

A Result carries either a value or an error, and forces callers to decide
which one they received. It is modeled after Elm's

	module Result exposing (Result(Ok,Err), map, map2, andThen,
	    withDefault, toMaybe, fromMaybe, mapError)

Destructuring a Result is done with a matcher, to be used in a switch
statement:

	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		// use v
	case m.Err(&e):
		// handle e
	}

The combinators (Map, AndThen, …) exist so that a chain of fallible
constructions composes without an explicit error check at every step: the
first error wins and is passed through untouched.
*/
package result

import "github.com/npillmayer/contacts/maybe"

// Result is the result of a computation that may fail: either a value of
// type T, or an error explaining why there is none.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps the reason a computation failed. A nil err marks the result as
// Ok with a zero value, so callers should not pass nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the wrapped value, or def if r is an error.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map transforms a successful result; errors are passed through untouched.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&e):
	}
	return Err[S](e)
}

// Map2 combines two successful results. If either is an error, the first
// error (in argument order) is returned.
func Map2[A, B, S any](f func(A, B) S, ra Result[A], rb Result[B]) Result[S] {
	var a A
	var e error
	switch m := ra.Match(); m {
	case m.Ok(&a):
	case m.Err(&e):
		return Err[S](e)
	}
	var b B
	switch m := rb.Match(); m {
	case m.Ok(&b):
	case m.Err(&e):
		return Err[S](e)
	}
	return Ok(f(a, b))
}

// AndThen chains a fallible computation onto a result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&e):
	}
	return Err[S](e)
}

// MapError transforms the error of a failed result; successful results are
// passed through untouched.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return r
	case m.Err(&e):
	}
	return Err[T](f(e))
}

// ToMaybe drops the error information, keeping only presence.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	var v T
	var e error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&e):
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns an absent value into the given error.
func FromMaybe[T any](err error, x maybe.Maybe[T]) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	case m.Nothing():
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Result. Case methods return a non-nil Matcher
// exactly when their case applies.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
