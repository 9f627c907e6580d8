// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "iter"

// Option represents an optional value: either Some (a value is present)
// or None (no value).
//
// The zero value is None. Option values are immutable; every combinator
// returns a new Option.
type Option[T any] struct {
	value T
	some  bool
}

// Some creates an Option containing the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd returns true if a value is present and the predicate holds
// for it. The predicate is not invoked on None.
func (o Option[T]) IsSomeAnd(predicate func(T) bool) bool {
	return o.some && predicate(o.value)
}

// IsNoneOr returns true if no value is present, or the predicate holds
// for the contained value.
func (o Option[T]) IsNoneOr(predicate func(T) bool) bool {
	return !o.some || predicate(o.value)
}

// Get returns the contained value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Unwrap returns the contained value.
// Panics if the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("wrap: called Unwrap on a None value")
	}
	return o.value
}

// Expect returns the contained value.
// Panics with the given message if the Option is None.
func (o Option[T]) Expect(message string) T {
	if !o.some {
		panic(message)
	}
	return o.value
}

// UnwrapOr returns the contained value, or the given default.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value, or computes a default.
// The thunk is only invoked on None.
func (o Option[T]) UnwrapOrElse(def func() T) T {
	if o.some {
		return o.value
	}
	return def()
}

// UnwrapOrZero returns the contained value, or the zero value of T.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// OrError returns the contained value, or the given error.
// Unlike Unwrap, the caller controls what propagates on None.
func (o Option[T]) OrError(err error) (T, error) {
	if o.some {
		return o.value, nil
	}
	var zero T
	return zero, err
}

// OrErrorWith returns the contained value, or the error produced by the
// thunk. The thunk is only invoked on None.
func (o Option[T]) OrErrorWith(err func() error) (T, error) {
	if o.some {
		return o.value, nil
	}
	var zero T
	return zero, err()
}

// Filter keeps the contained value only if the predicate holds for it.
// None stays None; the predicate is not invoked on None.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns the Option if it is Some, otherwise the other Option.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option if it is Some, otherwise evaluates the thunk.
// The thunk is only invoked on None.
func (o Option[T]) OrElse(def func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return def()
}

// Xor returns whichever of the two Options is Some, if exactly one is.
// If both or neither are Some, the result is None.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.some == other.some {
		return None[T]()
	}
	if o.some {
		return o
	}
	return other
}

// Inspect calls the function with the contained value, if present,
// and returns the Option unchanged.
func (o Option[T]) Inspect(f func(T)) Option[T] {
	if o.some {
		f(o.value)
	}
	return o
}

// Early returns the contained value, or unwinds to the nearest enclosing
// EarlyOption runner, which converts the unwind into None.
// Calling Early on None outside a runner panics with the early signal.
func (o Option[T]) Early() T {
	if !o.some {
		panic(earlyNone{})
	}
	return o.value
}

// Iter returns a sequence yielding the contained value, if present.
// The sequence is finite (zero or one elements) and restartable.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// MapOption applies a function to the contained value.
// None maps to None without invoking the function.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// MapOptionOr folds the Option into a plain value: the function applied
// to the contained value, or the default.
func MapOptionOr[T, U any](o Option[T], def U, f func(T) U) U {
	if o.some {
		return f(o.value)
	}
	return def
}

// MapOptionOrElse is MapOptionOr with a lazily computed default.
func MapOptionOrElse[T, U any](o Option[T], def func() U, f func(T) U) U {
	if o.some {
		return f(o.value)
	}
	return def()
}

// AndOption returns other if o is Some, otherwise None.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if o.some {
		return other
	}
	return None[U]()
}

// AndThenOption sequences two optional computations (monadic bind).
// None short-circuits without invoking the function; the function's
// result is returned directly, not re-wrapped.
func AndThenOption[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}

// Pair is a tuple of two values, produced by ZipOption and split by
// UnzipOption.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// ZipOption pairs two Options: Some of the pair if both are Some,
// otherwise None.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	if a.some && b.some {
		return Some(Pair[A, B]{Fst: a.value, Snd: b.value})
	}
	return None[Pair[A, B]]()
}

// ZipOptionWith combines two Options with a function: Some of the
// combined value if both are Some, otherwise None.
func ZipOptionWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	if a.some && b.some {
		return Some(f(a.value, b.value))
	}
	return None[C]()
}

// UnzipOption splits an Option of a pair into a pair of Options.
// Both are None if the input is None.
func UnzipOption[A, B any](o Option[Pair[A, B]]) (Option[A], Option[B]) {
	if o.some {
		return Some(o.value.Fst), Some(o.value.Snd)
	}
	return None[A](), None[B]()
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	return AndThenOption(o, func(inner Option[T]) Option[T] { return inner })
}

// OptionContains returns true if the Option is Some and the contained
// value equals the given value.
func OptionContains[T comparable](o Option[T], value T) bool {
	return o.some && o.value == value
}

// OkOr converts the Option to a Result, using the given error as the
// Err payload on None.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err)
}

// OkOrElse is OkOr with a lazily computed error.
func OkOrElse[T, E any](o Option[T], err func() E) Result[T, E] {
	if o.some {
		return Ok[T, E](o.value)
	}
	return Err[T, E](err())
}
