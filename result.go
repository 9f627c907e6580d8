// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "iter"

// Result represents either success (Ok, carrying a value of type T) or
// failure (Err, carrying an error payload of type E).
//
// The payload types are opaque: combinators never inspect or mutate
// them except where caller-supplied functions are invoked on them.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result containing the given value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err creates a failed Result containing the given error payload.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsOk returns true if the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd returns true if the Result is Ok and the predicate holds for
// the contained value. The predicate is not invoked on Err.
func (r Result[T, E]) IsOkAnd(predicate func(T) bool) bool {
	return r.ok && predicate(r.value)
}

// IsErrAnd returns true if the Result is Err and the predicate holds
// for the error payload. The predicate is not invoked on Ok.
func (r Result[T, E]) IsErrAnd(predicate func(E) bool) bool {
	return !r.ok && predicate(r.err)
}

// Get returns the success value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the error payload and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unwrap returns the success value.
// Panics if the Result is Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic("wrap: called Unwrap on an Err value")
	}
	return r.value
}

// UnwrapErr returns the error payload.
// Panics if the Result is Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("wrap: called UnwrapErr on an Ok value")
	}
	return r.err
}

// Expect returns the success value.
// Panics with the given message if the Result is Err.
func (r Result[T, E]) Expect(message string) T {
	if !r.ok {
		panic(message)
	}
	return r.value
}

// ExpectErr returns the error payload.
// Panics with the given message if the Result is Ok.
func (r Result[T, E]) ExpectErr(message string) E {
	if r.ok {
		panic(message)
	}
	return r.err
}

// UnwrapOr returns the success value, or the given default.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.ok {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or computes a default.
// The thunk is only invoked on Err.
func (r Result[T, E]) UnwrapOrElse(def func() T) T {
	if r.ok {
		return r.value
	}
	return def()
}

// UnwrapErrOr returns the error payload, or the given default.
func (r Result[T, E]) UnwrapErrOr(def E) E {
	if r.ok {
		return def
	}
	return r.err
}

// UnwrapErrOrElse returns the error payload, or computes a default.
// The thunk is only invoked on Ok.
func (r Result[T, E]) UnwrapErrOrElse(def func() E) E {
	if r.ok {
		return def()
	}
	return r.err
}

// Value converts the success side to an Option, discarding the error.
func (r Result[T, E]) Value() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Error converts the failure side to an Option, discarding the value.
func (r Result[T, E]) Error() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// IntoEither converts the Result to an Either: Ok maps to Left, Err
// maps to Right.
func (r Result[T, E]) IntoEither() Either[T, E] {
	if r.ok {
		return Left[T, E](r.value)
	}
	return Right[T, E](r.err)
}

// Flip swaps the success and failure sides.
// Flip is an involution: r.Flip().Flip() == r.
func (r Result[T, E]) Flip() Result[E, T] {
	if r.ok {
		return Err[E, T](r.value)
	}
	return Ok[E, T](r.err)
}

// Inspect calls the function with the success value, if any, and
// returns the Result unchanged.
func (r Result[T, E]) Inspect(f func(T)) Result[T, E] {
	if r.ok {
		f(r.value)
	}
	return r
}

// InspectErr calls the function with the error payload, if any, and
// returns the Result unchanged.
func (r Result[T, E]) InspectErr(f func(E)) Result[T, E] {
	if !r.ok {
		f(r.err)
	}
	return r
}

// Or returns the Result if it is Ok, otherwise the other Result.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// Early returns the success value, or unwinds to the nearest enclosing
// EarlyResult runner, which converts the unwind into Err with the
// original payload.
// Calling Early on Err outside a runner panics with the early signal.
func (r Result[T, E]) Early() T {
	if !r.ok {
		panic(earlyErr{err: r.err})
	}
	return r.value
}

// Iter returns a sequence yielding the success value, if any.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// IterErr returns a sequence yielding the error payload, if any.
func (r Result[T, E]) IterErr() iter.Seq[E] {
	return func(yield func(E) bool) {
		if !r.ok {
			yield(r.err)
		}
	}
}

// MapResult applies a function to the success value, leaving a failure
// untouched. The function is not invoked on Err.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Err[U, E](r.err)
}

// MapResultOr folds the Result into a plain value: the function applied
// to the success value, or the default.
func MapResultOr[T, U, E any](r Result[T, E], def U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def
}

// MapResultOrElse is MapResultOr with a lazily computed default.
func MapResultOrElse[T, U, E any](r Result[T, E], def func() U, f func(T) U) U {
	if r.ok {
		return f(r.value)
	}
	return def()
}

// MapErr applies a function to the error payload, leaving a success
// untouched. The function is not invoked on Ok.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// AndResult returns other if r is Ok, otherwise the failure of r.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if r.ok {
		return other
	}
	return Err[U, E](r.err)
}

// AndThenResult sequences two fallible computations (monadic bind).
// Err short-circuits without invoking the function; the function's
// result is returned directly, not re-wrapped.
func AndThenResult[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Err[U, E](r.err)
}

// OrElseResult recovers from a failure (recovery bind): Ok passes
// through, Err is handed to the function, which may produce a Result
// with a different error type. The function is not invoked on Ok.
func OrElseResult[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

// ResultContains returns true if the Result is Ok and the success value
// equals the given value.
func ResultContains[T comparable, E any](r Result[T, E], value T) bool {
	return r.ok && r.value == value
}

// ResultContainsErr returns true if the Result is Err and the error
// payload equals the given value.
func ResultContainsErr[T any, E comparable](r Result[T, E], err E) bool {
	return !r.ok && r.err == err
}

// IntoOkOrErr returns the payload of a homogeneous Result regardless of
// variant. It is a total unwrap for the T = E case.
func IntoOkOrErr[T any](r Result[T, T]) T {
	if r.ok {
		return r.value
	}
	return r.err
}

// Raising converts the Result back into ordinary Go error flow:
// the success value on Ok, or the contained error on Err.
func Raising[T any, E error](r Result[T, E]) (T, error) {
	if r.ok {
		return r.value, nil
	}
	var zero T
	return zero, r.err
}
