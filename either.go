// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "iter"

// Either represents a value of one of two variants, Left or Right.
//
// Either is fully symmetric: neither variant is privileged as success
// or failure, and every Left operation has a Right mirror. IntoResult
// maps Left to Ok by convention; callers needing the opposite Flip
// first.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a Left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either holding a Right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeftAnd returns true if this is a Left value and the predicate
// holds for it. The predicate is not invoked on Right.
func (e Either[L, R]) IsLeftAnd(predicate func(L) bool) bool {
	return !e.isRight && predicate(e.left)
}

// IsRightAnd returns true if this is a Right value and the predicate
// holds for it. The predicate is not invoked on Left.
func (e Either[L, R]) IsRightAnd(predicate func(R) bool) bool {
	return e.isRight && predicate(e.right)
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// UnwrapLeft returns the Left value.
// Panics if this is a Right value.
func (e Either[L, R]) UnwrapLeft() L {
	if e.isRight {
		panic("wrap: called UnwrapLeft on a Right value")
	}
	return e.left
}

// UnwrapRight returns the Right value.
// Panics if this is a Left value.
func (e Either[L, R]) UnwrapRight() R {
	if !e.isRight {
		panic("wrap: called UnwrapRight on a Left value")
	}
	return e.right
}

// ExpectLeft returns the Left value.
// Panics with the given message if this is a Right value.
func (e Either[L, R]) ExpectLeft(message string) L {
	if e.isRight {
		panic(message)
	}
	return e.left
}

// ExpectRight returns the Right value.
// Panics with the given message if this is a Left value.
func (e Either[L, R]) ExpectRight(message string) R {
	if !e.isRight {
		panic(message)
	}
	return e.right
}

// LeftOr returns the Left value, or the given default.
func (e Either[L, R]) LeftOr(def L) L {
	if e.isRight {
		return def
	}
	return e.left
}

// RightOr returns the Right value, or the given default.
func (e Either[L, R]) RightOr(def R) R {
	if e.isRight {
		return e.right
	}
	return def
}

// LeftOrElse returns the Left value, or computes a default.
// The thunk is only invoked on Right.
func (e Either[L, R]) LeftOrElse(def func() L) L {
	if e.isRight {
		return def()
	}
	return e.left
}

// RightOrElse returns the Right value, or computes a default.
// The thunk is only invoked on Left.
func (e Either[L, R]) RightOrElse(def func() R) R {
	if e.isRight {
		return e.right
	}
	return def()
}

// LeftOption converts the Left side to an Option.
func (e Either[L, R]) LeftOption() Option[L] {
	if e.isRight {
		return None[L]()
	}
	return Some(e.left)
}

// RightOption converts the Right side to an Option.
func (e Either[L, R]) RightOption() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// InspectLeft calls the function with the Left value, if any, and
// returns the Either unchanged.
func (e Either[L, R]) InspectLeft(f func(L)) Either[L, R] {
	if !e.isRight {
		f(e.left)
	}
	return e
}

// InspectRight calls the function with the Right value, if any, and
// returns the Either unchanged.
func (e Either[L, R]) InspectRight(f func(R)) Either[L, R] {
	if e.isRight {
		f(e.right)
	}
	return e
}

// Flip swaps the Left and Right sides.
func (e Either[L, R]) Flip() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// IntoResult converts the Either to a Result: Left maps to Ok, Right
// maps to Err.
func (e Either[L, R]) IntoResult() Result[L, R] {
	if e.isRight {
		return Err[L, R](e.right)
	}
	return Ok[L, R](e.left)
}

// IterLeft returns a sequence yielding the Left value, if any.
func (e Either[L, R]) IterLeft() iter.Seq[L] {
	return func(yield func(L) bool) {
		if !e.isRight {
			yield(e.left)
		}
	}
}

// IterRight returns a sequence yielding the Right value, if any.
func (e Either[L, R]) IterRight() iter.Seq[R] {
	return func(yield func(R) bool) {
		if e.isRight {
			yield(e.right)
		}
	}
}

// MapLeft applies a function to the Left value, leaving a Right value
// untouched.
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return Left[M, R](f(e.left))
}

// MapRight applies a function to the Right value, leaving a Left value
// untouched.
func MapRight[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	if e.isRight {
		return Right[L, S](f(e.right))
	}
	return Left[L, S](e.left)
}

// MapEither applies a function to whichever value a homogeneous Either
// holds, preserving the variant.
func MapEither[T, U any](e Either[T, T], f func(T) U) Either[U, U] {
	if e.isRight {
		return Right[U, U](f(e.right))
	}
	return Left[U, U](f(e.left))
}

// LeftAndThen sequences on the Left side (monadic bind): Right passes
// through, Left is handed to the function.
func LeftAndThen[L, M, R any](e Either[L, R], f func(L) Either[M, R]) Either[M, R] {
	if e.isRight {
		return Right[M, R](e.right)
	}
	return f(e.left)
}

// RightAndThen sequences on the Right side (monadic bind): Left passes
// through, Right is handed to the function.
func RightAndThen[L, R, S any](e Either[L, R], f func(R) Either[L, S]) Either[L, S] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, S](e.left)
}

// Fold collapses both branches into a common type by applying whichever
// function matches the active variant.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// EitherValue returns the payload of a homogeneous Either regardless of
// variant.
func EitherValue[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}

// FlattenLeft removes one level of nesting on the Left side.
func FlattenLeft[L, R any](e Either[Either[L, R], R]) Either[L, R] {
	if e.isRight {
		return Right[L, R](e.right)
	}
	return e.left
}

// FlattenRight removes one level of nesting on the Right side.
func FlattenRight[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	if e.isRight {
		return e.right
	}
	return Left[L, R](e.left)
}

// ContainsLeft returns true if this is a Left value equal to the given
// value.
func ContainsLeft[L comparable, R any](e Either[L, R], value L) bool {
	return !e.isRight && e.left == value
}

// ContainsRight returns true if this is a Right value equal to the
// given value.
func ContainsRight[L any, R comparable](e Either[L, R], value R) bool {
	return e.isRight && e.right == value
}

// EitherContains returns true if a homogeneous Either holds the given
// value in either variant.
func EitherContains[T comparable](e Either[T, T], value T) bool {
	return EitherValue(e) == value
}
