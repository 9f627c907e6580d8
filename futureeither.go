// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "context"

// FutureEither is a Future resolving to an Either, re-exposing the
// symmetric combinator surface in asynchronous form.
type FutureEither[L, R any] struct {
	fut *Future[Either[L, R]]
}

// NewFutureEither wraps an Either-producing computation.
func NewFutureEither[L, R any](compute func(context.Context) (Either[L, R], error)) FutureEither[L, R] {
	return FutureEither[L, R]{fut: NewFuture(compute)}
}

// FutureLeft creates a resolved FutureEither holding a Left value.
func FutureLeft[L, R any](value L) FutureEither[L, R] {
	return FutureEitherOf(Left[L, R](value))
}

// FutureRight creates a resolved FutureEither holding a Right value.
func FutureRight[L, R any](value R) FutureEither[L, R] {
	return FutureEitherOf(Right[L, R](value))
}

// FutureEitherOf creates a resolved FutureEither from an Either.
func FutureEitherOf[L, R any](e Either[L, R]) FutureEither[L, R] {
	return FutureEither[L, R]{fut: FutureOf(e)}
}

// Await resolves the underlying future and returns the Either.
func (f FutureEither[L, R]) Await(ctx context.Context) (Either[L, R], error) {
	return f.fut.Await(ctx)
}

// Result exposes the cache slot read-only: None while pending, Some of
// the resolved Either once resolved.
func (f FutureEither[L, R]) Result() Option[Either[L, R]] {
	return f.fut.Result()
}

// InspectLeft calls the function with the awaited Left value, if any.
func (f FutureEither[L, R]) InspectLeft(fn func(L)) FutureEither[L, R] {
	return NewFutureEither(func(ctx context.Context) (Either[L, R], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return e, err
		}
		return e.InspectLeft(fn), nil
	})
}

// InspectRight calls the function with the awaited Right value, if any.
func (f FutureEither[L, R]) InspectRight(fn func(R)) FutureEither[L, R] {
	return NewFutureEither(func(ctx context.Context) (Either[L, R], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return e, err
		}
		return e.InspectRight(fn), nil
	})
}

// Flip swaps the Left and Right sides of the awaited Either.
func (f FutureEither[L, R]) Flip() FutureEither[R, L] {
	return NewFutureEither(func(ctx context.Context) (Either[R, L], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Either[R, L]{}, err
		}
		return e.Flip(), nil
	})
}

// MapFutureLeft applies a pure function to the awaited Left value.
func MapFutureLeft[L, M, R any](f FutureEither[L, R], fn func(L) M) FutureEither[M, R] {
	return NewFutureEither(func(ctx context.Context) (Either[M, R], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Either[M, R]{}, err
		}
		return MapLeft(e, fn), nil
	})
}

// MapFutureRight applies a pure function to the awaited Right value.
func MapFutureRight[L, R, S any](f FutureEither[L, R], fn func(R) S) FutureEither[L, S] {
	return NewFutureEither(func(ctx context.Context) (Either[L, S], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Either[L, S]{}, err
		}
		return MapRight(e, fn), nil
	})
}

// LeftAndThenFuture sequences on the awaited Left side (monadic bind).
func LeftAndThenFuture[L, M, R any](f FutureEither[L, R], fn func(L) Either[M, R]) FutureEither[M, R] {
	return NewFutureEither(func(ctx context.Context) (Either[M, R], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Either[M, R]{}, err
		}
		return LeftAndThen(e, fn), nil
	})
}

// RightAndThenFuture sequences on the awaited Right side (monadic
// bind).
func RightAndThenFuture[L, R, S any](f FutureEither[L, R], fn func(R) Either[L, S]) FutureEither[L, S] {
	return NewFutureEither(func(ctx context.Context) (Either[L, S], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Either[L, S]{}, err
		}
		return RightAndThen(e, fn), nil
	})
}

// FoldFuture awaits and collapses both branches into a common type.
func FoldFuture[L, R, T any](ctx context.Context, f FutureEither[L, R], onLeft func(L) T, onRight func(R) T) (T, error) {
	e, err := f.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return Fold(e, onLeft, onRight), nil
}

// IntoResultFuture converts to a FutureResult: Left maps to Ok, Right
// maps to Err.
func IntoResultFuture[L, R any](f FutureEither[L, R]) FutureResult[L, R] {
	return NewFutureResult(func(ctx context.Context) (Result[L, R], error) {
		e, err := f.Await(ctx)
		if err != nil {
			return Result[L, R]{}, err
		}
		return e.IntoResult(), nil
	})
}
