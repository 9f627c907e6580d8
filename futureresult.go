// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "context"

// FutureResult is a Future resolving to a Result, re-exposing the
// Result combinator surface in asynchronous form. Combinators are lazy
// and share the underlying cache, so the original computation runs at
// most once across the whole chain.
type FutureResult[T, E any] struct {
	fut *Future[Result[T, E]]
}

// NewFutureResult wraps a Result-producing computation.
func NewFutureResult[T, E any](compute func(context.Context) (Result[T, E], error)) FutureResult[T, E] {
	return FutureResult[T, E]{fut: NewFuture(compute)}
}

// FutureOk creates a resolved successful FutureResult.
func FutureOk[T, E any](value T) FutureResult[T, E] {
	return FutureResultOf(Ok[T, E](value))
}

// FutureFail creates a resolved failed FutureResult.
func FutureFail[T, E any](err E) FutureResult[T, E] {
	return FutureResultOf(Err[T, E](err))
}

// FutureResultOf creates a resolved FutureResult from a Result.
func FutureResultOf[T, E any](r Result[T, E]) FutureResult[T, E] {
	return FutureResult[T, E]{fut: FutureOf(r)}
}

// Await resolves the underlying future and returns the Result.
func (f FutureResult[T, E]) Await(ctx context.Context) (Result[T, E], error) {
	return f.fut.Await(ctx)
}

// Result exposes the cache slot read-only: None while pending, Some of
// the resolved Result once resolved.
func (f FutureResult[T, E]) Result() Option[Result[T, E]] {
	return f.fut.Result()
}

// Inspect calls the function with the awaited success value, if any.
func (f FutureResult[T, E]) Inspect(fn func(T)) FutureResult[T, E] {
	return NewFutureResult(func(ctx context.Context) (Result[T, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return r, err
		}
		return r.Inspect(fn), nil
	})
}

// InspectErr calls the function with the awaited error payload, if any.
func (f FutureResult[T, E]) InspectErr(fn func(E)) FutureResult[T, E] {
	return NewFutureResult(func(ctx context.Context) (Result[T, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return r, err
		}
		return r.InspectErr(fn), nil
	})
}

// UnwrapOr awaits and returns the success value, or the default.
func (f FutureResult[T, E]) UnwrapOr(ctx context.Context, def T) (T, error) {
	r, err := f.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return r.UnwrapOr(def), nil
}

// Flip swaps the success and failure sides of the awaited Result.
func (f FutureResult[T, E]) Flip() FutureResult[E, T] {
	return NewFutureResult(func(ctx context.Context) (Result[E, T], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[E, T]{}, err
		}
		return r.Flip(), nil
	})
}

// MapFutureResult applies a pure function to the awaited success value.
func MapFutureResult[T, U, E any](f FutureResult[T, E], fn func(T) U) FutureResult[U, E] {
	return NewFutureResult(func(ctx context.Context) (Result[U, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		return MapResult(r, fn), nil
	})
}

// MapFutureResultAsync is MapFutureResult with an awaited function.
func MapFutureResultAsync[T, U, E any](f FutureResult[T, E], fn func(context.Context, T) (U, error)) FutureResult[U, E] {
	return NewFutureResult(func(ctx context.Context) (Result[U, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		value, ok := r.Get()
		if !ok {
			return Err[U, E](r.UnwrapErr()), nil
		}
		mapped, err := fn(ctx, value)
		if err != nil {
			return Result[U, E]{}, err
		}
		return Ok[U, E](mapped), nil
	})
}

// MapFutureErr applies a pure function to the awaited error payload.
func MapFutureErr[T, E, F any](f FutureResult[T, E], fn func(E) F) FutureResult[T, F] {
	return NewFutureResult(func(ctx context.Context) (Result[T, F], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[T, F]{}, err
		}
		return MapErr(r, fn), nil
	})
}

// AndThenFutureResult sequences a fallible computation after the
// awaited success value (monadic bind). Err short-circuits without
// invoking the function.
func AndThenFutureResult[T, U, E any](f FutureResult[T, E], fn func(T) Result[U, E]) FutureResult[U, E] {
	return NewFutureResult(func(ctx context.Context) (Result[U, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		return AndThenResult(r, fn), nil
	})
}

// AndThenFutureResultAsync is AndThenFutureResult with an awaited
// function.
func AndThenFutureResultAsync[T, U, E any](f FutureResult[T, E], fn func(context.Context, T) (Result[U, E], error)) FutureResult[U, E] {
	return NewFutureResult(func(ctx context.Context) (Result[U, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[U, E]{}, err
		}
		value, ok := r.Get()
		if !ok {
			return Err[U, E](r.UnwrapErr()), nil
		}
		return fn(ctx, value)
	})
}

// OrElseFutureResult recovers from an awaited failure (recovery bind).
// The function is not invoked on Ok.
func OrElseFutureResult[T, E, F any](f FutureResult[T, E], fn func(E) Result[T, F]) FutureResult[T, F] {
	return NewFutureResult(func(ctx context.Context) (Result[T, F], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Result[T, F]{}, err
		}
		return OrElseResult(r, fn), nil
	})
}

// ValueFuture converts the success side to a FutureOption, discarding
// the error.
func ValueFuture[T, E any](f FutureResult[T, E]) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return None[T](), err
		}
		return r.Value(), nil
	})
}

// IntoEitherFuture converts to a FutureEither: Ok maps to Left, Err
// maps to Right.
func IntoEitherFuture[T, E any](f FutureResult[T, E]) FutureEither[T, E] {
	return NewFutureEither(func(ctx context.Context) (Either[T, E], error) {
		r, err := f.Await(ctx)
		if err != nil {
			return Either[T, E]{}, err
		}
		return r.IntoEither(), nil
	})
}
