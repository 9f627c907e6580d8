// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "context"

// FutureOption is a Future resolving to an Option, re-exposing the
// Option combinator surface in asynchronous form. Every combinator
// returns a new wrapper whose computation awaits the shared underlying
// cache and then applies the synchronous combinator; no work happens
// until the resulting wrapper is awaited.
type FutureOption[T any] struct {
	fut *Future[Option[T]]
}

// NewFutureOption wraps an Option-producing computation.
func NewFutureOption[T any](compute func(context.Context) (Option[T], error)) FutureOption[T] {
	return FutureOption[T]{fut: NewFuture(compute)}
}

// FutureSome creates a resolved FutureOption holding a value.
func FutureSome[T any](value T) FutureOption[T] {
	return FutureOptionOf(Some(value))
}

// FutureNone creates a resolved empty FutureOption.
func FutureNone[T any]() FutureOption[T] {
	return FutureOptionOf(None[T]())
}

// FutureOptionOf creates a resolved FutureOption from an Option.
func FutureOptionOf[T any](o Option[T]) FutureOption[T] {
	return FutureOption[T]{fut: FutureOf(o)}
}

// Await resolves the underlying future and returns the Option.
func (f FutureOption[T]) Await(ctx context.Context) (Option[T], error) {
	return f.fut.Await(ctx)
}

// Result exposes the cache slot read-only: None while pending, Some of
// the resolved Option once resolved.
func (f FutureOption[T]) Result() Option[Option[T]] {
	return f.fut.Result()
}

// Filter keeps the awaited value only if the predicate holds for it.
func (f FutureOption[T]) Filter(predicate func(T) bool) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[T](), err
		}
		return o.Filter(predicate), nil
	})
}

// FilterAsync is Filter with an awaited predicate. Suspension occurs
// only at the predicate invocation, never inside the state transition.
func (f FutureOption[T]) FilterAsync(predicate func(context.Context, T) (bool, error)) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[T](), err
		}
		value, ok := o.Get()
		if !ok {
			return None[T](), nil
		}
		keep, err := predicate(ctx, value)
		if err != nil {
			return None[T](), err
		}
		if !keep {
			return None[T](), nil
		}
		return o, nil
	})
}

// OrElse substitutes a fallback Option when the awaited Option is None.
// The thunk is only invoked on None.
func (f FutureOption[T]) OrElse(def func() Option[T]) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[T](), err
		}
		return o.OrElse(def), nil
	})
}

// Inspect calls the function with the awaited value, if present.
func (f FutureOption[T]) Inspect(fn func(T)) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[T](), err
		}
		return o.Inspect(fn), nil
	})
}

// UnwrapOr awaits and returns the contained value, or the default.
func (f FutureOption[T]) UnwrapOr(ctx context.Context, def T) (T, error) {
	o, err := f.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return o.UnwrapOr(def), nil
}

// MapFutureOption applies a pure function to the awaited value, if
// present.
func MapFutureOption[T, U any](f FutureOption[T], fn func(T) U) FutureOption[U] {
	return NewFutureOption(func(ctx context.Context) (Option[U], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[U](), err
		}
		return MapOption(o, fn), nil
	})
}

// MapFutureOptionAsync is MapFutureOption with an awaited function.
func MapFutureOptionAsync[T, U any](f FutureOption[T], fn func(context.Context, T) (U, error)) FutureOption[U] {
	return NewFutureOption(func(ctx context.Context) (Option[U], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[U](), err
		}
		value, ok := o.Get()
		if !ok {
			return None[U](), nil
		}
		mapped, err := fn(ctx, value)
		if err != nil {
			return None[U](), err
		}
		return Some(mapped), nil
	})
}

// AndThenFutureOption sequences an optional computation after the
// awaited value (monadic bind). None short-circuits without invoking
// the function.
func AndThenFutureOption[T, U any](f FutureOption[T], fn func(T) Option[U]) FutureOption[U] {
	return NewFutureOption(func(ctx context.Context) (Option[U], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[U](), err
		}
		return AndThenOption(o, fn), nil
	})
}

// AndThenFutureOptionAsync is AndThenFutureOption with an awaited
// function.
func AndThenFutureOptionAsync[T, U any](f FutureOption[T], fn func(context.Context, T) (Option[U], error)) FutureOption[U] {
	return NewFutureOption(func(ctx context.Context) (Option[U], error) {
		o, err := f.Await(ctx)
		if err != nil {
			return None[U](), err
		}
		value, ok := o.Get()
		if !ok {
			return None[U](), nil
		}
		return fn(ctx, value)
	})
}

// ZipFutureOption pairs two awaited Options: Some of the pair if both
// resolve to Some, otherwise None.
func ZipFutureOption[A, B any](a FutureOption[A], b FutureOption[B]) FutureOption[Pair[A, B]] {
	return NewFutureOption(func(ctx context.Context) (Option[Pair[A, B]], error) {
		oa, err := a.Await(ctx)
		if err != nil {
			return None[Pair[A, B]](), err
		}
		ob, err := b.Await(ctx)
		if err != nil {
			return None[Pair[A, B]](), err
		}
		return ZipOption(oa, ob), nil
	})
}

// OkOrFuture converts to a FutureResult, using the given error as the
// Err payload when the awaited Option is None.
func OkOrFuture[T, E any](f FutureOption[T], err E) FutureResult[T, E] {
	return NewFutureResult(func(ctx context.Context) (Result[T, E], error) {
		o, awaitErr := f.Await(ctx)
		if awaitErr != nil {
			return Err[T, E](err), awaitErr
		}
		return OkOr(o, err), nil
	})
}
