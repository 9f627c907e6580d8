// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import (
	"context"
	"sync"
)

// Future wraps a one-shot computation so it can be awaited any number
// of times. The first successful Await runs the computation and caches
// its value; later Awaits return the cached value without re-running
// it.
//
// The state machine is Pending → Resolved, one-directional. A non-nil
// error from the computation does not resolve the future: the cache
// stays pending and the next Await re-attempts the computation.
//
// The mutex claims the check-then-write of the cache slot, so the
// at-most-once guarantee also holds for concurrent Awaits.
type Future[T any] struct {
	mu      sync.Mutex
	compute func(context.Context) (T, error)
	cached  Option[T]
}

// NewFuture wraps a computation. The computation does not run until the
// first Await.
func NewFuture[T any](compute func(context.Context) (T, error)) *Future[T] {
	return &Future[T]{compute: compute}
}

// FutureOf creates an already resolved Future.
func FutureOf[T any](value T) *Future[T] {
	return &Future[T]{cached: Some(value)}
}

// FutureErr creates a Future whose computation always fails with the
// given error. It never resolves.
func FutureErr[T any](err error) *Future[T] {
	return NewFuture(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// Await drives the computation to completion on first use and returns
// the cached value on every later use.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if value, ok := f.cached.Get(); ok {
		return value, nil
	}
	value, err := f.compute(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	f.cached = Some(value)
	return value, nil
}

// Result exposes the cache slot read-only: None while pending, Some
// once resolved. It never forces evaluation.
func (f *Future[T]) Result() Option[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cached
}

// MapFuture applies a pure function to the awaited value. The returned
// Future is lazy and re-awaits the same underlying cache, so the
// original computation still runs at most once.
func MapFuture[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return NewFuture(func(ctx context.Context) (U, error) {
		value, err := f.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(value), nil
	})
}

// BindFuture sequences an asynchronous continuation after the awaited
// value (monadic bind).
func BindFuture[T, U any](f *Future[T], fn func(context.Context, T) (U, error)) *Future[U] {
	return NewFuture(func(ctx context.Context) (U, error) {
		value, err := f.Await(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return fn(ctx, value)
	})
}

// ThenFuture sequences two futures, discarding the first value.
func ThenFuture[T, U any](f *Future[T], next *Future[U]) *Future[U] {
	return NewFuture(func(ctx context.Context) (U, error) {
		if _, err := f.Await(ctx); err != nil {
			var zero U
			return zero, err
		}
		return next.Await(ctx)
	})
}
