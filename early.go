// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import "context"

// Early-return propagation.
//
// Option.Early and Result.Early unwind with an internal signal that
// only the matching runner recovers. The runner converts the signal
// into None or Err; any other panic is re-raised unchanged. A signal
// escaping without a runner surfaces as a panic whose value carries a
// message naming the missing runner.

// earlyNone is the signal raised by Option.Early on a None value.
type earlyNone struct{}

func (earlyNone) Error() string {
	return "wrap: Early called on a None value outside an EarlyOption runner"
}

// earlyErr is the signal raised by Result.Early on an Err value.
// It carries the original error payload for the runner to re-wrap.
type earlyErr struct {
	err any
}

func (earlyErr) Error() string {
	return "wrap: Early called on an Err value outside an EarlyResult runner"
}

// EarlyOption runs the body, converting an Option early-return signal
// into None. Any other panic propagates unchanged.
func EarlyOption[T any](body func() Option[T]) (result Option[T]) {
	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(earlyNone); ok {
				result = None[T]()
				return
			}
			panic(p)
		}
	}()
	return body()
}

// EarlyResult runs the body, converting a Result early-return signal
// into Err with the carried payload. A signal whose payload is not of
// type E belongs to a different runner and propagates unchanged, as
// does any other panic.
func EarlyResult[T, E any](body func() Result[T, E]) (result Result[T, E]) {
	defer func() {
		if p := recover(); p != nil {
			if early, ok := p.(earlyErr); ok {
				if err, ok := early.err.(E); ok {
					result = Err[T, E](err)
					return
				}
			}
			panic(p)
		}
	}()
	return body()
}

// EarlyOptionFunc decorates a one-argument Option-returning function
// with an EarlyOption runner.
func EarlyOptionFunc[A, T any](fn func(A) Option[T]) func(A) Option[T] {
	return func(a A) Option[T] {
		return EarlyOption(func() Option[T] { return fn(a) })
	}
}

// EarlyResultFunc decorates a one-argument Result-returning function
// with an EarlyResult runner.
func EarlyResultFunc[A, T, E any](fn func(A) Result[T, E]) func(A) Result[T, E] {
	return func(a A) Result[T, E] {
		return EarlyResult(func() Result[T, E] { return fn(a) })
	}
}

// EarlyFutureOption wraps an asynchronous body in a lazy future whose
// computation runs under an EarlyOption runner.
func EarlyFutureOption[T any](body func(context.Context) Option[T]) FutureOption[T] {
	return NewFutureOption(func(ctx context.Context) (Option[T], error) {
		return EarlyOption(func() Option[T] { return body(ctx) }), nil
	})
}

// EarlyFutureResult wraps an asynchronous body in a lazy future whose
// computation runs under an EarlyResult runner.
func EarlyFutureResult[T, E any](body func(context.Context) Result[T, E]) FutureResult[T, E] {
	return NewFutureResult(func(ctx context.Context) (Result[T, E], error) {
		return EarlyResult(func() Result[T, E] { return body(ctx) }), nil
	})
}
