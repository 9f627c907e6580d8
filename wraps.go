// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap

import (
	"context"
	"errors"
	"fmt"
)

// Decorators converting plain fallible functions into container-valued
// functions.
//
// Go has two failure channels, so both are covered: the Wrap* family
// adapts (T, error) returns, narrowing by error type where asked, and
// the Catching family recovers panics. The allow-list rule holds
// throughout: a failure that does not match the configured type
// propagates unchanged.

// WrapResult adapts a fallible function into one returning a Result:
// a nil error wraps the value in Ok, a non-nil error wraps in Err.
func WrapResult[A, T any](fn func(A) (T, error)) func(A) Result[T, error] {
	return func(a A) Result[T, error] {
		value, err := fn(a)
		if err != nil {
			return Err[T, error](err)
		}
		return Ok[T, error](value)
	}
}

// WrapOption adapts a fallible function into one returning an Option,
// discarding the error.
func WrapOption[A, T any](fn func(A) (T, error)) func(A) Option[T] {
	return func(a A) Option[T] {
		value, err := fn(a)
		if err != nil {
			return None[T]()
		}
		return Some(value)
	}
}

// WrapResultOn adapts a fallible function into one returning a Result
// with a typed error payload. Only errors matching E (via errors.As)
// are converted to Err; any other error propagates as a panic.
func WrapResultOn[E error, A, T any](fn func(A) (T, error)) func(A) Result[T, E] {
	return func(a A) Result[T, E] {
		value, err := fn(a)
		if err == nil {
			return Ok[T, E](value)
		}
		var target E
		if errors.As(err, &target) {
			return Err[T, E](target)
		}
		panic(err)
	}
}

// WrapOptionOn is WrapResultOn discarding the matched error. Only
// errors matching E turn into None; any other error propagates as a
// panic.
func WrapOptionOn[E error, A, T any](fn func(A) (T, error)) func(A) Option[T] {
	return func(a A) Option[T] {
		value, err := fn(a)
		if err == nil {
			return Some(value)
		}
		var target E
		if errors.As(err, &target) {
			return None[T]()
		}
		panic(err)
	}
}

// Catching runs the function, recovering a panic into Err. A recovered
// error value is used directly; any other value is wrapped. Early
// signals are not caught; they belong to their runners.
func Catching[T any](fn func() T) (result Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			switch p.(type) {
			case earlyNone, earlyErr:
				panic(p)
			}
			if err, ok := p.(error); ok {
				result = Err[T, error](err)
				return
			}
			result = Err[T, error](fmt.Errorf("wrap: recovered panic: %v", p))
		}
	}()
	return Ok[T, error](fn())
}

// CatchingOption runs the function, recovering a panic into None.
// Early signals are not caught; they belong to their runners.
func CatchingOption[T any](fn func() T) (result Option[T]) {
	defer func() {
		if p := recover(); p != nil {
			switch p.(type) {
			case earlyNone, earlyErr:
				panic(p)
			}
			result = None[T]()
		}
	}()
	return Some(fn())
}

// WrapFutureResult adapts an asynchronous fallible function into one
// returning a lazy FutureResult. The function does not run until the
// future is awaited; its error becomes the Err payload, not an await
// failure.
func WrapFutureResult[A, T any](fn func(context.Context, A) (T, error)) func(A) FutureResult[T, error] {
	return func(a A) FutureResult[T, error] {
		return NewFutureResult(func(ctx context.Context) (Result[T, error], error) {
			value, err := fn(ctx, a)
			if err != nil {
				return Err[T, error](err), nil
			}
			return Ok[T, error](value), nil
		})
	}
}

// WrapFutureOption adapts an asynchronous fallible function into one
// returning a lazy FutureOption, discarding the error.
func WrapFutureOption[A, T any](fn func(context.Context, A) (T, error)) func(A) FutureOption[T] {
	return func(a A) FutureOption[T] {
		return NewFutureOption(func(ctx context.Context) (Option[T], error) {
			value, err := fn(ctx, a)
			if err != nil {
				return None[T](), nil
			}
			return Some(value), nil
		})
	}
}
