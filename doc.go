// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wrap provides algebraic container types in Go: an optional
// value, a success/failure result, a symmetric two-variant union, and
// a re-awaitable future, each with a full combinator surface, plus an
// early-return mechanism for short-circuiting container-valued
// functions.
//
// # Design Philosophy
//
// wrap provides:
//   - Closed two-variant sum types as immutable value structs
//   - O(1) combinators that short-circuit without caller branching
//   - A strict failure taxonomy: panics for contract violations,
//     container payloads for expected failures, and explicit boundary
//     operations (OrError, Raising) back into ordinary error flow
//
// Combinators never swallow failures: mapping over the inactive
// variant is a no-op that preserves the original payload unchanged.
// A caller who never unwraps never observes a panic.
//
// # Option
//
// [Option] is either Some (value present) or None:
//
//   - [Some], [None]: Constructors (the zero value is None)
//   - [Option.IsSome], [Option.IsNone], [Option.IsSomeAnd], [Option.IsNoneOr]: Predicates
//   - [Option.Get], [Option.Unwrap], [Option.Expect]: Accessors (Unwrap/Expect panic on None)
//   - [Option.UnwrapOr], [Option.UnwrapOrElse], [Option.UnwrapOrZero]: Defaults (lazy thunks)
//   - [Option.OrError], [Option.OrErrorWith]: Error-flow boundary
//   - [Option.Filter], [Option.Or], [Option.OrElse], [Option.Xor], [Option.Inspect]: Combinators
//   - [MapOption], [MapOptionOr], [MapOptionOrElse]: Functor map and folds
//   - [AndOption], [AndThenOption]: Sequencing and monadic bind
//   - [ZipOption], [ZipOptionWith], [UnzipOption], [FlattenOption]: Structure
//   - [OptionContains]: Equality on the payload
//   - [OkOr], [OkOrElse]: Conversion to Result
//   - [Option.Early]: Early-return operator (see below)
//   - [Option.Iter]: Zero-or-one element sequence
//
// # Result
//
// [Result] is either Ok (success value) or Err (error payload):
//
//   - [Ok], [Err]: Constructors
//   - [Result.IsOk], [Result.IsErr], [Result.IsOkAnd], [Result.IsErrAnd]: Predicates
//   - [Result.Get], [Result.GetErr], [Result.Unwrap], [Result.UnwrapErr],
//     [Result.Expect], [Result.ExpectErr]: Accessors (wrong-variant unwrap panics)
//   - [Result.UnwrapOr], [Result.UnwrapOrElse], [Result.UnwrapErrOr],
//     [Result.UnwrapErrOrElse]: Defaults
//   - [Result.Value], [Result.Error]: Conversion to Option
//   - [Result.IntoEither], [Result.Flip]: Conversion and involution
//   - [MapResult], [MapResultOr], [MapResultOrElse], [MapErr]: Maps and folds
//   - [AndResult], [AndThenResult], [OrElseResult]: Sequencing, bind, recovery bind
//   - [ResultContains], [ResultContainsErr]: Equality on the payloads
//   - [IntoOkOrErr]: Total unwrap for the homogeneous case
//   - [Raising]: Error-flow boundary for error-typed payloads
//   - [Result.Early]: Early-return operator
//   - [Result.Iter], [Result.IterErr]: Per-side sequences
//
// # Either
//
// [Either] is fully symmetric: every Left operation has a Right mirror
// and no variant is privileged.
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight], [Either.IsLeftAnd], [Either.IsRightAnd]: Predicates
//   - [Either.GetLeft], [Either.GetRight], [Either.UnwrapLeft], [Either.UnwrapRight],
//     [Either.ExpectLeft], [Either.ExpectRight]: Accessors
//   - [Either.LeftOr], [Either.RightOr], [Either.LeftOrElse], [Either.RightOrElse]: Defaults
//   - [Either.LeftOption], [Either.RightOption]: Conversion to Option
//   - [MapLeft], [MapRight], [MapEither]: Per-side and homogeneous maps
//   - [LeftAndThen], [RightAndThen]: Per-side binds
//   - [Fold], [EitherValue]: Collapsing both branches
//   - [FlattenLeft], [FlattenRight]: Structure
//   - [ContainsLeft], [ContainsRight], [EitherContains]: Equality
//   - [Either.Flip], [Either.IntoResult]: Conversion (Left maps to Ok)
//   - [Either.IterLeft], [Either.IterRight]: Per-side sequences
//
// # Early Return
//
// [Option.Early] and [Result.Early] unwind out of the enclosing runner
// with an internal signal; the runner converts the signal into None or
// Err. The signal is scoped to the runner's call frame: raising it
// without a matching runner surfaces as a panic naming the missing
// runner, and any unrelated panic passes through runners unchanged.
//
//   - [EarlyOption], [EarlyResult]: Runners
//   - [EarlyOptionFunc], [EarlyResultFunc]: Decorator-shaped runners
//   - [EarlyFutureOption], [EarlyFutureResult]: Asynchronous runners
//
// # Futures
//
// [Future] wraps a one-shot computation so it can be awaited any
// number of times. The state machine is Pending → Resolved, once and
// irreversibly: the first successful [Future.Await] runs the
// computation and caches the value; later awaits return the cache.
// A failed computation is not cached; the next await re-attempts it.
// [Future.Result] inspects the cache without forcing evaluation.
//
//   - [NewFuture], [FutureOf], [FutureErr]: Constructors
//   - [MapFuture], [BindFuture], [ThenFuture]: Combinators
//
// [FutureOption], [FutureResult] and [FutureEither] layer the
// synchronous combinator surfaces over a shared Future. Every
// combinator returns a new lazy wrapper that re-awaits the same
// underlying cache, so chains compose suspensions without running
// anything until the first await, and the cache still resolves at
// most once across the whole chain. Asynchronous callbacks receive a
// [context.Context]; suspension occurs only at await and callback
// boundaries, never inside a container's own state transition.
//
// # Wrapping Decorators
//
// Adapters between ordinary Go failure channels and containers:
//
//   - [WrapResult], [WrapOption]: Adapt (T, error) functions
//   - [WrapResultOn], [WrapOptionOn]: Allow-list by error type; other
//     errors propagate unchanged
//   - [Catching], [CatchingOption]: Recover panics into containers
//   - [WrapFutureResult], [WrapFutureOption]: Asynchronous adapters
//
// # Example
//
//	parse := wrap.WrapResultOn[*strconv.NumError](strconv.Atoi)
//
//	total := wrap.EarlyResult(func() wrap.Result[int, *strconv.NumError] {
//		a := parse("128").Early()
//		b := parse("64").Early()
//		return wrap.Ok[int, *strconv.NumError](a + b)
//	})
//	// total == Ok(192); a non-numeric input would early-return its Err
package wrap
