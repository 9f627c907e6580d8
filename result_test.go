// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wrap_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/wrap"
)

func TestResultOk(t *testing.T) {
	r := wrap.Ok[int, string](42)

	if !r.IsOk() {
		t.Fatal("expected IsOk true")
	}
	if r.IsErr() {
		t.Fatal("expected IsErr false")
	}
	if got := r.Unwrap(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestResultErr(t *testing.T) {
	r := wrap.Err[int, string]("boom")

	if r.IsOk() {
		t.Fatal("expected IsOk false")
	}
	if !r.IsErr() {
		t.Fatal("expected IsErr true")
	}
	if got := r.UnwrapErr(); got != "boom" {
		t.Fatalf("got %q, want boom", got)
	}
}

func TestResultUnwrapPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on Unwrap of Err")
		}
		if s, ok := r.(string); !ok || s != "wrap: called Unwrap on an Err value" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = wrap.Err[int, string]("boom").Unwrap()
}

func TestResultUnwrapErrPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on UnwrapErr of Ok")
		}
		if s, ok := r.(string); !ok || s != "wrap: called UnwrapErr on an Ok value" {
			t.Fatalf("unexpected panic message: %v", r)
		}
	}()

	_ = wrap.Ok[int, string](1).UnwrapErr()
}

func TestResultExpect(t *testing.T) {
	if got := wrap.Ok[int, string](1).Expect("nope"); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := wrap.Err[int, string]("e").ExpectErr("nope"); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
}

func TestResultPredicates(t *testing.T) {
	positive := func(x int) bool { return x > 0 }
	short := func(e string) bool { return len(e) < 8 }

	if !wrap.Ok[int, string](3).IsOkAnd(positive) {
		t.Fatal("Ok(3) should satisfy positive")
	}
	if wrap.Ok[int, string](-3).IsOkAnd(positive) {
		t.Fatal("Ok(-3) should not satisfy positive")
	}
	if wrap.Err[int, string]("e").IsOkAnd(positive) {
		t.Fatal("Err should be false for IsOkAnd")
	}

	if !wrap.Err[int, string]("e").IsErrAnd(short) {
		t.Fatal("Err(e) should satisfy short")
	}
	if wrap.Ok[int, string](1).IsErrAnd(short) {
		t.Fatal("Ok should be false for IsErrAnd")
	}
}

func TestResultGet(t *testing.T) {
	if v, ok := wrap.Ok[int, string](3).Get(); !ok || v != 3 {
		t.Fatalf("got (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := wrap.Err[int, string]("e").Get(); ok {
		t.Fatal("Get on Err should be false")
	}
	if e, ok := wrap.Err[int, string]("e").GetErr(); !ok || e != "e" {
		t.Fatalf("got (%q, %v), want (e, true)", e, ok)
	}
	if _, ok := wrap.Ok[int, string](3).GetErr(); ok {
		t.Fatal("GetErr on Ok should be false")
	}
}

func TestResultUnwrapDefaults(t *testing.T) {
	if got := wrap.Err[int, string]("e").UnwrapOr(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}

	calls := 0
	thunk := func() int { calls++; return 9 }
	if got := wrap.Ok[int, string](1).UnwrapOrElse(thunk); got != 1 || calls != 0 {
		t.Fatalf("got (%d, calls=%d), want (1, 0)", got, calls)
	}
	if got := wrap.Err[int, string]("e").UnwrapOrElse(thunk); got != 9 || calls != 1 {
		t.Fatalf("got (%d, calls=%d), want (9, 1)", got, calls)
	}

	if got := wrap.Ok[int, string](1).UnwrapErrOr("d"); got != "d" {
		t.Fatalf("got %q, want d", got)
	}
	if got := wrap.Err[int, string]("e").UnwrapErrOr("d"); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
}

func TestMapResult(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if got := wrap.MapResult(wrap.Ok[int, string](21), double).Unwrap(); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	// Map must preserve the original error unchanged without invoking fn
	calls := 0
	mapped := wrap.MapResult(wrap.Err[int, string]("boom"), func(x int) int {
		calls++
		return x
	})
	if got := mapped.UnwrapErr(); got != "boom" || calls != 0 {
		t.Fatalf("got (%q, calls=%d), want (boom, 0)", got, calls)
	}
}

func TestMapErr(t *testing.T) {
	wrapMsg := func(e string) string { return "wrapped: " + e }

	if got := wrap.MapErr(wrap.Err[int, string]("e"), wrapMsg).UnwrapErr(); got != "wrapped: e" {
		t.Fatalf("got %q, want wrapped: e", got)
	}

	calls := 0
	mapped := wrap.MapErr(wrap.Ok[int, string](1), func(e string) string {
		calls++
		return e
	})
	if got := mapped.Unwrap(); got != 1 || calls != 0 {
		t.Fatalf("got (%d, calls=%d), want (1, 0)", got, calls)
	}
}

func TestMapResultFolds(t *testing.T) {
	double := func(x int) int { return x * 2 }

	if got := wrap.MapResultOr(wrap.Ok[int, string](21), 0, double); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	if got := wrap.MapResultOr(wrap.Err[int, string]("e"), 7, double); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if got := wrap.MapResultOrElse(wrap.Err[int, string]("e"), func() int { return 7 }, double); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestAndThenResult(t *testing.T) {
	checkNonZero := func(x int) wrap.Result[int, string] {
		if x == 0 {
			return wrap.Err[int, string]("zero")
		}
		return wrap.Ok[int, string](x)
	}

	if got := wrap.AndThenResult(wrap.Ok[int, string](3), checkNonZero).Unwrap(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if got := wrap.AndThenResult(wrap.Ok[int, string](0), checkNonZero).UnwrapErr(); got != "zero" {
		t.Fatalf("got %q, want zero", got)
	}

	// Err short-circuits without invoking fn
	calls := 0
	out := wrap.AndThenResult(wrap.Err[int, string]("boom"), func(x int) wrap.Result[int, string] {
		calls++
		return wrap.Ok[int, string](x)
	})
	if got := out.UnwrapErr(); got != "boom" || calls != 0 {
		t.Fatalf("got (%q, calls=%d), want (boom, 0)", got, calls)
	}
}

func TestOrElseResult(t *testing.T) {
	recovered := wrap.OrElseResult(wrap.Err[int, string]("e"), func(e string) wrap.Result[int, int] {
		return wrap.Ok[int, int](99)
	})
	if got := recovered.Unwrap(); got != 99 {
		t.Fatalf("got %d, want 99", got)
	}

	calls := 0
	passed := wrap.OrElseResult(wrap.Ok[int, string](1), func(e string) wrap.Result[int, int] {
		calls++
		return wrap.Err[int, int](0)
	})
	if got := passed.Unwrap(); got != 1 || calls != 0 {
		t.Fatalf("got (%d, calls=%d), want (1, 0)", got, calls)
	}
}

func TestAndResult(t *testing.T) {
	if got := wrap.AndResult(wrap.Ok[int, string](1), wrap.Ok[string, string]("a")).Unwrap(); got != "a" {
		t.Fatalf("got %q, want a", got)
	}
	if got := wrap.AndResult(wrap.Err[int, string]("e"), wrap.Ok[string, string]("a")).UnwrapErr(); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
}

func TestResultOptionConversions(t *testing.T) {
	if got := wrap.Ok[int, string](3).Value().Unwrap(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if wrap.Err[int, string]("e").Value().IsSome() {
		t.Fatal("Value of Err should be None")
	}
	if got := wrap.Err[int, string]("e").Error().Unwrap(); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
	if wrap.Ok[int, string](3).Error().IsSome() {
		t.Fatal("Error of Ok should be None")
	}
}

func TestResultIntoEither(t *testing.T) {
	left := wrap.Ok[int, string](3).IntoEither()
	if !left.IsLeft() {
		t.Fatal("Ok should convert to Left")
	}
	if got := left.UnwrapLeft(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}

	right := wrap.Err[int, string]("e").IntoEither()
	if !right.IsRight() {
		t.Fatal("Err should convert to Right")
	}
	if got := right.UnwrapRight(); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
}

func TestResultFlipInvolution(t *testing.T) {
	ok := wrap.Ok[int, string](3)
	if got := ok.Flip().UnwrapErr(); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
	if ok.Flip().Flip() != ok {
		t.Fatal("Flip must be an involution on Ok")
	}

	err := wrap.Err[int, string]("e")
	if got := err.Flip().Unwrap(); got != "e" {
		t.Fatalf("got %q, want e", got)
	}
	if err.Flip().Flip() != err {
		t.Fatal("Flip must be an involution on Err")
	}
}

func TestResultInspect(t *testing.T) {
	seen := 0
	wrap.Ok[int, string](5).Inspect(func(x int) { seen = x })
	if seen != 5 {
		t.Fatalf("got %d, want 5", seen)
	}
	wrap.Err[int, string]("e").Inspect(func(int) { t.Fatal("inspect invoked on Err") })

	seenErr := ""
	wrap.Err[int, string]("e").InspectErr(func(e string) { seenErr = e })
	if seenErr != "e" {
		t.Fatalf("got %q, want e", seenErr)
	}
	wrap.Ok[int, string](5).InspectErr(func(string) { t.Fatal("inspect_err invoked on Ok") })
}

func TestResultContains(t *testing.T) {
	if !wrap.ResultContains(wrap.Ok[int, string](3), 3) {
		t.Fatal("Ok(3) should contain 3")
	}
	if wrap.ResultContains(wrap.Err[int, string]("e"), 3) {
		t.Fatal("Err contains no value")
	}
	if wrap.ResultContainsErr(wrap.Ok[int, string](3), "e") {
		t.Fatal("Ok contains no error")
	}
	if !wrap.ResultContainsErr(wrap.Err[int, string]("e"), "e") {
		t.Fatal("Err(e) should contain e")
	}
}

func TestIntoOkOrErr(t *testing.T) {
	if got := wrap.IntoOkOrErr(wrap.Ok[int, int](1)); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
	if got := wrap.IntoOkOrErr(wrap.Err[int, int](2)); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
}

func TestRaising(t *testing.T) {
	v, err := wrap.Raising(wrap.Ok[int, error](3))
	if err != nil || v != 3 {
		t.Fatalf("got (%d, %v), want (3, nil)", v, err)
	}

	boom := errors.New("boom")
	_, err = wrap.Raising(wrap.Err[int, error](boom))
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
}

func TestResultIter(t *testing.T) {
	var values []int
	for v := range wrap.Ok[int, string](5).Iter() {
		values = append(values, v)
	}
	if len(values) != 1 || values[0] != 5 {
		t.Fatalf("got %v, want [5]", values)
	}
	for range wrap.Err[int, string]("e").Iter() {
		t.Fatal("iterating Err success side should yield nothing")
	}

	var errs []string
	for e := range wrap.Err[int, string]("e").IterErr() {
		errs = append(errs, e)
	}
	if len(errs) != 1 || errs[0] != "e" {
		t.Fatalf("got %v, want [e]", errs)
	}
	for range wrap.Ok[int, string](5).IterErr() {
		t.Fatal("iterating Ok error side should yield nothing")
	}
}
