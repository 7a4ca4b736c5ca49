package tri

import (
	"testing"
)

func TestVariantExclusivity(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name                   string
		out                    Outcome[int, string]
		value, absent, failure bool
	}{
		{"value", Value[int, string](42), true, false, false},
		{"absent", Absent[int, string](), false, true, false},
		{"failure", Fail[int, string]("boom"), false, false, true},
	}
	for _, c := range cases {
		if c.out.IsValue() != c.value || c.out.IsAbsent() != c.absent || c.out.IsFailure() != c.failure {
			t.Fatalf("%s: predicates mismatch: value=%v absent=%v failure=%v",
				c.name, c.out.IsValue(), c.out.IsAbsent(), c.out.IsFailure())
		}
	}
}

func TestIsValueAnd(t *testing.T) {
	t.Parallel()
	if !Value[int, string](42).IsValueAnd(func(v int) bool { return v > 10 }) {
		t.Fatalf("expected IsValueAnd true for 42 > 10")
	}
	if Value[int, string](5).IsValueAnd(func(v int) bool { return v > 10 }) {
		t.Fatalf("expected IsValueAnd false for 5 > 10")
	}

	called := false
	if Absent[int, string]().IsValueAnd(func(int) bool { called = true; return true }) {
		t.Fatalf("expected IsValueAnd false on Absent")
	}
	if Fail[int, string]("e").IsValueAnd(func(int) bool { called = true; return true }) {
		t.Fatalf("expected IsValueAnd false on Failure")
	}
	if called {
		t.Fatalf("predicate should not be invoked for Absent or Failure")
	}
}

func TestIsFailureAnd(t *testing.T) {
	t.Parallel()
	if !Fail[int, string]("boom").IsFailureAnd(func(e string) bool { return e == "boom" }) {
		t.Fatalf("expected IsFailureAnd true for matching error")
	}
	if Fail[int, string]("boom").IsFailureAnd(func(e string) bool { return e == "other" }) {
		t.Fatalf("expected IsFailureAnd false for non-matching error")
	}

	called := false
	if Value[int, string](1).IsFailureAnd(func(string) bool { called = true; return true }) {
		t.Fatalf("expected IsFailureAnd false on Value")
	}
	if Absent[int, string]().IsFailureAnd(func(string) bool { called = true; return true }) {
		t.Fatalf("expected IsFailureAnd false on Absent")
	}
	if called {
		t.Fatalf("predicate should not be invoked for Value or Absent")
	}
}

func TestOptionProjection(t *testing.T) {
	t.Parallel()
	if got := Value[int, string](42).Option(); got != Some(42) {
		t.Fatalf("expected Some(42), got %v", got)
	}
	if got := Absent[int, string]().Option(); got != None[int]() {
		t.Fatalf("expected None, got %v", got)
	}
	if got := Fail[int, string]("boom").Option(); got != None[int]() {
		t.Fatalf("expected None for failure, got %v", got)
	}
}

func TestErrOptionProjection(t *testing.T) {
	t.Parallel()
	if got := Fail[int, string]("boom").ErrOption(); got != Some("boom") {
		t.Fatalf("expected Some(boom), got %v", got)
	}
	if got := Value[int, string](42).ErrOption(); got != None[string]() {
		t.Fatalf("expected None for value, got %v", got)
	}
	if got := Absent[int, string]().ErrOption(); got != None[string]() {
		t.Fatalf("expected None for absent, got %v", got)
	}
}

func TestRefAliasesReceiver(t *testing.T) {
	t.Parallel()
	out := Value[int, string](10)
	ref := out.Ref()
	if !ref.IsValue() {
		t.Fatalf("expected ref of Value to be Value")
	}
	*ref.Unwrap() = 11
	if out.Unwrap() != 11 {
		t.Fatalf("expected mutation through ref to reach the original, got %v", out.Unwrap())
	}

	fails := Fail[int, string]("boom")
	fref := fails.Ref()
	if !fref.IsFailure() {
		t.Fatalf("expected ref of Failure to be Failure")
	}
	*fref.UnwrapFailure() = "bang"
	if fails.UnwrapFailure() != "bang" {
		t.Fatalf("expected error mutation to reach the original, got %v", fails.UnwrapFailure())
	}

	abs := Absent[int, string]()
	if !abs.Ref().IsAbsent() {
		t.Fatalf("expected ref of Absent to be Absent")
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()
	seen := 0
	out := Value[int, string](42).Inspect(func(v int) { seen = v })
	if seen != 42 || out != Value[int, string](42) {
		t.Fatalf("expected tap on 42 and an unchanged outcome, got seen=%v out=%v", seen, out)
	}

	called := false
	if got := Absent[int, string]().Inspect(func(int) { called = true }); !got.IsAbsent() {
		t.Fatalf("expected Absent to pass through, got %v", got)
	}
	if got := Fail[int, string]("e").Inspect(func(int) { called = true }); !got.IsFailure() {
		t.Fatalf("expected Failure to pass through, got %v", got)
	}
	if called {
		t.Fatalf("inspect should not be invoked for Absent or Failure")
	}
}

func TestEquality(t *testing.T) {
	t.Parallel()
	if Value[int, string](1) != Value[int, string](1) {
		t.Fatalf("equal value outcomes should compare equal")
	}
	if Value[int, string](0) == Absent[int, string]() {
		t.Fatalf("Value(0) must not equal Absent")
	}
	if Absent[int, string]() != Absent[int, string]() {
		t.Fatalf("absent outcomes should compare equal")
	}
	if Fail[int, string]("a") == Fail[int, string]("b") {
		t.Fatalf("different errors must not compare equal")
	}
}

func TestCompareVariantRank(t *testing.T) {
	t.Parallel()
	v := Value[int, string](9)
	a := Absent[int, string]()
	f := Fail[int, string]("e")

	if Compare(v, a) >= 0 || Compare(a, f) >= 0 || Compare(v, f) >= 0 {
		t.Fatalf("expected Value < Absent < Failure")
	}
	if Compare(Value[int, string](1), Value[int, string](2)) >= 0 {
		t.Fatalf("expected payload comparison within Value")
	}
	if Compare(Fail[int, string]("a"), Fail[int, string]("b")) >= 0 {
		t.Fatalf("expected payload comparison within Failure")
	}
	if Compare(a, Absent[int, string]()) != 0 {
		t.Fatalf("expected Absent == Absent")
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if got := Value[int, string](42).String(); got != "Value(42)" {
		t.Fatalf("unexpected rendering: %v", got)
	}
	if got := Absent[int, string]().String(); got != "Absent" {
		t.Fatalf("unexpected rendering: %v", got)
	}
	if got := Fail[int, string]("boom").String(); got != "Fail(boom)" {
		t.Fatalf("unexpected rendering: %v", got)
	}
}
