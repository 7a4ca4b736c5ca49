package tri

import (
	"cmp"
	"fmt"
)

// rank order matters: Value < Absent < Failure.
type variant uint8

const (
	variantValue variant = iota
	variantAbsent
	variantFailure
)

// Outcome is a three-way result: a value, a legitimate absence of a value,
// or a failure. It keeps apart what a plain (T, error) pair conflates —
// a lookup that found nothing is not a lookup that broke.
//
// Exactly one variant is active. The zero Outcome is Value holding the zero
// values of T and E; producers are expected to construct through Value,
// Absent or Fail.
type Outcome[T any, E any] struct {
	variant variant
	value   T
	err     E
}

// Value wraps a produced value into a successful Outcome.
func Value[T any, E any](v T) Outcome[T, E] {
	return Outcome[T, E]{variant: variantValue, value: v}
}

// Absent marks a successful operation that produced no value.
func Absent[T any, E any]() Outcome[T, E] {
	return Outcome[T, E]{variant: variantAbsent}
}

// Fail wraps an error into a failed Outcome.
func Fail[T any, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{variant: variantFailure, err: err}
}

func (o Outcome[T, E]) IsValue() bool {
	return o.variant == variantValue
}

func (o Outcome[T, E]) IsAbsent() bool {
	return o.variant == variantAbsent
}

func (o Outcome[T, E]) IsFailure() bool {
	return o.variant == variantFailure
}

// IsValueAnd reports whether the outcome holds a value matching f.
// f is not invoked for Absent or Failure.
func (o Outcome[T, E]) IsValueAnd(f func(T) bool) bool {
	return o.variant == variantValue && f(o.value)
}

// IsFailureAnd reports whether the outcome holds an error matching f.
// f is not invoked for Value or Absent.
func (o Outcome[T, E]) IsFailureAnd(f func(E) bool) bool {
	return o.variant == variantFailure && f(o.err)
}

// Option projects the value channel, discarding the error if any:
// Value(t) yields Some(t), Absent and Failure yield None.
func (o Outcome[T, E]) Option() Option[T] {
	if o.variant == variantValue {
		return Some(o.value)
	}
	return None[T]()
}

// ErrOption projects the error channel, discarding the value if any:
// Fail(e) yields Some(e), Value and Absent yield None.
func (o Outcome[T, E]) ErrOption() Option[E] {
	if o.variant == variantFailure {
		return Some(o.err)
	}
	return None[E]()
}

// Ref returns a same-shaped outcome whose payload points into the
// receiver's storage, for inspecting or mutating in place without moving
// the payload out. The pointers alias o and must not outlive it.
func (o *Outcome[T, E]) Ref() Outcome[*T, *E] {
	switch o.variant {
	case variantValue:
		return Value[*T, *E](&o.value)
	case variantFailure:
		return Fail[*T](&o.err)
	default:
		return Absent[*T, *E]()
	}
}

// Inspect invokes f on the value if present, then returns the outcome
// unchanged. Side-effect tap, no effect on control flow.
func (o Outcome[T, E]) Inspect(f func(T)) Outcome[T, E] {
	if o.variant == variantValue {
		f(o.value)
	}
	return o
}

func (o Outcome[T, E]) String() string {
	switch o.variant {
	case variantValue:
		return fmt.Sprintf("Value(%v)", o.value)
	case variantAbsent:
		return "Absent"
	default:
		return fmt.Sprintf("Fail(%v)", o.err)
	}
}

// Compare orders outcomes by variant rank first (Value < Absent < Failure),
// then by payload. Outcomes of comparable T and E also support == directly.
func Compare[T cmp.Ordered, E cmp.Ordered](a, b Outcome[T, E]) int {
	if c := cmp.Compare(a.variant, b.variant); c != 0 {
		return c
	}
	switch a.variant {
	case variantValue:
		return cmp.Compare(a.value, b.value)
	case variantFailure:
		return cmp.Compare(a.err, b.err)
	default:
		return 0
	}
}
