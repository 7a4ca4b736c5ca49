package tri

import "fmt"

// The strict unwrap family treats anything but the demanded variant as a
// programmer error and panics. Recoverable handling belongs to the Or/Else
// variants below, or to the projections in outcome.go.

// Unwrap returns the value, panicking on Absent and on Failure (the panic
// message renders the error).
func (o Outcome[T, E]) Unwrap() T {
	switch o.variant {
	case variantAbsent:
		panic("tri: called Unwrap on an Absent outcome")
	case variantFailure:
		panic(fmt.Sprintf("tri: called Unwrap on a failed outcome: %v", o.err))
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Outcome[T, E]) Expect(msg string) T {
	switch o.variant {
	case variantAbsent:
		panic(msg)
	case variantFailure:
		panic(fmt.Sprintf("%s: %v", msg, o.err))
	}
	return o.value
}

// UnwrapUnchecked returns the value without checking the variant. The
// caller must guarantee the outcome is Value; on any other variant the
// zero value of T comes back and no diagnostic is produced. Misuse is a
// contract violation, not a reportable error.
func (o Outcome[T, E]) UnwrapUnchecked() T {
	return o.value
}

// UnwrapOr returns the value, or def for both Absent and Failure.
func (o Outcome[T, E]) UnwrapOr(def T) T {
	if o.variant == variantValue {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the value, or f() for both Absent and Failure.
// f is invoked only when needed.
func (o Outcome[T, E]) UnwrapOrElse(f func() T) T {
	if o.variant == variantValue {
		return o.value
	}
	return f()
}

// UnwrapOrDefault returns the value, or the zero value of T for both
// Absent and Failure.
func (o Outcome[T, E]) UnwrapOrDefault() T {
	if o.variant == variantValue {
		return o.value
	}
	var zero T
	return zero
}

// UnwrapFailure returns the error, panicking on Value (the panic message
// renders the value) and on Absent.
func (o Outcome[T, E]) UnwrapFailure() E {
	switch o.variant {
	case variantValue:
		panic(fmt.Sprintf("tri: called UnwrapFailure on a value outcome: %v", o.value))
	case variantAbsent:
		panic("tri: called UnwrapFailure on an Absent outcome")
	}
	return o.err
}

// ExpectFailure is UnwrapFailure with a caller-supplied panic message.
func (o Outcome[T, E]) ExpectFailure(msg string) E {
	switch o.variant {
	case variantValue:
		panic(fmt.Sprintf("%s: %v", msg, o.value))
	case variantAbsent:
		panic(msg)
	}
	return o.err
}

// UnwrapFailureUnchecked returns the error without checking the variant.
// The caller must guarantee the outcome is Failure.
func (o Outcome[T, E]) UnwrapFailureUnchecked() E {
	return o.err
}

// The option-flavored family collapses Value and Absent into a plain
// Option, treating only Failure as exceptional.

// UnwrapOption returns Some(value) or None, panicking on Failure.
func (o Outcome[T, E]) UnwrapOption() Option[T] {
	if o.variant == variantFailure {
		panic(fmt.Sprintf("tri: called UnwrapOption on a failed outcome: %v", o.err))
	}
	return o.Option()
}

// ExpectOption is UnwrapOption with a caller-supplied panic message.
func (o Outcome[T, E]) ExpectOption(msg string) Option[T] {
	if o.variant == variantFailure {
		panic(fmt.Sprintf("%s: %v", msg, o.err))
	}
	return o.Option()
}

// UnwrapOptionUnchecked returns Some(value) or None without checking for
// Failure. The caller must guarantee the outcome is not Failure; a failed
// outcome comes back as None with no diagnostic.
func (o Outcome[T, E]) UnwrapOptionUnchecked() Option[T] {
	if o.variant == variantValue {
		return Some(o.value)
	}
	return None[T]()
}

// UnwrapOptionOr returns Some(value), None for Absent, or Some(def) for
// Failure.
func (o Outcome[T, E]) UnwrapOptionOr(def T) Option[T] {
	switch o.variant {
	case variantValue:
		return Some(o.value)
	case variantFailure:
		return Some(def)
	default:
		return None[T]()
	}
}

// UnwrapOptionOrDefault returns Some(value), None for Absent, or Some of
// the zero value of T for Failure.
func (o Outcome[T, E]) UnwrapOptionOrDefault() Option[T] {
	var zero T
	return o.UnwrapOptionOr(zero)
}

// UnwrapOptionOrNone returns Some(value) for Value and None otherwise.
// Total: never panics for any variant.
func (o Outcome[T, E]) UnwrapOptionOrNone() Option[T] {
	return o.Option()
}
