package tri

// Map transforms the value of a successful outcome with f; Absent and
// Failure pass through re-typed.
func Map[T any, E any, U any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	switch o.variant {
	case variantValue:
		return Value[U, E](f(o.value))
	case variantFailure:
		return Fail[U](o.err)
	default:
		return Absent[U, E]()
	}
}

// MapOr collapses the outcome to a single value: f over the value if
// present, def for both Absent and Failure.
func MapOr[T any, E any, U any](o Outcome[T, E], def U, f func(T) U) U {
	if o.variant == variantValue {
		return f(o.value)
	}
	return def
}

// MapOrElse is MapOr with a lazily computed default. def is invoked only
// for Absent and Failure.
func MapOrElse[T any, E any, U any](o Outcome[T, E], def func() U, f func(T) U) U {
	if o.variant == variantValue {
		return f(o.value)
	}
	return def()
}

// MapOrDefault collapses to f over the value, or the zero value of U for
// both Absent and Failure.
func MapOrDefault[T any, E any, U any](o Outcome[T, E], f func(T) U) U {
	if o.variant == variantValue {
		return f(o.value)
	}
	var zero U
	return zero
}

// MapFailure transforms the error of a failed outcome with f; Value and
// Absent pass through re-typed.
func MapFailure[T any, E any, F any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	switch o.variant {
	case variantValue:
		return Value[T, F](o.value)
	case variantFailure:
		return Fail[T](f(o.err))
	default:
		return Absent[T, F]()
	}
}
