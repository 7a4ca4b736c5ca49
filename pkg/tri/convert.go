package tri

// FromOption lifts a plain optional: Some(t) becomes Value(t), None
// becomes Absent. No error is reachable through this conversion; E is
// whatever the caller needs downstream.
func FromOption[T any, E any](o Option[T]) Outcome[T, E] {
	if v, ok := o.Get(); ok {
		return Value[T, E](v)
	}
	return Absent[T, E]()
}

// FromPtr lifts an optional reference: nil becomes Absent, otherwise the
// pointee is copied into an owned Value. The outcome does not alias p.
func FromPtr[T any, E any](p *T) Outcome[T, E] {
	if p == nil {
		return Absent[T, E]()
	}
	return Value[T, E](*p)
}

// FromResult lifts the Go-native binary result of an optional: a non-nil
// error becomes Fail, otherwise the optional decides between Value and
// Absent.
func FromResult[T any](o Option[T], err error) Outcome[T, error] {
	if err != nil {
		return Fail[T](err)
	}
	return FromOption[T, error](o)
}
