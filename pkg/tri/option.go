package tri

import "fmt"

// Option is the plain two-way optional the Outcome projections and
// conversions speak: a value, or nothing. It carries no error channel.
type Option[T any] struct {
	value T
	some  bool
}

// Some constructs an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// UnwrapOr returns the value if present, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	return def
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
