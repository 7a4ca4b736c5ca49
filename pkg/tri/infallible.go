package tri

// Never is the designated error type for outcomes that cannot fail. It has
// no meaning as an error payload; producers using it promise never to
// construct the Failure variant.
type Never struct{}

// UnwrapNever collapses an outcome whose error type is Never straight to
// an Option, with no panic path on the two reachable variants. Only a
// producer that breaks the Never promise can reach the Failure arm, and
// that is a contract violation, not control flow.
func UnwrapNever[T any](o Outcome[T, Never]) Option[T] {
	switch o.variant {
	case variantValue:
		return Some(o.value)
	case variantAbsent:
		return None[T]()
	default:
		panic("tri: unreachable: Failure outcome with Never error")
	}
}
