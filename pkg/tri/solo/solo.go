package solo

import (
	"context"
	"errors"

	"github.com/ib-77/trio/pkg/tri"
)

func Succeed[T any, E any](input T) tri.Outcome[T, E] {
	return tri.Value[T, E](input)
}

func Omit[T any, E any]() tri.Outcome[T, E] {
	return tri.Absent[T, E]()
}

func FailWith[T any, E any](err E) tri.Outcome[T, E] {
	return tri.Fail[T](err)
}

// Validate lifts a validation function: a valid input becomes Value, an
// invalid one becomes Fail with the reported message.
func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) tri.Outcome[T, error] {

	if isValid, errMsg := validate(ctx, input); isValid {
		return tri.Value[T, error](input)
	} else {
		return tri.Fail[T, error](errors.New(errMsg))
	}
}

// Try lifts a (T, error) call into an Outcome. Absent is not reachable
// this way; use Find for call shapes that can legitimately come up empty.
func Try[T any](ctx context.Context,
	op func(ctx context.Context) (T, error)) tri.Outcome[T, error] {

	out, err := op(ctx)
	if err != nil {
		return tri.Fail[T, error](err)
	}
	return tri.Value[T, error](out)
}

// Find lifts a (T, ok, error) lookup into an Outcome: an error becomes
// Fail, a miss becomes Absent, a hit becomes Value.
func Find[T any](ctx context.Context,
	lookup func(ctx context.Context) (T, bool, error)) tri.Outcome[T, error] {

	out, ok, err := lookup(ctx)
	if err != nil {
		return tri.Fail[T, error](err)
	}
	if !ok {
		return tri.Absent[T, error]()
	}
	return tri.Value[T, error](out)
}

// Tee triggers a side effect on a value outcome without changing it.
func Tee[T any, E any](ctx context.Context, input tri.Outcome[T, E],
	onValue func(ctx context.Context, r T)) tri.Outcome[T, E] {

	if input.IsValue() {
		onValue(ctx, input.UnwrapUnchecked())
	}
	return input
}

// Finally collapses an outcome to a final value, one handler per variant.
func Finally[T any, E any, Out any](ctx context.Context, input tri.Outcome[T, E],
	onValue func(ctx context.Context, r T) Out,
	onAbsent func(ctx context.Context) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsValue() {
		return onValue(ctx, input.UnwrapUnchecked())
	} else if input.IsAbsent() {
		return onAbsent(ctx)
	} else {
		return onFailure(ctx, input.UnwrapFailureUnchecked())
	}
}
