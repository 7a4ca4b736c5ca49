package traced

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/trio/pkg/tri"
)

// Outcome stamps a tri.Outcome with an id and creation time for tracing
// across producer boundaries. The stamp lives here and not on tri.Outcome
// itself so that the core type stays structurally comparable.
type Outcome[T any, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	out       tri.Outcome[T, E]
}

func Wrap[T any, E any](out tri.Outcome[T, E]) Outcome[T, E] {
	return Outcome[T, E]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		out:       out,
	}
}

func Value[T any, E any](v T) Outcome[T, E] {
	return Wrap(tri.Value[T, E](v))
}

func Absent[T any, E any]() Outcome[T, E] {
	return Wrap(tri.Absent[T, E]())
}

func Fail[T any, E any](err E) Outcome[T, E] {
	return Wrap(tri.Fail[T](err))
}

// Outcome returns the wrapped three-way value.
func (o Outcome[T, E]) Outcome() tri.Outcome[T, E] {
	return o.out
}

func (o Outcome[T, E]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T, E]) CreatedAt() time.Time {
	return o.createdAt
}

// Elapsed reports how long ago the outcome was created.
func (o Outcome[T, E]) Elapsed(now time.Time) time.Duration {
	return now.UTC().Sub(o.createdAt)
}
