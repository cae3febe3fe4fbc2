package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result is either a success carrying a T or a failure carrying an E.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

// Outcome is a Result whose failure payload is a Go error.
type Outcome[T any] = Result[T, error]

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Succeed builds a successful Outcome.
func Succeed[T any](r T) Outcome[T] {
	return Success[T, error](r)
}

// Fail builds a failed Outcome.
func Fail[T any](err error) Outcome[T] {
	return Failure[T](err)
}

// FailureFrom re-types a failure for a different success payload.
// The error, id and creation time are carried over unchanged.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types a success for a different failure payload.
// The value, id and creation time are carried over unchanged.
func SuccessFrom[T, In, Out any](from Result[T, In]) Result[T, Out] {
	return Result[T, Out]{
		result:    from.result,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns the success value, the failure payload and whether r is a success.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.result, r.err, r.isSuccess
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
