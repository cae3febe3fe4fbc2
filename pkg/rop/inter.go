package rop

import (
	"time"

	"github.com/google/uuid"
)

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	// Id identity kept across pass-through
	Id() uuid.UUID
}

// WithFailure defines an interface for types that can return a result or a failure payload
type WithFailure[T, E any] interface {
	ResultProvider[T]
	// Err returns the failure payload if operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// WithError is WithFailure specialised to Go errors
type WithError[T any] interface {
	WithFailure[T, error]
}

var (
	_ WithFailure[int, string] = Result[int, string]{}
	_ WithError[int]           = Outcome[int]{}
)
