package chain

import (
	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T, E any] struct {
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](result rop.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) Chain[T, E] {
	return Chain[T, E]{result: solo.Ok[T, E](value)}
}

// Result returns the underlying rop.Result
func (c Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Then runs a step that keeps the value type
func (c Chain[T, E]) Then(step func(T) rop.Result[T, E]) Chain[T, E] {
	return Next(c, step)
}

// Recover runs a handler on failure that keeps both types
func (c Chain[T, E]) Recover(onFailure func(E) rop.Result[T, E]) Chain[T, E] {
	return OnError(c, onFailure)
}

// Tap performs a side effect on success without changing the result
func (c Chain[T, E]) Tap(onSuccess func(T)) Chain[T, E] {
	return Chain[T, E]{result: solo.Tee(c.result, onSuccess)}
}

// Next chains a function that returns rop.Result[U, E]
func Next[T, U, E any](c Chain[T, E], step func(T) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{result: solo.Next(c.result, step)}
}

// TryNext chains a function and turns its panic into a failure
func TryNext[T, U any](c Chain[T, error], step func(T) rop.Outcome[U]) Chain[U, error] {
	return Chain[U, error]{result: solo.TryNext(c.result, step)}
}

// TryNextWith chains a function and hands its panic to rescue
func TryNextWith[T, U, E any](c Chain[T, E], step func(T) rop.Result[U, E],
	rescue func(T, *rop.Fault) rop.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{result: solo.TryNextWith(c.result, step, rescue)}
}

// OnError chains a failure handler
func OnError[T, E, E2 any](c Chain[T, E], onFailure func(E) rop.Result[T, E2]) Chain[T, E2] {
	return Chain[T, E2]{result: solo.OnError(c.result, onFailure)}
}

// Always chains a step that sees the whole result
func Always[T, U, E, E2 any](c Chain[T, E], step func(rop.Result[T, E]) rop.Result[U, E2]) Chain[U, E2] {
	return Chain[U, E2]{result: solo.Always(c.result, step)}
}

// Map chains a pure transformation function
func Map[T, U, E any](c Chain[T, E], onSuccess func(T) U) Chain[U, E] {
	return Chain[U, E]{result: solo.Map(c.result, onSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U, E any](c Chain[T, E], onSuccess func(T) U, onFailure func(E) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
