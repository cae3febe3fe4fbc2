package solo

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ib-77/railway/pkg/rop"
)

// Ok wraps a bare value as a success.
func Ok[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

// OkResult returns an already tagged result unchanged.
func OkResult[T, E any](input rop.Result[T, E]) rop.Result[T, E] {
	return input
}

// OkThen is Next under another name.
func OkThen[T, U, E any](input rop.Result[T, E], step func(t T) rop.Result[U, E]) rop.Result[U, E] {
	return Next(input, step)
}

// Next runs step on a success and passes a failure through untouched.
// A panic in step is not recovered.
func Next[T, U, E any](input rop.Result[T, E], step func(t T) rop.Result[U, E]) rop.Result[U, E] {
	if input.IsSuccess() {
		return step(input.Result())
	}
	return rop.FailureFrom[T, U](input)
}

// NextValue treats a bare value as the first step's input.
func NextValue[T, U, E any](input T, step func(t T) rop.Result[U, E]) rop.Result[U, E] {
	return step(input)
}

// TryNext is Next with a fault boundary around step. A panic becomes a
// failure carrying *rop.Fault whose Value is exactly what step panicked with.
func TryNext[T, U any](input rop.Outcome[T], step func(t T) rop.Outcome[U]) rop.Outcome[U] {
	return TryNextWith(input, step, DefaultRescue[T, U])
}

// TryNextValue is TryNext for a bare first input.
func TryNextValue[T, U any](input T, step func(t T) rop.Outcome[U]) rop.Outcome[U] {
	return TryNextValueWith(input, step, DefaultRescue[T, U])
}

// TryNextWith is Next with a fault boundary around step. A panic is handed to
// rescue together with the value step was called with, and rescue's result is
// returned. rescue runs outside the boundary; a nil rescue re-panics.
func TryNextWith[T, U, E any](input rop.Result[T, E], step func(t T) rop.Result[U, E],
	rescue func(t T, fault *rop.Fault) rop.Result[U, E]) rop.Result[U, E] {

	if input.IsFailure() {
		return rop.FailureFrom[T, U](input)
	}
	return TryNextValueWith(input.Result(), step, rescue)
}

func TryNextValueWith[T, U, E any](input T, step func(t T) rop.Result[U, E],
	rescue func(t T, fault *rop.Fault) rop.Result[U, E]) rop.Result[U, E] {

	out, fault := guard(input, step)
	if fault == nil {
		return out
	}
	if rescue == nil {
		panic(fault.Value)
	}
	return rescue(input, fault)
}

// DefaultRescue drops the value and fails with the fault.
func DefaultRescue[T, U any](_ T, fault *rop.Fault) rop.Outcome[U] {
	return rop.Fail[U](fault)
}

func guard[T, U, E any](input T, step func(t T) rop.Result[U, E]) (out rop.Result[U, E], fault *rop.Fault) {
	defer func() {
		if r := recover(); r != nil {
			fault = rop.NewFault(r)
		}
	}()
	return step(input), nil
}

// OnError runs onFailure on a failure and passes a success through.
func OnError[T, E, E2 any](input rop.Result[T, E], onFailure func(err E) rop.Result[T, E2]) rop.Result[T, E2] {
	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return rop.SuccessFrom[T, E, E2](input)
}

// Always hands the whole result to step whatever its track.
func Always[T, U, E, E2 any](input rop.Result[T, E], step func(r rop.Result[T, E]) rop.Result[U, E2]) rop.Result[U, E2] {
	return step(input)
}

// Halt is the failure payload of NextWhile: the error that stopped the walk and
// what had been produced before it.
type Halt[U, E any] struct {
	Err     E
	Partial []U
}

func (h Halt[U, E]) Error() string {
	return fmt.Sprintf("halted after %d results: %v", len(h.Partial), h.Err)
}

func (h Halt[U, E]) Unwrap() error {
	if err, ok := any(h.Err).(error); ok {
		return err
	}
	return nil
}

// NextWhile calls step for each item in order and stops at the first failure.
// Results are reported most recent first, both on success and in Halt.Partial.
func NextWhile[T, U, E any](items []T, step func(t T) rop.Result[U, E]) rop.Result[[]U, Halt[U, E]] {
	acc := make([]U, 0, len(items))
	for _, item := range items {
		res := step(item)
		if res.IsFailure() {
			slices.Reverse(acc)
			return rop.Failure[[]U](Halt[U, E]{Err: res.Err(), Partial: acc})
		}
		acc = append(acc, res.Result())
	}
	slices.Reverse(acc)
	return rop.Success[[]U, Halt[U, E]](acc)
}

// Map transforms a success value.
func Map[T, U, E any](input rop.Result[T, E], onSuccess func(t T) U) rop.Result[U, E] {
	if input.IsSuccess() {
		return rop.Success[U, E](onSuccess(input.Result()))
	}
	return rop.FailureFrom[T, U](input)
}

// Validate wraps input and checks it with validate.
func Validate[T any](input T, validate func(in T) (valid bool, errMsg string)) rop.Outcome[T] {
	return AndValidate(rop.Succeed(input), validate)
}

// AndValidate fails with errMsg when validate rejects a success value.
func AndValidate[T any](input rop.Outcome[T], validate func(in T) (valid bool, errMsg string)) rop.Outcome[T] {
	if input.IsSuccess() {
		if valid, errMsg := validate(input.Result()); !valid {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// FailOnError fails with the error maybeErr returns for a success value.
func FailOnError[T any](input rop.Outcome[T], maybeErr func(in T) error) rop.Outcome[T] {
	if input.IsSuccess() {
		if err := maybeErr(input.Result()); err != nil {
			return rop.Fail[T](err)
		}
	}
	return input
}

// DoubleMap maps whichever payload input carries.
func DoubleMap[T, U, E, E2 any](input rop.Result[T, E],
	onSuccess func(t T) U,
	onFailure func(err E) E2) rop.Result[U, E2] {

	if input.IsSuccess() {
		return rop.Success[U, E2](onSuccess(input.Result()))
	}
	return rop.Failure[U](onFailure(input.Err()))
}

// Try calls a (U, error) function on a success and converts error to failure.
func Try[T, U any](input rop.Outcome[T], onTryExecute func(t T) (U, error)) rop.Outcome[U] {
	if input.IsFailure() {
		return rop.FailureFrom[T, U](input)
	}

	out, err := onTryExecute(input.Result())
	if err != nil {
		return rop.Fail[U](err)
	}
	return rop.Succeed(out)
}

// Tee runs a side effect on success and returns input unchanged.
func Tee[T, E any](input rop.Result[T, E], onSuccess func(t T)) rop.Result[T, E] {
	if input.IsSuccess() {
		onSuccess(input.Result())
	}
	return input
}

// TeeIf is Tee that also requires condition to hold.
func TeeIf[T, E any](input rop.Result[T, E],
	condition func(t T) bool,
	onSuccessAndCondition func(t T)) rop.Result[T, E] {

	if input.IsSuccess() && condition(input.Result()) {
		onSuccessAndCondition(input.Result())
	}
	return input
}

// DoubleTee runs the side effect for input's track and returns input unchanged.
// Either handler may be nil.
func DoubleTee[T, E any](input rop.Result[T, E],
	onSuccess func(t T),
	onFailure func(err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		if onSuccess != nil {
			onSuccess(input.Result())
		}
	} else if onFailure != nil {
		onFailure(input.Err())
	}
	return input
}

// Finally collapses input into a single value.
func Finally[T, U, E any](input rop.Result[T, E],
	onSuccess func(t T) U,
	onFailure func(err E) U) U {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onFailure(input.Err())
}
