package rop

import (
	"fmt"
	"runtime/debug"
)

// Fault is a panic recovered at a fault boundary and turned into a value.
type Fault struct {
	// Value is what was passed to panic.
	Value any
	// Stack is the goroutine stack at the point of recovery.
	Stack []byte
}

// NewFault captures the current stack alongside the recovered value.
// It must be called from the deferred function that recovered.
func NewFault(recovered any) *Fault {
	return &Fault{Value: recovered, Stack: debug.Stack()}
}

func (f *Fault) Error() string {
	return fmt.Sprintf("rop: recovered fault: %v", f.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (f *Fault) Unwrap() error {
	if err, ok := f.Value.(error); ok {
		return err
	}
	return nil
}
