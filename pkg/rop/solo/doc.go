// Package solo contains single-value, synchronous ROP combinators that operate
// on rop.Result. Each one consumes a result and returns a new one; none of them
// keep state, so they are safe to call from any goroutine.
//
// Highlights:
// - Next/NextValue: run the next step on success, pass a failure through
// - TryNext/TryNextWith: as Next, but a panic in the step becomes a failure
// - OnError: run a handler on failure, pass a success through
// - Always: run a step on the whole result regardless of track
// - Ok/OkResult/OkThen: wrap a bare value, keep a tagged one, alias of Next
// - NextWhile: walk a slice, stop at the first failure
// - Map/DoubleMap: transform the success payload, or whichever payload is present
// - Validate/AndValidate/FailOnError/Try: turn a predicate, an error or a
//   (U, error) call into a failure
// - Tee/TeeIf/DoubleTee: side effects that leave the result unchanged
// - Finally: collapse to a single value
//
// Functions ending in Value take a bare T as the first step's input in place
// of a Result.
package solo
