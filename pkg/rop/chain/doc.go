// Package chain provides a fluent wrapper around rop.Result
// for building synchronous Railway-Oriented chains using solo combinators.
//
// Go has no pipe operator, so a Chain stands in for one: each stage takes the
// chain and returns a new one, and stages read top to bottom. Stages that keep
// the types are methods; stages that change them are package functions,
// because methods cannot introduce type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a rop.Result or a bare value
// - Next/Then: run the next step on success
// - TryNext/TryNextWith: as Next, recovering a panic into a failure
// - OnError/Recover: handle the failure track
// - Always: see the whole result
// - Map/Tap/Finally: transform, side effect, collapse
package chain
