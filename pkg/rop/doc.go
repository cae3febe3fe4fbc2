// Package rop defines Result[T, E], the two-track value every railway
// combinator consumes and produces.
//
// A Result is either a success carrying T or a failure carrying E. Results are
// immutable; each one is stamped with an id and creation time that survive
// pass-through, so a failure skipped by later stages is recognisably the same
// failure at the end of the line. Outcome[T] is the common case where E is
// error. Fault is how a recovered panic travels on the failure track.
package rop
