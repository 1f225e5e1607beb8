/*
Package rope implements a persistent, immutable B-tree of string leaves for
holding and editing large UTF-8 text efficiently.

A Rope stores text as a balanced tree of bounded-size leaf fragments. Every
operation — Insert, Delete, SubRope, RemoveRange, Concat — is non-destructive:
it returns a new Rope and never modifies the one it started from, so a Rope
value can be shared freely across goroutines as long as none of them mutate
the strings a caller happens to hold a reference into.

All positional APIs in this package operate on byte offsets, not rune
indexes; callers that need rune-level navigation should use Iterator, or
convert explicitly at their application boundary.

Typical usage:

	r := rope.New("Hello World")
	r2, _ := r.Insert(5, ",")
	s := r2.String()

Package internal/tree holds the underlying B-tree engine; this package is a
thin façade translating it into the public Rope API.
*/
package rope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rope'.
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// RopeError is the package error type, following the same plain
// string-backed sentinel-error convention used throughout this package's
// ancestry.
type RopeError string

func (e RopeError) Error() string { return string(e) }

// ErrOutOfRange is returned by any positional operation given an index or
// range outside the addressable extent of the rope.
const ErrOutOfRange = RopeError("index out of range")

// ErrInvalidArgument is returned when an operation is not allowed in the
// current state (e.g. Builder.Append or Builder.Prepend after Builder.Rope)
// or when the engine rejects a structurally invalid node. Bad offsets and
// ranges, including start > end, give ErrOutOfRange instead.
const ErrInvalidArgument = RopeError("invalid argument")

// ErrInconsistent signals that a rope failed its own internal invariant
// check (Rope.Check); it should never occur in correct use of this
// package and indicates a bug.
const ErrInconsistent = RopeError("rope failed internal consistency check")

func assert(condition bool, msg string) {
	if !condition {
		panic("rope: " + msg)
	}
}
