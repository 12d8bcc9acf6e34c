// Package errors provides structured error types for template validation
// and the guest memory bridge.
//
// Errors carry a Phase (which surface failed) and a Kind (what went wrong),
// plus the offending directive and its template offset when known. Use the
// Builder for incremental construction or the convenience constructors for
// common patterns:
//
//	err := errors.New(errors.PhaseCheck, errors.KindTypeMismatch).
//	    Directive("%5d").
//	    Offset(3).
//	    Want("int").
//	    Got("string").
//	    Build()
//
// Two errors match under errors.Is when their Phase and Kind agree, so
// callers can classify failures without string matching.
//
// Rendering itself never returns an error: every malformed template or
// argument degrades to deterministic output. This package exists for the
// callers who want the strict contract instead.
package errors
