// Package snfmt renders C-style format templates into fixed-capacity
// buffers without ever writing past the capacity.
//
// The engine exists for the places Go's fmt cannot go: caller-owned byte
// buffers with a hard bound, NUL-terminated output for C-shaped consumers,
// and guests running inside a WebAssembly engine whose libc expects a
// working snprintf on the other side of the import boundary.
//
// # Architecture Overview
//
// The module is organized into small packages with distinct
// responsibilities:
//
//	snfmt/           Root package: Arg values, Sink, Render and wrappers
//	├── internal/
//	│   ├── scan/    Template parsing into literals and directives
//	│   ├── num/     Integer magnitude to digit strings
//	│   └── pad/     Field-width fill computation
//	├── errors/      Structured error types for validation and the bridge
//	├── hostio/      wazero host module exposing snprintf to C guests
//	└── cmd/snfmt/   CLI renderer with an interactive playground
//
// # Quick Start
//
// Render into a bounded buffer:
//
//	buf := make([]byte, 16)
//	n := snfmt.Render(buf, "x=%05d %s", snfmt.Int(-42), snfmt.String("ok"))
//	// buf holds "x=-0042 ok\x00", n == 10
//
// The return value is the logical length: what the output would measure
// with an unbounded buffer. When it reaches or exceeds the capacity the
// output was truncated, and the caller may re-render into a buffer of
// n+1 bytes:
//
//	if n >= len(buf) {
//	    buf = make([]byte, n+1)
//	    snfmt.Render(buf, ...)
//	}
//
// Render(nil, ...) writes nothing and just measures.
//
// # Directives
//
// A directive is '%', then flags ('-', '0', '+', ' ', '#'), an optional
// width (digits or '*'), an optional precision ('.' then digits or '*'),
// an optional length modifier (hh, h, l, ll, z), and a conversion:
// d i u x X p c s f. Width and precision given as '*' consume one int
// argument each, before the value. "%%" emits a percent sign.
//
// Nothing in a template can make Render fail. Unrecognized conversions
// pass through as literal text, a null string argument renders "(null)",
// and oversized output truncates while the logical length stays exact.
// Callers who would rather reject malformed calls use [Check], which
// reports the first template/argument disagreement as a structured error.
//
// # Arguments
//
// Arguments are tagged values built with [Int], [Uint], [Char], [Ptr],
// [String], [Null], and [Float], consumed strictly left to right. The tags
// replace the untyped variadic convention the classic C contract relies
// on: the pairing between directives and values is explicit in the call
// and verifiable with [Check].
//
// # Thread Safety
//
// Render holds no state between calls and is safe for concurrent use as
// long as each call owns its destination buffer.
package snfmt
