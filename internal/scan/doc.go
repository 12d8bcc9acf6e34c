// Package scan parses format templates into literal runs and conversion
// directives.
//
// The scanner is a single-pass state machine over the template bytes:
//
//	Literal → '%' → Flags → Width → Precision → LengthModifier → Conversion
//
// It records structure only and never touches the argument sequence; whether
// a width or precision is argument-sourced is reported on the Directive so
// the caller controls all argument consumption. Malformed input degrades to
// literal passthrough: a lone trailing '%', a directive cut off by the end of
// the template, and unrecognized conversion characters all surface as tokens
// the renderer can emit verbatim.
//
// This package is internal to the renderer.
package scan
