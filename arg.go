package snfmt

import "math"

// ArgKind tags the value carried by an Arg.
type ArgKind uint8

const (
	KindNone ArgKind = iota
	KindInt
	KindUint
	KindChar
	KindPointer
	KindString
	KindFloat
)

var argKindNames = [...]string{
	KindNone:    "none",
	KindInt:     "int",
	KindUint:    "uint",
	KindChar:    "char",
	KindPointer: "pointer",
	KindString:  "string",
	KindFloat:   "float",
}

func (k ArgKind) String() string {
	if int(k) < len(argKindNames) {
		return argKindNames[k]
	}
	return "unknown"
}

// Arg is one caller-supplied value, tagged with its kind. The argument
// sequence passed to Render replaces the untyped variadic convention of the
// classic contract: each directive consumes tagged values in left-to-right
// order, and the pairing of directive to kind is checkable up front.
//
// The zero Arg has KindNone and renders nothing useful; build arguments with
// the constructors below.
type Arg struct {
	str  string
	num  uint64
	kind ArgKind
	null bool
}

// Int builds a signed integer argument. Directives narrow it to the width
// their length modifier selects (32 bits when unmodified).
func Int(v int64) Arg {
	return Arg{kind: KindInt, num: uint64(v)}
}

// Uint builds an unsigned integer argument.
func Uint(v uint64) Arg {
	return Arg{kind: KindUint, num: v}
}

// Char builds a single-character argument.
func Char(c byte) Arg {
	return Arg{kind: KindChar, num: uint64(c)}
}

// Ptr builds a pointer argument rendered as a hex address.
func Ptr(p uintptr) Arg {
	return Arg{kind: KindPointer, num: uint64(p)}
}

// String builds a string argument.
func String(s string) Arg {
	return Arg{kind: KindString, str: s}
}

// Null builds a null string argument. It renders as the fixed placeholder
// text rather than failing.
func Null() Arg {
	return Arg{kind: KindString, null: true}
}

// Float builds a floating-point argument.
func Float(v float64) Arg {
	return Arg{kind: KindFloat, num: math.Float64bits(v)}
}

// Kind returns the argument's tag.
func (a Arg) Kind() ArgKind {
	return a.kind
}

// IsNull reports whether a is the null string argument.
func (a Arg) IsNull() bool {
	return a.kind == KindString && a.null
}

func (a Arg) int64() int64 {
	return int64(a.num)
}

func (a Arg) uint64() uint64 {
	return a.num
}

func (a Arg) float64() float64 {
	return math.Float64frombits(a.num)
}
