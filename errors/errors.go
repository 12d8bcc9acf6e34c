package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which surface produced the error
type Phase string

const (
	PhaseCheck Phase = "check" // template/argument validation
	PhaseHost  Phase = "host"  // guest-facing host functions
)

// Kind categorizes the error
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindMissingArg   Kind = "missing_argument"
	KindExtraArg     Kind = "extra_argument"
	KindBadDirective Kind = "bad_directive"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindNilPointer   Kind = "nil_pointer"
	KindUnterminated Kind = "unterminated"
	KindInvalidInput Kind = "invalid_input"
	KindRegistration Kind = "registration"
)

// Error is the structured error type used throughout the module.
// The rendering path itself never fails; these errors serve the strict
// validation surface and the guest memory bridge.
type Error struct {
	Cause     error
	Phase     Phase
	Kind      Kind
	Directive string // raw directive text, e.g. "%5d"
	Want      string // expected argument kind
	Got       string // supplied argument kind
	Detail    string
	Offset    int // byte offset in the template, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Directive != "" {
		b.WriteString(" at ")
		b.WriteString(e.Directive)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Directive sets the raw directive text
func (b *Builder) Directive(raw string) *Builder {
	b.err.Directive = raw
	return b
}

// Offset sets the template byte offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Want sets the expected argument kind
func (b *Builder) Want(kind string) *Builder {
	b.err.Want = kind
	return b
}

// Got sets the supplied argument kind
func (b *Builder) Got(kind string) *Builder {
	b.err.Got = kind
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// TypeMismatch creates a type mismatch error for one directive
func TypeMismatch(phase Phase, offset int, directive, want, got string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindTypeMismatch,
		Directive: directive,
		Offset:    offset,
		Want:      want,
		Got:       got,
	}
}

// MissingArg creates an exhausted-argument-sequence error
func MissingArg(phase Phase, offset int, directive, want string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindMissingArg,
		Directive: directive,
		Offset:    offset,
		Want:      want,
		Detail:    "argument sequence exhausted",
	}
}

// ExtraArgs creates an error for arguments left over after the template
func ExtraArgs(phase Phase, count int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindExtraArg,
		Offset: -1,
		Detail: fmt.Sprintf("%d argument(s) not consumed by the template", count),
	}
}

// BadDirective creates an unrecognized-conversion error
func BadDirective(phase Phase, offset int, directive string) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindBadDirective,
		Directive: directive,
		Offset:    offset,
		Detail:    "unrecognized conversion",
	}
}

// OutOfBounds creates a guest memory access error
func OutOfBounds(phase Phase, addr, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: -1,
		Detail: fmt.Sprintf("memory access at 0x%x (%d bytes) out of bounds", addr, length),
	}
}

// Unterminated creates an error for a guest string with no terminator in reach
func Unterminated(phase Phase, addr uint32, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnterminated,
		Offset: -1,
		Detail: fmt.Sprintf("no terminator within %d bytes of 0x%x", limit, addr),
	}
}

// NilPointer creates a null guest pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Offset: -1,
		Detail: what,
	}
}

// InvalidInput creates a generic invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Registration creates a host function registration error
func Registration(phase Phase, module, function string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindRegistration,
		Offset: -1,
		Detail: fmt.Sprintf("register %s.%s", module, function),
		Cause:  cause,
	}
}
