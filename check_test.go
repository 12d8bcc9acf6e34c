package snfmt

import (
	stderrors "errors"
	"testing"

	"github.com/snfmt/snfmt/errors"
)

func TestCheck_Valid(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []Arg
	}{
		{"no directives", "hello", nil},
		{"matching kinds", "%d %u %s %c %f %p", []Arg{
			Int(1), Uint(2), String("s"), Char('c'), Float(1.5), Ptr(0x10),
		}},
		{"int accepted for unsigned verbs", "%u %x", []Arg{Int(1), Int(2)}},
		{"uint accepted for pointer", "%p", []Arg{Uint(0x10)}},
		{"null string", "%s", []Arg{Null()}},
		{"starred width and precision", "%*.*d", []Arg{Int(8), Int(3), Int(42)}},
		{"percent literal consumes nothing", "%%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Check(tt.format, tt.args...); err != nil {
				t.Errorf("Check(%q) = %v, want nil", tt.format, err)
			}
		})
	}
}

func TestCheck_Violations(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []Arg
		kind   errors.Kind
	}{
		{"missing value", "%d", nil, errors.KindMissingArg},
		{"missing width", "%*d", []Arg{}, errors.KindMissingArg},
		{"string for int", "%d", []Arg{String("x")}, errors.KindTypeMismatch},
		{"float for string", "%s", []Arg{Float(1)}, errors.KindTypeMismatch},
		{"string as width", "%*d", []Arg{String("w"), Int(1)}, errors.KindTypeMismatch},
		{"leftover args", "%d", []Arg{Int(1), Int(2)}, errors.KindExtraArg},
		{"unrecognized conversion", "%q", nil, errors.KindBadDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.format, tt.args...)
			if err == nil {
				t.Fatalf("Check(%q) = nil, want %s", tt.format, tt.kind)
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCheck, Kind: tt.kind}) {
				t.Errorf("Check(%q) = %v, want kind %s", tt.format, err, tt.kind)
			}
		})
	}
}

func TestCheck_ReportsDirectiveAndOffset(t *testing.T) {
	err := Check("ab%5dcd")
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("Check returned %T, want *errors.Error", err)
	}
	if e.Directive != "%5d" {
		t.Errorf("directive = %q, want %q", e.Directive, "%5d")
	}
	if e.Offset != 2 {
		t.Errorf("offset = %d, want 2", e.Offset)
	}
}
