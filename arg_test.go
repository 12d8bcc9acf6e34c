package snfmt

import (
	"math"
	"testing"
)

func TestArgConstructors(t *testing.T) {
	tests := []struct {
		name string
		arg  Arg
		kind ArgKind
	}{
		{"int", Int(-42), KindInt},
		{"uint", Uint(42), KindUint},
		{"char", Char('x'), KindChar},
		{"pointer", Ptr(0xdeadbeef), KindPointer},
		{"string", String("hi"), KindString},
		{"null", Null(), KindString},
		{"float", Float(3.14), KindFloat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.arg.Kind(); got != tt.kind {
				t.Errorf("Kind() = %s, want %s", got, tt.kind)
			}
		})
	}
}

func TestArgPayloads(t *testing.T) {
	if v := Int(-7).int64(); v != -7 {
		t.Errorf("Int payload = %d, want -7", v)
	}
	if v := Uint(math.MaxUint64).uint64(); v != math.MaxUint64 {
		t.Errorf("Uint payload = %d", v)
	}
	if v := Float(2.5).float64(); v != 2.5 {
		t.Errorf("Float payload = %v, want 2.5", v)
	}
	if v := Char('A').uint64(); v != 'A' {
		t.Errorf("Char payload = %d, want %d", v, 'A')
	}
}

func TestArgNull(t *testing.T) {
	if !Null().IsNull() {
		t.Error("Null().IsNull() = false")
	}
	if String("").IsNull() {
		t.Error("empty string reported as null")
	}
}

func TestArgKindString(t *testing.T) {
	if KindPointer.String() != "pointer" || KindNone.String() != "none" {
		t.Error("kind names wrong")
	}
	if ArgKind(200).String() != "unknown" {
		t.Error("out-of-range kind name wrong")
	}
}
