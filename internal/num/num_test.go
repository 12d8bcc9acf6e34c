package num

import (
	"math"
	"testing"
)

func TestDigitCount(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		base uint64
		want int
	}{
		{"zero", 0, 10, 1},
		{"one digit", 9, 10, 1},
		{"two digits", 10, 10, 2},
		{"42", 42, 10, 2},
		{"max uint64 base 10", math.MaxUint64, 10, 20},
		{"zero hex", 0, 16, 1},
		{"15 hex", 15, 16, 1},
		{"16 hex", 16, 16, 2},
		{"max uint64 base 16", math.MaxUint64, 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigitCount(tt.v, tt.base); got != tt.want {
				t.Errorf("DigitCount(%d, %d) = %d, want %d", tt.v, tt.base, got, tt.want)
			}
		})
	}
}

func TestAppendDigits(t *testing.T) {
	tests := []struct {
		name  string
		v     uint64
		base  uint64
		upper bool
		want  string
	}{
		{"zero", 0, 10, false, "0"},
		{"decimal", 12345, 10, false, "12345"},
		{"max uint64", math.MaxUint64, 10, false, "18446744073709551615"},
		{"hex lower", 0xdeadbeef, 16, false, "deadbeef"},
		{"hex upper", 0xdeadbeef, 16, true, "DEADBEEF"},
		{"hex zero", 0, 16, false, "0"},
		{"max uint64 hex", math.MaxUint64, 16, false, "ffffffffffffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(AppendDigits(nil, tt.v, tt.base, tt.upper))
			if got != tt.want {
				t.Errorf("AppendDigits(%d, %d) = %q, want %q", tt.v, tt.base, got, tt.want)
			}
			if len(got) != DigitCount(tt.v, tt.base) {
				t.Errorf("DigitCount disagrees with AppendDigits: %d vs %d", DigitCount(tt.v, tt.base), len(got))
			}
		})
	}
}

func TestAppendDigits_AppendsToExisting(t *testing.T) {
	got := string(AppendDigits([]byte("x="), 7, 10, false))
	if got != "x=7" {
		t.Errorf("got %q, want %q", got, "x=7")
	}
}
