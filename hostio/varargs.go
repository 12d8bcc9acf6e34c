package hostio

import (
	"math"

	snfmt "github.com/snfmt/snfmt"
	"github.com/snfmt/snfmt/errors"
	"github.com/snfmt/snfmt/internal/scan"
)

// maxCString bounds the scan for a guest string terminator.
const maxCString = 1 << 20

// VarargReader walks a guest va_list. On wasm32 the C ABI spills variadic
// arguments to consecutive 4-byte slots, with 64-bit values aligned to 8
// bytes; doubles travel promoted to 64 bits.
type VarargReader struct {
	mem snfmt.Memory
	off uint32
}

func NewVarargReader(mem snfmt.Memory, ptr uint32) *VarargReader {
	return &VarargReader{mem: mem, off: ptr}
}

func (r *VarargReader) align8() {
	r.off = (r.off + 7) &^ 7
}

func (r *VarargReader) Int32() (int32, error) {
	v, ok := r.mem.ReadUint32Le(r.off)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseHost, r.off, 4)
	}
	r.off += 4
	return int32(v), nil
}

func (r *VarargReader) Uint32() (uint32, error) {
	v, ok := r.mem.ReadUint32Le(r.off)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseHost, r.off, 4)
	}
	r.off += 4
	return v, nil
}

func (r *VarargReader) Uint64() (uint64, error) {
	r.align8()
	v, ok := r.mem.ReadUint64Le(r.off)
	if !ok {
		return 0, errors.OutOfBounds(errors.PhaseHost, r.off, 8)
	}
	r.off += 8
	return v, nil
}

func (r *VarargReader) Float64() (float64, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// readCString copies the NUL-terminated guest string at ptr.
func readCString(mem snfmt.Memory, ptr uint32) (string, error) {
	var b []byte
	for i := 0; i < maxCString; i++ {
		c, ok := mem.ReadByte(ptr + uint32(i))
		if !ok {
			return "", errors.OutOfBounds(errors.PhaseHost, ptr+uint32(i), 1)
		}
		if c == 0 {
			return string(b), nil
		}
		b = append(b, c)
	}
	return "", errors.Unterminated(errors.PhaseHost, ptr, maxCString)
}

// wide reports whether the length modifier selects a 64-bit va slot.
// wasm32 is ILP32: long and size_t stay 32-bit, only long long widens.
func wide(m scan.Mod) bool {
	return m == scan.ModLongLong
}

// CollectArgs decodes the argument sequence the format string will consume
// from the guest va_list into tagged values, in directive order.
func CollectArgs(mem snfmt.Memory, format string, vaPtr uint32) ([]snfmt.Arg, error) {
	r := NewVarargReader(mem, vaPtr)
	var args []snfmt.Arg

	sc := scan.New(format)
	for {
		tok, ok := sc.Next()
		if !ok {
			return args, nil
		}
		if !tok.IsDir || !tok.Dir.Verb.Consumes() {
			continue
		}
		d := tok.Dir

		if d.WidthArg {
			v, err := r.Int32()
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.Int(int64(v)))
		}
		if d.PrecArg {
			v, err := r.Int32()
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.Int(int64(v)))
		}

		switch d.Verb {
		case scan.VerbInt:
			if wide(d.Mod) {
				v, err := r.Uint64()
				if err != nil {
					return nil, err
				}
				args = append(args, snfmt.Int(int64(v)))
			} else {
				v, err := r.Int32()
				if err != nil {
					return nil, err
				}
				args = append(args, snfmt.Int(int64(v)))
			}
		case scan.VerbUint, scan.VerbHex, scan.VerbHexUpper:
			if wide(d.Mod) {
				v, err := r.Uint64()
				if err != nil {
					return nil, err
				}
				args = append(args, snfmt.Uint(v))
			} else {
				v, err := r.Uint32()
				if err != nil {
					return nil, err
				}
				args = append(args, snfmt.Uint(uint64(v)))
			}
		case scan.VerbPointer:
			v, err := r.Uint32()
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.Ptr(uintptr(v)))
		case scan.VerbChar:
			v, err := r.Int32()
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.Char(byte(v)))
		case scan.VerbFloat:
			v, err := r.Float64()
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.Float(v))
		case scan.VerbString:
			p, err := r.Uint32()
			if err != nil {
				return nil, err
			}
			if p == 0 {
				args = append(args, snfmt.Null())
				continue
			}
			t, err := readCString(mem, p)
			if err != nil {
				return nil, err
			}
			args = append(args, snfmt.String(t))
		}
	}
}
