package snfmt

import (
	"io"
	"math"

	"github.com/snfmt/snfmt/internal/num"
	"github.com/snfmt/snfmt/internal/pad"
	"github.com/snfmt/snfmt/internal/scan"
)

// nullText is the placeholder rendered for a null string argument.
const nullText = "(null)"

// Render formats the template into dst and returns the logical length: the
// number of bytes the output would occupy with an unbounded buffer. len(dst)
// is the capacity; at most len(dst)-1 content bytes are written and, when
// the capacity is nonzero, a terminating NUL always follows them. Callers
// detect truncation by comparing the returned length against the capacity.
//
// Render is pure: it holds no state across calls and may run concurrently
// as long as each call owns its destination.
func Render(dst []byte, format string, args ...Arg) int {
	s := NewSink(dst)
	renderTo(s, format, args)
	return s.Finish()
}

// Append renders the template and appends the result to dst, growing it as
// needed. Unlike Render there is no capacity bound and no terminator.
func Append(dst []byte, format string, args ...Arg) []byte {
	n := Render(nil, format, args...)
	off := len(dst)
	dst = append(dst, make([]byte, n+1)...)
	Render(dst[off:], format, args...)
	return dst[:off+n]
}

// Sprint renders the template into a freshly sized string.
func Sprint(format string, args ...Arg) string {
	return string(Append(nil, format, args...))
}

// Fprint renders the template and forwards the result to w.
func Fprint(w io.Writer, format string, args ...Arg) (int, error) {
	return w.Write(Append(nil, format, args...))
}

// cursor is a single-pass reader over the argument sequence.
type cursor struct {
	args []Arg
	next int
}

func (c *cursor) remaining() int {
	return len(c.args) - c.next
}

func (c *cursor) take() Arg {
	a := c.args[c.next]
	c.next++
	return a
}

func renderTo(s *Sink, format string, args []Arg) {
	cur := cursor{args: args}
	sc := scan.New(format)
	for {
		tok, ok := sc.Next()
		if !ok {
			return
		}
		if !tok.IsDir {
			s.AppendString(tok.Lit)
			continue
		}
		renderDirective(s, &tok.Dir, &cur)
	}
}

// argSlots returns how many arguments the directive will consume.
func argSlots(d *scan.Directive) int {
	if !d.Verb.Consumes() {
		return 0
	}
	n := 1
	if d.WidthArg {
		n++
	}
	if d.PrecArg {
		n++
	}
	return n
}

func renderDirective(s *Sink, d *scan.Directive, cur *cursor) {
	switch d.Verb {
	case scan.VerbPercent:
		s.AppendByte('%')
		return
	case scan.VerbBad:
		// Graceful degradation: the raw pair, no arguments consumed.
		s.AppendByte('%')
		s.AppendByte(d.Char)
		return
	}

	// A directive consumes all of its arguments or none of them. When the
	// sequence cannot satisfy it, the raw directive text passes through.
	if cur.remaining() < argSlots(d) {
		s.AppendString(d.Raw)
		return
	}

	width := d.Width
	left := d.Flags.Has(scan.FlagMinus)
	if d.WidthArg {
		w := int32(cur.take().uint64())
		if w < 0 {
			// Negative argument-sourced width: no padding, left-justified.
			width = 0
			left = true
		} else {
			width = int(w)
		}
	}

	prec := d.Precision
	if d.PrecArg {
		p := int32(cur.take().uint64())
		if p < 0 {
			prec = -1
		} else {
			prec = int(p)
		}
	}

	a := cur.take()

	switch d.Verb {
	case scan.VerbInt, scan.VerbUint, scan.VerbHex, scan.VerbHexUpper, scan.VerbPointer:
		renderInt(s, d, a, width, prec, left)
	case scan.VerbChar:
		renderChar(s, a, width, left)
	case scan.VerbString:
		renderString(s, d, a, width, prec, left)
	case scan.VerbFloat:
		renderFloat(s, d, a, width, prec, left)
	}
}

// narrowSigned truncates v to the bit width the length modifier selects.
func narrowSigned(v int64, m scan.Mod) int64 {
	switch m {
	case scan.ModChar:
		return int64(int8(v))
	case scan.ModShort:
		return int64(int16(v))
	case scan.ModLong, scan.ModLongLong, scan.ModSize:
		return v
	}
	return int64(int32(v))
}

// narrowUnsigned truncates v to the bit width the length modifier selects.
func narrowUnsigned(v uint64, m scan.Mod) uint64 {
	switch m {
	case scan.ModChar:
		return uint64(uint8(v))
	case scan.ModShort:
		return uint64(uint16(v))
	case scan.ModLong, scan.ModLongLong, scan.ModSize:
		return v
	}
	return uint64(uint32(v))
}

func renderInt(s *Sink, d *scan.Directive, a Arg, width, prec int, left bool) {
	var (
		mag    uint64
		sign   byte
		prefix string
		upper  bool
	)
	base := uint64(10)

	switch d.Verb {
	case scan.VerbInt:
		v := narrowSigned(a.int64(), d.Mod)
		mag = uint64(v)
		switch {
		case v < 0:
			sign = '-'
			mag = -mag
		case d.Flags.Has(scan.FlagPlus):
			sign = '+'
		case d.Flags.Has(scan.FlagSpace):
			sign = ' '
		}
	case scan.VerbUint:
		mag = narrowUnsigned(a.uint64(), d.Mod)
	case scan.VerbHex, scan.VerbHexUpper:
		mag = narrowUnsigned(a.uint64(), d.Mod)
		base = 16
		upper = d.Verb == scan.VerbHexUpper
		if d.Flags.Has(scan.FlagAlt) && mag != 0 {
			prefix = "0x"
			if upper {
				prefix = "0X"
			}
		}
	case scan.VerbPointer:
		// Pointer-sized, never narrowed; the 0x prefix is exempt from
		// precision zero-padding.
		mag = a.uint64()
		base = 16
		prefix = "0x"
	}

	n := num.DigitCount(mag, base)
	digits := n
	if prec > digits {
		digits = prec
	}
	visible := digits + len(prefix)
	if sign != 0 {
		visible++
	}

	// An explicit precision already zero-padded the digits; the field fill
	// stays a space in that case.
	zeroFill := d.Flags.Has(scan.FlagZero) && !left && prec < 0
	p := pad.Compute(width, visible, left, zeroFill)

	if p.Fill == '0' {
		// Zero fill sits between the sign/prefix and the digits.
		if sign != 0 {
			s.AppendByte(sign)
		}
		s.AppendString(prefix)
		s.Fill('0', p.Left)
	} else {
		s.Fill(' ', p.Left)
		if sign != 0 {
			s.AppendByte(sign)
		}
		s.AppendString(prefix)
	}
	s.Fill('0', digits-n)

	var tmp [num.MaxDigits]byte
	s.Append(num.AppendDigits(tmp[:0], mag, base, upper))
	s.Fill(' ', p.Right)
}

func renderChar(s *Sink, a Arg, width int, left bool) {
	p := pad.Compute(width, 1, left, false)
	s.Fill(' ', p.Left)
	s.AppendByte(byte(a.uint64()))
	s.Fill(' ', p.Right)
}

func renderString(s *Sink, d *scan.Directive, a Arg, width, prec int, left bool) {
	var t string
	switch {
	case a.IsNull():
		t = nullText
	case a.Kind() == KindString:
		t = a.str
	default:
		// Kind mismatch: deterministic passthrough instead of garbage.
		// Check reports these; the render path stays total.
		s.AppendString(d.Raw)
		return
	}

	// Precision caps the bytes copied from the source; it is never a
	// minimum, and zero-pad does not apply to strings.
	if prec >= 0 && prec < len(t) {
		t = t[:prec]
	}

	p := pad.Compute(width, len(t), left, false)
	s.Fill(' ', p.Left)
	s.AppendString(t)
	s.Fill(' ', p.Right)
}

func renderFloat(s *Sink, d *scan.Directive, a Arg, width, prec int, left bool) {
	f := a.float64()

	// Non-finite values render as fixed words, space-filled.
	var word string
	switch {
	case math.IsNaN(f):
		word = "nan"
	case math.IsInf(f, 1):
		word = "inf"
	case math.IsInf(f, -1):
		word = "-inf"
	}
	if word != "" {
		p := pad.Compute(width, len(word), left, false)
		s.Fill(' ', p.Left)
		s.AppendString(word)
		s.Fill(' ', p.Right)
		return
	}

	var sign byte
	switch {
	case math.Signbit(f):
		sign = '-'
		f = -f
	case d.Flags.Has(scan.FlagPlus):
		sign = '+'
	case d.Flags.Has(scan.FlagSpace):
		sign = ' '
	}

	if prec < 0 {
		prec = 6
	}

	ip := uint64(f)
	frac := f - float64(ip)

	visible := num.DigitCount(ip, 10)
	if prec > 0 {
		visible += 1 + prec
	}
	if sign != 0 {
		visible++
	}

	// For floats the precision counts decimals, not digits, so zero fill
	// is not disabled by it.
	zeroFill := d.Flags.Has(scan.FlagZero) && !left
	p := pad.Compute(width, visible, left, zeroFill)

	if p.Fill == '0' {
		if sign != 0 {
			s.AppendByte(sign)
		}
		s.Fill('0', p.Left)
	} else {
		s.Fill(' ', p.Left)
		if sign != 0 {
			s.AppendByte(sign)
		}
	}

	var tmp [num.MaxDigits]byte
	s.Append(num.AppendDigits(tmp[:0], ip, 10, false))

	if prec > 0 {
		s.AppendByte('.')
		for i := 0; i < prec; i++ {
			frac *= 10
			digit := int(frac)
			if digit > 9 {
				digit = 9
			}
			s.AppendByte('0' + byte(digit))
			frac -= float64(digit)
		}
	}
	s.Fill(' ', p.Right)
}
