package scan

// Flags holds the directive flag characters seen before the width.
// Repeated flags are idempotent.
type Flags uint8

const (
	FlagMinus Flags = 1 << iota // '-' left-justify
	FlagZero                    // '0' zero-pad
	FlagPlus                    // '+' force sign
	FlagSpace                   // ' ' space sign
	FlagAlt                     // '#' alternate form
)

func (f Flags) Has(g Flags) bool {
	return f&g != 0
}

// Verb is the conversion character class ending a directive.
type Verb uint8

const (
	VerbNone Verb = iota
	VerbInt       // d, i
	VerbUint      // u
	VerbHex       // x
	VerbHexUpper  // X
	VerbPointer   // p
	VerbChar      // c
	VerbString    // s
	VerbFloat     // f, F
	VerbPercent   // %%
	VerbBad       // unrecognized conversion character
)

var verbNames = [...]string{
	VerbNone:     "none",
	VerbInt:      "d",
	VerbUint:     "u",
	VerbHex:      "x",
	VerbHexUpper: "X",
	VerbPointer:  "p",
	VerbChar:     "c",
	VerbString:   "s",
	VerbFloat:    "f",
	VerbPercent:  "%",
	VerbBad:      "bad",
}

func (v Verb) String() string {
	if int(v) < len(verbNames) {
		return verbNames[v]
	}
	return "unknown"
}

// Consumes reports whether the verb pulls a value from the argument
// sequence. Percent literals and unrecognized conversions consume nothing,
// including any argument-sourced width or precision they carried.
func (v Verb) Consumes() bool {
	return v != VerbPercent && v != VerbBad
}

// Numeric reports whether the verb renders through the numeric path.
func (v Verb) Numeric() bool {
	switch v {
	case VerbInt, VerbUint, VerbHex, VerbHexUpper, VerbPointer, VerbFloat:
		return true
	}
	return false
}

// Mod is the length modifier selecting the argument's bit width.
type Mod uint8

const (
	ModNone     Mod = iota // 32-bit
	ModChar                // hh, 8-bit
	ModShort               // h, 16-bit
	ModLong                // l, 64-bit
	ModLongLong            // ll, 64-bit
	ModSize                // z, pointer-sized
)

var modNames = [...]string{
	ModNone:     "",
	ModChar:     "hh",
	ModShort:    "h",
	ModLong:     "l",
	ModLongLong: "ll",
	ModSize:     "z",
}

func (m Mod) String() string {
	if int(m) < len(modNames) {
		return modNames[m]
	}
	return "unknown"
}

// Directive is one parsed conversion instruction.
// Width and Precision are -1 when absent; when WidthArg or PrecArg is set
// the corresponding value must be pulled from the argument sequence instead.
type Directive struct {
	Raw       string // full directive text including the leading '%'
	Width     int
	Precision int
	Offset    int // byte offset of the '%' in the template
	Flags     Flags
	Mod       Mod
	Verb      Verb
	Char      byte // conversion character as written
	WidthArg  bool
	PrecArg   bool
}

// Token is either a run of literal template bytes or one directive.
type Token struct {
	Lit   string
	Dir   Directive
	IsDir bool
}

// Scanner walks a template left to right, emitting tokens in order.
// The template is read once and never modified.
type Scanner struct {
	src string
	pos int
}

func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token. ok is false at end of template.
func (s *Scanner) Next() (tok Token, ok bool) {
	if s.pos >= len(s.src) {
		return Token{}, false
	}

	if s.src[s.pos] != '%' {
		start := s.pos
		for s.pos < len(s.src) && s.src[s.pos] != '%' {
			s.pos++
		}
		return Token{Lit: s.src[start:s.pos]}, true
	}

	start := s.pos
	s.pos++ // consume '%'

	// A lone trailing '%' is passed through literally.
	if s.pos >= len(s.src) {
		return Token{Lit: s.src[start:]}, true
	}

	d := Directive{Width: -1, Precision: -1, Offset: start}

	s.flags(&d)
	s.width(&d)
	s.precision(&d)
	s.modifier(&d)

	// Template ended mid-directive: pass the partial text through.
	if s.pos >= len(s.src) {
		return Token{Lit: s.src[start:]}, true
	}

	c := s.src[s.pos]
	s.pos++
	d.Char = c
	d.Verb = classify(c)
	d.Raw = s.src[start:s.pos]
	return Token{Dir: d, IsDir: true}, true
}

func (s *Scanner) flags(d *Directive) {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '-':
			d.Flags |= FlagMinus
		case '0':
			d.Flags |= FlagZero
		case '+':
			d.Flags |= FlagPlus
		case ' ':
			d.Flags |= FlagSpace
		case '#':
			d.Flags |= FlagAlt
		default:
			return
		}
		s.pos++
	}
}

func (s *Scanner) width(d *Directive) {
	if s.pos < len(s.src) && s.src[s.pos] == '*' {
		d.WidthArg = true
		s.pos++
		return
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		if d.Width < 0 {
			d.Width = 0
		}
		d.Width = d.Width*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
}

func (s *Scanner) precision(d *Directive) {
	if s.pos >= len(s.src) || s.src[s.pos] != '.' {
		return
	}
	s.pos++
	// A '.' with no digits means precision zero.
	d.Precision = 0
	if s.pos < len(s.src) && s.src[s.pos] == '*' {
		d.PrecArg = true
		s.pos++
		return
	}
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		d.Precision = d.Precision*10 + int(s.src[s.pos]-'0')
		s.pos++
	}
}

func (s *Scanner) modifier(d *Directive) {
	if s.pos >= len(s.src) {
		return
	}
	switch s.src[s.pos] {
	case 'h':
		d.Mod = ModShort
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == 'h' {
			d.Mod = ModChar
			s.pos++
		}
	case 'l':
		d.Mod = ModLong
		s.pos++
		if s.pos < len(s.src) && s.src[s.pos] == 'l' {
			d.Mod = ModLongLong
			s.pos++
		}
	case 'z':
		d.Mod = ModSize
		s.pos++
	}
}

func classify(c byte) Verb {
	switch c {
	case 'd', 'i':
		return VerbInt
	case 'u':
		return VerbUint
	case 'x':
		return VerbHex
	case 'X':
		return VerbHexUpper
	case 'p':
		return VerbPointer
	case 'c':
		return VerbChar
	case 's':
		return VerbString
	case 'f', 'F':
		return VerbFloat
	case '%':
		return VerbPercent
	}
	return VerbBad
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
