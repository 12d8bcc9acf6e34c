package pad

// Plan describes how one rendered item is laid out within its field.
// Left bytes of Fill precede the content and Right spaces follow it;
// at most one of the two is nonzero.
type Plan struct {
	Left  int
	Right int
	Fill  byte
}

// Compute returns the fill plan for content of the given visible length.
// Width < 0 means no field width. Zero fill applies only when the caller
// determined it is legal for the conversion (numeric, not left-justified,
// no explicit precision); left-justified content is always space-filled
// on the right.
func Compute(width, visible int, leftJustify, zeroFill bool) Plan {
	p := Plan{Fill: ' '}
	if width <= visible {
		return p
	}
	gap := width - visible
	if leftJustify {
		p.Right = gap
		return p
	}
	p.Left = gap
	if zeroFill {
		p.Fill = '0'
	}
	return p
}
