package snfmt

// Sink is a bounded append cursor over a caller-owned buffer. Writes that
// overrun the capacity are clipped, but the position keeps advancing by the
// full requested length so the final logical length is accurate even when
// output was truncated. The last buffer slot is always reserved for the
// terminator.
//
// A Sink over a nil or empty buffer performs no writes but still counts,
// which is how callers size a buffer before allocating it.
type Sink struct {
	buf []byte
	pos int
}

// NewSink returns a sink writing into buf. len(buf) is the capacity.
func NewSink(buf []byte) *Sink {
	return &Sink{buf: buf}
}

// limit is the last writable index, one short of capacity.
func (s *Sink) limit() int {
	if len(s.buf) == 0 {
		return 0
	}
	return len(s.buf) - 1
}

// Append copies as much of p as fits and advances by len(p).
func (s *Sink) Append(p []byte) {
	if s.pos < s.limit() {
		copy(s.buf[s.pos:s.limit()], p)
	}
	s.pos += len(p)
}

// AppendString copies as much of t as fits and advances by len(t).
func (s *Sink) AppendString(t string) {
	if s.pos < s.limit() {
		copy(s.buf[s.pos:s.limit()], t)
	}
	s.pos += len(t)
}

// AppendByte copies c if it fits and advances by one.
func (s *Sink) AppendByte(c byte) {
	if s.pos < s.limit() {
		s.buf[s.pos] = c
	}
	s.pos++
}

// Fill appends n copies of c.
func (s *Sink) Fill(c byte, n int) {
	for ; n > 0 && s.pos < s.limit(); n-- {
		s.buf[s.pos] = c
		s.pos++
	}
	if n > 0 {
		s.pos += n
	}
}

// Len returns the logical length so far: the bytes that would have been
// written had the buffer been unbounded.
func (s *Sink) Len() int {
	return s.pos
}

// Cap returns the buffer capacity.
func (s *Sink) Cap() int {
	return len(s.buf)
}

// Truncated reports whether output was clipped by the capacity.
func (s *Sink) Truncated() bool {
	return len(s.buf) > 0 && s.pos > s.limit()
}

// Finish writes the terminator and returns the logical length. With a zero
// capacity nothing is written. Finish does not reset the cursor; a Sink is
// single-use like the render call that owns it.
func (s *Sink) Finish() int {
	if len(s.buf) > 0 {
		s.buf[min(s.pos, s.limit())] = 0
	}
	return s.pos
}
