// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package scanf

import (
	"strconv"

	"github.com/db47h/scanf/format"
)

// A field tracks the input consumed by a single conversion: the width budget
// and at most one lookahead rune that has been read from the stream but not
// yet accepted as part of the token.
//
// The lookahead is only read while the budget allows it, and is pushed back
// by done. Hence a reader that stops on a rune not belonging to its token
// always returns it to the stream, while a reader that stops because its
// budget is spent never reads past its last accepted rune.
//
type field struct {
	s     *Stream
	width int  // 0 means unlimited
	n     int  // runes accepted so far
	r     rune // lookahead
	ok    bool // r holds a lookahead rune
}

// full reports whether the width budget is spent.
//
func (f *field) full() bool {
	return f.width > 0 && f.n >= f.width
}

// peek returns the lookahead rune, reading it if necessary. It returns EOF at
// the end of input or when the budget is spent.
//
func (f *field) peek() rune {
	if f.ok {
		return f.r
	}
	if f.full() {
		return EOF
	}
	f.r = f.s.Next()
	f.ok = true
	return f.r
}

// accept consumes the lookahead rune.
//
func (f *field) accept() {
	f.ok = false
	f.n++
}

// unaccept returns the last accepted rune r to the stream. There must not be
// a pending lookahead other than EOF.
//
func (f *field) unaccept(r rune) {
	f.ok = false
	f.n--
	f.s.Unread(r)
}

// done pushes back the lookahead rune, if any.
//
func (f *field) done() {
	if f.ok {
		f.ok = false
		f.s.Unread(f.r)
	}
}

// skipSpace skips leading whitespace and returns a field whose lookahead is
// the first non-space rune. Whitespace does not count against the width.
//
func skipSpace(s *Stream, width int) *field {
	r := s.Next()
	for format.IsSpace(r) {
		r = s.Next()
	}
	return &field{s: s, width: width, r: r, ok: true}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// digitVal returns the value of r as a digit in the given base, or -1.
//
func digitVal(r rune, base int) int {
	var v int
	switch {
	case r >= '0' && r <= '9':
		v = int(r - '0')
	case r >= 'a' && r <= 'z':
		v = int(r-'a') + 10
	case r >= 'A' && r <= 'Z':
		v = int(r-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}

// sign accepts an optional sign and reports whether it was '-'.
//
func (f *field) sign() bool {
	switch f.peek() {
	case '-':
		f.accept()
		return true
	case '+':
		f.accept()
	}
	return false
}

// readInt reads a signed decimal integer. The value wraps around on overflow.
//
func readInt(s *Stream, width int) (int64, bool) {
	f := skipSpace(s, width)
	defer f.done()
	if f.peek() == EOF {
		return 0, false
	}
	neg := f.sign()
	var v uint64
	digits := 0
	for r := f.peek(); isDigit(r); r = f.peek() {
		v = v*10 + uint64(r-'0')
		digits++
		f.accept()
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		v = -v
	}
	return int64(v), true
}

// readRadix reads an unsigned integer in base 16 or 2, with an optional
// "0x" or "0b" prefix (any case). A lone prefix is not a number, while a "0"
// that is not followed by the prefix letter, or after which the width budget
// is spent, is the number's first digit.
//
func readRadix(s *Stream, width int, base int) (uint64, bool) {
	var prefix rune
	switch base {
	case 16:
		prefix = 'x'
	case 2:
		prefix = 'b'
	default:
		panic("unsupported base " + strconv.Itoa(base))
	}

	f := skipSpace(s, width)
	defer f.done()
	var v uint64
	digits := 0
	if f.peek() == '0' {
		f.accept()
		digits = 1
		if r := f.peek(); r == prefix || r == prefix-'a'+'A' {
			f.accept()
			digits = 0
		}
	}
	for d := digitVal(f.peek(), base); d >= 0; d = digitVal(f.peek(), base) {
		v = v*uint64(base) + uint64(d)
		digits++
		f.accept()
	}
	return v, digits > 0
}

// readFloat reads a decimal floating-point number:
//
//	[sign] digits [ '.' [digits] ] [ ('e'|'E') [sign] digits ]
//
// At least one digit is required in the integer or fractional part. An
// exponent marker that is not followed by digits is ignored and the number
// parsed so far is kept.
//
func readFloat(s *Stream, width int) (float64, bool) {
	f := skipSpace(s, width)
	defer f.done()
	if f.peek() == EOF {
		return 0, false
	}

	buf := make([]byte, 0, 32)
	if f.sign() {
		buf = append(buf, '-')
	}
	digits := 0
	for r := f.peek(); isDigit(r); r = f.peek() {
		buf = append(buf, byte(r))
		digits++
		f.accept()
	}
	if f.peek() == '.' {
		f.accept()
		buf = append(buf, '.')
		for r := f.peek(); isDigit(r); r = f.peek() {
			buf = append(buf, byte(r))
			digits++
			f.accept()
		}
	}
	if digits == 0 {
		return 0, false
	}

	if r := f.peek(); r == 'e' || r == 'E' {
		f.accept()
		last := r
		mark := len(buf)
		buf = append(buf, 'e')
		if r = f.peek(); r == '+' || r == '-' {
			f.accept()
			last = r
			buf = append(buf, byte(r))
		}
		exp := 0
		for r = f.peek(); isDigit(r); r = f.peek() {
			buf = append(buf, byte(r))
			exp++
			f.accept()
		}
		if exp == 0 {
			buf = buf[:mark]
			if r == EOF {
				// nothing to push back: return the dangling marker or sign instead
				f.unaccept(last)
			}
		}
	}

	v, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return 0, false
		}
	}
	return v, true
}
