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
	"io"
	"strconv"
	"strings"

	"github.com/db47h/scanf/format"
)

// A Scanner matches templates against a Stream.
//
// A Scanner is not safe for concurrent use.
//
type Scanner struct {
	s     *Stream
	trace func(format string, args ...interface{})
	err   error
}

// NewScanner returns a Scanner reading from r.
//
func NewScanner(r io.Reader, opts ...Option) *Scanner {
	return NewFileScanner(NewFile("", r), opts...)
}

// NewFileScanner returns a Scanner reading from f.
//
func NewFileScanner(f *File, opts ...Option) *Scanner {
	o := options{trace: defTrace}
	for _, opt := range opts {
		opt(&o)
	}
	return &Scanner{
		s:     NewStream(f),
		trace: o.trace,
	}
}

// Stream returns the scanner's input stream.
//
func (sc *Scanner) Stream() *Stream {
	return sc.s
}

// Err returns the error that stopped the last scan, if it was caused by an
// I/O error or by an unusable output slot. Matching and conversion failures
// are not errors: they are only reflected in the count returned by Scan.
//
func (sc *Scanner) Err() error {
	return sc.err
}

// Scan matches template against the input and stores converted values into
// slots, in order, then returns the number of values stored.
//
// Each slot must be a pointer to a value able to hold the result of the
// corresponding conversion: any integer type for %d, %x, %b and %B, float32 or
// float64 for %f, bool for %B, and for %c, %s and %N a *string, *[]byte,
// *[]rune, or a []byte or []rune buffer. Suppressed conversions (%*d) and %%
// do not take a slot.
//
// Scanning stops at the first directive that the input does not satisfy. The
// input that follows, including any rune read to detect the mismatch, is left
// in the stream for the next scan. Slots for that directive and the ones after
// it are left untouched.
//
func (sc *Scanner) Scan(template string, slots ...interface{}) int {
	sc.err = nil
	out := slotsOf(slots)
	p := format.NewParser(template)
	n := 0
	for {
		d := p.Next()
		switch d.Kind {
		case format.End:
			sc.err = sc.s.Err()
			return n
		case format.Invalid:
			sc.trace("%d: %s: unknown verb, stop", d.Offset, d)
			return n
		case format.Space:
			r := sc.s.Next()
			for format.IsSpace(r) {
				r = sc.s.Next()
			}
			sc.s.Unread(r)
			continue
		case format.Literal:
			if !sc.match(d.Char) {
				sc.trace("%d: %q: no match at input offset %d, stop", d.Offset, d.Char, sc.s.Offset())
				sc.err = sc.s.Err()
				return n
			}
			continue
		}

		if d.Verb == format.VerbPercent {
			if !sc.match('%') {
				sc.trace("%d: %s: no match at input offset %d, stop", d.Offset, d, sc.s.Offset())
				sc.err = sc.s.Err()
				return n
			}
			continue
		}

		v, ok := sc.convert(&d)
		if !ok {
			sc.trace("%d: %s: conversion failed at input offset %d, stop", d.Offset, d, sc.s.Offset())
			sc.err = sc.s.Err()
			return n
		}
		if d.Suppress {
			sc.trace("%d: %s: skipped %v", d.Offset, d, display(v))
			continue
		}
		if err := out.store(&d, v); err != nil {
			sc.trace("%d: %s: %v, stop", d.Offset, d, err)
			sc.err = err
			return n
		}
		n++
		sc.trace("%d: %s: stored %v", d.Offset, d, display(v))
	}
}

// display makes text values readable in trace messages.
//
func display(v interface{}) interface{} {
	if rs, ok := v.([]rune); ok {
		return strconv.Quote(string(rs))
	}
	return v
}

func slotsOf(args []interface{}) *slots {
	return &slots{args: args}
}

// match reads one rune and checks that it is r. On mismatch, the rune is
// pushed back.
//
func (sc *Scanner) match(r rune) bool {
	c := sc.s.Next()
	if c != r {
		sc.s.Unread(c)
		return false
	}
	return true
}

// convert runs the token reader for d and returns the value to store,
// truncated according to d.Size.
//
func (sc *Scanner) convert(d *format.Directive) (interface{}, bool) {
	switch d.Verb {
	case format.VerbInt:
		v, ok := readInt(sc.s, d.Width)
		return truncInt(v, d.Size), ok
	case format.VerbHex:
		v, ok := readRadix(sc.s, d.Width, 16)
		return truncUint(v, d.Size), ok
	case format.VerbBinary:
		v, ok := readRadix(sc.s, d.Width, 2)
		return truncUint(v, d.Size), ok
	case format.VerbFloat:
		v, ok := readFloat(sc.s, d.Width)
		if d.Size == format.SizeNone || d.Size == format.SizeShort || d.Size == format.SizeChar {
			v = float64(float32(v))
		}
		return v, ok
	case format.VerbChar:
		return readChars(sc.s, d.Width)
	case format.VerbWord:
		return readWord(sc.s, d.Width)
	case format.VerbLine:
		return readLine(sc.s, d.Width)
	case format.VerbBool:
		return readBool(sc.s, d.Width)
	}
	panic("scanf: unhandled verb " + d.Verb.String())
}

func truncInt(v int64, sz format.Size) int64 {
	switch sz {
	case format.SizeNone:
		return int64(int32(v))
	case format.SizeShort:
		return int64(int16(v))
	case format.SizeChar:
		return int64(int8(v))
	}
	return v
}

func truncUint(v uint64, sz format.Size) uint64 {
	switch sz {
	case format.SizeNone:
		return uint64(uint32(v))
	case format.SizeShort:
		return uint64(uint16(v))
	case format.SizeChar:
		return uint64(uint8(v))
	}
	return v
}

// Sscan scans the string input. See Scanner.Scan.
//
func Sscan(input, template string, slots ...interface{}) int {
	return NewScanner(strings.NewReader(input)).Scan(template, slots...)
}

// Fscan scans r with a new Scanner. Any rune that the scan reads but leaves
// in the stream is lost when Fscan returns; use a Scanner to run several
// scans over the same input.
//
func Fscan(r io.Reader, template string, slots ...interface{}) int {
	return NewScanner(r).Scan(template, slots...)
}
