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
	"math"
	"strings"
	"testing"
)

func testStream(in string) *Stream {
	return NewStream(NewFile("test", strings.NewReader(in)))
}

// rest drains s and returns what was left in it.
func rest(s *Stream) string {
	var b strings.Builder
	for r := s.Next(); r != EOF; r = s.Next() {
		b.WriteRune(r)
	}
	return b.String()
}

type readTest struct {
	in    string
	width int
	ok    bool
	v     interface{}
	rest  string
}

func runReadTests(t *testing.T, td []readTest, read func(s *Stream, width int) (interface{}, bool)) {
	t.Helper()
	for _, tt := range td {
		t.Run(tt.in, func(t *testing.T) {
			s := testStream(tt.in)
			v, ok := read(s, tt.width)
			if ok != tt.ok {
				t.Fatalf("%q width %d: got ok=%v, expected %v", tt.in, tt.width, ok, tt.ok)
			}
			if ok && v != tt.v {
				t.Errorf("%q width %d: got %v (%T), expected %v (%T)", tt.in, tt.width, v, v, tt.v, tt.v)
			}
			if r := rest(s); r != tt.rest {
				t.Errorf("%q width %d: left %q in stream, expected %q", tt.in, tt.width, r, tt.rest)
			}
		})
	}
}

func Test_readInt(t *testing.T) {
	td := []readTest{
		{"42", 0, true, int64(42), ""},
		{"  -17x", 0, true, int64(-17), "x"},
		{"\t\n+5", 0, true, int64(5), ""},
		{"007", 0, true, int64(7), ""},
		{"12 34", 0, true, int64(12), " 34"},
		{"12345", 3, true, int64(123), "45"},
		{"  -12345", 3, true, int64(-12), "345"},
		{"-5", 1, false, nil, "5"},
		{"-a", 0, false, nil, "a"},
		{"abc", 0, false, nil, "abc"},
		{"", 0, false, nil, ""},
		{"   ", 0, false, nil, ""},
		{"9223372036854775807", 0, true, int64(math.MaxInt64), ""},
		{"-9223372036854775808", 0, true, int64(math.MinInt64), ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		return readInt(s, width)
	})
}

func Test_readHex(t *testing.T) {
	td := []readTest{
		{"ff", 0, true, uint64(255), ""},
		{"0x1A", 0, true, uint64(26), ""},
		{"0X1a", 0, true, uint64(26), ""},
		{"  beef cafe", 0, true, uint64(0xbeef), " cafe"},
		{"123g", 0, true, uint64(0x123), "g"},
		{"0b1", 0, true, uint64(0xb1), ""},
		{"0", 0, true, uint64(0), ""},
		{"0x12", 1, true, uint64(0), "x12"},
		{"0x12", 3, true, uint64(1), "2"},
		{"abcdef", 4, true, uint64(0xabcd), "ef"},
		{"0x", 0, false, nil, ""},
		{"0xg", 0, false, nil, "g"},
		{"0x12", 2, false, nil, "12"},
		{"zz", 0, false, nil, "zz"},
		{"", 0, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		return readRadix(s, width, 16)
	})
}

func Test_readBinary(t *testing.T) {
	td := []readTest{
		{"101", 0, true, uint64(5), ""},
		{"0b101", 0, true, uint64(5), ""},
		{"0B11 1", 0, true, uint64(3), " 1"},
		{"102", 0, true, uint64(2), "2"},
		{"0x1", 0, true, uint64(0), "x1"},
		{"1111", 2, true, uint64(3), "11"},
		{"0b", 0, false, nil, ""},
		{"2", 0, false, nil, "2"},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		return readRadix(s, width, 2)
	})
}

func Test_readFloat(t *testing.T) {
	td := []readTest{
		{"3.14", 0, true, 3.14, ""},
		{" -2.71 ", 0, true, -2.71, " "},
		{"+10", 0, true, 10.0, ""},
		{"5.", 0, true, 5.0, ""},
		{".5", 0, true, 0.5, ""},
		{"-.5", 0, true, -0.5, ""},
		{"7.x", 0, true, 7.0, "x"},
		{"1.23e3", 0, true, 1230.0, ""},
		{"5.6E-3", 0, true, 5.6e-3, ""},
		{"1.5e2.3", 0, true, 150.0, ".3"},
		{"5e", 0, true, 5.0, "e"},
		{"5ex", 0, true, 5.0, "x"},
		{"1e+", 0, true, 1.0, "+"},
		{"1e-y", 0, true, 1.0, "y"},
		{"5e3", 2, true, 5.0, "e3"},
		{"12.345", 4, true, 12.3, "45"},
		{"1e400", 0, true, math.Inf(1), ""},
		{"abc", 0, false, nil, "abc"},
		{".", 0, false, nil, ""},
		{"-", 0, false, nil, ""},
		{"+", 1, false, nil, ""},
		{"e5", 0, false, nil, "e5"},
		{"", 0, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		return readFloat(s, width)
	})
}

func Test_readChars(t *testing.T) {
	td := []readTest{
		{"abc", 0, true, "a", "bc"},
		{" ab", 2, true, " a", "b"},
		{"ab", 5, true, "ab", ""},
		{"\n", 1, true, "\n", ""},
		{"", 1, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		rs, ok := readChars(s, width)
		return string(rs), ok
	})
}

func Test_readWord(t *testing.T) {
	td := []readTest{
		{"  hello world", 0, true, "hello", " world"},
		{"hello", 3, true, "hel", "lo"},
		{"a\tb", 0, true, "a", "\tb"},
		{"déjà vu", 0, true, "déjà", " vu"},
		{"", 0, false, nil, ""},
		{" \n ", 0, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		rs, ok := readWord(s, width)
		return string(rs), ok
	})
}

func Test_readLine(t *testing.T) {
	td := []readTest{
		{"hello world\nnext", 0, true, "hello world", "next"},
		{"  lead\n", 0, true, "  lead", ""},
		{"\nx", 0, true, "", "x"},
		{"abc", 0, true, "abc", ""},
		{"abcdef\n", 3, true, "abc", "def\n"},
		{"abc\n", 3, true, "abc", "\n"},
		{"abc\r\nx", 0, true, "abc", "x"},
		{"\r\n", 0, true, "", ""},
		{"a\rb\n", 0, true, "a\rb", ""},
		{"abc\r", 0, true, "abc\r", ""},
		{"", 0, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		rs, ok := readLine(s, width)
		return string(rs), ok
	})
}

func Test_readBool(t *testing.T) {
	td := []readTest{
		{"true", 0, true, true, ""},
		{"  TRUE", 0, true, true, ""},
		{"t", 0, true, true, ""},
		{"yes", 0, true, true, ""},
		{"Y", 0, true, true, ""},
		{"1", 0, true, true, ""},
		{"10", 0, true, true, "0"},
		{"0", 0, true, false, ""},
		{"no", 0, true, false, ""},
		{"nope", 0, true, false, "pe"},
		{"False", 0, true, false, ""},
		{"f ", 0, true, false, " "},
		{"yesterday", 0, true, true, "terday"},
		{"true", 1, true, true, "rue"},
		{"tr", 0, true, true, "r"},
		{"ye", 0, true, true, "e"},
		{"FA", 0, true, false, "A"},
		{"true", 2, true, true, "rue"},
		{"  no", 1, true, false, "o"},
		{"tru", 0, false, nil, ""},
		{"trx", 0, false, nil, "x"},
		{"maybe", 0, false, nil, "maybe"},
		{"", 0, false, nil, ""},
	}
	runReadTests(t, td, func(s *Stream, width int) (interface{}, bool) {
		return readBool(s, width)
	})
}

// Test that a width-limited reader never consumes more than width runes and
// leaves the next rune available.
func Test_widthLimit(t *testing.T) {
	readers := map[string]func(s *Stream, width int) bool{
		"int":    func(s *Stream, w int) bool { _, ok := readInt(s, w); return ok },
		"float":  func(s *Stream, w int) bool { _, ok := readFloat(s, w); return ok },
		"hex":    func(s *Stream, w int) bool { _, ok := readRadix(s, w, 16); return ok },
		"binary": func(s *Stream, w int) bool { _, ok := readRadix(s, w, 2); return ok },
		"word":   func(s *Stream, w int) bool { _, ok := readWord(s, w); return ok },
		"line":   func(s *Stream, w int) bool { _, ok := readLine(s, w); return ok },
		"chars":  func(s *Stream, w int) bool { _, ok := readChars(s, w); return ok },
	}
	const in = "1011011101111"
	for name, read := range readers {
		for w := 1; w < len(in); w++ {
			s := testStream(in)
			if !read(s, w) {
				t.Errorf("%s width %d: unexpected failure", name, w)
				continue
			}
			if r := rest(s); r != in[w:] {
				t.Errorf("%s width %d: left %q, expected %q", name, w, r, in[w:])
			}
		}
	}
}
