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
	"github.com/db47h/scanf/format"
)

// readChars reads exactly max(width, 1) runes, or fewer at the end of input.
// Whitespace is not skipped and nothing is ever pushed back.
//
func readChars(s *Stream, width int) ([]rune, bool) {
	if width <= 0 {
		width = 1
	}
	n := width
	if n > 64 {
		n = 64
	}
	rs := make([]rune, 0, n)
	for len(rs) < width {
		r := s.Next()
		if r == EOF {
			break
		}
		rs = append(rs, r)
	}
	return rs, len(rs) > 0
}

// readWord reads a run of non-space runes after skipping leading whitespace.
//
func readWord(s *Stream, width int) ([]rune, bool) {
	f := skipSpace(s, width)
	defer f.done()
	var rs []rune
	for r := f.peek(); r != EOF && !format.IsSpace(r); r = f.peek() {
		rs = append(rs, r)
		f.accept()
	}
	return rs, len(rs) > 0
}

// readLine reads the rest of the current line verbatim. The line terminator,
// "\n" or "\r\n", is consumed but not returned. An empty line is a valid
// result, but the end of input is not.
//
func readLine(s *Stream, width int) ([]rune, bool) {
	f := &field{s: s, width: width}
	defer f.done()
	if f.peek() == EOF {
		return nil, false
	}
	rs := []rune{}
	for r := f.peek(); r != EOF; r = f.peek() {
		f.accept()
		if r == '\n' {
			if l := len(rs); l > 0 && rs[l-1] == '\r' {
				rs = rs[:l-1]
			}
			break
		}
		rs = append(rs, r)
	}
	return rs, true
}

// boolNode is a node in the prefix tree of boolean words.
//
type boolNode struct {
	next  map[rune]*boolNode
	value bool
	word  bool // a complete word ends here
}

var boolWords = newBoolTree(map[string]bool{
	"1":     true,
	"true":  true,
	"t":     true,
	"yes":   true,
	"y":     true,
	"0":     false,
	"false": false,
	"f":     false,
	"no":    false,
	"n":     false,
})

func newBoolTree(words map[string]bool) *boolNode {
	root := &boolNode{}
	for w, v := range words {
		n := root
		for _, r := range w {
			c := n.next[r]
			if c == nil {
				if n.next == nil {
					n.next = make(map[rune]*boolNode)
				}
				c = &boolNode{}
				n.next[r] = c
			}
			n = c
		}
		n.word = true
		n.value = v
	}
	return root
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// readBool reads one of the words 1, 0, true, false, t, f, yes, no, y or n,
// ignoring case. It consumes runes for as long as they extend a word and
// succeeds if the consumed runes form a complete word. When the input ends,
// or the width is spent, one rune past a complete word, that rune is returned
// to the stream: "tr" yields true and leaves "r". Input like "trx" would need
// two runes pushed back and fails.
//
func readBool(s *Stream, width int) (bool, bool) {
	f := skipSpace(s, width)
	defer f.done()
	var parent *boolNode
	n := boolWords
	last := EOF
	for {
		r := f.peek()
		c := n.next[toLower(r)]
		if c == nil {
			if !n.word && parent != nil && parent.word && r == EOF {
				f.unaccept(last)
				return parent.value, true
			}
			break
		}
		f.accept()
		parent, n, last = n, c, r
	}
	return n.value, n.word
}
