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

package format

import (
	"fmt"
	"unicode/utf8"
)

const eof = -1

// maxWidth caps field widths so that absurd templates cannot overflow.
const maxWidth = 1 << 24

// IsSpace reports whether r is an ASCII whitespace character: space,
// horizontal tab, newline, vertical tab, form feed or carriage return.
//
func IsSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// A SyntaxError reports an unrecognized conversion verb.
//
type SyntaxError struct {
	Offset int  // byte offset of the conversion in the template
	Char   rune // offending verb, 0 if the template ended inside the conversion
}

func (e *SyntaxError) Error() string {
	if e.Char == 0 {
		return fmt.Sprintf("format: incomplete conversion at offset %d", e.Offset)
	}
	return fmt.Sprintf("format: unknown verb %#U at offset %d", e.Char, e.Offset)
}

// A Parser holds the state of a template walk.
//
type Parser struct {
	src  string
	n    int // offset of next rune to read by next()
	u    int // saved offset to undo last call to next()
	done bool
}

// NewParser returns a Parser for the given template.
//
func NewParser(template string) *Parser {
	return &Parser{src: template}
}

// Next returns the next directive of the template.
//
// Once the template is exhausted, Next returns a directive of kind End. An
// unrecognized verb yields a single Invalid directive, after which Next
// returns End: nothing past a bad conversion is ever parsed.
//
func (p *Parser) Next() Directive {
	if p.done {
		return Directive{Kind: End, Offset: p.n}
	}
	start := p.n
	r := p.next()
	switch {
	case r == eof:
		p.done = true
		return Directive{Kind: End, Offset: start}
	case IsSpace(r):
		for IsSpace(p.next()) {
		}
		p.undo()
		return Directive{Kind: Space, Char: ' ', Offset: start}
	case r != '%':
		return Directive{Kind: Literal, Char: r, Offset: start}
	}
	return p.conversion(start)
}

func (p *Parser) conversion(start int) Directive {
	d := Directive{Kind: Conversion, Offset: start}
	r := p.next()
	if r == '*' {
		d.Suppress = true
		r = p.next()
	}
	for ; r >= '0' && r <= '9'; r = p.next() {
		if d.Width < maxWidth {
			d.Width = d.Width*10 + int(r-'0')
		}
	}
	switch r {
	case 'h':
		d.Size = SizeShort
		if r = p.next(); r == 'h' {
			d.Size = SizeChar
			r = p.next()
		}
	case 'l':
		d.Size = SizeLong
		if r = p.next(); r == 'l' {
			d.Size = SizeLongLong
			r = p.next()
		}
	case 'L':
		d.Size = SizeLongLong
		r = p.next()
	}
	v, ok := verbs[r]
	if !ok {
		p.done = true
		d.Kind = Invalid
		if r != eof {
			d.Char = r
		}
		return d
	}
	d.Char = r
	d.Verb = v
	return d
}

func (p *Parser) next() rune {
	p.u = p.n
	if p.n >= len(p.src) {
		return eof
	}
	r, sz := utf8.DecodeRuneInString(p.src[p.n:])
	p.n += sz
	return r
}

func (p *Parser) undo() {
	p.n = p.u
}

// Parse parses a whole template. If it contains an unrecognized verb, Parse
// returns the directives preceding it along with a *SyntaxError.
//
func Parse(template string) ([]Directive, error) {
	var ds []Directive
	p := NewParser(template)
	for {
		d := p.Next()
		switch d.Kind {
		case End:
			return ds, nil
		case Invalid:
			return ds, &SyntaxError{Offset: d.Offset, Char: d.Char}
		}
		ds = append(ds, d)
	}
}
