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

// Package format parses scan templates into directives.
//
// A template is a sequence of literal runes, whitespace runs and conversions:
//
//	directive  := literal | whitespace | '%' conversion
//	conversion := ['*'] [width] [size] verb
//	size       := 'h' | 'hh' | 'l' | 'll' | 'L'
//	verb       := 'd' | 'f' | 'x' | 'X' | 'c' | 's' | 'b' | 'B' | 'N' | '%'
//
// The Parser walks a template once, yielding one Directive per call to Next.
//
package format

//go:generate stringer -type Kind,Size,Verb -output directive_string.go

import (
	"strconv"
	"strings"
)

// Kind is the kind of a directive.
//
type Kind int

// Directive kinds.
//
const (
	End        Kind = iota // end of template
	Invalid                // unrecognized verb; parsing stops here
	Literal                // literal rune to match
	Space                  // run of whitespace: skip any input whitespace
	Conversion             // typed conversion
)

// Size is a conversion size modifier. It selects the storage width of a
// converted value.
//
type Size int

// Size modifiers.
//
const (
	SizeNone     Size = iota //
	SizeShort                // h
	SizeChar                 // hh
	SizeLong                 // l
	SizeLongLong             // ll or L
)

// Verb identifies the token grammar of a conversion.
//
type Verb int

// Conversion verbs.
//
const (
	VerbNone    Verb = iota //
	VerbInt                 // d: signed decimal integer
	VerbFloat               // f: floating-point number
	VerbHex                 // x, X: hexadecimal integer, optional 0x prefix
	VerbBinary              // b: binary integer, optional 0b prefix
	VerbChar                // c: fixed number of raw characters
	VerbWord                // s: whitespace delimited word
	VerbBool                // B: boolean word
	VerbLine                // N: rest of line
	VerbPercent             // %: literal '%'
)

var verbs = map[rune]Verb{
	'd': VerbInt,
	'f': VerbFloat,
	'x': VerbHex,
	'X': VerbHex,
	'b': VerbBinary,
	'c': VerbChar,
	's': VerbWord,
	'B': VerbBool,
	'N': VerbLine,
	'%': VerbPercent,
}

// SkipsSpace reports whether conversions with this verb skip leading input
// whitespace.
//
func (v Verb) SkipsSpace() bool {
	switch v {
	case VerbInt, VerbFloat, VerbHex, VerbBinary, VerbWord, VerbBool:
		return true
	}
	return false
}

// A Directive is one parsed unit of a template.
//
type Directive struct {
	Kind     Kind
	Char     rune // Literal: rune to match. Conversion and Invalid: verb rune.
	Suppress bool // '*' flag: convert but do not store
	Width    int  // 0 means unlimited
	Size     Size
	Verb     Verb
	Offset   int // byte offset of the directive in the template
}

// Stored reports whether a successful conversion for d stores a value.
//
func (d *Directive) Stored() bool {
	return d.Kind == Conversion && !d.Suppress && d.Verb != VerbPercent
}

var sizes = [...]string{
	SizeNone:     "",
	SizeShort:    "h",
	SizeChar:     "hh",
	SizeLong:     "l",
	SizeLongLong: "ll",
}

// String returns the template text for d.
//
func (d Directive) String() string {
	switch d.Kind {
	case End:
		return ""
	case Literal:
		return string(d.Char)
	case Space:
		return " "
	}
	var b strings.Builder
	b.WriteByte('%')
	if d.Suppress {
		b.WriteByte('*')
	}
	if d.Width > 0 {
		b.WriteString(strconv.Itoa(d.Width))
	}
	if d.Size >= 0 && int(d.Size) < len(sizes) {
		b.WriteString(sizes[d.Size])
	}
	if d.Char > 0 {
		b.WriteRune(d.Char)
	}
	return b.String()
}
