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

/*
Package scanf implements formatted input scanning driven by C-style templates.

A template is a sequence of directives matched in order against the input:

	%d    signed decimal integer
	%x %X hexadecimal unsigned integer, with an optional 0x prefix
	%b    binary unsigned integer, with an optional 0b prefix
	%f    decimal floating point number
	%c    one character, or exactly width characters
	%s    a run of non-space characters
	%B    a boolean word: 1 true t yes y, 0 false f no n (any case)
	%N    the rest of the line, without its "\n" or "\r\n" terminator
	%%    a literal percent sign

A conversion may be written %[*][width][size]verb. A '*' suppresses the
assignment: the input is consumed but no output slot is used. The width limits
the number of runes the conversion may consume, not counting leading
whitespace. Size modifiers select the precision of the stored value:

	%hhd %hd %d %ld %lld    int8 int16 int32 int64 int64
	%f %lf %Lf              float32 float64 float64

The same modifiers apply to %x and %b with unsigned types. The value is
truncated to the selected precision before being stored, whatever the type of
the destination.

All conversions except %c, %N and %% skip leading whitespace. A run of
whitespace in the template matches any amount of whitespace in the input,
including none. Any other rune must match the input exactly.

Scanning stops at the first directive that does not match. Scan returns the
number of values stored so far. Matching failures are not errors: they are only
reflected in the count. Scanner.Err reports I/O errors, and output slots that
are missing or of the wrong type.

Input streaming

Input is read through a Stream that decodes UTF-8 from an io.Reader and
supports pushing back one rune. When a directive needs to look at a rune it does
not consume, such as the space after a number, that rune is pushed back and is
the first rune seen by the next directive, or the next call to Scan on the same
Scanner. A File tracks line starts so that input offsets can be reported as
line:column positions.

Templates

Template parsing lives in the format sub-package. Parsing is lazy: a Scanner
pulls one directive at a time, so that an unknown verb only stops the scan when
it is reached.
*/
package scanf
