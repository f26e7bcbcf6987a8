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

package cli

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/mgutz/ansi"
	"golang.org/x/text/width"
)

// Output formatting helpers

func colorize(s, style string) string {
	if globalNoColor {
		return s
	}
	return ansi.Color(s, style)
}

// printInfo prints an informational message
func printInfo(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(w, msg)
}

// printSuccess prints a success message
func printSuccess(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", colorize("✓", "green"), msg)
}

// printWarning prints a warning message
func printWarning(w io.Writer, msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "%s %s\n", colorize("⚠", "yellow"), msg)
}

// printFailure prints a failure message. It is not silenced by --quiet.
func printFailure(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", colorize("✗", "red"), msg)
}

// printHeader prints a section header
func printHeader(w io.Writer, title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(w, "\n%s\n", colorize("=== "+title+" ===", "magenta"))
}

// caret returns a line of spaces that ends with a '^' under the byte at
// offset col of line. Tabs are kept so that the caret lines up with the
// printed line, and wide East Asian runes take two columns.
func caret(line []byte, col int) string {
	if col > len(line) {
		col = len(line)
	}
	buf := make([]byte, 0, col+1)
	for i := 0; i < col; {
		r, sz := utf8.DecodeRune(line[i:])
		i += sz
		switch {
		case r == '\t':
			buf = append(buf, '\t')
		case isWide(r):
			buf = append(buf, ' ', ' ')
		default:
			buf = append(buf, ' ')
		}
	}
	return string(append(buf, '^'))
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
