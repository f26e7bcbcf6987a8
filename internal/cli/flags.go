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
	"io"
	"os"
	"strings"

	"github.com/db47h/scanf"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagNoColor  = "no-color"
	FlagQuiet    = "quiet"
	FlagDebug    = "debug"
	FlagEncoding = "encoding"
	FlagRepeat   = "repeat"
	FlagRest     = "rest"
	FlagVerbose  = "verbose"

	// Flag descriptions
	DescNoColor  = "Disable colored output"
	DescQuiet    = "Suppress non-error output"
	DescDebug    = "Enable debug logging"
	DescEncoding = "Character encoding of the input (e.g. latin1, shift_jis)"
	DescRepeat   = "Scan repeatedly until the template no longer matches"
	DescRest     = "Print the input left unread after scanning"
	DescVerbose  = "Show every case, not only failures"
)

// lookupEncoding returns the encoding registered under name in the WHATWG
// encoding index. An empty name or "utf-8" means no decoding.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %q", name)
	}
	if n, _ := htmlindex.Name(enc); strings.EqualFold(n, "utf-8") {
		return nil, nil
	}
	return enc, nil
}

// nopCloser is returned in place of a file for inputs that the command does
// not own.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openInput opens the named file, or stdin if name is empty or "-", as a
// scanf.File decoded with the global encoding.
func openInput(name string, stdin io.Reader) (*scanf.File, io.Closer, error) {
	enc, err := lookupEncoding(globalEncoding)
	if err != nil {
		return nil, nil, err
	}
	if name == "" || name == "-" {
		return scanf.NewDecodedFile("<stdin>", stdin, enc), nopCloser{}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open input")
	}
	return scanf.NewDecodedFile(name, f, enc), f, nil
}
