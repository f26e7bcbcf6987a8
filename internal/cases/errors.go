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

package cases

import "fmt"

// ErrorType classifies suite loading errors.
type ErrorType int

const (
	// SuiteNotFound indicates the suite file does not exist.
	SuiteNotFound ErrorType = iota
	// SuiteInvalid indicates the suite file could not be read or decoded.
	SuiteInvalid
	// SuiteValidationFailed indicates a case is malformed.
	SuiteValidationFailed
)

// Error is a suite loading error.
type Error struct {
	Type    ErrorType
	File    string
	Case    string // name of the offending case, if any
	Message string
	Err     error // underlying error
}

func (e *Error) Error() string {
	where := e.File
	if e.Case != "" {
		where = fmt.Sprintf("%s [case: %s]", e.File, e.Case)
	}
	if e.Err != nil {
		return fmt.Sprintf("suite %s: %s: %v", where, e.Message, e.Err)
	}
	return fmt.Sprintf("suite %s: %s", where, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}
