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

// Package cases loads scan test suites from JSON files and evaluates scan
// results against them.
//
// A suite file looks like:
//
//	{
//	  "name": "integers",
//	  "cases": [
//	    {"name": "partial match", "template": "%d %d", "input": "42 abc\n",
//	     "count": 1, "values": ["42"], "rest": "abc\n"}
//	  ]
//	}
//
// Values are compared in the text form produced by package values. A case
// without a "rest" entry does not check the remaining input.
package cases

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Suite is a named list of cases.
type Suite struct {
	Name  string `json:"name"`
	Cases []Case `json:"cases"`
}

// Case is a single scan and its expected outcome.
type Case struct {
	Name     string   `json:"name"`
	Template string   `json:"template"`
	Input    string   `json:"input"`
	Count    int      `json:"count"`
	Values   []string `json:"values,omitempty"`
	Rest     *string  `json:"rest,omitempty"`
}

// Loader loads suites.
type Loader interface {
	// Load loads a suite from the specified file path.
	Load(path string) (*Suite, error)
}

// FileLoader loads suites from JSON files.
type FileLoader struct{}

// NewLoader creates a new FileLoader.
func NewLoader() Loader {
	return &FileLoader{}
}

// Load loads and validates a suite file. A suite without a name is named after
// its file.
func (l *FileLoader) Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &Error{Type: SuiteNotFound, File: path, Message: "suite file not found", Err: err}
		}
		return nil, &Error{Type: SuiteInvalid, File: path, Message: "failed to read suite file", Err: err}
	}
	s, err := Parse(data)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.File = path
			return nil, e
		}
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Load loads a suite with the default loader.
func Load(path string) (*Suite, error) {
	return NewLoader().Load(path)
}

// Parse decodes and validates a suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &Error{Type: SuiteInvalid, Message: "invalid JSON syntax", Err: err}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every case is well formed: a template is present, the
// expected count is not negative, and no more values are expected than the
// count allows.
func (s *Suite) Validate() error {
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.Name == "" {
			return &Error{Type: SuiteValidationFailed, Message: "case without a name",
				Err: errors.Errorf("case #%d", i)}
		}
		if c.Template == "" {
			return &Error{Type: SuiteValidationFailed, Case: c.Name, Message: "empty template"}
		}
		if c.Count < 0 {
			return &Error{Type: SuiteValidationFailed, Case: c.Name, Message: "negative count"}
		}
		if len(c.Values) > c.Count {
			return &Error{Type: SuiteValidationFailed, Case: c.Name,
				Message: errors.Errorf("%d values for a count of %d", len(c.Values), c.Count).Error()}
		}
	}
	return nil
}
