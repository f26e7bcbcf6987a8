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

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func TestCheck_suites(t *testing.T) {
	for _, name := range []string{"basic.json", "extended.json"} {
		s, err := Load(filepath.Join("testdata", name))
		if err != nil {
			t.Fatal(err)
		}
		t.Run(s.Name, func(t *testing.T) {
			for _, r := range Check(s) {
				if !r.Passed() {
					t.Errorf("%s: %v", r.Case.Name, r.Failures)
				}
			}
		})
	}
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.json"))
	e, ok := err.(*Error)
	if !ok || e.Type != SuiteNotFound {
		t.Fatalf("expected SuiteNotFound error, got %v", err)
	}
	if errors.Cause(err) != err {
		t.Errorf("Cause should stop at the suite error")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		typ  ErrorType
		msg  string
	}{
		{"syntax", `{"cases": [`, SuiteInvalid, ""},
		{"no name", `{"cases": [{"template": "%d"}]}`, SuiteValidationFailed,
			"suite : case without a name: case #0"},
		{"no template", `{"cases": [{"name": "x"}]}`, SuiteValidationFailed,
			"suite  [case: x]: empty template"},
		{"negative count", `{"cases": [{"name": "x", "template": "%d", "count": -1}]}`, SuiteValidationFailed,
			"suite  [case: x]: negative count"},
		{"too many values", `{"cases": [{"name": "x", "template": "%d", "count": 1, "values": ["1", "2"]}]}`, SuiteValidationFailed,
			"suite  [case: x]: 2 values for a count of 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("expected *Error, got %v", err)
			}
			if e.Type != tt.typ {
				t.Errorf("got type %d, expected %d", e.Type, tt.typ)
			}
			if tt.msg != "" && e.Error() != tt.msg {
				t.Errorf("Got     : %s\nExpected: %s", e.Error(), tt.msg)
			}
		})
	}

	s, err := Parse([]byte(`{"name": "ok", "cases": [{"name": "x", "template": "%d", "input": "1", "count": 1, "rest": ""}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Cases[0].Rest == nil || *s.Cases[0].Rest != "" {
		t.Errorf("an empty rest must be checked")
	}
}

func TestEvaluate(t *testing.T) {
	rest := "x"
	c := &Case{Name: "c", Template: "%d %d", Input: "1 2", Count: 2, Values: []string{"1", "3"}, Rest: &rest}

	r := Evaluate(c, Outcome{Count: 1, Values: []string{"1"}, Rest: ""})
	expected := []string{
		"count: got 1, expected 2",
		`value 1: missing, expected "3"`,
		`rest: got "", expected "x"`,
	}
	if !reflect.DeepEqual(r.Failures, expected) {
		t.Errorf("Got     : %q\nExpected: %q", r.Failures, expected)
	}
	if r.Passed() {
		t.Errorf("result should fail")
	}

	r = Evaluate(c, Run(c))
	expected = []string{
		`value 1: got "2", expected "3"`,
		`rest: got "", expected "x"`,
	}
	if !reflect.DeepEqual(r.Failures, expected) {
		t.Errorf("Got     : %q\nExpected: %q", r.Failures, expected)
	}

	// evaluation is stateless
	r1 := Evaluate(c, Run(c))
	if !reflect.DeepEqual(r1.Failures, r.Failures) {
		t.Errorf("repeated evaluation differs")
	}
}

func TestTally(t *testing.T) {
	rs := []Result{{}, {Failures: []string{"x"}}, {}}
	if p, f := Tally(rs); p != 2 || f != 1 {
		t.Errorf("got %d passed %d failed", p, f)
	}
}
