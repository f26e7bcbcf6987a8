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
	"fmt"
	"strings"

	"github.com/db47h/scanf"
	"github.com/db47h/scanf/format"
	"github.com/db47h/scanf/internal/values"
)

// Outcome is what a scan produced.
type Outcome struct {
	Count  int
	Values []string // text form of the stored values
	Rest   string   // input left unread
	Err    error    // as reported by Scanner.Err
}

// Run scans c.Input with c.Template into slots allocated after the template.
// Options are passed to the scanner.
func Run(c *Case, opts ...scanf.Option) Outcome {
	dirs, _ := format.Parse(c.Template)
	slots := values.Alloc(dirs)
	sc := scanf.NewScanner(strings.NewReader(c.Input), opts...)
	n := sc.Scan(c.Template, slots...)
	return Outcome{
		Count:  n,
		Values: values.FormatAll(slots, n),
		Rest:   drain(sc.Stream()),
		Err:    sc.Err(),
	}
}

func drain(s *scanf.Stream) string {
	var b strings.Builder
	for r := s.Next(); r != scanf.EOF; r = s.Next() {
		b.WriteRune(r)
	}
	return b.String()
}

// Result is the evaluation of an outcome against its case.
type Result struct {
	Case     *Case
	Outcome  Outcome
	Failures []string
}

// Passed reports whether the outcome matched every expectation.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Evaluate compares o with the expectations of c.
func Evaluate(c *Case, o Outcome) Result {
	r := Result{Case: c, Outcome: o}
	fail := func(format string, args ...interface{}) {
		r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
	}
	if o.Err != nil {
		fail("scan error: %v", o.Err)
	}
	if o.Count != c.Count {
		fail("count: got %d, expected %d", o.Count, c.Count)
	}
	for i, want := range c.Values {
		if i >= len(o.Values) {
			fail("value %d: missing, expected %q", i, want)
			continue
		}
		if o.Values[i] != want {
			fail("value %d: got %q, expected %q", i, o.Values[i], want)
		}
	}
	if c.Rest != nil && o.Rest != *c.Rest {
		fail("rest: got %q, expected %q", o.Rest, *c.Rest)
	}
	return r
}

// Check runs and evaluates every case of s.
func Check(s *Suite, opts ...scanf.Option) []Result {
	rs := make([]Result, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		rs[i] = Evaluate(c, Run(c, opts...))
	}
	return rs
}

// Tally counts passed and failed results.
func Tally(rs []Result) (passed, failed int) {
	for i := range rs {
		if rs[i].Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
