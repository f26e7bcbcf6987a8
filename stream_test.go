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

package scanf_test

import (
	"io"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/db47h/scanf"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Test proper behavior of Next/Unread/Backup/Peek
func TestStream_Next(t *testing.T) {
	next := func(s *scanf.Stream) rune { return s.Next() }
	peek := func(s *scanf.Stream) rune { return s.Peek() }
	backup := func(s *scanf.Stream) rune { s.Backup(); return s.Current() }
	unread := func(r rune) func(s *scanf.Stream) rune {
		return func(s *scanf.Stream) rune { s.Unread(r); return s.Current() }
	}

	input := []string{
		"aéb",
		"c",
		"\n\n",
		"\xffa",
		"\ufeffx\ufeff",
	}

	data := [][]struct {
		name string
		fn   func(s *scanf.Stream) rune
		p    scanf.Pos // offset after the operation
		r    rune
	}{
		{
			{"an", next, 1, 'a'},
			{"én1", next, 3, 'é'},
			{"_b", backup, 1, utf8.RuneSelf},
			{"_b2", backup, 1, utf8.RuneSelf},
			{"én2", next, 3, 'é'},
			{"bp1", peek, 3, 'b'},
			{"bn1", next, 4, 'b'},
			{"eof1", next, 4, scanf.EOF},
			{"bu1", unread('b'), 3, utf8.RuneSelf},
			{"bn2", next, 4, 'b'},
			{"eofp", peek, 4, scanf.EOF},
			{"eof2", next, 4, scanf.EOF},
			{"eofb", backup, 4, scanf.EOF},
			{"eof3", next, 4, scanf.EOF},
		},
		{
			{"cp", peek, 0, 'c'},
			{"cn0", next, 1, 'c'},
			{"cb1", backup, 0, utf8.RuneSelf},
			{"cn1", next, 1, 'c'},
			{"eof0", next, 1, scanf.EOF},
			{"eof1", next, 1, scanf.EOF},
		},
		{
			{"nl1", next, 1, '\n'},
			{"nlb", backup, 0, utf8.RuneSelf},
			{"nl2", next, 1, '\n'},
			{"nl3", next, 2, '\n'},
		},
		{
			{"bad", next, 1, utf8.RuneError},
			{"a", next, 2, 'a'},
		},
		{
			{"bom", next, 4, 'x'},
			{"bom2", next, 7, '\ufeff'},
		},
	}

	for i, in := range input {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := scanf.NewStream(scanf.NewFile("", strings.NewReader(in)))
			for _, td := range data[i] {
				r := td.fn(s)
				if r != td.r {
					t.Errorf("%s: expected %q, got %q", td.name, td.r, r)
				}
				if s.Offset() != td.p {
					t.Errorf("%s: expected offset %d, got %d", td.name, td.p, s.Offset())
				}
				if t.Failed() {
					return
				}
			}
		})
	}
}

func TestStream_Unread(t *testing.T) {
	s := scanf.NewStream(scanf.NewFile("", strings.NewReader("ab")))
	s.Next()
	s.Unread('a')
	if r := s.Peek(); r != 'a' {
		t.Fatalf("expected 'a' pushed back, got %q", r)
	}
	defer func() {
		if r := recover(); r != scanf.ErrPushback {
			t.Errorf("expected ErrPushback panic, got %v", r)
		}
	}()
	s.Unread('a')
}

func TestStream_Position(t *testing.T) {
	s := scanf.NewStream(scanf.NewFile("input", strings.NewReader("ab\ncd\n\nef")))
	for i := 0; i < 7; i++ {
		s.Next()
	}
	// next rune is 'e'
	if p := s.Position().String(); p != "input:4:1" {
		t.Errorf("expected input:4:1, got %s", p)
	}
	s.Next()
	s.Backup()
	if p := s.Position().String(); p != "input:4:1" {
		t.Errorf("after backup: expected input:4:1, got %s", p)
	}
	if p := s.File().LinePos(4); p != 7 {
		t.Errorf("expected line 4 at offset 7, got %d", p)
	}
	if p := s.File().LinePos(5); p.IsValid() {
		t.Errorf("expected no line 5, got offset %d", p)
	}
}

type errReader struct {
	data string
	err  error
}

func (r *errReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestStream_Err(t *testing.T) {
	ioErr := errors.New("disk on fire")
	s := scanf.NewStream(scanf.NewFile("broken", &errReader{"x", ioErr}))
	if r := s.Next(); r != 'x' {
		t.Fatalf("expected 'x', got %q", r)
	}
	if r := s.Next(); r != scanf.EOF {
		t.Fatalf("expected EOF, got %q", r)
	}
	if errors.Cause(s.Err()) != ioErr {
		t.Errorf("expected %v, got %v", ioErr, s.Err())
	}

	s = scanf.NewStream(scanf.NewFile("", &errReader{"x", io.EOF}))
	s.Next()
	s.Next()
	if s.Err() != nil {
		t.Errorf("EOF is not an error, got %v", s.Err())
	}
}

func TestNewDecodedFile(t *testing.T) {
	// "déjà 42" in ISO-8859-1
	in := "d\xe9j\xe0 42"
	f := scanf.NewDecodedFile("latin1", strings.NewReader(in), charmap.ISO8859_1)
	var (
		w string
		n int
	)
	sc := scanf.NewFileScanner(f)
	if c := sc.Scan("%s %d", &w, &n); c != 2 {
		t.Fatalf("expected 2 conversions, got %d", c)
	}
	if w != "déjà" || n != 42 {
		t.Errorf("got %q %d", w, n)
	}
	if _, err := f.GetLineBytes(0); err != scanf.ErrNoSeek {
		t.Errorf("expected ErrNoSeek, got %v", err)
	}
}

func TestFile_GetLineBytes(t *testing.T) {
	f := scanf.NewFile("input", strings.NewReader("first\nsecond line\nthird"))
	sc := scanf.NewFileScanner(f)
	var a, b string
	if n := sc.Scan("%s %s", &a, &b); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	p := sc.Stream().Offset()
	l, err := f.GetLineBytes(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(l) != "second line" {
		t.Errorf("expected %q, got %q", "second line", l)
	}
	// reading resumes where it left off
	var c string
	if n := sc.Scan("%N", &c); n != 1 || c != " line" {
		t.Errorf("got %d %q", n, c)
	}
}
