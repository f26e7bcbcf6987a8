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

package scanf

import (
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// EOF is the return value from Next() when the end of input is reached.
//
const EOF rune = -1

// ErrPushback is the panic value raised when Unread is called while a rune is
// already pending.
//
var ErrPushback = errors.New("scanf: more than one rune pushed back")

type undo struct {
	p Pos
	r rune
}

// Stream is the character source of a Scanner. It reads runes from a File
// and supports pushing back at most one rune.
//
// A Stream keeps its pushed back rune between scans, so that consecutive
// scans over the same Stream see the input exactly as the previous scan left
// it.
//
type Stream struct {
	buf     [4 << 10]byte // byte buffer
	f       *File
	line    int  // line count
	cur     undo // last rune returned by Next
	last    undo // last rune other than EOF returned by Next
	pend    undo // pushed back rune
	pending bool
	offs    int   // offset of first byte in buffer
	r, w    int   // read/write indices
	ioErr   error // if not nil, IO error @w
}

// NewStream returns a new Stream reading from f.
//
func NewStream(f *File) *Stream {
	s := &Stream{
		f:    f,
		line: 1,
		cur:  undo{-1, utf8.RuneSelf},
		last: undo{-1, utf8.RuneSelf},
	}
	// sentinel value
	s.buf[0] = utf8.RuneSelf
	return s
}

// File returns the File used as input for the stream.
//
func (s *Stream) File() *File {
	return s.f
}

// Next returns the next rune in the input stream. If the end of the input
// has been reached or an I/O error occurred, it returns EOF.
//
// Invalid UTF-8 sequences are returned one byte at a time as
// utf8.RuneError. A byte order mark is skipped only at the very beginning of
// the input.
//
func (s *Stream) Next() rune {
	if s.pending {
		s.pending = false
		s.cur = s.pend
		return s.cur.r
	}
again:
	for s.r+utf8.UTFMax > s.w && !utf8.FullRune(s.buf[s.r:s.w]) && s.ioErr == nil {
		s.fill()
	}

	pos := Pos(s.offs + s.r)

	// Common case: ASCII
	// Invariant: s.buf[s.w] == utf8.RuneSelf
	if b := s.buf[s.r]; b < utf8.RuneSelf {
		s.r++
		if b == '\n' {
			s.line++
			s.f.AddLine(pos+1, s.line)
		}
		return s.set(pos, rune(b))
	}

	// EOF
	if s.r == s.w {
		s.cur = undo{pos, EOF}
		return EOF
	}

	// UTF8
	r, w := utf8.DecodeRune(s.buf[s.r:s.w])
	s.r += w

	const BOM = 0xfeff
	if r == BOM && pos == 0 {
		goto again
	}

	return s.set(pos, r)
}

func (s *Stream) set(p Pos, r rune) rune {
	s.cur = undo{p, r}
	s.last = s.cur
	return r
}

// Unread pushes r back into the stream so that it is returned by the next
// call to Next. r must be the most recently read rune; this is typically the
// rune just returned by Next, or the rune read before an EOF.
//
// At most one rune can be pending: calling Unread twice without a call to
// Next in between panics with ErrPushback. Unread(EOF) is a no-op.
//
func (s *Stream) Unread(r rune) {
	if r == EOF {
		return
	}
	if s.pending {
		panic(ErrPushback)
	}
	s.pending = true
	if s.cur.r == r {
		s.pend = s.cur
	} else {
		s.pend = undo{s.last.p, r}
	}
	s.cur = undo{s.pend.p, utf8.RuneSelf}
}

// Backup pushes back the last rune returned by Next. It is equivalent to
// s.Unread(s.Current()).
//
func (s *Stream) Backup() {
	if s.cur.r == utf8.RuneSelf {
		return
	}
	s.Unread(s.cur.r)
}

// Current returns the last rune returned by Next, or utf8.RuneSelf if no rune
// has been read since the last Unread.
//
func (s *Stream) Current() rune {
	return s.cur.r
}

// Peek returns the next rune in the input stream without consuming it.
//
func (s *Stream) Peek() rune {
	if s.pending {
		return s.pend.r
	}
	r := s.Next()
	s.Unread(r)
	return r
}

// Offset returns the byte offset of the next rune to be read.
//
func (s *Stream) Offset() Pos {
	if s.pending {
		return s.pend.p
	}
	return Pos(s.offs + s.r)
}

// Position returns the line and column of the next rune to be read.
//
func (s *Stream) Position() Position {
	return s.f.Position(s.Offset())
}

// Err returns the first I/O error encountered by the stream, if any. The end
// of input is not an error.
//
func (s *Stream) Err() error {
	if s.ioErr == nil || s.ioErr == io.EOF {
		return nil
	}
	return errors.Wrapf(s.ioErr, "scanf: read %s", s.f.Name())
}

func (s *Stream) fill() {
	// slide buffer contents
	if n := s.r; n > 0 {
		copy(s.buf[:], s.buf[n:s.w])
		s.offs += n
		s.w -= n
		s.r = 0
	}

	for i := 0; i < 100; i++ {
		n, err := s.f.Read(s.buf[s.w : len(s.buf)-1]) // -1 to leave space for sentinel
		s.w += n
		if n > 0 || err != nil {
			s.buf[s.w] = utf8.RuneSelf // sentinel
			if err != nil {
				s.ioErr = err
			}
			return
		}
	}

	s.ioErr = io.ErrNoProgress
}
