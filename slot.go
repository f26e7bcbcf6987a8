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
	"fmt"
	"reflect"

	"github.com/db47h/scanf/format"
)

// A SlotError describes an output slot that is missing or cannot hold the
// value of a conversion.
//
type SlotError struct {
	Index     int          // 0-based index of the slot
	Directive string       // conversion in template syntax
	Type      reflect.Type // slot type, nil if the slot is missing
}

func (e *SlotError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("scanf: missing slot %d for %s", e.Index, e.Directive)
	}
	return fmt.Sprintf("scanf: cannot store %s into slot %d of type %s", e.Directive, e.Index, e.Type)
}

// slots hands out output slots in template order.
//
type slots struct {
	args []interface{}
	i    int
}

// store stores v into the next slot. On error, the slot is not consumed.
//
func (s *slots) store(d *format.Directive, v interface{}) error {
	if s.i >= len(s.args) {
		return &SlotError{Index: s.i, Directive: d.String()}
	}
	arg := s.args[s.i]
	if !newSetter(v, d.Verb)(reflect.ValueOf(arg)) {
		return &SlotError{Index: s.i, Directive: d.String(), Type: reflect.TypeOf(arg)}
	}
	s.i++
	return nil
}

// A setter stores a value into the destination designated by dst. It
// returns false if dst cannot receive the value.
//
type setter func(dst reflect.Value) bool

func newSetter(v interface{}, verb format.Verb) setter {
	switch v := v.(type) {
	case int64:
		return intSetter(v)
	case uint64:
		return uintSetter(v)
	case float64:
		return floatSetter(v)
	case bool:
		return boolSetter(v)
	case []rune:
		// words and lines are terminated when copied into a buffer
		return textSetter(v, verb != format.VerbChar)
	}
	panic(fmt.Sprintf("scanf: unexpected value type %T", v))
}

// elem returns the value pointed to by a non-nil pointer.
//
func elem(dst reflect.Value) (reflect.Value, bool) {
	if dst.Kind() != reflect.Ptr || dst.IsNil() {
		return reflect.Value{}, false
	}
	return dst.Elem(), true
}

func setInteger(e reflect.Value, i int64, u uint64) bool {
	switch e.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.SetUint(u)
	default:
		return false
	}
	return true
}

func intSetter(v int64) setter {
	return func(dst reflect.Value) bool {
		e, ok := elem(dst)
		return ok && setInteger(e, v, uint64(v))
	}
}

func uintSetter(v uint64) setter {
	return func(dst reflect.Value) bool {
		e, ok := elem(dst)
		return ok && setInteger(e, int64(v), v)
	}
}

func floatSetter(v float64) setter {
	return func(dst reflect.Value) bool {
		e, ok := elem(dst)
		if !ok {
			return false
		}
		switch e.Kind() {
		case reflect.Float32, reflect.Float64:
			e.SetFloat(v)
			return true
		}
		return false
	}
}

func boolSetter(v bool) setter {
	return func(dst reflect.Value) bool {
		e, ok := elem(dst)
		if !ok {
			return false
		}
		if e.Kind() == reflect.Bool {
			e.SetBool(v)
			return true
		}
		var i int64
		if v {
			i = 1
		}
		return setInteger(e, i, uint64(i))
	}
}

// textSetter stores runes into a *string, a *[]byte or *[]rune (replaced), a
// []byte or []rune buffer (copied, truncated to the buffer length, and
// followed by a 0 terminator if term is set and room remains), or an integer
// (first rune only, for single characters).
//
func textSetter(rs []rune, term bool) setter {
	return func(dst reflect.Value) bool {
		switch dst.Kind() {
		case reflect.Slice:
			return copyText(dst, rs, term)
		case reflect.Ptr:
		default:
			return false
		}
		e, ok := elem(dst)
		if !ok {
			return false
		}
		switch e.Kind() {
		case reflect.String:
			e.SetString(string(rs))
			return true
		case reflect.Slice:
			switch e.Type().Elem() {
			case byteType:
				e.SetBytes([]byte(string(rs)))
				return true
			case runeType:
				e.Set(reflect.ValueOf(append([]rune(nil), rs...)).Convert(e.Type()))
				return true
			}
			return false
		}
		if term || len(rs) == 0 {
			return false
		}
		return setInteger(e, int64(rs[0]), uint64(rs[0]))
	}
}

var (
	byteType = reflect.TypeOf(byte(0))
	runeType = reflect.TypeOf(rune(0))
)

func copyText(dst reflect.Value, rs []rune, term bool) bool {
	switch dst.Type().Elem() {
	case byteType:
		b := []byte(string(rs))
		if term {
			b = append(b, 0)
		}
		reflect.Copy(dst, reflect.ValueOf(b))
		return true
	case runeType:
		if term {
			rs = append(rs[:len(rs):len(rs)], 0)
		}
		reflect.Copy(dst, reflect.ValueOf(rs))
		return true
	}
	return false
}
