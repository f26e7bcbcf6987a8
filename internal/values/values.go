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

// Package values allocates output slots for a parsed template and renders
// scanned values as text.
package values

import (
	"reflect"
	"strconv"

	"github.com/db47h/scanf/format"
)

// Alloc returns one pointer for each conversion in dirs that stores a value,
// typed after the conversion's verb and size so that no truncation happens
// beyond the one the size modifier asks for.
func Alloc(dirs []format.Directive) []interface{} {
	var slots []interface{}
	for i := range dirs {
		d := &dirs[i]
		if d.Stored() {
			slots = append(slots, New(d))
		}
	}
	return slots
}

// New returns a pointer to a zero value suitable for d.
func New(d *format.Directive) interface{} {
	switch d.Verb {
	case format.VerbInt:
		switch d.Size {
		case format.SizeChar:
			return new(int8)
		case format.SizeShort:
			return new(int16)
		case format.SizeNone:
			return new(int32)
		}
		return new(int64)
	case format.VerbHex, format.VerbBinary:
		switch d.Size {
		case format.SizeChar:
			return new(uint8)
		case format.SizeShort:
			return new(uint16)
		case format.SizeNone:
			return new(uint32)
		}
		return new(uint64)
	case format.VerbFloat:
		if d.Size == format.SizeLong || d.Size == format.SizeLongLong {
			return new(float64)
		}
		return new(float32)
	case format.VerbBool:
		return new(bool)
	}
	return new(string)
}

// Format renders the value a slot points to. Integers are written in base 10,
// floats in the shortest representation that round-trips at their precision
// and text as is. Format returns "" for unsupported slots.
func Format(slot interface{}) string {
	v := reflect.ValueOf(slot)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return v.String()
	case reflect.Slice:
		switch v.Type().Elem().Kind() {
		case reflect.Uint8:
			return string(v.Bytes())
		case reflect.Int32:
			rs := make([]rune, v.Len())
			for i := range rs {
				rs[i] = rune(v.Index(i).Int())
			}
			return string(rs)
		}
	}
	return ""
}

// FormatAll formats the first n slots.
func FormatAll(slots []interface{}, n int) []string {
	if n > len(slots) {
		n = len(slots)
	}
	out := make([]string, n)
	for i := range out {
		out[i] = Format(slots[i])
	}
	return out
}
