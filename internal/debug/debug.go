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

// Package debug writes timestamped diagnostics to stderr when enabled.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor = !isatty.IsTerminal(os.Stderr.Fd())
	out     io.Writer = colorable.NewColorableStderr()
	now               = time.Now
)

var (
	tagColor  = ansi.ColorFunc("cyan")
	timeColor = ansi.ColorFunc("black+h")
)

// SetDebug enables or disables debug output.
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug output is enabled.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor disables colored output. Color is off by default when stderr is
// not a terminal.
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func emit(msg string) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}
	ts := now().Format("15:04:05.000")
	if noColor {
		fmt.Fprintf(out, "[DEBUG] %s %s\n", ts, msg)
		return
	}
	fmt.Fprintf(out, "%s %s %s\n", tagColor("[DEBUG]"), timeColor(ts), msg)
}

// Debug prints a debug message with a timestamp.
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf(format, args...))
}

// Debugf is an alias for Debug. Its signature matches scanf.Trace.
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header.
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	emit("=== " + section + " ===")
}

// DebugValue prints key = value.
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	emit(fmt.Sprintf("%s = %v", key, value))
}
