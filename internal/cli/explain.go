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
	"fmt"
	"io"
	"strings"

	"github.com/db47h/scanf/format"
	"github.com/db47h/scanf/internal/values"
	"github.com/spf13/cobra"
)

// explainCmd represents the explain command
var explainCmd = &cobra.Command{
	Use:   "explain TEMPLATE",
	Short: "Describe how a template is matched",
	Long: `List the directives of TEMPLATE with their offset and what they match.

Examples:
  scanf explain '%d, %5s %*lf%%'`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

var verbDescriptions = map[format.Verb]string{
	format.VerbInt:     "signed decimal integer",
	format.VerbFloat:   "decimal floating point number",
	format.VerbHex:     "hexadecimal integer",
	format.VerbBinary:  "binary integer",
	format.VerbChar:    "characters",
	format.VerbWord:    "word",
	format.VerbBool:    "boolean",
	format.VerbLine:    "rest of line",
	format.VerbPercent: "match '%'",
}

// describe returns a one line description of d.
func describe(d *format.Directive) string {
	switch d.Kind {
	case format.Space:
		return "skip whitespace"
	case format.Literal:
		return fmt.Sprintf("match %q", d.Char)
	}
	var b strings.Builder
	b.WriteString(verbDescriptions[d.Verb])
	if d.Verb == format.VerbPercent {
		return b.String()
	}
	if d.Width > 0 {
		fmt.Fprintf(&b, ", width %d", d.Width)
	} else if d.Verb == format.VerbChar {
		b.WriteString(", width 1")
	}
	if d.Verb.SkipsSpace() {
		b.WriteString(", skips leading whitespace")
	}
	if d.Suppress {
		b.WriteString(", discarded")
	} else {
		fmt.Fprintf(&b, ", stored as %s", strings.TrimPrefix(fmt.Sprintf("%T", values.New(d)), "*"))
	}
	return b.String()
}

func explain(w io.Writer, tmpl string) error {
	dirs, err := format.Parse(tmpl)
	for i := range dirs {
		d := &dirs[i]
		fmt.Fprintf(w, "%4d  %-8q  %s\n", d.Offset, d.String(), describe(d))
	}
	return err
}

func runExplain(cmd *cobra.Command, args []string) error {
	return explain(cmd.OutOrStdout(), args[0])
}
