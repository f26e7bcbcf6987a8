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

	"github.com/db47h/scanf"
	"github.com/db47h/scanf/format"
	"github.com/db47h/scanf/internal/debug"
	"github.com/db47h/scanf/internal/values"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrNoMatch is returned when the input does not match the whole template.
var ErrNoMatch = errors.New("input does not match template")

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan TEMPLATE [FILE]",
	Short: "Scan input and print the stored values",
	Long: `Scan FILE, or standard input, with TEMPLATE and print the stored values
separated by tabs.

When the input does not match the whole template, the values stored so far
are printed and the position where scanning stopped is reported.

Examples:
  scanf scan '%d %lf' data.txt
  printf '1 2\n3 4\n' | scanf scan --repeat '%d %d'
  scanf scan --encoding latin1 '%s %N' legacy.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runScan,
}

// Scan command flags
var (
	scanRepeat bool
	scanRest   bool
)

func init() {
	scanCmd.Flags().BoolVarP(&scanRepeat, FlagRepeat, "r", false, DescRepeat)
	scanCmd.Flags().BoolVar(&scanRest, FlagRest, false, DescRest)
}

func scanOptions() []scanf.Option {
	if !debug.IsEnabled() {
		return nil
	}
	return []scanf.Option{scanf.Trace(debug.Debugf)}
}

func runScan(cmd *cobra.Command, args []string) error {
	tmpl := args[0]
	var name string
	if len(args) > 1 {
		name = args[1]
	}
	f, c, err := openInput(name, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer c.Close()

	dirs, perr := format.Parse(tmpl)
	if perr != nil {
		printWarning(cmd.ErrOrStderr(), perr.Error())
	}
	want := len(values.Alloc(dirs))
	debug.DebugValue("stored conversions", want)

	sc := scanf.NewFileScanner(f, scanOptions()...)
	s := sc.Stream()
	out := cmd.OutOrStdout()
	for records := 0; ; records++ {
		debug.DebugSection(fmt.Sprintf("record %d", records+1))
		start := s.Offset()
		slots := values.Alloc(dirs)
		n := sc.Scan(tmpl, slots...)
		if err := sc.Err(); err != nil {
			return err
		}
		if n > 0 {
			fmt.Fprintln(out, strings.Join(values.FormatAll(slots, n), "\t"))
		}
		if n < want || perr != nil {
			if records > 0 && n == 0 && s.Peek() == scanf.EOF {
				break
			}
			report(cmd.ErrOrStderr(), s, n, want)
			return ErrNoMatch
		}
		if !scanRepeat || s.Peek() == scanf.EOF || s.Offset() == start {
			break
		}
	}
	if scanRest {
		fmt.Fprint(out, drain(s))
	}
	return nil
}

// report prints where scanning stopped, with the offending line and a caret
// when the input can be re-read.
func report(w io.Writer, s *scanf.Stream, n, want int) {
	pos := s.Position()
	printWarning(w, fmt.Sprintf("%s: scan stopped after %d of %d values", pos, n, want))
	line, err := s.File().GetLineBytes(s.Offset())
	if err != nil {
		debug.Debug("source line unavailable: %v", err)
		return
	}
	printInfo(w, "  "+string(line))
	printInfo(w, "  "+caret(line, pos.Column-1))
}

func drain(s *scanf.Stream) string {
	var b strings.Builder
	for r := s.Next(); r != scanf.EOF; r = s.Next() {
		b.WriteRune(r)
	}
	return b.String()
}
