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
	"strings"

	"github.com/db47h/scanf/internal/cases"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check SUITE...",
	Short: "Run scan test suites",
	Long: `Run the cases of one or more JSON suite files and report failures.

Each case gives a template, an input, and the expected count, values and
remaining input.

Examples:
  scanf check internal/cases/testdata/basic.json
  scanf check --verbose suites/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var checkVerbose bool

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, FlagVerbose, "v", false, DescVerbose)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := cases.NewLoader()
	var passed, failed int
	for _, path := range args {
		s, err := loader.Load(path)
		if err != nil {
			return err
		}
		printHeader(out, s.Name)
		rs := cases.Check(s, scanOptions()...)
		for i := range rs {
			r := &rs[i]
			if r.Passed() {
				if checkVerbose {
					printSuccess(out, r.Case.Name)
				}
				continue
			}
			printFailure(out, fmt.Sprintf("%s: %s", r.Case.Name, strings.Join(r.Failures, "; ")))
		}
		p, f := cases.Tally(rs)
		passed += p
		failed += f
	}
	printInfo(out, fmt.Sprintf("\nTests passed: %d\nTests failed: %d\nTotal tests: %d", passed, failed, passed+failed))
	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, passed+failed)
	}
	return nil
}
