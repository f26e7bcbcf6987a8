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

	"github.com/AlecAivazis/survey/v2"
	"github.com/db47h/scanf"
	"github.com/db47h/scanf/format"
	"github.com/db47h/scanf/internal/values"
	"github.com/spf13/cobra"
)

// promptCmd represents the prompt command
var promptCmd = &cobra.Command{
	Use:   "prompt TEMPLATE",
	Short: "Ask for a line of input until it matches a template",
	Long: `Interactively ask for a line of input, reject it until it matches
TEMPLATE, then print the stored values. Type '?' for a description of the
template.

Examples:
  scanf prompt '%d-%d-%d'
  scanf prompt --message 'Coordinates' '%lf,%lf'`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

var promptMessage string

func init() {
	promptCmd.Flags().StringVarP(&promptMessage, "message", "m", "", "Prompt message (default: the template)")
}

// matchTemplate returns a validator that accepts input storing every value
// of tmpl.
func matchTemplate(tmpl string) survey.Validator {
	dirs, _ := format.Parse(tmpl)
	want := len(values.Alloc(dirs))
	return func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if n := scanf.Sscan(str, tmpl, values.Alloc(dirs)...); n < want {
			return fmt.Errorf("matched %d of %d values of %s", n, want, tmpl)
		}
		return nil
	}
}

func runPrompt(cmd *cobra.Command, args []string) error {
	tmpl := args[0]
	dirs, err := format.Parse(tmpl)
	if err != nil {
		return err
	}

	var help strings.Builder
	if err := explain(&help, tmpl); err != nil {
		return err
	}
	message := promptMessage
	if message == "" {
		message = tmpl
	}
	prompt := &survey.Input{
		Message: message,
		Help:    strings.TrimRight(help.String(), "\n"),
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(matchTemplate(tmpl))); err != nil {
		return err
	}

	slots := values.Alloc(dirs)
	n := scanf.Sscan(answer, tmpl, slots...)
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(values.FormatAll(slots, n), "\t"))
	return nil
}
