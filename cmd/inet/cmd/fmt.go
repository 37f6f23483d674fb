// Copyright 2020 CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inet-lang/inet/syntax/parser"
	"github.com/inet-lang/inet/syntax/printer"
)

func newFmtCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "pretty-print a program",
		Long: `Fmt parses the given file, or stdin if no file is given or the file is
"-", and writes it back out in the canonical surface syntax (spec.md §6.2).
A named file is rewritten in place unless --check is given, in which case
fmt reports whether the file is already formatted without writing it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			name, src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			t, err := parser.ParseFile(name, src)
			if err != nil {
				return err
			}
			formatted := printer.Print(t) + "\n"

			check := flagCheck.Bool(cmd)
			stdin := len(args) == 0 || args[0] == "-"

			if stdin || check {
				if check {
					if !bytes.Equal([]byte(formatted), src) {
						fmt.Fprintln(cmd.OutOrStdout(), name)
						return errBadlyFormatted
					}
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), formatted)
				return nil
			}

			if bytes.Equal([]byte(formatted), src) {
				return nil
			}
			return os.WriteFile(name, []byte(formatted), 0o644)
		}),
	}
	cmd.Flags().Bool(string(flagCheck), false, "report unformatted files instead of rewriting them")
	return cmd
}

// errBadlyFormatted gives `fmt --check` a non-nil error (and so a non-zero
// exit code) after it has already written the offending path to stdout.
var errBadlyFormatted = fmt.Errorf("inet: file is not formatted")
