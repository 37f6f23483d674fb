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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inet-lang/inet/syntax/printer"
)

func newReduceCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reduce [file]",
		Short: "reduce a program to normal form",
		Long: `Reduce reads a program from the given file, or from stdin if no file
is given or the file is "-", and reduces it to normal form under the
chosen policy (--policy, default "first").`,
		Args: cobra.MaximumNArgs(1),
		RunE: mkRunE(c, func(cmd *Command, args []string) error {
			g, err := buildGraph(cmd, args)
			if err != nil {
				return err
			}
			defer g.Close()

			policy, err := resolvePolicy(cmd)
			if err != nil {
				return err
			}

			g.Reduce(policy, resolveMaxSteps(cmd))

			if err := g.CheckInvariants(); err != nil {
				return fmt.Errorf("inet: internal invariant violated after reducing: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), printer.Print(g.ToTerm()))
			return nil
		}),
	}
	return cmd
}
