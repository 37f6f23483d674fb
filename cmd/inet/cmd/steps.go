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

	"github.com/inet-lang/inet/internal/debugfmt"
)

func newStepsCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps [file]",
		Short: "reduce a program one step at a time, printing each step",
		Long: `Steps reduces like reduce, but prints the program after every
rewrite instead of only the final normal form, which rule fired, and stops
either at normal form or after --max-steps steps.`,
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
			maxSteps := resolveMaxSteps(cmd)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "session %s\n", g.ID)
			n := 0
			for maxSteps <= 0 || n < maxSteps {
				rule, ok := g.StepTraced(policy)
				if !ok {
					break
				}
				n++
				debugfmt.Step(out, n, rule, g.ToTerm())
			}

			fmt.Fprintf(out, "normal form after %d step(s):\n%s\n", n, debugfmt.Term(g.ToTerm()))
			return nil
		}),
	}
	return cmd
}
