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

// Package cmd implements the inet command line tool: reduce, fmt and
// steps. It is grounded on cuelang.org/go/cmd/cue/cmd's shape (a Command
// wrapping *cobra.Command, a mkRunE wrapper that centralizes setup and
// error printing, flags declared as typed constants), trimmed to the one
// context this tool has: a single in-memory term, not a module graph.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inet-lang/inet/internal/config"
	inerrors "github.com/inet-lang/inet/internal/errors"
)

// Command is the currently active command, the same role
// cuelang.org/go/cmd/cue/cmd.Command plays: embed *cobra.Command so
// subcommands see cobra's API directly, while adding the handful of
// fields every inet subcommand needs.
type Command struct {
	*cobra.Command

	root *cobra.Command
	cfg  config.Config
}

// runFunction is the signature every subcommand's business logic has,
// wrapped by mkRunE into the func(*cobra.Command, []string) error cobra
// requires.
type runFunction func(cmd *Command, args []string) error

func mkRunE(c *Command, f runFunction) func(*cobra.Command, []string) error {
	return func(cc *cobra.Command, args []string) error {
		c.Command = cc

		cfg, err := config.Load(flagConfig.String(c))
		if err != nil {
			return err
		}
		c.cfg = cfg

		return f(c, args)
	}
}

// New creates the top-level inet command.
func New(args []string) *Command {
	root := &cobra.Command{
		Use:   "inet",
		Short: "inet reduces interaction-net programs to normal form",

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	c := &Command{Command: root, root: root}
	addGlobalFlags(root.PersistentFlags())

	for _, sub := range []*cobra.Command{
		newReduceCmd(c),
		newFmtCmd(c),
		newStepsCmd(c),
	} {
		root.AddCommand(sub)
	}

	root.SetArgs(args)
	return c
}

// Main runs the inet tool and returns the process exit code: 0 on success,
// 2 when the program uses a bound variable more than once, 1 otherwise. Errors from inet's own pipeline (parse, compile, runtime)
// are printed with source position via internal/errors.Print; cobra's own
// usage errors (unknown flag, wrong arg count) print as plain text since
// they carry no inet Position.
func Main() int {
	c := New(os.Args[1:])
	if err := c.root.Execute(); err != nil {
		inerrors.Print(os.Stderr, err)
		if _, ok := err.(*inerrors.NonAffineUse); ok {
			return 2
		}
		return 1
	}
	return 0
}
