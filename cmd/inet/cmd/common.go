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
	"io"
	"math/rand"
	"os"

	"github.com/inet-lang/inet/internal/core/runtime"
	"github.com/inet-lang/inet/syntax/parser"
)

// readSource reads the program named by args[0], or stdin if args is empty
// or args[0] is "-". It returns the display name used for parse error
// positions.
func readSource(cmd *Command, args []string) (name string, src []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
		return "<stdin>", src, err
	}
	name = args[0]
	src, err = os.ReadFile(name)
	return name, src, err
}

// buildGraph parses and compiles one program into a fresh runtime.Graph.
func buildGraph(cmd *Command, args []string) (*runtime.Graph, error) {
	name, src, err := readSource(cmd, args)
	if err != nil {
		return nil, err
	}
	t, err := parser.ParseFile(name, src)
	if err != nil {
		return nil, err
	}
	return runtime.Build(t)
}

// resolvePolicy builds the Policy named by, in order of precedence, the
// --policy flag, the config file, then "first".
func resolvePolicy(cmd *Command) (runtime.Policy, error) {
	name := cmd.cfg.Policy
	if flagPolicy.Changed(cmd) {
		name = flagPolicy.String(cmd)
	}
	seed := cmd.cfg.Seed
	if flagSeed.Changed(cmd) {
		seed = flagSeed.Int64(cmd)
	}

	switch name {
	case "", "first":
		return runtime.FirstPolicy{}, nil
	case "random":
		return runtime.RandomPolicy{Rand: rand.New(rand.NewSource(seed))}, nil
	default:
		return nil, fmt.Errorf("inet: unknown policy %q (want \"first\" or \"random\")", name)
	}
}

// resolveMaxSteps applies the same flag-over-config precedence as
// resolvePolicy.
func resolveMaxSteps(cmd *Command) int {
	if flagMaxSteps.Changed(cmd) {
		return flagMaxSteps.Int(cmd)
	}
	return cmd.cfg.MaxSteps
}
