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

import "github.com/spf13/pflag"

// flagName is a typed flag name, mirroring cuelang.org/go/cmd/cue/cmd's
// flagName so that a flag is declared once and read back with the same
// identifier.
type flagName string

const (
	flagPolicy   flagName = "policy"
	flagSeed     flagName = "seed"
	flagMaxSteps flagName = "max-steps"
	flagConfig   flagName = "config"
	flagCheck    flagName = "check"
)

func (f flagName) String(cmd *Command) string {
	s, _ := cmd.Flags().GetString(string(f))
	return s
}

func (f flagName) Int(cmd *Command) int {
	n, _ := cmd.Flags().GetInt(string(f))
	return n
}

func (f flagName) Int64(cmd *Command) int64 {
	n, _ := cmd.Flags().GetInt64(string(f))
	return n
}

func (f flagName) Bool(cmd *Command) bool {
	b, _ := cmd.Flags().GetBool(string(f))
	return b
}

func (f flagName) Changed(cmd *Command) bool {
	return cmd.Flags().Changed(string(f))
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.String(string(flagPolicy), "", `reduction policy, "first" or "random" (default from config, else "first")`)
	f.Int64(string(flagSeed), 0, `seed for the "random" policy`)
	f.Int(string(flagMaxSteps), 0, "stop after this many steps (0 means unbounded)")
	f.String(string(flagConfig), "", "path to a config file (default: $XDG_CONFIG_HOME/inet/config.yaml)")
}
