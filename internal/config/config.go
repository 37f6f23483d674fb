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

// Package config loads the inet command line tool's persistent settings
// (default reduction policy, random seed, step cap) from a YAML file, the
// way a small CLI that wants a config file but has no CUE of its own to
// write it in reaches for gopkg.in/yaml.v3 rather than rolling its own
// parser.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the settings command-line flags may override (spec.md
// §6.3's --policy, --seed and --max-steps).
type Config struct {
	Policy   string `yaml:"policy"`
	Seed     int64  `yaml:"seed"`
	MaxSteps int    `yaml:"maxSteps"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Policy: "first", Seed: 0, MaxSteps: 0}
}

// Load reads a Config from path. An explicit empty path means "use the
// default location"; if that default file does not exist, Load silently
// returns Default rather than treating a missing config as an error. A
// path given explicitly by the user (--config) that does not exist is an
// error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		path = defaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		// fall through to unmarshal
	case os.IsNotExist(err) && !explicit:
		return Default(), nil
	default:
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// defaultPath returns $XDG_CONFIG_HOME/inet/config.yaml, falling back to
// os.UserConfigDir when XDG_CONFIG_HOME is unset.
func defaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "inet", "config.yaml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "inet", "config.yaml")
}
