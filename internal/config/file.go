// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".usecount.yaml"

// Environment variables overriding the configuration file.
const (
	EnvFormat   = "USECOUNT_FORMAT"
	EnvMaxNodes = "USECOUNT_MAX_NODES"
	EnvVerbose  = "USECOUNT_VERBOSE"
)

// ErrInvalidValue is returned for malformed configuration values.
var ErrInvalidValue = errors.New("invalid configuration value")

// File holds the settings of the graph report tool.
type File struct {
	// Format is the report encoding: text, json, yaml or msgpack.
	Format string `yaml:"format"`

	// MaxNodes limits the number of processed nodes; zero or less is unlimited.
	MaxNodes int `yaml:"max_nodes"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// DefaultFile returns the settings used without configuration file.
func DefaultFile() *File {
	return &File{
		Format: "text",
	}
}

// LoadFile reads settings from path, then applies environment overrides.
// An empty path reads [FileName] when present.
func LoadFile(path string) (*File, error) {
	cfg := DefaultFile()

	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides settings from the environment.
func (c *File) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}

	if v := getenv(EnvMaxNodes); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvMaxNodes, v)
		}

		c.MaxNodes = n
	}

	if v := getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvVerbose, v)
		}

		c.Verbose = b
	}

	return nil
}
