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

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/usecount/internal/config"
	"fillmore-labs.com/usecount/internal/report"
)

// options holds the settings shared by all commands.
type options struct {
	configPath string
	format     report.Format
	output     string
	maxNodes   int
	verbose    bool

	stdout io.Writer
	logger *slog.Logger
}

// newRootCmd creates the command tree writing reports to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &options{stdout: stdout}

	root := &cobra.Command{
		Use:   "usegraph",
		Short: "usegraph - read multiplicity of variables in control flow graphs",
		Long: `usegraph walks control flow graphs described in YAML or JSON files and
reports for every variable whether it is read never, once, at most once,
at least once or an unknown number of times.

Commands:
  report      Print the scope snapshot of every node and the summary
  summary     Print the per-declaration summary only

Use "usegraph [command] --help" for more information about a command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.load(cmd, stderr)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default "+config.FileName+" when present)")
	flags.VarP(&o.format, "format", "f", "output format: text, json, yaml or msgpack")
	flags.StringVarP(&o.output, "output", "o", "", "write the report to a file instead of stdout")
	flags.IntVar(&o.maxNodes, "max-nodes", 0, "stop after processing this many nodes, 0 is unlimited")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReportCmd(o), newSummaryCmd(o))

	return root
}

// load merges the config file and environment with explicitly set flags.
func (o *options) load(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.LoadFile(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if !flags.Changed("format") {
		if o.format, err = report.ParseFormat(cfg.Format); err != nil {
			return fmt.Errorf("config format: %w", err)
		}
	}

	if !flags.Changed("max-nodes") {
		o.maxNodes = cfg.MaxNodes
	}

	if !flags.Changed("verbose") {
		o.verbose = cfg.Verbose
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	o.logger.Debug("Configuration loaded",
		slog.String("format", o.format.String()),
		slog.Int("maxNodes", o.maxNodes),
		slog.String("output", o.output))

	return nil
}
