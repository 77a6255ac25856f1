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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"fillmore-labs.com/usecount/internal/graphfile"
	"fillmore-labs.com/usecount/internal/report"
	"fillmore-labs.com/usecount/internal/walk"
)

func newReportCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "report <graph>",
		Short: "Print scope snapshots and the declaration summary",
		Long: `Walks the graph and prints, for every node in processing order, the usage
of all variables visible at that node followed by the declaration summary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0], false)
		},
	}
}

func newSummaryCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <graph>",
		Short: "Print the declaration summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args[0], true)
		},
	}
}

// run walks the graph at path and writes the report.
// Invariant violations still produce the partial report before failing.
func (o *options) run(cmd *cobra.Command, path string, summary bool) error {
	g, err := graphfile.Load(path)
	if err != nil {
		return err
	}

	o.logger.Debug("Graph loaded", slog.String("path", path), slog.Int("nodes", g.Len()))

	res, walkErr := walk.Run(cmd.Context(), g.Entry(), walk.Options{MaxNodes: o.maxNodes})
	if !res.Complete() && walkErr == nil {
		o.logger.Warn("Walk stopped early", slog.Any("cause", res.Cause), slog.Int("processed", len(res.Order)))
	}

	doc := report.NewDocument(res)
	if summary {
		doc.Nodes = nil
	}

	if err := o.write(doc); err != nil {
		return err
	}

	if walkErr != nil {
		var ie *walk.InvariantError
		if errors.As(walkErr, &ie) {
			o.logger.Error("Invalid graph", slog.String("node", ie.Node.String()), slog.Any("error", ie.Err))
		}

		return walkErr
	}

	return nil
}

// write encodes doc to the configured output.
func (o *options) write(doc report.Document) (err error) {
	var w io.Writer = o.stdout

	if o.output != "" && o.output != "-" {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}

		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = cerr
			}
		}()

		w = f
	}

	if err := report.Encode(w, doc, o.format); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
