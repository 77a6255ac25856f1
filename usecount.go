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

// Package usecount determines how often variables are read along the control flow of a function.
//
// The input is a [flowgraph.Node] graph carrying scope enter and exit markers,
// variable declarations and variable reads. [Analyze] visits every node once
// and records, per node, the usage of every visible variable as one of the
// counts never, once, at most once, at least once or unknown.
//
// For Go source code use the [fillmore-labs.com/usecount/analyzer] package.
package usecount

import (
	"context"
	"io"

	"fillmore-labs.com/usecount/flowgraph"
	"fillmore-labs.com/usecount/internal/graphfile"
	"fillmore-labs.com/usecount/internal/report"
	"fillmore-labs.com/usecount/internal/scope"
	"fillmore-labs.com/usecount/internal/usage"
	"fillmore-labs.com/usecount/internal/walk"
)

type (
	// Count is the read multiplicity of a variable.
	Count = usage.Count

	// Scope is the immutable scope snapshot at a node.
	Scope = scope.Scope

	// Result holds the snapshots and declaration summaries of an analysis.
	Result = walk.Result

	// Declaration is the usage summary of a declared variable.
	Declaration = walk.Declaration

	// InvariantError reports a malformed graph.
	InvariantError = walk.InvariantError

	// Options configure an analysis.
	Options = walk.Options

	// Format selects the encoding of a report.
	Format = report.Format
)

// Read multiplicities.
const (
	Bottom     = usage.Bottom
	Zero       = usage.Zero
	Once       = usage.Once
	AtMostOnce = usage.AtMostOnce
	OnceOrMore = usage.OnceOrMore
	Unknown    = usage.Unknown
)

// Report formats.
const (
	Text    = report.Text
	JSON    = report.JSON
	YAML    = report.YAML
	MsgPack = report.MsgPack
)

// Graph invariant violations, wrapped in an [*InvariantError].
var (
	ErrEnterJoin       = walk.ErrEnterJoin
	ErrScopeUnderflow  = walk.ErrScopeUnderflow
	ErrExitUnreachable = walk.ErrExitUnreachable
	ErrForwardCycle    = walk.ErrForwardCycle
	ErrRedeclared      = scope.ErrRedeclared
	ErrUndeclared      = scope.ErrUndeclared
	ErrDepthMismatch   = scope.ErrDepthMismatch
)

// Causes of an incomplete [Result].
var (
	ErrNodeBudget = walk.ErrNodeBudget
	ErrNoEntry    = walk.ErrNoEntry
)

// Analyze walks the graph starting at entry.
//
// A malformed graph yields an [*InvariantError] together with the partial result.
// Cancellation of ctx or exceeding [Options.MaxNodes] stop the walk without error;
// the result then reports the cause and is not [Result.Complete].
func Analyze(ctx context.Context, entry flowgraph.Node, opts Options) (*Result, error) {
	return walk.Run(ctx, entry, opts)
}

// WriteReport renders res to w in the given format.
func WriteReport(w io.Writer, res *Result, format Format) error {
	return report.Write(w, res, format)
}

// ParseFormat returns the [Format] named text, json, yaml or msgpack.
func ParseFormat(s string) (Format, error) {
	return report.ParseFormat(s)
}

// LoadGraph reads a graph file in YAML or JSON.
func LoadGraph(path string) (*flowgraph.Graph, error) {
	return graphfile.Load(path)
}

// DecodeGraph reads a graph in YAML or JSON from r.
func DecodeGraph(r io.Reader) (*flowgraph.Graph, error) {
	return graphfile.Decode(r)
}
