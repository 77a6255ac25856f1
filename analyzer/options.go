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

package analyzer

import (
	"io"
	"log/slog"
	"regexp"

	"fillmore-labs.com/usecount/internal/config"
	"fillmore-labs.com/usecount/internal/run"
)

// Option configures specific behavior of a [New] usecount analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithParams is an [Option] to configure diagnostics for receivers and parameters.
func WithParams(params bool) Option { return paramsOption{params: params} }

type paramsOption struct{ params bool }

func (o paramsOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeParams, o.params)
}

func (o paramsOption) LogAttr() slog.Attr {
	return slog.Bool("params", o.params)
}

// WithClasses is an [Option] to select the reported usage classes.
// Without classes nothing is reported.
func WithClasses(classes ...Class) Option { return classesOption{classes: config.NewBitMask(classes...)} }

type classesOption struct{ classes config.BitMask[Class] }

func (o classesOption) apply(r *run.Options) {
	r.Classes = o.classes
}

func (o classesOption) LogAttr() slog.Attr {
	return slog.String("classes", config.FormatClasses(o.classes))
}

// WithFuncs is an [Option] to restrict the analysis to functions matching funcs.
// Methods are matched as "Type.Name". A nil pattern analyzes all functions.
func WithFuncs(funcs *regexp.Regexp) Option { return funcsOption{funcs: funcs} }

type funcsOption struct{ funcs *regexp.Regexp }

func (o funcsOption) apply(r *run.Options) {
	r.Funcs = o.funcs
}

func (o funcsOption) LogAttr() slog.Attr {
	if o.funcs == nil {
		return slog.String("funcs", "")
	}

	return slog.String("funcs", o.funcs.String())
}

// WithMaxNodes is an [Option] to limit the flow graph nodes processed per function.
// Functions exceeding the limit are skipped. Zero or less is unlimited.
func WithMaxNodes(maxNodes int) Option { return maxNodesOption{maxNodes: maxNodes} }

type maxNodesOption struct{ maxNodes int }

func (o maxNodesOption) apply(r *run.Options) {
	r.MaxNodes = o.maxNodes
}

func (o maxNodesOption) LogAttr() slog.Attr {
	return slog.Int("maxNodes", o.maxNodes)
}

// WithDump is an [Option] to write a text report of every analyzed function to w.
func WithDump(w io.Writer) Option { return dumpOption{w: w} }

type dumpOption struct{ w io.Writer }

func (o dumpOption) apply(r *run.Options) {
	r.Dump = o.w
}

func (o dumpOption) LogAttr() slog.Attr {
	return slog.Bool("dump", o.w != nil)
}
