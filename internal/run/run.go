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

package run

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/usecount/internal/astutil"
	"fillmore-labs.com/usecount/internal/build"
	"fillmore-labs.com/usecount/internal/build/tracker"
	"fillmore-labs.com/usecount/internal/config"
	"fillmore-labs.com/usecount/internal/report"
	"fillmore-labs.com/usecount/internal/walk"
)

var (
	// ErrResultMissing is returned when a required analyzer result is missing.
	ErrResultMissing = errors.New("analyzer result missing")

	// ErrNoPosition is reported for files without position information.
	ErrNoPosition = errors.New("no position information")
)

// Run executes the usecount analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("usecount: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "UseCount")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewFile(p.Fset, file)
		if !currentFile.Valid() {
			report.Internal(p, file, "file "+file.Name.Name, ErrNoPosition)

			continue
		}

		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		if astutil.SuppressedDoc(file.Doc) {
			continue
		}

		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if fun.Body == nil {
				continue
			}

			if astutil.SuppressedDoc(fun.Doc) {
				continue
			}

			name := r.funcName(p.TypesInfo, fun)
			if r.Funcs != nil && !r.Funcs.MatchString(name) {
				continue
			}

			r.analyzeFunc(ctx, p, currentFile, fun, name)
		}
	}

	return nil, nil
}

// analyzeFunc builds and walks the graph of a single function and reports its findings.
func (r *Options) analyzeFunc(ctx context.Context, p *analysis.Pass, currentFile astutil.File, fun *ast.FuncDecl, name string) {
	fg := build.BuildDecl(ctx, p.TypesInfo, fun)

	res, err := walk.Run(ctx, fg.Entry(), walk.Options{MaxNodes: r.MaxNodes})
	if err != nil {
		report.Internal(p, fun.Name, "function "+name, err)

		return
	}

	if r.Dump != nil {
		r.dump(p, fun, name, res)
	}

	if !res.Complete() {
		trace.Logf(ctx, "incomplete", "%s: %v", name, res.Cause)

		return
	}

	report.Diagnostics(ctx, p, currentFile, r.findings(fg, res))
}

// findings selects the final declarations of enabled classes.
func (r *Options) findings(fg *build.Func, res *walk.Result) []report.Finding {
	var findings []report.Finding

	for _, d := range res.Declarations {
		if !d.Final || !r.Classes.Enabled(config.ClassOf(d.Usage)) {
			continue
		}

		decl, ok := fg.Decls[d.Node]
		if !ok || decl.Implicit {
			continue
		}

		if decl.Param && !r.Behavior.Enabled(config.IncludeParams) {
			continue
		}

		findings = append(findings, report.Finding{Ident: decl.Ident, Param: decl.Param, Usage: d.Usage})
	}

	return findings
}

// dump writes the text report of a function, serialized over concurrent passes.
func (r *Options) dump(p *analysis.Pass, fun *ast.FuncDecl, name string, res *walk.Result) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s: %s\n", p.Fset.Position(fun.Pos()), name)

	if err := report.Write(&buf, res, report.Text); err != nil {
		report.Internal(p, fun.Name, "dump "+name, err)

		return
	}

	r.dumpMu.Lock()
	defer r.dumpMu.Unlock()

	_, _ = r.Dump.Write(buf.Bytes())
}

// funcName returns "Name" for functions and "Type.Name" for methods.
func (*Options) funcName(info *types.Info, fun *ast.FuncDecl) string {
	obj, ok := info.Defs[fun.Name].(*types.Func)
	if !ok {
		return fun.Name.Name
	}

	fn := tracker.FuncNameOf(obj)
	if fn.Receiver == "" {
		return fn.Name
	}

	return fn.Receiver + "." + fn.Name
}
