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

// Package testsource parses and type-checks Go snippets for tests.
//
// Statement fragments are wrapped into a function, so that flow graph
// construction can be tested on small snippets.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const testpkg = "test"

// Parse wraps the statements src into `func _() { ... }` of package `test` and parses it.
// Call [Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, *ast.FuncDecl) {
	tb.Helper()

	return parse(tb, "test.go", "package "+testpkg+"\n\nfunc _() {\n"+src+"\n}")
}

// ParseFunc parses declarations into package `test` and returns the first function declaration.
func ParseFunc(tb testing.TB, decl string) (*token.FileSet, *ast.File, *ast.FuncDecl) {
	tb.Helper()

	return parse(tb, "func.go", "package "+testpkg+"\n\n"+decl)
}

func parse(tb testing.TB, filename, src string) (*token.FileSet, *ast.File, *ast.FuncDecl) {
	tb.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fset, f, fn
		}
	}

	tb.Fatal("Can't find function")

	return nil, nil, nil
}

// Check type-checks f with the default importer and returns the package and
// the type information flow graph construction needs.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:     make(map[ast.Expr]types.TypeAndValue),
		Defs:      make(map[*ast.Ident]types.Object),
		Uses:      make(map[*ast.Ident]types.Object),
		Implicits: make(map[ast.Node]types.Object),
		Scopes:    make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("Failed to type check source: %v", err)
	}

	return pkg, info
}
