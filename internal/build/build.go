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

// Package build constructs flow graphs of Go functions.
//
// The graph of a function starts with the entry of the function scope, which
// holds the receiver and parameters, followed by the function body. Every
// lexical block, loop iteration, switch or select clause and function literal
// is bracketed by enter and exit vertices. Jumps leave all levels up to their
// target explicitly, so each vertex has a well-defined nesting depth.
package build

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"fillmore-labs.com/usecount/flowgraph"
	"fillmore-labs.com/usecount/internal/build/tracker"
)

// Decl describes the source of a declaring vertex.
type Decl struct {
	Ident    *ast.Ident
	Param    bool // receiver or parameter
	Implicit bool // type switch clause variable
}

// Func is the flow graph of a function.
type Func struct {
	Graph *flowgraph.Graph
	Decls map[flowgraph.Node]Decl
}

// Entry returns the entry vertex of the function.
func (f *Func) Entry() flowgraph.Node {
	return f.Graph.Entry()
}

// Build constructs the flow graph for the given function, including all function literals in its body.
// It returns nil for functions without body.
func Build(ctx context.Context, info *types.Info, recv *ast.FieldList, typ *ast.FuncType, body *ast.BlockStmt) *Func {
	if body == nil {
		return nil
	}

	defer trace.StartRegion(ctx, "Graph").End()

	b := builder{
		Graph:   flowgraph.New(),
		Tracker: tracker.New(info),
		decls:   make(map[flowgraph.Node]Decl),
	}

	exit := b.open(flowgraph.Function, typ.Pos(), body.End())
	b.appendFunc(recv, typ, body)
	b.close(exit)

	return &Func{Graph: b.Graph, Decls: b.decls}
}

// BuildDecl constructs the flow graph of a function declaration.
func BuildDecl(ctx context.Context, info *types.Info, fdecl *ast.FuncDecl) *Func {
	return Build(ctx, info, fdecl.Recv, fdecl.Type, fdecl.Body)
}

// builder constructs the flow graph.
// It traverses the AST and appends vertices to the current path.
type builder struct {
	*flowgraph.Graph
	*tracker.Tracker

	cur     *flowgraph.Vertex        // end of the current path
	regions []flowgraph.Region       // open scope levels
	decls   map[flowgraph.Node]Decl // declaring vertices
	fn      *funcContext             // innermost function
}

// funcContext holds the jump targets of one function or function literal.
type funcContext struct {
	labels   map[string]*labelTarget // Maps label names to their targets
	backward map[string]struct{}     // Labels targeted by a backward goto
	targets  branchTargets           // Current break/continue/fallthrough targets
	ret      jumpTarget              // Target of return statements
	results  []*ast.Ident            // Named results, read by a bare return
}

// appendFunc appends parameters and body of a function to the current path.
func (b *builder) appendFunc(recv *ast.FieldList, typ *ast.FuncType, body *ast.BlockStmt) {
	outer := b.fn
	defer func() { b.fn = outer }()

	b.fn = &funcContext{
		labels:   make(map[string]*labelTarget),
		backward: backwardLabels(body),
	}

	b.declareFields(recv, true)
	b.declareFields(typ.Params, true)
	b.fn.results = b.declareFields(typ.Results, false)

	exit := b.open(flowgraph.Body, body.Lbrace, body.Rbrace)
	b.fn.ret = jumpTarget{vertex: exit, depth: b.depth()}

	b.appendStmtList(body.List, body.Rbrace)
	b.close(exit)
}

// declareFields declares the named fields of a parameter list and returns their identifiers.
func (b *builder) declareFields(fields *ast.FieldList, param bool) []*ast.Ident {
	if fields == nil {
		return nil
	}

	var names []*ast.Ident

	for _, field := range fields.List {
		for _, name := range field.Names {
			if b.declare(name, Decl{Ident: name, Param: param}) {
				names = append(names, name)
			}
		}
	}

	return names
}

// declare appends a declaration of the variable defined by id.
func (b *builder) declare(id *ast.Ident, decl Decl) bool {
	if b.Define(id) == nil {
		return false
	}

	v := b.link(b.Declare(id.Name, id.Pos()))
	b.decls[v] = decl

	return true
}

// declareImplicit declares the variable of a type switch clause.
func (b *builder) declareImplicit(clause *ast.CaseClause, symbol *ast.Ident) {
	obj := b.DefineImplicit(clause)
	if obj == nil {
		return
	}

	v := b.link(b.Declare(obj.Name(), clause.Colon))
	b.decls[v] = Decl{Ident: symbol, Implicit: true}
}

// backwardLabels finds the labels of a function body that are targeted by a goto following them.
func backwardLabels(body *ast.BlockStmt) map[string]struct{} {
	labels := make(map[string]token.Pos)

	var gotos []*ast.BranchStmt

	ast.Inspect(body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.FuncLit:
			return false // separate label scope

		case *ast.LabeledStmt:
			labels[n.Label.Name] = n.Pos()

		case *ast.BranchStmt:
			if n.Tok == token.GOTO && n.Label != nil {
				gotos = append(gotos, n)
			}
		}

		return true
	})

	backward := make(map[string]struct{})

	for _, g := range gotos {
		if pos, ok := labels[g.Label.Name]; ok && pos < g.Pos() {
			backward[g.Label.Name] = struct{}{}
		}
	}

	return backward
}
