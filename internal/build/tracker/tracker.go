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

// Package tracker classifies identifiers and calls of the function being analyzed.
package tracker

import (
	"go/ast"
	"go/types"
)

// Tracker records the local variables of a function and identifies non-returning calls.
type Tracker struct {
	info   *types.Info
	locals map[*types.Var]struct{}
}

// New creates and returns a new Tracker.
func New(info *types.Info) *Tracker {
	return &Tracker{
		info:   info,
		locals: make(map[*types.Var]struct{}),
	}
}

// Define registers the variable defined by id as local and returns it.
// It returns nil for blank identifiers and identifiers not defining a variable.
func (t *Tracker) Define(id *ast.Ident) *types.Var {
	if id == nil || id.Name == "_" {
		return nil
	}

	v, ok := t.info.Defs[id].(*types.Var)
	if !ok || v.IsField() {
		return nil
	}

	t.locals[v] = struct{}{}

	return v
}

// DefineImplicit registers the implicit variable of a type switch clause.
func (t *Tracker) DefineImplicit(clause *ast.CaseClause) *types.Var {
	v, ok := t.info.Implicits[clause].(*types.Var)
	if !ok || v.Name() == "_" {
		return nil
	}

	t.locals[v] = struct{}{}

	return v
}

// Local returns the local variable used by id, or nil.
func (t *Tracker) Local(id *ast.Ident) *types.Var {
	v, ok := t.info.Uses[id].(*types.Var)
	if !ok {
		return nil
	}

	if _, ok := t.locals[v]; !ok {
		return nil
	}

	return v
}

// CantReturn determines if the given function call expression represents a function that cannot return.
func (t *Tracker) CantReturn(n *ast.CallExpr) bool {
	return CantReturn(t.info, n)
}
