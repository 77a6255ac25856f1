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

package build

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/usecount/flowgraph"
)

// appendExprs appends the reads of a list of expressions in order.
func (b *builder) appendExprs(list []ast.Expr) {
	for _, e := range list {
		b.appendExpr(e)
	}
}

// appendExpr appends the reads of local variables in an expression.
//
// Right operands of && and || are conditionally evaluated, function literals
// get their own scope level.
func (b *builder) appendExpr(e ast.Expr) {
	if e == nil {
		return
	}

	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			if b.Local(n) != nil {
				b.link(b.Read(n.Name, n.Pos()))
			}

		case *ast.SelectorExpr:
			b.appendExpr(n.X) // n.Sel is a field, method or qualified identifier

			return false

		case *ast.BinaryExpr:
			if n.Op == token.LAND || n.Op == token.LOR {
				b.appendCondExpr(n)

				return false
			}

		case *ast.FuncLit:
			b.appendFuncLit(n)

			return false
		}

		return true
	})
}

// appendCondExpr handles the short-circuit evaluation of && and ||.
func (b *builder) appendCondExpr(n *ast.BinaryExpr) {
	b.appendExpr(n.X)

	if !b.reads(n.Y) {
		return
	}

	short := b.cur

	b.appendExpr(n.Y)

	join := b.Step(n.Op.String(), n.OpPos)
	b.Link(short, join)
	b.link(join)
}

// reads reports whether evaluating e appends any vertex.
func (b *builder) reads(e ast.Expr) bool {
	found := false

	ast.Inspect(e, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Ident:
			found = found || b.Local(n) != nil

		case *ast.FuncLit:
			found = true
		}

		return !found
	})

	return found
}

// appendFuncLit handles function literals, which can be executed any number of times.
func (b *builder) appendFuncLit(lit *ast.FuncLit) {
	enter := b.enter(flowgraph.Lambda, lit.Pos())
	exit := b.Exit(flowgraph.Lambda, lit.End())

	b.LinkBack(enter, enter)

	b.appendFunc(nil, lit.Type, lit.Body)
	b.close(exit)
}
