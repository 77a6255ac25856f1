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
	"fmt"
	"go/ast"
	"go/token"

	"fillmore-labs.com/usecount/flowgraph"
)

// appendStmtList appends a list of statements to the current path.
// Label levels opened by the list are closed at end.
func (b *builder) appendStmtList(list []ast.Stmt, end token.Pos) {
	depth := b.depth()

	for _, s := range list {
		b.appendStmt(s, nil)
	}

	b.closeTo(depth, end)
}

// appendStmt appends a single statement to the current path.
// labeled is the target of an enclosing label (for break/continue).
func (b *builder) appendStmt(stmt ast.Stmt, labeled *labelTarget) {
	switch stmt := stmt.(type) {
	// keep-sorted start newline_separated=yes
	case *ast.AssignStmt:
		b.appendAssignStmt(stmt)

	case *ast.BadStmt, *ast.EmptyStmt:

	case *ast.BlockStmt:
		b.appendBlockStmt(stmt, flowgraph.Block)

	case *ast.BranchStmt:
		b.appendBranchStmt(stmt)

	case *ast.DeclStmt:
		b.appendDeclStmt(stmt)

	case *ast.DeferStmt:
		b.appendExpr(stmt.Call)

	case *ast.ExprStmt:
		b.appendExpr(stmt.X)

		if call, ok := stmt.X.(*ast.CallExpr); ok && b.CantReturn(call) {
			b.unreachable(stmt.End()) // unreachable after non-returning call
		}

	case *ast.ForStmt:
		b.appendForStmt(stmt, labeled)

	case *ast.GoStmt:
		b.appendExpr(stmt.Call)

	case *ast.IfStmt:
		b.appendIfStmt(stmt)

	case *ast.IncDecStmt:
		b.appendExpr(stmt.X)

	case *ast.LabeledStmt:
		b.appendLabeledStmt(stmt)

	case *ast.RangeStmt:
		b.appendRangeStmt(stmt, labeled)

	case *ast.ReturnStmt:
		b.appendReturnStmt(stmt)

	case *ast.SelectStmt:
		b.appendSelectStmt(stmt, labeled)

	case *ast.SendStmt:
		b.appendExpr(stmt.Chan)
		b.appendExpr(stmt.Value)

	case *ast.SwitchStmt:
		b.appendSwitchStmt(stmt, labeled)

	case *ast.TypeSwitchStmt:
		b.appendTypeSwitchStmt(stmt, labeled)

	default: // *ast.CaseClause and *ast.CommClause
		msg := fmt.Errorf("unexpected statement type: %T", stmt)
		panic(msg)
		// keep-sorted end
	}
}

// appendBlockStmt appends a block in its own scope level.
func (b *builder) appendBlockStmt(stmt *ast.BlockStmt, r flowgraph.Region) {
	exit := b.open(r, stmt.Lbrace, stmt.Rbrace)
	b.appendStmtList(stmt.List, stmt.Rbrace)
	b.close(exit)
}

// appendAssignStmt handles assignments and short variable declarations.
func (b *builder) appendAssignStmt(stmt *ast.AssignStmt) {
	b.appendExprs(stmt.Rhs)

	switch stmt.Tok {
	case token.DEFINE:
		for _, lhs := range stmt.Lhs {
			if id, ok := lhs.(*ast.Ident); ok {
				b.declare(id, Decl{Ident: id})
			}
		}

	case token.ASSIGN:
		for _, lhs := range stmt.Lhs {
			b.appendAssigned(lhs)
		}

	default: // x op= y reads x
		b.appendExprs(stmt.Lhs)
	}
}

// appendAssigned handles the target of an assignment.
// Assigning to a variable is not a read, but operands of index expressions,
// selectors and indirections are.
func (b *builder) appendAssigned(lhs ast.Expr) {
	if _, ok := ast.Unparen(lhs).(*ast.Ident); ok {
		return
	}

	b.appendExpr(lhs)
}

// appendDeclStmt handles variable declarations, skipping const and type declarations.
func (b *builder) appendDeclStmt(stmt *ast.DeclStmt) {
	decl, ok := stmt.Decl.(*ast.GenDecl)
	if !ok || decl.Tok != token.VAR {
		return
	}

	for _, spec := range decl.Specs {
		spec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		b.appendExprs(spec.Values)

		for _, name := range spec.Names {
			b.declare(name, Decl{Ident: name})
		}
	}
}

// appendLabeledStmt handles labeled statements.
func (b *builder) appendLabeledStmt(stmt *ast.LabeledStmt) {
	name := stmt.Label.Name
	labeled := b.labelTarget(name)

	join := b.link(b.Step(name, stmt.Pos()))
	b.defineLabel(labeled, join)

	if _, ok := b.fn.backward[name]; ok {
		// Re-entered by a backward goto, closed at the end of the enclosing statement list.
		depth := b.depth()
		enter := b.enter(flowgraph.Label, stmt.Colon)
		labeled.statement = jumpTarget{vertex: enter, depth: depth, back: true}
	}

	b.appendStmt(stmt.Stmt, labeled)
}

// appendBranchStmt handles break, continue, goto, and fallthrough.
func (b *builder) appendBranchStmt(stmt *ast.BranchStmt) {
	if stmt.Tok == token.GOTO {
		b.appendGoto(stmt.Label.Name, stmt.Pos(), stmt.End())

		return
	}

	var target jumpTarget
	if stmt.Label == nil {
		target = b.fn.targets.branchTarget(stmt.Tok)
	} else {
		target = b.labelTarget(stmt.Label.Name).branchTarget(stmt.Tok)
	}

	if !target.valid() {
		b.unreachable(stmt.End()) // invalid code

		return
	}

	b.jump(target, stmt.Tok.String(), stmt.Pos(), stmt.End())
}

// appendReturnStmt handles return statements. A bare return reads the named results.
func (b *builder) appendReturnStmt(stmt *ast.ReturnStmt) {
	b.appendExprs(stmt.Results)

	if len(stmt.Results) == 0 {
		for _, id := range b.fn.results {
			b.link(b.Read(id.Name, stmt.Pos()))
		}
	}

	b.jump(b.fn.ret, "return", stmt.Pos(), stmt.End())
}

// appendIfStmt handles if statements.
func (b *builder) appendIfStmt(stmt *ast.IfStmt) {
	after := b.open(flowgraph.If, stmt.Pos(), stmt.End())

	if stmt.Init != nil {
		b.appendStmt(stmt.Init, nil)
	}

	b.appendExpr(stmt.Cond)

	cond := b.cur

	b.appendBlockStmt(stmt.Body, flowgraph.Block)
	b.Link(b.cur, after)

	b.cur = cond
	if stmt.Else != nil {
		b.appendStmt(stmt.Else, nil)
	}

	b.close(after)
}

// appendForStmt handles for loops.
func (b *builder) appendForStmt(stmt *ast.ForStmt, labeled *labelTarget) {
	after := b.open(flowgraph.Loop, stmt.Pos(), stmt.End())

	if stmt.Init != nil {
		b.appendStmt(stmt.Init, nil)
	}

	iteration := b.enter(flowgraph.Iteration, stmt.Body.Lbrace)
	depth := b.depth()
	done := b.Exit(flowgraph.Iteration, stmt.End())

	if stmt.Cond != nil {
		b.appendExpr(stmt.Cond)
		b.Link(b.cur, done)
	}

	var postPos token.Pos
	if stmt.Post != nil {
		postPos = stmt.Post.Pos()
	}

	post := b.Step("continue", postPos)

	b.appendLoopBody(stmt.Body, labeled, jumpTarget{vertex: done, depth: depth}, jumpTarget{vertex: post, depth: depth})

	b.cur = post

	if stmt.Post != nil {
		b.appendStmt(stmt.Post, nil)
	}

	b.LinkBack(b.cur, iteration)

	b.leave(done)
	b.close(after)
}

// appendRangeStmt handles range loops.
func (b *builder) appendRangeStmt(stmt *ast.RangeStmt, labeled *labelTarget) {
	after := b.open(flowgraph.Loop, stmt.Pos(), stmt.End())

	b.appendExpr(stmt.X)

	iteration := b.enter(flowgraph.Iteration, stmt.Body.Lbrace)
	depth := b.depth()
	done := b.Exit(flowgraph.Iteration, stmt.End())
	b.Link(iteration, done)

	switch stmt.Tok {
	case token.DEFINE:
		for _, e := range [...]ast.Expr{stmt.Key, stmt.Value} {
			if id, ok := e.(*ast.Ident); ok {
				b.declare(id, Decl{Ident: id})
			}
		}

	case token.ASSIGN:
		for _, e := range [...]ast.Expr{stmt.Key, stmt.Value} {
			if e != nil {
				b.appendAssigned(e)
			}
		}
	}

	post := b.Step("continue", stmt.Body.Rbrace)

	b.appendLoopBody(stmt.Body, labeled, jumpTarget{vertex: done, depth: depth}, jumpTarget{vertex: post, depth: depth})

	b.cur = post
	b.LinkBack(b.cur, iteration)

	b.leave(done)
	b.close(after)
}

// appendLoopBody appends a loop body with the given break and continue targets and links it to the continue target.
func (b *builder) appendLoopBody(body *ast.BlockStmt, labeled *labelTarget, brk, cont jumpTarget) {
	labeled.setBreak(brk)
	labeled.setContinue(cont)

	oldb := b.fn.targets.pushBreak(brk)
	oldc := b.fn.targets.pushContinue(cont)

	b.appendBlockStmt(body, flowgraph.Block)
	b.Link(b.cur, cont.vertex)

	b.fn.targets.popContinue(oldc)
	b.fn.targets.popBreak(oldb)
}

// appendSwitchStmt handles expression switch statements.
func (b *builder) appendSwitchStmt(stmt *ast.SwitchStmt, labeled *labelTarget) {
	after := b.open(flowgraph.Switch, stmt.Pos(), stmt.End())

	if stmt.Init != nil {
		b.appendStmt(stmt.Init, nil)
	}

	b.appendExpr(stmt.Tag)

	b.appendSwitchBody(stmt.Body, after, labeled, false, nil)

	b.leave(after)
}

// appendTypeSwitchStmt handles type switch statements.
func (b *builder) appendTypeSwitchStmt(stmt *ast.TypeSwitchStmt, labeled *labelTarget) {
	after := b.open(flowgraph.Switch, stmt.Pos(), stmt.End())

	if stmt.Init != nil {
		b.appendStmt(stmt.Init, nil)
	}

	var (
		symbol *ast.Ident
		guard  ast.Expr
	)

	switch s := stmt.Assign.(type) {
	case *ast.AssignStmt: // x := y.(type)
		symbol, guard = s.Lhs[0].(*ast.Ident), s.Rhs[0]

	case *ast.ExprStmt: // y.(type)
		guard = s.X
	}

	if assert, ok := guard.(*ast.TypeAssertExpr); ok {
		b.appendExpr(assert.X)
	}

	b.appendSwitchBody(stmt.Body, after, labeled, true, symbol)

	b.leave(after)
}

// appendSwitchBody handles the clauses of a switch statement.
//
// Case expressions are evaluated in order until one matches. Each clause body is
// entered through a join vertex that collects the matching case expressions and
// a fallthrough of the previous clause.
func (b *builder) appendSwitchBody(cases *ast.BlockStmt, after *flowgraph.Vertex, labeled *labelTarget, typeSwitch bool, symbol *ast.Ident) {
	depth := b.depth()
	brk := jumpTarget{vertex: after, depth: depth}

	labeled.setBreak(brk)
	old := b.fn.targets.pushBreak(brk)

	entries := make([]*flowgraph.Vertex, len(cases.List))
	for i, clause := range cases.List {
		entries[i] = b.Step("case", clause.Pos())
	}

	// See https://go.dev/ref/spec#Switch_statements
	defaultTarget := after // no default, switch can fall through

	for i, clause := range cases.List {
		clause := clause.(*ast.CaseClause)

		if clause.List == nil {
			defaultTarget = entries[i] // default case

			continue
		}

		for _, expr := range clause.List {
			if !typeSwitch {
				b.appendExpr(expr)
			}

			b.Link(b.cur, entries[i])
		}
	}

	b.Link(b.cur, defaultTarget)

	for i, clause := range cases.List {
		clause := clause.(*ast.CaseClause)

		b.cur = entries[i]
		exit := b.open(flowgraph.Case, clause.Pos(), clause.End())

		if symbol != nil {
			b.declareImplicit(clause, symbol)
		}

		var fallthroughTarget jumpTarget
		if !typeSwitch && i < len(entries)-1 {
			fallthroughTarget = jumpTarget{vertex: entries[i+1], depth: depth}
		}

		// While there can only be one fallthrough target, switches could be nested
		oldf := b.fn.targets.pushFallthrough(fallthroughTarget)

		b.appendStmtList(clause.Body, clause.End())
		b.close(exit)
		b.Link(b.cur, after)

		b.fn.targets.popFallthrough(oldf)
	}

	b.fn.targets.popBreak(old)
}

// appendSelectStmt handles select statements.
func (b *builder) appendSelectStmt(stmt *ast.SelectStmt, labeled *labelTarget) {
	after := b.open(flowgraph.Select, stmt.Pos(), stmt.End())

	depth := b.depth()
	brk := jumpTarget{vertex: after, depth: depth}

	labeled.setBreak(brk)
	old := b.fn.targets.pushBreak(brk)

	// First all the channel operands are evaluated
	// See https://go.dev/ref/spec#Select_statements
	for _, clause := range stmt.Body.List {
		switch comm := clause.(*ast.CommClause).Comm.(type) {
		case nil: // default

		case *ast.SendStmt: // ch <- value
			b.appendExpr(comm.Chan)
			b.appendExpr(comm.Value)

		case *ast.AssignStmt: // x := <- ch
			b.appendExprs(comm.Rhs)

		case *ast.ExprStmt: // <- ch
			b.appendExpr(comm.X)

		default:
			msg := fmt.Errorf("unexpected communication clause: %T", comm)
			panic(msg)
		}
	}

	// Then, a random clause is selected
	dispatch := b.cur

	for _, clause := range stmt.Body.List {
		clause := clause.(*ast.CommClause)

		b.cur = dispatch
		exit := b.open(flowgraph.Case, clause.Pos(), clause.End())

		if comm, ok := clause.Comm.(*ast.AssignStmt); ok { // received values are assigned
			for _, lhs := range comm.Lhs {
				if id, ok := lhs.(*ast.Ident); ok && comm.Tok == token.DEFINE {
					b.declare(id, Decl{Ident: id})
				} else {
					b.appendAssigned(lhs)
				}
			}
		}

		b.appendStmtList(clause.Body, clause.End())
		b.close(exit)
		b.Link(b.cur, after)
	}

	b.fn.targets.popBreak(old)

	b.leave(after)
}
