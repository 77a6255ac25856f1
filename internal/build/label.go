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
	"go/token"
	"slices"

	"fillmore-labs.com/usecount/flowgraph"
)

// labelTarget represents the control flow targets for a labeled statement.
// A label can be the target of break, continue, or goto statements.
type labelTarget struct {
	statement      jumpTarget // Where to jump on 'goto label'
	breakTarget    jumpTarget // Where to jump on 'break label'
	continueTarget jumpTarget // Where to jump on 'continue label'

	pending []pendingGoto // Forward gotos before the label is defined
}

// pendingGoto is a forward goto waiting for its label.
type pendingGoto struct {
	from    *flowgraph.Vertex
	regions []flowgraph.Region // open levels at the goto
	pos     token.Pos
}

func (l *labelTarget) setBreak(t jumpTarget) {
	if l != nil {
		l.breakTarget = t
	}
}

func (l *labelTarget) setContinue(t jumpTarget) {
	if l != nil {
		l.continueTarget = t
	}
}

// branchTarget returns the target a labeled break or continue jumps to.
func (l *labelTarget) branchTarget(tok token.Token) jumpTarget {
	switch tok {
	case token.BREAK:
		return l.breakTarget

	case token.CONTINUE:
		return l.continueTarget

	default:
		panic(fmt.Sprintf("unexpected labeled branch token: %s", tok))
	}
}

// labelTarget retrieves or creates a target for the given label.
func (b *builder) labelTarget(name string) *labelTarget {
	if target, ok := b.fn.labels[name]; ok {
		return target
	}

	target := &labelTarget{}
	b.fn.labels[name] = target

	return target
}

// appendGoto jumps to a defined label or records a forward goto.
func (b *builder) appendGoto(name string, pos, end token.Pos) {
	l := b.labelTarget(name)

	if l.statement.valid() {
		b.jump(l.statement, "goto", pos, end)

		return
	}

	l.pending = append(l.pending, pendingGoto{from: b.cur, regions: slices.Clone(b.regions), pos: pos})

	b.unreachable(end)
}

// defineLabel links pending forward gotos to join, which is at the current depth.
func (b *builder) defineLabel(l *labelTarget, join *flowgraph.Vertex) {
	depth := b.depth()

	for _, p := range l.pending {
		last := b.unwind(p.from, p.regions, depth, "goto", p.pos)
		b.Link(last, join)
	}

	l.pending = nil
	l.statement = jumpTarget{vertex: join, depth: depth}
}
