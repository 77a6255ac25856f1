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
	"go/token"

	"fillmore-labs.com/usecount/flowgraph"
)

// jumpTarget is a vertex reached by a jump together with the number of scope
// levels open at that vertex.
type jumpTarget struct {
	vertex *flowgraph.Vertex
	depth  int
	back   bool // link with a back edge
}

func (t jumpTarget) valid() bool {
	return t.vertex != nil
}

// link appends v to the current path.
func (b *builder) link(v *flowgraph.Vertex) *flowgraph.Vertex {
	b.Link(b.cur, v)
	b.cur = v

	return v
}

// enter opens a scope level on the current path.
func (b *builder) enter(r flowgraph.Region, pos token.Pos) *flowgraph.Vertex {
	v := b.link(b.Enter(r, pos))
	b.regions = append(b.regions, r)

	return v
}

// open enters a scope level and returns its exit, to be completed by [builder.close] or [builder.leave].
func (b *builder) open(r flowgraph.Region, pos, end token.Pos) (exit *flowgraph.Vertex) {
	b.enter(r, pos)

	return b.Exit(r, end)
}

// close links the current path to exit and leaves the innermost scope level.
func (b *builder) close(exit *flowgraph.Vertex) {
	b.Link(b.cur, exit)
	b.leave(exit)
}

// leave continues after exit, whose predecessors are already linked.
func (b *builder) leave(exit *flowgraph.Vertex) {
	b.regions = b.regions[:len(b.regions)-1]
	b.cur = exit
}

// depth returns the number of open scope levels.
func (b *builder) depth() int {
	return len(b.regions)
}

// closeTo leaves all scope levels above depth on the current path.
func (b *builder) closeTo(depth int, pos token.Pos) {
	for b.depth() > depth {
		b.close(b.Exit(b.regions[len(b.regions)-1], pos))
	}
}

// unwind emits exits for the levels above depth of regions without closing them,
// starting at from. It returns the last vertex of the path.
func (b *builder) unwind(from *flowgraph.Vertex, regions []flowgraph.Region, depth int, label string, pos token.Pos) *flowgraph.Vertex {
	for i := len(regions) - 1; i >= depth; i-- {
		v := b.Add(flowgraph.ScopeExit, regions[i], "", label, pos)
		b.Link(from, v)
		from = v
	}

	return from
}

// jump leaves the open levels down to the depth of t and links to its vertex.
// Code following a jump is unreachable.
func (b *builder) jump(t jumpTarget, label string, pos, end token.Pos) {
	last := b.unwind(b.cur, b.regions, t.depth, label, pos)

	if t.back {
		b.LinkBack(last, t.vertex)
	} else {
		b.Link(last, t.vertex)
	}

	b.unreachable(end)
}

// unreachable starts a new path without predecessors.
func (b *builder) unreachable(pos token.Pos) {
	b.cur = b.Step("unreachable", pos)
}
