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

package walk

import (
	"fillmore-labs.com/usecount/flowgraph"
	"fillmore-labs.com/usecount/internal/scope"
	"fillmore-labs.com/usecount/internal/usage"
)

// Declaration summarizes the usage of one declared variable over the whole walk.
type Declaration struct {
	// Node is the declaring node.
	Node flowgraph.Node

	// Name is the declared name.
	Name string

	// TopLevel is set for variables of the outermost scope.
	TopLevel bool

	// Usage is the join of the values observed at every read and at every point
	// where the declaring scope was left.
	Usage usage.Count

	// Final is set once the declaring scope was left on at least one path.
	Final bool

	observed bool
}

func (d *Declaration) record(c usage.Count) {
	if d.observed {
		d.Usage = usage.Merge(d.Usage, c)
	} else {
		d.Usage, d.observed = c, true
	}
}

// Result holds the scope snapshots computed by [Run].
type Result struct {
	// Order lists the visited nodes in traversal order.
	Order []flowgraph.Node

	// Scopes maps every visited node to its scope snapshot.
	Scopes map[flowgraph.Node]*scope.Scope

	// Declarations lists the visited declarations in traversal order.
	Declarations []*Declaration

	// Cause is non-nil when the walk stopped before visiting all reachable nodes.
	Cause error

	decls map[flowgraph.Node]*Declaration
}

func newResult() *Result {
	return &Result{
		Scopes: make(map[flowgraph.Node]*scope.Scope),
		decls:  make(map[flowgraph.Node]*Declaration),
	}
}

// Complete reports whether all reachable nodes were visited.
func (r *Result) Complete() bool {
	return r.Cause == nil
}

// Scope returns the snapshot of a visited node.
func (r *Result) Scope(n flowgraph.Node) (*scope.Scope, bool) {
	s, ok := r.Scopes[n]

	return s, ok
}

// Declaration returns the summary for a declaring node.
func (r *Result) Declaration(n flowgraph.Node) (*Declaration, bool) {
	d, ok := r.decls[n]

	return d, ok
}

func (r *Result) declare(n flowgraph.Node, v *scope.Var) {
	d := &Declaration{Node: n, Name: v.Name, TopLevel: v.TopLevel, Usage: v.Usage}
	r.decls[n] = d
	r.Declarations = append(r.Declarations, d)
}

// observe records the value of a variable after a read.
func (r *Result) observe(v *scope.Var) {
	if d, ok := r.decls[v.Decl]; ok {
		d.record(v.Usage)
	}
}

// retire records the values of a scope level that is left.
func (r *Result) retire(s *scope.Scope) {
	for v := range s.Vars() {
		d, ok := r.decls[v.Decl]
		if !ok {
			continue
		}

		d.record(v.Usage)
		d.Final = true
	}
}
