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
	"context"
	"runtime/trace"

	"fillmore-labs.com/usecount/flowgraph"
	"fillmore-labs.com/usecount/internal/scope"
)

// Options configure a walk.
type Options struct {
	// MaxNodes limits the number of visited nodes, zero means no limit.
	MaxNodes int
}

// Run visits the nodes reachable from entry in topological order of forward edges
// and computes a scope snapshot for each of them.
//
// A node is visited after all its forward predecessors reachable from entry.
// Violated graph invariants are returned as [*InvariantError] together with the
// partial result. A walk stopped by ctx or [Options.MaxNodes] returns a nil error
// and an incomplete result.
func Run(ctx context.Context, entry flowgraph.Node, opts Options) (*Result, error) {
	defer trace.StartRegion(ctx, "Walk").End()

	res := newResult()
	if entry == nil {
		res.Cause = ErrNoEntry

		return res, ErrNoEntry
	}

	w := walker{
		reachable: reachableFrom(entry),
		result:    res,
	}

	if !w.ready(entry) {
		return w.fail(entry, ErrForwardCycle)
	}

	w.queue = append(w.queue, entry)
	w.queued = map[flowgraph.Node]struct{}{entry: {}}

	for qHead := 0; qHead < len(w.queue); qHead++ {
		if err := ctx.Err(); err != nil {
			res.Cause = err

			return res, nil
		}

		if opts.MaxNodes > 0 && len(res.Order) >= opts.MaxNodes {
			res.Cause = ErrNodeBudget

			return res, nil
		}

		n := w.queue[qHead]

		s, err := w.derive(n)
		if err != nil {
			return w.fail(n, err)
		}

		res.Scopes[n] = s
		res.Order = append(res.Order, n)

		w.enqueueSuccessors(n)
	}

	if len(res.Order) < len(w.reachable.order) {
		for _, n := range w.reachable.order {
			if _, ok := res.Scopes[n]; !ok {
				return w.fail(n, ErrForwardCycle)
			}
		}
	}

	return res, nil
}

type walker struct {
	reachable reachableSet
	result    *Result

	queue  []flowgraph.Node
	queued map[flowgraph.Node]struct{}
}

func (w *walker) fail(n flowgraph.Node, err error) (*Result, error) {
	ierr := &InvariantError{Node: n, Err: err}
	w.result.Cause = ierr

	return w.result, ierr
}

// enqueueSuccessors adds successors of n that became ready to the queue.
func (w *walker) enqueueSuccessors(n flowgraph.Node) {
	for _, e := range n.Successors() {
		succ := e.Node
		if _, ok := w.queued[succ]; ok || !w.ready(succ) {
			continue
		}

		w.queued[succ] = struct{}{}
		w.queue = append(w.queue, succ)
	}
}

// ready reports whether all forward predecessors of n reachable from the entry are visited.
func (w *walker) ready(n flowgraph.Node) bool {
	for _, e := range n.Predecessors() {
		if e.Back() || !w.reachable.contains(e.Node) {
			continue
		}

		if _, ok := w.result.Scopes[e.Node]; !ok {
			return false
		}
	}

	return true
}

// predecessors returns the snapshots of the forward predecessors of n and whether n
// is the target of a back edge.
func (w *walker) predecessors(n flowgraph.Node) (preds []*scope.Scope, loop bool) {
	for _, e := range n.Predecessors() {
		if !w.reachable.contains(e.Node) {
			continue
		}

		if e.Back() {
			loop = true

			continue
		}

		preds = append(preds, w.result.Scopes[e.Node])
	}

	return preds, loop
}

func (w *walker) derive(n flowgraph.Node) (*scope.Scope, error) {
	preds, loop := w.predecessors(n)

	switch n.Kind() {
	case flowgraph.ScopeEnter:
		return deriveEnter(preds, loop)

	case flowgraph.ScopeExit:
		return w.deriveExit(n, preds)

	default:
		s, err := deriveStep(preds, loop)
		if err != nil {
			return nil, err
		}

		return s, w.apply(n, s)
	}
}

func deriveEnter(preds []*scope.Scope, loop bool) (*scope.Scope, error) {
	switch len(preds) {
	case 0:
		return scope.New(nil, !loop), nil

	case 1:
		parent := preds[0].Copy()

		return scope.New(parent, !loop && parent.AtMostOnce()), nil

	default:
		return nil, ErrEnterJoin
	}
}

func (w *walker) deriveExit(n flowgraph.Node, preds []*scope.Scope) (*scope.Scope, error) {
	if len(preds) == 0 {
		return nil, ErrExitUnreachable
	}

	parents := make([]*scope.Scope, 0, len(preds))
	outermost := 0

	for _, p := range preds {
		w.result.retire(p)

		parent := p.Parent()
		if parent == nil {
			outermost++

			continue
		}

		parents = append(parents, parent)
	}

	switch outermost {
	case 0:
		return scope.Merge(parents...)

	case len(preds):
		if hasForwardSuccessor(n) {
			return nil, ErrScopeUnderflow
		}

		return scope.New(nil, true), nil

	default:
		return nil, scope.ErrDepthMismatch
	}
}

// deriveStep joins the forward predecessors. A back edge into an ordinary, declaring or
// reading node repeats the innermost level.
func deriveStep(preds []*scope.Scope, loop bool) (*scope.Scope, error) {
	var s *scope.Scope

	switch len(preds) {
	case 0:
		return scope.New(nil, !loop), nil

	case 1:
		s = preds[0].Copy()

	default:
		var err error
		if s, err = scope.Merge(preds...); err != nil {
			return nil, err
		}
	}

	if loop {
		s.Repeat()
	}

	return s, nil
}

// apply executes the declaration or read of n on its own snapshot.
func (w *walker) apply(n flowgraph.Node, s *scope.Scope) error {
	switch n.Kind() {
	case flowgraph.Declaration:
		v, err := s.Declare(n.Name(), n)
		if err != nil {
			return err
		}

		w.result.declare(n, v)

	case flowgraph.Read:
		v, err := s.Read(n.Name())
		if err != nil {
			return err
		}

		w.result.observe(v)
	}

	return nil
}

func hasForwardSuccessor(n flowgraph.Node) bool {
	for _, e := range n.Successors() {
		if !e.Back() {
			return true
		}
	}

	return false
}
