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

// Package flowgraph describes the control flow graphs consumed by the usage analysis.
//
// A graph is supplied by an external collaborator, typically a compiler front end.
// Besides ordinary program points it carries markers for entering and leaving
// lexical scopes, for variable declarations and for variable reads:
//
//	enter function -> declare x -> read x -> exit function
//
// Edges are either forward edges or back edges. Back edges re-enter a previously
// executed region, like a loop continuation, and are ignored when deciding whether
// all predecessors of a node are known.
package flowgraph

// Node is a program point of a control flow graph.
//
// Implementations must be comparable, since nodes are used as map keys.
type Node interface {
	// Kind returns the role of this node.
	Kind() Kind

	// Name returns the declared or read variable name for [Declaration] and [Read] nodes.
	Name() string

	// Predecessors returns the incoming edges; [Edge.Node] is the source.
	Predecessors() []Edge

	// Successors returns the outgoing edges; [Edge.Node] is the target.
	Successors() []Edge

	// String describes the node for reports.
	String() string
}

// Edge connects two nodes. For predecessor lists Node is the source,
// for successor lists it is the target.
type Edge struct {
	Node Node
	Kind EdgeKind
}

// Back reports whether this is a back edge.
func (e Edge) Back() bool { return e.Kind == Back }

// Kind is the role of a [Node].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Ordinary is a program point without scope or variable significance.
	Ordinary Kind = iota // step

	// ScopeEnter opens a nested lexical scope.
	ScopeEnter // enter

	// ScopeExit closes the most recently opened scope.
	ScopeExit // exit

	// Declaration introduces a variable into the current scope.
	Declaration // declare

	// Read reads a previously declared variable.
	Read // read
)

// EdgeKind distinguishes forward from back edges.
type EdgeKind uint8

//go:generate go tool stringer -type EdgeKind -linecomment
const (
	// Forward is normal control flow.
	Forward EdgeKind = iota // forward

	// Back re-enters a previously executed region.
	Back // back
)

// Region names the construct a scope marker belongs to. It is informational only.
type Region uint8

//go:generate go tool stringer -type Region -linecomment
const (
	NoRegion  Region = iota // none
	Function                // function
	Body                    // body
	Block                   // block
	If                      // if
	Loop                    // loop
	Iteration               // iteration
	Switch                  // switch
	Case                    // case
	Select                  // select
	Lambda                  // lambda
	Label                   // label
	Try                     // try
	Catch                   // catch
	Finally                 // finally
)
