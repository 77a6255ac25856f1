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

package flowgraph

import (
	"go/token"
	"strconv"
)

// Graph is a mutable control flow graph made of [Vertex] nodes.
//
// The zero value is an empty graph ready to use.
type Graph struct {
	factory
	entry *Vertex
}

// New creates an empty [Graph].
func New() *Graph {
	return &Graph{}
}

// Entry returns the entry vertex, which defaults to the first vertex created.
func (g *Graph) Entry() *Vertex {
	if g.entry == nil && g.start != nil {
		return &g.start.vertices[0]
	}

	return g.entry
}

// SetEntry sets the entry vertex.
func (g *Graph) SetEntry(v *Vertex) {
	g.entry = v
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return g.len()
}

// Vertices returns all vertices in creation order.
func (g *Graph) Vertices() []*Vertex {
	return g.all()
}

// Step creates an ordinary vertex.
func (g *Graph) Step(label string, pos token.Pos) *Vertex {
	return g.add(Ordinary, NoRegion, "", label, pos)
}

// Enter creates a scope entry marker.
func (g *Graph) Enter(region Region, pos token.Pos) *Vertex {
	return g.add(ScopeEnter, region, "", "", pos)
}

// Exit creates a scope exit marker.
func (g *Graph) Exit(region Region, pos token.Pos) *Vertex {
	return g.add(ScopeExit, region, "", "", pos)
}

// Declare creates a variable declaration vertex.
func (g *Graph) Declare(name string, pos token.Pos) *Vertex {
	return g.add(Declaration, NoRegion, name, "", pos)
}

// Read creates a variable read vertex.
func (g *Graph) Read(name string, pos token.Pos) *Vertex {
	return g.add(Read, NoRegion, name, "", pos)
}

// Add creates a vertex of arbitrary kind.
func (g *Graph) Add(kind Kind, region Region, name, label string, pos token.Pos) *Vertex {
	return g.add(kind, region, name, label, pos)
}

func (g *Graph) add(kind Kind, region Region, name, label string, pos token.Pos) *Vertex {
	v := g.new()
	v.kind, v.region, v.name, v.label, v.pos = kind, region, name, label, pos

	return v
}

// Link adds a forward edge. Nil vertices and duplicate edges are ignored.
func (g *Graph) Link(from, to *Vertex) {
	link(from, to, Forward)
}

// LinkBack adds a back edge. Nil vertices and duplicate edges are ignored.
func (g *Graph) LinkBack(from, to *Vertex) {
	link(from, to, Back)
}

func link(from, to *Vertex, kind EdgeKind) {
	if from == nil || to == nil {
		return
	}

	for _, e := range from.succs {
		if e.Node == Node(to) && e.Kind == kind {
			return
		}
	}

	from.succs = append(from.succs, Edge{Node: to, Kind: kind})
	to.preds = append(to.preds, Edge{Node: from, Kind: kind})
}

// Vertex is a node of a [Graph].
type Vertex struct {
	id           int
	kind         Kind
	region       Region
	name, label  string
	pos          token.Pos
	preds, succs []Edge
}

var _ Node = (*Vertex)(nil)

// ID returns the creation index of the vertex.
func (v *Vertex) ID() int { return v.id }

// Kind implements [Node].
func (v *Vertex) Kind() Kind { return v.kind }

// Name implements [Node].
func (v *Vertex) Name() string { return v.name }

// Region returns the construct of a scope marker.
func (v *Vertex) Region() Region { return v.region }

// Label returns the free-form label.
func (v *Vertex) Label() string { return v.label }

// Pos returns the source position, if known.
func (v *Vertex) Pos() token.Pos { return v.pos }

// Predecessors implements [Node].
func (v *Vertex) Predecessors() []Edge { return v.preds }

// Successors implements [Node].
func (v *Vertex) Successors() []Edge { return v.succs }

// String implements [Node].
func (v *Vertex) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '#')
	b = strconv.AppendInt(b, int64(v.id), 10)
	b = append(b, ' ')

	switch v.kind {
	case Ordinary:
		if v.label == "" {
			b = append(b, v.kind.String()...)
		} else {
			b = append(b, v.label...)
		}

		return string(b)

	case ScopeEnter, ScopeExit:
		b = append(b, v.kind.String()...)
		b = append(b, ' ')
		b = append(b, v.region.String()...)

	default:
		b = append(b, v.kind.String()...)
		b = append(b, ' ')
		b = append(b, v.name...)
	}

	if v.label != "" {
		b = append(b, " ("...)
		b = append(b, v.label...)
		b = append(b, ')')
	}

	return string(b)
}
