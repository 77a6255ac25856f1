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

package flowgraph_test

import (
	"errors"
	"go/token"
	"testing"

	. "fillmore-labs.com/usecount/flowgraph"
)

func TestGraphAllocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		count int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"ChunkSize", ChunkSize},
		{"ChunkSizePlusOne", ChunkSize + 1},
		{"MultipleChunks", 2*ChunkSize + 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := New()

			for i := range tt.count {
				g.Step("", token.Pos(i+1))
			}

			vertices := g.Vertices()
			if got, want := len(vertices), tt.count; got != want {
				t.Errorf("Got %d vertices, expected %d", got, want)
			}

			if got, want := g.Len(), tt.count; got != want {
				t.Errorf("Got length %d, expected %d", got, want)
			}

			for i, v := range vertices {
				if got, want := v.ID(), i; got != want {
					t.Errorf("Got id %d for vertex %d, expected %d", got, i, want)
				}

				if got, want := v.Pos(), token.Pos(i+1); got != want {
					t.Errorf("Got position %d for vertex %d, expected %d", got, i, want)
				}
			}

			if tt.count == 0 && g.Entry() != nil {
				t.Errorf("Got entry %v for empty graph", g.Entry())
			}
		})
	}
}

func TestLink(t *testing.T) {
	t.Parallel()

	g := New()
	a, b := g.Step("a", token.NoPos), g.Step("b", token.NoPos)

	g.Link(a, b)
	g.Link(a, b)
	g.LinkBack(b, a)
	g.Link(nil, a)

	if got := len(a.Successors()); got != 1 {
		t.Fatalf("Got %d successors, want 1", got)
	}

	if got := b.Predecessors()[0]; got.Node != Node(a) || got.Back() {
		t.Errorf("Got predecessor %v (%s), want forward edge from %v", got.Node, got.Kind, a)
	}

	if got := a.Predecessors(); len(got) != 1 || !got[0].Back() {
		t.Errorf("Got predecessors %v, want one back edge", got)
	}

	if got := g.Entry(); got != a {
		t.Errorf("Got entry %v, want %v", got, a)
	}

	g.SetEntry(b)

	if got := g.Entry(); got != b {
		t.Errorf("Got entry %v, want %v", got, b)
	}
}

func TestVertexString(t *testing.T) {
	t.Parallel()

	g := New()

	tests := [...]struct {
		v    *Vertex
		want string
	}{
		{g.Enter(Function, token.NoPos), "#0 enter function"},
		{g.Declare("x", token.NoPos), "#1 declare x"},
		{g.Read("x", token.NoPos), "#2 read x"},
		{g.Step("", token.NoPos), "#3 step"},
		{g.Step("if", token.NoPos), "#4 if"},
		{g.Add(ScopeExit, Loop, "", "break", token.NoPos), "#5 exit loop (break)"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Got %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	if k, err := ParseKind("declare"); err != nil || k != Declaration {
		t.Errorf("ParseKind(\"declare\") = %s, %v", k, err)
	}

	if r, err := ParseRegion("iteration"); err != nil || r != Iteration {
		t.Errorf("ParseRegion(\"iteration\") = %s, %v", r, err)
	}

	if r, err := ParseRegion(""); err != nil || r != NoRegion {
		t.Errorf("ParseRegion(\"\") = %s, %v", r, err)
	}

	if _, err := ParseKind("jump"); !errors.Is(err, ErrUnknownName) {
		t.Errorf("ParseKind(\"jump\") error = %v, want %v", err, ErrUnknownName)
	}
}
