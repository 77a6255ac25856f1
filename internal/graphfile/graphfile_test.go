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

package graphfile_test

import (
	"errors"
	"strings"
	"testing"

	"fillmore-labs.com/usecount/flowgraph"
	. "fillmore-labs.com/usecount/internal/graphfile"
	"fillmore-labs.com/usecount/internal/usage"
	"fillmore-labs.com/usecount/internal/walk"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name  string
		path  string
		nodes int
		entry string
		want  usage.Count
	}{
		{"YAML", "testdata/loop.yaml", 7, "#0 enter function", usage.Unknown},
		{"JSON", "testdata/linear.json", 4, "#0 enter function", usage.Once},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := Load(tt.path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if got := g.Len(); got != tt.nodes {
				t.Errorf("Got %d nodes, want %d", got, tt.nodes)
			}

			if got := g.Entry().String(); got != tt.entry {
				t.Errorf("Got entry %q, want %q", got, tt.entry)
			}

			res, err := walk.Run(t.Context(), g.Entry(), walk.Options{})
			if err != nil {
				t.Fatalf("Walk failed: %v", err)
			}

			if len(res.Declarations) != 1 {
				t.Fatalf("Got %d declarations, want 1", len(res.Declarations))
			}

			if got := res.Declarations[0].Usage; got != tt.want {
				t.Errorf("Got usage %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	const src = `
entry: b
nodes:
  - {id: a, kind: step, label: start}
  - {id: b, kind: enter, region: block}
edges:
  - {from: a, to: b}
  - {from: b, to: a, back: true}
`

	g, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	entry := g.Entry()
	if entry.Kind() != flowgraph.ScopeEnter || entry.Region() != flowgraph.Block {
		t.Errorf("Got entry %s, want enter block", entry)
	}

	preds := entry.Predecessors()
	if len(preds) != 1 || preds[0].Kind != flowgraph.Forward {
		t.Errorf("Got predecessors %v, want one forward edge", preds)
	}

	succs := entry.Successors()
	if len(succs) != 1 || !succs[0].Back() {
		t.Errorf("Got successors %v, want one back edge", succs)
	}

	if got, want := g.Vertices()[0].String(), "#0 start"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		err  error
	}{
		{"Empty", "", ErrNoNodes},
		{"NoNodes", "nodes: []", ErrNoNodes},
		{"MissingID", "nodes: [{kind: step}]", ErrMissingID},
		{"Duplicate", "nodes: [{id: a, kind: step}, {id: a, kind: step}]", ErrDuplicateID},
		{"Kind", "nodes: [{id: a, kind: jump}]", flowgraph.ErrUnknownName},
		{"Region", "nodes: [{id: a, kind: enter, region: module}]", flowgraph.ErrUnknownName},
		{"Name", "nodes: [{id: a, kind: read}]", ErrMissingName},
		{"Edge", "nodes: [{id: a, kind: step}]\nedges: [{from: a, to: b}]", ErrUnknownNode},
		{"Entry", "entry: c\nnodes: [{id: a, kind: step}]", ErrUnknownNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(strings.NewReader(tt.src))
			if !errors.Is(err, tt.err) {
				t.Errorf("Got error %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDecodeUnknownField(t *testing.T) {
	t.Parallel()

	if _, err := Decode(strings.NewReader("nodes: [{id: a, kind: step, color: red}]")); err == nil {
		t.Error("Expected error for unknown field")
	}
}

func TestLoadMissing(t *testing.T) {
	t.Parallel()

	if _, err := Load("testdata/missing.yaml"); err == nil {
		t.Error("Expected error for missing file")
	}
}
