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

// Package graphfile loads control flow graphs described in YAML or JSON files.
//
// A graph file lists the nodes and edges of a single function:
//
//	entry: f
//	nodes:
//	  - {id: f, kind: enter, region: function}
//	  - {id: d, kind: declare, name: x}
//	  - {id: r, kind: read, name: x}
//	  - {id: e, kind: exit, region: function}
//	edges:
//	  - {from: f, to: d}
//	  - {from: d, to: r}
//	  - {from: r, to: e}
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/usecount/flowgraph"
)

var (
	// ErrNoNodes is returned for a graph file without nodes.
	ErrNoNodes = errors.New("graph has no nodes")

	// ErrDuplicateID is returned when two nodes share an id.
	ErrDuplicateID = errors.New("duplicate node id")

	// ErrUnknownNode is returned when an edge or the entry names an undefined node.
	ErrUnknownNode = errors.New("unknown node")

	// ErrMissingName is returned for declare and read nodes without a variable name.
	ErrMissingName = errors.New("missing variable name")

	// ErrMissingID is returned for nodes without an id.
	ErrMissingID = errors.New("missing node id")
)

// File is the serialized form of a control flow graph.
type File struct {
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`
	Nodes []Node `json:"nodes"           yaml:"nodes"`
	Edges []Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
}

// Node describes a single graph node.
type Node struct {
	ID     string `json:"id"               yaml:"id"`
	Kind   string `json:"kind"             yaml:"kind"`
	Name   string `json:"name,omitempty"   yaml:"name,omitempty"`
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
	Label  string `json:"label,omitempty"  yaml:"label,omitempty"`
}

// Edge connects two nodes by id.
type Edge struct {
	From string `json:"from"           yaml:"from"`
	To   string `json:"to"             yaml:"to"`
	Back bool   `json:"back,omitempty" yaml:"back,omitempty"`
}

// Load reads and decodes the graph file at path.
func Load(path string) (*flowgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading graph %s: %w", path, err)
	}

	return g, nil
}

// Decode reads a graph file from r. JSON input is accepted as a subset of YAML.
func Decode(r io.Reader) (*flowgraph.Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoNodes
		}

		return nil, fmt.Errorf("decoding graph: %w", err)
	}

	return file.Graph()
}

// Graph validates the file and builds the described graph.
// Nodes are created in file order, so vertex numbers follow the file.
func (f *File) Graph() (*flowgraph.Graph, error) {
	if len(f.Nodes) == 0 {
		return nil, ErrNoNodes
	}

	g := flowgraph.New()
	ids := make(map[string]*flowgraph.Vertex, len(f.Nodes))

	for i, n := range f.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrMissingID)
		}

		if _, ok := ids[n.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, n.ID)
		}

		v, err := n.vertex(g)
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}

		ids[n.ID] = v
	}

	for _, e := range f.Edges {
		from, ok := ids[e.From]
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s: %w: %q", e.From, e.To, ErrUnknownNode, e.From)
		}

		to, ok := ids[e.To]
		if !ok {
			return nil, fmt.Errorf("edge %s -> %s: %w: %q", e.From, e.To, ErrUnknownNode, e.To)
		}

		if e.Back {
			g.LinkBack(from, to)
		} else {
			g.Link(from, to)
		}
	}

	if f.Entry != "" {
		entry, ok := ids[f.Entry]
		if !ok {
			return nil, fmt.Errorf("entry: %w: %q", ErrUnknownNode, f.Entry)
		}

		g.SetEntry(entry)
	}

	return g, nil
}

func (n Node) vertex(g *flowgraph.Graph) (*flowgraph.Vertex, error) {
	kind, err := flowgraph.ParseKind(n.Kind)
	if err != nil {
		return nil, fmt.Errorf("kind: %w", err)
	}

	region, err := flowgraph.ParseRegion(n.Region)
	if err != nil {
		return nil, fmt.Errorf("region: %w", err)
	}

	if n.Name == "" && (kind == flowgraph.Declaration || kind == flowgraph.Read) {
		return nil, ErrMissingName
	}

	return g.Add(kind, region, n.Name, n.Label, 0), nil
}
