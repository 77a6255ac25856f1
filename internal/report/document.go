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

package report

import (
	"fillmore-labs.com/usecount/internal/scope"
	"fillmore-labs.com/usecount/internal/walk"
)

// Document is the encoder-neutral form of a [walk.Result].
type Document struct {
	Complete     bool          `json:"complete"               msgpack:"complete"               yaml:"complete"`
	Cause        string        `json:"cause,omitempty"        msgpack:"cause,omitempty"        yaml:"cause,omitempty"`
	Nodes        []Node        `json:"nodes"                  msgpack:"nodes"                  yaml:"nodes"`
	Declarations []Declaration `json:"declarations,omitempty" msgpack:"declarations,omitempty" yaml:"declarations,omitempty"`
}

// Node is the scope snapshot of one visited node.
type Node struct {
	Description string  `json:"description" msgpack:"description" yaml:"description"`
	Levels      []Level `json:"levels"      msgpack:"levels"      yaml:"levels"`
}

// Level is one nesting level of a snapshot, innermost first.
type Level struct {
	Depth      int   `json:"depth"          msgpack:"depth"          yaml:"depth"`
	AtMostOnce bool  `json:"atMostOnce"     msgpack:"atMostOnce"     yaml:"atMostOnce"`
	Vars       []Var `json:"vars,omitempty" msgpack:"vars,omitempty" yaml:"vars,omitempty"`
}

// Var is the usage of one variable at a node.
type Var struct {
	Name     string `json:"name"               msgpack:"name"               yaml:"name"`
	Usage    string `json:"usage"              msgpack:"usage"              yaml:"usage"`
	TopLevel bool   `json:"topLevel,omitempty" msgpack:"topLevel,omitempty" yaml:"topLevel,omitempty"`
}

// Declaration is the summary of one declared variable.
type Declaration struct {
	Node         string `json:"node"               msgpack:"node"               yaml:"node"`
	Name         string `json:"name"               msgpack:"name"               yaml:"name"`
	Usage        string `json:"usage"              msgpack:"usage"              yaml:"usage"`
	Multiplicity string `json:"multiplicity"       msgpack:"multiplicity"       yaml:"multiplicity"`
	TopLevel     bool   `json:"topLevel,omitempty" msgpack:"topLevel,omitempty" yaml:"topLevel,omitempty"`
	Final        bool   `json:"final"              msgpack:"final"              yaml:"final"`
}

// NewDocument converts a walk result. The result is not modified.
func NewDocument(res *walk.Result) Document {
	doc := Document{
		Complete: res.Complete(),
		Nodes:    make([]Node, 0, len(res.Order)),
	}

	if res.Cause != nil {
		doc.Cause = res.Cause.Error()
	}

	for _, n := range res.Order {
		s, _ := res.Scope(n)
		doc.Nodes = append(doc.Nodes, Node{Description: n.String(), Levels: levels(s)})
	}

	for _, d := range res.Declarations {
		doc.Declarations = append(doc.Declarations, Declaration{
			Node:         d.Node.String(),
			Name:         d.Name,
			Usage:        d.Usage.String(),
			Multiplicity: d.Usage.Multiplicity(),
			TopLevel:     d.TopLevel,
			Final:        d.Final,
		})
	}

	return doc
}

func levels(s *scope.Scope) []Level {
	depth := s.Depth()
	result := make([]Level, 0, depth)

	for l := range s.Levels() {
		level := Level{Depth: depth, AtMostOnce: l.AtMostOnce()}
		for v := range l.Vars() {
			level.Vars = append(level.Vars, Var{Name: v.Name, Usage: v.Usage.String(), TopLevel: v.TopLevel})
		}

		result = append(result, level)
		depth--
	}

	return result
}
