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

// factory allocates vertices in chunks to reduce allocations for large graphs.
type factory struct {
	start, current *chunk
	count, total   int
}

type chunk struct {
	vertices [chunkSize]Vertex
	next     *chunk
}

const chunkSize = 127

// new returns a zeroed vertex numbered in allocation order.
func (f *factory) new() *Vertex {
	if f.count == chunkSize {
		f.current.next = new(chunk)
		f.current = f.current.next
		f.count = 0
		f.total += chunkSize
	} else if f.current == nil {
		f.current = new(chunk)
		f.start = f.current
	}

	f.count++

	v := &f.current.vertices[f.count-1]
	v.id = f.total + f.count - 1

	return v
}

// len returns the number of allocated vertices.
func (f *factory) len() int {
	return f.total + f.count
}

// all returns all allocated vertices in allocation order.
func (f *factory) all() []*Vertex {
	if f.start == nil {
		return nil
	}

	vertices := make([]*Vertex, 0, f.len())
	for next := f.start; next != nil; next = next.next {
		n := chunkSize
		if next == f.current {
			n = f.count
		}

		for i := range n {
			vertices = append(vertices, &next.vertices[i])
		}
	}

	return vertices
}
