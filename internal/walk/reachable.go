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

import "fillmore-labs.com/usecount/flowgraph"

// reachableSet holds the nodes reachable from an entry in breadth-first order.
type reachableSet struct {
	order []flowgraph.Node
	seen  map[flowgraph.Node]struct{}
}

// reachableFrom follows forward and back edges starting at entry.
func reachableFrom(entry flowgraph.Node) reachableSet {
	r := reachableSet{
		order: []flowgraph.Node{entry},
		seen:  map[flowgraph.Node]struct{}{entry: {}},
	}

	for qHead := 0; qHead < len(r.order); qHead++ {
		for _, e := range r.order[qHead].Successors() {
			if _, ok := r.seen[e.Node]; ok {
				continue
			}
			r.seen[e.Node] = struct{}{}

			r.order = append(r.order, e.Node)
		}
	}

	return r
}

func (r reachableSet) contains(n flowgraph.Node) bool {
	_, ok := r.seen[n]

	return ok
}
