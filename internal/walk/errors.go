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
	"errors"
	"fmt"

	"fillmore-labs.com/usecount/flowgraph"
)

var (
	// ErrEnterJoin is returned for a scope entry with more than one forward predecessor.
	ErrEnterJoin = errors.New("scope entry with more than one forward predecessor")

	// ErrScopeUnderflow is returned when a scope exit leaves the outermost scope
	// but control flow continues after it.
	ErrScopeUnderflow = errors.New("scope exit without enclosing scope")

	// ErrExitUnreachable is returned for a scope exit only reachable through back edges.
	ErrExitUnreachable = errors.New("scope exit without forward predecessor")

	// ErrForwardCycle is returned when reachable nodes never have all forward predecessors processed.
	ErrForwardCycle = errors.New("unresolvable forward predecessors")

	// ErrNodeBudget is the [Result.Cause] of a walk stopped by [Options.MaxNodes].
	ErrNodeBudget = errors.New("node budget exhausted")

	// ErrNoEntry is returned when the walk is started without an entry node.
	ErrNoEntry = errors.New("missing entry node")
)

// InvariantError reports a node violating a structural invariant of the input graph.
type InvariantError struct {
	Node flowgraph.Node
	Err  error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("node %s: %v", e.Node, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
