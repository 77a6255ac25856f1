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

package build

import (
	"fmt"
	"go/token"
)

// branchTargets maintains the current unlabeled branch targets of nested
// control structures (loops, switches, selects).
type branchTargets struct {
	currentBreak       jumpTarget
	currentContinue    jumpTarget
	currentFallthrough jumpTarget
}

func (s *branchTargets) branchTarget(tok token.Token) jumpTarget {
	switch tok {
	case token.BREAK:
		return s.currentBreak

	case token.CONTINUE:
		return s.currentContinue

	case token.FALLTHROUGH:
		return s.currentFallthrough

	default:
		panic(fmt.Sprintf("unexpected branch token: %s", tok))
	}
}

// pushBreak sets the current "break" target, returning the old.
func (s *branchTargets) pushBreak(t jumpTarget) (old jumpTarget) {
	old, s.currentBreak = s.currentBreak, t
	return old
}

// popBreak restores the previous "break" target.
func (s *branchTargets) popBreak(old jumpTarget) {
	s.currentBreak = old
}

// pushContinue sets the current "continue" target, returning the old.
func (s *branchTargets) pushContinue(t jumpTarget) (old jumpTarget) {
	old, s.currentContinue = s.currentContinue, t
	return old
}

// popContinue restores the previous "continue" target.
func (s *branchTargets) popContinue(old jumpTarget) {
	s.currentContinue = old
}

// pushFallthrough sets the current "fallthrough" target, returning the old.
func (s *branchTargets) pushFallthrough(t jumpTarget) (old jumpTarget) {
	old, s.currentFallthrough = s.currentFallthrough, t
	return old
}

// popFallthrough restores the previous "fallthrough" target.
func (s *branchTargets) popFallthrough(old jumpTarget) {
	s.currentFallthrough = old
}
