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

package flow

func infinite() {
	to := 0 // want "to bottom"
	for {
	}
	_ = to // want "unreachable read of to"
}

func breakFirst() {
	to := 0 // want "to once"
	for {
		break
	}
	_ = to
}

func rangeMap(m map[string]int) { // want "m once"
	for k, v := range m { // want "k unknown" "v unknown"
		_, _ = k, v
	}
}

func rangeInt(n int) { // want "n once"
	for i := range n { // want "i unknown"
		_ = i
	}
}

func labeledContinue(n int) { // want "n unknown"
	x := 1 // want "x unknown"
outer:
	for range n {
		for range n {
			continue outer
		}

		_ = x
	}
}

func backwardGoto() {
	i := 0 // want "i unknown"
L:
	if i < 3 {
		i++
		goto L
	}
}
