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

package params

type T struct{ v int }

func f(a, b int) int { // want `Parameter 'a' is read exactly once \(uc:once\)` `Parameter 'b' is never read \(uc:bottom\)`
	return a
}

func (t T) get() int { // want `Parameter 't' is read exactly once`
	return t.v
}

func (T) unnamed(_ int) {}

func locals() {
	x := 1 // want `Variable 'x' is read exactly once`
	y := 2
	println(x, y, y)
}
