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

package a

func linear() {
	x := 1 // want `Variable 'x' is read exactly once \(uc:once\)`
	println(x)
}

func twice() {
	x := 1
	println(x, x)
}

func loop(n int) {
	x := 1
	for range n {
		println(x)
	}
}

func branch(c bool) {
	x := 1
	if c {
		println(x)
	}
}

func both(c bool) {
	x := 1 // want `Variable 'x' is read exactly once`
	if c {
		println(x)
	} else {
		println(-x)
	}
}

func early(c bool) int {
	x := 1 // want `Variable 'x' is read exactly once`
	if c {
		return x
	}

	return x + 1
}

func closure() func() int {
	x := 1
	return func() int { return x }
}

func named() (r int) { // want `Variable 'r' is read exactly once`
	r = 1
	return
}

func typeSwitch(v any) {
	switch w := v.(type) {
	case int:
		println(w)
	}
}

func rangeValue(s []int) {
	for _, v := range s {
		println(v)
	}
}

func shortCircuit(c bool) bool {
	x := true
	return c && x
}

func suppressed() {
	x := 1 //nolint:usecount
	println(x)
}

//nolint:usecount
func suppressedFunc() {
	x := 1
	println(x)
}

func panics() {
	x := "failed"
	panic(x)
}

func labeled() {
	i := 0
L:
	if i < 3 {
		i++
		goto L
	}
}
