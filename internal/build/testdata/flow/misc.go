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

func blockShadow() {
	x := 1 // want "x once"
	{
		x := 2 // want "x once"
		_ = x
	}
	_ = x
}

func closure() func() int {
	x := 1 // want "x unknown"
	return func() int { return x }
}

func forwardGoto(c bool) { // want "c once"
	x := 1 // want "x once"
	if c {
		goto end
	}

	_ = x

	return

end:
	_ = x
}

func shortCircuit(a, b bool) bool { // want "a once" "b at-most-once"
	return a && b
}

func deferred(x int) { // want "x once"
	defer println(x)
}

func recovered() (err error) { // want "err bottom"
	defer func() {
		if r := recover(); r != nil { // want "r unknown"
			err = nil
		}
	}()

	return nil
}
