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

func selectForever() {
	to := 0 // want "to bottom"
	select {}
	_ = to // want "unreachable read of to"
}

func selectBreak(ch chan int) { // want "ch once"
	to := 0 // want "to at-most-once"
	select {
	case x := <-ch: // want "x once"
		if x > 0 {
			break
		}
		_ = to
	}
}

func selectAssign(ch chan int) { // want "ch once-or-more"
	var v int // want "v once"
	select {
	case v = <-ch:
	case ch <- 1:
	}
	_ = v
}

func selectDefault(ch chan int) { // want "ch once"
	to := 0 // want "to at-most-once"
	select {
	case <-ch:
		_ = to
	default:
	}
}
