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

import "os"

func fatalSwitch(n int) { // want "n once"
	from := 0 // want "from bottom"
	to := 0   // want "to bottom"
	switch n {
	case 0:
		panic("zero")
	default:
		os.Exit(1)
	}
	_, _ = from, to // want "unreachable read of from" "unreachable read of to"
}

func fallthroughRead() {
	to := 0 // want "to at-most-once"
	switch {
	case true:
		from := 0 // want "from once"
		_ = from
		fallthrough
	case false:
		_ = to
	}
}

func fallthroughDefault() {
	to := 0 // want "to once"
	switch {
	case true:
		fallthrough
	default:
		_ = to
	}
}

func typeSwitch(i any) { // want "i once"
	switch to := i.(type) { // want "to once" "to bottom"
	case int:
		_ = to
	case string:
	}
}
