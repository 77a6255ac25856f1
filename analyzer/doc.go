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

// Package analyzer implements the usecount static analysis pass.
//
// # Overview
//
// usecount builds a flow graph of every function and reports, for each local
// variable, how often it is read on the paths through the function:
//
//	never read                      (uc:bottom)
//	read exactly once               (uc:once)
//	read at most once               (uc:at-most-once)
//	read at least once              (uc:once-or-more)
//	read an unknown number of times (uc:unknown)
//
// Reads inside loops and function literals count as an unknown number of times.
//
// # Example
//
//	func process(data []byte) error {
//	    n := len(data)  // Variable 'n' is read exactly once (uc:once)
//	    if n == 0 {
//	        return errEmpty
//	    }
//	    return nil
//	}
//
// By default only variables read exactly once are reported. Use -report to
// select other multiplicities, -params to include receivers and parameters and
// -funcs to restrict the analysis to matching functions.
//
// A //nolint:usecount comment on the line of a declaration, or as the last line
// of a function or file doc comment, suppresses the diagnostics.
package analyzer
