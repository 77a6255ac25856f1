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

package analyzer

import "fillmore-labs.com/usecount/internal/config"

// Class selects a reported usage multiplicity, see [WithClasses].
type Class = config.Class

// Usage classes.
const (
	ClassNever      = config.ClassNever      // never read
	ClassOnce       = config.ClassOnce       // read exactly once
	ClassAtMostOnce = config.ClassAtMostOnce // read at most once
	ClassOnceOrMore = config.ClassOnceOrMore // read at least once
	ClassUnknown    = config.ClassUnknown    // read an unknown number of times
)

// ParseClasses parses a comma separated list of class names: never, once,
// at-most-once, once-or-more, unknown or all. The result combines all named classes.
func ParseClasses(s string) (Class, error) {
	classes, err := config.ParseClasses(s)

	return classes.Value(), err
}
