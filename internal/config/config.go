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

package config

import (
	"errors"
	"fmt"
	"strings"

	"fillmore-labs.com/usecount/internal/usage"
)

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Behavior = 1 << iota

	// IncludeParams reports receivers and parameters besides local variables.
	IncludeParams
)

// DefaultBehavior returns the behavior used when no options are given.
func DefaultBehavior() BitMask[Behavior] {
	return BitMask[Behavior]{}
}

// Class selects reported usage counts, one bit per [usage.Count].
// [usage.Bottom] and [usage.Zero] share the "never" class.
type Class uint8

// Usage classes.
const (
	ClassNever      Class = 1 << usage.Bottom
	ClassOnce       Class = 1 << usage.Once
	ClassAtMostOnce Class = 1 << usage.AtMostOnce
	ClassOnceOrMore Class = 1 << usage.OnceOrMore
	ClassUnknown    Class = 1 << usage.Unknown
)

// ErrUnknownClass is returned when parsing an unknown usage class.
var ErrUnknownClass = errors.New("unknown usage class")

// ClassOf returns the class of c.
func ClassOf(c usage.Count) Class {
	if c == usage.Zero {
		c = usage.Bottom
	}

	return 1 << c
}

// DefaultClasses returns the classes reported when no options are given.
func DefaultClasses() BitMask[Class] {
	return NewBitMask(ClassOnce)
}

// ParseClasses parses a comma separated list of usage classes, like "once,at-most-once".
// "all" selects every class and the empty string none.
func ParseClasses(s string) (BitMask[Class], error) {
	var classes BitMask[Class]

	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		switch name {
		case "":
			continue

		case "all":
			for _, c := range usage.All() {
				classes.Enable(ClassOf(c))
			}

			continue
		}

		c, err := usage.ParseCount(name)
		if err != nil {
			return BitMask[Class]{}, fmt.Errorf("%w: %q", ErrUnknownClass, name)
		}

		classes.Enable(ClassOf(c))
	}

	return classes, nil
}

// FormatClasses renders classes in the syntax accepted by [ParseClasses].
func FormatClasses(classes BitMask[Class]) string {
	var names []string

	for _, c := range usage.All() {
		if c == usage.Zero || !classes.Enabled(ClassOf(c)) {
			continue
		}

		if c == usage.Bottom {
			names = append(names, "never")
		} else {
			names = append(names, c.String())
		}
	}

	return strings.Join(names, ",")
}
