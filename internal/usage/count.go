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

// Package usage defines the read multiplicity lattice.
//
// A [Count] classifies how often a variable is read along the paths reaching a
// program point. Values are ordered by information content, from [Bottom] (no
// read observed) to [Unknown] (any number of reads):
//
//	          Unknown
//	         /       \
//	AtMostOnce      OnceOrMore
//	   |      \    /
//	 Zero      Once
//	    \      /
//	     Bottom
package usage

import (
	"errors"
	"fmt"
)

// Count is a read multiplicity.
type Count uint8

//go:generate go tool stringer -type Count -linecomment
const (
	// Bottom indicates that no read has been observed.
	Bottom Count = iota // bottom

	// Zero indicates the variable is known to be never read.
	// The walker never produces it; it completes the lattice and is accepted by [ParseCount].
	Zero // zero

	// Once indicates exactly one read.
	Once // once

	// AtMostOnce indicates zero or one read, depending on the path taken.
	AtMostOnce // at-most-once

	// OnceOrMore indicates at least one read.
	OnceOrMore // once-or-more

	// Unknown indicates an unbounded number of reads.
	Unknown // unknown
)

// numCounts is the number of lattice values.
const numCounts = int(Unknown) + 1

// Increment returns the value after one more read on a path executed at most once.
func (c Count) Increment() Count {
	switch c {
	case Bottom, Zero:
		return Once

	case Once, AtMostOnce:
		return OnceOrMore

	case OnceOrMore:
		return Unknown

	default:
		return c
	}
}

// mergeTable is the join of two counts arriving from diverging branches.
// It is symmetric; [Bottom] is treated as "no read on this branch".
var mergeTable = [numCounts][numCounts]Count{
	Bottom:     {Bottom, Zero, AtMostOnce, AtMostOnce, Unknown, Unknown},
	Zero:       {Zero, Zero, AtMostOnce, AtMostOnce, Unknown, Unknown},
	Once:       {AtMostOnce, AtMostOnce, Once, AtMostOnce, OnceOrMore, Unknown},
	AtMostOnce: {AtMostOnce, AtMostOnce, AtMostOnce, AtMostOnce, Unknown, Unknown},
	OnceOrMore: {Unknown, Unknown, OnceOrMore, Unknown, OnceOrMore, Unknown},
	Unknown:    {Unknown, Unknown, Unknown, Unknown, Unknown, Unknown},
}

// Merge joins two counts at a control flow join point.
func Merge(a, b Count) Count {
	if !a.Valid() || !b.Valid() {
		return Unknown
	}

	return mergeTable[a][b]
}

// Rank returns the height of the count in the lattice.
func (c Count) Rank() int {
	switch c {
	case Bottom:
		return 0

	case Zero, Once:
		return 1

	case AtMostOnce, OnceOrMore:
		return 2

	default:
		return 3
	}
}

// Valid checks whether c is a defined lattice value.
func (c Count) Valid() bool {
	return int(c) < numCounts
}

// Multiplicity describes the count in words.
func (c Count) Multiplicity() string {
	switch c {
	case Bottom, Zero:
		return "never read"

	case Once:
		return "read exactly once"

	case AtMostOnce:
		return "read at most once"

	case OnceOrMore:
		return "read at least once"

	default:
		return "read an unknown number of times"
	}
}

// ErrInvalidCount is returned when parsing an unknown count name.
var ErrInvalidCount = errors.New("invalid count")

// ParseCount returns the [Count] with the given name, as printed by [Count.String].
// The alias "never" selects [Bottom].
func ParseCount(s string) (Count, error) {
	if s == "never" {
		return Bottom, nil
	}

	for c := range Count(numCounts) {
		if c.String() == s {
			return c, nil
		}
	}

	return Bottom, fmt.Errorf("%w: %q", ErrInvalidCount, s)
}

// All returns all lattice values in declaration order.
func All() []Count {
	return []Count{Bottom, Zero, Once, AtMostOnce, OnceOrMore, Unknown}
}
