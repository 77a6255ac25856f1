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

package flowgraph

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when parsing an unknown kind or region name.
var ErrUnknownName = errors.New("unknown name")

// ParseKind returns the [Kind] printed as s.
func ParseKind(s string) (Kind, error) {
	return parse[Kind](s, Read)
}

// ParseRegion returns the [Region] printed as s. The empty string selects [NoRegion].
func ParseRegion(s string) (Region, error) {
	if s == "" {
		return NoRegion, nil
	}

	return parse[Region](s, Finally)
}

func parse[T interface {
	~uint8
	fmt.Stringer
}](s string, last T) (T, error) {
	for v := T(0); v <= last; v++ {
		if v.String() == s {
			return v, nil
		}
	}

	var zero T

	return zero, fmt.Errorf("%w: %q", ErrUnknownName, s)
}
