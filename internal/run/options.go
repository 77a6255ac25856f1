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

package run

import (
	"io"
	"regexp"
	"sync"

	"fillmore-labs.com/usecount/internal/config"
)

// Options represent configuration options for the usecount analyzer.
type Options struct {
	// Classes selects the reported usage counts.
	Classes config.BitMask[config.Class]

	// Behavior holds behavioral options.
	Behavior config.BitMask[config.Behavior]

	// Funcs restricts the analysis to functions with matching names, when set.
	Funcs *regexp.Regexp

	// MaxNodes limits the graph nodes processed per function; zero or less is unlimited.
	MaxNodes int

	// Dump receives a text report of every analyzed function, when set.
	Dump io.Writer

	dumpMu sync.Mutex
}

// DefaultOptions returns a new [Options] instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Classes:  config.DefaultClasses(),
		Behavior: config.DefaultBehavior(),
	}
}
