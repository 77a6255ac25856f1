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

package gclplugin

import (
	"fmt"
	"regexp"
	"strings"

	usecount "fillmore-labs.com/usecount/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Params enables diagnostics for receivers and parameters.
	Params *bool `json:"params,omitzero"`
	// Report lists the reported usage classes.
	Report []string `json:"report,omitzero"`
	// Funcs restricts the analysis to functions matching a regular expression.
	Funcs *string `json:"funcs,omitzero"`
	// MaxNodes limits the flow graph nodes processed per function.
	MaxNodes *int `json:"max-nodes,omitzero"`
}

// Options converts [Settings] into a list of [usecount.Option] for the usecount analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]usecount.Option, error) {
	var opts []usecount.Option

	opts = appendOption(opts, s.Params, usecount.WithParams)
	opts = appendOption(opts, s.MaxNodes, usecount.WithMaxNodes)

	if s.Report != nil {
		classes, err := usecount.ParseClasses(strings.Join(s.Report, ","))
		if err != nil {
			return nil, fmt.Errorf("setting report: %w", err)
		}

		opts = append(opts, usecount.WithClasses(classes))
	}

	if s.Funcs != nil {
		funcs, err := regexp.Compile(*s.Funcs)
		if err != nil {
			return nil, fmt.Errorf("setting funcs: %w", err)
		}

		opts = append(opts, usecount.WithFuncs(funcs))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [usecount.Option] list.
func appendOption[T any](opts []usecount.Option, value *T, constructor func(T) usecount.Option) []usecount.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
