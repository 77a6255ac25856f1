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

package analyzer_test

import (
	"regexp"
	"strings"
	"sync"
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/usecount/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./a",
		},
		{
			name:    "Params",
			dir:     "./params",
			options: Options{WithParams(true), WithClasses(ClassOnce, ClassNever)},
		},
		{
			name:    "Funcs",
			dir:     "./funcs",
			options: WithFuncs(regexp.MustCompile(`^T\.`)),
		},
		{
			name:    "MaxNodes",
			dir:     "./maxnodes",
			options: WithMaxNodes(3),
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: WithGenerated(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			analysistest.Run(t, testdata, a, tt.dir)
		})
	}
}

type lockedBuilder struct {
	mu sync.Mutex
	strings.Builder
}

func (b *lockedBuilder) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.Builder.Write(p)
}

func TestDump(t *testing.T) {
	t.Parallel()

	var out lockedBuilder

	a := New(WithClasses(), WithDump(&out))
	analysistest.Run(t, analysistest.TestData(), a, "./dump")

	got := out.String()
	for _, want := range []string{
		"dump.go:19:1: f\n",
		"declare x",
		"summary\n",
		"x is read exactly once",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump %q does not contain %q", got, want)
		}
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		nil,
		Options{WithParams(false), WithMaxNodes(10)},
		WithClasses(ClassOnce, ClassUnknown),
		WithFuncs(regexp.MustCompile("^Test")),
		WithDump(nil),
	}

	const want = "[generated=true nil=<nil> params=false maxNodes=10 classes=once,unknown funcs=^Test dump=false]"
	if got := opts.LogValue().String(); got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
