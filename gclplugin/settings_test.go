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

package gclplugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	usecount "fillmore-labs.com/usecount/analyzer"
	. "fillmore-labs.com/usecount/gclplugin"
)

const allSettings = `{
	"params": true,
	"report": ["once", "never"],
	"funcs": "^Test",
	"max-nodes": 1000
}`

func decodeSettings(t *testing.T, settings string) Settings {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(settings))
	dec.DisallowUnknownFields()

	var s Settings
	if err := dec.Decode(&s); err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	return s
}

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty report", `{"report": []}`, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := decodeSettings(t, tc.settings)

			got, err := s.Options()
			if err != nil {
				t.Fatalf("Can't convert settings: %v", err)
			}

			if len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), usecount.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestSettingsInvalid(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
	}{
		{"report", `{"report": ["twice"]}`},
		{"funcs", `{"funcs": "("}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := decodeSettings(t, tc.settings)

			if _, err := s.Options(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestPlugin(t *testing.T) {
	t.Parallel()

	p, err := New(map[string]any{"params": true, "report": []any{"all"}})
	if err != nil {
		t.Fatalf("Can't create plugin: %v", err)
	}

	analyzers, err := p.BuildAnalyzers()
	if err != nil {
		t.Fatalf("Can't build analyzers: %v", err)
	}

	if len(analyzers) != 1 || analyzers[0].Name != "usecount" {
		t.Fatalf("Got analyzers %v, want usecount", analyzers)
	}

	if got := analyzers[0].Flags.Lookup("report").Value.String(); got != "never,once,at-most-once,once-or-more,unknown" {
		t.Errorf("Got report classes %q", got)
	}

	if got := analyzers[0].Flags.Lookup("generated").Value.String(); got != "true" {
		t.Errorf("Got generated %q, want true", got)
	}
}
