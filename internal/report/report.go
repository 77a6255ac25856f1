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

// Package report renders the results of a usage walk.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/usecount/internal/walk"
)

// Write renders res to w in the given format.
//
// Partial results are rendered with their cause. Errors of the underlying writer
// are returned and leave res unchanged.
func Write(w io.Writer, res *walk.Result, format Format) error {
	return Encode(w, NewDocument(res), format)
}

// Encode writes a document to w in the given format.
func Encode(w io.Writer, doc Document, format Format) error {
	switch format {
	case Text:
		return writeText(w, doc)

	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}

		if err := enc.Close(); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}

	case MsgPack:
		if err := msgpack.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("marshaling MessagePack: %w", err)
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return nil
}
