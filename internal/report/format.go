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

package report

import (
	"errors"
	"fmt"
)

// Format selects the encoding of a report.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	// Text is the human-readable listing.
	Text Format = iota // text

	// JSON encodes the [Document] as indented JSON.
	JSON // json

	// YAML encodes the [Document] as YAML.
	YAML // yaml

	// MsgPack encodes the [Document] as MessagePack.
	MsgPack // msgpack
)

const numFormats = int(MsgPack) + 1

// ErrUnknownFormat is returned for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat returns the [Format] with the given name.
func ParseFormat(s string) (Format, error) {
	for f := range Format(numFormats) {
		if f.String() == s {
			return f, nil
		}
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Set implements [flag.Value].
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Type returns the flag type name.
func (f *Format) Type() string {
	return "format"
}
