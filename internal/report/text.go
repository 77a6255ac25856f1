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
	"fmt"
	"io"
	"strings"
)

// textWriter keeps the first write error.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}

	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// writeText renders a document as an indented listing:
//
//	#1 declare x
//	  1 at-most-once: x=bottom
//
// Levels are printed innermost first, followed by the declaration summary.
func writeText(w io.Writer, doc Document) error {
	t := &textWriter{w: w}

	for _, n := range doc.Nodes {
		t.printf("%s\n", n.Description)

		for _, l := range n.Levels {
			t.printf("  %d %s:%s\n", l.Depth, repetition(l.AtMostOnce), vars(l.Vars))
		}
	}

	if len(doc.Declarations) > 0 {
		t.printf("summary\n")

		for _, d := range doc.Declarations {
			var notes []string
			if d.TopLevel {
				notes = append(notes, "top level")
			}

			if !d.Final {
				notes = append(notes, "not final")
			}

			t.printf("  %s: %s is %s", d.Node, d.Name, d.Multiplicity)

			if len(notes) > 0 {
				t.printf(" (%s)", strings.Join(notes, ", "))
			}

			t.printf("\n")
		}
	}

	if !doc.Complete {
		t.printf("incomplete: %s\n", doc.Cause)
	}

	return t.err
}

func repetition(atMostOnce bool) string {
	if atMostOnce {
		return "at-most-once"
	}

	return "repeated"
}

func vars(vs []Var) string {
	if len(vs) == 0 {
		return " -"
	}

	var b strings.Builder
	for _, v := range vs {
		b.WriteByte(' ')       // ignore error
		b.WriteString(v.Name)  // ignore error
		b.WriteByte('=')       // ignore error
		b.WriteString(v.Usage) // ignore error
	}

	return b.String()
}
