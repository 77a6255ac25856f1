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

// Package astutil provides per-file source information for the usecount pass.
package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

// linterName is the name used in nolint directives.
const linterName = "usecount"

// File holds the generated marker and the suppressed lines of a source file.
type File struct {
	handle    *token.File
	generated bool
	nolint    map[int]struct{}
}

// NewFile collects the information of file. The result is invalid when file has no position information.
func NewFile(fset *token.FileSet, file *ast.File) File {
	if file == nil {
		return File{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return File{}
	}

	f := File{handle: handle, generated: ast.IsGenerated(file)}

	for _, group := range file.Comments {
		for _, c := range group.List {
			if !IsNoLint(c.Text) {
				continue
			}

			if f.nolint == nil {
				f.nolint = make(map[int]struct{})
			}

			f.nolint[handle.Line(c.Pos())] = struct{}{}
		}
	}

	return f
}

// Valid reports whether the file has position information.
func (f File) Valid() bool {
	return f.handle != nil
}

// Generated reports whether the file carries a generated code marker.
func (f File) Generated() bool {
	return f.generated
}

// Suppressed reports whether the line of pos carries a //nolint:usecount comment.
func (f File) Suppressed(pos token.Pos) bool {
	if f.handle == nil || len(f.nolint) == 0 {
		return false
	}

	_, ok := f.nolint[f.handle.Line(pos)]

	return ok
}

// SuppressedDoc reports whether the last line of a doc comment is a nolint directive.
func SuppressedDoc(doc *ast.CommentGroup) bool {
	if doc == nil || len(doc.List) == 0 {
		return false
	}

	return IsNoLint(doc.List[len(doc.List)-1].Text)
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([\w,-]+)`)

// IsNoLint reports whether comment is a nolint directive naming usecount or all linters.
func IsNoLint(comment string) bool {
	m := nolintPattern.FindStringSubmatch(comment)
	if m == nil {
		return false
	}

	for linter := range strings.SplitSeq(m[1], ",") {
		switch strings.ToLower(strings.TrimSpace(linter)) {
		case linterName, "all":
			return true
		}
	}

	return false
}
