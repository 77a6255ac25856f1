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
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/usecount/internal/astutil"
	"fillmore-labs.com/usecount/internal/usage"
)

// Finding is a declared variable with a reported read multiplicity.
type Finding struct {
	Ident *ast.Ident
	Param bool
	Usage usage.Count
}

// Diagnostics emits one diagnostic per finding not suppressed by a nolint comment.
func Diagnostics(ctx context.Context, p *analysis.Pass, file astutil.File, findings []Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		if file.Suppressed(f.Ident.Pos()) {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:     f.Ident.Pos(),
			End:     f.Ident.End(),
			Message: Message(f.Ident.Name, f.Param, f.Usage),
		})
	}
}

// Message formats the diagnostic text for a variable.
func Message(name string, param bool, c usage.Count) string {
	kind := "Variable"
	if param {
		kind = "Parameter"
	}

	return fmt.Sprintf("%s '%s' is %s (uc:%s)", kind, name, c.Multiplicity(), c)
}

// Internal reports a failure of the analyzer itself, not a finding in the analyzed code.
func Internal(p *analysis.Pass, rng analysis.Range, subject string, err error) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: "internal",
		Message:  fmt.Sprintf("Internal Error: %s: %v", subject, err),
	})
}
