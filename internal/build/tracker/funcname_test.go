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

package tracker_test

import (
	"go/token"
	"go/types"
	"testing"

	"fillmore-labs.com/usecount/internal/testsource"

	. "fillmore-labs.com/usecount/internal/build/tracker"
)

const funcsrc = `func f() {}

type T struct{}

func (T) Value() {}

func (*T) Pointer() {}

type Box[E any] struct{}

func (*Box[E]) Get() {}

type I interface{ M() }

var anon interface{ N() }
`

func TestFuncNameOf(t *testing.T) {
	t.Parallel()

	fset, f, _ := testsource.ParseFunc(t, funcsrc)
	pkg, _ := testsource.Check(t, fset, f)

	method := func(typ, name string) *types.Func {
		obj, _, _ := types.LookupFieldOrMethod(pkg.Scope().Lookup(typ).Type(), true, pkg, name)

		return obj.(*types.Func)
	}

	anon := pkg.Scope().Lookup("anon").Type().Underlying().(*types.Interface)
	errorIface := types.Universe.Lookup("error").Type().Underlying().(*types.Interface)

	tests := [...]struct {
		name string
		fun  *types.Func
		want string
	}{
		{"function", pkg.Scope().Lookup("f").(*types.Func), "test.f"},
		{"value method", method("T", "Value"), "(test.T).Value"},
		{"pointer method", method("T", "Pointer"), "(test.T).Pointer"},
		{"generic method", method("Box", "Get"), "(test.Box).Get"},
		{"named interface", method("I", "M"), "(test.I).M"},
		{"anonymous interface", anon.Method(0), "(interface).N"},
		{"universe", errorIface.Method(0), "(error).Error"},
		{"no package", types.NewFunc(token.NoPos, nil, "g", types.NewSignatureType(nil, nil, nil, nil, nil, false)), "g"},
		{"invalid receiver", func() *types.Func {
			recv := types.NewParam(token.NoPos, pkg, "", types.NewPointer(types.NewStruct(nil, nil)))
			sig := types.NewSignatureType(recv, nil, nil, nil, nil, false)

			return types.NewFunc(token.NoPos, pkg, "h", sig)
		}(), "(<invalid>).h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FuncNameOf(tt.fun).String(); got != tt.want {
				t.Errorf("FuncNameOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
