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

package tracker

import "go/types"

// FuncName identifies a function or method independent of its declaration.
type FuncName struct {
	Path     string // import path of the declaring package
	Receiver string // receiver type name for methods
	Name     string
}

// String renders the name as "path.Name" or "(path.Receiver).Name".
func (f FuncName) String() string {
	name := f.Name
	if f.Receiver == "" {
		if f.Path != "" {
			name = f.Path + "." + name
		}

		return name
	}

	recv := f.Receiver
	if f.Path != "" {
		recv = f.Path + "." + recv
	}

	return "(" + recv + ")." + name
}

// FuncNameOf returns the [FuncName] of a function.
// Pointer receivers and aliases are resolved to the named receiver type.
func FuncNameOf(fun *types.Func) FuncName {
	sig, ok := fun.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return FuncName{Path: pkgPath(fun.Pkg()), Name: fun.Name()}
	}

	recv := types.Unalias(sig.Recv().Type())
	if ptr, ok := recv.(*types.Pointer); ok {
		recv = types.Unalias(ptr.Elem())
	}

	switch recv := recv.(type) {
	case *types.Named:
		obj := recv.Obj()

		return FuncName{Path: pkgPath(obj.Pkg()), Receiver: obj.Name(), Name: fun.Name()}

	case *types.Interface:
		return FuncName{Receiver: "interface", Name: fun.Name()}

	default:
		return FuncName{Receiver: "<invalid>", Name: fun.Name()}
	}
}

func pkgPath(pkg *types.Package) string {
	if pkg == nil {
		return ""
	}

	return pkg.Path()
}
