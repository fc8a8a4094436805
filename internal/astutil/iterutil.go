// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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

package astutil

import (
	"go/ast"
	"iter"
)

// AllFieldNames yields all named identifiers of the field lists, including blank identifiers.
func AllFieldNames(lists ...*ast.FieldList) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, list := range lists {
			if list == nil {
				continue
			}

			for _, field := range list.List {
				for _, id := range field.Names {
					if !yield(id) {
						return
					}
				}
			}
		}
	}
}

// AllFuncDecls yields all function and method declarations with a body.
func AllFuncDecls(files ...*ast.File) iter.Seq2[*ast.File, *ast.FuncDecl] {
	return func(yield func(*ast.File, *ast.FuncDecl) bool) {
		for _, f := range files {
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Body == nil {
					continue // declarations without body can't be instrumented
				}

				if !yield(f, fn) {
					return
				}
			}
		}
	}
}
