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

package pattern

import "go/ast"

// FromFunc returns the receiver and parameter patterns of a function declaration.
func FromFunc(fn *ast.FuncDecl) []Pattern {
	var patterns []Pattern

	if fn.Recv != nil {
		patterns = appendFields(patterns, fn.Recv, true)
	}

	return appendFields(patterns, fn.Type.Params, false)
}

// appendFields appends one pattern per declared parameter.
func appendFields(patterns []Pattern, fields *ast.FieldList, receiver bool) []Pattern {
	if fields == nil {
		return patterns
	}

	for _, field := range fields.List {
		if len(field.Names) == 0 {
			patterns = append(patterns, Wildcard{At: field.Type.Pos()})

			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				patterns = append(patterns, Wildcard{At: name.Pos()})

				continue
			}

			patterns = append(patterns, Ident{NamePos: name.Pos(), Name: name.Name, Receiver: receiver})
		}
	}

	return patterns
}
