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

package synth

import (
	"go/ast"
	"path"
	"strconv"
)

// Import paths of the packages referenced by generated code.
const (
	FmtPath     = "fmt"
	StringsPath = "strings"
	AtomicPath  = "sync/atomic"
	OSPath      = "os"
)

// aliasPrefix prefixes the local name of an added import whose package name is already bound in the file.
const aliasPrefix = "__trace"

// Import is an import declaration to add. Name is empty for imports under the package name.
type Import struct {
	Name string
	Path string
}

// String returns the import spec as written in an import declaration.
func (i Import) String() string {
	if i.Name == "" {
		return strconv.Quote(i.Path)
	}

	return i.Name + " " + strconv.Quote(i.Path)
}

// ResolveImports returns the local names generated code in f uses, and the imports f lacks.
//
// Existing imports are reused under their local name. Blank and dot imports can't be referenced, so their paths
// are reported as missing. A missing package whose name is already bound at file scope, by another import or a
// declaration of f, is imported under an alias. OSPath is only considered when pause is set.
func ResolveImports(f *ast.File, pause bool) (Imports, []Import) {
	names := make(map[string]string, 4)
	taken := declaredNames(f)

	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		name := path.Base(p)
		if spec.Name != nil {
			name = spec.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		taken[name] = struct{}{}

		if _, ok := names[p]; !ok {
			names[p] = name
		}
	}

	imports := DefaultImports()

	var missing []Import

	resolve := func(p string, name *string, alias string) {
		if n, ok := names[p]; ok {
			*name = n

			return
		}

		if _, ok := taken[*name]; ok {
			*name = aliasPrefix + alias
			missing = append(missing, Import{Name: *name, Path: p})

			return
		}

		taken[*name] = struct{}{}
		missing = append(missing, Import{Path: p})
	}

	resolve(FmtPath, &imports.Fmt, "Fmt")
	resolve(StringsPath, &imports.Strings, "Strings")
	resolve(AtomicPath, &imports.Atomic, "Atomic")

	if pause {
		resolve(OSPath, &imports.OS, "OS")
	} else if n, ok := names[OSPath]; ok {
		imports.OS = n
	}

	return imports, missing
}

// declaredNames returns the names of the package-level declarations of f.
func declaredNames(f *ast.File) map[string]struct{} {
	names := make(map[string]struct{})

	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Recv == nil {
				names[decl.Name.Name] = struct{}{}
			}

		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.ValueSpec:
					for _, id := range spec.Names {
						names[id.Name] = struct{}{}
					}

				case *ast.TypeSpec:
					names[spec.Name.Name] = struct{}{}
				}
			}
		}
	}

	return names
}

// predeclared are the universe scope identifiers generated code references.
var predeclared = []string{"int", "uint32"}

// predeclaredPause are the universe scope identifiers referenced by the pause loop.
var predeclaredPause = []string{"make", "byte", "nil"}

// Reserved returns the identifiers generated code references at function scope.
func (i Imports) Reserved(pause bool) []string {
	reserved := []string{i.Fmt, i.Strings, i.Atomic, DepthVar}
	reserved = append(reserved, predeclared...)

	if pause {
		reserved = append(reserved, i.OS)
		reserved = append(reserved, predeclaredPause...)
	}

	return reserved
}
