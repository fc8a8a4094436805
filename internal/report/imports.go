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

package report

import (
	"go/ast"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/synth"
	"fillmore-labs.com/calltrace/internal/target"
)

// fileImports are the import names of a file and the paths still to add.
type fileImports struct {
	names   synth.Imports
	missing []synth.Import
	added   bool
}

func resolveFileImports(elements []target.Element) map[*ast.File]fileImports {
	pause := make(map[*ast.File]bool)
	for _, e := range elements {
		pause[e.File] = pause[e.File] || e.Options.Pause
	}

	imports := make(map[*ast.File]fileImports, len(pause))
	for f, p := range pause {
		names, missing := synth.ResolveImports(f, p)
		imports[f] = fileImports{names: names, missing: missing}
	}

	return imports
}

// ImportEdits returns the edits adding imports to f.
//
// Paths are added to the first import declaration, which is parenthesized when necessary. Files without imports get
// a new declaration after the package clause.
func ImportEdits(cf astutil.CurrentFile, imports []synth.Import) []analysis.TextEdit {
	if len(imports) == 0 {
		return nil
	}

	var specs strings.Builder
	for _, i := range imports {
		specs.WriteString("\n\t")
		specs.WriteString(i.String())
	}

	f := cf.File()
	decl := firstImportDecl(f)

	switch {
	case decl == nil:
		if line := cf.Line(f.Name.End()); line < cf.LineCount() {
			// Keep comments trailing the package clause on their line.
			pos := cf.LineStart(line + 1)

			return []analysis.TextEdit{{Pos: pos, End: pos, NewText: []byte("\nimport (" + specs.String() + "\n)\n")}}
		}

		text := "\n\nimport (" + specs.String() + "\n)"

		return []analysis.TextEdit{{Pos: f.Name.End(), End: f.Name.End(), NewText: []byte(text)}}

	case decl.Lparen.IsValid():
		pos := decl.Lparen + 1

		return []analysis.TextEdit{{Pos: pos, End: pos, NewText: []byte(specs.String())}}

	default:
		// import "os" -> import ( ... "os" )
		start, end := decl.Specs[0].Pos(), decl.End()

		return []analysis.TextEdit{
			{Pos: start, End: start, NewText: []byte("(" + specs.String() + "\n\t")},
			{Pos: end, End: end, NewText: []byte("\n)")},
		}
	}
}

func firstImportDecl(f *ast.File) *ast.GenDecl {
	for _, decl := range f.Decls {
		if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
			return gen
		}
	}

	return nil
}
