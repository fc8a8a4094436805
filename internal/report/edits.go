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
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/synth"
	"fillmore-labs.com/calltrace/internal/target"
)

var gofmtcfg = &printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}

// ElementEdits returns the edits instrumenting a single element.
//
// The original statements are left untouched. The generated statements are inserted after the opening brace, and
// unnamed or blank results are named so the deferred exit line can report them.
func ElementEdits(fset *token.FileSet, cf astutil.CurrentFile, e target.Element, imports synth.Imports) ([]analysis.TextEdit, error) {
	fn := e.Func

	results, rename := synth.ResultNames(fn.Type.Results)

	stmts := synth.Synthesize(e.Options, imports, synth.Request{Name: e.Name(), Args: e.Args, Results: results})

	prologue, err := synth.Render(stmts)
	if err != nil {
		return nil, err
	}

	var edits []analysis.TextEdit

	if rename {
		edit, err := resultEdit(fset, fn.Type.Results, results)
		if err != nil {
			return nil, err
		}

		edits = append(edits, edit)
	}

	return append(edits, bodyEdit(cf, fn.Body, prologue)), nil
}

// bodyEdit inserts the prologue at the start of the body.
func bodyEdit(cf astutil.CurrentFile, body *ast.BlockStmt, prologue []byte) analysis.TextEdit {
	lbrace := cf.Line(body.Lbrace)

	if first := firstLine(cf, body); first > lbrace {
		// Keep comments trailing the opening brace on their line.
		pos := cf.LineStart(lbrace + 1)

		text := prologue
		if len(body.List) > 0 {
			text = append(text, '\n')
		}

		return analysis.TextEdit{Pos: pos, End: pos, NewText: text}
	}

	pos := body.Lbrace + 1

	text := make([]byte, 0, len(prologue)+1)
	text = append(text, '\n')
	text = append(text, prologue...)

	return analysis.TextEdit{Pos: pos, End: pos, NewText: text}
}

// firstLine returns the line of the first statement, or of the closing brace for empty bodies.
func firstLine(cf astutil.CurrentFile, body *ast.BlockStmt) int {
	if len(body.List) > 0 {
		return cf.Line(body.List[0].Pos())
	}

	return cf.Line(body.Rbrace)
}

// resultEdit replaces the result list by a parenthesized list with all results named.
func resultEdit(fset *token.FileSet, results *ast.FieldList, names []string) (analysis.TextEdit, error) {
	var buf bytes.Buffer

	buf.WriteByte('(')

	i := 0
	for j, field := range results.List {
		if j > 0 {
			buf.WriteString(", ")
		}

		n := max(len(field.Names), 1)
		buf.WriteString(strings.Join(names[i:i+n], ", "))
		buf.WriteByte(' ')

		if err := gofmtcfg.Fprint(&buf, fset, field.Type); err != nil {
			return analysis.TextEdit{}, err
		}

		i += n
	}

	buf.WriteByte(')')

	return analysis.TextEdit{Pos: results.Pos(), End: results.End(), NewText: buf.Bytes()}, nil
}
