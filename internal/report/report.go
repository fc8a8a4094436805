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

// Package report turns the selected elements into instrumentation diagnostics with suggested fixes.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/diag"
	"fillmore-labs.com/calltrace/internal/target"
)

// ProcessDiagnostics adds one instrumentation diagnostic per element to sink.
//
// When withFixes is set, each diagnostic carries the edits instrumenting its element. Imports missing from a file
// are added by the fix of the first element in that file.
func ProcessDiagnostics(ctx context.Context, fset *token.FileSet, elements []target.Element, withFixes bool, sink *diag.Sink) {
	defer trace.StartRegion(ctx, "Report").End()

	var imports map[*ast.File]fileImports
	if withFixes {
		imports = resolveFileImports(elements)
	}

	for _, e := range elements {
		d := diag.Diagnostic{
			Pos:      e.Func.Name.Pos(),
			End:      e.Func.Name.End(),
			Severity: diag.Info,
			Code:     code(e.Kind),
			Message:  message(e),
		}

		if withFixes {
			cf := astutil.NewCurrentFile(fset, e.File)
			if !cf.Valid() {
				astutil.InternalError(sink, e.Func.Name, "File %s without valid info", e.File.Name.Name)

				continue
			}

			fi := imports[e.File]

			edits, err := ElementEdits(fset, cf, e, fi.names)
			if err != nil {
				astutil.InternalError(sink, e.Func.Name, "Can't instrument %s: %v", e.QualifiedName(), err)

				continue
			}

			if !fi.added {
				edits = append(edits, ImportEdits(cf, fi.missing)...)
				fi.added = true
				imports[e.File] = fi
			}

			d.Fix = &diag.Fix{Message: d.Message, Edits: edits}
		}

		sink.Add(d)
	}
}

func code(kind target.Kind) diag.Code {
	if kind == target.Method {
		return diag.CodeMethod
	}

	return diag.CodeFunction
}

func message(e target.Element) string {
	return fmt.Sprintf("Instrument %s '%s' with call tracing", e.Kind, e.QualifiedName())
}

// Report emits all diagnostics of sink to the analysis pass.
func Report(p *analysis.Pass, sink *diag.Sink) {
	for _, d := range sink.Items() {
		p.Report(d.Analysis())
	}
}
