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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/depth"
	"fillmore-labs.com/calltrace/internal/diag"
	"fillmore-labs.com/calltrace/internal/report"
	"fillmore-labs.com/calltrace/internal/target"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the calltrace analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("calltrace: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "CallTrace")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	var sink diag.Sink

	var files []*ast.File

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(&sink, file, "File %s without valid info", file.Name.Name)

			continue
		}

		files = append(files, file)
	}

	r.Instrument(ctx, p.Fset, files, &sink)

	report.Report(p, &sink)

	return nil, nil
}

// skip reports whether a file should be left alone.
func (r *Options) skip(fset *token.FileSet, currentFile astutil.CurrentFile) bool {
	// Skip generated files
	if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
		return true
	}

	// Skip test files
	if r.Behavior.Enabled(config.SkipTests) && strings.HasSuffix(fset.File(currentFile.File().FileStart).Name(), "_test.go") {
		return true
	}

	// Skip files with nolint comment
	return astutil.NoLint(currentFile.File().Doc)
}

// Instrument runs the instrumentation pipeline over the files of one package, adding all diagnostics to sink.
func (r *Options) Instrument(ctx context.Context, fset *token.FileSet, files []*ast.File, sink *diag.Sink) {
	selected := make([]*ast.File, 0, len(files))

	for _, file := range files {
		currentFile := astutil.NewCurrentFile(fset, file)
		if !currentFile.Valid() || r.skip(fset, currentFile) {
			continue
		}

		selected = append(selected, file)
	}

	// Stage 1: Find and classify all directives
	annotations := collect(ctx, selected, r, sink)

	if len(annotations) == 0 {
		return
	}

	// Stage 2: Select the functions and methods to instrument
	dispatcher := target.NewDispatcher(annotations)
	elements := expand(ctx, dispatcher, selected, sink)
	modules := dispatcher.Modules(selected)

	// A file directive always needs the depth counter, even when it selects nothing
	if len(elements) == 0 && len(modules) == 0 {
		return
	}

	// Stage 3: Make sure the package declares the depth counter, looking at skipped files too
	status := ensureDepth(ctx, files, modules, elements, sink)

	// Stage 4: Generate diagnostics with suggested fixes
	report.ProcessDiagnostics(ctx, fset, elements, status != depth.Malformed, sink)
}

func collect(ctx context.Context, files []*ast.File, r *Options, sink *diag.Sink) []target.Annotation {
	defer trace.StartRegion(ctx, "Collect").End()

	return target.Collect(files, r.Defaults, sink)
}

func expand(ctx context.Context, dispatcher *target.Dispatcher, files []*ast.File, sink *diag.Sink) []target.Element {
	defer trace.StartRegion(ctx, "Expand").End()

	elements := make([]target.Element, 0, len(files))

	for _, e := range dispatcher.Expand(files, sink) {
		if astutil.NoLint(e.Func.Doc) {
			continue
		}

		elements = append(elements, e)
	}

	return elements
}

// ensureDepth checks the counter, adding it to the first annotated file or the first file with instrumentation.
func ensureDepth(ctx context.Context, files, modules []*ast.File, elements []target.Element, sink *diag.Sink) depth.Status {
	defer trace.StartRegion(ctx, "Depth").End()

	var into *ast.File
	if len(modules) > 0 {
		into = modules[0]
	} else {
		into = elements[0].File
	}

	return depth.Ensure(files, into, sink)
}
