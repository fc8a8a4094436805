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

// Package load instruments Go packages outside of an analysis driver.
//
// Packages are loaded with [golang.org/x/tools/go/packages], instrumented concurrently and the suggested fixes are
// applied to the source files.
package load

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"runtime/trace"
	"slices"

	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/calltrace/internal/diag"
	"fillmore-labs.com/calltrace/internal/edit"
	"fillmore-labs.com/calltrace/internal/run"
)

// ErrLoad is returned when packages could not be loaded.
var ErrLoad = errors.New("can't load packages")

// Mode is the [packages.LoadMode] needed for instrumentation. Type information is not required.
const Mode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax

// Finding is a diagnostic resolved to a source position.
type Finding struct {
	Position token.Position
	Severity diag.Severity
	Message  string
}

// String formats the finding like a compiler message.
func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Position, f.Severity.Category(), f.Message)
}

// Result is the outcome of instrumenting one package.
type Result struct {
	PkgPath  string
	Findings []Finding
	// Sources maps file names to their instrumented content. Only changed files are present.
	Sources map[string][]byte
}

// Packages loads the packages matching patterns, relative to dir.
func Packages(ctx context.Context, dir string, patterns ...string) (*token.FileSet, []*packages.Package, error) {
	defer trace.StartRegion(ctx, "Load").End()

	fset := token.NewFileSet()
	cfg := &packages.Config{
		Context: ctx,
		Mode:    Mode,
		Dir:     dir,
		Fset:    fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})

	if len(errs) > 0 {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoad, errors.Join(errs...))
	}

	return fset, pkgs, nil
}

// Instrument runs the instrumentation pipeline over pkgs concurrently.
//
// When fix is set, the suggested fixes are applied and the results carry the rewritten sources.
func Instrument(ctx context.Context, r *run.Options, fset *token.FileSet, pkgs []*packages.Package, fix bool) ([]Result, error) {
	ctx, task := trace.NewTask(ctx, "Instrument")
	defer task.End()

	results := make([]Result, len(pkgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := instrument(ctx, r, fset, pkg.PkgPath, pkg.Syntax, pkg.GoFiles, os.ReadFile, fix)
			if err != nil {
				return fmt.Errorf("package %s: %w", pkg.PkgPath, err)
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Source instruments a single file given by its content.
func Source(ctx context.Context, r *run.Options, filename string, src []byte) (Result, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	readFile := func(name string) ([]byte, error) {
		if name != filename {
			return nil, fmt.Errorf("%w: unknown file %s", ErrLoad, name)
		}

		return src, nil
	}

	return instrument(ctx, r, fset, f.Name.Name, []*ast.File{f}, []string{filename}, readFile, true)
}

func instrument(ctx context.Context, r *run.Options, fset *token.FileSet, pkgPath string,
	files []*ast.File, goFiles []string, readFile func(string) ([]byte, error), fix bool,
) (Result, error) {
	var sink diag.Sink
	r.Instrument(ctx, fset, files, &sink)

	items := sink.Items()
	res := Result{PkgPath: pkgPath, Findings: make([]Finding, 0, len(items))}

	edits := make(map[*token.File][]analysis.TextEdit)
	for _, d := range items {
		res.Findings = append(res.Findings, Finding{
			Position: fset.Position(d.Pos),
			Severity: d.Severity,
			Message:  d.Text(),
		})

		if !fix || d.Fix == nil {
			continue
		}

		for _, e := range d.Fix.Edits {
			tf := fset.File(e.Pos)
			if tf == nil || !slices.Contains(goFiles, tf.Name()) {
				continue
			}

			edits[tf] = append(edits[tf], e)
		}
	}

	if len(edits) == 0 {
		return res, nil
	}

	res.Sources = make(map[string][]byte, len(edits))

	for tf, fileEdits := range edits {
		src, err := readFile(tf.Name())
		if err != nil {
			return Result{}, err
		}

		out, err := edit.Apply(tf, src, fileEdits)
		if err != nil {
			return Result{}, err
		}

		res.Sources[tf.Name()] = out
	}

	return res, nil
}

// Write stores the instrumented sources of results, keeping file permissions.
func Write(results []Result) error {
	for _, res := range results {
		for name, src := range res.Sources {
			info, err := os.Stat(name)
			if err != nil {
				return err
			}

			if err := os.WriteFile(name, src, info.Mode().Perm()); err != nil {
				return err
			}
		}
	}

	return nil
}
