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

package target

import (
	"go/ast"
	"slices"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/diag"
	"fillmore-labs.com/calltrace/internal/directive"
	"fillmore-labs.com/calltrace/internal/pattern"
	"fillmore-labs.com/calltrace/internal/synth"
)

// Element is a function or method selected for instrumentation.
type Element struct {
	File    *ast.File
	Func    *ast.FuncDecl
	Kind    Kind // Function or Method
	Direct  bool
	Options directive.Options
	Args    []string // Reported arguments, filtered.
}

// Name returns the name printed in trace lines.
func (e Element) Name() string { return e.Func.Name.Name }

// QualifiedName returns the name including the receiver base type for methods.
func (e Element) QualifiedName() string {
	if recv := ReceiverType(e.Func); recv != "" {
		return recv + "." + e.Func.Name.Name
	}

	return e.Func.Name.Name
}

// Dispatcher expands annotations into the elements to instrument.
type Dispatcher struct {
	direct  map[*ast.FuncDecl]*Annotation
	types   map[string]*Annotation
	modules map[*ast.File]*Annotation
}

// NewDispatcher indexes the annotations by the element they are attached to.
func NewDispatcher(annotations []Annotation) *Dispatcher {
	d := &Dispatcher{
		direct:  make(map[*ast.FuncDecl]*Annotation),
		types:   make(map[string]*Annotation),
		modules: make(map[*ast.File]*Annotation),
	}

	for i := range annotations {
		a := &annotations[i]

		switch a.Kind {
		case Function, Method:
			d.direct[a.Func] = a

		case ImplBlock:
			if _, ok := d.types[a.Type.Name.Name]; !ok {
				d.types[a.Type.Name.Name] = a
			}

		case Module:
			d.modules[a.File] = a
		}
	}

	return d
}

// Modules returns the files carrying a valid module annotation, in order of files.
func (d *Dispatcher) Modules(files []*ast.File) []*ast.File {
	return slices.DeleteFunc(slices.Clone(files), func(f *ast.File) bool {
		a := d.modules[f]

		return a == nil || !a.Valid
	})
}

// Expand returns the functions and methods of files to instrument, in source order.
//
// Elements whose parameter names would hide identifiers used by the generated code are reported to sink and
// omitted.
func (d *Dispatcher) Expand(files []*ast.File, sink *diag.Sink) []Element {
	var elements []Element

	imports := make(map[*ast.File]synth.Imports)

	for f, fn := range astutil.AllFuncDecls(files...) {
		a, direct := d.annotation(f, fn)
		if a == nil || !a.Valid {
			continue
		}

		if !direct && !a.Options.IncludeName(fn.Name.Name) {
			continue
		}

		if synth.IsInstrumented(fn.Body) {
			continue
		}

		names, ok := imports[f]
		if !ok {
			names, _ = synth.ResolveImports(f, true)
			imports[f] = names
		}

		if shadowed(fn, names.Reserved(a.Options.Pause), sink) {
			continue
		}

		args := pattern.Extract(pattern.FromFunc(fn), sink)
		if direct {
			args = a.Options.FilterArgs(args)
		}

		kind := Function
		if fn.Recv != nil {
			kind = Method
		}

		elements = append(elements, Element{
			File:    f,
			Func:    fn,
			Kind:    kind,
			Direct:  direct,
			Options: a.Options,
			Args:    args,
		})
	}

	return elements
}

// annotation returns the most specific annotation governing fn and whether it is attached to fn itself.
func (d *Dispatcher) annotation(f *ast.File, fn *ast.FuncDecl) (*Annotation, bool) {
	if a, ok := d.direct[fn]; ok {
		return a, true
	}

	if recv := ReceiverType(fn); recv != "" {
		if a, ok := d.types[recv]; ok {
			return a, false
		}
	}

	if a, ok := d.modules[f]; ok {
		return a, false
	}

	return nil, false
}

// shadowed reports receivers, type parameters, parameters and results named like identifiers the generated code
// references.
func shadowed(fn *ast.FuncDecl, reserved []string, sink *diag.Sink) bool {
	found := false

	for name := range astutil.AllFieldNames(fn.Recv, fn.Type.TypeParams, fn.Type.Params, fn.Type.Results) {
		if slices.Contains(reserved, name.Name) {
			sink.Errorf(name, diag.CodeTarget,
				"Name %s in %s shadows an identifier used by call tracing", name.Name, fn.Name.Name)

			found = true
		}
	}

	return found
}

// ReceiverType returns the base type name of a method receiver, or "" for functions.
func ReceiverType(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}

	typ := ast.Unparen(fn.Recv.List[0].Type)
	if star, ok := typ.(*ast.StarExpr); ok {
		typ = ast.Unparen(star.X)
	}

	switch t := typ.(type) {
	case *ast.IndexExpr:
		typ = t.X

	case *ast.IndexListExpr:
		typ = t.X
	}

	if id, ok := typ.(*ast.Ident); ok {
		return id.Name
	}

	return ""
}
