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

// Package depth guarantees the package-level call depth counter used by instrumented functions.
//
// Instrumented code expects
//
//	var DEPTH uint32
//
// at package level. An existing declaration is validated lexically; a missing one is added with a suggested fix.
package depth

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/calltrace/internal/diag"
)

// Name is the identifier of the depth counter.
const Name = "DEPTH"

// Declaration is the text appended to a file missing the counter.
const Declaration = "\nvar " + Name + " uint32\n"

// Status describes the state of the counter in a package.
type Status uint8

const (
	// Valid means a usable counter is declared.
	Valid Status = iota
	// Absent means the counter is missing and a declaration is suggested.
	Absent
	// Malformed means something else is declared under the counter's name.
	Malformed
)

// Decl is a package-level declaration of [Name].
type Decl struct {
	Ident *ast.Ident
	Node  ast.Node // *ast.GenDecl, *ast.FuncDecl
	Tok   token.Token
	Type  ast.Expr // nil when inferred
	Value ast.Expr // nil when absent
}

// Pos implements [diag.Range].
func (d *Decl) Pos() token.Pos { return d.Node.Pos() }

// End implements [diag.Range].
func (d *Decl) End() token.Pos { return d.Node.End() }

// Find returns the first package-level declaration of [Name], or nil.
func Find(files []*ast.File) *Decl {
	for _, f := range files {
		for _, decl := range f.Decls {
			if d := find(decl); d != nil {
				return d
			}
		}
	}

	return nil
}

func find(decl ast.Decl) *Decl {
	switch decl := decl.(type) {
	case *ast.FuncDecl:
		if decl.Recv == nil && decl.Name.Name == Name {
			return &Decl{Ident: decl.Name, Node: decl, Tok: token.FUNC}
		}

	case *ast.GenDecl:
		for _, spec := range decl.Specs {
			switch spec := spec.(type) {
			case *ast.TypeSpec:
				if spec.Name.Name == Name {
					return &Decl{Ident: spec.Name, Node: decl, Tok: token.TYPE}
				}

			case *ast.ValueSpec:
				for i, id := range spec.Names {
					if id.Name != Name {
						continue
					}

					d := &Decl{Ident: id, Node: decl, Tok: decl.Tok, Type: spec.Type}
					if i < len(spec.Values) {
						d.Value = spec.Values[i]
					}

					return d
				}
			}
		}
	}

	return nil
}

// Validate returns the reasons the declaration can't serve as the counter, or nil.
func Validate(d *Decl) []string {
	switch d.Tok {
	case token.VAR:

	case token.CONST:
		return append([]string{"declared as constant, must be a mutable variable"}, validateVar(d)...)

	case token.FUNC:
		return []string{"declared as function, must be a variable"}

	case token.TYPE:
		return []string{"declared as type, must be a variable"}

	default:
		return []string{fmt.Sprintf("unexpected declaration %s", d.Tok)}
	}

	return validateVar(d)
}

func validateVar(d *Decl) []string {
	var mismatches []string

	typ, init := d.Type, d.Value
	if typ == nil {
		// var DEPTH = uint32(0)
		if conv, ok := init.(*ast.CallExpr); ok && len(conv.Args) == 1 && isIdent(conv.Fun, "uint32") {
			typ, init = conv.Fun, conv.Args[0]
		}
	} else if conv, ok := init.(*ast.CallExpr); ok && len(conv.Args) == 1 && isIdent(conv.Fun, "uint32") {
		init = conv.Args[0]
	}

	switch {
	case typ == nil:
		mismatches = append(mismatches, "has no explicit type, must have type uint32")

	case !isIdent(typ, "uint32"):
		mismatches = append(mismatches, fmt.Sprintf("has type %s, must have type uint32", types.ExprString(typ)))
	}

	if init != nil && !isZero(init) {
		mismatches = append(mismatches, fmt.Sprintf("starts at %s, must start at 0", types.ExprString(init)))
	}

	return mismatches
}

func isIdent(x ast.Expr, name string) bool {
	id, ok := ast.Unparen(x).(*ast.Ident)

	return ok && id.Name == name
}

func isZero(x ast.Expr) bool {
	lit, ok := ast.Unparen(x).(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return false
	}

	return strings.Trim(strings.ReplaceAll(lit.Value, "_", ""), "0") == ""
}

// Ensure checks the counter of the package formed by files and reports the result to sink.
//
// A valid counter is left alone. A malformed counter is reported as an error at its declaration. A missing counter
// is reported with a fix appending [Declaration] to into.
func Ensure(files []*ast.File, into *ast.File, sink *diag.Sink) Status {
	d := Find(files)
	if d == nil {
		sink.Add(diag.Diagnostic{
			Pos:      into.Package,
			End:      into.Name.End(),
			Severity: diag.Info,
			Code:     diag.CodeDepth,
			Message:  "Add " + Name + " counter declaration",
			Fix: &diag.Fix{
				Message: "Add " + Name + " counter declaration",
				Edits:   []analysis.TextEdit{{Pos: into.FileEnd, End: into.FileEnd, NewText: []byte(Declaration)}},
			},
		})

		return Absent
	}

	if mismatches := Validate(d); len(mismatches) > 0 {
		sink.Errorf(d, diag.CodeDepth, "Malformed %s declaration: %s", Name, strings.Join(mismatches, "; "))

		return Malformed
	}

	return Valid
}
