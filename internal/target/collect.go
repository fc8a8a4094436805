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
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"fillmore-labs.com/calltrace/internal/diag"
	"fillmore-labs.com/calltrace/internal/directive"
)

// Annotation is a directive together with the element it is attached to.
type Annotation struct {
	*directive.Directive

	Kind Kind
	File *ast.File
	Func *ast.FuncDecl // Function, Method
	Type *ast.TypeSpec // ImplBlock
}

// attachment is the element a doc comment group belongs to.
type attachment struct {
	kind   Kind
	fn     *ast.FuncDecl
	typ    *ast.TypeSpec
	reason string // Other
}

// Collect finds all trace directives in files and classifies the elements they are attached to.
//
// Directives on elements that can't be instrumented are reported as errors and omitted from the result.
func Collect(files []*ast.File, defaults directive.Options, sink *diag.Sink) []Annotation {
	var annotations []Annotation

	for _, f := range files {
		docs := docAttachments(f)

		for _, cg := range f.Comments {
			seen := false

			for _, c := range cg.List {
				if _, _, ok := directive.Match(c); !ok {
					continue
				}

				if seen {
					sink.Warnf(c, diag.CodeTarget, "Duplicate trace directive ignored")

					continue
				}

				seen = true

				at, ok := docs[cg]
				if !ok {
					at = enclosing(f, c)
				}

				if at.kind == Other {
					sink.Errorf(c, diag.CodeTarget, "%s", at.reason)

					continue
				}

				d := directive.Parse(c, defaults, sink)
				annotations = append(annotations, Annotation{Directive: d, Kind: at.kind, File: f, Func: at.fn, Type: at.typ})
			}
		}
	}

	return annotations
}

// docAttachments maps doc comment groups of the file to the elements they document.
func docAttachments(f *ast.File) map[*ast.CommentGroup]attachment {
	docs := make(map[*ast.CommentGroup]attachment)

	if f.Doc != nil {
		docs[f.Doc] = attachment{kind: Module}
	}

	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Doc != nil {
				docs[decl.Doc] = funcAttachment(decl)
			}

		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}

			if decl.Doc != nil && len(decl.Specs) == 1 {
				docs[decl.Doc] = typeAttachment(decl.Specs[0].(*ast.TypeSpec))
			}

			for _, spec := range decl.Specs {
				if ts := spec.(*ast.TypeSpec); ts.Doc != nil {
					docs[ts.Doc] = typeAttachment(ts)
				}
			}
		}
	}

	return docs
}

func funcAttachment(fn *ast.FuncDecl) attachment {
	switch {
	case fn.Body == nil:
		return attachment{kind: Other, reason: "trace is not applicable to functions without body"}

	case fn.Recv != nil:
		return attachment{kind: Method, fn: fn}

	default:
		return attachment{kind: Function, fn: fn}
	}
}

func typeAttachment(ts *ast.TypeSpec) attachment {
	switch {
	case ts.Assign.IsValid():
		return attachment{kind: Other, reason: "trace is not applicable to type aliases"}

	case isInterface(ts.Type):
		return attachment{kind: Other, reason: "trace is not applicable to interface types"}

	default:
		return attachment{kind: ImplBlock, typ: ts}
	}
}

func isInterface(x ast.Expr) bool {
	_, ok := ast.Unparen(x).(*ast.InterfaceType)

	return ok
}

const misplaced = "trace is only permissible on functions, methods, types or files"

// enclosing classifies a directive comment that does not document a declaration by its innermost enclosing node.
func enclosing(f *ast.File, c *ast.Comment) attachment {
	path, _ := astutil.PathEnclosingInterval(f, c.Pos(), c.End())
	if len(path) < 2 {
		return attachment{kind: Other, reason: misplaced}
	}

	switch path[0].(type) {
	case ast.Stmt:
		return attachment{kind: Other, reason: "trace is not applicable to statements"}

	case *ast.FieldList:
		if isInterfaceNode(path[1]) {
			return attachment{kind: Other, reason: "trace is not applicable to interface methods"}
		}

	case *ast.Field:
		if len(path) > 2 && isInterfaceNode(path[2]) {
			return attachment{kind: Other, reason: "trace is not applicable to interface methods"}
		}

	case ast.Expr:
		return attachment{kind: Other, reason: "trace is not applicable to expressions"}
	}

	return attachment{kind: Other, reason: misplaced}
}

func isInterfaceNode(n ast.Node) bool {
	_, ok := n.(*ast.InterfaceType)

	return ok
}
