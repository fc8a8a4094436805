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
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	"strconv"
	"strings"

	"fillmore-labs.com/calltrace/internal/directive"
)

// Identifiers introduced by generated code.
const (
	DepthVar     = "DEPTH"
	IndentVar    = "__traceIndent"
	ResultPrefix = "__traceResult"
	bufVar       = "__traceBuf"
)

// Imports holds the local names of the packages referenced by generated code.
type Imports struct {
	Fmt     string
	Strings string
	Atomic  string
	OS      string
}

// DefaultImports returns the package names used when a file does not import a package under a different name.
func DefaultImports() Imports {
	return Imports{Fmt: "fmt", Strings: "strings", Atomic: "atomic", OS: "os"}
}

// Request describes the element to wrap.
type Request struct {
	Name    string   // Reported element name.
	Args    []string // Reported argument names, already filtered.
	Results []string // Names of all results, see [ResultNames].
}

// Synthesize returns the statements to insert before the original statements of an instrumented body.
func Synthesize(opts directive.Options, imports Imports, req Request) []ast.Stmt {
	b := builder{imports: imports}

	stmts := []ast.Stmt{
		b.indent(),
		b.printf(EnterFormat(opts.PrefixEnter, req.Name, req.Args), req.Args),
	}
	if opts.Pause {
		stmts = append(stmts, b.pause())
	}

	stmts = append(stmts, b.depthAdd(intLit(1)))

	epilogue := []ast.Stmt{
		b.depthAdd(decrement()),
		b.printf(ExitFormat(opts.PrefixExit, req.Name, len(req.Results)), req.Results),
	}
	if opts.Pause {
		epilogue = append(epilogue, b.pause())
	}

	return append(stmts, deferred(epilogue))
}

// EnterFormat returns the format string of the entry line.
func EnterFormat(prefix, name string, args []string) string {
	var sb strings.Builder
	sb.WriteString("%s")
	sb.WriteString(escape(prefix))
	sb.WriteString(" Entering ")
	sb.WriteString(escape(name))
	sb.WriteByte('(')

	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(escape(arg))
		sb.WriteString(": %v")
	}

	sb.WriteString(")\n")

	return sb.String()
}

// ExitFormat returns the format string of the exit line for a function with n results.
func ExitFormat(prefix, name string, n int) string {
	var value string

	switch n {
	case 0:
		value = "()"

	case 1:
		value = "%v"

	default:
		value = "(" + strings.Repeat("%v, ", n-1) + "%v)"
	}

	return "%s" + escape(prefix) + " Exiting " + escape(name) + " = " + value + "\n"
}

func escape(s string) string { return strings.ReplaceAll(s, "%", "%%") }

// ResultNames returns the names of all results in the list, generating names for unnamed and blank results.
// rename reports whether the result list has to be rewritten to carry the generated names.
func ResultNames(results *ast.FieldList) (names []string, rename bool) {
	if results == nil {
		return nil, false
	}

	i := 0
	for _, field := range results.List {
		if len(field.Names) == 0 {
			names = append(names, ResultName(i))
			rename = true
			i++

			continue
		}

		for _, name := range field.Names {
			if name.Name == "_" {
				names = append(names, ResultName(i))
				rename = true
			} else {
				names = append(names, name.Name)
			}

			i++
		}
	}

	return names, rename
}

// ResultName returns the generated name of the i-th result.
func ResultName(i int) string { return ResultPrefix + strconv.Itoa(i) }

// IsInstrumented reports whether the body starts with a generated indentation variable.
func IsInstrumented(body *ast.BlockStmt) bool {
	if body == nil || len(body.List) == 0 {
		return false
	}

	assign, ok := body.List[0].(*ast.AssignStmt)
	if !ok || assign.Tok != token.DEFINE || len(assign.Lhs) != 1 {
		return false
	}

	id, ok := assign.Lhs[0].(*ast.Ident)

	return ok && id.Name == IndentVar
}

// Render formats the statements in gofmt style, each line indented by one tab and terminated by a newline.
func Render(stmts []ast.Stmt) ([]byte, error) {
	var src bytes.Buffer
	if err := format.Node(&src, token.NewFileSet(), stmts); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	for line := range bytes.Lines(src.Bytes()) {
		line = bytes.TrimSuffix(line, []byte{'\n'})
		if len(line) > 0 {
			out.WriteByte('\t')
			out.Write(line)
		}

		out.WriteByte('\n')
	}

	return out.Bytes(), nil
}
