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

package report_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/calltrace/internal/astutil"
	"fillmore-labs.com/calltrace/internal/directive"
	"fillmore-labs.com/calltrace/internal/edit"
	. "fillmore-labs.com/calltrace/internal/report"
	"fillmore-labs.com/calltrace/internal/synth"
	"fillmore-labs.com/calltrace/internal/target"
)

func parse(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Can't parse source: %v", err)
	}

	return fset, f
}

func TestImportEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		paths []synth.Import
		want  string
	}{
		{
			name:  "none",
			src:   "package p\n\nfunc f() {}\n",
			paths: []synth.Import{{Path: "fmt"}},
			want:  "package p\n\nimport (\n\t\"fmt\"\n)\n\nfunc f() {}\n",
		},
		{
			name:  "package clause only",
			src:   "package p",
			paths: []synth.Import{{Path: "fmt"}},
			want:  "package p\n\nimport (\n\t\"fmt\"\n)\n",
		},
		{
			name:  "trailing comment",
			src:   "package p // want \"x\"\n\nvar x int\n",
			paths: []synth.Import{{Path: "strings"}},
			want:  "package p // want \"x\"\n\nimport (\n\t\"strings\"\n)\n\nvar x int\n",
		},
		{
			name:  "parenthesized",
			src:   "package p\n\nimport (\n\t\"os\"\n)\n\nvar _ = os.Args\n",
			paths: []synth.Import{{Path: "fmt"}, {Path: "strings"}},
			want:  "package p\n\nimport (\n\t\"fmt\"\n\t\"os\"\n\t\"strings\"\n)\n\nvar _ = os.Args\n",
		},
		{
			name:  "single",
			src:   "package p\n\nimport \"os\"\n\nvar _ = os.Args\n",
			paths: []synth.Import{{Path: "fmt"}},
			want:  "package p\n\nimport (\n\t\"fmt\"\n\t\"os\"\n)\n\nvar _ = os.Args\n",
		},
		{
			name:  "alias",
			src:   "package p\n\nimport \"go.uber.org/atomic\"\n\nvar _ atomic.Int32\n",
			paths: []synth.Import{{Name: "__traceAtomic", Path: "sync/atomic"}},
			want:  "package p\n\nimport (\n\t\"go.uber.org/atomic\"\n\t__traceAtomic \"sync/atomic\"\n)\n\nvar _ atomic.Int32\n",
		},
		{
			name:  "nothing missing",
			src:   "package p\n",
			paths: nil,
			want:  "package p\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fset, f := parse(t, tt.src)

			edits := ImportEdits(astutil.NewCurrentFile(fset, f), tt.paths)

			got, err := edit.Apply(fset.File(f.FileStart), []byte(tt.src), edits)
			if err != nil {
				t.Fatalf("Can't apply edits: %v", err)
			}

			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("ImportEdits() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestElementEdits(t *testing.T) {
	t.Parallel()

	const src = `package p

func f(a int) (int, error) {
	return a, nil
}
`

	const want = `package p

func f(a int) (__traceResult0 int, __traceResult1 error) {
	__traceIndent := strings.Repeat(" ", int(atomic.LoadUint32(&DEPTH)))
	fmt.Printf("%s[+] Entering f(a: %v)\n", __traceIndent, a)
	atomic.AddUint32(&DEPTH, 1)
	defer func() {
		atomic.AddUint32(&DEPTH, ^uint32(0))
		fmt.Printf("%s[-] Exiting f = (%v, %v)\n", __traceIndent, __traceResult0, __traceResult1)
	}()

	return a, nil
}
`

	fset, f := parse(t, src)

	fn, ok := f.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("Got %T, want function declaration", f.Decls[0])
	}

	e := target.Element{
		File:    f,
		Func:    fn,
		Kind:    target.Function,
		Direct:  true,
		Options: directive.DefaultOptions(),
		Args:    []string{"a"},
	}

	edits, err := ElementEdits(fset, astutil.NewCurrentFile(fset, f), e, synth.DefaultImports())
	if err != nil {
		t.Fatalf("ElementEdits() failed: %v", err)
	}

	got, err := edit.Apply(fset.File(f.FileStart), []byte(src), edits)
	if err != nil {
		t.Fatalf("Can't apply edits: %v", err)
	}

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("ElementEdits() mismatch (-want +got):\n%s", diff)
	}
}
