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

package run_test

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/diag"
	. "fillmore-labs.com/calltrace/internal/run"
)

type source struct{ name, src string }

func instrument(t *testing.T, r *Options, sources ...source) []diag.Diagnostic {
	t.Helper()

	fset := token.NewFileSet()

	files := make([]*ast.File, 0, len(sources))
	for _, s := range sources {
		f, err := parser.ParseFile(fset, s.name, s.src, parser.ParseComments|parser.SkipObjectResolution)
		if err != nil {
			t.Fatalf("Can't parse %s: %v", s.name, err)
		}

		files = append(files, f)
	}

	var sink diag.Sink
	r.Instrument(context.Background(), fset, files, &sink)

	return sink.Items()
}

func messages(items []diag.Diagnostic) []string {
	msgs := make([]string, 0, len(items))
	for _, d := range items {
		msgs = append(msgs, d.Text())
	}

	return msgs
}

const (
	plain = `package p

//calltrace:trace
func f() {}
`

	test = `package p

//calltrace:trace
func g() {}
`

	generated = `// Code generated by test. DO NOT EDIT.

package p

//calltrace:trace
func h() {}
`

	nolint = `//nolint:calltrace
package p

//calltrace:trace
func i() {}
`
)

func TestInstrumentSkips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		behavior config.Behavior
		want     []string
	}{
		{
			name:     "default",
			behavior: config.DefaultBehavior(),
			want: []string{
				"Add DEPTH counter declaration (ct:depth)",
				"Instrument function 'f' with call tracing (ct:fn)",
			},
		},
		{
			name:     "tests and generated",
			behavior: config.NewBehavior(config.IncludeGenerated),
			want: []string{
				"Add DEPTH counter declaration (ct:depth)",
				"Instrument function 'f' with call tracing (ct:fn)",
				"Instrument function 'g' with call tracing (ct:fn)",
				"Instrument function 'h' with call tracing (ct:fn)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := DefaultOptions()
			r.Behavior = tt.behavior

			items := instrument(t, r,
				source{"a.go", plain},
				source{"a_test.go", test},
				source{"gen.go", generated},
				source{"nolint.go", nolint},
			)

			if diff := cmp.Diff(tt.want, messages(items)); diff != "" {
				t.Errorf("Instrument() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInstrumentMalformedDepth(t *testing.T) {
	t.Parallel()

	items := instrument(t, DefaultOptions(),
		source{"a.go", plain},
		source{"depth.go", "package p\n\nconst DEPTH = 0\n"},
	)

	want := []string{
		"Instrument function 'f' with call tracing (ct:fn)",
		"Malformed DEPTH declaration: declared as constant, must be a mutable variable; has no explicit type, must have type uint32 (ct:depth)",
	}

	if diff := cmp.Diff(want, messages(items)); diff != "" {
		t.Errorf("Instrument() mismatch (-want +got):\n%s", diff)
	}

	for _, d := range items {
		if d.Fix != nil {
			t.Errorf("Unexpected fix on %q", d.Message)
		}
	}
}

func TestInstrumentModuleSelectingNothing(t *testing.T) {
	t.Parallel()

	const module = "//calltrace:trace enable()\npackage p\n\nfunc f() {}\n"

	tests := []struct {
		name  string
		depth string
		want  string
	}{
		{"absent", "package p\n", "Add DEPTH counter declaration (ct:depth)"},
		{"malformed", "package p\n\nvar DEPTH int\n", "Malformed DEPTH declaration: has type int, must have type uint32 (ct:depth)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			items := instrument(t, DefaultOptions(), source{"a.go", module}, source{"depth.go", tt.depth})

			if diff := cmp.Diff([]string{tt.want}, messages(items)); diff != "" {
				t.Errorf("Instrument() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInstrumentNothing(t *testing.T) {
	t.Parallel()

	items := instrument(t, DefaultOptions(), source{"a.go", "package p\n\nfunc f() {}\n"})

	if len(items) != 0 {
		t.Errorf("Got diagnostics %v, want none", messages(items))
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	got := DefaultOptions().LogValue().String()
	if want := "generated=false skip-tests=true"; !strings.Contains(got, want) {
		t.Errorf("LogValue() = %q, want to contain %q", got, want)
	}
}
