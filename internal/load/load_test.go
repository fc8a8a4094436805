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

package load_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	. "fillmore-labs.com/calltrace/internal/load"
	"fillmore-labs.com/calltrace/internal/run"
)

const program = `package main

//calltrace:trace
func foo(x int) {
	bar()
	_ = add(1, 2)
}

//calltrace:trace
func bar() {}

//calltrace:trace
func add(a, b int) int { return a + b }

func Run() { foo(5) }
`

func TestSourceTrace(t *testing.T) {
	t.Parallel()

	res, err := Source(context.Background(), run.DefaultOptions(), "main.go", []byte(program))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	src, ok := res.Sources["main.go"]
	if !ok {
		t.Fatalf("No instrumented source in %v", res.Findings)
	}

	var stdout bytes.Buffer

	i := interp.New(interp.Options{Stdout: &stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		t.Fatalf("Can't load stdlib: %v", err)
	}

	if _, err := i.Eval(string(src)); err != nil {
		t.Fatalf("Can't evaluate instrumented source: %v\n%s", err, src)
	}

	if _, err := i.Eval("main.Run()"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{
		"[+] Entering foo(x: 5)",
		" [+] Entering bar()",
		" [-] Exiting bar = ()",
		" [+] Entering add(a: 1, b: 2)",
		" [-] Exiting add = 3",
		"[-] Exiting foo = ()",
	}

	got := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Trace output mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceConflictingName(t *testing.T) {
	t.Parallel()

	const src = `package main

type atomic struct{ n int }

var counter atomic

//calltrace:trace
func inc(by int) { counter.n += by }

func Run() { inc(2) }
`

	res, err := Source(context.Background(), run.DefaultOptions(), "main.go", []byte(src))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	out, ok := res.Sources["main.go"]
	if !ok {
		t.Fatalf("No instrumented source in %v", res.Findings)
	}

	if !bytes.Contains(out, []byte(`__traceAtomic "sync/atomic"`)) {
		t.Errorf("Expected aliased import:\n%s", out)
	}

	var stdout bytes.Buffer

	i := interp.New(interp.Options{Stdout: &stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		t.Fatalf("Can't load stdlib: %v", err)
	}

	if _, err := i.Eval(string(out)); err != nil {
		t.Fatalf("Can't evaluate instrumented source: %v\n%s", err, out)
	}

	if _, err := i.Eval("main.Run()"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got, want := stdout.String(), "[+] Entering inc(by: 2)\n[-] Exiting inc = ()\n"; got != want {
		t.Errorf("Got trace %q, want %q", got, want)
	}
}

func TestSourceFindings(t *testing.T) {
	t.Parallel()

	res, err := Source(context.Background(), run.DefaultOptions(), "main.go", []byte(program))
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	got := make([]string, 0, len(res.Findings))
	for _, f := range res.Findings {
		got = append(got, f.Message)
	}

	want := []string{
		"Add DEPTH counter declaration (ct:depth)",
		"Instrument function 'foo' with call tracing (ct:fn)",
		"Instrument function 'bar' with call tracing (ct:fn)",
		"Instrument function 'add' with call tracing (ct:fn)",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Findings mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceSyntaxError(t *testing.T) {
	t.Parallel()

	_, err := Source(context.Background(), run.DefaultOptions(), "main.go", []byte("package main\nfunc {"))
	if err == nil {
		t.Fatal("Expected error for invalid source")
	}
}

func TestInstrument(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	dir, err := filepath.Abs("testdata")
	if err != nil {
		t.Fatal(err)
	}

	fset, pkgs, err := Packages(ctx, dir, "./...")
	if err != nil {
		t.Fatalf("Packages failed: %v", err)
	}

	results, err := Instrument(ctx, run.DefaultOptions(), fset, pkgs, true)
	if err != nil {
		t.Fatalf("Instrument failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Got %d results, want 1", len(results))
	}

	res := results[0]
	if res.PkgPath != "example.com/trace" {
		t.Errorf("Got package %q, want %q", res.PkgPath, "example.com/trace")
	}

	if len(res.Sources) != 1 {
		t.Fatalf("Got %d instrumented files, want 1", len(res.Sources))
	}

	var src []byte
	for name, s := range res.Sources {
		if filepath.Base(name) != "trace.go" {
			t.Errorf("Unexpected instrumented file %s", name)
		}

		src = s
	}

	for _, want := range []string{
		`fmt.Printf("%s[+] Entering Sum(values: %v)\n", __traceIndent, values)`,
		`fmt.Printf("%s[-] Exiting Sum = %v\n", __traceIndent, __traceResult0)`,
		"func Sum(values ...int) (__traceResult0 int) {",
		"var DEPTH uint32",
	} {
		if !bytes.Contains(src, []byte(want)) {
			t.Errorf("Instrumented source misses %q:\n%s", want, src)
		}
	}
}
