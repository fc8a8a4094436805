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

package analyzer

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/calltrace/internal/run"
)

const (
	name = "calltrace"
	doc  = `instrument functions marked with //calltrace:trace to print their calls

A //calltrace:trace directive on a function, method, type or package clause
selects functions to instrument. Each selected function is reported with a
suggested fix that prints an entering line with the arguments and a deferred
exiting line with the results, indented by the package-level DEPTH counter.
Apply the fixes with -fix.`
	url = "https://pkg.go.dev/fillmore-labs.com/calltrace"
)

// New returns a calltrace analyzer configured by opts.
//
// Options seed the defaults every directive starts from; the analyzer flags can override them later.
// The pass works on syntax alone, so it also runs on packages with type errors.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:             name,
		Doc:              doc,
		URL:              url,
		Run:              r.Run,
		RunDespiteErrors: true,
		Requires:         []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer is the calltrace analyzer with default options, as used by cmd/calltrace.
var Analyzer = New()
