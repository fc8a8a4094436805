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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/calltrace/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
		fix     bool
	}{
		{
			name: "Basic",
			dir:  "./basic",
			fix:  true,
		},
		{
			name: "Results",
			dir:  "./results",
			fix:  true,
		},
		{
			name: "Options",
			dir:  "./options",
			fix:  true,
		},
		{
			name: "Module",
			dir:  "./module",
			fix:  true,
		},
		{
			name: "Targets",
			dir:  "./targets",
			fix:  true,
		},
		{
			name: "ConflictingImport",
			dir:  "./conflict",
			fix:  true,
		},
		{
			name: "DepthValid",
			dir:  "./depthvalid",
			fix:  true,
		},
		{
			name: "DepthMalformed",
			dir:  "./depthbad",
		},
		{
			name: "AlreadyInstrumented",
			dir:  "./already",
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: WithGenerated(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if a := New(tt.options); tt.fix {
				analysistest.RunWithSuggestedFixes(t, testdata, a, tt.dir)
			} else {
				analysistest.Run(t, testdata, a, tt.dir)
			}
		})
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{
		WithGenerated(true),
		WithSkipTests(false),
		Options{WithPrefixEnter("->"), WithPrefixExit("<-")},
		WithPause(true),
		WithConfigFile(nil),
		nil,
	}

	const want = "[generated=true skip-tests=false prefix-enter=-> prefix-exit=<- pause=true config=<nil> nil=<nil>]"

	if got := opts.LogValue().String(); got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}
}
