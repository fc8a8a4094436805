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

package directive_test

import (
	"go/ast"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/calltrace/internal/diag"
	. "fillmore-labs.com/calltrace/internal/directive"
)

func TestParse(t *testing.T) {
	t.Parallel()

	defaults := DefaultOptions()

	tests := []struct {
		name     string
		text     string
		want     Options
		valid    bool
		warnings []string
	}{
		{
			name:  "bare",
			text:  "//calltrace:trace",
			want:  defaults,
			valid: true,
		},
		{
			name:  "prefixes",
			text:  `//calltrace:trace prefix_enter = "->", prefix_exit = "<-"`,
			want:  Options{PrefixEnter: "->", PrefixExit: "<-"},
			valid: true,
		},
		{
			name:  "raw string",
			text:  "//calltrace:trace prefix_enter=`>>`",
			want:  Options{PrefixEnter: ">>", PrefixExit: DefaultPrefixExit},
			valid: true,
		},
		{
			name:  "enable",
			text:  "//calltrace:trace enable(foo, bar), pause",
			want:  Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Enable: NewNameSet("foo", "bar"), Pause: true},
			valid: true,
		},
		{
			name:  "empty disable",
			text:  "//calltrace:trace disable()",
			want:  Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Disable: NewNameSet()},
			valid: true,
		},
		{
			name:  "trailing comment",
			text:  "//calltrace:trace disable(bar) // skip bar",
			want:  Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Disable: NewNameSet("bar")},
			valid: true,
		},
		{
			name:     "non-string prefix",
			text:     "//calltrace:trace prefix_enter = 42",
			want:     defaults,
			valid:    true,
			warnings: []string{"Option prefix_enter expects a string literal, got 42 (ct:opt)"},
		},
		{
			name:  "nested shapes",
			text:  `//calltrace:trace enable(a, b = "x", c(d))`,
			want:  Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Enable: NewNameSet("a")},
			valid: true,
			warnings: []string{
				"Invalid option b (ct:opt)",
				"Invalid option c (ct:opt)",
			},
		},
		{
			name:  "unknown options",
			text:  `//calltrace:trace verbose, level = 3, only(x), pause = true`,
			want:  defaults,
			valid: true,
			warnings: []string{
				"Invalid option verbose (ct:opt)",
				"Invalid option level (ct:opt)",
				"Invalid option only (ct:opt)",
				"Invalid option pause (ct:opt)",
			},
		},
		{
			name:     "malformed",
			text:     `//calltrace:trace "oops", pause`,
			want:     Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Pause: true},
			valid:    true,
			warnings: []string{`Malformed trace configuration: unexpected "oops" (ct:opt)`},
		},
		{
			name:     "unclosed",
			text:     `//calltrace:trace enable(a, pause`,
			want:     defaults,
			valid:    true,
			warnings: []string{"Malformed trace configuration: unexpected end of configuration (ct:opt)"},
		},
		{
			name:     "stray parenthesis",
			text:     `//calltrace:trace pause)`,
			want:     Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Pause: true},
			valid:    true,
			warnings: []string{"Malformed trace configuration: unexpected ) (ct:opt)"},
		},
		{
			name:     "exclusive",
			text:     "//calltrace:trace enable(a), disable(b)",
			want:     Options{PrefixEnter: DefaultPrefixEnter, PrefixExit: DefaultPrefixExit, Enable: NewNameSet("a"), Disable: NewNameSet("b")},
			valid:    false,
			warnings: []string{"Cannot use both enable and disable options with trace (ct:cfg)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var sink diag.Sink

			c := &ast.Comment{Slash: 100, Text: tt.text}

			d := Parse(c, defaults, &sink)
			if d == nil {
				t.Fatal("Directive not recognized")
			}

			if diff := cmp.Diff(tt.want, d.Options); diff != "" {
				t.Errorf("Options mismatch (-want +got):\n%s", diff)
			}

			if d.Valid != tt.valid {
				t.Errorf("Got valid %t, want %t", d.Valid, tt.valid)
			}

			var got []string
			for _, w := range sink.Items() {
				got = append(got, w.Text())

				if w.Pos < c.Pos() || w.End > c.End() {
					t.Errorf("Diagnostic %q at %d-%d outside of comment %d-%d", w.Text(), w.Pos, w.End, c.Pos(), c.End())
				}
			}

			if diff := cmp.Diff(tt.warnings, got); diff != "" {
				t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want bool
	}{
		{"//calltrace:trace", true},
		{"//calltrace:trace pause", true},
		{"//calltrace:trace\tpause", true},
		{"//calltrace:tracer", false},
		{"// calltrace:trace", false},
		{"/*calltrace:trace*/", false},
		{"//nolint:calltrace", false},
	}

	for _, tt := range tests {
		if _, _, ok := Match(&ast.Comment{Text: tt.text}); ok != tt.want {
			t.Errorf("Match(%q) = %t, want %t", tt.text, ok, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	cg := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// foo does things."},
		{Text: "//"},
		{Text: "//calltrace:trace pause"},
	}}

	if got := Find(cg); got != cg.List[2] {
		t.Errorf("Find() = %v, want directive", got)
	}

	if got := Find(nil); got != nil {
		t.Errorf("Find(nil) = %v, want nil", got)
	}
}
