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

package directive

import (
	"go/ast"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"fillmore-labs.com/calltrace/internal/diag"
)

// Marker starts every trace directive.
const Marker = "//calltrace:trace"

// Directive is a parsed trace directive.
type Directive struct {
	// Comment is the directive comment.
	Comment *ast.Comment

	// Options is the best-effort configuration.
	Options Options

	// Valid is false when the configuration has an error. Elements governed by an invalid directive are not
	// instrumented.
	Valid bool
}

// Pos implements [diag.Range].
func (d *Directive) Pos() token.Pos { return d.Comment.Pos() }

// End implements [diag.Range].
func (d *Directive) End() token.Pos { return d.Comment.End() }

// Match reports whether c is a trace directive. It returns the configuration text and its position.
func Match(c *ast.Comment) (args string, pos token.Pos, ok bool) {
	rest, found := strings.CutPrefix(c.Text, Marker)
	if !found {
		return "", token.NoPos, false
	}

	if rest != "" {
		if r, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(r) {
			return "", token.NoPos, false // different directive, like //calltrace:tracer
		}
	}

	return rest, c.Slash + token.Pos(len(Marker)), true
}

// Find returns the first trace directive comment in cg, or nil.
func Find(cg *ast.CommentGroup) *ast.Comment {
	if cg == nil {
		return nil
	}

	for _, c := range cg.List {
		if _, _, ok := Match(c); ok {
			return c
		}
	}

	return nil
}

// Parse parses the directive comment c, starting from the defaults.
// Warnings and errors are appended to sink.
func Parse(c *ast.Comment, defaults Options, sink *diag.Sink) *Directive {
	args, pos, ok := Match(c)
	if !ok {
		return nil
	}

	d := &Directive{Comment: c, Options: defaults, Valid: true}

	var p parser
	p.init(args, pos, sink)

	for _, e := range p.parseEntries() {
		d.apply(e, sink)
	}

	if d.Options.Enable != nil && d.Options.Disable != nil {
		sink.Errorf(c, diag.CodeConfig, "Cannot use both enable and disable options with trace")

		d.Valid = false
	}

	return d
}

// apply merges a single parsed entry into the options.
func (d *Directive) apply(e entry, sink *diag.Sink) {
	switch e.kind {
	case valueEntry:
		var prefix *string

		switch e.name {
		case "prefix_enter":
			prefix = &d.Options.PrefixEnter

		case "prefix_exit":
			prefix = &d.Options.PrefixExit

		default:
			sink.Warnf(e, diag.CodeOption, "Invalid option %s", e.name)

			return
		}

		value, ok := e.stringValue()
		if !ok {
			sink.Warnf(e, diag.CodeOption, "Option %s expects a string literal, got %s", e.name, e.lit)

			return
		}

		*prefix = value

	case listEntry:
		var set *NameSet

		switch e.name {
		case "enable":
			set = &d.Options.Enable

		case "disable":
			set = &d.Options.Disable

		default:
			sink.Warnf(e, diag.CodeOption, "Invalid option %s", e.name)

			return
		}

		names := make(NameSet, len(e.list))
		for _, n := range e.list {
			if n.kind != flagEntry {
				sink.Warnf(n, diag.CodeOption, "Invalid option %s", n.name)

				continue
			}

			names[n.name] = struct{}{}
		}

		*set = names

	case flagEntry:
		if e.name != "pause" {
			sink.Warnf(e, diag.CodeOption, "Invalid option %s", e.name)

			return
		}

		d.Options.Pause = true
	}
}
