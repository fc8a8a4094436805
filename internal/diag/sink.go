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

package diag

import (
	"cmp"
	"fmt"
	"go/token"
	"slices"
)

// Sink accumulates diagnostics. The zero value is ready to use.
type Sink struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (s *Sink) Add(d Diagnostic) {
	s.items = append(s.items, d)
}

// Warnf appends a warning spanning rng.
func (s *Sink) Warnf(rng Range, code Code, format string, args ...any) {
	s.add(rng, Warning, code, format, args...)
}

// Errorf appends an error spanning rng.
func (s *Sink) Errorf(rng Range, code Code, format string, args ...any) {
	s.add(rng, Error, code, format, args...)
}

func (s *Sink) add(rng Range, severity Severity, code Code, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// Merge appends all diagnostics of other.
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}

	s.items = append(s.items, other.items...)
}

// Len returns the number of collected diagnostics.
func (s *Sink) Len() int { return len(s.items) }

// HasErrors reports whether at least one diagnostic is an [Error].
func (s *Sink) HasErrors() bool {
	return slices.ContainsFunc(s.items, func(d Diagnostic) bool { return d.Severity >= Error })
}

// Items returns the collected diagnostics, ordered by position.
// The result must not be modified.
func (s *Sink) Items() []Diagnostic {
	slices.SortStableFunc(s.items, func(a, b Diagnostic) int { return cmp.Compare(a.Pos, b.Pos) })

	return s.items
}

// Range is a source interval, satisfied by every [go/ast.Node] and [analysis.Range].
type Range interface {
	Pos() token.Pos
	End() token.Pos
}

// Span is a [Range] given by explicit positions.
type Span struct{ Start, Stop token.Pos }

// Pos implements [Range].
func (s Span) Pos() token.Pos { return s.Start }

// End implements [Range].
func (s Span) End() token.Pos { return s.Stop }
