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

// Package edit applies suggested fixes to source files outside of an analysis driver.
package edit

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

// ErrOverlap is returned when two edits modify the same region differently.
var ErrOverlap = errors.New("overlapping edits")

// ErrOutOfRange is returned for edits outside of the file.
var ErrOutOfRange = errors.New("edit out of range")

// offsetEdit is a [analysis.TextEdit] resolved to byte offsets.
type offsetEdit struct {
	start, end int
	text       []byte
}

// Apply applies edits to src, the content of tf, and formats the result.
//
// Identical edits are applied once. Insertions at the same offset are applied in the given order.
func Apply(tf *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	resolved, err := resolve(tf, len(src), edits)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(src))

	last := 0
	for _, e := range resolved {
		out.Write(src[last:e.start])
		out.Write(e.text)
		last = e.end
	}

	out.Write(src[last:])

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting %s: %w", tf.Name(), err)
	}

	return formatted, nil
}

func resolve(tf *token.File, size int, edits []analysis.TextEdit) ([]offsetEdit, error) {
	resolved := make([]offsetEdit, 0, len(edits))

	base, limit := tf.Base(), tf.Base()+size
	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		if int(e.Pos) < base || int(end) > limit || end < e.Pos {
			return nil, fmt.Errorf("%w: %d-%d in %s", ErrOutOfRange, e.Pos, end, tf.Name())
		}

		resolved = append(resolved, offsetEdit{start: int(e.Pos) - base, end: int(end) - base, text: e.NewText})
	}

	slices.SortStableFunc(resolved, func(a, b offsetEdit) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})

	resolved = slices.CompactFunc(resolved, func(a, b offsetEdit) bool {
		return a.start == b.start && a.end == b.end && bytes.Equal(a.text, b.text)
	})

	for i := 1; i < len(resolved); i++ {
		if prev, cur := resolved[i-1], resolved[i]; cur.start < prev.end {
			return nil, fmt.Errorf("%w: %d-%d and %d-%d in %s", ErrOverlap, prev.start, prev.end, cur.start, cur.end, tf.Name())
		}
	}

	return resolved, nil
}
