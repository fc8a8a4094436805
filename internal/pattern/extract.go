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

package pattern

import (
	"fmt"

	"fillmore-labs.com/calltrace/internal/diag"
)

// Extract returns the names bound by params in declaration order. Duplicates are kept.
//
// Opaque patterns are reported as warnings to sink and contribute no names.
func Extract(params []Pattern, sink *diag.Sink) []string {
	var e extractor

	e.sink = sink
	for _, p := range params {
		e.extract(p)
	}

	return e.names
}

type extractor struct {
	names []string
	sink  *diag.Sink
}

func (e *extractor) extract(p Pattern) {
	switch p := p.(type) {
	case Ident:
		if !p.Receiver {
			e.names = append(e.names, p.Name)
		}

	case Wildcard, Literal, Range, Path:

	case Tuple:
		e.extractAll(p.Elems)

	case Struct:
		for _, f := range p.Fields {
			e.extract(f.Pattern)
		}

	case Slice:
		e.extractAll(p.Prefix)

		if p.Rest != nil {
			e.extract(p.Rest)
		}

		e.extractAll(p.Suffix)

	case Wrapped:
		e.extract(p.Inner)

	case Opaque:
		if e.sink != nil {
			e.sink.Warnf(diag.Span{Start: p.At, Stop: p.At}, diag.CodePattern, "Pattern macros in arguments are ignored")
		}

	default:
		panic(fmt.Sprintf("unexpected pattern type %T", p))
	}
}

func (e *extractor) extractAll(ps []Pattern) {
	for _, p := range ps {
		e.extract(p)
	}
}
