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
	"fmt"
	"go/token"

	"golang.org/x/tools/go/analysis"
)

// Severity defines the importance of a [Diagnostic].
type Severity uint8

const (
	// Info marks an instrumentation site, usually carrying a [Fix].
	Info Severity = iota

	// Warning is non-fatal, processing continues with best-effort defaults.
	Warning

	// Error is fatal to the annotation or element it is reported on.
	Error
)

// Category returns the analysis category of diagnostics with this severity.
func (s Severity) Category() string {
	switch s {
	case Info:
		return "instrument"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}

	return "unknown"
}

// Code identifies the kind of a [Diagnostic] in messages.
type Code uint8

//go:generate go tool stringer -type Code -linecomment
const (
	// CodeFunction is an instrumented function.
	CodeFunction Code = iota // fn

	// CodeMethod is an instrumented method.
	CodeMethod // method

	// CodeDepth concerns the package-level depth counter.
	CodeDepth // depth

	// CodeOption is a malformed or unknown directive entry.
	CodeOption // opt

	// CodePattern is a parameter pattern that can't be inspected.
	CodePattern // pat

	// CodeConfig is a configuration error.
	CodeConfig // cfg

	// CodeTarget is a directive on an element that can't be instrumented.
	CodeTarget // target

	// CodeInternal is an inconsistency in the instrumentation engine.
	CodeInternal // internal
)

// Fix is a suggested rewrite attached to a [Diagnostic].
type Fix struct {
	Message string
	Edits   []analysis.TextEdit
}

// Diagnostic is a single finding of the instrumentation engine.
type Diagnostic struct {
	Pos, End token.Pos
	Severity Severity
	Code     Code
	Message  string
	Fix      *Fix
}

// Text returns the message with the diagnostic code appended.
func (d Diagnostic) Text() string {
	return fmt.Sprintf("%s (ct:%s)", d.Message, d.Code)
}

// Analysis converts d to an [analysis.Diagnostic].
func (d Diagnostic) Analysis() analysis.Diagnostic {
	msg := d.Text()

	diagnostic := analysis.Diagnostic{
		Pos:      d.Pos,
		End:      d.End,
		Category: d.Severity.Category(),
		Message:  msg,
	}

	if d.Fix != nil && len(d.Fix.Edits) > 0 {
		diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: d.Fix.Message, TextEdits: d.Fix.Edits}}
	}

	return diagnostic
}
