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

// Package pattern flattens parameter patterns into the ordered list of names reported in trace lines.
//
// Patterns form a closed set of variants, so extraction is an exhaustive type switch. Go parameter lists only
// produce [Ident] and [Wildcard]; the destructuring variants keep extraction independent of the Go syntax tree.
package pattern

import "go/token"

// Pattern is a parameter pattern.
type Pattern interface {
	Pos() token.Pos
	pattern()
}

// Ident binds a single name.
type Ident struct {
	NamePos token.Pos
	Name    string

	// Receiver marks the method receiver, which is never reported.
	Receiver bool
}

// Wildcard binds nothing, like _ or an unnamed parameter.
type Wildcard struct{ At token.Pos }

// Literal matches a constant value and binds nothing.
type Literal struct {
	At    token.Pos
	Value string
}

// Range matches an interval of constants and binds nothing.
type Range struct {
	At       token.Pos
	Low, High string
}

// Path matches a named constant or unit value and binds nothing.
type Path struct {
	At   token.Pos
	Name string
}

// Tuple destructures positional elements, optionally of a named type.
type Tuple struct {
	At    token.Pos
	Type  string
	Elems []Pattern
}

// Field is a named field of a [Struct] pattern.
type Field struct {
	Name    string
	Pattern Pattern
}

// Struct destructures named fields.
type Struct struct {
	At     token.Pos
	Type   string
	Fields []Field
}

// Slice destructures a sequence into a prefix, an optional rest binding and a suffix.
type Slice struct {
	At     token.Pos
	Prefix []Pattern
	Rest   Pattern // may be nil
	Suffix []Pattern
}

// Wrapped matches through an indirection, like a pointer or box.
type Wrapped struct {
	At    token.Pos
	Inner Pattern
}

// Opaque is a pattern produced by code generation that can't be inspected.
type Opaque struct {
	At   token.Pos
	Text string
}

func (p Ident) Pos() token.Pos    { return p.NamePos }
func (p Wildcard) Pos() token.Pos { return p.At }
func (p Literal) Pos() token.Pos  { return p.At }
func (p Range) Pos() token.Pos    { return p.At }
func (p Path) Pos() token.Pos     { return p.At }
func (p Tuple) Pos() token.Pos    { return p.At }
func (p Struct) Pos() token.Pos   { return p.At }
func (p Slice) Pos() token.Pos    { return p.At }
func (p Wrapped) Pos() token.Pos  { return p.At }
func (p Opaque) Pos() token.Pos   { return p.At }

func (Ident) pattern()    {}
func (Wildcard) pattern() {}
func (Literal) pattern()  {}
func (Range) pattern()    {}
func (Path) pattern()     {}
func (Tuple) pattern()    {}
func (Struct) pattern()   {}
func (Slice) pattern()    {}
func (Wrapped) pattern()  {}
func (Opaque) pattern()   {}
