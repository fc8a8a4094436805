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

package target

// Kind classifies the element a directive is attached to.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Function is a function declaration without receiver.
	Function Kind = iota // function

	// Method is a function declaration with receiver.
	Method // method

	// ImplBlock is a named type, standing for all methods declared on it.
	ImplBlock // type

	// Module is a file, standing for all functions and methods declared in it.
	Module // file

	// Other is anything that can't be instrumented.
	Other // other
)
