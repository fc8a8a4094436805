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

// Package target classifies the elements carrying trace directives and expands them into the functions to
// instrument.
//
// A directive on a function or method applies directly to it. A directive on a type declaration applies to all
// methods of that type in the package, and a directive on the package clause applies to all functions and methods
// of the file. Inherited directives only filter by element name; direct directives filter the reported arguments.
//
// The most specific directive wins: direct before type before file. Every function is instrumented at most once.
package target
