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

// Package analyzer implements the calltrace static analysis pass.
//
// # Overview
//
// calltrace instruments functions with call tracing. A //calltrace:trace directive on a function, a method, a type
// or the package clause of a file marks the functions to instrument. The suggested fixes rewrite each function so
// that every call prints an entering line with its arguments and an exiting line with its results, indented by
// call depth.
//
// # Example
//
// Before:
//
//	//calltrace:trace
//	func foo(x int) {
//	    bar()
//	}
//
// After applying calltrace's suggested fix:
//
//	//calltrace:trace
//	func foo(x int) {
//	    __traceIndent := strings.Repeat(" ", int(atomic.LoadUint32(&DEPTH)))
//	    fmt.Printf("%s[+] Entering foo(x: %v)\n", __traceIndent, x)
//	    atomic.AddUint32(&DEPTH, 1)
//	    defer func() {
//	        atomic.AddUint32(&DEPTH, ^uint32(0))
//	        fmt.Printf("%s[-] Exiting foo = ()\n", __traceIndent)
//	    }()
//
//	    bar()
//	}
//
//	var DEPTH uint32
//
// # Directive Options
//
// The directive accepts comma-separated entries:
//
//   - prefix_enter = "->" and prefix_exit = "<-" replace the default [+] and [-] prefixes.
//   - enable(a, b) traces only the named elements, disable(a, b) all but the named ones. On a function or method
//     the names select the reported arguments, on a type or file they select the methods and functions.
//   - pause waits for a line on standard input after each trace line.
//
// A type directive applies to all methods of the type, a directive on the package clause to all functions and
// methods of the file. The most specific directive wins.
package analyzer
