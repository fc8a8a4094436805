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

// Package synth builds the statements that wrap an instrumented function body.
//
// The wrapper is inserted in front of the original statements, which stay untouched:
//
//	__traceIndent := strings.Repeat(" ", int(atomic.LoadUint32(&DEPTH)))
//	fmt.Printf("%s[+] Entering foo(x: %v)\n", __traceIndent, x)
//	atomic.AddUint32(&DEPTH, 1)
//	defer func() {
//		atomic.AddUint32(&DEPTH, ^uint32(0))
//		fmt.Printf("%s[-] Exiting foo = %v\n", __traceIndent, __traceResult0)
//	}()
//
// The deferred epilogue runs on every exit path, so early returns and panics leave control flow and results
// unchanged, and increments and decrements stay paired. The decrement precedes the exit line, so entry and exit
// lines of one call share their indentation.
//
// DEPTH is updated atomically. Concurrent callers can't corrupt the counter, but interleaved calls from several
// goroutines produce indentation that is not exactly nested.
package synth
