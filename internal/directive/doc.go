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

// Package directive recognizes //calltrace:trace comments and parses their configuration.
//
// A directive consists of the marker followed by an optional, comma-separated list of entries:
//
//	//calltrace:trace prefix_enter = "->", prefix_exit = "<-", disable(helper), pause
//
// Entries are bare flags (pause), key/value pairs (prefix_enter = "->") or groups (enable(a, b)).
// Malformed entries produce warnings and are skipped, so parsing always yields usable [Options].
package directive
