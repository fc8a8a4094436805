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

package config

// Config represents behavioral options of the instrumentation.
type Config uint8

const (
	// IncludeGenerated specifies whether to instrument generated files.
	IncludeGenerated Config = 1 << iota

	// SkipTests specifies whether to leave _test.go files alone.
	SkipTests
)

// Behavior is a set of [Config] options.
type Behavior struct {
	flags Config
}

// NewBehavior returns a [Behavior] with the given options enabled.
func NewBehavior(flags ...Config) Behavior {
	var b Behavior
	for _, flag := range flags {
		b.Set(flag, true)
	}

	return b
}

// DefaultBehavior returns the default [Behavior].
func DefaultBehavior() Behavior {
	return NewBehavior(SkipTests)
}

// Set enables or disables flag.
func (b *Behavior) Set(flag Config, value bool) {
	if value {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
}

// Enabled reports whether flag is enabled.
func (b Behavior) Enabled(flag Config) bool {
	return b.flags&flag != 0
}
