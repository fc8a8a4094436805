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

package gclplugin

import calltrace "fillmore-labs.com/calltrace/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables instrumentation of generated files.
	Generated *bool `json:"generated,omitzero"`
	// SkipTests leaves test files alone.
	SkipTests *bool `json:"skip-tests,omitzero"`
	// PrefixEnter sets the default prefix of entering lines.
	PrefixEnter *string `json:"prefix-enter,omitzero"`
	// PrefixExit sets the default prefix of exiting lines.
	PrefixExit *string `json:"prefix-exit,omitzero"`
	// Pause pauses after trace lines by default.
	Pause *bool `json:"pause,omitzero"`
}

// Options converts [Settings] into a list of [calltrace.Option] for the calltrace analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []calltrace.Option {
	var opts []calltrace.Option

	opts = appendOption(opts, s.Generated, calltrace.WithGenerated)
	opts = appendOption(opts, s.SkipTests, calltrace.WithSkipTests)
	opts = appendOption(opts, s.PrefixEnter, calltrace.WithPrefixEnter)
	opts = appendOption(opts, s.PrefixExit, calltrace.WithPrefixExit)
	opts = appendOption(opts, s.Pause, calltrace.WithPause)

	return opts
}

// appendOption appends a non-nil setting to a [calltrace.Option] list.
func appendOption[T any](opts []calltrace.Option, value *T, constructor func(T) calltrace.Option) []calltrace.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
