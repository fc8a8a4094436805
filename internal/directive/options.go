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

package directive

import (
	"log/slog"
	"maps"
	"slices"
)

// Default trace line tags.
const (
	DefaultPrefixEnter = "[+]"
	DefaultPrefixExit  = "[-]"
)

// NameSet is a set of identifiers.
type NameSet map[string]struct{}

// NewNameSet returns a non-nil set containing names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// Contains reports whether name is a member of s.
func (s NameSet) Contains(name string) bool {
	_, ok := s[name]

	return ok
}

// Sorted returns the members of s in lexical order.
func (s NameSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Options is the configuration of a single directive.
//
// A nil Enable or Disable set means the filter is not configured, while an empty, non-nil set is a configured
// filter without members. At most one of both is non-nil for a successfully parsed directive.
type Options struct {
	PrefixEnter string
	PrefixExit  string
	Enable      NameSet
	Disable     NameSet
	Pause       bool
}

// DefaultOptions returns the built-in configuration.
func DefaultOptions() Options {
	return Options{
		PrefixEnter: DefaultPrefixEnter,
		PrefixExit:  DefaultPrefixExit,
	}
}

// IncludeName is the name-level filter, applied to elements inheriting a directive from their file or type.
func (o Options) IncludeName(name string) bool {
	switch {
	case o.Enable != nil:
		return o.Enable.Contains(name)

	case o.Disable != nil:
		return !o.Disable.Contains(name)

	default:
		return true
	}
}

// FilterArgs is the argument-level filter, applied to elements carrying the directive themselves.
// It returns a new slice and preserves order and duplicates.
func (o Options) FilterArgs(names []string) []string {
	var keep func(string) bool

	switch {
	case o.Enable != nil:
		keep = o.Enable.Contains

	case o.Disable != nil:
		keep = func(name string) bool { return !o.Disable.Contains(name) }

	default:
		return slices.Clone(names)
	}

	result := make([]string, 0, len(names))
	for _, name := range names {
		if keep(name) {
			result = append(result, name)
		}
	}

	return result
}

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := []slog.Attr{
		slog.String("prefix_enter", o.PrefixEnter),
		slog.String("prefix_exit", o.PrefixExit),
		slog.Bool("pause", o.Pause),
	}

	if o.Enable != nil {
		as = append(as, slog.Any("enable", o.Enable.Sorted()))
	}

	if o.Disable != nil {
		as = append(as, slog.Any("disable", o.Disable.Sorted()))
	}

	return slog.GroupValue(as...)
}
