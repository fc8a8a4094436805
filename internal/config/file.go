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

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/calltrace/internal/directive"
)

// File is the content of a YAML configuration file. Absent keys keep their defaults.
//
//	generated: false
//	skip-tests: true
//	prefix-enter: "->"
//	prefix-exit: "<-"
//	pause: false
type File struct {
	Generated   *bool   `yaml:"generated"`
	SkipTests   *bool   `yaml:"skip-tests"`
	PrefixEnter *string `yaml:"prefix-enter"`
	PrefixExit  *string `yaml:"prefix-exit"`
	Pause       *bool   `yaml:"pause"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	f, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// ParseFile parses YAML configuration. Unknown keys are an error.
func ParseFile(data []byte) (*File, error) {
	f := &File{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return f, nil
}

// Apply overrides defaults and behavior with the values set in the file.
func (f *File) Apply(defaults *directive.Options, behavior *Behavior) {
	if f.Generated != nil {
		behavior.Set(IncludeGenerated, *f.Generated)
	}

	if f.SkipTests != nil {
		behavior.Set(SkipTests, *f.SkipTests)
	}

	if f.PrefixEnter != nil {
		defaults.PrefixEnter = *f.PrefixEnter
	}

	if f.PrefixExit != nil {
		defaults.PrefixExit = *f.PrefixExit
	}

	if f.Pause != nil {
		defaults.Pause = *f.Pause
	}
}
