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

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	calltrace "fillmore-labs.com/calltrace/analyzer"
)

func init() { register.Plugin("calltrace", New) }

// New decodes the linter settings of a .golangci.yaml into a [Plugin].
func New(rawSettings any) (register.LinterPlugin, error) {
	settings, err := register.DecodeSettings[Settings](rawSettings)
	if err != nil {
		return nil, err
	}

	return Plugin{settings: settings}, nil
}

// Plugin registers calltrace with golangci-lint.
type Plugin struct {
	settings Settings
}

// GetLoadMode requests syntax only: directives, function declarations and DEPTH are found without type information.
func (Plugin) GetLoadMode() string {
	return register.LoadModeSyntax
}

// BuildAnalyzers returns a single calltrace analyzer.
//
// golangci-lint excludes generated files itself, so the analyzer is told to look at every file it gets.
// Explicit settings are applied afterwards and win.
func (p Plugin) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	opts := append([]calltrace.Option{calltrace.WithGenerated(true)}, p.settings.Options()...)

	return []*analysis.Analyzer{calltrace.New(opts...)}, nil
}
