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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/run"
)

// Option configures specific behavior of a [New] calltrace analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure instrumentation of generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithSkipTests is an [Option] to leave test files alone.
func WithSkipTests(skip bool) Option { return skipTestsOption{skip: skip} }

type skipTestsOption struct{ skip bool }

func (o skipTestsOption) apply(r *run.Options) {
	r.Behavior.Set(config.SkipTests, o.skip)
}

func (o skipTestsOption) LogAttr() slog.Attr {
	return slog.Bool("skip-tests", o.skip)
}

// WithPrefixEnter is an [Option] to configure the default prefix of entering lines.
func WithPrefixEnter(prefix string) Option { return prefixEnterOption{prefix: prefix} }

type prefixEnterOption struct{ prefix string }

func (o prefixEnterOption) apply(r *run.Options) {
	r.Defaults.PrefixEnter = o.prefix
}

func (o prefixEnterOption) LogAttr() slog.Attr {
	return slog.String("prefix-enter", o.prefix)
}

// WithPrefixExit is an [Option] to configure the default prefix of exiting lines.
func WithPrefixExit(prefix string) Option { return prefixExitOption{prefix: prefix} }

type prefixExitOption struct{ prefix string }

func (o prefixExitOption) apply(r *run.Options) {
	r.Defaults.PrefixExit = o.prefix
}

func (o prefixExitOption) LogAttr() slog.Attr {
	return slog.String("prefix-exit", o.prefix)
}

// WithPause is an [Option] to pause after trace lines by default.
func WithPause(pause bool) Option { return pauseOption{pause: pause} }

type pauseOption struct{ pause bool }

func (o pauseOption) apply(r *run.Options) {
	r.Defaults.Pause = o.pause
}

func (o pauseOption) LogAttr() slog.Attr {
	return slog.Bool("pause", o.pause)
}

// WithConfigFile is an [Option] to apply a parsed YAML configuration file.
func WithConfigFile(f *config.File) Option { return configFileOption{file: f} }

type configFileOption struct{ file *config.File }

func (o configFileOption) apply(r *run.Options) {
	if o.file == nil {
		return
	}

	o.file.Apply(&r.Defaults, &r.Behavior)
}

func (o configFileOption) LogAttr() slog.Attr {
	return slog.Any("config", o.file)
}
