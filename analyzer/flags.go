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
	"flag"

	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "instrument generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.SkipTests), "skip-tests", "leave test files alone")
	flags.StringVar(&r.Defaults.PrefixEnter, "prefix-enter", r.Defaults.PrefixEnter, "default prefix of entering lines")
	flags.StringVar(&r.Defaults.PrefixExit, "prefix-exit", r.Defaults.PrefixExit, "default prefix of exiting lines")
	flags.BoolVar(&r.Defaults.Pause, "pause", r.Defaults.Pause, "pause after trace lines by default")
	flags.Var(&configFileValue{r: r}, "config", "YAML configuration `file`")
}
