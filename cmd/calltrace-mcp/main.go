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

// Calltrace-mcp serves call tracing instrumentation as MCP tools over stdio.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"fillmore-labs.com/calltrace/internal/config"
	"fillmore-labs.com/calltrace/internal/mcptool"
	"fillmore-labs.com/calltrace/internal/run"
)

const version = "0.0.1"

func main() {
	configFile := flag.String("config", "", "YAML configuration `file`")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := run.DefaultOptions()

	if *configFile != "" {
		f, err := config.LoadFile(*configFile)
		if err != nil {
			logger.Error("Can't load configuration", "file", *configFile, "error", err)
			os.Exit(1)
		}

		f.Apply(&opts.Defaults, &opts.Behavior)
	}

	logger.Debug("Starting", "options", opts)

	s := server.NewMCPServer("calltrace", version, server.WithToolCapabilities(false))

	mcptool.Tools{Options: opts, Logger: logger}.Register(s)

	if err := server.ServeStdio(s); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
