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

// Package mcptool exposes the instrumentation pipeline as MCP tools.
package mcptool

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"fillmore-labs.com/calltrace/internal/load"
	"fillmore-labs.com/calltrace/internal/run"
)

const defaultPattern = "./..."

// Tools holds the configuration shared by all tool handlers.
type Tools struct {
	Options *run.Options
	Logger  *slog.Logger
}

// Register defines the tools on s.
func (t Tools) Register(s *server.MCPServer) {
	diagnosticsTool := mcp.NewTool("trace_diagnostics",
		mcp.WithDescription("List the functions and methods a call tracing instrumentation would rewrite, "+
			"together with malformed //calltrace:trace directives and misplaced targets. Does not modify any file."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Absolute path to the Go module root directory")),
		mcp.WithString("pattern", mcp.Description("Package pattern relative to the project, defaults to './...'")),
	)
	s.AddTool(diagnosticsTool, t.Diagnostics)

	instrumentTool := mcp.NewTool("trace_instrument",
		mcp.WithDescription("Rewrite the functions and methods marked with //calltrace:trace so that every call prints "+
			"its arguments and results, indented by call depth. Modifies the source files in place."),
		mcp.WithString("project", mcp.Required(), mcp.Description("Absolute path to the Go module root directory")),
		mcp.WithString("pattern", mcp.Description("Package pattern relative to the project, defaults to './...'")),
	)
	s.AddTool(instrumentTool, t.Instrument)
}

// Diagnostics handles the trace_diagnostics tool.
func (t Tools) Diagnostics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, project, err := t.instrument(ctx, request, false)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder

	for _, res := range results {
		for _, f := range res.Findings {
			f.Position.Filename = relative(project, f.Position.Filename)
			fmt.Fprintln(&b, f)
		}
	}

	if b.Len() == 0 {
		return mcp.NewToolResultText("No call tracing directives found."), nil
	}

	return mcp.NewToolResultText(b.String()), nil
}

// Instrument handles the trace_instrument tool.
func (t Tools) Instrument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	results, project, err := t.instrument(ctx, request, true)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := load.Write(results); err != nil {
		return mcp.NewToolResultError("Failed to write instrumented sources: " + err.Error()), nil
	}

	var names []string
	for _, res := range results {
		for name := range res.Sources {
			names = append(names, relative(project, name))
		}
	}

	if len(names) == 0 {
		return mcp.NewToolResultText("Nothing to instrument."), nil
	}

	slices.Sort(names)
	t.Logger.InfoContext(ctx, "Instrumented sources", "project", project, "files", len(names))

	return mcp.NewToolResultText(fmt.Sprintf("Instrumented %d files:\n%s\n", len(names), strings.Join(names, "\n"))), nil
}

func (t Tools) instrument(ctx context.Context, request mcp.CallToolRequest, fix bool) ([]load.Result, string, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return nil, "", err
	}

	if !filepath.IsAbs(project) {
		return nil, "", fmt.Errorf("project path %q is not absolute", project)
	}

	pattern := request.GetString("pattern", defaultPattern)

	t.Logger.DebugContext(ctx, "Loading packages", "project", project, "pattern", pattern)

	fset, pkgs, err := load.Packages(ctx, project, pattern)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load project: %w", err)
	}

	results, err := load.Instrument(ctx, t.Options, fset, pkgs, fix)
	if err != nil {
		return nil, "", fmt.Errorf("failed to instrument project: %w", err)
	}

	return results, project, nil
}

func relative(base, name string) string {
	if rel, err := filepath.Rel(base, name); err == nil {
		return rel
	}

	return name
}
