// Copyright 2026 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/pkg/tools"
)

const serverInstructions = `This server exposes the Honeybadger error-tracking API.

Start with get_projects to discover project IDs, then get_faults to list
errors in a project. Use get_fault_notices and get_notice for individual
occurrences with backtraces. Write operations (update_fault, delete_fault,
pause_fault_notifications, bulk_resolve_faults) change production data.`

// runMCPServer starts the stdio MCP server. All diagnostics go to stderr;
// stdout carries the JSON-RPC protocol.
func runMCPServer(globals GlobalFlags) {
	cfg, err := LoadConfig(globals.ConfigPath)
	if err != nil {
		errors.FatalError(err, true)
	}

	client := newClient(cfg)
	if cfg.APIToken == "" {
		// Degraded mode is deliberate: the server starts, tools answer
		// with the configuration error.
		slog.Warn("HONEYBADGER_API_TOKEN not set; every tool call will report the missing credential")
	}

	s := server.NewMCPServer(
		"honeybadger",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions),
	)

	tools.Register(s, client)
	s.AddResource(tools.ConfigResource(cfg.APIToken, cfg.BaseURL))

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	slog.Info("starting MCP server", "version", version, "base_url", cfg.BaseURL)
	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(errors.ExitInternal)
	}
}

// serveMetrics exposes Prometheus metrics for request counters and
// latency histograms.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	slog.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server failed", "error", err)
	}
}
