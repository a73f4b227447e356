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

// Package main implements hbmcp, a Honeybadger MCP server and CLI.
//
// Usage:
//
//	hbmcp init                        Create ~/.hbmcp/config.yaml
//	hbmcp projects [--json]           List projects
//	hbmcp faults <project> [--json]   List faults in a project
//	hbmcp --mcp                       Start as MCP server (JSON-RPC over stdio)
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kraklabs/honeybadger-mcp/internal/ui"
)

// Version information (set via ldflags during build)
var (
	version = "dev"     // Version string
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// main parses global flags and dispatches to a command handler or the MCP
// server.
//
// Global flags:
//   - --version: Display version information and exit
//   - --mcp: Start as MCP server (JSON-RPC over stdio)
//   - --config: Path to the config file (default: ~/.hbmcp/config.yaml)
//   - --json: Machine-readable output for subcommands
//   - --debug: Debug-level request logging on stderr
//   - --no-color: Disable colored terminal output
func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		mcpMode     = flag.Bool("mcp", false, "Start as MCP server (JSON-RPC over stdio)")
		configPath  = flag.String("config", "", "Path to config file (default: ~/.hbmcp/config.yaml)")
		jsonOutput  = flag.Bool("json", false, "Output as JSON")
		debug       = flag.Bool("debug", false, "Enable debug logging on stderr")
		noColor     = flag.Bool("no-color", false, "Disable colored output")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `hbmcp - Honeybadger MCP server

hbmcp exposes the Honeybadger error-tracking API as MCP tools for AI
agents, and doubles as a CLI for invoking every operation by hand.

Usage:
  hbmcp <command> [options]

Commands:
  init                 Create ~/.hbmcp/config.yaml
  projects             List projects
  project              Get one project
  create-project       Create a project
  update-project       Update a project
  delete-project       Delete a project (destructive!)
  project-occurrences  Occurrence counts for one or all projects
  faults               List faults in a project
  fault                Get one fault
  fault-summary        Fault counts by environment and status
  update-fault         Update a fault's state
  delete-fault         Delete a fault (destructive!)
  fault-occurrences    Occurrence counts for a fault
  fault-notices        List notices for a fault
  notice               Get one notice
  pause-fault          Pause fault notifications
  unpause-fault        Resume fault notifications
  bulk-resolve         Resolve all matching faults

Global Options:
  --mcp       Start as MCP server (JSON-RPC over stdio)
  --config    Path to config file
  --json      Output as JSON
  --debug     Debug logging on stderr
  --no-color  Disable colored output
  --version   Show version and exit

Examples:
  hbmcp projects --json
  hbmcp faults 42 --query "-is:resolved" --order frequent
  hbmcp pause-fault 42 7 --time hour
  hbmcp --mcp

Configuration:
  HONEYBADGER_API_TOKEN supplies the API token; ~/.hbmcp/config.yaml
  supplies defaults. The environment variable wins.

For detailed command help: hbmcp <command> --help

`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hbmcp version %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		os.Exit(0)
	}

	ui.InitColors(*noColor)
	initLogging(*debug)

	globals := GlobalFlags{
		JSON:       *jsonOutput,
		Debug:      *debug,
		ConfigPath: *configPath,
	}

	// MCP mode takes precedence
	if *mcpMode {
		runMCPServer(globals)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "init":
		runInit(cmdArgs, globals)
	case "projects":
		runProjects(cmdArgs, globals)
	case "project":
		runProject(cmdArgs, globals)
	case "create-project":
		runCreateProject(cmdArgs, globals)
	case "update-project":
		runUpdateProject(cmdArgs, globals)
	case "delete-project":
		runDeleteProject(cmdArgs, globals)
	case "project-occurrences":
		runProjectOccurrences(cmdArgs, globals)
	case "faults":
		runFaults(cmdArgs, globals)
	case "fault":
		runFault(cmdArgs, globals)
	case "fault-summary":
		runFaultSummary(cmdArgs, globals)
	case "update-fault":
		runUpdateFault(cmdArgs, globals)
	case "delete-fault":
		runDeleteFault(cmdArgs, globals)
	case "fault-occurrences":
		runFaultOccurrences(cmdArgs, globals)
	case "fault-notices":
		runFaultNotices(cmdArgs, globals)
	case "notice":
		runNotice(cmdArgs, globals)
	case "pause-fault":
		runPauseFault(cmdArgs, globals)
	case "unpause-fault":
		runUnpauseFault(cmdArgs, globals)
	case "bulk-resolve":
		runBulkResolve(cmdArgs, globals)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

// initLogging routes slog to stderr so stdout stays clean for JSON output
// and the MCP stdio protocol.
func initLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
