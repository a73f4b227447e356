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
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/internal/ui"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// defaultConfigTemplate is written by 'hbmcp init'. The token is left for
// the environment by default so it stays out of dotfiles.
const defaultConfigTemplate = `# hbmcp configuration
#
# The API token can be set here or via HONEYBADGER_API_TOKEN (the
# environment variable wins). Find your token under Settings ->
# API Keys in the Honeybadger UI.
api_token: ""

# API endpoint. Leave as-is unless you run a self-hosted instance.
base_url: %q

# Serve Prometheus metrics on this address (empty disables).
metrics_addr: ""

# Debug-level request logging on stderr.
debug: false
`

// runInit executes the 'init' CLI command, creating the default config file.
//
// Flags:
//   - --force: Overwrite an existing config file
//
// Examples:
//
//	hbmcp init
//	hbmcp init --force
func runInit(args []string, globals GlobalFlags) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: hbmcp init [options]

Creates ~/.hbmcp/config.yaml with documented defaults.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	path := globals.ConfigPath
	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			errors.FatalError(errors.NewConfigError(
				"Cannot determine config location",
				err.Error(),
				"Pass an explicit path with --config",
				err,
			), globals.JSON)
		}
		path = p
	}

	if _, err := os.Stat(path); err == nil && !*force {
		errors.FatalError(errors.NewInputError(
			"Config file already exists",
			fmt.Sprintf("%s is already present", path),
			"Re-run with --force to overwrite it",
		), globals.JSON)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot create config directory",
			err.Error(),
			"Check the directory permissions",
			err,
		), globals.JSON)
	}

	content := fmt.Sprintf(defaultConfigTemplate, honeybadger.DefaultBaseURL)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		errors.FatalError(errors.NewConfigError(
			"Cannot write config file",
			err.Error(),
			"Check the file permissions",
			err,
		), globals.JSON)
	}

	ui.Successf("Created %s", path)
	ui.Info("Set HONEYBADGER_API_TOKEN or edit api_token in the file")
}
