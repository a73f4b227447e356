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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"

	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/internal/output"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// loadConfigAndClient is the shared preamble of every subcommand.
func loadConfigAndClient(globals GlobalFlags) (*Config, *honeybadger.Client) {
	cfg, err := LoadConfig(globals.ConfigPath)
	if err != nil {
		errors.FatalError(err, globals.JSON)
	}
	return cfg, newClient(cfg)
}

// emit prints an operation result and exits on failure. Success goes to
// stdout as pretty-printed JSON; errors are classified into UserErrors so
// exit codes stay consistent across commands.
func emit(raw json.RawMessage, err error, globals GlobalFlags) {
	if err != nil {
		errors.FatalError(classify(err), globals.JSON)
	}

	var payload any
	if jsonErr := json.Unmarshal(raw, &payload); jsonErr != nil {
		errors.FatalError(errors.NewInternalError(
			"Malformed API payload",
			fmt.Sprintf("The response could not be decoded: %v", jsonErr),
			"This is a bug. Please report it at github.com/kraklabs/honeybadger-mcp/issues",
			jsonErr,
		), globals.JSON)
	}

	if err := output.JSON(payload); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.ExitInternal)
	}
}

// classify maps client errors onto the UserError taxonomy.
func classify(err error) *errors.UserError {
	var ue *errors.UserError
	if stderrors.As(err, &ue) {
		return ue
	}

	if stderrors.Is(err, honeybadger.ErrNoToken) {
		return errors.NewConfigError(
			"Honeybadger API token is not configured",
			"Neither HONEYBADGER_API_TOKEN nor the config file supplies a token",
			"Export HONEYBADGER_API_TOKEN or run: hbmcp init",
			err,
		)
	}

	if stderrors.Is(err, honeybadger.ErrPauseWindow) {
		return errors.NewInputError(
			"Either time or count must be specified",
			"The pause endpoint needs a time window or an occurrence count",
			"Pass --time hour|day|week or --count 10|100|1000",
		)
	}

	var apiErr *honeybadger.APIError
	if stderrors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return errors.NewNotFoundError(
				"Resource not found",
				fmt.Sprintf("%s %s returned 404", apiErr.Method, apiErr.URL),
				"Check the project, fault, or notice ID",
			)
		}
		return errors.NewNetworkError(
			"Honeybadger API request failed",
			fmt.Sprintf("%s %s returned status %d", apiErr.Method, apiErr.URL, apiErr.StatusCode),
			"Retry in a moment; check https://status.honeybadger.io if it persists",
			err,
		)
	}

	return errors.NewNetworkError(
		"Cannot reach the Honeybadger API",
		err.Error(),
		"Check your network connection and try again",
		err,
	)
}
