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
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kraklabs/honeybadger-mcp/internal/errors"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// GlobalFlags carries flags shared by every subcommand.
type GlobalFlags struct {
	JSON       bool
	Debug      bool
	ConfigPath string
}

// Config is the hbmcp configuration. The config file supplies defaults; the
// HONEYBADGER_API_TOKEN environment variable always wins for the token.
type Config struct {
	// APIToken authenticates against the Honeybadger API. May be empty:
	// the server starts in degraded mode and every call reports the
	// missing credential.
	APIToken string `yaml:"api_token"`

	// BaseURL overrides the API endpoint, for tests or self-hosted
	// deployments. Defaults to the public API.
	BaseURL string `yaml:"base_url"`

	// MetricsAddr, when set, serves Prometheus metrics on this address
	// (e.g. "localhost:9464").
	MetricsAddr string `yaml:"metrics_addr"`

	// Debug enables debug-level request logging on stderr.
	Debug bool `yaml:"debug"`
}

// DefaultConfigPath returns ~/.hbmcp/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".hbmcp", "config.yaml"), nil
}

// LoadConfig reads the config file (if any) and applies environment
// overrides. A missing file is not an error: the env var alone is a valid
// configuration, and so is no credential at all.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{BaseURL: honeybadger.DefaultBaseURL}

	if path == "" {
		p, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigError(
				"Cannot load hbmcp configuration",
				fmt.Sprintf("The config file %s is malformed: %v", path, err),
				"Fix the YAML or run 'hbmcp init' to regenerate it",
				err,
			)
		}
	case os.IsNotExist(err):
		// No file; env vars may still configure everything.
	default:
		return nil, errors.NewConfigError(
			"Cannot read hbmcp configuration",
			fmt.Sprintf("Reading %s failed: %v", path, err),
			"Check the file permissions",
			err,
		)
	}

	if token := os.Getenv("HONEYBADGER_API_TOKEN"); token != "" {
		cfg.APIToken = token
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = honeybadger.DefaultBaseURL
	}
	return cfg, nil
}

// newClient builds the API client from the configuration.
func newClient(cfg *Config) *honeybadger.Client {
	client := honeybadger.New(cfg.APIToken)
	client.BaseURL = cfg.BaseURL
	return client
}
