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
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ConfigResourceURI identifies the server configuration resource.
const ConfigResourceURI = "honeybadger://config"

// configView is the redacted configuration exposed to agents. The token
// itself never leaves the process.
type configView struct {
	APIToken string `json:"api_token"`
	BaseURL  string `json:"base_url"`
}

// ConfigResource exposes the server's configuration with the API token
// redacted, so an agent can check whether credentials are present without
// seeing them.
func ConfigResource(token, baseURL string) (mcp.Resource, server.ResourceHandlerFunc) {
	return mcp.NewResource(ConfigResourceURI, "Honeybadger configuration",
			mcp.WithResourceDescription("The current Honeybadger API configuration with the token redacted"),
			mcp.WithMIMEType("application/json"),
		), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			view := configView{
				APIToken: "Not configured",
				BaseURL:  baseURL,
			}
			if token != "" {
				view.APIToken = "[REDACTED]"
			}
			data, err := json.MarshalIndent(view, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("encode config resource: %w", err)
			}
			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      ConfigResourceURI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			}, nil
		}
}
