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
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// toolResult converts an API call outcome into a tool result. Expected
// failures (missing token, validation, transport, remote 4xx/5xx) become an
// error result rather than a Go error, so the calling agent sees them as
// tool output.
func toolResult(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// optionalInt reads an integer argument that must be omitted from the
// request when the caller did not supply it. JSON numbers arrive as float64.
func optionalInt(request mcp.CallToolRequest, key string) *int {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int(f)
	return &n
}

// optionalInt64 is optionalInt for unix-timestamp arguments.
func optionalInt64(request mcp.CallToolRequest, key string) *int64 {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}

// optionalBool reads a tri-state boolean argument: nil when absent, a
// pointer otherwise. An explicit false must survive to the wire.
func optionalBool(request mcp.CallToolRequest, key string) *bool {
	v, ok := request.GetArguments()[key]
	if !ok || v == nil {
		return nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}
