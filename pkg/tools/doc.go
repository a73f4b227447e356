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

// Package tools exposes the Honeybadger API as MCP tools.
//
// Each constructor returns an mcp.Tool schema and its handler, bound to the
// API interface so handlers can be tested against a mock. Handlers convert
// every expected failure (missing token, validation, transport, remote
// HTTP errors) into an error tool result; a Go error is reserved for
// internal bugs.
//
// Register wires all seventeen tools onto an MCP server:
//
//	s := server.NewMCPServer("honeybadger", version, server.WithToolCapabilities(true))
//	tools.Register(s, honeybadger.New(token))
package tools
