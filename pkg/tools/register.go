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
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Constructor builds one tool and its handler against an API.
type Constructor func(API) (mcp.Tool, server.ToolHandlerFunc)

// All returns every tool constructor in registration order.
func All() []Constructor {
	return []Constructor{
		GetProjectsTool,
		GetProjectTool,
		CreateProjectTool,
		UpdateProjectTool,
		DeleteProjectTool,
		GetProjectOccurrencesTool,
		GetFaultsTool,
		GetFaultDetailsTool,
		GetFaultSummaryTool,
		UpdateFaultTool,
		DeleteFaultTool,
		GetFaultOccurrencesTool,
		GetFaultNoticesTool,
		GetNoticeTool,
		PauseFaultNotificationsTool,
		UnpauseFaultNotificationsTool,
		BulkResolveFaultsTool,
	}
}

// Register adds every tool to the server, bound to api.
func Register(s *server.MCPServer, api API) {
	for _, construct := range All() {
		s.AddTool(construct(api))
	}
}
