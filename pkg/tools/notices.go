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

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// GetNoticeTool fetches a single notice. The compact form trims session and
// environment context that routinely dominates the payload.
func GetNoticeTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_notice",
			mcp.WithDescription("Get a single error notice by ID. The compact form keeps identity, message, request context, and a truncated backtrace"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault the notice belongs to"),
			),
			mcp.WithString("notice_id",
				mcp.Required(),
				mcp.Description("Opaque string ID of the notice"),
			),
			mcp.WithBoolean("compact",
				mcp.Description("Return a reduced payload instead of the full notice"),
				mcp.DefaultBool(true),
			),
			mcp.WithNumber("backtrace_limit",
				mcp.Description("Maximum backtrace frames kept in the compact form"),
				mcp.DefaultNumber(honeybadger.DefaultBacktraceLimit),
			),
			mcp.WithTitleAnnotation("Get Notice"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			faultID, err := request.RequireInt("fault_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			noticeID, err := request.RequireString("notice_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			compact := request.GetBool("compact", true)
			backtraceLimit := request.GetInt("backtrace_limit", honeybadger.DefaultBacktraceLimit)
			return toolResult(api.GetNotice(ctx, projectID, faultID, noticeID, compact, backtraceLimit))
		}
}
