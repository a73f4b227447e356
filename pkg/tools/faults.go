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

	"github.com/kraklabs/honeybadger-mcp/internal/contract"
	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// GetFaultsTool lists faults in a project.
func GetFaultsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_faults",
			mcp.WithDescription("List faults (grouped errors) in a Honeybadger project, with optional search query and sort order"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithString("query",
				mcp.Description("Search query, e.g. \"environment:production -is:resolved\""),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return"),
				mcp.DefaultNumber(honeybadger.DefaultFaultLimit),
			),
			mcp.WithString("order",
				mcp.Description("Sort order: recent or frequent"),
				mcp.DefaultString("recent"),
				mcp.Enum(contract.Orders...),
			),
			mcp.WithTitleAnnotation("List Faults"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			q := request.GetString("query", "")
			limit := request.GetInt("limit", honeybadger.DefaultFaultLimit)
			order := request.GetString("order", "recent")
			return toolResult(api.ListFaults(ctx, projectID, q, limit, order))
		}
}

// GetFaultDetailsTool fetches one fault by ID.
func GetFaultDetailsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_fault_details",
			mcp.WithDescription("Get details of a single fault, including its message, class, and occurrence counts"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithTitleAnnotation("Get Fault"),
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
			return toolResult(api.GetFault(ctx, projectID, faultID))
		}
}

// GetFaultSummaryTool returns fault counts grouped by environment and status.
func GetFaultSummaryTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_fault_summary",
			mcp.WithDescription("Get a summary of faults in a project, including counts by environment and resolution status"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithString("query",
				mcp.Description("Optional search query to scope the summary"),
			),
			mcp.WithTitleAnnotation("Fault Summary"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.FaultSummary(ctx, projectID, request.GetString("query", "")))
		}
}

// UpdateFaultTool applies a partial update to a fault. Omitted fields are
// left untouched; an explicit false is transmitted.
func UpdateFaultTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("update_fault",
			mcp.WithDescription("Update a fault's resolved, ignored, or assignee state; only the supplied fields are changed"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithBoolean("resolved",
				mcp.Description("Set to true to mark as resolved, false to mark as unresolved"),
			),
			mcp.WithBoolean("ignored",
				mcp.Description("Set to true to ignore the fault, false to unignore"),
			),
			mcp.WithNumber("assignee_id",
				mcp.Description("ID of the user to assign the fault to"),
			),
			mcp.WithTitleAnnotation("Update Fault"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			faultID, err := request.RequireInt("fault_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			params := honeybadger.FaultParams{
				Resolved:   optionalBool(request, "resolved"),
				Ignored:    optionalBool(request, "ignored"),
				AssigneeID: optionalInt(request, "assignee_id"),
			}
			return toolResult(api.UpdateFault(ctx, projectID, faultID, params))
		}
}

// DeleteFaultTool removes a fault and its notices.
func DeleteFaultTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("delete_fault",
			mcp.WithDescription("Delete a fault and all of its notices. This cannot be undone"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault to delete"),
			),
			mcp.WithTitleAnnotation("Delete Fault"),
			mcp.WithDestructiveHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			faultID, err := request.RequireInt("fault_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.DeleteFault(ctx, projectID, faultID))
		}
}

// GetFaultOccurrencesTool returns the occurrence time series for a fault.
func GetFaultOccurrencesTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_fault_occurrences",
			mcp.WithDescription("Get occurrence counts over time for a single fault"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithString("period",
				mcp.Description("Time bucket size: hour, day, week, or month"),
				mcp.DefaultString("day"),
				mcp.Enum(contract.Periods...),
			),
			mcp.WithTitleAnnotation("Get Fault Occurrences"),
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
			period := request.GetString("period", "day")
			return toolResult(api.FaultOccurrences(ctx, projectID, faultID, period))
		}
}

// GetFaultNoticesTool lists notices for a fault, newest first.
func GetFaultNoticesTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_fault_notices",
			mcp.WithDescription("List individual error notices for a fault, ordered by creation time descending"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithNumber("created_after",
				mcp.Description("Unix timestamp (seconds); only notices created after this time"),
			),
			mcp.WithNumber("created_before",
				mcp.Description("Unix timestamp (seconds); only notices created before this time"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Number of results to return (max 25)"),
				mcp.DefaultNumber(honeybadger.DefaultFaultLimit),
			),
			mcp.WithTitleAnnotation("List Fault Notices"),
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
			params := honeybadger.NoticeListParams{
				CreatedAfter:  optionalInt64(request, "created_after"),
				CreatedBefore: optionalInt64(request, "created_before"),
				Limit:         request.GetInt("limit", honeybadger.DefaultFaultLimit),
			}
			return toolResult(api.FaultNotices(ctx, projectID, faultID, params))
		}
}

// PauseFaultNotificationsTool silences a fault for a time window or an
// occurrence count.
func PauseFaultNotificationsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("pause_fault_notifications",
			mcp.WithDescription("Pause notifications for a fault, either for a time window or until a number of further occurrences. Exactly one of time or count must be given; time wins when both are"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithString("time",
				mcp.Description("Time window to pause: hour, day, or week"),
				mcp.Enum(contract.PauseWindows...),
			),
			mcp.WithNumber("count",
				mcp.Description("Number of occurrences to pause for: 10, 100, or 1000"),
			),
			mcp.WithTitleAnnotation("Pause Fault Notifications"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			faultID, err := request.RequireInt("fault_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			window := request.GetString("time", "")
			count := request.GetInt("count", 0)
			return toolResult(api.PauseFault(ctx, projectID, faultID, window, count))
		}
}

// UnpauseFaultNotificationsTool resumes notifications for a fault.
func UnpauseFaultNotificationsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("unpause_fault_notifications",
			mcp.WithDescription("Resume notifications for a paused fault"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithNumber("fault_id",
				mcp.Required(),
				mcp.Description("ID of the fault"),
			),
			mcp.WithTitleAnnotation("Unpause Fault Notifications"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			faultID, err := request.RequireInt("fault_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.UnpauseFault(ctx, projectID, faultID))
		}
}

// BulkResolveFaultsTool resolves every fault matching a query.
func BulkResolveFaultsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("bulk_resolve_faults",
			mcp.WithDescription("Mark all faults in a project as resolved, optionally restricted by a search query"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithString("query",
				mcp.Description("Optional search query to filter which faults to resolve"),
			),
			mcp.WithTitleAnnotation("Bulk Resolve Faults"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.BulkResolveFaults(ctx, projectID, request.GetString("query", "")))
		}
}
