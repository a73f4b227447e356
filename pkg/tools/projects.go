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

// GetProjectsTool lists all projects, optionally filtered by account.
func GetProjectsTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_projects",
			mcp.WithDescription("List all Honeybadger projects, optionally filtered by account ID"),
			mcp.WithNumber("account_id",
				mcp.Description("Optional ID of the account to filter projects by"),
			),
			mcp.WithTitleAnnotation("List Projects"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return toolResult(api.ListProjects(ctx, optionalInt(request, "account_id")))
		}
}

// GetProjectTool fetches a single project by ID.
func GetProjectTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_project",
			mcp.WithDescription("Get details of a single Honeybadger project, including environments, fault counts, and team members"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project"),
			),
			mcp.WithTitleAnnotation("Get Project"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.GetProject(ctx, projectID))
		}
}

// CreateProjectTool creates a new project.
func CreateProjectTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("create_project",
			mcp.WithDescription("Create a new Honeybadger project"),
			mcp.WithString("name",
				mcp.Required(),
				mcp.Description("Name of the project"),
			),
			mcp.WithNumber("account_id",
				mcp.Description("Optional ID of the account to create the project in"),
			),
			mcp.WithBoolean("resolve_errors_on_deploy",
				mcp.Description("Whether to mark all unresolved faults as resolved when a deploy is recorded"),
			),
			mcp.WithBoolean("disable_public_links",
				mcp.Description("Whether to disable public links to fault details"),
			),
			mcp.WithString("language",
				mcp.Description("Programming language (js, elixir, golang, java, node, php, python, ruby, other)"),
				mcp.Enum(contract.Languages...),
			),
			mcp.WithString("user_url",
				mcp.Description("URL format for linking to user profiles"),
			),
			mcp.WithString("source_url",
				mcp.Description("URL format for linking to source code"),
			),
			mcp.WithNumber("purge_days",
				mcp.Description("Number of days to retain error data"),
			),
			mcp.WithString("user_search_field",
				mcp.Description("Notice field used to search for affected users"),
			),
			mcp.WithTitleAnnotation("Create Project"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			name, err := request.RequireString("name")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			params := projectParams(request)
			return toolResult(api.CreateProject(ctx, name, optionalInt(request, "account_id"), params))
		}
}

// UpdateProjectTool applies a partial update to a project. Only supplied
// fields are transmitted.
func UpdateProjectTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("update_project",
			mcp.WithDescription("Update an existing Honeybadger project; only the supplied fields are changed"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project to update"),
			),
			mcp.WithString("name",
				mcp.Description("New name for the project"),
			),
			mcp.WithBoolean("resolve_errors_on_deploy",
				mcp.Description("Whether to mark all unresolved faults as resolved when a deploy is recorded"),
			),
			mcp.WithBoolean("disable_public_links",
				mcp.Description("Whether to disable public links to fault details"),
			),
			mcp.WithString("language",
				mcp.Description("Programming language (js, elixir, golang, java, node, php, python, ruby, other)"),
				mcp.Enum(contract.Languages...),
			),
			mcp.WithString("user_url",
				mcp.Description("URL format for linking to user profiles"),
			),
			mcp.WithString("source_url",
				mcp.Description("URL format for linking to source code"),
			),
			mcp.WithNumber("purge_days",
				mcp.Description("Number of days to retain error data"),
			),
			mcp.WithString("user_search_field",
				mcp.Description("Notice field used to search for affected users"),
			),
			mcp.WithTitleAnnotation("Update Project"),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			params := projectParams(request)
			params.Name = request.GetString("name", "")
			return toolResult(api.UpdateProject(ctx, projectID, params))
		}
}

// DeleteProjectTool removes a project permanently.
func DeleteProjectTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("delete_project",
			mcp.WithDescription("Delete a Honeybadger project and all of its data. This cannot be undone"),
			mcp.WithNumber("project_id",
				mcp.Required(),
				mcp.Description("ID of the project to delete"),
			),
			mcp.WithTitleAnnotation("Delete Project"),
			mcp.WithDestructiveHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			projectID, err := request.RequireInt("project_id")
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			return toolResult(api.DeleteProject(ctx, projectID))
		}
}

// GetProjectOccurrencesTool returns occurrence time series for one project
// or all projects.
func GetProjectOccurrencesTool(api API) (mcp.Tool, server.ToolHandlerFunc) {
	return mcp.NewTool("get_project_occurrences",
			mcp.WithDescription("Get error occurrence counts over time for one project, or across all projects when project_id is omitted"),
			mcp.WithNumber("project_id",
				mcp.Description("Optional ID of the project; omit for data across all projects"),
			),
			mcp.WithString("period",
				mcp.Description("Time bucket size: hour, day, week, or month"),
				mcp.DefaultString("hour"),
				mcp.Enum(contract.Periods...),
			),
			mcp.WithString("environment",
				mcp.Description("Optional environment to filter by"),
			),
			mcp.WithTitleAnnotation("Get Project Occurrences"),
			mcp.WithReadOnlyHintAnnotation(true),
		), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			period := request.GetString("period", "hour")
			environment := request.GetString("environment", "")
			return toolResult(api.ProjectOccurrences(ctx, optionalInt(request, "project_id"), period, environment))
		}
}

// projectParams collects the optional project attributes shared by the
// create and update tools.
func projectParams(request mcp.CallToolRequest) honeybadger.ProjectParams {
	return honeybadger.ProjectParams{
		ResolveErrorsOnDeploy: optionalBool(request, "resolve_errors_on_deploy"),
		DisablePublicLinks:    optionalBool(request, "disable_public_links"),
		Language:              request.GetString("language", ""),
		UserURL:               request.GetString("user_url", ""),
		SourceURL:             request.GetString("source_url", ""),
		PurgeDays:             optionalInt(request, "purge_days"),
		UserSearchField:       request.GetString("user_search_field", ""),
	}
}
