// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ProjectParams holds the optional attributes accepted by the create and
// update project endpoints. Zero-value strings and nil pointers are omitted
// from the request body, so an update only touches fields the caller set.
type ProjectParams struct {
	Name                  string
	ResolveErrorsOnDeploy *bool
	DisablePublicLinks    *bool
	Language              string
	UserURL               string
	SourceURL             string
	PurgeDays             *int
	UserSearchField       string
}

// body assembles the nested {"project": {...}} payload with only the
// explicitly supplied fields.
func (p ProjectParams) body() map[string]any {
	project := map[string]any{}
	if p.Name != "" {
		project["name"] = p.Name
	}
	if p.ResolveErrorsOnDeploy != nil {
		project["resolve_errors_on_deploy"] = *p.ResolveErrorsOnDeploy
	}
	if p.DisablePublicLinks != nil {
		project["disable_public_links"] = *p.DisablePublicLinks
	}
	if p.Language != "" {
		project["language"] = p.Language
	}
	if p.UserURL != "" {
		project["user_url"] = p.UserURL
	}
	if p.SourceURL != "" {
		project["source_url"] = p.SourceURL
	}
	if p.PurgeDays != nil {
		project["purge_days"] = *p.PurgeDays
	}
	if p.UserSearchField != "" {
		project["user_search_field"] = p.UserSearchField
	}
	return map[string]any{"project": project}
}

// ListProjects returns all projects visible to the token, optionally
// filtered to a single account.
func (c *Client) ListProjects(ctx context.Context, accountID *int) (json.RawMessage, error) {
	query := url.Values{}
	if accountID != nil {
		query.Set("account_id", strconv.Itoa(*accountID))
	}
	return c.do(ctx, MethodGet, "projects", query, nil)
}

// GetProject returns a single project by ID.
func (c *Client) GetProject(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d", projectID), nil, nil)
}

// CreateProject creates a project named name. The account is selected via
// the account_id query parameter, not the body.
func (c *Client) CreateProject(ctx context.Context, name string, accountID *int, params ProjectParams) (json.RawMessage, error) {
	params.Name = name
	query := url.Values{}
	if accountID != nil {
		query.Set("account_id", strconv.Itoa(*accountID))
	}
	return c.do(ctx, MethodPost, "projects", query, params.body())
}

// UpdateProject applies a partial update: only fields set in params reach
// the remote service.
func (c *Client) UpdateProject(ctx context.Context, projectID int, params ProjectParams) (json.RawMessage, error) {
	return c.do(ctx, MethodPut, fmt.Sprintf("projects/%d", projectID), nil, params.body())
}

// DeleteProject removes a project. The API answers 204, which the client
// maps to {"status": "success"}.
func (c *Client) DeleteProject(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.do(ctx, MethodDelete, fmt.Sprintf("projects/%d", projectID), nil, nil)
}

// ProjectOccurrences returns the occurrence time series for one project, or
// the aggregate across all projects when projectID is nil. The project is
// addressed through the path; it never appears in the query string.
func (c *Client) ProjectOccurrences(ctx context.Context, projectID *int, period, environment string) (json.RawMessage, error) {
	endpoint := "projects/occurrences"
	if projectID != nil {
		endpoint = fmt.Sprintf("projects/%d/occurrences", *projectID)
	}
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	if environment != "" {
		query.Set("environment", environment)
	}
	return c.do(ctx, MethodGet, endpoint, query, nil)
}
