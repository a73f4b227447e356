// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// DefaultFaultLimit is the page size the API itself defaults to.
const DefaultFaultLimit = 25

// ErrPauseWindow is returned by PauseFault when neither a time window nor an
// occurrence count is given. Validated locally so the caller gets a clear
// message without a wasted round trip.
var ErrPauseWindow = errors.New("Either time or count must be specified")

// FaultParams holds the partial-update fields of a fault. Pointers carry the
// unset/false/true distinction: a nil field is left untouched by the remote
// service, while a pointer to false is transmitted.
type FaultParams struct {
	Resolved   *bool
	Ignored    *bool
	AssigneeID *int
}

func (p FaultParams) body() map[string]any {
	fault := map[string]any{}
	if p.Resolved != nil {
		fault["resolved"] = *p.Resolved
	}
	if p.Ignored != nil {
		fault["ignored"] = *p.Ignored
	}
	if p.AssigneeID != nil {
		fault["assignee_id"] = *p.AssigneeID
	}
	return map[string]any{"fault": fault}
}

// NoticeListParams filters the fault notice listing. Timestamps are unix
// seconds; nil means no bound.
type NoticeListParams struct {
	CreatedAfter  *int64
	CreatedBefore *int64
	Limit         int
}

// ListFaults returns faults for a project. q supports the Honeybadger search
// syntax (e.g. "environment:production -is:resolved"); order is "recent" or
// "frequent".
func (c *Client) ListFaults(ctx context.Context, projectID int, q string, limit int, order string) (json.RawMessage, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if order != "" {
		query.Set("order", order)
	}
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults", projectID), query, nil)
}

// GetFault returns one fault by ID.
func (c *Client) GetFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error) {
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults/%d", projectID, faultID), nil, nil)
}

// FaultSummary returns fault counts grouped by environment and status.
func (c *Client) FaultSummary(ctx context.Context, projectID int, q string) (json.RawMessage, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults/summary", projectID), query, nil)
}

// UpdateFault applies a partial update to a fault's resolved/ignored/assignee
// state.
func (c *Client) UpdateFault(ctx context.Context, projectID, faultID int, params FaultParams) (json.RawMessage, error) {
	return c.do(ctx, MethodPut, fmt.Sprintf("projects/%d/faults/%d", projectID, faultID), nil, params.body())
}

// DeleteFault removes a fault and all of its notices.
func (c *Client) DeleteFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error) {
	return c.do(ctx, MethodDelete, fmt.Sprintf("projects/%d/faults/%d", projectID, faultID), nil, nil)
}

// FaultOccurrences returns the occurrence time series for a fault. period is
// "hour", "day", "week", or "month".
func (c *Client) FaultOccurrences(ctx context.Context, projectID, faultID int, period string) (json.RawMessage, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults/%d/occurrences", projectID, faultID), query, nil)
}

// FaultNotices lists notices for a fault, newest first.
func (c *Client) FaultNotices(ctx context.Context, projectID, faultID int, params NoticeListParams) (json.RawMessage, error) {
	query := url.Values{}
	if params.CreatedAfter != nil {
		query.Set("created_after", strconv.FormatInt(*params.CreatedAfter, 10))
	}
	if params.CreatedBefore != nil {
		query.Set("created_before", strconv.FormatInt(*params.CreatedBefore, 10))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	return c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults/%d/notices", projectID, faultID), query, nil)
}

// PauseFault silences notifications for a fault, either for a time window
// ("hour", "day", "week") or until a number of further occurrences (10, 100,
// 1000). Exactly one must be given; when both are, the time window wins.
func (c *Client) PauseFault(ctx context.Context, projectID, faultID int, window string, count int) (json.RawMessage, error) {
	body := map[string]any{}
	switch {
	case window != "":
		body["time"] = window
	case count > 0:
		body["count"] = count
	default:
		return nil, ErrPauseWindow
	}
	return c.do(ctx, MethodPost, fmt.Sprintf("projects/%d/faults/%d/pause", projectID, faultID), nil, body)
}

// UnpauseFault resumes notifications for a fault.
func (c *Client) UnpauseFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error) {
	return c.do(ctx, MethodPost, fmt.Sprintf("projects/%d/faults/%d/unpause", projectID, faultID), nil, nil)
}

// BulkResolveFaults marks every fault matching q (or all faults when q is
// empty) as resolved.
func (c *Client) BulkResolveFaults(ctx context.Context, projectID int, q string) (json.RawMessage, error) {
	query := url.Values{}
	if q != "" {
		query.Set("q", q)
	}
	return c.do(ctx, MethodPost, fmt.Sprintf("projects/%d/faults/resolve", projectID), query, nil)
}
