// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"context"
	"encoding/json"
	"fmt"
)

// DefaultBacktraceLimit is how many backtrace frames a compacted notice keeps.
const DefaultBacktraceLimit = 10

// GetNotice fetches one notice by its opaque string ID. With compact set the
// payload is reduced to the fields an agent usually needs (identity, message,
// environment, request context, a truncated backtrace); backtraceLimit caps
// the retained frames and values <= 0 fall back to DefaultBacktraceLimit.
// Full notices pass through untouched.
func (c *Client) GetNotice(ctx context.Context, projectID, faultID int, noticeID string, compact bool, backtraceLimit int) (json.RawMessage, error) {
	raw, err := c.do(ctx, MethodGet, fmt.Sprintf("projects/%d/faults/%d/notices/%s", projectID, faultID, noticeID), nil, nil)
	if err != nil {
		return nil, err
	}
	if !compact {
		return raw, nil
	}
	if backtraceLimit <= 0 {
		backtraceLimit = DefaultBacktraceLimit
	}
	return compactNotice(raw, backtraceLimit)
}

// compactNotice reshapes a full notice payload. Notices routinely run to
// hundreds of kilobytes of session and cgi_data context; the compact form
// keeps identity, message, environment, the request triple, and the first
// backtraceLimit frames, and records how many frames were dropped.
func compactNotice(raw json.RawMessage, backtraceLimit int) (json.RawMessage, error) {
	var notice map[string]any
	if err := json.Unmarshal(raw, &notice); err != nil {
		return nil, fmt.Errorf("honeybadger: decode notice: %w", err)
	}

	out := map[string]any{}
	for _, key := range []string{"id", "fault_id", "created_at", "message", "environment_name"} {
		if v, ok := notice[key]; ok {
			out[key] = v
		}
	}

	if req, ok := notice["request"].(map[string]any); ok {
		slim := map[string]any{}
		for _, key := range []string{"url", "component", "action"} {
			if v, ok := req[key]; ok && v != nil {
				slim[key] = v
			}
		}
		out["request"] = slim
	}

	if frames, ok := notice["backtrace"].([]any); ok {
		if len(frames) > backtraceLimit {
			out["backtrace"] = frames[:backtraceLimit]
			out["backtrace_omitted"] = len(frames) - backtraceLimit
		} else {
			out["backtrace"] = frames
		}
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("honeybadger: encode compact notice: %w", err)
	}
	return data, nil
}
