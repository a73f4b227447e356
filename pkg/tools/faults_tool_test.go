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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

func TestGetFaultsTool_Defaults(t *testing.T) {
	api := newMockAPI(`{"results": []}`)
	tool, handler := GetFaultsTool(api)
	assert.Equal(t, "get_faults", tool.Name)

	_, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
		"project_id": float64(42),
	}))
	require.NoError(t, err)

	// limit 25 and order "recent" are injected when omitted.
	assert.Equal(t, call{method: "ListFaults", args: []any{42, "", 25, "recent"}}, api.lastCall())
}

func TestGetFaultsTool_AllArguments(t *testing.T) {
	api := newMockAPI(`{"results": []}`)
	_, handler := GetFaultsTool(api)

	_, err := handler(context.Background(), newRequest("get_faults", map[string]any{
		"project_id": float64(42),
		"query":      "-is:resolved",
		"limit":      float64(5),
		"order":      "frequent",
	}))
	require.NoError(t, err)

	assert.Equal(t, call{method: "ListFaults", args: []any{42, "-is:resolved", 5, "frequent"}}, api.lastCall())
}

func TestGetFaultDetailsTool(t *testing.T) {
	api := newMockAPI(`{"id": 7}`)
	tool, handler := GetFaultDetailsTool(api)
	assert.Equal(t, "get_fault_details", tool.Name)

	result, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
		"project_id": float64(42),
		"fault_id":   float64(7),
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, call{method: "GetFault", args: []any{42, 7}}, api.lastCall())
}

func TestGetFaultSummaryTool(t *testing.T) {
	api := newMockAPI(`{}`)
	_, handler := GetFaultSummaryTool(api)

	_, err := handler(context.Background(), newRequest("get_fault_summary", map[string]any{
		"project_id": float64(42),
		"query":      "is:resolved",
	}))
	require.NoError(t, err)
	assert.Equal(t, call{method: "FaultSummary", args: []any{42, "is:resolved"}}, api.lastCall())
}

func TestUpdateFaultTool_TriState(t *testing.T) {
	api := newMockAPI(`{}`)
	_, handler := UpdateFaultTool(api)

	// resolved=false is explicit and must be forwarded; ignored stays unset.
	_, err := handler(context.Background(), newRequest("update_fault", map[string]any{
		"project_id": float64(1),
		"fault_id":   float64(2),
		"resolved":   false,
	}))
	require.NoError(t, err)

	c := api.lastCall()
	require.Equal(t, "UpdateFault", c.method)
	params := c.args[2].(honeybadger.FaultParams)
	require.NotNil(t, params.Resolved)
	assert.False(t, *params.Resolved)
	assert.Nil(t, params.Ignored)
	assert.Nil(t, params.AssigneeID)
}

func TestDeleteFaultTool(t *testing.T) {
	api := newMockAPI(`{"status": "success"}`)
	tool, handler := DeleteFaultTool(api)
	require.NotNil(t, tool.Annotations.DestructiveHint)
	assert.True(t, *tool.Annotations.DestructiveHint)

	_, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
		"project_id": float64(1),
		"fault_id":   float64(2),
	}))
	require.NoError(t, err)
	assert.Equal(t, call{method: "DeleteFault", args: []any{1, 2}}, api.lastCall())
}

func TestGetFaultOccurrencesTool_DefaultPeriod(t *testing.T) {
	api := newMockAPI(`[]`)
	_, handler := GetFaultOccurrencesTool(api)

	_, err := handler(context.Background(), newRequest("get_fault_occurrences", map[string]any{
		"project_id": float64(1),
		"fault_id":   float64(2),
	}))
	require.NoError(t, err)
	assert.Equal(t, call{method: "FaultOccurrences", args: []any{1, 2, "day"}}, api.lastCall())
}

func TestGetFaultNoticesTool(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		api := newMockAPI(`{"results": []}`)
		_, handler := GetFaultNoticesTool(api)

		_, err := handler(context.Background(), newRequest("get_fault_notices", map[string]any{
			"project_id": float64(1),
			"fault_id":   float64(2),
		}))
		require.NoError(t, err)

		c := api.lastCall()
		require.Equal(t, "FaultNotices", c.method)
		params := c.args[2].(honeybadger.NoticeListParams)
		assert.Nil(t, params.CreatedAfter)
		assert.Nil(t, params.CreatedBefore)
		assert.Equal(t, 25, params.Limit)
	})

	t.Run("timestamp bounds", func(t *testing.T) {
		api := newMockAPI(`{"results": []}`)
		_, handler := GetFaultNoticesTool(api)

		_, err := handler(context.Background(), newRequest("get_fault_notices", map[string]any{
			"project_id":    float64(1),
			"fault_id":      float64(2),
			"created_after": float64(1700000000),
			"limit":         float64(10),
		}))
		require.NoError(t, err)

		params := api.lastCall().args[2].(honeybadger.NoticeListParams)
		require.NotNil(t, params.CreatedAfter)
		assert.Equal(t, int64(1700000000), *params.CreatedAfter)
		assert.Nil(t, params.CreatedBefore)
		assert.Equal(t, 10, params.Limit)
	})
}

func TestPauseFaultNotificationsTool(t *testing.T) {
	t.Run("forwards window and count", func(t *testing.T) {
		api := newMockAPI(`{}`)
		tool, handler := PauseFaultNotificationsTool(api)
		assert.Equal(t, "pause_fault_notifications", tool.Name)

		_, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
			"project_id": float64(1),
			"fault_id":   float64(2),
			"time":       "hour",
			"count":      float64(100),
		}))
		require.NoError(t, err)

		// Precedence is the client's job; the handler forwards both.
		assert.Equal(t, call{method: "PauseFault", args: []any{1, 2, "hour", 100}}, api.lastCall())
	})

	t.Run("validation error becomes an error result", func(t *testing.T) {
		api := newMockAPI(`{}`)
		api.err = honeybadger.ErrPauseWindow
		_, handler := PauseFaultNotificationsTool(api)

		result, err := handler(context.Background(), newRequest("pause_fault_notifications", map[string]any{
			"project_id": float64(1),
			"fault_id":   float64(2),
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Contains(t, resultText(result), "Either time or count must be specified")
	})
}

func TestUnpauseFaultNotificationsTool(t *testing.T) {
	api := newMockAPI(`{}`)
	tool, handler := UnpauseFaultNotificationsTool(api)
	assert.Equal(t, "unpause_fault_notifications", tool.Name)

	_, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
		"project_id": float64(1),
		"fault_id":   float64(2),
	}))
	require.NoError(t, err)
	assert.Equal(t, call{method: "UnpauseFault", args: []any{1, 2}}, api.lastCall())
}

func TestBulkResolveFaultsTool(t *testing.T) {
	api := newMockAPI(`{}`)
	tool, handler := BulkResolveFaultsTool(api)
	assert.Equal(t, "bulk_resolve_faults", tool.Name)

	_, err := handler(context.Background(), newRequest(tool.Name, map[string]any{
		"project_id": float64(42),
		"query":      "environment:staging",
	}))
	require.NoError(t, err)
	assert.Equal(t, call{method: "BulkResolveFaults", args: []any{42, "environment:staging"}}, api.lastCall())
}

func TestFaultTools_MissingProjectID(t *testing.T) {
	constructors := map[string]Constructor{
		"get_faults":        GetFaultsTool,
		"get_fault_details": GetFaultDetailsTool,
		"update_fault":      UpdateFaultTool,
		"delete_fault":      DeleteFaultTool,
	}

	for name, construct := range constructors {
		t.Run(name, func(t *testing.T) {
			api := newMockAPI(`{}`)
			_, handler := construct(api)

			result, err := handler(context.Background(), newRequest(name, map[string]any{}))
			require.NoError(t, err)
			assert.True(t, result.IsError)
			assert.Empty(t, api.calls)
		})
	}
}
