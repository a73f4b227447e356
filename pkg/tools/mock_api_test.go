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
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// call records one invocation of the mock API: the method name and its
// arguments, positionally.
type call struct {
	method string
	args   []any
}

// mockAPI implements API, recording every call and returning a canned
// payload or error.
type mockAPI struct {
	payload json.RawMessage
	err     error
	calls   []call
}

func newMockAPI(payload string) *mockAPI {
	return &mockAPI{payload: json.RawMessage(payload)}
}

func (m *mockAPI) record(method string, args ...any) (json.RawMessage, error) {
	m.calls = append(m.calls, call{method: method, args: args})
	if m.err != nil {
		return nil, m.err
	}
	return m.payload, nil
}

func (m *mockAPI) lastCall() call {
	if len(m.calls) == 0 {
		return call{}
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockAPI) ListProjects(_ context.Context, accountID *int) (json.RawMessage, error) {
	return m.record("ListProjects", accountID)
}

func (m *mockAPI) GetProject(_ context.Context, projectID int) (json.RawMessage, error) {
	return m.record("GetProject", projectID)
}

func (m *mockAPI) CreateProject(_ context.Context, name string, accountID *int, params honeybadger.ProjectParams) (json.RawMessage, error) {
	return m.record("CreateProject", name, accountID, params)
}

func (m *mockAPI) UpdateProject(_ context.Context, projectID int, params honeybadger.ProjectParams) (json.RawMessage, error) {
	return m.record("UpdateProject", projectID, params)
}

func (m *mockAPI) DeleteProject(_ context.Context, projectID int) (json.RawMessage, error) {
	return m.record("DeleteProject", projectID)
}

func (m *mockAPI) ProjectOccurrences(_ context.Context, projectID *int, period, environment string) (json.RawMessage, error) {
	return m.record("ProjectOccurrences", projectID, period, environment)
}

func (m *mockAPI) ListFaults(_ context.Context, projectID int, q string, limit int, order string) (json.RawMessage, error) {
	return m.record("ListFaults", projectID, q, limit, order)
}

func (m *mockAPI) GetFault(_ context.Context, projectID, faultID int) (json.RawMessage, error) {
	return m.record("GetFault", projectID, faultID)
}

func (m *mockAPI) FaultSummary(_ context.Context, projectID int, q string) (json.RawMessage, error) {
	return m.record("FaultSummary", projectID, q)
}

func (m *mockAPI) UpdateFault(_ context.Context, projectID, faultID int, params honeybadger.FaultParams) (json.RawMessage, error) {
	return m.record("UpdateFault", projectID, faultID, params)
}

func (m *mockAPI) DeleteFault(_ context.Context, projectID, faultID int) (json.RawMessage, error) {
	return m.record("DeleteFault", projectID, faultID)
}

func (m *mockAPI) FaultOccurrences(_ context.Context, projectID, faultID int, period string) (json.RawMessage, error) {
	return m.record("FaultOccurrences", projectID, faultID, period)
}

func (m *mockAPI) FaultNotices(_ context.Context, projectID, faultID int, params honeybadger.NoticeListParams) (json.RawMessage, error) {
	return m.record("FaultNotices", projectID, faultID, params)
}

func (m *mockAPI) PauseFault(_ context.Context, projectID, faultID int, window string, count int) (json.RawMessage, error) {
	return m.record("PauseFault", projectID, faultID, window, count)
}

func (m *mockAPI) UnpauseFault(_ context.Context, projectID, faultID int) (json.RawMessage, error) {
	return m.record("UnpauseFault", projectID, faultID)
}

func (m *mockAPI) BulkResolveFaults(_ context.Context, projectID int, q string) (json.RawMessage, error) {
	return m.record("BulkResolveFaults", projectID, q)
}

func (m *mockAPI) GetNotice(_ context.Context, projectID, faultID int, noticeID string, compact bool, backtraceLimit int) (json.RawMessage, error) {
	return m.record("GetNotice", projectID, faultID, noticeID, compact, backtraceLimit)
}

var _ API = (*mockAPI)(nil)

// newRequest builds a tool call request with the given arguments.
func newRequest(name string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

// readResourceRequest builds a read request for the config resource.
func readResourceRequest() mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = ConfigResourceURI
	return req
}

// resultText extracts the text payload from a tool result.
func resultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if text, ok := mcp.AsTextContent(result.Content[0]); ok {
		return text.Text
	}
	return ""
}
