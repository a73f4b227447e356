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

	"github.com/kraklabs/honeybadger-mcp/pkg/honeybadger"
)

// API is the surface of the Honeybadger client the tool handlers need.
// Handlers are written against this interface so tests can substitute a
// mock without a network.
type API interface {
	ListProjects(ctx context.Context, accountID *int) (json.RawMessage, error)
	GetProject(ctx context.Context, projectID int) (json.RawMessage, error)
	CreateProject(ctx context.Context, name string, accountID *int, params honeybadger.ProjectParams) (json.RawMessage, error)
	UpdateProject(ctx context.Context, projectID int, params honeybadger.ProjectParams) (json.RawMessage, error)
	DeleteProject(ctx context.Context, projectID int) (json.RawMessage, error)
	ProjectOccurrences(ctx context.Context, projectID *int, period, environment string) (json.RawMessage, error)

	ListFaults(ctx context.Context, projectID int, q string, limit int, order string) (json.RawMessage, error)
	GetFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error)
	FaultSummary(ctx context.Context, projectID int, q string) (json.RawMessage, error)
	UpdateFault(ctx context.Context, projectID, faultID int, params honeybadger.FaultParams) (json.RawMessage, error)
	DeleteFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error)
	FaultOccurrences(ctx context.Context, projectID, faultID int, period string) (json.RawMessage, error)
	FaultNotices(ctx context.Context, projectID, faultID int, params honeybadger.NoticeListParams) (json.RawMessage, error)
	PauseFault(ctx context.Context, projectID, faultID int, window string, count int) (json.RawMessage, error)
	UnpauseFault(ctx context.Context, projectID, faultID int) (json.RawMessage, error)
	BulkResolveFaults(ctx context.Context, projectID int, q string) (json.RawMessage, error)

	GetNotice(ctx context.Context, projectID, faultID int, noticeID string, compact bool, backtraceLimit int) (json.RawMessage, error)
}

var _ API = (*honeybadger.Client)(nil)
