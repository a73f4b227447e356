// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hbtest "github.com/kraklabs/honeybadger-mcp/internal/testing"
)

func TestNew_Defaults(t *testing.T) {
	client := New("token")

	assert.Equal(t, DefaultBaseURL, client.BaseURL)
	assert.Equal(t, "token", client.Token)
	require.NotNil(t, client.HTTPClient)
	assert.NotZero(t, client.HTTPClient.Timeout)
}

// Without a token every operation returns ErrNoToken and the transport is
// never touched.
func TestClient_NoToken_NoNetwork(t *testing.T) {
	ct := &hbtest.CountingTransport{}
	client := New("")
	client.HTTPClient = &http.Client{Transport: ct}

	ctx := context.Background()
	calls := []func() (json.RawMessage, error){
		func() (json.RawMessage, error) { return client.ListProjects(ctx, nil) },
		func() (json.RawMessage, error) { return client.GetProject(ctx, 1) },
		func() (json.RawMessage, error) { return client.CreateProject(ctx, "x", nil, ProjectParams{}) },
		func() (json.RawMessage, error) { return client.UpdateProject(ctx, 1, ProjectParams{}) },
		func() (json.RawMessage, error) { return client.DeleteProject(ctx, 1) },
		func() (json.RawMessage, error) { return client.ProjectOccurrences(ctx, nil, "hour", "") },
		func() (json.RawMessage, error) { return client.ListFaults(ctx, 1, "", 25, "recent") },
		func() (json.RawMessage, error) { return client.GetFault(ctx, 1, 2) },
		func() (json.RawMessage, error) { return client.FaultSummary(ctx, 1, "") },
		func() (json.RawMessage, error) { return client.UpdateFault(ctx, 1, 2, FaultParams{}) },
		func() (json.RawMessage, error) { return client.DeleteFault(ctx, 1, 2) },
		func() (json.RawMessage, error) { return client.FaultOccurrences(ctx, 1, 2, "day") },
		func() (json.RawMessage, error) { return client.FaultNotices(ctx, 1, 2, NoticeListParams{}) },
		func() (json.RawMessage, error) { return client.PauseFault(ctx, 1, 2, "hour", 0) },
		func() (json.RawMessage, error) { return client.UnpauseFault(ctx, 1, 2) },
		func() (json.RawMessage, error) { return client.BulkResolveFaults(ctx, 1, "") },
		func() (json.RawMessage, error) { return client.GetNotice(ctx, 1, 2, "abc", false, 0) },
	}

	for i, call := range calls {
		_, err := call()
		require.Error(t, err, "call %d", i)
		assert.ErrorIs(t, err, ErrNoToken, "call %d", i)
	}
	assert.Equal(t, 0, ct.Calls(), "no network I/O may happen without a token")
}

func TestClient_BasicAuth(t *testing.T) {
	srv := hbtest.NewAPIServer(t, http.StatusOK, `{"results": []}`)

	client := New("secret-token")
	client.BaseURL = srv.URL()

	_, err := client.ListProjects(context.Background(), nil)
	require.NoError(t, err)

	// Token as username, empty password.
	assert.Equal(t, "secret-token", srv.LastRequest(t).User)
}

func TestClient_NoContentMapsToSuccess(t *testing.T) {
	srv := hbtest.NewAPIServer(t, http.StatusNoContent, "")

	client := New("token")
	client.BaseURL = srv.URL()

	raw, err := client.DeleteProject(context.Background(), 7)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]string{"status": "success"}, got)
}

func TestClient_RemoteErrorShape(t *testing.T) {
	srv := hbtest.NewAPIServer(t, http.StatusNotFound, `{"errors": "not found"}`)

	client := New("token")
	client.BaseURL = srv.URL()

	_, err := client.GetProject(context.Background(), 999)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, MethodGet, apiErr.Method)
	// The remote body is logged, never carried in the error.
	assert.NotContains(t, apiErr.Error(), "not found")
}

func TestClient_TransportErrorWrapped(t *testing.T) {
	client := New("token")
	client.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := client.GetProject(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport faults are not APIErrors")
	assert.Contains(t, err.Error(), "honeybadger:")
}

func TestClient_PassesThroughPayload(t *testing.T) {
	const payload = `{"id": 42, "name": "backend", "environments": ["production"]}`
	srv := hbtest.NewAPIServer(t, http.StatusOK, payload)

	client := New("token")
	client.BaseURL = srv.URL()

	raw, err := client.GetProject(context.Background(), 42)
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(raw))
}

func TestErrorPayload(t *testing.T) {
	raw := ErrorPayload(errors.New("boom"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]string{"error": "boom"}, got)
}
