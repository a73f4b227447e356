// Copyright 2025 KrakLabs
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

package testing

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
)

// RecordedRequest is one request as seen by the fake API server.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]any // decoded JSON body; nil when the request had none
	User   string         // basic-auth username (the API token)
}

// APIServer is an httptest-backed stand-in for the Honeybadger API. It
// records every request and replies with a fixed status and payload.
type APIServer struct {
	srv *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewAPIServer starts a fake API server answering every request with status
// and payload. An empty payload sends no body (pair it with 204). The server
// is shut down when the test finishes.
func NewAPIServer(t *testing.T, status int, payload string) *APIServer {
	t.Helper()

	s := &APIServer{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := RecordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
		}
		rec.User, _, _ = r.BasicAuth()

		if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
			var body map[string]any
			if json.Unmarshal(data, &body) == nil {
				rec.Body = body
			}
		}

		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()

		if payload != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		if payload != "" {
			fmt.Fprint(w, payload)
		}
	}))
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the server's base URL, suitable for Client.BaseURL.
func (s *APIServer) URL() string {
	return s.srv.URL
}

// Requests returns a copy of every request recorded so far.
func (s *APIServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, failing the test when none
// was received.
func (s *APIServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		t.Fatal("no request received by fake API server")
	}
	return s.requests[len(s.requests)-1]
}

// CountingTransport is an http.RoundTripper that counts attempted round
// trips and refuses them. Install it to prove a code path performs zero
// network I/O.
type CountingTransport struct {
	calls atomic.Int64
}

// RoundTrip counts the attempt and fails it.
func (c *CountingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	c.calls.Add(1)
	return nil, fmt.Errorf("unexpected network call")
}

// Calls returns how many round trips were attempted.
func (c *CountingTransport) Calls() int {
	return int(c.calls.Load())
}
