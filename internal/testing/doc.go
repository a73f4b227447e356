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

// Package testing provides wire-level test helpers for the Honeybadger API
// client.
//
// # Quick Start
//
// Use NewAPIServer to stand in for the remote API. The server records every
// request it receives (method, path, query, decoded JSON body, basic-auth
// username) and answers with a canned status and payload:
//
//	func TestListFaults(t *testing.T) {
//	    srv := hbtest.NewAPIServer(t, 200, `{"results": []}`)
//
//	    client := honeybadger.New("token")
//	    client.BaseURL = srv.URL()
//	    _, err := client.ListFaults(context.Background(), 42, "", 25, "recent")
//	    require.NoError(t, err)
//
//	    req := srv.LastRequest(t)
//	    require.Equal(t, "/projects/42/faults", req.Path)
//	}
//
// # Zero-Network Assertions
//
// CountingTransport is an http.RoundTripper that counts round trips and
// fails them. Install it as the client transport to prove a code path never
// touches the network (e.g. the missing-token degradation):
//
//	ct := &hbtest.CountingTransport{}
//	client.HTTPClient = &http.Client{Transport: ct}
//	_, err := client.ListProjects(context.Background(), nil)
//	require.Equal(t, 0, ct.Calls())
package testing
