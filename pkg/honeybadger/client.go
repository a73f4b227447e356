// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the Honeybadger API v2 endpoint.
const DefaultBaseURL = "https://app.honeybadger.io/v2"

// Method is the closed set of HTTP verbs the Honeybadger API accepts.
// Exported operations only ever pass one of the four constants below.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// ErrNoToken is returned by every operation when no API token is configured.
// The client degrades rather than failing at startup: calls return this
// error without any network I/O.
var ErrNoToken = errors.New("Honeybadger API token is not configured. Set HONEYBADGER_API_TOKEN in your environment.")

// APIError represents a 4xx/5xx response from the Honeybadger API. The raw
// response body is logged for diagnosis but deliberately not carried in the
// error: it may contain request echoes that don't belong in tool output.
type APIError struct {
	Method     Method
	URL        string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("honeybadger: %s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

// Client provides access to the Honeybadger REST API.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Logger     *slog.Logger // Optional; defaults to slog.Default()
}

// New creates a client for the public Honeybadger API. An empty token is
// accepted: the client starts in degraded mode and every call returns
// ErrNoToken until a token is set.
func New(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Token:   token,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// successNoContent is the payload substituted for 204 responses, which carry
// no body to parse.
var successNoContent = json.RawMessage(`{"status": "success"}`)

// do builds, sends, and normalizes one request against the Honeybadger API.
//
// The returned payload is the remote JSON verbatim, except for 204 responses
// which map to {"status": "success"}. Status >= 400 becomes an *APIError
// after the raw body has been logged. Transport faults are wrapped and
// returned; they never escape as panics.
func (c *Client) do(ctx context.Context, method Method, endpoint string, query url.Values, body any) (json.RawMessage, error) {
	if c.Token == "" {
		return nil, ErrNoToken
	}

	switch method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		// Unreachable from the exported operations; only an internal bug
		// can pass another verb.
		return nil, fmt.Errorf("honeybadger: unsupported HTTP method %q", method)
	}

	u := c.BaseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("honeybadger: encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("honeybadger: build request: %w", err)
	}
	// Token as username, empty password. This is the contract of the
	// Honeybadger API (curl -u TOKEN:), not a bearer header.
	req.SetBasicAuth(c.Token, "")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger().Debug("honeybadger request",
		"method", method,
		"url", u,
		"token_length", len(c.Token),
	)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		recordRequest(method, "transport_error", time.Since(start))
		return nil, fmt.Errorf("honeybadger: %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		recordRequest(method, "read_error", time.Since(start))
		return nil, fmt.Errorf("honeybadger: read response: %w", err)
	}
	recordRequest(method, strconv.Itoa(resp.StatusCode), time.Since(start))

	c.logger().Debug("honeybadger response", "status", resp.StatusCode, "bytes", len(data))

	if resp.StatusCode >= 400 {
		// The body is observability-only: logged here, never returned.
		c.logger().Warn("honeybadger error response",
			"method", method,
			"url", u,
			"status", resp.StatusCode,
			"body", string(data),
		)
		return nil, &APIError{Method: method, URL: u, StatusCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusNoContent {
		return successNoContent, nil
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("honeybadger: invalid JSON in response (status %d)", resp.StatusCode)
	}
	return json.RawMessage(data), nil
}

// ErrorPayload converts an error into the uniform {"error": message} JSON
// object used by the CLI's --json mode and by tool output.
func ErrorPayload(err error) json.RawMessage {
	data, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return json.RawMessage(`{"error": "internal error"}`)
	}
	return data
}
